package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	var keyFlag string

	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := keyType()
			if err != nil {
				return err
			}
			pub, err := parsePublicKey(keyFlag)
			if err != nil {
				return err
			}
			sig, err := wire.Keys.Sign(kt, pub, []byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyTypeFlag, "keytype", "", "4-character role tag (babe, gran, ...)")
	cmd.Flags().StringVar(&keyFlag, "key", "", "public key as scheme:hex")
	return cmd
}
