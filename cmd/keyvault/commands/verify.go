package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var (
		keyFlag string
		sigHex  string
	)

	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Check a signature against a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := parsePublicKey(keyFlag)
			if err != nil {
				return err
			}
			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("signature: %v", err)
			}
			if !wire.Keys.Verify(pub, []byte(args[0]), sig) {
				return fmt.Errorf("signature is invalid")
			}
			fmt.Println("signature is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFlag, "key", "", "public key as scheme:hex")
	cmd.Flags().StringVar(&sigHex, "sig", "", "hex-encoded signature")
	return cmd
}
