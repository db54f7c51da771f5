package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	var keyFlag string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a stored key",
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := keyType()
			if err != nil {
				return err
			}
			pub, err := parsePublicKey(keyFlag)
			if err != nil {
				return err
			}
			if err := wire.Keys.Remove(kt, pub); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", pub)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyTypeFlag, "keytype", "", "4-character role tag (babe, gran, ...)")
	cmd.Flags().StringVar(&keyFlag, "key", "", "public key as scheme:hex")
	return cmd
}
