package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyvault/internal/domain"
)

func hasCmd() *cobra.Command {
	var keyFlags []string

	cmd := &cobra.Command{
		Use:   "has",
		Short: "Check that every listed session key is available",
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := keyType()
			if err != nil {
				return err
			}
			if len(keyFlags) == 0 {
				return fmt.Errorf("at least one --key required")
			}
			refs := make([]domain.KeyRef, 0, len(keyFlags))
			for _, k := range keyFlags {
				pub, err := parsePublicKey(k)
				if err != nil {
					return err
				}
				refs = append(refs, domain.KeyRef{KeyType: kt, Public: pub})
			}
			ok, err := wire.Keys.HasKeys(refs)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("missing keys")
			}
			fmt.Println("all keys present")
			return nil
		},
	}

	cmd.Flags().StringVar(&keyTypeFlag, "keytype", "", "4-character role tag (babe, gran, ...)")
	cmd.Flags().StringArrayVar(&keyFlags, "key", nil, "public key as scheme:hex (repeatable)")
	return cmd
}
