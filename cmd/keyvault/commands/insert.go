package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
)

func insertCmd() *cobra.Command {
	var schemeFlag string

	cmd := &cobra.Command{
		Use:   "insert <seed-hex>",
		Short: "Store operator-supplied key material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := keyType()
			if err != nil {
				return err
			}
			scheme, err := domain.SchemeFromString(schemeFlag)
			if err != nil {
				return err
			}
			seed, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("seed: %v", err)
			}
			pub, err := wire.Keys.Insert(kt, scheme, seed)
			crypto.Wipe(seed)
			if err != nil {
				return err
			}
			fmt.Printf("Public key: %s\n", pub)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyTypeFlag, "keytype", "", "4-character role tag (babe, gran, ...)")
	cmd.Flags().StringVar(&schemeFlag, "scheme", "sr25519", "signature scheme: ed25519, sr25519, secp256k1")
	return cmd
}
