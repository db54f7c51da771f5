package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
)

func generateCmd() *cobra.Command {
	var (
		schemeFlag   string
		seedHex      string
		mnemonic     string
		showRecovery bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a session key and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := keyType()
			if err != nil {
				return err
			}
			scheme, err := domain.SchemeFromString(schemeFlag)
			if err != nil {
				return err
			}
			if seedHex != "" && mnemonic != "" {
				return fmt.Errorf("--seed and --mnemonic are mutually exclusive")
			}

			var seed []byte
			var recovery string
			switch {
			case seedHex != "":
				seed, err = hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("seed: %v", err)
				}
			case mnemonic != "":
				seed, err = crypto.SeedFromMnemonic(mnemonic, "")
				if err != nil {
					return err
				}
			case showRecovery:
				recovery, err = crypto.NewMnemonic()
				if err != nil {
					return err
				}
				seed, err = crypto.SeedFromMnemonic(recovery, "")
				if err != nil {
					return err
				}
			}

			pub, err := wire.Keys.Generate(kt, scheme, seed)
			if seed != nil {
				crypto.Wipe(seed)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Public key: %s\n", pub)
			if recovery != "" {
				fmt.Printf("Recovery phrase (write it down, it is not stored):\n  %s\n", recovery)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyTypeFlag, "keytype", "", "4-character role tag (babe, gran, ...)")
	cmd.Flags().StringVar(&schemeFlag, "scheme", "sr25519", "signature scheme: ed25519, sr25519, secp256k1")
	cmd.Flags().StringVar(&seedHex, "seed", "", "hex-encoded 32-byte seed for deterministic derivation")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 phrase to derive the key from")
	cmd.Flags().BoolVar(&showRecovery, "show-recovery", false, "derive from a fresh mnemonic and print it once")
	return cmd
}
