package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keyvault/internal/app"
	"keyvault/internal/domain"
)

var (
	home       string
	configPath string
	passphrase string
	inMemory   bool
	debug      bool

	keyTypeFlag string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "keyvault",
		Short:         "Session-key store for a ledger node",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{}
			if configPath != "" {
				if err := app.LoadConfig(configPath, &cfg); err != nil {
					return err
				}
			}
			if home != "" {
				cfg.Home = home
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".keyvault")
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}
			if inMemory {
				cfg.InMemory = true
			}
			if debug {
				cfg.Debug = true
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "keystore dir (default ~/.keyvault)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys at rest")
	root.PersistentFlags().BoolVar(&inMemory, "mem", false, "use the volatile in-memory backend")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(generateCmd(), insertCmd(), listCmd(), signCmd(), verifyCmd(), hasCmd(), removeCmd())

	err := root.Execute()
	// Release the directory lock even when a subcommand failed.
	if wire != nil {
		if cerr := wire.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// keyType parses the --keytype flag.
func keyType() (domain.KeyTypeID, error) {
	if keyTypeFlag == "" {
		return domain.KeyTypeID{}, fmt.Errorf("--keytype required (e.g. babe, gran)")
	}
	return domain.KeyTypeFromString(keyTypeFlag)
}

// parsePublicKey parses the scheme:hex form printed by list and generate.
func parsePublicKey(s string) (domain.PublicKey, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		scheme, err := domain.SchemeFromString(s[:i])
		if err != nil {
			return domain.PublicKey{}, err
		}
		raw, err := hex.DecodeString(s[i+1:])
		if err != nil {
			return domain.PublicKey{}, fmt.Errorf("public key %q: %v", s, err)
		}
		return domain.NewPublicKey(scheme, raw)
	}
	return domain.PublicKey{}, fmt.Errorf("public key %q: want scheme:hex", s)
}
