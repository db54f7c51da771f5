package app

import (
	"os"

	"github.com/rs/zerolog"

	"keyvault/internal/domain"
	"keyvault/internal/keystore"
	"keyvault/internal/store"
)

// Wire bundles the backend and keystore for the CLI.
type Wire struct {
	Store domain.Store
	Keys  *keystore.Keystore
	Log   zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	var backend domain.Store
	if cfg.InMemory {
		backend = store.NewMemStore()
	} else {
		passphrase, err := cfg.ResolvePassphrase()
		if err != nil {
			return nil, err
		}
		fs, err := store.OpenFileStore(log, cfg.Home, passphrase)
		if err != nil {
			return nil, err
		}
		backend = fs
	}

	return &Wire{
		Store: backend,
		Keys:  keystore.New(backend, keystore.WithLogger(log)),
		Log:   log,
	}, nil
}

// Close releases the backend (lock file, in-memory contents).
func (w *Wire) Close() error { return w.Store.Close() }
