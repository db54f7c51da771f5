package app

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the keystore directory, e.g. $HOME/.keyvault.
	Home string `yaml:"home"`
	// Passphrase encrypts key material at rest; empty stores seeds in the
	// clear. Flag/prompt only, never read from the config file.
	Passphrase string `yaml:"-"`
	// PassphraseFile names a file whose trimmed contents become the
	// passphrase.
	PassphraseFile string `yaml:"passphrase_file"`
	// InMemory selects the volatile backend; nothing touches disk.
	InMemory bool `yaml:"in_memory"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

// LoadConfig reads a YAML config file into cfg, leaving fields the file
// does not mention untouched. A missing file is not an error.
func LoadConfig(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

// ResolvePassphrase returns the effective passphrase, reading
// PassphraseFile when no literal passphrase is set.
func (c Config) ResolvePassphrase() (string, error) {
	if c.Passphrase != "" || c.PassphraseFile == "" {
		return c.Passphrase, nil
	}
	b, err := os.ReadFile(c.PassphraseFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
