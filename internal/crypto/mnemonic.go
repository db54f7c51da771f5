package crypto

import (
	"fmt"

	bip39 "github.com/cosmos/go-bip39"

	"keyvault/internal/domain"
)

const mnemonicEntropyBits = 128 // 12 words

// NewMnemonic generates a fresh BIP-39 recovery phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic derives the 32-byte keystore seed from a BIP-39 phrase
// and optional password. The same phrase always yields the same seed, so
// keys are recoverable from the phrase alone.
func SeedFromMnemonic(mnemonic, password string) ([]byte, error) {
	long, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyMaterial, err)
	}
	seed := make([]byte, domain.SeedLen)
	copy(seed, long)
	Wipe(long)
	return seed, nil
}
