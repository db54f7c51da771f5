package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyvault/internal/domain"
)

func TestKeyTypeFromString(t *testing.T) {
	kt, err := domain.KeyTypeFromString("babe")
	require.NoError(t, err)
	assert.Equal(t, domain.KeyTypeBabe, kt)
	assert.Equal(t, "babe", kt.String())
	assert.Equal(t, "62616265", kt.Hex())

	_, err = domain.KeyTypeFromString("toolong")
	assert.Error(t, err)
	_, err = domain.KeyTypeFromString("ab")
	assert.Error(t, err)
}

func TestSchemeFromString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want domain.Scheme
	}{
		{"ed25519", domain.Ed25519},
		{"sr25519", domain.Sr25519},
		{"secp256k1", domain.Secp256k1},
	} {
		got, err := domain.SchemeFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
	}

	_, err := domain.SchemeFromString("rsa")
	assert.ErrorIs(t, err, domain.ErrUnsupportedScheme)
}

func TestNewPublicKeyValidatesLength(t *testing.T) {
	pk, err := domain.NewPublicKey(domain.Ed25519, make([]byte, 32))
	require.NoError(t, err)
	assert.Len(t, pk.Bytes(), 32)
	assert.False(t, pk.IsZero())

	_, err = domain.NewPublicKey(domain.Ed25519, make([]byte, 33))
	assert.ErrorIs(t, err, domain.ErrInvalidKeyMaterial)

	_, err = domain.NewPublicKey(domain.Secp256k1, make([]byte, 32))
	assert.ErrorIs(t, err, domain.ErrInvalidKeyMaterial)

	_, err = domain.NewPublicKey(domain.Scheme(200), make([]byte, 32))
	assert.ErrorIs(t, err, domain.ErrUnsupportedScheme)
}

func TestPublicKeyComparable(t *testing.T) {
	b := make([]byte, 32)
	b[0] = 1
	a1, err := domain.NewPublicKey(domain.Sr25519, b)
	require.NoError(t, err)
	a2, err := domain.NewPublicKey(domain.Sr25519, b)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	// Same bytes under a different scheme is a different identity.
	other, err := domain.NewPublicKey(domain.Ed25519, b)
	require.NoError(t, err)
	assert.NotEqual(t, a1, other)
}
