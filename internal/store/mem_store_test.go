package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyvault/internal/domain"
	"keyvault/internal/store"
)

func TestMemStore_RoundTrip(t *testing.T) {
	s := store.NewMemStore()
	pub, seed := testPair(t, domain.Ed25519, 1)

	require.NoError(t, s.Put(domain.KeyTypeBabe, pub, seed))

	got, err := s.Get(domain.KeyTypeBabe, pub)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	pubs, err := s.List(domain.KeyTypeBabe)
	require.NoError(t, err)
	assert.Equal(t, []domain.PublicKey{pub}, pubs)

	require.NoError(t, s.Remove(domain.KeyTypeBabe, pub))
	_, err = s.Get(domain.KeyTypeBabe, pub)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Remove(domain.KeyTypeBabe, pub), domain.ErrNotFound)
}

func TestMemStore_GetReturnsCopy(t *testing.T) {
	s := store.NewMemStore()
	pub, seed := testPair(t, domain.Ed25519, 2)
	require.NoError(t, s.Put(domain.KeyTypeBabe, pub, seed))

	got, err := s.Get(domain.KeyTypeBabe, pub)
	require.NoError(t, err)
	got[0] ^= 0xFF

	again, err := s.Get(domain.KeyTypeBabe, pub)
	require.NoError(t, err)
	assert.Equal(t, seed, again, "caller mutation must not reach the store")
}

func TestMemStore_CloseDropsEverything(t *testing.T) {
	s := store.NewMemStore()
	pub, seed := testPair(t, domain.Sr25519, 3)
	require.NoError(t, s.Put(domain.KeyTypeGran, pub, seed))

	require.NoError(t, s.Close())
	_, err := s.Get(domain.KeyTypeGran, pub)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
