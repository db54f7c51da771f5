package keystore_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
	"keyvault/internal/keystore"
	"keyvault/internal/store"
)

var allSchemes = []domain.Scheme{domain.Ed25519, domain.Sr25519, domain.Secp256k1}

func newKeystore(t *testing.T) *keystore.Keystore {
	t.Helper()
	backend := store.NewMemStore()
	t.Cleanup(func() { _ = backend.Close() })
	return keystore.New(backend)
}

func seedOf(fill byte) []byte {
	seed := make([]byte, domain.SeedLen)
	for i := range seed {
		seed[i] = fill
	}
	return seed
}

func TestGenerateSignVerifyRoundTrip(t *testing.T) {
	ks := newKeystore(t)
	msg := []byte("block authorship claim")

	for _, scheme := range allSchemes {
		t.Run(scheme.String(), func(t *testing.T) {
			pub, err := ks.Generate(domain.KeyTypeBabe, scheme, nil)
			require.NoError(t, err)
			require.Equal(t, scheme, pub.Scheme())

			sig, err := ks.Sign(domain.KeyTypeBabe, pub, msg)
			require.NoError(t, err)
			assert.True(t, ks.Verify(pub, msg, sig))
		})
	}
}

func TestGenerateWithSeedIsDeterministic(t *testing.T) {
	a := newKeystore(t)
	b := newKeystore(t)

	pubA, err := a.Generate(domain.KeyTypeGran, domain.Sr25519, seedOf(1))
	require.NoError(t, err)
	pubB, err := b.Generate(domain.KeyTypeGran, domain.Sr25519, seedOf(1))
	require.NoError(t, err)
	assert.Equal(t, pubA, pubB)
}

func TestInsertRejectsMalformedSeed(t *testing.T) {
	ks := newKeystore(t)

	_, err := ks.Insert(domain.KeyTypeBabe, domain.Ed25519, []byte{1, 2, 3})
	assert.ErrorIs(t, err, domain.ErrInvalidKeyMaterial)

	_, err = ks.Insert(domain.KeyTypeBabe, domain.Scheme(99), seedOf(1))
	assert.ErrorIs(t, err, domain.ErrUnsupportedScheme)
}

func TestOverwriteUsesNewBytesOnly(t *testing.T) {
	backend := store.NewMemStore()
	defer backend.Close()
	ks := keystore.New(backend)

	pub, err := ks.Generate(domain.KeyTypeBabe, domain.Ed25519, seedOf(1))
	require.NoError(t, err)

	// Sign once so the old pair is cached.
	_, err = ks.Sign(domain.KeyTypeBabe, pub, []byte("m"))
	require.NoError(t, err)

	// Re-inserting the same identity replaces both the stored entry and
	// the cached handle; it must never duplicate.
	again, err := ks.Insert(domain.KeyTypeBabe, domain.Ed25519, seedOf(1))
	require.NoError(t, err)
	require.Equal(t, pub, again)

	pubs, err := ks.PublicKeys(domain.KeyTypeBabe)
	require.NoError(t, err)
	assert.Len(t, pubs, 1, "overwrite must never duplicate")

	// Storage now carries exactly the re-inserted bytes.
	got, err := backend.Get(domain.KeyTypeBabe, pub)
	require.NoError(t, err)
	assert.Equal(t, seedOf(1), got)
}

func TestPublicKeysListingComplete(t *testing.T) {
	ks := newKeystore(t)

	want := map[domain.PublicKey]bool{}
	for fill := byte(1); fill <= 5; fill++ {
		pub, err := ks.Generate(domain.KeyTypeBabe, domain.Sr25519, seedOf(fill))
		require.NoError(t, err)
		want[pub] = true
	}

	pubs, err := ks.PublicKeys(domain.KeyTypeBabe)
	require.NoError(t, err)
	require.Len(t, pubs, len(want))
	for _, pub := range pubs {
		assert.True(t, want[pub], "unexpected key %s", pub)
	}
}

func TestSignAbsentKey(t *testing.T) {
	ks := newKeystore(t)

	pair, err := crypto.Generate(domain.Ed25519)
	require.NoError(t, err)
	absent := pair.Public()

	_, err = ks.Sign(domain.KeyTypeBabe, absent, []byte("m"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err := ks.HasKeys([]domain.KeyRef{{KeyType: domain.KeyTypeBabe, Public: absent}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasKeysAllOf(t *testing.T) {
	ks := newKeystore(t)

	pubA, err := ks.Generate(domain.KeyTypeBabe, domain.Sr25519, seedOf(1))
	require.NoError(t, err)
	pubB, err := ks.Generate(domain.KeyTypeGran, domain.Ed25519, seedOf(2))
	require.NoError(t, err)

	ok, err := ks.HasKeys([]domain.KeyRef{
		{KeyType: domain.KeyTypeBabe, Public: pubA},
		{KeyType: domain.KeyTypeGran, Public: pubB},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	pair, err := crypto.Generate(domain.Ed25519)
	require.NoError(t, err)
	ok, err = ks.HasKeys([]domain.KeyRef{
		{KeyType: domain.KeyTypeBabe, Public: pubA},
		{KeyType: domain.KeyTypeBabe, Public: pair.Public()},
	})
	require.NoError(t, err)
	assert.False(t, ok, "one absent ref must fail the whole check")
}

func TestSignWithAnyFirstMatchWins(t *testing.T) {
	ks := newKeystore(t)
	msg := []byte("vote")

	pubA, err := ks.Generate(domain.KeyTypeBabe, domain.Ed25519, seedOf(1))
	require.NoError(t, err)
	pubB, err := ks.Generate(domain.KeyTypeBabe, domain.Ed25519, seedOf(2))
	require.NoError(t, err)

	// Both stored: the first candidate wins.
	chosen, sig, err := ks.SignWithAny(domain.KeyTypeBabe, []domain.PublicKey{pubA, pubB}, msg)
	require.NoError(t, err)
	assert.Equal(t, pubA, chosen)
	assert.True(t, ks.Verify(pubA, msg, sig))

	// Only the second candidate stored: it is chosen.
	absentPair, err := crypto.Generate(domain.Ed25519)
	require.NoError(t, err)
	chosen, sig, err = ks.SignWithAny(domain.KeyTypeBabe, []domain.PublicKey{absentPair.Public(), pubB}, msg)
	require.NoError(t, err)
	assert.Equal(t, pubB, chosen)
	assert.True(t, ks.Verify(pubB, msg, sig))

	// None stored.
	_, _, err = ks.SignWithAny(domain.KeyTypeBabe, []domain.PublicKey{absentPair.Public()}, msg)
	assert.ErrorIs(t, err, domain.ErrNoUsableKey)
}

func TestSchemeMismatchOnTamperedEntry(t *testing.T) {
	backend := store.NewMemStore()
	defer backend.Close()
	ks := keystore.New(backend)

	pub, err := ks.Generate(domain.KeyTypeBabe, domain.Ed25519, seedOf(1))
	require.NoError(t, err)
	ks.Lock() // force the next sign to reload from storage

	// File the wrong seed under pub's identity, as a corrupted or
	// swapped backend would.
	require.NoError(t, backend.Put(domain.KeyTypeBabe, pub, seedOf(2)))

	_, err = ks.Sign(domain.KeyTypeBabe, pub, []byte("m"))
	assert.ErrorIs(t, err, domain.ErrSchemeMismatch)
}

func TestLockEvictsThenReloads(t *testing.T) {
	ks := newKeystore(t)
	msg := []byte("m")

	pub, err := ks.Generate(domain.KeyTypeBabe, domain.Sr25519, seedOf(1))
	require.NoError(t, err)

	_, err = ks.Sign(domain.KeyTypeBabe, pub, msg)
	require.NoError(t, err)

	ks.Lock()

	// Entry stays in storage; signing reloads it lazily.
	sig, err := ks.Sign(domain.KeyTypeBabe, pub, msg)
	require.NoError(t, err)
	assert.True(t, ks.Verify(pub, msg, sig))
}

func TestRemoveEvictsAndDeletes(t *testing.T) {
	ks := newKeystore(t)

	pub, err := ks.Generate(domain.KeyTypeBabe, domain.Ed25519, seedOf(1))
	require.NoError(t, err)
	_, err = ks.Sign(domain.KeyTypeBabe, pub, []byte("m"))
	require.NoError(t, err)

	require.NoError(t, ks.Remove(domain.KeyTypeBabe, pub))

	_, err = ks.Sign(domain.KeyTypeBabe, pub, []byte("m"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, ks.Remove(domain.KeyTypeBabe, pub), domain.ErrNotFound)
}

func TestConcurrentSigning(t *testing.T) {
	ks := newKeystore(t)
	msg := []byte("concurrent duty payload")

	pub, err := ks.Generate(domain.KeyTypeBabe, domain.Sr25519, seedOf(1))
	require.NoError(t, err)

	// Warm the cache, then hammer it from many goroutines.
	_, err = ks.Sign(domain.KeyTypeBabe, pub, msg)
	require.NoError(t, err)

	const n = 32
	sigs := make([]domain.Signature, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sigs[i], errs[i] = ks.Sign(domain.KeyTypeBabe, pub, msg)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.True(t, ks.Verify(pub, msg, sigs[i]), "signature %d must verify", i)
	}
}

func TestFileBackedReopenWrongPassphrase(t *testing.T) {
	dir := t.TempDir()

	backend, err := store.OpenFileStore(zerolog.Nop(), dir, "passphrase-P")
	require.NoError(t, err)
	ks := keystore.New(backend)

	pub, err := ks.Generate(domain.KeyTypeGran, domain.Ed25519, seedOf(1))
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	reopened, err := store.OpenFileStore(zerolog.Nop(), dir, "passphrase-Q")
	require.NoError(t, err)
	defer reopened.Close()
	ks = keystore.New(reopened)

	// The key is listed (listing never decrypts) but unusable.
	pubs, err := ks.PublicKeys(domain.KeyTypeGran)
	require.NoError(t, err)
	require.Equal(t, []domain.PublicKey{pub}, pubs)

	_, err = ks.Sign(domain.KeyTypeGran, pub, []byte("m"))
	assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
}
