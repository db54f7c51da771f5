package keystore

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
)

// Keystore owns a storage backend and the only decrypted key material in
// the process. Pass one instance by pointer into each collaborator; it is
// safe for concurrent use.
type Keystore struct {
	store domain.Store
	log   zerolog.Logger

	mu    sync.Mutex
	cache map[cacheKey]*crypto.Pair
}

// Option configures a Keystore at construction.
type Option func(*Keystore)

// WithLogger attaches a logger; the default is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(ks *Keystore) { ks.log = log }
}

// New returns a keystore over the given backend.
func New(store domain.Store, opts ...Option) *Keystore {
	ks := &Keystore{
		store: store,
		log:   zerolog.Nop(),
		cache: make(map[cacheKey]*crypto.Pair),
	}
	for _, opt := range opts {
		opt(ks)
	}
	return ks
}

// Generate creates a key for kt under scheme, persists it and caches the
// decrypted pair. A nil seed draws from crypto/rand; a 32-byte seed derives
// the key deterministically (reproducible fixtures, mnemonic recovery).
func (ks *Keystore) Generate(kt domain.KeyTypeID, scheme domain.Scheme, seed []byte) (domain.PublicKey, error) {
	var (
		pair *crypto.Pair
		err  error
	)
	if seed == nil {
		pair, err = crypto.Generate(scheme)
	} else {
		pair, err = crypto.FromSeed(scheme, seed)
	}
	if err != nil {
		return domain.PublicKey{}, err
	}
	return ks.admit(kt, pair)
}

// Insert stores operator-supplied key material, overwriting any existing
// entry for the derived public key.
func (ks *Keystore) Insert(kt domain.KeyTypeID, scheme domain.Scheme, seed []byte) (domain.PublicKey, error) {
	pair, err := crypto.FromSeed(scheme, seed)
	if err != nil {
		return domain.PublicKey{}, err
	}
	return ks.admit(kt, pair)
}

// admit persists a freshly decoded pair and installs it in the cache.
func (ks *Keystore) admit(kt domain.KeyTypeID, pair *crypto.Pair) (domain.PublicKey, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	pub := pair.Public()
	if err := ks.store.Put(kt, pub, pair.Seed()); err != nil {
		pair.Wipe()
		return domain.PublicKey{}, err
	}
	// Overwrite-insert: drop any previously cached pair for this identity
	// so subsequent signatures use the new bytes only.
	ks.evict(kt, pub)
	ks.cache[cacheKey{kt: kt, pub: pub}] = pair
	ks.log.Info().Str("keytype", kt.String()).Str("key", pub.String()).Msg("key admitted")
	return pub, nil
}

// PublicKeys lists stored keys for kt. Pure storage listing, no decryption.
func (ks *Keystore) PublicKeys(kt domain.KeyTypeID) ([]domain.PublicKey, error) {
	return ks.store.List(kt)
}

// Sign produces a signature over msg with the key stored under (kt, pub).
func (ks *Keystore) Sign(kt domain.KeyTypeID, pub domain.PublicKey, msg []byte) (domain.Signature, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	pair, err := ks.getOrLoad(kt, pub)
	if err != nil {
		return nil, err
	}
	return pair.Sign(msg)
}

// Verify checks sig over msg against pub. Pure; never touches storage.
func (ks *Keystore) Verify(pub domain.PublicKey, msg []byte, sig domain.Signature) bool {
	return crypto.Verify(pub, msg, sig)
}

// HasKeys reports whether every referenced key is present. Consensus uses
// this to check session-key availability before committing to a duty.
// Presence is checked against the cache and the storage listing; nothing
// is decrypted.
func (ks *Keystore) HasKeys(refs []domain.KeyRef) (bool, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	listed := make(map[domain.KeyTypeID]map[domain.PublicKey]bool)
	for _, ref := range refs {
		if _, ok := ks.cache[cacheKey{kt: ref.KeyType, pub: ref.Public}]; ok {
			continue
		}
		pubs, ok := listed[ref.KeyType]
		if !ok {
			stored, err := ks.store.List(ref.KeyType)
			if err != nil {
				return false, err
			}
			pubs = make(map[domain.PublicKey]bool, len(stored))
			for _, pub := range stored {
				pubs[pub] = true
			}
			listed[ref.KeyType] = pubs
		}
		if !pubs[ref.Public] {
			return false, nil
		}
	}
	return true, nil
}

// SignWithAny signs with the first candidate present in storage, in the
// caller-supplied order. First match wins so behavior is deterministic.
func (ks *Keystore) SignWithAny(kt domain.KeyTypeID, candidates []domain.PublicKey, msg []byte) (domain.PublicKey, domain.Signature, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	for _, pub := range candidates {
		pair, err := ks.getOrLoad(kt, pub)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return domain.PublicKey{}, nil, err
		}
		sig, err := pair.Sign(msg)
		if err != nil {
			return domain.PublicKey{}, nil, err
		}
		return pub, sig, nil
	}
	return domain.PublicKey{}, nil, domain.ErrNoUsableKey
}

// Remove deletes the entry and evicts any cached handle.
func (ks *Keystore) Remove(kt domain.KeyTypeID, pub domain.PublicKey) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	ks.evict(kt, pub)
	return ks.store.Remove(kt, pub)
}

// Lock wipes and drops every decrypted pair. Entries stay in storage and
// reload lazily on next use.
func (ks *Keystore) Lock() {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.clear()
	ks.log.Info().Msg("keystore cache cleared")
}

var _ domain.Keystore = (*Keystore)(nil)
