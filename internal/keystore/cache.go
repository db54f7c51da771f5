package keystore

import (
	"fmt"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
)

type cacheKey struct {
	kt  domain.KeyTypeID
	pub domain.PublicKey
}

// getOrLoad returns the decrypted pair for (kt, pub), loading it from the
// backend on a miss. The caller must hold ks.mu; the returned handle is
// valid only until the lock is released.
func (ks *Keystore) getOrLoad(kt domain.KeyTypeID, pub domain.PublicKey) (*crypto.Pair, error) {
	k := cacheKey{kt: kt, pub: pub}
	if pair, ok := ks.cache[k]; ok {
		return pair, nil
	}

	seed, err := ks.store.Get(kt, pub)
	if err != nil {
		return nil, err
	}
	pair, err := crypto.FromSeed(pub.Scheme(), seed)
	crypto.Wipe(seed)
	if err != nil {
		return nil, err
	}
	// A blob that does not reproduce the public key it is filed under
	// must never be used to sign.
	if pair.Public() != pub {
		pair.Wipe()
		return nil, fmt.Errorf("%w: stored material does not match %s", domain.ErrSchemeMismatch, pub)
	}

	ks.log.Debug().Str("keytype", kt.String()).Str("key", pub.String()).Msg("key decrypted into cache")
	ks.cache[k] = pair
	return pair, nil
}

// evict wipes and drops one cached pair, if present. Caller holds ks.mu.
func (ks *Keystore) evict(kt domain.KeyTypeID, pub domain.PublicKey) {
	k := cacheKey{kt: kt, pub: pub}
	if pair, ok := ks.cache[k]; ok {
		pair.Wipe()
		delete(ks.cache, k)
	}
}

// clear wipes and drops every cached pair. Caller holds ks.mu.
func (ks *Keystore) clear() {
	for k, pair := range ks.cache {
		pair.Wipe()
		delete(ks.cache, k)
	}
}
