package store

import (
	"sync"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
)

// MemStore is the volatile backend: a process-lifetime map from
// (KeyTypeID, PublicKey) to raw seed bytes. Used by tests and ephemeral
// dev nodes; contents are discarded at Close or process exit.
type MemStore struct {
	mu      sync.Mutex
	entries map[memKey][]byte
}

type memKey struct {
	kt  domain.KeyTypeID
	pub domain.PublicKey
}

// NewMemStore returns an empty volatile backend.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[memKey][]byte)}
}

// Put stores a copy of seed under (kt, pub), overwriting any previous entry.
func (s *MemStore) Put(kt domain.KeyTypeID, pub domain.PublicKey, seed []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := memKey{kt: kt, pub: pub}
	if old, ok := s.entries[k]; ok {
		crypto.Wipe(old)
	}
	s.entries[k] = append([]byte(nil), seed...)
	return nil
}

// Get returns a copy of the seed stored under (kt, pub).
func (s *MemStore) Get(kt domain.KeyTypeID, pub domain.PublicKey) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed, ok := s.entries[memKey{kt: kt, pub: pub}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), seed...), nil
}

// List enumerates public keys stored under kt.
func (s *MemStore) List(kt domain.KeyTypeID) ([]domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PublicKey
	for k := range s.entries {
		if k.kt == kt {
			out = append(out, k.pub)
		}
	}
	return out, nil
}

// Remove deletes the entry under (kt, pub).
func (s *MemStore) Remove(kt domain.KeyTypeID, pub domain.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := memKey{kt: kt, pub: pub}
	seed, ok := s.entries[k]
	if !ok {
		return domain.ErrNotFound
	}
	crypto.Wipe(seed)
	delete(s.entries, k)
	return nil
}

// Close wipes and drops every entry.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, seed := range s.entries {
		crypto.Wipe(seed)
		delete(s.entries, k)
	}
	return nil
}

var _ domain.Store = (*MemStore)(nil)
