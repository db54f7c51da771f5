package store

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"keyvault/internal/crypto"
	"keyvault/internal/domain"
)

const lockFileName = "LOCK"

// FileStore keeps one file per entry under a root directory. File names are
// hex(KeyTypeID) || hex(scheme byte) || hex(public key bytes); contents are
// the raw seed or its passphrase envelope. The directory listing is the
// source of truth for List; there is no manifest.
//
// A directory is owned by one process at a time: OpenFileStore takes an
// exclusive lock file and fails with domain.ErrStoreLocked when another
// process already holds it. Sharing a directory between processes is
// unsupported.
type FileStore struct {
	dir        string
	passphrase string
	log        zerolog.Logger
	mu         sync.Mutex
	closed     bool
}

// OpenFileStore creates dir if needed, acquires the lock file and returns
// the backend. An empty passphrase stores seeds in the clear; otherwise
// every entry is sealed with an authenticated envelope.
func OpenFileStore(log zerolog.Logger, dir, passphrase string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	lock := filepath.Join(dir, lockFileName)
	f, err := os.OpenFile(lock, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreLocked, lock)
		}
		return nil, err
	}
	_, werr := f.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(lock)
		return nil, werr
	}

	log.Debug().Str("dir", dir).Bool("encrypted", passphrase != "").Msg("keystore directory opened")
	return &FileStore{dir: dir, passphrase: passphrase, log: log}, nil
}

// Put writes seed under (kt, pub), overwriting any previous entry.
func (s *FileStore) Put(kt domain.KeyTypeID, pub domain.PublicKey, seed []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := seed
	if s.passphrase != "" {
		sealed, err := sealEntry(s.passphrase, seed)
		if err != nil {
			return err
		}
		content = sealed
	}
	path := filepath.Join(s.dir, entryName(kt, pub))
	if err := writeFile(path, content, 0o600); err != nil {
		s.log.Error().Err(err).Str("key", pub.String()).Msg("write key file")
		return err
	}
	s.log.Debug().Str("keytype", kt.String()).Str("key", pub.String()).Msg("key stored")
	return nil
}

// Get returns the seed stored under (kt, pub).
func (s *FileStore) Get(kt domain.KeyTypeID, pub domain.PublicKey) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, entryName(kt, pub)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.passphrase == "" {
		return blob, nil
	}
	seed, err := openEntry(s.passphrase, blob)
	if err != nil {
		crypto.Wipe(blob)
		return nil, err
	}
	return seed, nil
}

// List enumerates public keys under kt by decoding file names only.
func (s *FileStore) List(kt domain.KeyTypeID) ([]domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []domain.PublicKey
	prefix := kt.Hex()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		pub, ok := parseEntryName(e.Name(), prefix)
		if !ok {
			continue // lock file, temp file, or foreign content
		}
		out = append(out, pub)
	}
	return out, nil
}

// Remove deletes the entry under (kt, pub).
func (s *FileStore) Remove(kt domain.KeyTypeID, pub domain.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, entryName(kt, pub)))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	if err == nil {
		s.log.Debug().Str("keytype", kt.String()).Str("key", pub.String()).Msg("key removed")
	}
	return err
}

// Close releases the lock file. The store is unusable afterwards.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return os.Remove(filepath.Join(s.dir, lockFileName))
}

// entryName is the deterministic, collision-free file name for an entry.
func entryName(kt domain.KeyTypeID, pub domain.PublicKey) string {
	return kt.Hex() + hex.EncodeToString([]byte{byte(pub.Scheme())}) + pub.Hex()
}

// parseEntryName reverses entryName for files under the given key-type
// prefix. Non-entry names report ok=false.
func parseEntryName(name, ktPrefix string) (domain.PublicKey, bool) {
	if len(name) <= len(ktPrefix)+2 || name[:len(ktPrefix)] != ktPrefix {
		return domain.PublicKey{}, false
	}
	rest, err := hex.DecodeString(name[len(ktPrefix):])
	if err != nil || len(rest) < 2 {
		return domain.PublicKey{}, false
	}
	pub, err := domain.NewPublicKey(domain.Scheme(rest[0]), rest[1:])
	if err != nil {
		return domain.PublicKey{}, false
	}
	return pub, true
}

var _ domain.Store = (*FileStore)(nil)
