// Package store provides the storage backends holding key material at rest.
//
// It contains concrete implementations of domain.Store:
//   - FileStore: one file per entry under a root directory, named by the
//     deterministic hex encoding of (KeyTypeID, PublicKey). Contents are
//     the raw 32-byte seed, or an authenticated scrypt/ChaCha20-Poly1305
//     envelope when a passphrase is configured.
//   - MemStore: a process-lifetime map, used by tests and ephemeral nodes.
//
// All methods are concurrency-safe via internal locking. A FileStore
// directory is owned by a single process at a time, enforced with an
// exclusive lock file taken at open.
package store
