// Package keystore implements the process-wide signing keystore.
//
// It composes a storage backend (domain.Store) with an in-memory cache of
// decrypted key pairs and exposes the signing façade consumed by consensus,
// networking and operator tooling: Generate, Insert, PublicKeys, Sign,
// Verify, HasKeys, SignWithAny, Remove and Lock.
//
// # Concurrency
//
// A single mutex guards the cache and serializes mutating operations
// against each other. Backend I/O on a cache miss happens while the lock
// is held; signing is sub-millisecond, so correctness is preferred over
// per-entry locking. The keystore spawns no goroutines and never blocks
// indefinitely: storage failures return immediately as errors.
package keystore
