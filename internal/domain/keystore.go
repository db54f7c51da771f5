package domain

// Store persists private key material addressed by (KeyTypeID, PublicKey).
// Implementations hold only the encrypted/plain at-rest representation;
// decrypted secrets live exclusively in the keystore's cache.
//
// A Store is owned by exactly one Keystore instance in one process.
type Store interface {
	// Put writes seed under (kt, pub), overwriting any previous entry.
	Put(kt KeyTypeID, pub PublicKey, seed []byte) error

	// Get returns the seed stored under (kt, pub). It fails with
	// ErrNotFound when absent and ErrDecryptionFailed when the entry
	// cannot be authenticated with the configured passphrase.
	Get(kt KeyTypeID, pub PublicKey) ([]byte, error)

	// List enumerates the public keys stored under kt without decrypting.
	List(kt KeyTypeID) ([]PublicKey, error)

	// Remove deletes the entry under (kt, pub), failing with ErrNotFound
	// when absent.
	Remove(kt KeyTypeID, pub PublicKey) error

	// Close releases the backing medium (lock file, in-memory map).
	Close() error
}

// Keystore is the process-wide signing façade consumed by consensus,
// networking and operator tooling. Implementations are safe for concurrent
// use; raw private bytes never cross this boundary.
type Keystore interface {
	// Generate creates a key for kt under scheme. A nil seed draws from a
	// cryptographically secure source; a 32-byte seed derives the key
	// deterministically. The key is persisted and cached.
	Generate(kt KeyTypeID, scheme Scheme, seed []byte) (PublicKey, error)

	// Insert stores operator-supplied key material.
	Insert(kt KeyTypeID, scheme Scheme, seed []byte) (PublicKey, error)

	// PublicKeys lists stored keys for kt via the backend, no decryption.
	PublicKeys(kt KeyTypeID) ([]PublicKey, error)

	// Sign produces a signature over msg with the key stored under
	// (kt, pub).
	Sign(kt KeyTypeID, pub PublicKey, msg []byte) (Signature, error)

	// Verify checks sig over msg against pub. Pure; touches no state.
	Verify(pub PublicKey, msg []byte, sig Signature) bool

	// HasKeys reports whether every referenced key is present.
	HasKeys(refs []KeyRef) (bool, error)

	// SignWithAny signs with the first candidate present in storage,
	// preserving the caller-supplied order.
	SignWithAny(kt KeyTypeID, candidates []PublicKey, msg []byte) (PublicKey, Signature, error)

	// Remove deletes the entry and evicts any cached handle.
	Remove(kt KeyTypeID, pub PublicKey) error

	// Lock wipes and drops every decrypted handle from the cache.
	// Entries remain in storage and reload on next use.
	Lock()
}
