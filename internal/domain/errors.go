package domain

import "errors"

// Error taxonomy for keystore operations. All errors are returned to the
// immediate caller; the keystore never retries and never substitutes a
// default signature.
var (
	// ErrInvalidKeyMaterial marks bytes that do not decode under the
	// claimed scheme (wrong length, scalar out of range).
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrUnsupportedScheme marks a scheme outside the compiled-in set.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrNotFound marks a missing entry for the requested identity.
	ErrNotFound = errors.New("key not found")

	// ErrDecryptionFailed marks an authentication failure opening an
	// encrypted entry, typically a wrong passphrase. Kept distinct from
	// ErrNotFound so a bad passphrase is never reported as absence.
	ErrDecryptionFailed = errors.New("keystore decryption failed")

	// ErrSchemeMismatch marks a stored entry that does not reproduce the
	// public key it is filed under.
	ErrSchemeMismatch = errors.New("scheme mismatch for stored key")

	// ErrNoUsableKey marks a SignWithAny call where none of the candidate
	// public keys is present.
	ErrNoUsableKey = errors.New("no usable key among candidates")

	// ErrStoreLocked marks a file backend directory already held by
	// another process.
	ErrStoreLocked = errors.New("keystore directory is locked by another process")
)
