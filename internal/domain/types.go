package domain

import (
	"encoding/hex"
	"fmt"
)

// KeyTypeID tags the role a key is used for (block authoring, finality
// voting, ...). It identifies purpose, not algorithm.
type KeyTypeID [4]byte

// Well-known session-key roles.
var (
	KeyTypeBabe = KeyTypeID{'b', 'a', 'b', 'e'}
	KeyTypeGran = KeyTypeID{'g', 'r', 'a', 'n'}
	KeyTypeAura = KeyTypeID{'a', 'u', 'r', 'a'}
	KeyTypeImon = KeyTypeID{'i', 'm', 'o', 'n'}
	KeyTypeAudi = KeyTypeID{'a', 'u', 'd', 'i'}
)

// KeyTypeFromString parses a 4-character role tag.
func KeyTypeFromString(s string) (KeyTypeID, error) {
	var kt KeyTypeID
	if len(s) != len(kt) {
		return kt, fmt.Errorf("key type %q: want %d characters, got %d", s, len(kt), len(s))
	}
	copy(kt[:], s)
	return kt, nil
}

// String returns the role tag as text.
func (kt KeyTypeID) String() string { return string(kt[:]) }

// Hex returns the role tag hex-encoded, as used in entry file names.
func (kt KeyTypeID) Hex() string { return hex.EncodeToString(kt[:]) }

// Scheme identifies a signature algorithm. The set is closed: schemes are
// added by extending the enumeration and its operation table, never by
// open-ended dynamic dispatch.
type Scheme uint8

const (
	// Ed25519 is RFC 8032 Edwards-curve signing.
	Ed25519 Scheme = iota + 1
	// Sr25519 is Schnorr signing over Ristretto255 (schnorrkel).
	Sr25519
	// Secp256k1 is ECDSA over secp256k1 with compact recoverable signatures.
	Secp256k1
)

// SchemeFromString parses a scheme name as used on the CLI and in config.
func SchemeFromString(s string) (Scheme, error) {
	switch s {
	case "ed25519":
		return Ed25519, nil
	case "sr25519":
		return Sr25519, nil
	case "secp256k1":
		return Secp256k1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, s)
}

func (s Scheme) String() string {
	switch s {
	case Ed25519:
		return "ed25519"
	case Sr25519:
		return "sr25519"
	case Secp256k1:
		return "secp256k1"
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// SeedLen is the length of private key material at rest for every scheme.
const SeedLen = 32

// MaxPublicKeyLen is the widest public key across supported schemes
// (secp256k1 compressed, 33 bytes).
const MaxPublicKeyLen = 33

// PublicKeyLen returns the public key length for s, or 0 if unsupported.
func PublicKeyLen(s Scheme) int {
	switch s {
	case Ed25519, Sr25519:
		return 32
	case Secp256k1:
		return 33
	}
	return 0
}

// SignatureLen returns the signature length for s, or 0 if unsupported.
func SignatureLen(s Scheme) int {
	switch s {
	case Ed25519, Sr25519:
		return 64
	case Secp256k1:
		return 65
	}
	return 0
}

// PublicKey is a scheme-tagged public key. It is a comparable value type,
// cheap to copy, safe to log, and the only key identity callers ever see.
type PublicKey struct {
	scheme Scheme
	n      uint8
	raw    [MaxPublicKeyLen]byte
}

// NewPublicKey builds a PublicKey from raw bytes, validating the length
// against the scheme.
func NewPublicKey(scheme Scheme, b []byte) (PublicKey, error) {
	want := PublicKeyLen(scheme)
	if want == 0 {
		return PublicKey{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	if len(b) != want {
		return PublicKey{}, fmt.Errorf("%w: %s public key: want %d bytes, got %d",
			ErrInvalidKeyMaterial, scheme, want, len(b))
	}
	pk := PublicKey{scheme: scheme, n: uint8(want)}
	copy(pk.raw[:], b)
	return pk, nil
}

// Scheme returns the embedded scheme tag.
func (pk PublicKey) Scheme() Scheme { return pk.scheme }

// Bytes returns the raw public key bytes.
func (pk PublicKey) Bytes() []byte { return pk.raw[:pk.n] }

// Hex returns the raw bytes hex-encoded.
func (pk PublicKey) Hex() string { return hex.EncodeToString(pk.Bytes()) }

// IsZero reports whether pk is the zero value.
func (pk PublicKey) IsZero() bool { return pk.scheme == 0 }

func (pk PublicKey) String() string {
	return fmt.Sprintf("%s:%s", pk.scheme, pk.Hex())
}

// Signature is a detached signature in the scheme's fixed-width encoding.
type Signature []byte

// KeyRef names one stored entry: a role tag plus the public key under it.
type KeyRef struct {
	KeyType KeyTypeID
	Public  PublicKey
}
