package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"keyvault/internal/domain"
)

// schemeOps is one row of the scheme dispatch table. derive and sign take
// the 32-byte seed; decode-time validation lives in derive.
type schemeOps struct {
	derive func(seed []byte) (pub []byte, err error)
	sign   func(seed, msg []byte) ([]byte, error)
	verify func(pub, msg, sig []byte) bool
}

// ops is the closed table of supported schemes. Adding a scheme means
// adding a row here and a constant in domain, nothing else.
var ops = map[domain.Scheme]schemeOps{
	domain.Ed25519:   {derive: ed25519Derive, sign: ed25519Sign, verify: ed25519Verify},
	domain.Sr25519:   {derive: sr25519Derive, sign: sr25519Sign, verify: sr25519Verify},
	domain.Secp256k1: {derive: secp256k1Derive, sign: secp256k1Sign, verify: secp256k1Verify},
}

// Pair owns a decoded private seed and its derived public key. It is only
// ever held inside the keystore boundary; callers see PublicKey and
// Signature values.
type Pair struct {
	public domain.PublicKey
	seed   []byte
}

// Generate draws a fresh key for scheme from crypto/rand.
func Generate(scheme domain.Scheme) (*Pair, error) {
	if _, ok := ops[scheme]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedScheme, scheme)
	}
	seed := make([]byte, domain.SeedLen)
	for {
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
		p, err := FromSeed(scheme, seed)
		if err == nil {
			Wipe(seed)
			return p, nil
		}
		// Out-of-range scalar (secp256k1, ~2^-128): redraw.
		if !errors.Is(err, domain.ErrInvalidKeyMaterial) {
			return nil, err
		}
	}
}

// FromSeed decodes a 32-byte seed into a Pair, validating length and, for
// secp256k1, scalar range.
func FromSeed(scheme domain.Scheme, seed []byte) (*Pair, error) {
	o, ok := ops[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedScheme, scheme)
	}
	if len(seed) != domain.SeedLen {
		return nil, fmt.Errorf("%w: %s seed: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, scheme, domain.SeedLen, len(seed))
	}
	pubBytes, err := o.derive(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidKeyMaterial, scheme, err)
	}
	pub, err := domain.NewPublicKey(scheme, pubBytes)
	if err != nil {
		return nil, err
	}
	return &Pair{public: pub, seed: append([]byte(nil), seed...)}, nil
}

// Public returns the derived public key.
func (p *Pair) Public() domain.PublicKey { return p.public }

// Scheme returns the pair's scheme tag.
func (p *Pair) Scheme() domain.Scheme { return p.public.Scheme() }

// Seed returns the private seed. The slice aliases the pair's own buffer;
// it must not outlive the pair.
func (p *Pair) Seed() []byte { return p.seed }

// Sign produces a signature over msg in the scheme's fixed-width encoding.
func (p *Pair) Sign(msg []byte) (domain.Signature, error) {
	sig, err := ops[p.public.Scheme()].sign(p.seed, msg)
	if err != nil {
		return nil, err
	}
	return domain.Signature(sig), nil
}

// Wipe zeroes the private seed. The pair is unusable afterwards.
func (p *Pair) Wipe() { Wipe(p.seed) }

// Verify checks sig over msg against pub. Unknown schemes and malformed
// signatures verify false, never panic.
func Verify(pub domain.PublicKey, msg []byte, sig domain.Signature) bool {
	o, ok := ops[pub.Scheme()]
	if !ok {
		return false
	}
	if len(sig) != domain.SignatureLen(pub.Scheme()) {
		return false
	}
	return o.verify(pub.Bytes(), msg, sig)
}
