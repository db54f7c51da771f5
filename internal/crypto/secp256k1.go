package crypto

import (
	"bytes"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/blake2b"
)

var errScalarOutOfRange = errors.New("scalar out of range or zero")

func secp256k1Priv(seed []byte) (*secp256k1.PrivateKey, error) {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(seed)
	if overflow || s.IsZero() {
		s.Zero()
		return nil, errScalarOutOfRange
	}
	return secp256k1.NewPrivateKey(&s), nil
}

func secp256k1Derive(seed []byte) ([]byte, error) {
	priv, err := secp256k1Priv(seed)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed(), nil
}

// secp256k1Sign signs the blake2b-256 digest of msg and returns the
// 65-byte compact recoverable signature.
func secp256k1Sign(seed, msg []byte) ([]byte, error) {
	priv, err := secp256k1Priv(seed)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	digest := blake2b.Sum256(msg)
	return ecdsa.SignCompact(priv, digest[:], true), nil
}

func secp256k1Verify(pub, msg, sig []byte) bool {
	digest := blake2b.Sum256(msg)
	recovered, compressed, err := ecdsa.RecoverCompact(sig, digest[:])
	if err != nil || !compressed {
		return false
	}
	return bytes.Equal(recovered.SerializeCompressed(), pub)
}
