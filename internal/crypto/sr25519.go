package crypto

import (
	"github.com/ChainSafe/go-schnorrkel"
)

// sr25519SigningContext is the transcript label shared with substrate-style
// chains; both sides must agree on it for signatures to verify.
var sr25519SigningContext = []byte("substrate")

func sr25519MiniSecret(seed []byte) (*schnorrkel.MiniSecretKey, error) {
	var raw [32]byte
	copy(raw[:], seed)
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
	Wipe(raw[:])
	return msk, err
}

func sr25519Derive(seed []byte) ([]byte, error) {
	msk, err := sr25519MiniSecret(seed)
	if err != nil {
		return nil, err
	}
	pub := msk.Public().Encode()
	return pub[:], nil
}

func sr25519Sign(seed, msg []byte) ([]byte, error) {
	msk, err := sr25519MiniSecret(seed)
	if err != nil {
		return nil, err
	}
	t := schnorrkel.NewSigningContext(sr25519SigningContext, msg)
	sig, err := msk.ExpandEd25519().Sign(t)
	if err != nil {
		return nil, err
	}
	enc := sig.Encode()
	return enc[:], nil
}

func sr25519Verify(pub, msg, sig []byte) bool {
	var pubRaw [32]byte
	copy(pubRaw[:], pub)
	pk := new(schnorrkel.PublicKey)
	if err := pk.Decode(pubRaw); err != nil {
		return false
	}

	var sigRaw [64]byte
	copy(sigRaw[:], sig)
	s := new(schnorrkel.Signature)
	if err := s.Decode(sigRaw); err != nil {
		return false
	}

	t := schnorrkel.NewSigningContext(sr25519SigningContext, msg)
	ok, err := pk.Verify(s, t)
	return ok && err == nil
}
