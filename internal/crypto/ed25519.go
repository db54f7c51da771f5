package crypto

import "crypto/ed25519"

func ed25519Derive(seed []byte) ([]byte, error) {
	priv := ed25519.NewKeyFromSeed(seed)
	defer Wipe(priv)
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	return pub, nil
}

func ed25519Sign(seed, msg []byte) ([]byte, error) {
	priv := ed25519.NewKeyFromSeed(seed)
	defer Wipe(priv)
	return ed25519.Sign(priv, msg), nil
}

func ed25519Verify(pub, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}
