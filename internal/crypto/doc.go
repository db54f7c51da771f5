// Package crypto implements the key-material codec for keyvault.
//
// Contents
//
//   - A closed enumeration of signature schemes (ed25519, sr25519,
//     secp256k1), dispatched through a fixed operation table
//     (Generate, FromSeed, Verify)
//   - The Pair type owning a decoded seed and its derived public key
//   - BIP-39 mnemonic generation and seed derivation (NewMnemonic,
//     SeedFromMnemonic)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// All functions are pure given their inputs; nothing here touches disk.
// Key material at rest is always the 32-byte seed (ed25519 seed,
// schnorrkel mini secret, secp256k1 scalar). Callers should treat Pair
// values as sensitive and call Wipe when a pair leaves use.
package crypto
