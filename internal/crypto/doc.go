// Package crypto implements the capability provider consumed by the chat
// core.
//
// Contents
//
//   - X25519 key generation with RFC 7748 clamping and an Ed25519 signing
//     pair, held privately per session (GenerateKeyPair)
//   - Random pairing-code minting (GeneratePairingCode)
//   - Best-effort key wiping on Reset
//   - Short public-key fingerprints for display (Fingerprint)
//
// The chat core only sequences GenerateKeyPair, GeneratePairingCode and
// Reset; it never reads key material.
package crypto
