// Package crypto is the cryptography provider behind domain.Library.
//
// Contents
//
//   - Library lifecycle (New, Init, Cleanup) and handle accounting
//     (OpenHandles)
//   - Random generator contexts over an injectable entropy source (NewRNG)
//   - SHA-2 hash contexts (NewHash)
//   - P-256 and P-224 key objects: import from raw coordinates or scalar,
//     generation and ECDH shared secrets via github.com/aead/ecdh
//   - ECDSA signing and verification over raw (r, s) pairs
//   - ANSI X9.63 and HKDF key derivation (KDF)
//   - AES-128-GCM and ChaCha20-Poly1305 with detached tags (NewAEAD)
//   - Display helpers (Fingerprint, HexBlock)
//
// # Notes
//
// Every failure is a types.Error carrying a numeric status, so callers can
// report it with ErrorString. Handles must be freed by their owner; Free is
// idempotent and wipes private material where the handle holds any.
package crypto
