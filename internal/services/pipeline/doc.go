// Package pipeline runs the end-to-end algorithm demo: random plaintext,
// SHA-256 digest, ECDSA sign and verify, ephemeral ECDH, key derivation and
// authenticated encryption.
//
// Each stage prints one "<stage>: Ret <code>" line to the console and emits
// one log record. The first failing stage aborts the run and its error, which
// wraps a types.ErrorCode, is returned. Every library handle opened during a
// run is released before Execute returns.
package pipeline
