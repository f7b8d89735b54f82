// Package ecc implements the three elliptic-curve operations of the demo
// pipeline on top of a domain.Library.
//
// # Operations
//
//   - Verify checks a raw r||s signature over a digest against an
//     uncompressed Qx||Qy public key.
//   - Sign produces a raw r||s signature with a private scalar. Each call
//     draws a fresh nonce from the supplied RNG, so two signatures over the
//     same digest differ.
//   - ECDHE generates two ephemeral key pairs, computes the shared secret in
//     both directions and fails unless the two agree.
//
// # Errors
//
// Every operation returns an error wrapping a types.ErrorCode. Argument
// validation happens before any key object is created; any key object that
// was created is freed on every path.
package ecc
