// Package conformance is the self-test suite behind menu option 't'.
//
// It runs a fixed list of named checks against a domain.Library: known
// answers for SHA-256, AES-GCM and HKDF, X9.63 KDF properties, key
// derivation, ECDSA and ECDH behaviour, AEAD tamper detection, argument
// validation and the full demo pipeline. Where possible the library output
// is cross-checked against Tink's independent implementations.
//
// Every check runs even after a failure; the suite then fails with the code
// of the first failing check.
package conformance
