// Package params holds the fixed-size parameter sets used by the demo.
//
// A Params value is built once from a curve, KDF and cipher selection and
// validated once. Every buffer in the pipeline is sized from it, so there are
// no scattered size constants. The package also carries the compiled-in test
// key pairs, nonce and associated data.
package params
