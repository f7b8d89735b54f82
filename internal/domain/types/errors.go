package types

import (
	"errors"
	"fmt"
)

// ErrorCode is the numeric status returned by every stage. Zero is success.
type ErrorCode int

// These constants identify a specific status.
const (
	// CodeOK is the success status.
	CodeOK ErrorCode = 0

	// ErrUnknown is used for errors that carry no status of their own.
	ErrUnknown ErrorCode = -1

	// ErrMPRead is returned when a big-endian integer cannot be decoded.
	ErrMPRead ErrorCode = -111

	// ErrMPTo is returned when an integer does not fit its output width.
	ErrMPTo ErrorCode = -113

	// ErrMemory is returned when a handle or buffer cannot be allocated.
	ErrMemory ErrorCode = -125

	// ErrBuffer is returned when an output buffer is too small.
	ErrBuffer ErrorCode = -132

	// ErrECCBadArg is returned when a key object is of the wrong kind or
	// carries an invalid point.
	ErrECCBadArg ErrorCode = -170

	// ErrECCCurveOID is returned for an unsupported curve identifier.
	ErrECCCurveOID ErrorCode = -172

	// ErrBadFuncArg is returned when argument validation fails.
	ErrBadFuncArg ErrorCode = -173

	// ErrNotCompiledIn is returned for a feature that is disabled.
	ErrNotCompiledIn ErrorCode = -174

	// ErrAESGCMAuth is returned when an authentication tag does not match.
	ErrAESGCMAuth ErrorCode = -180

	// ErrBadState is returned when the library is used before Init or after
	// Cleanup.
	ErrBadState ErrorCode = -192

	// ErrRNGFailure is returned when the random source fails.
	ErrRNGFailure ErrorCode = -199

	// ErrECCOutOfRange is returned when a key component is out of range.
	ErrECCOutOfRange ErrorCode = -217

	// ErrSigVerify is returned when a well-formed signature does not verify.
	ErrSigVerify ErrorCode = -229

	// ErrBadCond is returned when an internal consistency check fails, such
	// as two sides of a key agreement disagreeing.
	ErrBadCond ErrorCode = -230

	// ErrHashType is returned for an unsupported hash type.
	ErrHashType ErrorCode = -232
)

var errorStrings = map[ErrorCode]string{
	CodeOK:           "no error",
	ErrUnknown:       "unknown error",
	ErrMPRead:        "mp_read error state",
	ErrMPTo:          "mp_to_xxx error state, can't convert",
	ErrMemory:        "out of memory error",
	ErrBuffer:        "output buffer too small or input too large",
	ErrECCBadArg:     "ECC input argument wrong type, invalid input",
	ErrECCCurveOID:   "Unsupported ECC OID curve type",
	ErrBadFuncArg:    "Bad function argument",
	ErrNotCompiledIn: "Feature not compiled in",
	ErrAESGCMAuth:    "AES-GCM Authentication check fail",
	ErrBadState:      "Bad state operation",
	ErrRNGFailure:    "RNG Failed, Reinitialize",
	ErrECCOutOfRange: "ECC key component out of range",
	ErrSigVerify:     "Signature verify error",
	ErrBadCond:       "Bad condition variable operation",
	ErrHashType:      "Hash type not enabled/available",
}

// ErrorString returns the human-readable description of code.
func ErrorString(code ErrorCode) string {
	if s, ok := errorStrings[code]; ok {
		return s
	}
	return "unknown error number"
}

// Error satisfies the error interface and prints the description of the code.
func (c ErrorCode) Error() string { return ErrorString(c) }

// Int returns the code as a plain integer.
func (c ErrorCode) Int() int { return int(c) }

// Error identifies a failed status together with context about the failure.
// It wraps an ErrorCode so callers can test for a specific status with
// errors.Is and recover it with errors.As.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string { return e.Description }

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error { return e.Err }

// NewError creates an Error for code with a formatted description.
func NewError(code ErrorCode, format string, args ...any) Error {
	return Error{Err: code, Description: fmt.Sprintf(format, args...)}
}

// CodeOf returns the status carried by err. A nil error is CodeOK and an
// error without a status is ErrUnknown.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return ErrUnknown
}
