package types

// CurveID identifies a supported elliptic curve.
type CurveID int

const (
	CurveInvalid CurveID = iota
	CurveSECP256R1
	CurveSECP224R1
)

// String returns the SEC name of the curve.
func (c CurveID) String() string {
	switch c {
	case CurveSECP256R1:
		return "secp256r1"
	case CurveSECP224R1:
		return "secp224r1"
	default:
		return "invalid"
	}
}

// ParseCurve maps a SEC or NIST curve name to its identifier.
func ParseCurve(name string) (CurveID, bool) {
	switch name {
	case "secp256r1", "p256", "P-256", "prime256v1":
		return CurveSECP256R1, true
	case "secp224r1", "p224", "P-224":
		return CurveSECP224R1, true
	}
	return CurveInvalid, false
}

// HashType identifies a hash algorithm.
type HashType int

const (
	HashNone HashType = iota
	HashSHA224
	HashSHA256
	HashSHA384
	HashSHA512
)

// String returns the conventional name of the hash.
func (h HashType) String() string {
	switch h {
	case HashSHA224:
		return "SHA224"
	case HashSHA256:
		return "SHA256"
	case HashSHA384:
		return "SHA384"
	case HashSHA512:
		return "SHA512"
	default:
		return "NONE"
	}
}

// KeyKind reports which halves of a key pair a key object holds.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyPublic
	KeyPrivate
	KeyPrivateOnly
)

// String returns the string form of the key kind.
func (k KeyKind) String() string {
	switch k {
	case KeyPublic:
		return "public"
	case KeyPrivate:
		return "private"
	case KeyPrivateOnly:
		return "private-only"
	default:
		return "none"
	}
}

// KDFType selects the key-derivation function.
type KDFType string

const (
	KDFX963 KDFType = "x963"
	KDFHKDF KDFType = "hkdf"
)

// String returns the string form of the KDF type.
func (k KDFType) String() string { return string(k) }

// CipherSuite selects the authenticated cipher.
type CipherSuite string

const (
	CipherAES128GCM        CipherSuite = "aes-128-gcm"
	CipherChaCha20Poly1305 CipherSuite = "chacha20-poly1305"
)

// String returns the string form of the cipher suite.
func (c CipherSuite) String() string { return string(c) }
