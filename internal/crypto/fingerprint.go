package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns a short, grouped hex fingerprint of a public point.
//
// It hashes the SEC1 uncompressed encoding (0x04||X||Y) with SHA-256 and
// truncates to 10 bytes (five groups of four hex chars).
func Fingerprint(x, y []byte) string {
	h := sha256.New()
	h.Write([]byte{0x04})
	h.Write(x)
	h.Write(y)
	digits := hex.EncodeToString(h.Sum(nil)[:10])

	groups := make([]string, 0, len(digits)/4)
	for i := 0; i < len(digits); i += 4 {
		groups = append(groups, digits[i:i+4])
	}
	return strings.Join(groups, ":")
}
