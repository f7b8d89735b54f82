package crypto

import (
	"encoding/hex"
	"strings"
)

// HexBlock formats b as lowercase hex, 16 bytes per line, each line prefixed
// with indent.
func HexBlock(b []byte, indent string) string {
	var sb strings.Builder
	for off := 0; off < len(b); off += 16 {
		end := min(off+16, len(b))
		sb.WriteString(indent)
		sb.WriteString(hex.EncodeToString(b[off:end]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
