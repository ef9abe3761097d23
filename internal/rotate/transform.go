// Package rotate applies a Caesar shift to whole phrases.
package rotate

import (
	"math/big"
	"strings"

	"caesar/internal/rot"
)

// Transform shifts every ASCII letter of s by n positions within its own case.
// All other bytes, including those of multi-byte UTF-8 sequences, are copied
// unchanged, so the result always has the same length as s.
func Transform(s string, n int) string {
	n = rot.Normalize(n)

	new := &strings.Builder{}
	new.Grow(len(s))

	for i := 0; i < len(s); i++ {
		new.WriteByte(shiftByte(s[i], n))
	}
	return new.String()
}

// TransformBig is Transform for shifts of any magnitude.
func TransformBig(s string, n *big.Int) string {
	return Transform(s, rot.NormalizeBig(n))
}

// shiftByte expects n already normalized.
func shiftByte(b byte, n int) byte {
	if b >= 0x80 {
		return b
	}
	return byte(rot.Rune(rune(b), n))
}
