// Package rot rotates single ASCII letters within their own case's alphabet.
package rot

import "math/big"

// Letters is the size of each case's alphabet.
const Letters = 26

var bigLetters = big.NewInt(Letters)

// Normalize reduces n into [0, Letters) using a true modulo,
// so negative shifts rotate backwards.
func Normalize(n int) int {
	return ((n % Letters) + Letters) % Letters
}

// NormalizeBig is Normalize for shifts of any magnitude. n is not modified.
func NormalizeBig(n *big.Int) int {
	if n == nil {
		return 0
	}
	// Mod is Euclidean, the result is never negative.
	return int(new(big.Int).Mod(n, bigLetters).Int64())
}

// Rune shifts r by n positions if it is an ASCII letter and returns
// everything else unchanged.
func Rune(r rune, n int) rune {
	switch {
	case 'a' <= r && r <= 'z':
		return 'a' + (r-'a'+rune(Normalize(n)))%Letters
	case 'A' <= r && r <= 'Z':
		return 'A' + (r-'A'+rune(Normalize(n)))%Letters
	}
	return r
}
