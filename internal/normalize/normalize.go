// Package normalize maps raw input characters onto the working character
// set of the ciphers: the uppercase letters A-Z. Letters are uppercased,
// decimal digits are spelled out as words, and every other character is
// dropped.
package normalize

import (
	"bufio"
	"io"
	"strings"
)

// digitWords spells out the decimal digits, indexed by digit value.
var digitWords = [10]string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR",
	"FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
}

// Rune maps a single raw rune to its normalized representation. The result
// is empty for characters outside the alphanumeric set.
func Rune(r rune) string {
	switch {
	case r >= 'A' && r <= 'Z':
		return string(r)
	case r >= 'a' && r <= 'z':
		return string(r - 'a' + 'A')
	case r >= '0' && r <= '9':
		return digitWords[r-'0']
	default:
		return ""
	}
}

// String normalizes every rune of s and concatenates the results.
func String(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		sb.WriteString(Rune(r))
	}
	return sb.String()
}

// FromReader consumes r until EOF and returns the normalized text.
// Whitespace never survives normalization, so token boundaries in the raw
// input leave no trace in the result.
func FromReader(r io.Reader) (string, error) {
	var sb strings.Builder
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		sb.WriteString(Rune(ch))
	}
}
