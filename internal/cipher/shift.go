package cipher

import (
	"strconv"
	"strings"
)

const alphabetSize = 26

// shiftCipher rotates every letter by a fixed offset. It has no positional
// dependency at all, which is why Shift is the one concurrency-eligible
// algorithm.
type shiftCipher struct {
	shift int
}

// newShiftCipher parses the key as a non-negative decimal integer. An
// empty key means a zero shift, i.e. the identity transform.
func newShiftCipher(key string) (*shiftCipher, error) {
	if key == "" {
		return &shiftCipher{shift: 0}, nil
	}
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return nil, &InvalidKeyError{
			Algorithm: Shift,
			Key:       key,
			Reason:    "key must be a non-negative integer",
		}
	}
	return &shiftCipher{shift: int(n % alphabetSize)}, nil
}

// Apply implements the Cipher contract.
func (c *shiftCipher) Apply(text string, mode Mode) string {
	offset := c.shift
	if mode == Decrypt {
		offset = alphabetSize - c.shift
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		sb.WriteByte('A' + (ch-'A'+byte(offset))%alphabetSize)
	}
	return sb.String()
}
