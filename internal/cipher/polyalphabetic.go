package cipher

import "strings"

// polyalphabeticCipher implements the Vigenere scheme: character i is
// shifted by the key letter at position i mod len(key). The shift applied
// to a character depends on its absolute position in the text, so the
// algorithm is not chunk-independent.
type polyalphabeticCipher struct {
	key string
}

// newPolyalphabeticCipher validates that the key consists of letters only.
// An empty key is accepted and behaves as the identity keystream.
func newPolyalphabeticCipher(key string) (*polyalphabeticCipher, error) {
	upper := strings.ToUpper(key)
	for i := 0; i < len(upper); i++ {
		if upper[i] < 'A' || upper[i] > 'Z' {
			return nil, &InvalidKeyError{
				Algorithm: Polyalphabetic,
				Key:       key,
				Reason:    "key must contain only letters",
			}
		}
	}
	if upper == "" {
		upper = "A" // zero shift everywhere
	}
	return &polyalphabeticCipher{key: upper}, nil
}

// Apply implements the Cipher contract.
func (c *polyalphabeticCipher) Apply(text string, mode Mode) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		k := c.key[i%len(c.key)] - 'A'
		if mode == Decrypt {
			k = alphabetSize - k
		}
		sb.WriteByte('A' + (text[i]-'A'+k)%alphabetSize)
	}
	return sb.String()
}
