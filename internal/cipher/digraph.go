package cipher

import "strings"

const gridSize = 5

// digraphCipher implements the Playfair scheme: the key seeds a 5x5 letter
// grid and the text is substituted two letters at a time according to the
// relative grid positions of each pair. Pairing depends on neighbouring
// characters, so the algorithm is not chunk-independent and never runs
// concurrently.
type digraphCipher struct {
	grid [gridSize * gridSize]byte
	// pos maps letter-'A' to its index in grid; J shares I's cell.
	pos [alphabetSize]int
}

// newDigraphCipher builds the grid from the key: key letters first in
// order of first appearance, then the rest of the alphabet. J is merged
// into I throughout. The key must consist of letters only; an empty key
// yields the plain alphabet grid.
func newDigraphCipher(key string) (*digraphCipher, error) {
	upper := strings.ToUpper(key)
	for i := 0; i < len(upper); i++ {
		if upper[i] < 'A' || upper[i] > 'Z' {
			return nil, &InvalidKeyError{
				Algorithm: Digraph,
				Key:       key,
				Reason:    "key must contain only letters",
			}
		}
	}

	c := &digraphCipher{}
	var seen [alphabetSize]bool
	seen['J'-'A'] = true // J never occupies a cell of its own
	n := 0

	place := func(ch byte) {
		if !seen[ch-'A'] {
			seen[ch-'A'] = true
			c.grid[n] = ch
			c.pos[ch-'A'] = n
			n++
		}
	}

	for i := 0; i < len(upper); i++ {
		ch := upper[i]
		if ch == 'J' {
			ch = 'I'
		}
		place(ch)
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		place(ch)
	}
	c.pos['J'-'A'] = c.pos['I'-'A']
	return c, nil
}

// pairs prepares the text for digraph substitution: J becomes I, a doubled
// letter is split by inserting X (Q when the letter is X itself), and a
// lone trailing letter is padded with X (Z when that letter is X).
func (c *digraphCipher) pairs(text string) []byte {
	out := make([]byte, 0, len(text)+2)
	i := 0
	for i < len(text) {
		a := text[i]
		if a == 'J' {
			a = 'I'
		}
		if i+1 < len(text) {
			b := text[i+1]
			if b == 'J' {
				b = 'I'
			}
			if a != b {
				out = append(out, a, b)
				i += 2
				continue
			}
			// doubled letter: split it
			filler := byte('X')
			if a == 'X' {
				filler = 'Q'
			}
			out = append(out, a, filler)
			i++
			continue
		}
		// lone trailing letter: pad
		filler := byte('X')
		if a == 'X' {
			filler = 'Z'
		}
		out = append(out, a, filler)
		i++
	}
	return out
}

// Apply implements the Cipher contract. Decryption does not strip the
// padding introduced on the encrypt path.
func (c *digraphCipher) Apply(text string, mode Mode) string {
	step := 1
	if mode == Decrypt {
		step = gridSize - 1
	}

	prepared := c.pairs(text)
	out := make([]byte, len(prepared))
	for i := 0; i+1 < len(prepared); i += 2 {
		pa := c.pos[prepared[i]-'A']
		pb := c.pos[prepared[i+1]-'A']
		ra, ca := pa/gridSize, pa%gridSize
		rb, cb := pb/gridSize, pb%gridSize

		switch {
		case ra == rb:
			ca = (ca + step) % gridSize
			cb = (cb + step) % gridSize
		case ca == cb:
			ra = (ra + step) % gridSize
			rb = (rb + step) % gridSize
		default:
			ca, cb = cb, ca
		}
		out[i] = c.grid[ra*gridSize+ca]
		out[i+1] = c.grid[rb*gridSize+cb]
	}
	return string(out)
}
