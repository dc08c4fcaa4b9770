// Package cipher defines the contract shared by every classical cipher
// algorithm and the factory that constructs concrete instances from an
// algorithm identifier and a key.
//
// A Cipher is immutable once constructed. Apply is a pure function of the
// instance, the text and the mode, which is what makes a single instance
// safe to share between concurrent callers.
package cipher

import (
	"errors"
	"fmt"
)

// Mode selects the direction of the transform.
type Mode int

const (
	// Encrypt transforms plaintext into ciphertext.
	Encrypt Mode = iota
	// Decrypt reverses the transform.
	Decrypt
)

// String implements fmt.Stringer for Mode.
func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Algorithm identifies one of the supported cipher algorithms.
type Algorithm int

const (
	// Shift is a fixed-rotation substitution over A-Z.
	Shift Algorithm = iota
	// Digraph substitutes letter pairs via a keyed 5x5 grid (Playfair).
	Digraph
	// Polyalphabetic shifts each letter by a repeating keystream (Vigenere).
	Polyalphabetic
)

// String implements fmt.Stringer for Algorithm.
func (a Algorithm) String() string {
	switch a {
	case Shift:
		return "shift"
	case Digraph:
		return "digraph"
	case Polyalphabetic:
		return "polyalphabetic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a user-supplied algorithm name to its identifier.
// The second return value reports whether the name was recognized.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch name {
	case "shift":
		return Shift, true
	case "digraph":
		return Digraph, true
	case "polyalphabetic":
		return Polyalphabetic, true
	default:
		return 0, false
	}
}

// Concurrent reports whether the algorithm's output for a substring is
// independent of characters outside that substring. Only such algorithms
// may be partitioned across workers; the digraph and polyalphabetic
// ciphers both depend on absolute character position, so splitting them
// would change the result.
func (a Algorithm) Concurrent() bool {
	return a == Shift
}

// Cipher is the contract every algorithm implements. Apply transforms
// text, which must already be normalized to the working character set,
// in the given direction. Implementations hold no mutable state, so a
// single instance may be invoked from any number of goroutines.
type Cipher interface {
	Apply(text string, mode Mode) string
}

// ErrInvalidKey is the sentinel matched by errors.Is for any key rejected
// at construction time.
var ErrInvalidKey = errors.New("invalid key")

// InvalidKeyError reports a key that the chosen algorithm cannot accept.
type InvalidKeyError struct {
	Algorithm Algorithm
	Key       string
	Reason    string
}

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s cipher rejects key %q: %s", e.Algorithm, e.Key, e.Reason)
}

// Unwrap ties the error to the ErrInvalidKey sentinel.
func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}

// New constructs the cipher for the requested algorithm, bound to the
// supplied key. Key validation happens here and nowhere else; an
// unacceptable key yields an *InvalidKeyError.
func New(alg Algorithm, key string) (Cipher, error) {
	switch alg {
	case Shift:
		return newShiftCipher(key)
	case Digraph:
		return newDigraphCipher(key)
	case Polyalphabetic:
		return newPolyalphabeticCipher(key)
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", alg)
	}
}
