package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRune(t *testing.T) {
	testCases := []struct {
		name     string
		in       rune
		expected string
	}{
		{name: "uppercase letter passes through", in: 'Q', expected: "Q"},
		{name: "lowercase letter is uppercased", in: 'g', expected: "G"},
		{name: "digit becomes word", in: '7', expected: "SEVEN"},
		{name: "zero becomes word", in: '0', expected: "ZERO"},
		{name: "punctuation is dropped", in: '!', expected: ""},
		{name: "space is dropped", in: ' ', expected: ""},
		{name: "newline is dropped", in: '\n', expected: ""},
		{name: "non-ascii letter is dropped", in: 'é', expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Rune(tc.in))
		})
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "mixed alphanumeric", in: "Hello123", expected: "HELLOONETWOTHREE"},
		{name: "whitespace separated tokens collapse", in: "a b\tc\nd", expected: "ABCD"},
		{name: "punctuation stripped", in: "don't panic!", expected: "DONTPANIC"},
		{name: "empty input", in: "", expected: ""},
		{name: "nothing survives", in: " .,;-\n", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, String(tc.in))
		})
	}
}

func TestFromReader(t *testing.T) {
	got, err := FromReader(strings.NewReader("Attack at dawn, 4am."))
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWNFOURAM", got)
}
