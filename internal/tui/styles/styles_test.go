package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"Heat", 10, "Heat"},
		{"The Dark Knight", 10, "The Dar..."},
		{"Amélie Poulain", 9, "Amélie..."},
		{"Heat", 2, "He"},
		{"Heat", 0, ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, Truncate(tc.input, tc.width), "Truncate(%q, %d)", tc.input, tc.width)
	}
}

func TestPad(t *testing.T) {
	require.Equal(t, "ab  ", Pad("ab", 4))
	require.Equal(t, "abcd", Pad("abcd", 2))
}
