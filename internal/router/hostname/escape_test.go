package hostname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"abc.test", "abc.test"},
		{"a-b_c~d.test", "a-b_c~d.test"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"bücher", "b%C3%BCcher"},
		{"a%b", "a%25b"},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, rawEncode(tt.in), tt.in)
	}
}

func TestRawDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"abc.test", "abc.test"},
		{"a%20b", "a b"},
		{"a+b", "a+b"},
		{"b%C3%BCcher", "bücher"},
		{"b%c3%bccher", "bücher"},
		{"a%zzb", "a%zzb"},
		{"trailing%2", "trailing%2"},
		{"%", "%"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, rawDecode(tt.in), tt.in)
	}
}
