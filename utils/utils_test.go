package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	n, err := ToInt("1000")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	n, err = ToInt(" 42\r")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ToInt("12a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"12a"`)
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "only newlines", input: "\n\n", want: nil},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", input: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.input))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0, Sum([]int{}))
	assert.Equal(t, 6000, Sum([]int{1000, 2000, 3000}))
	assert.Equal(t, int64(-1), Sum([]int64{1, -2}))
}
