package basis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAMLetter(t *testing.T) {
	tests := []struct {
		am   int
		want string
	}{
		{0, "s"},
		{1, "p"},
		{2, "d"},
		{3, "f"},
		{4, "g"},
		{5, "h"},
		{6, "i"},
		{7, "k"}, // j is skipped by convention
		{8, "l"},
	}

	for _, tt := range tests {
		got, err := AMLetter(tt.am)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestAMLetterOutOfRange(t *testing.T) {
	_, err := AMLetter(-1)
	assert.True(t, IsStructuralViolation(err))

	_, err = AMLetter(len(amLetters))
	assert.True(t, IsStructuralViolation(err))
}

func TestAMSymbolCombined(t *testing.T) {
	got, err := AMSymbol([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "sp", got)

	got, err = AMSymbol([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "spd", got)

	_, err = AMSymbol(nil)
	require.Error(t, err)
}

func TestParseAMSymbol(t *testing.T) {
	got, err := ParseAMSymbol("SPD")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	got, err = ParseAMSymbol("f")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)

	_, err = ParseAMSymbol("j")
	require.Error(t, err)

	_, err = ParseAMSymbol("")
	require.Error(t, err)
}
