package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	cases := []struct {
		expr string
		want []Index
	}{
		{"", nil},
		{"[]", nil},
		{"1", []Index{Int(1)}},
		{"-1, 2", []Index{Int(-1), Int(2)}},
		{":", []Index{Slice()}},
		{"::-1,:", []Index{Slice().Step(-1), Slice()}},
		{"1:3, 0:2", []Index{Slice().Start(1).Stop(3), Slice().Start(0).Stop(2)}},
		{"[1:, :4]", []Index{Slice().Start(1), Slice().Stop(4)}},
		{"-1:-4:-2", []Index{SliceOf(-1, -4, -2)}},
		{" 2 , ::2 , 3 ", []Index{Int(2), Slice().Step(2), Int(3)}},
	}

	for _, c := range cases {
		got, err := ParseIndex(c.expr)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.want, got, c.expr)
	}
}

func TestParseIndexErrors(t *testing.T) {
	for _, expr := range []string{"a", "1,,2", "1:2:3:4", "1:x", "1.5"} {
		_, err := ParseIndex(expr)
		assert.Error(t, err, expr)
	}
}

func TestIndexString(t *testing.T) {
	idx := []Index{Int(-2), Slice(), Slice().Step(-1), SliceOf(1, 4, 2), Slice().Start(3)}
	assert.Equal(t, "-2,:,::-1,1:4:2,3:", FormatIndex(idx))

	back, err := ParseIndex(FormatIndex(idx))
	require.NoError(t, err)
	assert.Equal(t, idx, back)
}

func TestIndexBuilders(t *testing.T) {
	assert.True(t, Int(3).IsInt())
	assert.False(t, Slice().IsInt())
	// setting a bound on an integer token turns it into a slice
	assert.False(t, Int(3).Stop(4).IsInt())
	assert.Equal(t, SliceOf(1, 3, -1), Slice().Step(-1).Stop(3).Start(1))
}
