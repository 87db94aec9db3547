package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisOrderNative(t *testing.T) {
	idx := []Index{Int(1), Slice().Step(2)}

	assert.Equal(t,
		[]Index{Int(1), Slice().Step(2), Slice(), Slice()},
		ImageOrder.Native(idx, 4))
	assert.Equal(t,
		[]Index{Slice(), Slice(), Slice().Step(2), Int(1)},
		ArrayOrder.Native(idx, 4))

	full := []Index{Int(0), Int(1), Int(2)}
	assert.Equal(t, []Index{Int(2), Int(1), Int(0)}, ArrayOrder.Native(full, 3))
	assert.Equal(t, full, ImageOrder.Native(full, 3))
	assert.Equal(t, []Index{Slice(), Slice()}, ArrayOrder.Native(nil, 2))
}

func TestAxisOrderShape(t *testing.T) {
	native := []int{5, 4, 3}
	assert.Equal(t, []int{3, 4, 5}, ArrayOrder.Shape(native))
	assert.Equal(t, []int{5, 4, 3}, ImageOrder.Shape(native))
	assert.Equal(t, []int{5, 4, 3}, native, "Shape must not modify its argument")
	assert.Equal(t, "array", ArrayOrder.String())
	assert.Equal(t, "image", ImageOrder.String())
}
