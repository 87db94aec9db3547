package grid

import (
	"fmt"

	"gorgonia.org/tensor"
)

// FromArray copies a row-major tensor into a new grid. The tensor's shape
// lists the slowest axis first, so the grid's native shape is its reverse and
// the flat element order is unchanged.
func FromArray(t *tensor.Dense) (*Grid, error) {
	if t.IsView() {
		m, ok := t.Materialize().(*tensor.Dense)
		if !ok {
			return nil, fmt.Errorf("%w: cannot materialize tensor view", ErrUnsupported)
		}
		t = m
	}

	data := t.Data()
	if t.IsScalar() {
		data = singleton(data)
	}
	buf, dt, err := bufferFromSlice(data)
	if err != nil {
		return nil, fmt.Errorf("tensor dtype %s: %w", t.Dtype(), err)
	}
	return newGrid(dt, ArrayOrder.Shape(t.Shape()), buf.Clone()), nil
}

// Array copies the grid into a row-major tensor whose shape lists the
// slowest axis first.
func (g *Grid) Array() *tensor.Dense {
	if len(g.shape) == 0 {
		return tensor.New(tensor.FromScalar(g.buf.At(0)))
	}
	return tensor.New(
		tensor.WithShape(ArrayOrder.Shape(g.shape)...),
		tensor.WithBacking(g.buf.Clone().Raw()),
	)
}
