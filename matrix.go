package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix copies m into a Float64 grid. Columns vary fastest, so an r x c
// matrix becomes a grid of native shape (c, r).
func FromMatrix(m mat.Matrix) *Grid {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	return newGrid(Float64, []int{c, r}, typedBuffer[float64](data))
}

// Matrix copies a non-empty 2-dimensional grid into a dense matrix, taking
// the real part of every element.
func (g *Grid) Matrix() (*mat.Dense, error) {
	if len(g.shape) != 2 {
		return nil, fmt.Errorf("%w: matrix from %d-dimensional grid", ErrUnsupported, len(g.shape))
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: matrix from empty grid %v", ErrUnsupported, g.shape)
	}
	data := make([]float64, g.Len())
	for i := range data {
		c, _ := toComplex(g.buf.At(i))
		data[i] = real(c)
	}
	return mat.NewDense(g.shape[1], g.shape[0], data), nil
}
