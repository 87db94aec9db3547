// Package grid indexes dense N-dimensional grids with Python style index
// expressions: single and negative integers, multi-axis tuples and slices
// with start, stop and step. A request resolves to a scalar lookup, a reduced
// dimension extraction or a paste into a region of interest.
//
// Grids store their axes in native order, fastest-varying axis first. Index
// expressions can address them in that order (ImageOrder) or in the reversed,
// slowest-first order used by row-major array libraries (ArrayOrder).
//
// Every call runs to completion synchronously. Grids carry no locks, callers
// sharing a grid between goroutines must synchronize access themselves.
package grid

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a dense N-dimensional array of fixed-type elements. Element
// (c0, c1, ...) lives at flat offset c0*Strides[0] + c1*Strides[1] + ...,
// with Strides[0] == 1.
type Grid struct {
	dtype   Dtype
	shape   []int
	strides []int
	buf     buffer
}

// New allocates a zero valued grid. shape lists extents fastest axis first.
func New(dt Dtype, shape ...int) (*Grid, error) {
	n, err := shapeLen(shape)
	if err != nil {
		return nil, err
	}
	buf, err := newBuffer(dt, n)
	if err != nil {
		return nil, err
	}
	return newGrid(dt, shape, buf), nil
}

// FromSlice wraps data, a typed slice laid out fastest axis first, as a grid.
// The grid takes ownership of data. []int and []uint are copied into Int64
// and Uint64 grids.
func FromSlice(data interface{}, shape ...int) (*Grid, error) {
	n, err := shapeLen(shape)
	if err != nil {
		return nil, err
	}
	buf, dt, err := bufferFromSlice(data)
	if err != nil {
		return nil, err
	}
	if buf.Len() != n {
		return nil, fmt.Errorf("data has %d elements, shape %v needs %d", buf.Len(), shape, n)
	}
	return newGrid(dt, shape, buf), nil
}

func newGrid(dt Dtype, shape []int, buf buffer) *Grid {
	g := &Grid{
		dtype:   dt,
		shape:   append([]int{}, shape...),
		strides: make([]int, len(shape)),
		buf:     buf,
	}
	stride := 1
	for i, e := range shape {
		g.strides[i] = stride
		stride *= e
	}
	return g
}

func shapeLen(shape []int) (int, error) {
	n := 1
	for i, e := range shape {
		if e < 0 {
			return 0, fmt.Errorf("negative extent %d on axis %d", e, i)
		}
		n *= e
	}
	return n, nil
}

func (g *Grid) Dtype() Dtype { return g.dtype }

// Shape returns a copy of the per-axis extents, fastest axis first.
func (g *Grid) Shape() []int { return append([]int{}, g.shape...) }

// Strides returns a copy of the per-axis element strides.
func (g *Grid) Strides() []int { return append([]int{}, g.strides...) }

// Dim is the dimensionality of the grid.
func (g *Grid) Dim() int { return len(g.shape) }

// Len is the total number of elements.
func (g *Grid) Len() int { return g.buf.Len() }

// Data returns the backing slice, e.g. []float64. Writes through it are
// visible in the grid.
func (g *Grid) Data() interface{} { return g.buf.Raw() }

func (g *Grid) offset(coords []int) (int, error) {
	if len(coords) != len(g.shape) {
		return 0, indexErrorf("got %d coordinates for a %d-dimensional grid", len(coords), len(g.shape))
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= g.shape[i] {
			return 0, indexErrorf("coordinate %d out of range [0, %d) on axis %d", c, g.shape[i], i)
		}
		off += c * g.strides[i]
	}
	return off, nil
}

// At returns the element at native-order coordinates.
func (g *Grid) At(coords ...int) (interface{}, error) {
	off, err := g.offset(coords)
	if err != nil {
		return nil, err
	}
	return g.buf.At(off), nil
}

// SetAt stores v at native-order coordinates, converting numeric and bool
// values to the grid's element type.
func (g *Grid) SetAt(v interface{}, coords ...int) error {
	off, err := g.offset(coords)
	if err != nil {
		return err
	}
	return g.buf.Set(off, v)
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return newGrid(g.dtype, g.shape, g.buf.Clone())
}

// Equal reports whether o has the same shape, element kind and values. NaN
// elements compare equal to each other.
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if o == nil || !g.dtype.SameKind(o.dtype) || len(g.shape) != len(o.shape) {
		return false
	}
	for i := range g.shape {
		if g.shape[i] != o.shape[i] {
			return false
		}
	}
	for i := 0; i < g.buf.Len(); i++ {
		if !sameElement(g.buf.At(i), o.buf.At(i)) {
			return false
		}
	}
	return true
}

func sameElement(a, b interface{}) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case float32:
		y, ok := b.(float32)
		return ok && sameFloat(float64(x), float64(y))
	case float64:
		y, ok := b.(float64)
		return ok && sameFloat(x, y)
	case complex64:
		y, ok := b.(complex64)
		return ok && sameFloat(float64(real(x)), float64(real(y))) && sameFloat(float64(imag(x)), float64(imag(y)))
	case complex128:
		y, ok := b.(complex128)
		return ok && sameFloat(real(x), real(y)) && sameFloat(imag(x), imag(y))
	}
	return false
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (g *Grid) String() string {
	dims := make([]string, len(g.shape))
	for i, e := range g.shape {
		dims[i] = fmt.Sprint(e)
	}
	return fmt.Sprintf("<grid.Grid %s (%s)>", g.dtype, strings.Join(dims, ", "))
}
