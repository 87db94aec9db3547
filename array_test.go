package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

func TestFromArray(t *testing.T) {
	// a row-major 3x5 tensor is the grid with native shape (5, 3)
	a := tensor.New(tensor.WithShape(3, 5), tensor.WithBacking(seq(0, 1, 15)))
	g, err := FromArray(a)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, g.Shape())

	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 11.0, v)

	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			want, err := a.At(row, col)
			require.NoError(t, err)
			res, err := arrayIndexer.Read(g, Int(row), Int(col))
			require.NoError(t, err)
			assert.Equal(t, want, res.Scalar, "(%d, %d)", row, col)
		}
	}

	// the grid owns its elements
	require.NoError(t, g.SetAt(-1, 0, 0))
	first, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, first)
}

// testRange is a [start:end:step] tensor.Slice.
type testRange struct{ start, end, step int }

func (r testRange) Start() int { return r.start }
func (r testRange) End() int   { return r.end }
func (r testRange) Step() int  { return r.step }

func TestFromArrayView(t *testing.T) {
	a := tensor.New(tensor.WithShape(3, 5), tensor.WithBacking(seq(0, 1, 15)))
	v, err := a.Slice(nil, testRange{1, 3, 1})
	require.NoError(t, err)

	g, err := FromArray(v.(*tensor.Dense))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, g.Shape())
	assert.Equal(t, []float64{1, 2, 6, 7, 11, 12}, floats(t, g))
}

func TestFromArrayScalar(t *testing.T) {
	g, err := FromArray(tensor.New(tensor.FromScalar(int32(7))))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Dim())
	assert.Equal(t, 1, g.Len())
	v, err := g.At()
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestArrayRoundTrip(t *testing.T) {
	g := arange(t, 2, 3, 4)
	a := g.Array()
	assert.Equal(t, tensor.Shape{2, 3, 4}, a.Shape())
	assert.Equal(t, floats(t, g), a.Data())

	// element (z, y, x) of the tensor is grid element (x, y, z)
	want, err := g.At(3, 1, 0)
	require.NoError(t, err)
	got, err := a.At(0, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	back, err := FromArray(a)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestArrayRegion(t *testing.T) {
	g := arange(t, 3, 4, 5)
	res, err := arrayIndexer.Read(g, Int(1), Slice().Step(-1), SliceOf(0, 4, 2))
	require.NoError(t, err)

	a := res.Grid.Array()
	assert.Equal(t, tensor.Shape{4, 2}, a.Shape())
	v, err := a.At(0, 1)
	require.NoError(t, err)
	// z=1, y=3, x=2
	assert.Equal(t, 37.0, v)
}

func TestFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	g := FromMatrix(m)
	assert.Equal(t, []int{3, 2}, g.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, floats(t, g))

	v, err := g.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	col, err := Extract(g, Int(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, floats(t, col))

	back, err := g.Matrix()
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, back))
}

func TestMatrixConvertsElements(t *testing.T) {
	g, err := FromSlice([]int16{1, -2, 3, -4}, 2, 2)
	require.NoError(t, err)
	m, err := g.Matrix()
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, -2, 3, -4}), m))
}

func TestMatrixErrors(t *testing.T) {
	for _, shape := range [][]int{{4}, {2, 2, 2}, {0, 3}} {
		g, err := New(Float64, shape...)
		require.NoError(t, err)
		_, err = g.Matrix()
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("shape %v: expected ErrUnsupported, got %v", shape, err)
		}
	}
}

func TestFromArrayInt(t *testing.T) {
	a := tensor.New(tensor.WithShape(2, 3), tensor.WithBacking([]int{0, 1, 2, 3, 4, 5}))
	g, err := FromArray(a)
	require.NoError(t, err)
	assert.True(t, g.Dtype().SameKind(Int64))
	assert.Equal(t, []int{3, 2}, g.Shape())
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, g.Data())

	s, err := FromArray(tensor.New(tensor.FromScalar(uint(9))))
	require.NoError(t, err)
	v, err := s.At()
	require.NoError(t, err)
	assert.Equal(t, uint64(9), v)

	g, err = FromSlice([]int{7, 8}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, g.Data())
}
