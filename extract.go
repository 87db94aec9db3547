package grid

import "fmt"

// Result is the outcome of Read: a single element or a new grid.
type Result struct {
	Scalar interface{}
	Grid   *Grid
}

// IsScalar reports whether the read addressed a single element.
func (r Result) IsScalar() bool { return r.Grid == nil }

func (r Result) String() string {
	if r.IsScalar() {
		return fmt.Sprint(r.Scalar)
	}
	return r.Grid.String()
}

// Read looks up a scalar when idx gives an integer for every axis and
// extracts a region otherwise.
func (ix *Indexer) Read(g *Grid, idx ...Index) (Result, error) {
	p, err := ix.Plan(g.shape, idx...)
	if err != nil {
		return Result{}, err
	}
	if p.IsScalar() {
		v, err := g.At(p.Coords()...)
		if err != nil {
			return Result{}, err
		}
		return Result{Scalar: v}, nil
	}
	return Result{Grid: extract(g, p)}, nil
}

// Extract copies the region selected by idx into a new grid. Integer tokens
// drop their axis. A scalar request gives a zero-dimensional grid.
func (ix *Indexer) Extract(g *Grid, idx ...Index) (*Grid, error) {
	p, err := ix.Plan(g.shape, idx...)
	if err != nil {
		return nil, err
	}
	return extract(g, p), nil
}

func extract(g *Grid, p *Plan) *Grid {
	// the source dtype is known to be valid
	buf, _ := newBuffer(g.dtype, p.Len())
	out := newGrid(g.dtype, p.Shape, buf)
	p.walk(g.strides, func(dst, src int) {
		buf.Move(dst, g.buf, src)
	})
	return out
}

// Read uses DefaultIndexer.
func Read(g *Grid, idx ...Index) (Result, error) {
	return DefaultIndexer.Read(g, idx...)
}

// Extract uses DefaultIndexer.
func Extract(g *Grid, idx ...Index) (*Grid, error) {
	return DefaultIndexer.Extract(g, idx...)
}
