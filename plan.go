package grid

import "fmt"

// Plan is a fully resolved index expression against one grid shape. Axes,
// Shape and Collapsed are all in native order.
type Plan struct {
	// Axes holds one descriptor per native axis.
	Axes []Axis
	// Shape is the result shape: the Count of every range axis.
	Shape []int
	// Collapsed lists the native axes selected by a point.
	Collapsed []int

	scalar bool
}

// IsScalar reports whether the plan addresses a single element rather than
// a region.
func (p *Plan) IsScalar() bool { return p.scalar }

// Len is the number of elements the plan visits.
func (p *Plan) Len() int {
	n := 1
	for _, a := range p.Axes {
		n *= a.Count
	}
	return n
}

// Coords returns the native coordinates of a scalar plan.
func (p *Plan) Coords() []int {
	c := make([]int, len(p.Axes))
	for i, a := range p.Axes {
		c[i] = a.Start
	}
	return c
}

// walk calls fn for every element of the plan, axis 0 fastest. dst counts
// elements in result order and src is the flat offset in a grid with the
// given strides.
func (p *Plan) walk(strides []int, fn func(dst, src int)) {
	total := p.Len()
	if total == 0 {
		return
	}

	pos := make([]int, len(p.Axes))
	src := 0
	for d, a := range p.Axes {
		src += a.Start * strides[d]
	}
	for dst := 0; dst < total; dst++ {
		fn(dst, src)
		for d, a := range p.Axes {
			pos[d]++
			if pos[d] < a.Count {
				src += a.Step * strides[d]
				break
			}
			src -= (a.Count - 1) * a.Step * strides[d]
			pos[d] = 0
		}
	}
}

// Indexer resolves index expressions against grids.
type Indexer struct {
	// Order is the axis order index expressions are written in.
	Order AxisOrder
	// MinDim rejects region results with fewer dimensions. Zero allows
	// collapsing down to a single axis.
	MinDim int
}

// DefaultIndexer is used by the package level functions.
var DefaultIndexer = &Indexer{Order: ImageOrder}

// Plan resolves idx against a grid of the given native shape. It fails with
// ErrIndex when idx has more tokens than the grid has axes, when any token
// is out of range, or when the result rank is below MinDim.
func (ix *Indexer) Plan(shape []int, idx ...Index) (*Plan, error) {
	n := len(shape)
	if len(idx) > n {
		return nil, indexErrorf("too many indices: %d for a %d-dimensional grid", len(idx), n)
	}

	allInts := len(idx) == n
	for _, x := range idx {
		if x.slice {
			allInts = false
		}
	}

	native := ix.Order.Native(idx, n)
	p := &Plan{Axes: make([]Axis, n), Shape: []int{}}
	for d, x := range native {
		a, err := NormalizeAxis(x, shape[d])
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", d, err)
		}
		p.Axes[d] = a
		if a.Point {
			p.Collapsed = append(p.Collapsed, d)
		} else {
			p.Shape = append(p.Shape, a.Count)
		}
	}

	p.scalar = allInts || len(p.Shape) == 0
	if !p.scalar && len(p.Shape) < ix.MinDim {
		return nil, indexErrorf("result would have %d dimensions, need at least %d", len(p.Shape), ix.MinDim)
	}
	return p, nil
}
