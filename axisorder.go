package grid

// AxisOrder says which grid axis each token of an index expression
// addresses.
type AxisOrder int

const (
	// ImageOrder addresses axes fastest-varying first, the grid's own order.
	// Token j selects native axis j, unsupplied trailing axes are full range.
	ImageOrder AxisOrder = iota
	// ArrayOrder addresses axes slowest-varying first, the order of row-major
	// array libraries. Token j selects native axis n-1-j and the unsupplied
	// native axes 0..n-k-1 are full range.
	ArrayOrder
)

func (o AxisOrder) String() string {
	if o == ArrayOrder {
		return "array"
	}
	return "image"
}

// Native rearranges a caller expression into one token per native axis of an
// n-dimensional grid. len(idx) must not exceed n.
func (o AxisOrder) Native(idx []Index, n int) []Index {
	out := make([]Index, n)
	for i := range out {
		out[i] = Slice()
	}
	for j, x := range idx {
		if o == ArrayOrder {
			out[n-1-j] = x
		} else {
			out[j] = x
		}
	}
	return out
}

// Shape reports a native shape the way a caller using this order sees it.
func (o AxisOrder) Shape(native []int) []int {
	out := append([]int{}, native...)
	if o == ArrayOrder {
		reverseInts(out)
	}
	return out
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
