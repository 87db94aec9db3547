package grid

import "fmt"

// Axis is a resolved axis of an index expression. A point axis selects the
// single coordinate Start and is dropped from the result. A range axis yields
// Count coordinates Start, Start+Step, ... and stops before Stop. Every
// coordinate it yields lies inside the axis.
type Axis struct {
	Point bool
	Start int
	Stop  int
	Step  int
	Count int
}

// PointAxis resolves to the single coordinate c.
func PointAxis(c int) Axis {
	return Axis{Point: true, Start: c, Stop: c + 1, Step: 1, Count: 1}
}

// FullAxis covers an axis of the given extent in increasing order.
func FullAxis(extent int) Axis {
	return Axis{Start: 0, Stop: extent, Step: 1, Count: extent}
}

// Coord returns the i-th coordinate of the axis.
func (a Axis) Coord(i int) int { return a.Start + i*a.Step }

// Coords lists every coordinate of the axis.
func (a Axis) Coords() []int {
	out := make([]int, a.Count)
	for i := range out {
		out[i] = a.Coord(i)
	}
	return out
}

func (a Axis) String() string {
	if a.Point {
		return fmt.Sprintf("Point(%d)", a.Start)
	}
	return fmt.Sprintf("Range(%d, %d, %d, %d)", a.Start, a.Stop, a.Step, a.Count)
}

// NormalizeAxis resolves one token against an axis of the given extent.
//
// Integers count back from the end when negative and must land in
// [0, extent). Slices follow Python slicing: bounds clamp to the axis, and a
// slice selecting nothing gives Count == 0 instead of an error. Only an
// integer out of range or a zero step fail.
func NormalizeAxis(x Index, extent int) (Axis, error) {
	if !x.slice {
		c := x.i
		if c < 0 {
			c += extent
		}
		if c < 0 || c >= extent {
			return Axis{}, indexErrorf("index %d out of range for axis of size %d", x.i, extent)
		}
		return PointAxis(c), nil
	}

	step := 1
	if x.step.set {
		step = x.step.v
	}
	if step == 0 {
		return Axis{}, indexErrorf("slice step cannot be zero")
	}

	var start, stop int
	if step > 0 {
		start = clampBound(x.start, 0, extent, 0, extent)
		stop = clampBound(x.stop, extent, extent, 0, extent)
	} else {
		// -1 stands for "before coordinate 0"
		start = clampBound(x.start, extent-1, extent, -1, extent-1)
		stop = clampBound(x.stop, -1, extent, -1, extent-1)
	}

	count := 0
	switch {
	case step > 0 && start < stop:
		count = (stop-start-1)/step + 1
	case step < 0 && stop < start:
		count = (start-stop-1)/(-step) + 1
	}
	return Axis{Start: start, Stop: stop, Step: step, Count: count}, nil
}

// clampBound resolves an optional slice bound: unset bounds take def,
// negative bounds count back from extent, and the result is clamped to
// [lo, hi].
func clampBound(b bound, def, extent, lo, hi int) int {
	if !b.set {
		return def
	}
	v := b.v
	if v < 0 {
		v += extent
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
