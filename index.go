package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is one axis of an index expression: either an integer, which selects
// a single coordinate and drops the axis from the result, or a slice with
// optional start, stop and step bounds.
type Index struct {
	slice             bool
	i                 int
	start, stop, step bound
}

type bound struct {
	v   int
	set bool
}

func (b bound) String() string {
	if !b.set {
		return ""
	}
	return strconv.Itoa(b.v)
}

// Int returns the integer token i. Negative values count back from the end
// of the axis.
func Int(i int) Index { return Index{i: i} }

// Slice returns the full-range slice token, written ":" in Python.
func Slice() Index { return Index{slice: true} }

// SliceOf returns the slice token start:stop:step.
func SliceOf(start, stop, step int) Index {
	return Slice().Start(start).Stop(stop).Step(step)
}

// Start returns a copy of the slice token with its start bound set.
func (x Index) Start(i int) Index {
	x.slice, x.start = true, bound{i, true}
	return x
}

// Stop returns a copy of the slice token with its stop bound set.
func (x Index) Stop(i int) Index {
	x.slice, x.stop = true, bound{i, true}
	return x
}

// Step returns a copy of the slice token with its step set.
func (x Index) Step(i int) Index {
	x.slice, x.step = true, bound{i, true}
	return x
}

// IsInt reports whether x is an integer token.
func (x Index) IsInt() bool { return !x.slice }

func (x Index) String() string {
	if !x.slice {
		return strconv.Itoa(x.i)
	}
	s := x.start.String() + ":" + x.stop.String()
	if x.step.set {
		s += ":" + x.step.String()
	}
	return s
}

// FormatIndex writes an expression the way ParseIndex reads it.
func FormatIndex(idx []Index) string {
	parts := make([]string, len(idx))
	for i, x := range idx {
		parts[i] = x.String()
	}
	return strings.Join(parts, ",")
}

// ParseIndex reads a comma separated index expression such as "1, ::-1, 2:".
// An empty expression selects everything.
func ParseIndex(expr string) ([]Index, error) {
	expr = strings.TrimSpace(expr)
	expr = strings.TrimPrefix(expr, "[")
	expr = strings.TrimSuffix(expr, "]")
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	var idx []Index
	for n, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		x, err := parseToken(part)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", n, err)
		}
		idx = append(idx, x)
	}
	return idx, nil
}

func parseToken(s string) (Index, error) {
	if !strings.Contains(s, ":") {
		i, err := strconv.Atoi(s)
		if err != nil {
			return Index{}, fmt.Errorf("invalid integer %q", s)
		}
		return Int(i), nil
	}

	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return Index{}, fmt.Errorf("invalid slice %q", s)
	}
	x := Slice()
	for j, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return Index{}, fmt.Errorf("invalid slice bound %q in %q", f, s)
		}
		switch j {
		case 0:
			x = x.Start(v)
		case 1:
			x = x.Stop(v)
		case 2:
			x = x.Step(v)
		}
	}
	return x, nil
}
