package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrIndex is wrapped by every indexing failure: out of range integers,
	// a zero slice step, too many axes and paste shape mismatches.
	ErrIndex = errors.New("index error")
	// ErrUnsupported marks element types and array features grid-go can't
	// represent.
	ErrUnsupported = errors.New("unsupported")
)

func indexErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIndex, fmt.Sprintf(format, args...))
}
