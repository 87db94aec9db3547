package grid

import (
	"fmt"
	"math"
)

type MetaType string

// MTArray is the key for storing metadata on an array store
const MTArray MetaType = ".zarray"

// ZarrFormat is the version of the zarr storage specification arrays are
// written in.
const ZarrFormat = 2

// Each array requires essential configuration metadata to be stored,
// enabling correct interpretation of the stored data.
// This metadata is encoded using JSON and stored as the value of the
// “.zarray” key within an array store.
//
// Shape and Chunks list dimensions slowest first, the reverse of a grid's
// native order.
type ArrayMeta struct {
	// An integer defining the version of the storage specification to which
	// the array store adheres.
	ZarrFormat int `json:"zarr_format"`
	// A list of integers defining the length of each dimension of the array.
	Shape []int `json:"shape"`
	// A list of integers defining the length of each dimension of a chunk of the
	// array. Note that all chunks within a Zarr array have the same shape.
	Chunks []int `json:"chunks"`
	// The element type of the array. Structured types are not supported.
	Dtype Dtype `json:"dtype"`
	// A JSON object identifying the primary compression codec and providing
	// configuration parameters, or null if no compressor is to be used.
	Compressor *CompressionMeta `json:"compressor"`
	// A scalar value providing the default value to use for uninitialized
	// portions of the array, or null if no fill_value is to be used.
	FillValue interface{} `json:"fill_value"`
	// Either “C” or “F”, defining the layout of bytes within each chunk of the
	// array. Only “C” (row-major, last dimension fastest) is supported.
	Order string `json:"order"`
	// Codec configurations applied before compression. Must be empty.
	Filters []Filter `json:"filters"`

	// optional fields

	// If present, either the string "." or "/"" definining the separator placed
	// between the dimensions of a chunk. If the value is not set, then the
	// default MUST be assumed to be ".", leading to chunk keys of the form “0.0”.
	DimensionSeparator string `json:"dimension_separator,omitempty"`
}

type Filter struct {
	ID     string `json:"id"`
	Delta  string `json:"delta,omitempty"`
	Dtype  string `json:"dtype,omitempty"`
	AsType string `json:"astype,omitempty"`
}

const (
	// Not a Number
	FillValueNaN = "NaN"
	// Infinity
	FillValueInfinity = "Infinity"
	// -Infinity
	FillValueNegativeInfinity = "-Infinity"
)

// Validate checks that grid-go can read and write arrays described by m.
func (m *ArrayMeta) Validate() error {
	if m.ZarrFormat != ZarrFormat {
		return fmt.Errorf("%w: zarr format %d", ErrUnsupported, m.ZarrFormat)
	}
	if len(m.Chunks) != len(m.Shape) {
		return fmt.Errorf("chunks %v don't match shape %v", m.Chunks, m.Shape)
	}
	for i, e := range m.Shape {
		if e < 0 {
			return fmt.Errorf("negative extent %d in dimension %d", e, i)
		}
		if m.Chunks[i] <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d in dimension %d", m.Chunks[i], i)
		}
	}
	if m.Order != "" && m.Order != "C" {
		return fmt.Errorf("%w: %q chunk order", ErrUnsupported, m.Order)
	}
	if len(m.Filters) > 0 {
		return fmt.Errorf("%w: filters", ErrUnsupported)
	}
	switch m.DimensionSeparator {
	case "", ".", "/":
	default:
		return fmt.Errorf("invalid dimension separator %q", m.DimensionSeparator)
	}
	if _, err := newBuffer(m.Dtype, 0); err != nil {
		return err
	}
	if _, err := m.fill(); err != nil {
		return err
	}
	return nil
}

func (m *ArrayMeta) separator() string {
	if m.DimensionSeparator == "" {
		return "."
	}
	return m.DimensionSeparator
}

// fill resolves FillValue to a value a grid element can be set to.
func (m *ArrayMeta) fill() (interface{}, error) {
	switch v := m.FillValue.(type) {
	case nil:
		return 0, nil
	case bool, int, int64, float64:
		return v, nil
	case string:
		switch v {
		case FillValueNaN:
			return math.NaN(), nil
		case FillValueInfinity:
			return math.Inf(1), nil
		case FillValueNegativeInfinity:
			return math.Inf(-1), nil
		}
	}
	return nil, fmt.Errorf("%w: fill value %v", ErrUnsupported, m.FillValue)
}
