package grid

import (
	"fmt"
)

type element interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | complex64 | complex128
}

// buffer is the flat element storage behind a Grid.
type buffer interface {
	Len() int
	At(i int) interface{}
	Set(i int, v interface{}) error
	// Move copies element si of src into element i, converting when src
	// holds a different element type.
	Move(i int, src buffer, si int)
	Raw() interface{}
	Clone() buffer
}

type typedBuffer[T element] []T

func (b typedBuffer[T]) Len() int             { return len(b) }
func (b typedBuffer[T]) At(i int) interface{} { return b[i] }
func (b typedBuffer[T]) Raw() interface{}     { return []T(b) }
func (b typedBuffer[T]) Clone() buffer        { return append(typedBuffer[T](nil), b...) }

func (b typedBuffer[T]) Set(i int, v interface{}) error {
	x, err := castValue[T](v)
	if err != nil {
		return err
	}
	b[i] = x
	return nil
}

func (b typedBuffer[T]) Move(i int, src buffer, si int) {
	if s, ok := src.(typedBuffer[T]); ok {
		b[i] = s[si]
		return
	}
	b[i], _ = convert[T](src.At(si))
}

// bufferFromSlice wraps a typed slice without copying it. []int and []uint
// have no fixed width and are copied into 64 bit buffers.
func bufferFromSlice(data interface{}) (buffer, Dtype, error) {
	switch d := data.(type) {
	case []int:
		out := make(typedBuffer[int64], len(d))
		for i, v := range d {
			out[i] = int64(v)
		}
		return out, Int64, nil
	case []uint:
		out := make(typedBuffer[uint64], len(d))
		for i, v := range d {
			out[i] = uint64(v)
		}
		return out, Uint64, nil
	case []bool:
		return typedBuffer[bool](d), Bool, nil
	case []int8:
		return typedBuffer[int8](d), Int8, nil
	case []int16:
		return typedBuffer[int16](d), Int16, nil
	case []int32:
		return typedBuffer[int32](d), Int32, nil
	case []int64:
		return typedBuffer[int64](d), Int64, nil
	case []uint8:
		return typedBuffer[uint8](d), Uint8, nil
	case []uint16:
		return typedBuffer[uint16](d), Uint16, nil
	case []uint32:
		return typedBuffer[uint32](d), Uint32, nil
	case []uint64:
		return typedBuffer[uint64](d), Uint64, nil
	case []float32:
		return typedBuffer[float32](d), Float32, nil
	case []float64:
		return typedBuffer[float64](d), Float64, nil
	case []complex64:
		return typedBuffer[complex64](d), Complex64, nil
	case []complex128:
		return typedBuffer[complex128](d), Complex128, nil
	default:
		return nil, Dtype{}, fmt.Errorf("%w: element slice %T", ErrUnsupported, data)
	}
}

// singleton wraps a single element in a one element slice of its type.
func singleton(v interface{}) interface{} {
	switch x := v.(type) {
	case bool:
		return []bool{x}
	case int:
		return []int64{int64(x)}
	case uint:
		return []uint64{uint64(x)}
	case int8:
		return []int8{x}
	case int16:
		return []int16{x}
	case int32:
		return []int32{x}
	case int64:
		return []int64{x}
	case uint8:
		return []uint8{x}
	case uint16:
		return []uint16{x}
	case uint32:
		return []uint32{x}
	case uint64:
		return []uint64{x}
	case float32:
		return []float32{x}
	case float64:
		return []float64{x}
	case complex64:
		return []complex64{x}
	case complex128:
		return []complex128{x}
	}
	return v
}

func castValue[T element](v interface{}) (T, error) {
	if x, ok := v.(T); ok {
		return x, nil
	}
	x, ok := convert[T](v)
	if !ok {
		return x, fmt.Errorf("%w: cannot store %T as %T", ErrUnsupported, v, x)
	}
	return x, nil
}

// convert narrows a bool or numeric v to T. Integers convert exactly through
// int64 or uint64, floats and complex values go through complex128.
func convert[T element](v interface{}) (T, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return fromUint[T](1), true
		}
		return fromUint[T](0), true
	case int:
		return fromInt[T](int64(x)), true
	case int8:
		return fromInt[T](int64(x)), true
	case int16:
		return fromInt[T](int64(x)), true
	case int32:
		return fromInt[T](int64(x)), true
	case int64:
		return fromInt[T](x), true
	case uint:
		return fromUint[T](uint64(x)), true
	case uint8:
		return fromUint[T](uint64(x)), true
	case uint16:
		return fromUint[T](uint64(x)), true
	case uint32:
		return fromUint[T](uint64(x)), true
	case uint64:
		return fromUint[T](x), true
	}
	c, ok := toComplex(v)
	if !ok {
		var zero T
		return zero, false
	}
	return fromComplex[T](c), true
}

func fromInt[T element](i int64) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = i != 0
	case *int8:
		*p = int8(i)
	case *int16:
		*p = int16(i)
	case *int32:
		*p = int32(i)
	case *int64:
		*p = i
	case *uint8:
		*p = uint8(i)
	case *uint16:
		*p = uint16(i)
	case *uint32:
		*p = uint32(i)
	case *uint64:
		*p = uint64(i)
	case *float32:
		*p = float32(i)
	case *float64:
		*p = float64(i)
	case *complex64:
		*p = complex(float32(i), 0)
	case *complex128:
		*p = complex(float64(i), 0)
	}
	return out
}

func fromUint[T element](u uint64) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = u != 0
	case *int8:
		*p = int8(u)
	case *int16:
		*p = int16(u)
	case *int32:
		*p = int32(u)
	case *int64:
		*p = int64(u)
	case *uint8:
		*p = uint8(u)
	case *uint16:
		*p = uint16(u)
	case *uint32:
		*p = uint32(u)
	case *uint64:
		*p = u
	case *float32:
		*p = float32(u)
	case *float64:
		*p = float64(u)
	case *complex64:
		*p = complex(float32(u), 0)
	case *complex128:
		*p = complex(float64(u), 0)
	}
	return out
}

func toComplex(v interface{}) (complex128, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int:
		return complex(float64(x), 0), true
	case int8:
		return complex(float64(x), 0), true
	case int16:
		return complex(float64(x), 0), true
	case int32:
		return complex(float64(x), 0), true
	case int64:
		return complex(float64(x), 0), true
	case uint:
		return complex(float64(x), 0), true
	case uint8:
		return complex(float64(x), 0), true
	case uint16:
		return complex(float64(x), 0), true
	case uint32:
		return complex(float64(x), 0), true
	case uint64:
		return complex(float64(x), 0), true
	case float32:
		return complex(float64(x), 0), true
	case float64:
		return complex(x, 0), true
	case complex64:
		return complex128(x), true
	case complex128:
		return x, true
	}
	return 0, false
}

// fromComplex narrows c to T. Real types keep the real part, integer types
// truncate toward zero.
func fromComplex[T element](c complex128) T {
	var out T
	r := real(c)
	switch p := any(&out).(type) {
	case *bool:
		*p = c != 0
	case *int8:
		*p = int8(r)
	case *int16:
		*p = int16(r)
	case *int32:
		*p = int32(r)
	case *int64:
		*p = int64(r)
	case *uint8:
		*p = uint8(r)
	case *uint16:
		*p = uint16(r)
	case *uint32:
		*p = uint32(r)
	case *uint64:
		*p = uint64(r)
	case *float32:
		*p = float32(r)
	case *float64:
		*p = r
	case *complex64:
		*p = complex64(c)
	case *complex128:
		*p = c
	}
	return out
}
