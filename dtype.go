package grid

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Dtype is the element type of a grid, written as a NumPy array protocol type
// string (typestr). The format consists of 3 parts:
//  * One character describing the byteorder of the data:
//    "<": little-endian; ">": big-endian; "|": not-relevant)
//  * One character code giving the basic type of the array:
//    * "b": Boolean
//    * "i": integer
//    * "u": unsigned integer
//    * "f": floating point
//    * "c": complex floating point
//  * An integer specifying the number of bytes the type uses.
//
// Byte order only matters once a grid is encoded, in memory grids hold native
// Go values.
type Dtype struct {
	ByteOrder ByteOrder
	BasicType BasicType
	ByteSize  int
}

var (
	Bool       = Dtype{BONotRelevant, BTBoolean, 1}
	Int8       = Dtype{BONotRelevant, BTInteger, 1}
	Int16      = Dtype{BOLittleEndian, BTInteger, 2}
	Int32      = Dtype{BOLittleEndian, BTInteger, 4}
	Int64      = Dtype{BOLittleEndian, BTInteger, 8}
	Uint8      = Dtype{BONotRelevant, BTUnsigned, 1}
	Uint16     = Dtype{BOLittleEndian, BTUnsigned, 2}
	Uint32     = Dtype{BOLittleEndian, BTUnsigned, 4}
	Uint64     = Dtype{BOLittleEndian, BTUnsigned, 8}
	Float32    = Dtype{BOLittleEndian, BTFloatingPoint, 4}
	Float64    = Dtype{BOLittleEndian, BTFloatingPoint, 8}
	Complex64  = Dtype{BOLittleEndian, BTComplex, 8}
	Complex128 = Dtype{BOLittleEndian, BTComplex, 16}
)

var (
	_ json.Unmarshaler = (*Dtype)(nil)
	_ json.Marshaler   = (*Dtype)(nil)
)

func ParseDtype(s string) (dt Dtype, err error) {
	// bug in python implementation uses HTML escape sequences when serializaing JSON
	s = strings.Replace(s, "&lt;", "<", 1)
	s = strings.Replace(s, "&gt;", ">", 1)

	if len(s) < 3 {
		return dt, fmt.Errorf("invalid Dtype string. %q is too short", s)
	}

	boByte, s := s[0], s[1:]
	dt.ByteOrder, err = ParseByteOrder(rune(boByte))
	if err != nil {
		return dt, err
	}

	typeByte, s := s[0], s[1:]
	dt.BasicType, err = ParseBasicType(rune(typeByte))
	if err != nil {
		return dt, err
	}

	size, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return dt, fmt.Errorf("invalid Dtype size %q: %w", s, err)
	}
	dt.ByteSize = int(size)

	if _, ok := elementKinds[dt.kind()]; !ok {
		return dt, fmt.Errorf("%w: dtype %q", ErrUnsupported, dt)
	}
	return dt, nil
}

func (dt Dtype) String() string {
	return fmt.Sprintf("%s%s%d", string(dt.ByteOrder), string(dt.BasicType), dt.ByteSize)
}

// SameKind reports whether two dtypes hold the same Go element type, ignoring
// byte order.
func (dt Dtype) SameKind(o Dtype) bool {
	return dt.kind() == o.kind()
}

// Binary returns the byte order used to encode elements of this type.
func (dt Dtype) Binary() binary.ByteOrder {
	if dt.ByteOrder == BOLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

type dtypeKind struct {
	t    BasicType
	size int
}

func (dt Dtype) kind() dtypeKind { return dtypeKind{dt.BasicType, dt.ByteSize} }

func (dt Dtype) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.String() + `"`), nil
}

func (dt *Dtype) UnmarshalJSON(d []byte) error {
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return err
	}
	t, err := ParseDtype(s)
	if err != nil {
		return err
	}

	*dt = t
	return nil
}

type ByteOrder rune

func ParseByteOrder(r rune) (ByteOrder, error) {
	o := ByteOrder(r)
	if _, ok := byteOrders[o]; !ok {
		return o, fmt.Errorf("unsupported byte order format: %q", r)
	}
	return o, nil
}

const (
	BONotRelevant  ByteOrder = '|'
	BOLittleEndian ByteOrder = '<'
	BOBigEndian    ByteOrder = '>'
)

var byteOrders = map[ByteOrder]struct{}{
	BONotRelevant:  {},
	BOLittleEndian: {},
	BOBigEndian:    {},
}

type BasicType rune

func ParseBasicType(r rune) (BasicType, error) {
	t := BasicType(r)
	if _, ok := supportedBasicTypes[t]; !ok {
		return t, fmt.Errorf("unsupported basic type: %q", r)
	}
	return t, nil
}

func (bt BasicType) Human() string {
	return supportedBasicTypes[bt]
}

const (
	BTBoolean       BasicType = 'b'
	BTInteger       BasicType = 'i'
	BTUnsigned      BasicType = 'u'
	BTFloatingPoint BasicType = 'f'
	BTComplex       BasicType = 'c'
)

var supportedBasicTypes = map[BasicType]string{
	BTBoolean:       "bool",
	BTInteger:       "int",
	BTUnsigned:      "uint",
	BTFloatingPoint: "float",
	BTComplex:       "complex",
}

// elementKinds maps every supported dtype to a constructor for its backing
// slice.
var elementKinds = map[dtypeKind]func(n int) buffer{
	Bool.kind():       func(n int) buffer { return make(typedBuffer[bool], n) },
	Int8.kind():       func(n int) buffer { return make(typedBuffer[int8], n) },
	Int16.kind():      func(n int) buffer { return make(typedBuffer[int16], n) },
	Int32.kind():      func(n int) buffer { return make(typedBuffer[int32], n) },
	Int64.kind():      func(n int) buffer { return make(typedBuffer[int64], n) },
	Uint8.kind():      func(n int) buffer { return make(typedBuffer[uint8], n) },
	Uint16.kind():     func(n int) buffer { return make(typedBuffer[uint16], n) },
	Uint32.kind():     func(n int) buffer { return make(typedBuffer[uint32], n) },
	Uint64.kind():     func(n int) buffer { return make(typedBuffer[uint64], n) },
	Float32.kind():    func(n int) buffer { return make(typedBuffer[float32], n) },
	Float64.kind():    func(n int) buffer { return make(typedBuffer[float64], n) },
	Complex64.kind():  func(n int) buffer { return make(typedBuffer[complex64], n) },
	Complex128.kind(): func(n int) buffer { return make(typedBuffer[complex128], n) },
}

func newBuffer(dt Dtype, n int) (buffer, error) {
	fac, ok := elementKinds[dt.kind()]
	if !ok {
		return nil, fmt.Errorf("%w: dtype %q", ErrUnsupported, dt)
	}
	return fac(n), nil
}
