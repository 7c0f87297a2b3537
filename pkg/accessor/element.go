package accessor

import (
	"encoding/binary"
	"math"
)

// Element is a consuming cursor over the raw bytes of a single accessor
// element. Each read slices off and advances past the consumed prefix.
// All multi-byte reads are little-endian.
//
// Reads past the end of the element panic. Shape validation before any
// FromElement call guarantees exactly Shape().Size() bytes are present,
// so an underrun is an invariant violation, not a runtime condition.
type Element struct {
	data  []byte
	shape ElementShape
}

// NewElement wraps the raw bytes of one element together with its
// expected shape.
func NewElement(data []byte, shape ElementShape) Element {
	return Element{data: data, shape: shape}
}

// Shape returns the expected shape of the element being read.
func (e *Element) Shape() ElementShape {
	return e.shape
}

// ReadU8 consumes one unsigned byte.
func (e *Element) ReadU8() uint8 {
	v := e.data[0]
	e.data = e.data[1:]
	return v
}

// ReadI8 consumes one signed byte.
func (e *Element) ReadI8() int8 {
	return int8(e.ReadU8())
}

// ReadU16 consumes one little-endian uint16.
func (e *Element) ReadU16() uint16 {
	v := binary.LittleEndian.Uint16(e.data)
	e.data = e.data[2:]
	return v
}

// ReadI16 consumes one little-endian int16.
func (e *Element) ReadI16() int16 {
	return int16(e.ReadU16())
}

// ReadU32 consumes one little-endian uint32.
func (e *Element) ReadU32() uint32 {
	v := binary.LittleEndian.Uint32(e.data)
	e.data = e.data[4:]
	return v
}

// ReadF32 consumes one little-endian IEEE-754 float32.
func (e *Element) ReadF32() float32 {
	return math.Float32frombits(e.ReadU32())
}
