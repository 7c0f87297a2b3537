// Package accessor exposes glTF accessor data as strongly-typed element
// streams over borrowed byte buffers.
package accessor

import "fmt"

// ComponentType identifies the primitive numeric type of a single
// element component.
type ComponentType uint8

// Component type constants, in glTF declaration order.
const (
	U8 ComponentType = iota
	I8
	U16
	I16
	U32
	F32
)

// Size returns the width of one component in bytes.
func (t ComponentType) Size() int {
	switch t {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, F32:
		return 4
	default:
		return 0
	}
}

// String returns the glTF-style component type name.
func (t ComponentType) String() string {
	switch t {
	case U8:
		return "u8"
	case I8:
		return "i8"
	case U16:
		return "u16"
	case I16:
		return "i16"
	case U32:
		return "u32"
	case F32:
		return "f32"
	default:
		return fmt.Sprintf("ComponentType(%d)", uint8(t))
	}
}

// Dimensions identifies the shape of one element: scalar, vector, or
// matrix.
type Dimensions uint8

// Dimensionality constants.
const (
	DimScalar Dimensions = iota
	DimVec2
	DimVec3
	DimVec4
	DimMat2
	DimMat3
	DimMat4
)

// Components returns the number of components in one element of this
// dimensionality.
func (d Dimensions) Components() int {
	switch d {
	case DimScalar:
		return 1
	case DimVec2:
		return 2
	case DimVec3:
		return 3
	case DimVec4:
		return 4
	case DimMat2:
		return 4
	case DimMat3:
		return 9
	case DimMat4:
		return 16
	default:
		return 0
	}
}

// String returns the glTF accessor type name.
func (d Dimensions) String() string {
	switch d {
	case DimScalar:
		return "SCALAR"
	case DimVec2:
		return "VEC2"
	case DimVec3:
		return "VEC3"
	case DimVec4:
		return "VEC4"
	case DimMat2:
		return "MAT2"
	case DimMat3:
		return "MAT3"
	case DimMat4:
		return "MAT4"
	default:
		return fmt.Sprintf("Dimensions(%d)", uint8(d))
	}
}

// ElementShape describes one element of an accessor: its component type
// and its dimensionality. Matrix elements are stored column-major.
type ElementShape struct {
	Type ComponentType
	Dims Dimensions
}

// Shape builds an ElementShape from a component type and dimensionality.
func Shape(t ComponentType, d Dimensions) ElementShape {
	return ElementShape{Type: t, Dims: d}
}

// Size returns the byte size of one element of this shape.
func (s ElementShape) Size() int {
	return s.Dims.Components() * s.Type.Size()
}

// String returns the shape as "VEC3/f32".
func (s ElementShape) String() string {
	return s.Dims.String() + "/" + s.Type.String()
}
