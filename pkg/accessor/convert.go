package accessor

// Converter maps raw accessor elements onto a Go output type T. It is
// the conversion contract of this package: Validate reports whether the
// accessor's declared shape can produce T, FromElement performs the
// conversion, and Zero supplies the neutral value used by sparse
// accessors without a base view.
//
// FromElement must only be called for shapes accepted by Validate; it
// consumes exactly Shape().Size() bytes from the cursor.
type Converter[T any] interface {
	// Zero returns the neutral value of T. The shape is passed through
	// for conversions whose zero depends on the declared layout.
	Zero(shape ElementShape) T
	// FromElement consumes one element from the cursor.
	FromElement(el *Element) T
	// Validate reports whether elements of the given shape can be
	// converted into T.
	Validate(shape ElementShape) bool
}

// Component is the closed set of Go types that can back one accessor
// component.
type Component interface {
	uint8 | int8 | uint16 | int16 | uint32 | float32
}

// componentTypeOf maps a Go component type onto its ComponentType tag.
func componentTypeOf[C Component]() ComponentType {
	var v C
	switch any(v).(type) {
	case uint8:
		return U8
	case int8:
		return I8
	case uint16:
		return U16
	case int16:
		return I16
	case uint32:
		return U32
	default:
		return F32
	}
}

// readComponent consumes one component of type C from the cursor.
func readComponent[C Component](el *Element) C {
	var v C
	switch p := any(&v).(type) {
	case *uint8:
		*p = el.ReadU8()
	case *int8:
		*p = el.ReadI8()
	case *uint16:
		*p = el.ReadU16()
	case *int16:
		*p = el.ReadI16()
	case *uint32:
		*p = el.ReadU32()
	case *float32:
		*p = el.ReadF32()
	}
	return v
}

type scalarConv[C Component] struct{}

func (scalarConv[C]) Zero(ElementShape) C {
	var z C
	return z
}

func (scalarConv[C]) FromElement(el *Element) C {
	return readComponent[C](el)
}

func (scalarConv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimScalar
}

// Scalar returns a converter producing single components of type C.
func Scalar[C Component]() Converter[C] {
	return scalarConv[C]{}
}

type vec2Conv[C Component] struct{}

func (vec2Conv[C]) Zero(ElementShape) [2]C {
	return [2]C{}
}

func (vec2Conv[C]) FromElement(el *Element) [2]C {
	return [2]C{readComponent[C](el), readComponent[C](el)}
}

func (vec2Conv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimVec2
}

// Vec2 returns a converter producing 2-component arrays of C.
func Vec2[C Component]() Converter[[2]C] {
	return vec2Conv[C]{}
}

type vec3Conv[C Component] struct{}

func (vec3Conv[C]) Zero(ElementShape) [3]C {
	return [3]C{}
}

func (vec3Conv[C]) FromElement(el *Element) [3]C {
	return [3]C{readComponent[C](el), readComponent[C](el), readComponent[C](el)}
}

func (vec3Conv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimVec3
}

// Vec3 returns a converter producing 3-component arrays of C.
func Vec3[C Component]() Converter[[3]C] {
	return vec3Conv[C]{}
}

type vec4Conv[C Component] struct{}

func (vec4Conv[C]) Zero(ElementShape) [4]C {
	return [4]C{}
}

func (vec4Conv[C]) FromElement(el *Element) [4]C {
	return [4]C{
		readComponent[C](el), readComponent[C](el),
		readComponent[C](el), readComponent[C](el),
	}
}

func (vec4Conv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimVec4
}

// Vec4 returns a converter producing 4-component arrays of C.
func Vec4[C Component]() Converter[[4]C] {
	return vec4Conv[C]{}
}

type mat2Conv[C Component] struct{}

func (mat2Conv[C]) Zero(ElementShape) [2][2]C {
	return [2][2]C{}
}

// Matrix elements are read column by column, matching the glTF
// column-major layout; out[c] holds column c.
func (mat2Conv[C]) FromElement(el *Element) [2][2]C {
	var out [2][2]C
	for c := range out {
		for r := range out[c] {
			out[c][r] = readComponent[C](el)
		}
	}
	return out
}

func (mat2Conv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimMat2
}

// Mat2 returns a converter producing column-major 2x2 matrices of C.
func Mat2[C Component]() Converter[[2][2]C] {
	return mat2Conv[C]{}
}

type mat3Conv[C Component] struct{}

func (mat3Conv[C]) Zero(ElementShape) [3][3]C {
	return [3][3]C{}
}

func (mat3Conv[C]) FromElement(el *Element) [3][3]C {
	var out [3][3]C
	for c := range out {
		for r := range out[c] {
			out[c][r] = readComponent[C](el)
		}
	}
	return out
}

func (mat3Conv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimMat3
}

// Mat3 returns a converter producing column-major 3x3 matrices of C.
func Mat3[C Component]() Converter[[3][3]C] {
	return mat3Conv[C]{}
}

type mat4Conv[C Component] struct{}

func (mat4Conv[C]) Zero(ElementShape) [4][4]C {
	return [4][4]C{}
}

func (mat4Conv[C]) FromElement(el *Element) [4][4]C {
	var out [4][4]C
	for c := range out {
		for r := range out[c] {
			out[c][r] = readComponent[C](el)
		}
	}
	return out
}

func (mat4Conv[C]) Validate(s ElementShape) bool {
	return s.Type == componentTypeOf[C]() && s.Dims == DimMat4
}

// Mat4 returns a converter producing column-major 4x4 matrices of C.
func Mat4[C Component]() Converter[[4][4]C] {
	return mat4Conv[C]{}
}
