package accessor

import "github.com/Faultbox/gltfstream/pkg/math"

// Semantic converters map f32-backed shapes directly onto pkg/math value
// types, bypassing the generic array composition. They accept exactly
// one shape each.

type mathVec2Conv struct{}

func (mathVec2Conv) Zero(ElementShape) math.Vec2 {
	return math.Vec2{}
}

func (mathVec2Conv) FromElement(el *Element) math.Vec2 {
	return math.Vec2{X: el.ReadF32(), Y: el.ReadF32()}
}

func (mathVec2Conv) Validate(s ElementShape) bool {
	return s.Type == F32 && s.Dims == DimVec2
}

// MathVec2 returns a converter producing math.Vec2 from VEC2/f32
// accessors.
func MathVec2() Converter[math.Vec2] {
	return mathVec2Conv{}
}

type mathVec3Conv struct{}

func (mathVec3Conv) Zero(ElementShape) math.Vec3 {
	return math.Vec3{}
}

func (mathVec3Conv) FromElement(el *Element) math.Vec3 {
	return math.Vec3{X: el.ReadF32(), Y: el.ReadF32(), Z: el.ReadF32()}
}

func (mathVec3Conv) Validate(s ElementShape) bool {
	return s.Type == F32 && s.Dims == DimVec3
}

// MathVec3 returns a converter producing math.Vec3 from VEC3/f32
// accessors.
func MathVec3() Converter[math.Vec3] {
	return mathVec3Conv{}
}

type mathQuatConv struct{}

// The zero quaternion is the additive zero, not the identity rotation.
// It matches the all-zero bytes returned by the raw sparse zero path.
func (mathQuatConv) Zero(ElementShape) math.Quat {
	return math.Quat{}
}

func (mathQuatConv) FromElement(el *Element) math.Quat {
	return math.Quat{X: el.ReadF32(), Y: el.ReadF32(), Z: el.ReadF32(), W: el.ReadF32()}
}

func (mathQuatConv) Validate(s ElementShape) bool {
	return s.Type == F32 && s.Dims == DimVec4
}

// MathQuat returns a converter producing math.Quat from VEC4/f32
// accessors, in glTF XYZW component order.
func MathQuat() Converter[math.Quat] {
	return mathQuatConv{}
}

type mathMat4Conv struct{}

func (mathMat4Conv) Zero(ElementShape) math.Mat4 {
	return math.Mat4{}
}

// math.Mat4 stores column-major float32s, so the sixteen components are
// consumed in element order.
func (mathMat4Conv) FromElement(el *Element) math.Mat4 {
	var m math.Mat4
	for i := range m {
		m[i] = el.ReadF32()
	}
	return m
}

func (mathMat4Conv) Validate(s ElementShape) bool {
	return s.Type == F32 && s.Dims == DimMat4
}

// MathMat4 returns a converter producing math.Mat4 from MAT4/f32
// accessors.
func MathMat4() Converter[math.Mat4] {
	return mathMat4Conv{}
}
