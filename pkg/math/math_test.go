package math

import (
	"math"
	"testing"
)

const eps = 1e-5

func close(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func vecClose(a, b Vec3) bool {
	return close(a.X, b.X) && close(a.Y, b.Y) && close(a.Z, b.Z)
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross = %v", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	n := (Vec3{0, 0, 7}).Normalize()
	if !vecClose(n, Vec3{0, 0, 1}) {
		t.Errorf("Normalize = %v", n)
	}
	if got := a.Lerp(b, 0.5); got != (Vec3{2.5, 3.5, 4.5}) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestVecArrayRoundTrip(t *testing.T) {
	v := Vec3FromArray([3]float32{1, 2, 3})
	if v.Array() != ([3]float32{1, 2, 3}) {
		t.Errorf("round trip = %v", v.Array())
	}
	if got := Vec4FromArray([4]float32{1, 2, 3, 4}).XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ = %v", got)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{0, 0, 0, 2}.Normalize()
	if q != QuatIdentity() {
		t.Errorf("Normalize = %+v", q)
	}

	// A degenerate quaternion normalizes to identity rather than NaN.
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("degenerate Normalize = %+v", got)
	}
}

func TestQuatMulIdentity(t *testing.T) {
	q := Quat{X: 0.5, Y: 0.5, Z: 0.5, W: 0.5}
	if got := q.Mul(QuatIdentity()); got != q {
		t.Errorf("q * identity = %+v", got)
	}
	if got := QuatIdentity().Mul(q); got != q {
		t.Errorf("identity * q = %+v", got)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	s := float32(math.Sqrt2 / 2)
	a := QuatIdentity()
	b := Quat{X: 0, Y: s, Z: 0, W: s} // 90 degrees about Y

	if got := a.Slerp(b, 0); !quatClose(got, a) {
		t.Errorf("Slerp(0) = %+v", got)
	}
	if got := a.Slerp(b, 1); !quatClose(got, b) {
		t.Errorf("Slerp(1) = %+v", got)
	}

	// Halfway is a 45 degree rotation about Y.
	half := a.Slerp(b, 0.5)
	want := Quat{X: 0, Y: float32(math.Sin(math.Pi / 8)), Z: 0, W: float32(math.Cos(math.Pi / 8))}
	if !quatClose(half, want) {
		t.Errorf("Slerp(0.5) = %+v, want %+v", half, want)
	}
}

func quatClose(a, b Quat) bool {
	return close(a.X, b.X) && close(a.Y, b.Y) && close(a.Z, b.Z) && close(a.W, b.W)
}

func TestMat4ColumnsRoundTrip(t *testing.T) {
	cols := [4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	m := Mat4FromColumns(cols)
	if m.Columns() != cols {
		t.Errorf("Columns = %v", m.Columns())
	}
	// Column-major storage: element [1] is row 1 of column 0.
	if m[1] != 2 {
		t.Errorf("m[1] = %v, want 2", m[1])
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Compose(Vec3{1, 2, 3}, QuatIdentity(), Vec3{2, 2, 2})
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v", got)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v", got)
	}
}

func TestComposeTransform(t *testing.T) {
	// Translate by (10, 0, 0), rotate 90 degrees about Z, scale by 2.
	s := float32(math.Sqrt2 / 2)
	rot := Quat{X: 0, Y: 0, Z: s, W: s}
	m := Compose(Vec3{10, 0, 0}, rot, Vec3{2, 2, 2})

	// (1, 0, 0) scales to (2, 0, 0), rotates to (0, 2, 0), translates to (10, 2, 0).
	p := m.TransformPoint(Vec3{1, 0, 0})
	if !vecClose(p, Vec3{10, 2, 0}) {
		t.Errorf("TransformPoint = %+v", p)
	}

	// Directions ignore translation.
	d := m.TransformDirection(Vec3{1, 0, 0})
	if !vecClose(d, Vec3{0, 2, 0}) {
		t.Errorf("TransformDirection = %+v", d)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4FromColumns([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	tr := m.Transpose()
	if tr.Columns()[0] != ([4]float32{1, 5, 9, 13}) {
		t.Errorf("Transpose column 0 = %v", tr.Columns()[0])
	}
	if m.Transpose().Transpose() != m {
		t.Error("double transpose is not the original")
	}
}
