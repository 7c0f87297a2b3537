package accessor

import "testing"

func TestComponentTypeSize(t *testing.T) {
	cases := []struct {
		ct   ComponentType
		want int
	}{
		{U8, 1},
		{I8, 1},
		{U16, 2},
		{I16, 2},
		{U32, 4},
		{F32, 4},
	}

	for _, tc := range cases {
		if got := tc.ct.Size(); got != tc.want {
			t.Errorf("%s.Size() = %d, want %d", tc.ct, got, tc.want)
		}
	}
}

func TestDimensionsComponents(t *testing.T) {
	cases := []struct {
		dims Dimensions
		want int
	}{
		{DimScalar, 1},
		{DimVec2, 2},
		{DimVec3, 3},
		{DimVec4, 4},
		{DimMat2, 4},
		{DimMat3, 9},
		{DimMat4, 16},
	}

	for _, tc := range cases {
		if got := tc.dims.Components(); got != tc.want {
			t.Errorf("%s.Components() = %d, want %d", tc.dims, got, tc.want)
		}
	}
}

func TestElementShapeSize(t *testing.T) {
	cases := []struct {
		shape ElementShape
		want  int
	}{
		{Shape(U8, DimScalar), 1},
		{Shape(U16, DimVec2), 4},
		{Shape(F32, DimVec3), 12},
		{Shape(F32, DimVec4), 16},
		{Shape(I16, DimMat2), 8},
		{Shape(F32, DimMat3), 36},
		{Shape(F32, DimMat4), 64},
	}

	for _, tc := range cases {
		if got := tc.shape.Size(); got != tc.want {
			t.Errorf("%s.Size() = %d, want %d", tc.shape, got, tc.want)
		}
	}
}

func TestElementShapeString(t *testing.T) {
	s := Shape(F32, DimVec3)
	if got := s.String(); got != "VEC3/f32" {
		t.Errorf("String() = %q, want %q", got, "VEC3/f32")
	}
}

func TestMetaDefaultStride(t *testing.T) {
	m := NewMeta(Shape(F32, DimVec3), 5, 0, false)
	if m.Stride != 12 {
		t.Errorf("default stride = %d, want 12", m.Stride)
	}
	if m.ElemSize != 12 {
		t.Errorf("elem size = %d, want 12", m.ElemSize)
	}

	interleaved := NewMeta(Shape(F32, DimVec3), 5, 32, false)
	if interleaved.Stride != 32 {
		t.Errorf("explicit stride = %d, want 32", interleaved.Stride)
	}
	if interleaved.ElemSize != 12 {
		t.Errorf("interleaved elem size = %d, want 12", interleaved.ElemSize)
	}
}

func TestSparseIndexMetaStride(t *testing.T) {
	m := NewSparseIndexMeta(U16, 3, 0)
	if m.Stride != 2 || m.ElemSize != 2 {
		t.Errorf("u16 index meta stride=%d elem=%d, want 2/2", m.Stride, m.ElemSize)
	}
	if m.Shape != Shape(U16, DimScalar) {
		t.Errorf("u16 index meta shape = %s", m.Shape)
	}
	if m.Normalized {
		t.Error("index meta should never be normalized")
	}
}
