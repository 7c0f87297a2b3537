package accessor

import "testing"

func TestDataDenseFacade(t *testing.T) {
	buf := vec3Buffer(t, [3]float32{1, 2, 3}, [3]float32{4, 5, 6}, [3]float32{7, 8, 9})
	data := FromDense(NewDense(NewMeta(Shape(F32, DimVec3), 3, 0, false), buf))

	if data.IsSparse() {
		t.Error("dense data reports sparse")
	}
	if data.Count() != 3 || data.ElementSize() != 12 {
		t.Errorf("count=%d elem=%d, want 3/12", data.Count(), data.ElementSize())
	}
	if data.ComponentType() != F32 || data.Dimensions() != DimVec3 {
		t.Errorf("shape = %s", data.Shape())
	}

	typed, err := As(data, Vec3[float32]())
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	got := typed.Iter().Collect()
	want := [][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDataSparseFacade(t *testing.T) {
	sp := testSparse(t, 4, nil, map[uint16][3]float32{
		1: {10, 0, 0},
		3: {20, 0, 0},
	})
	data := FromSparse(sp)

	if !data.IsSparse() {
		t.Error("sparse data reports dense")
	}
	if data.Count() != 4 {
		t.Errorf("Count = %d, want 4", data.Count())
	}

	typed, err := As(data, Vec3[float32]())
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	got := typed.Iter().Collect()
	want := [][3]float32{{0, 0, 0}, {10, 0, 0}, {0, 0, 0}, {20, 0, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}

	// GetRaw dispatches through the same facade.
	if data.GetRaw(4) != nil {
		t.Error("GetRaw(count) returned data")
	}
	raw := data.GetRaw(0)
	if len(raw) != 12 {
		t.Fatalf("GetRaw(0) returned %d bytes, want 12", len(raw))
	}
}

func TestDataMismatchIsSkippable(t *testing.T) {
	buf := putLE(t, uint16(1), uint16(2), uint16(3))
	data := FromDense(NewDense(NewMeta(Shape(U16, DimScalar), 3, 0, false), buf))

	// The documented pattern for optional attributes: attempt the
	// conversion, treat a mismatch as absence.
	if _, err := As(data, MathVec3()); err == nil {
		t.Fatal("expected mismatch converting SCALAR/u16 to math.Vec3")
	}

	typed, err := As(data, Scalar[uint16]())
	if err != nil {
		t.Fatalf("matching conversion failed: %v", err)
	}
	if v, ok := typed.Get(2); !ok || v != 3 {
		t.Errorf("Get(2) = %d/%v, want 3", v, ok)
	}
}

func TestDataSemanticConversion(t *testing.T) {
	buf := vec3Buffer(t, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})
	data := FromDense(NewDense(NewMeta(Shape(F32, DimVec3), 2, 0, false), buf))

	typed, err := As(data, MathVec3())
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	got := typed.Iter().Collect()
	if got[0].X != 1 || got[1].Y != 1 {
		t.Errorf("semantic conversion = %+v", got)
	}
}
