package accessor

import (
	"errors"
	"testing"
)

// vec3Buffer encodes vectors tightly packed as VEC3/f32.
func vec3Buffer(t *testing.T, vecs ...[3]float32) []byte {
	t.Helper()
	var vals []any
	for _, v := range vecs {
		vals = append(vals, v[0], v[1], v[2])
	}
	return putLE(t, vals...)
}

func TestDenseRoundTrip(t *testing.T) {
	buf := vec3Buffer(t, [3]float32{1, 2, 3}, [3]float32{4, 5, 6}, [3]float32{7, 8, 9})
	d := NewDense(NewMeta(Shape(F32, DimVec3), 3, 0, false), buf)

	typed, err := DenseAs(d, Vec3[float32]())
	if err != nil {
		t.Fatalf("DenseAs failed: %v", err)
	}

	want := [][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	got := typed.Iter().Collect()
	if len(got) != 3 {
		t.Fatalf("iter yielded %d elements, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("iter element %d = %v, want %v", i, got[i], want[i])
		}
		v, ok := typed.Get(i)
		if !ok || v != want[i] {
			t.Errorf("Get(%d) = %v/%v, want %v", i, v, ok, want[i])
		}
	}
}

func TestDenseEndToEnd(t *testing.T) {
	// 3 tightly packed VEC3/f32 elements over a 36-byte buffer.
	buf := vec3Buffer(t, [3]float32{1, 2, 3}, [3]float32{4, 5, 6}, [3]float32{7, 8, 9})
	if len(buf) != 36 {
		t.Fatalf("buffer is %d bytes, want 36", len(buf))
	}
	d := NewDense(NewMeta(Shape(F32, DimVec3), 3, 12, false), buf)

	if d.Count() != 3 {
		t.Errorf("Count = %d, want 3", d.Count())
	}

	raw := d.GetRaw(1)
	if len(raw) != 12 {
		t.Fatalf("GetRaw(1) returned %d bytes, want 12", len(raw))
	}
	want := vec3Buffer(t, [3]float32{4, 5, 6})
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("GetRaw(1) byte %d = %#x, want %#x", i, raw[i], want[i])
		}
	}
}

func TestDenseInterleaved(t *testing.T) {
	// Position/normal interleaved at stride 24; positions start at 0.
	buf := vec3Buffer(t,
		[3]float32{1, 0, 0}, [3]float32{0, 0, 1},
		[3]float32{2, 0, 0}, [3]float32{0, 1, 0})
	d := NewDense(NewMeta(Shape(F32, DimVec3), 2, 24, false), buf)

	typed, err := DenseAs(d, Vec3[float32]())
	if err != nil {
		t.Fatalf("DenseAs failed: %v", err)
	}
	got := typed.Iter().Collect()
	want := [][3]float32{{1, 0, 0}, {2, 0, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDenseBounds(t *testing.T) {
	buf := putLE(t, float32(1), float32(2), float32(3))
	exact := NewDense(NewMeta(Shape(F32, DimScalar), 3, 0, false), buf)

	if exact.GetRaw(2) == nil {
		t.Error("GetRaw(count-1) on exactly sized buffer returned nil")
	}
	if exact.GetRaw(3) != nil {
		t.Error("GetRaw(count) returned data")
	}
	if exact.GetRaw(1 << 40) != nil {
		t.Error("GetRaw(huge) returned data")
	}
	if exact.GetRaw(-1) != nil {
		t.Error("GetRaw(-1) returned data")
	}

	short := NewDense(NewMeta(Shape(F32, DimScalar), 3, 0, false), buf[:len(buf)-1])
	if short.GetRaw(2) != nil {
		t.Error("GetRaw(count-1) on short buffer returned data")
	}
	if short.GetRaw(1) == nil {
		t.Error("GetRaw(1) on short buffer returned nil")
	}
}

func TestDenseHostileMeta(t *testing.T) {
	buf := vec3Buffer(t, [3]float32{1, 2, 3}, [3]float32{4, 5, 6}, [3]float32{7, 8, 9})

	// A negative stride from malformed metadata reads as absence, never
	// as a negative slice bound.
	negStride := NewDense(NewMeta(Shape(F32, DimVec3), 3, -12, false), buf)
	if negStride.GetRaw(0) != nil {
		t.Error("GetRaw(0) with negative stride returned data")
	}
	if negStride.GetRaw(1) != nil {
		t.Error("GetRaw(1) with negative stride returned data")
	}

	// A negative count empties the view instead of breaking iteration.
	negCount := NewDense(NewMeta(Shape(F32, DimScalar), -1, 0, false), buf)
	if negCount.GetRaw(0) != nil {
		t.Error("GetRaw(0) with negative count returned data")
	}
	typed, err := DenseAs(negCount, Scalar[float32]())
	if err != nil {
		t.Fatalf("DenseAs failed: %v", err)
	}
	it := typed.Iter()
	if it.Len() != 0 {
		t.Errorf("Len with negative count = %d, want 0", it.Len())
	}
	if got := it.Collect(); len(got) != 0 {
		t.Errorf("Collect with negative count yielded %d elements", len(got))
	}
}

func TestDenseTypeMismatch(t *testing.T) {
	buf := putLE(t, float32(1), float32(2), float32(3))
	d := NewDense(NewMeta(Shape(F32, DimVec3), 1, 0, false), buf)

	_, err := DenseAs(d, Vec2[float32]())
	if err == nil {
		t.Fatal("expected error converting VEC3/f32 to [2]float32")
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error is %T, want *TypeMismatchError", err)
	}
	if mismatch.Type != F32 || mismatch.Dims != DimVec3 {
		t.Errorf("error carries %s/%s, want VEC3/f32", mismatch.Dims, mismatch.Type)
	}
	if mismatch.Requested == "" {
		t.Error("error has empty requested type name")
	}
}

func TestNormalizedPropagation(t *testing.T) {
	buf := putLE(t, uint8(0), uint8(128), uint8(255), uint8(64))
	d := NewDense(NewMeta(Shape(U8, DimVec2), 2, 0, true), buf)

	typed, err := DenseAs(d, Vec2[uint8]())
	if err != nil {
		t.Fatalf("DenseAs failed: %v", err)
	}
	if !typed.Normalized() {
		t.Error("normalized flag lost through typed conversion")
	}

	data := FromDense(d)
	td, err := As(data, Vec2[uint8]())
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	if !td.Normalized() {
		t.Error("normalized flag lost through Data conversion")
	}
}

func TestDenseIterRestart(t *testing.T) {
	buf := putLE(t, uint16(10), uint16(20))
	d := NewDense(NewMeta(Shape(U16, DimScalar), 2, 0, false), buf)
	typed, err := DenseAs(d, Scalar[uint16]())
	if err != nil {
		t.Fatalf("DenseAs failed: %v", err)
	}

	first := typed.Iter()
	if first.Len() != 2 {
		t.Errorf("fresh iter Len = %d, want 2", first.Len())
	}
	first.Collect()

	// A fresh call starts a new pass.
	second := typed.Iter().Collect()
	if len(second) != 2 || second[0] != 10 || second[1] != 20 {
		t.Errorf("restarted iter = %v", second)
	}
}
