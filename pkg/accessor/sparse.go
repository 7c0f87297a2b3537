package accessor

import (
	"encoding/binary"
	"errors"
)

// ErrIndexType is returned when a sparse index view is not a scalar
// u8, u16, or u32 accessor.
var ErrIndexType = errors.New("sparse index view must be scalar u8, u16, or u32")

// IndexData is the index sub-array of a sparse accessor: an ascending,
// duplicate-free list of replaced logical indices in one of three
// integer widths.
//
// The ascending invariant comes from the glTF specification and is not
// re-verified against the decoded bytes; FindReplacement silently
// returns wrong results for unsorted input.
type IndexData struct {
	data Dense
}

// NewIndexData wraps a scalar integer dense view as sparse index data.
func NewIndexData(d Dense) (IndexData, error) {
	if d.meta.Shape.Dims != DimScalar {
		return IndexData{}, ErrIndexType
	}
	switch d.meta.Shape.Type {
	case U8, U16, U32:
		return IndexData{data: d}, nil
	default:
		return IndexData{}, ErrIndexType
	}
}

// Count returns the number of replaced indices.
func (x IndexData) Count() int {
	return x.data.meta.Count
}

// At returns the logical index stored at position n.
func (x IndexData) At(n int) (int, bool) {
	raw := x.data.GetRaw(n)
	if raw == nil {
		return 0, false
	}
	switch x.data.meta.Shape.Type {
	case U8:
		return int(raw[0]), true
	case U16:
		return int(binary.LittleEndian.Uint16(raw)), true
	default:
		return int(binary.LittleEndian.Uint32(raw)), true
	}
}

// FindReplacement binary-searches the ascending index array for the
// given logical index. On a hit it returns the position in the sparse
// values array holding the replacement element.
func (x IndexData) FindReplacement(index int) (int, bool) {
	n := x.Count()
	if n == 0 {
		return 0, false
	}

	left, right := 0, n-1
	for left != right {
		// Ceiling midpoint, so the left bound always advances.
		mid := (left + right + 1) / 2
		v, ok := x.At(mid)
		if !ok {
			return 0, false
		}
		if v > index {
			right = mid - 1
		} else {
			left = mid
		}
	}

	v, ok := x.At(left)
	if !ok || v != index {
		return 0, false
	}
	return left, true
}

// Sparse overlays explicit replacement values onto an optional base
// dense view. Logical indices present in the index array resolve to the
// corresponding replacement value; all others resolve to the base view,
// or to zero when no base exists.
type Sparse struct {
	meta    Meta
	base    *Dense
	indices IndexData
	values  Dense
}

// NewSparse assembles a sparse overlay. meta.Count is the accessor's
// total logical element count; indices and values share the override
// count. base may be nil.
func NewSparse(meta Meta, base *Dense, indices IndexData, values Dense) Sparse {
	return Sparse{meta: meta, base: base, indices: indices, values: values}
}

// GetRaw returns the raw bytes of the element at index: the replacement
// value when overridden, the base element otherwise, or a zero-filled
// slice of element size when no base exists. The zero path allocates a
// fresh slice each call so writes through it cannot leak into later
// reads. Returns nil out of range.
func (s Sparse) GetRaw(index int) []byte {
	if index < 0 || index >= s.meta.Count {
		return nil
	}
	if p, ok := s.indices.FindReplacement(index); ok {
		return s.values.GetRaw(p)
	}
	if s.base != nil {
		return s.base.GetRaw(index)
	}
	return make([]byte, s.meta.ElemSize)
}

// Meta returns the decoded layout of this accessor.
func (s Sparse) Meta() Meta {
	return s.meta
}

// Shape returns the shape of each element.
func (s Sparse) Shape() ElementShape {
	return s.meta.Shape
}

// ComponentType returns the component type of each element.
func (s Sparse) ComponentType() ComponentType {
	return s.meta.Shape.Type
}

// Dimensions returns the dimensionality of each element.
func (s Sparse) Dimensions() Dimensions {
	return s.meta.Shape.Dims
}

// ElementSize returns the byte size of one element.
func (s Sparse) ElementSize() int {
	return s.meta.ElemSize
}

// Count returns the accessor's total logical element count.
func (s Sparse) Count() int {
	return s.meta.Count
}

// Normalized reports whether integer components hold fixed-point
// normalized values.
func (s Sparse) Normalized() bool {
	return s.meta.Normalized
}

// SparseAs validates that conv accepts this accessor's shape and
// returns a typed view over the same bytes. The base and values views
// always share the accessor's shape, so one validation covers all
// three parts.
func SparseAs[T any](s Sparse, conv Converter[T]) (TypedSparse[T], error) {
	if !conv.Validate(s.meta.Shape) {
		return TypedSparse[T]{}, mismatch[T](s.meta.Shape)
	}
	return sparseWithType(s, conv), nil
}

// sparseWithType reinterprets without shape validation.
func sparseWithType[T any](s Sparse, conv Converter[T]) TypedSparse[T] {
	return TypedSparse[T]{raw: s, conv: conv}
}

// TypedSparse couples a sparse overlay with a validated converter.
type TypedSparse[T any] struct {
	raw  Sparse
	conv Converter[T]
}

// Raw returns the untyped overlay backing this one.
func (s TypedSparse[T]) Raw() Sparse {
	return s.raw
}

// GetRaw returns the raw bytes of the element at index, or nil.
func (s TypedSparse[T]) GetRaw(index int) []byte {
	return s.raw.GetRaw(index)
}

// Get decodes the element at index: replacement value, base value, or
// the converter's zero when no base exists.
func (s TypedSparse[T]) Get(index int) (T, bool) {
	if index < 0 || index >= s.raw.meta.Count {
		var z T
		return z, false
	}
	if p, ok := s.raw.indices.FindReplacement(index); ok {
		return convertAt(s.raw.values, s.conv, p)
	}
	if s.raw.base != nil {
		return convertAt(*s.raw.base, s.conv, index)
	}
	return s.conv.Zero(s.raw.meta.Shape), true
}

// Count returns the accessor's total logical element count.
func (s TypedSparse[T]) Count() int {
	return s.raw.meta.Count
}

// Shape returns the shape of each element.
func (s TypedSparse[T]) Shape() ElementShape {
	return s.raw.meta.Shape
}

// Normalized reports whether integer components hold fixed-point
// normalized values.
func (s TypedSparse[T]) Normalized() bool {
	return s.raw.meta.Normalized
}

// Iter returns a fresh merge iterator over all logical elements.
func (s TypedSparse[T]) Iter() *SparseIter[T] {
	it := &SparseIter[T]{s: s, nextIdx: -1}
	if idx, ok := s.raw.indices.At(0); ok {
		it.nextIdx = idx
	}
	return it
}

// SparseIter merges the override stream with the base view in a single
// forward pass. It relies on the index array being ascending: the next
// pending override is compared against a running logical counter, never
// searched for.
type SparseIter[T any] struct {
	s       TypedSparse[T]
	counter int
	next    int // position of the pending override in indices/values
	nextIdx int // logical index of the pending override, -1 when drained
}

// Next returns the element at the next logical index. The counter
// advances exactly once per produced element and the iterator ends when
// it reaches the accessor's element count.
func (it *SparseIter[T]) Next() (T, bool) {
	var z T
	if it.counter >= it.s.raw.meta.Count {
		return z, false
	}
	i := it.counter
	it.counter++

	if it.nextIdx == i {
		v, ok := convertAt(it.s.raw.values, it.s.conv, it.next)
		if !ok {
			return z, false
		}
		it.next++
		it.nextIdx = -1
		if idx, ok := it.s.raw.indices.At(it.next); ok {
			it.nextIdx = idx
		}
		return v, true
	}
	if it.s.raw.base != nil {
		return convertAt(*it.s.raw.base, it.s.conv, i)
	}
	return it.s.conv.Zero(it.s.raw.meta.Shape), true
}

// Len returns the number of elements remaining. Never negative, even
// for a hostile element count in the metadata.
func (it *SparseIter[T]) Len() int {
	if n := it.s.raw.meta.Count - it.counter; n > 0 {
		return n
	}
	return 0
}

// Collect drains the iterator into a slice.
func (it *SparseIter[T]) Collect() []T {
	out := make([]T, 0, it.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
