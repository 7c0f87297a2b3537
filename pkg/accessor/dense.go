package accessor

import "fmt"

// Dense is a strided, bounds-checked, untyped view over a contiguous
// byte buffer. It borrows the buffer; copies share it.
type Dense struct {
	meta Meta
	view []byte
}

// NewDense binds a layout to a backing byte view. The view starts at
// the first element; any accessor or view offset must already be
// applied by the caller.
func NewDense(meta Meta, view []byte) Dense {
	return Dense{meta: meta, view: view}
}

// GetRaw returns the raw bytes of the element at index, or nil when the
// index is out of range, the layout is malformed, or the computed byte
// range overruns the view.
func (d Dense) GetRaw(index int) []byte {
	if index < 0 || index >= d.meta.Count {
		return nil
	}
	// A non-positive stride can only come from hostile metadata and
	// would turn the slice bounds below negative.
	if d.meta.Stride <= 0 {
		return nil
	}
	// Guards the multiplication below against overflow for hostile
	// counts in the metadata.
	if index > len(d.view)/d.meta.Stride {
		return nil
	}
	start := index * d.meta.Stride
	end := start + d.meta.ElemSize
	if end > len(d.view) {
		return nil
	}
	return d.view[start:end]
}

// Meta returns the decoded layout of this view.
func (d Dense) Meta() Meta {
	return d.meta
}

// Shape returns the shape of each element.
func (d Dense) Shape() ElementShape {
	return d.meta.Shape
}

// ComponentType returns the component type of each element.
func (d Dense) ComponentType() ComponentType {
	return d.meta.Shape.Type
}

// Dimensions returns the dimensionality of each element.
func (d Dense) Dimensions() Dimensions {
	return d.meta.Shape.Dims
}

// ElementSize returns the byte size of one element.
func (d Dense) ElementSize() int {
	return d.meta.ElemSize
}

// Count returns the number of elements in this view.
func (d Dense) Count() int {
	return d.meta.Count
}

// Normalized reports whether integer components hold fixed-point
// normalized values.
func (d Dense) Normalized() bool {
	return d.meta.Normalized
}

// DenseAs validates that conv accepts this view's shape and returns a
// typed view over the same bytes. No data is copied. On a shape
// mismatch it returns a *TypeMismatchError.
func DenseAs[T any](d Dense, conv Converter[T]) (TypedDense[T], error) {
	if !conv.Validate(d.meta.Shape) {
		return TypedDense[T]{}, mismatch[T](d.meta.Shape)
	}
	return denseWithType(d, conv), nil
}

// denseWithType reinterprets without shape validation. Callers must
// have validated, or know the byte layout matches.
func denseWithType[T any](d Dense, conv Converter[T]) TypedDense[T] {
	return TypedDense[T]{raw: d, conv: conv}
}

// mismatch builds the error for a rejected conversion to T.
func mismatch[T any](shape ElementShape) *TypeMismatchError {
	var z T
	return &TypeMismatchError{
		Requested: fmt.Sprintf("%T", z),
		Type:      shape.Type,
		Dims:      shape.Dims,
	}
}

// convertAt decodes the element at index through conv.
func convertAt[T any](d Dense, conv Converter[T], index int) (T, bool) {
	raw := d.GetRaw(index)
	if raw == nil {
		var z T
		return z, false
	}
	el := NewElement(raw, d.meta.Shape)
	return conv.FromElement(&el), true
}

// TypedDense couples a Dense view with a validated element converter.
type TypedDense[T any] struct {
	raw  Dense
	conv Converter[T]
}

// Raw returns the untyped view backing this one.
func (d TypedDense[T]) Raw() Dense {
	return d.raw
}

// GetRaw returns the raw bytes of the element at index, or nil.
func (d TypedDense[T]) GetRaw(index int) []byte {
	return d.raw.GetRaw(index)
}

// Get decodes the element at index. The second return is false when the
// index is out of range or the byte range overruns the view.
func (d TypedDense[T]) Get(index int) (T, bool) {
	return convertAt(d.raw, d.conv, index)
}

// Count returns the number of elements in this view.
func (d TypedDense[T]) Count() int {
	return d.raw.meta.Count
}

// Shape returns the shape of each element.
func (d TypedDense[T]) Shape() ElementShape {
	return d.raw.meta.Shape
}

// Normalized reports whether integer components hold fixed-point
// normalized values.
func (d TypedDense[T]) Normalized() bool {
	return d.raw.meta.Normalized
}

// Iter returns a fresh forward iterator over all elements.
func (d TypedDense[T]) Iter() *DenseIter[T] {
	return &DenseIter[T]{d: d}
}

// DenseIter walks a typed dense view from front to back.
type DenseIter[T any] struct {
	d       TypedDense[T]
	counter int
}

// Next returns the next element. The second return is false once the
// view is exhausted or an element's bytes are unreadable.
func (it *DenseIter[T]) Next() (T, bool) {
	if it.counter >= it.d.raw.meta.Count {
		var z T
		return z, false
	}
	v, ok := it.d.Get(it.counter)
	if !ok {
		var z T
		return z, false
	}
	it.counter++
	return v, true
}

// Len returns the number of elements remaining. Never negative, even
// for a hostile element count in the metadata.
func (it *DenseIter[T]) Len() int {
	if n := it.d.raw.meta.Count - it.counter; n > 0 {
		return n
	}
	return 0
}

// Collect drains the iterator into a slice.
func (it *DenseIter[T]) Collect() []T {
	out := make([]T, 0, it.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
