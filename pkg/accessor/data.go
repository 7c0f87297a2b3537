package accessor

// Data is the uniform facade over dense and sparse accessor data.
// Callers never need to know which variant backs a given accessor.
type Data struct {
	sparse *Sparse
	dense  Dense
}

// FromDense wraps a dense view as accessor data.
func FromDense(d Dense) Data {
	return Data{dense: d}
}

// FromSparse wraps a sparse overlay as accessor data.
func FromSparse(s Sparse) Data {
	return Data{sparse: &s}
}

// IsSparse reports whether this accessor uses a sparse overlay.
func (d Data) IsSparse() bool {
	return d.sparse != nil
}

// GetRaw returns the raw bytes of the element at index, or nil.
func (d Data) GetRaw(index int) []byte {
	if d.sparse != nil {
		return d.sparse.GetRaw(index)
	}
	return d.dense.GetRaw(index)
}

// Meta returns the decoded layout of this accessor.
func (d Data) Meta() Meta {
	if d.sparse != nil {
		return d.sparse.meta
	}
	return d.dense.meta
}

// Shape returns the shape of each element.
func (d Data) Shape() ElementShape {
	return d.Meta().Shape
}

// ComponentType returns the component type of each element.
func (d Data) ComponentType() ComponentType {
	return d.Meta().Shape.Type
}

// Dimensions returns the dimensionality of each element.
func (d Data) Dimensions() Dimensions {
	return d.Meta().Shape.Dims
}

// ElementSize returns the byte size of one element.
func (d Data) ElementSize() int {
	return d.Meta().ElemSize
}

// Count returns the number of logical elements.
func (d Data) Count() int {
	return d.Meta().Count
}

// Normalized reports whether integer components hold fixed-point
// normalized values.
func (d Data) Normalized() bool {
	return d.Meta().Normalized
}

// As validates that conv accepts this accessor's shape and returns a
// typed view over the same bytes. No data is copied. On a shape
// mismatch it returns a *TypeMismatchError; callers reading optional
// attributes are expected to treat that error as "attribute absent".
func As[T any](d Data, conv Converter[T]) (TypedData[T], error) {
	if !conv.Validate(d.Shape()) {
		return TypedData[T]{}, mismatch[T](d.Shape())
	}
	return withType(d, conv), nil
}

// withType reinterprets without shape validation. Kept internal: all
// public conversions go through As.
func withType[T any](d Data, conv Converter[T]) TypedData[T] {
	if d.sparse != nil {
		t := sparseWithType(*d.sparse, conv)
		return TypedData[T]{sparse: &t}
	}
	return TypedData[T]{dense: denseWithType(d.dense, conv)}
}

// TypedData is the typed facade over dense and sparse accessor data.
type TypedData[T any] struct {
	sparse *TypedSparse[T]
	dense  TypedDense[T]
}

// IsSparse reports whether this accessor uses a sparse overlay.
func (d TypedData[T]) IsSparse() bool {
	return d.sparse != nil
}

// GetRaw returns the raw bytes of the element at index, or nil.
func (d TypedData[T]) GetRaw(index int) []byte {
	if d.sparse != nil {
		return d.sparse.GetRaw(index)
	}
	return d.dense.GetRaw(index)
}

// Get decodes the element at index.
func (d TypedData[T]) Get(index int) (T, bool) {
	if d.sparse != nil {
		return d.sparse.Get(index)
	}
	return d.dense.Get(index)
}

// Meta returns the decoded layout of this accessor.
func (d TypedData[T]) Meta() Meta {
	if d.sparse != nil {
		return d.sparse.raw.meta
	}
	return d.dense.raw.meta
}

// Shape returns the shape of each element.
func (d TypedData[T]) Shape() ElementShape {
	return d.Meta().Shape
}

// ComponentType returns the component type of each element.
func (d TypedData[T]) ComponentType() ComponentType {
	return d.Meta().Shape.Type
}

// Dimensions returns the dimensionality of each element.
func (d TypedData[T]) Dimensions() Dimensions {
	return d.Meta().Shape.Dims
}

// ElementSize returns the byte size of one element.
func (d TypedData[T]) ElementSize() int {
	return d.Meta().ElemSize
}

// Count returns the number of logical elements.
func (d TypedData[T]) Count() int {
	return d.Meta().Count
}

// Normalized reports whether integer components hold fixed-point
// normalized values.
func (d TypedData[T]) Normalized() bool {
	return d.Meta().Normalized
}

// Iter returns a fresh forward iterator over all logical elements.
func (d TypedData[T]) Iter() *Iter[T] {
	if d.sparse != nil {
		return &Iter[T]{sparse: d.sparse.Iter()}
	}
	return &Iter[T]{dense: d.dense.Iter()}
}

// Iter is the uniform iterator over dense and sparse accessor data.
type Iter[T any] struct {
	dense  *DenseIter[T]
	sparse *SparseIter[T]
}

// Next returns the next element; false once the accessor is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.sparse != nil {
		return it.sparse.Next()
	}
	return it.dense.Next()
}

// Len returns the number of elements remaining.
func (it *Iter[T]) Len() int {
	if it.sparse != nil {
		return it.sparse.Len()
	}
	return it.dense.Len()
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect() []T {
	if it.sparse != nil {
		return it.sparse.Collect()
	}
	return it.dense.Collect()
}
