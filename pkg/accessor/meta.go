package accessor

// Meta is the decoded layout of one accessor-to-view binding. It is an
// immutable value derived once from accessor metadata; every data view
// in this package carries a copy.
type Meta struct {
	// Shape of one logical element.
	Shape ElementShape
	// ElemSize is the byte size of one logical element. It may be less
	// than Stride when attributes are interleaved.
	ElemSize int
	// Stride is the byte distance between consecutive elements in the
	// backing view.
	Stride int
	// Count is the number of logical elements.
	Count int
	// Normalized marks integer components as fixed-point normalized
	// values rather than raw integers.
	Normalized bool
}

// NewMeta builds the layout for a plain dense accessor. A stride of 0
// means tightly packed: the stride defaults to the element size.
func NewMeta(shape ElementShape, count, stride int, normalized bool) Meta {
	elem := shape.Size()
	if stride == 0 {
		stride = elem
	}
	return Meta{
		Shape:      shape,
		ElemSize:   elem,
		Stride:     stride,
		Count:      count,
		Normalized: normalized,
	}
}

// NewSparseIndexMeta builds the layout for the index sub-array of a
// sparse accessor. indexType must be one of U8, U16, or U32. A stride of
// 0 defaults to the index component width. count is the sparse override
// count, not the accessor's total element count.
func NewSparseIndexMeta(indexType ComponentType, count, stride int) Meta {
	shape := Shape(indexType, DimScalar)
	if stride == 0 {
		stride = indexType.Size()
	}
	return Meta{
		Shape:      shape,
		ElemSize:   shape.Size(),
		Stride:     stride,
		Count:      count,
		Normalized: false,
	}
}

// NewSparseValuesMeta builds the layout for the values sub-array of a
// sparse accessor. The shape matches the parent accessor; count is the
// sparse override count. A stride of 0 defaults to the element size.
func NewSparseValuesMeta(shape ElementShape, count, stride int, normalized bool) Meta {
	return NewMeta(shape, count, stride, normalized)
}
