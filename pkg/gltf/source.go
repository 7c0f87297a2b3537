package gltf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"sync"

	"github.com/Faultbox/gltfstream/pkg/accessor"
)

// Document and buffer resolution errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported glTF version: expected 2.x")
	ErrBufferIndex        = errors.New("buffer index out of range")
	ErrViewIndex          = errors.New("buffer view index out of range")
	ErrAccessorIndex      = errors.New("accessor index out of range")
	ErrMissingBIN         = errors.New("buffer refers to a GLB binary chunk that is not present")
	ErrNoExternalFS       = errors.New("external buffer URI with no file system configured")
	ErrShortBuffer        = errors.New("buffer shorter than its declared byteLength")
	ErrViewBounds         = errors.New("buffer view exceeds buffer bounds")
	ErrNegativeStride     = errors.New("buffer view byteStride is negative")
	ErrNegativeCount      = errors.New("accessor count is negative")
)

// Source owns a parsed glTF document together with its resolved buffer
// bytes, and hands out accessor data views borrowing those bytes.
// Buffer resolution is cached by buffer index; everything handed out is
// read-only, so a Source is safe for concurrent readers.
type Source struct {
	doc  *Document
	bin  []byte
	fsys fs.FS

	mu    sync.RWMutex
	cache map[int][]byte
}

// Parse parses glTF content, accepting both the binary GLB container
// and plain JSON. fsys resolves external buffer URIs relative to the
// document and may be nil for self-contained assets.
func Parse(data []byte, fsys fs.FS) (*Source, error) {
	if IsGLB(data) {
		glb, err := ParseGLB(data)
		if err != nil {
			return nil, err
		}
		return parseJSON(glb.JSON, glb.BIN, fsys)
	}
	return parseJSON(data, nil, fsys)
}

func parseJSON(data, bin []byte, fsys fs.FS) (*Source, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing glTF JSON: %w", err)
	}
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return nil, fmt.Errorf("%w, got %q", ErrUnsupportedVersion, doc.Asset.Version)
	}
	return &Source{
		doc:   &doc,
		bin:   bin,
		fsys:  fsys,
		cache: make(map[int][]byte),
	}, nil
}

// Document returns the parsed document.
func (s *Source) Document() *Document {
	return s.doc
}

// Buffer resolves the bytes of buffer i: the GLB binary chunk for
// URI-less buffers, decoded data URIs, or external files read through
// the configured file system. Resolved buffers are cached by index.
func (s *Source) Buffer(i int) ([]byte, error) {
	if i < 0 || i >= len(s.doc.Buffers) {
		return nil, fmt.Errorf("%w: %d", ErrBufferIndex, i)
	}

	s.mu.RLock()
	data, ok := s.cache[i]
	s.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := s.resolveBuffer(i)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[i] = data
	s.mu.Unlock()
	return data, nil
}

func (s *Source) resolveBuffer(i int) ([]byte, error) {
	buf := s.doc.Buffers[i]

	var data []byte
	switch {
	case buf.URI == "":
		if s.bin == nil {
			return nil, fmt.Errorf("%w (buffer %d)", ErrMissingBIN, i)
		}
		data = s.bin
	case strings.HasPrefix(buf.URI, "data:"):
		decoded, err := decodeDataURI(buf.URI)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		data = decoded
	default:
		if s.fsys == nil {
			return nil, fmt.Errorf("%w (buffer %d, uri %q)", ErrNoExternalFS, i, buf.URI)
		}
		path, err := url.PathUnescape(buf.URI)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: unescaping uri %q: %w", i, buf.URI, err)
		}
		read, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: reading %q: %w", i, path, err)
		}
		data = read
	}

	if len(data) < buf.ByteLength {
		return nil, fmt.Errorf("%w: buffer %d has %d of %d bytes",
			ErrShortBuffer, i, len(data), buf.ByteLength)
	}
	return data, nil
}

// viewBytes returns the bytes of buffer view viewIdx starting at offset
// bytes into the view, together with the view's declared stride.
func (s *Source) viewBytes(viewIdx, offset int) ([]byte, int, error) {
	if viewIdx < 0 || viewIdx >= len(s.doc.BufferViews) {
		return nil, 0, fmt.Errorf("%w: %d", ErrViewIndex, viewIdx)
	}
	view := s.doc.BufferViews[viewIdx]

	// Malformed documents can carry negative offsets, lengths, or
	// strides; all would turn the slice bounds below negative.
	if view.ByteOffset < 0 || view.ByteLength < 0 || offset < 0 {
		return nil, 0, fmt.Errorf("%w: view %d has a negative offset or length",
			ErrViewBounds, viewIdx)
	}
	if view.ByteStride < 0 {
		return nil, 0, fmt.Errorf("%w: view %d declares %d",
			ErrNegativeStride, viewIdx, view.ByteStride)
	}

	buf, err := s.Buffer(view.Buffer)
	if err != nil {
		return nil, 0, err
	}
	start := view.ByteOffset
	end := start + view.ByteLength
	if end > len(buf) {
		return nil, 0, fmt.Errorf("%w: view %d spans [%d, %d) of %d bytes",
			ErrViewBounds, viewIdx, start, end, len(buf))
	}
	if offset > view.ByteLength {
		return nil, 0, fmt.Errorf("%w: offset %d into view %d of %d bytes",
			ErrViewBounds, offset, viewIdx, view.ByteLength)
	}
	return buf[start+offset : end], view.ByteStride, nil
}

// AccessorData binds accessor i to its resolved buffer bytes and
// returns it as a uniform dense-or-sparse data stream.
func (s *Source) AccessorData(i int) (accessor.Data, error) {
	if i < 0 || i >= len(s.doc.Accessors) {
		return accessor.Data{}, fmt.Errorf("%w: %d", ErrAccessorIndex, i)
	}
	acc := &s.doc.Accessors[i]

	shape, err := acc.Shape()
	if err != nil {
		return accessor.Data{}, fmt.Errorf("accessor %d: %w", i, err)
	}
	if acc.Count < 0 {
		return accessor.Data{}, fmt.Errorf("accessor %d: %w: %d", i, ErrNegativeCount, acc.Count)
	}
	if acc.Sparse != nil && acc.Sparse.Count < 0 {
		return accessor.Data{}, fmt.Errorf("accessor %d: sparse: %w: %d",
			i, ErrNegativeCount, acc.Sparse.Count)
	}

	if acc.Sparse != nil {
		sp, err := s.sparseData(acc, shape)
		if err != nil {
			return accessor.Data{}, fmt.Errorf("accessor %d: %w", i, err)
		}
		return accessor.FromSparse(sp), nil
	}

	if acc.BufferView == nil {
		// No view and no sparse overlay: every element reads as zero.
		// Modeled as a sparse overlay with no base and no overrides.
		sp, err := s.zeroData(acc, shape)
		if err != nil {
			return accessor.Data{}, fmt.Errorf("accessor %d: %w", i, err)
		}
		return accessor.FromSparse(sp), nil
	}

	dense, err := s.denseData(acc, shape)
	if err != nil {
		return accessor.Data{}, fmt.Errorf("accessor %d: %w", i, err)
	}
	return accessor.FromDense(dense), nil
}

// denseData builds the base dense view for an accessor with a buffer
// view.
func (s *Source) denseData(acc *Accessor, shape accessor.ElementShape) (accessor.Dense, error) {
	view, stride, err := s.viewBytes(*acc.BufferView, acc.ByteOffset)
	if err != nil {
		return accessor.Dense{}, err
	}
	meta := accessor.NewMeta(shape, acc.Count, stride, acc.Normalized)
	return accessor.NewDense(meta, view), nil
}

// sparseData assembles the sparse overlay: optional base view, index
// sub-array, and values sub-array.
func (s *Source) sparseData(acc *Accessor, shape accessor.ElementShape) (accessor.Sparse, error) {
	sp := acc.Sparse

	var base *accessor.Dense
	if acc.BufferView != nil {
		d, err := s.denseData(acc, shape)
		if err != nil {
			return accessor.Sparse{}, err
		}
		base = &d
	}

	idxType, err := componentType(sp.Indices.ComponentType)
	if err != nil {
		return accessor.Sparse{}, fmt.Errorf("sparse indices: %w", err)
	}
	idxView, idxStride, err := s.viewBytes(sp.Indices.BufferView, sp.Indices.ByteOffset)
	if err != nil {
		return accessor.Sparse{}, fmt.Errorf("sparse indices: %w", err)
	}
	idxMeta := accessor.NewSparseIndexMeta(idxType, sp.Count, idxStride)
	indices, err := accessor.NewIndexData(accessor.NewDense(idxMeta, idxView))
	if err != nil {
		return accessor.Sparse{}, fmt.Errorf("sparse indices: %w", err)
	}

	valView, valStride, err := s.viewBytes(sp.Values.BufferView, sp.Values.ByteOffset)
	if err != nil {
		return accessor.Sparse{}, fmt.Errorf("sparse values: %w", err)
	}
	valMeta := accessor.NewSparseValuesMeta(shape, sp.Count, valStride, acc.Normalized)
	values := accessor.NewDense(valMeta, valView)

	meta := accessor.NewMeta(shape, acc.Count, 0, acc.Normalized)
	return accessor.NewSparse(meta, base, indices, values), nil
}

// zeroData represents a view-less, sparse-less accessor: an overlay
// with no base, no overrides, and the accessor's element count.
func (s *Source) zeroData(acc *Accessor, shape accessor.ElementShape) (accessor.Sparse, error) {
	indices, err := accessor.NewIndexData(
		accessor.NewDense(accessor.NewSparseIndexMeta(accessor.U8, 0, 0), nil))
	if err != nil {
		return accessor.Sparse{}, err
	}
	values := accessor.NewDense(accessor.NewSparseValuesMeta(shape, 0, 0, acc.Normalized), nil)
	meta := accessor.NewMeta(shape, acc.Count, 0, acc.Normalized)
	return accessor.NewSparse(meta, nil, indices, values), nil
}

// DataAs binds accessor i and converts it to the requested output type
// in one step. A *accessor.TypeMismatchError means the accessor's
// declared shape cannot produce T; callers reading optional attributes
// treat that as "attribute absent".
func DataAs[T any](s *Source, i int, conv accessor.Converter[T]) (accessor.TypedData[T], error) {
	data, err := s.AccessorData(i)
	if err != nil {
		return accessor.TypedData[T]{}, err
	}
	return accessor.As(data, conv)
}
