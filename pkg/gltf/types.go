// Package gltf parses glTF 2.0 documents and binds their accessors to
// typed element streams from pkg/accessor.
//
// Only the parts of the document needed to resolve accessor data are
// modeled: asset metadata, buffers, buffer views, and accessors with
// their sparse overlays. Mesh, material, and scene assembly is left to
// consumers of the element streams.
package gltf

import (
	"encoding/json"
	"fmt"

	"github.com/Faultbox/gltfstream/pkg/accessor"
)

// glTF componentType codes.
const (
	ComponentByte          = 5120
	ComponentUnsignedByte  = 5121
	ComponentShort         = 5122
	ComponentUnsignedShort = 5123
	ComponentUnsignedInt   = 5125
	ComponentFloat         = 5126
)

// Document is the root of a glTF JSON document, restricted to the
// buffer and accessor sections.
type Document struct {
	Asset       Asset        `json:"asset"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Accessors   []Accessor   `json:"accessors,omitempty"`

	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
	Extras     json.RawMessage            `json:"extras,omitempty"`
}

// Asset holds glTF asset metadata. Version is required and must start
// with "2.".
type Asset struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
}

// Buffer is a raw binary data container. A buffer without a URI refers
// to the GLB binary chunk.
type Buffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
	Name       string `json:"name,omitempty"`
}

// BufferView is a contiguous byte range within a buffer, optionally
// strided for interleaved attributes.
type BufferView struct {
	Buffer     int    `json:"buffer"`
	ByteOffset int    `json:"byteOffset,omitempty"`
	ByteLength int    `json:"byteLength"`
	ByteStride int    `json:"byteStride,omitempty"`
	Target     int    `json:"target,omitempty"`
	Name       string `json:"name,omitempty"`
}

// Accessor describes how to interpret a region of buffer data as an
// array of typed elements.
type Accessor struct {
	// BufferView is nil for sparse accessors without a base view.
	BufferView    *int            `json:"bufferView,omitempty"`
	ByteOffset    int             `json:"byteOffset,omitempty"`
	ComponentType int             `json:"componentType"`
	Normalized    bool            `json:"normalized,omitempty"`
	Count         int             `json:"count"`
	Type          string          `json:"type"`
	Max           []float64       `json:"max,omitempty"`
	Min           []float64       `json:"min,omitempty"`
	Sparse        *Sparse         `json:"sparse,omitempty"`
	Name          string          `json:"name,omitempty"`
	Extras        json.RawMessage `json:"extras,omitempty"`
}

// Sparse is the sparse overlay section of an accessor.
type Sparse struct {
	Count   int           `json:"count"`
	Indices SparseIndices `json:"indices"`
	Values  SparseValues  `json:"values"`
}

// SparseIndices locates the replaced-index array of a sparse accessor.
type SparseIndices struct {
	BufferView    int `json:"bufferView"`
	ByteOffset    int `json:"byteOffset,omitempty"`
	ComponentType int `json:"componentType"`
}

// SparseValues locates the replacement-value array of a sparse
// accessor.
type SparseValues struct {
	BufferView int `json:"bufferView"`
	ByteOffset int `json:"byteOffset,omitempty"`
}

// componentType maps a glTF componentType code onto the accessor
// package's component tag.
func componentType(code int) (accessor.ComponentType, error) {
	switch code {
	case ComponentByte:
		return accessor.I8, nil
	case ComponentUnsignedByte:
		return accessor.U8, nil
	case ComponentShort:
		return accessor.I16, nil
	case ComponentUnsignedShort:
		return accessor.U16, nil
	case ComponentUnsignedInt:
		return accessor.U32, nil
	case ComponentFloat:
		return accessor.F32, nil
	default:
		return 0, fmt.Errorf("unknown componentType %d", code)
	}
}

// dimensions maps a glTF accessor type string onto the accessor
// package's dimensionality tag.
func dimensions(s string) (accessor.Dimensions, error) {
	switch s {
	case "SCALAR":
		return accessor.DimScalar, nil
	case "VEC2":
		return accessor.DimVec2, nil
	case "VEC3":
		return accessor.DimVec3, nil
	case "VEC4":
		return accessor.DimVec4, nil
	case "MAT2":
		return accessor.DimMat2, nil
	case "MAT3":
		return accessor.DimMat3, nil
	case "MAT4":
		return accessor.DimMat4, nil
	default:
		return 0, fmt.Errorf("unknown accessor type %q", s)
	}
}

// Shape returns the element shape declared by this accessor.
func (a *Accessor) Shape() (accessor.ElementShape, error) {
	t, err := componentType(a.ComponentType)
	if err != nil {
		return accessor.ElementShape{}, err
	}
	d, err := dimensions(a.Type)
	if err != nil {
		return accessor.ElementShape{}, err
	}
	return accessor.Shape(t, d), nil
}
