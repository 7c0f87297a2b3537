package gltf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// GLB container errors.
var (
	ErrInvalidGLBMagic       = errors.New("invalid GLB magic: expected 'glTF'")
	ErrUnsupportedGLBVersion = errors.New("unsupported GLB version")
	ErrTruncatedGLBData      = errors.New("truncated GLB data")
	ErrMissingJSONChunk      = errors.New("GLB container has no JSON chunk")
)

// GLB chunk type codes.
const (
	glbMagic     = 0x46546C67 // "glTF"
	chunkJSON    = 0x4E4F534A // "JSON"
	chunkBIN     = 0x004E4942 // "BIN\0"
	glbHeaderLen = 12
	chunkHdrLen  = 8
)

// GLB is a parsed binary glTF container: the JSON chunk and the
// optional embedded binary buffer chunk.
type GLB struct {
	Version uint32
	JSON    []byte
	BIN     []byte
}

// ParseGLB splits a GLB container into its JSON and BIN chunks. The
// returned chunks alias the input bytes.
func ParseGLB(data []byte) (*GLB, error) {
	if len(data) < glbHeaderLen {
		return nil, ErrTruncatedGLBData
	}
	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return nil, ErrInvalidGLBMagic
	}

	version := binary.LittleEndian.Uint32(data[4:8])
	if version != 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedGLBVersion, version)
	}

	total := int(binary.LittleEndian.Uint32(data[8:12]))
	if total > len(data) {
		return nil, fmt.Errorf("%w: header declares %d bytes, have %d",
			ErrTruncatedGLBData, total, len(data))
	}

	out := &GLB{Version: version}
	offset := glbHeaderLen
	for offset < total {
		if total-offset < chunkHdrLen {
			return nil, fmt.Errorf("%w: chunk header at offset %d", ErrTruncatedGLBData, offset)
		}
		length := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		kind := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += chunkHdrLen

		if length > total-offset {
			return nil, fmt.Errorf("%w: chunk of %d bytes at offset %d", ErrTruncatedGLBData, length, offset)
		}

		switch kind {
		case chunkJSON:
			out.JSON = data[offset : offset+length]
		case chunkBIN:
			out.BIN = data[offset : offset+length]
		default:
			// Unknown chunks are skipped per the GLB spec.
		}

		// Chunks are 4-byte aligned.
		offset += (length + 3) &^ 3
	}

	if out.JSON == nil {
		return nil, ErrMissingJSONChunk
	}
	return out, nil
}

// IsGLB reports whether the data starts with the GLB container magic.
func IsGLB(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data[0:4]) == glbMagic
}
