package gltf

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrNotDataURI marks a URI that is not a data URI and should be
// resolved as an external file instead.
var ErrNotDataURI = errors.New("not a data URI")

// Accepted MIME types for embedded buffer data.
var bufferMIMETypes = map[string]bool{
	"application/octet-stream": true,
	"application/gltf-buffer":  true,
}

// decodeDataURI decodes a base64 data URI of a supported buffer MIME
// type into its raw bytes.
func decodeDataURI(uri string) ([]byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, ErrNotDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI: missing payload")
	}

	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, fmt.Errorf("unsupported data URI encoding in %q", meta)
	}
	if !bufferMIMETypes[mime] {
		return nil, fmt.Errorf("unsupported buffer MIME type %q", mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 buffer data: %w", err)
	}
	return data, nil
}
