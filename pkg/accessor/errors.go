package accessor

import "fmt"

// TypeMismatchError is returned when the requested output type's
// declared component type and dimensionality do not match the
// accessor's actual shape. It is the only error this package raises;
// out-of-range access is reported by absence, not by error.
type TypeMismatchError struct {
	// Requested is the Go name of the requested output type.
	Requested string
	// Type is the accessor's actual component type.
	Type ComponentType
	// Dims is the accessor's actual dimensionality.
	Dims Dimensions
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("accessor type mismatch: requested %s, accessor holds %s/%s",
		e.Requested, e.Dims, e.Type)
}
