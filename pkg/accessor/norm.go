package accessor

// Normalization helpers for accessors with the Normalized flag set.
// Integer components then encode fixed-point values: unsigned types map
// onto [0, 1] and signed types onto [-1, 1], per the glTF 2.0
// specification.

// Unorm8 maps a normalized uint8 component onto [0, 1].
func Unorm8(v uint8) float32 {
	return float32(v) / 255
}

// Unorm16 maps a normalized uint16 component onto [0, 1].
func Unorm16(v uint16) float32 {
	return float32(v) / 65535
}

// Snorm8 maps a normalized int8 component onto [-1, 1].
func Snorm8(v int8) float32 {
	return max(float32(v)/127, -1)
}

// Snorm16 maps a normalized int16 component onto [-1, 1].
func Snorm16(v int16) float32 {
	return max(float32(v)/32767, -1)
}
