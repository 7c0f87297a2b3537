package accessor

import "testing"

func TestUnorm(t *testing.T) {
	if got := Unorm8(0); got != 0 {
		t.Errorf("Unorm8(0) = %v", got)
	}
	if got := Unorm8(255); got != 1 {
		t.Errorf("Unorm8(255) = %v", got)
	}
	if got := Unorm16(65535); got != 1 {
		t.Errorf("Unorm16(65535) = %v", got)
	}
}

func TestSnorm(t *testing.T) {
	if got := Snorm8(127); got != 1 {
		t.Errorf("Snorm8(127) = %v", got)
	}
	// -128 clamps to -1 rather than overshooting.
	if got := Snorm8(-128); got != -1 {
		t.Errorf("Snorm8(-128) = %v", got)
	}
	if got := Snorm16(-32768); got != -1 {
		t.Errorf("Snorm16(-32768) = %v", got)
	}
	if got := Snorm16(0); got != 0 {
		t.Errorf("Snorm16(0) = %v", got)
	}
}
