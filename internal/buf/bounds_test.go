package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if v, ok := AddOverflowSafe(1, 2); !ok || v != 3 {
		t.Fatalf("AddOverflowSafe(1,2) = %d,%v", v, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow on MaxInt+1")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected overflow on MinInt-1")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if v, ok := MulOverflowSafe(65535, 65535); !ok || v != 65535*65535 {
		t.Fatalf("MulOverflowSafe(65535,65535) = %d,%v", v, ok)
	}
	if v, ok := MulOverflowSafe(0, math.MaxInt); !ok || v != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt) = %d,%v", v, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow on MaxInt*2")
	}
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	s, ok := Slice(b, 1, 2)
	if !ok || len(s) != 2 || s[0] != 2 {
		t.Fatalf("Slice(1,2) = %v,%v", s, ok)
	}
	if _, ok := Slice(b, 3, 2); ok {
		t.Fatalf("expected out of bounds")
	}
	if _, ok := Slice(b, 4, 0); !ok {
		t.Fatalf("Slice(4,0) should be in bounds")
	}
	if _, ok := Slice(b, -1, 1); ok {
		t.Fatalf("expected negative offset rejection")
	}
}
