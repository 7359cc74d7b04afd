package zalgebra

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(1.0, 2.0)
	b := NewVec2(3.0, -4.0)

	if got := a.Add(b); !got.Eq(NewVec2(4.0, -2.0)) {
		t.Fatalf("add=%v", got)
	}
	if got := a.Sub(b); !got.Eq(NewVec2(-2.0, 6.0)) {
		t.Fatalf("sub=%v", got)
	}
	if got := b.MulScalar(0.5); !got.Eq(NewVec2(1.5, -2.0)) {
		t.Fatalf("mulscalar=%v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Fatalf("dot=%v, want -5", got)
	}
}

func TestVec2LengthAndNormalize(t *testing.T) {
	v := NewVec2(3.0, 4.0)
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("length=%v, want 5", got)
	}
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("normalized length=%v", n.Length())
	}
	if got := v.Distance(NewVec2Zero[float64]()); math.Abs(got-5) > 1e-12 {
		t.Fatalf("distance=%v, want 5", got)
	}
}
