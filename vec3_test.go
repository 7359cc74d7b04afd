package zalgebra

import (
	"math"
	"testing"
)

func TestVec3CrossSelfIsZero(t *testing.T) {
	vectors := []Vec3[float64]{
		NewVec3(1.5, 2.6, 3.7),
		NewVec3(-4.0, 0.0, 9.25),
		NewVec3Up[float64](),
		NewVec3Zero[float64](),
	}
	for _, v := range vectors {
		if got := v.Cross(v); !got.Eq(NewVec3Zero[float64]()) {
			t.Fatalf("cross(%v, %v) = %v, want zero", v, v, got)
		}
	}
}

func TestVec3CrossKnown(t *testing.T) {
	a := NewVec3(1.5, 2.6, 3.7)
	b := NewVec3(2.5, 3.45, 1.0)
	want := NewVec3(-10.165, 7.75, -1.325)

	if got := a.Cross(b); !got.Compare(want, 1e-5) {
		t.Fatalf("cross=%v, want %v", got, want)
	}
}

func TestVec3DotKnown(t *testing.T) {
	a := NewVec3(1.5, 2.6, 3.7)
	b := NewVec3(2.5, 3.45, 1.0)

	if got := a.Dot(b); math.Abs(got-16.42) > 1e-5 {
		t.Fatalf("dot=%v, want 16.42", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	b := NewVec3(4.0, -5.0, 6.0)

	if got := a.Add(b); !got.Eq(NewVec3(5.0, -3.0, 9.0)) {
		t.Fatalf("add=%v", got)
	}
	if got := a.Sub(b); !got.Eq(NewVec3(-3.0, 7.0, -3.0)) {
		t.Fatalf("sub=%v", got)
	}
	if got := a.MulScalar(2); !got.Eq(NewVec3(2.0, 4.0, 6.0)) {
		t.Fatalf("mulscalar=%v", got)
	}
}

func TestVec3Length(t *testing.T) {
	v := NewVec3(3.0, 4.0, 0.0)
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("length=%v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Fatalf("length squared=%v, want 25", got)
	}
}

func TestVec3Normalized(t *testing.T) {
	v := NewVec3(2.0, -3.0, 6.0)
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("normalized length=%v, want 1", n.Length())
	}
}

func TestVec3NormalizedZeroIsNonFinite(t *testing.T) {
	// Normalizing a zero-length vector divides by zero; the contract is
	// silent NaN propagation, not an error.
	n := NewVec3Zero[float64]().Normalized()
	if !math.IsNaN(n.X) || !math.IsNaN(n.Y) || !math.IsNaN(n.Z) {
		t.Fatalf("zero normalize = %v, want NaN components", n)
	}
}

func TestVec3EqIsExact(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	if !a.Eq(NewVec3(1.0, 2.0, 3.0)) {
		t.Fatalf("identical vectors not equal")
	}
	if a.Eq(NewVec3(1.0, 2.0, 3.0000001)) {
		t.Fatalf("Eq must not tolerate differences")
	}
	if !a.Compare(NewVec3(1.0, 2.0, 3.0000001), 1e-5) {
		t.Fatalf("Compare should tolerate small differences")
	}
}

func TestVec3Distance(t *testing.T) {
	a := NewVec3(1.0, 1.0, 1.0)
	b := NewVec3(4.0, 5.0, 1.0)
	if got := a.Distance(b); math.Abs(got-5) > 1e-12 {
		t.Fatalf("distance=%v, want 5", got)
	}
}

func TestVec3Float32(t *testing.T) {
	a := NewVec3[float32](1.5, 2.6, 3.7)
	b := NewVec3[float32](2.5, 3.45, 1.0)
	if got := a.Dot(b); math.Abs(float64(got)-16.42) > 1e-5 {
		t.Fatalf("float32 dot=%v, want 16.42", got)
	}
	if got := a.Cross(b); !got.Compare(NewVec3[float32](-10.165, 7.75, -1.325), 1e-5) {
		t.Fatalf("float32 cross=%v", got)
	}
}
