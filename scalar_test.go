package zalgebra

import (
	"math"
	"testing"
)

func TestToRadians(t *testing.T) {
	cases := []struct {
		degrees, radians float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-45, -math.Pi / 4},
	}
	for _, c := range cases {
		if got := ToRadians(c.degrees); math.Abs(got-c.radians) > 1e-12 {
			t.Fatalf("ToRadians(%v)=%v, want %v", c.degrees, got, c.radians)
		}
		if got := ToDegrees(c.radians); math.Abs(got-c.degrees) > 1e-12 {
			t.Fatalf("ToDegrees(%v)=%v, want %v", c.radians, got, c.degrees)
		}
	}
}

func TestAngleRoundTrip(t *testing.T) {
	for _, deg := range []float32{1, 33.3, 89, 179.5, 270} {
		if got := ToDegrees(ToRadians(deg)); math.Abs(float64(got-deg)) > 1e-4 {
			t.Fatalf("round trip of %v gave %v", deg, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("clamp(5,0,10)=%v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("clamp(-1,0,10)=%v", got)
	}
	if got := Clamp(11.5, 0.0, 10.0); got != 10 {
		t.Fatalf("clamp(11.5,0,10)=%v", got)
	}
}
