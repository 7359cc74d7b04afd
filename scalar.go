package zalgebra

import (
	m "math"

	"golang.org/x/exp/constraints"
)

const (
	// Pi is an approximate representation of PI.
	Pi = 3.14159265358979323846
	// HalfPi is an approximate representation of PI divided by 2.
	HalfPi = 0.5 * Pi
	// Deg2RadMultiplier is a multiplier used to convert degrees to radians.
	Deg2RadMultiplier = Pi / 180.0
	// Rad2DegMultiplier is a multiplier used to convert radians to degrees.
	Rad2DegMultiplier = 180.0 / Pi
	// FloatEpsilon is the smallest positive float32 where 1.0 + FloatEpsilon != 1.0.
	FloatEpsilon = 1.192092896e-07
)

/**
 * Note that these are here in order to keep the generic element type
 * flowing through the package without sprinkling float64 conversions
 * over every formula.
 */
func sin[T Float](x T) T {
	return T(m.Sin(float64(x)))
}

func cos[T Float](x T) T {
	return T(m.Cos(float64(x)))
}

func tan[T Float](x T) T {
	return T(m.Tan(float64(x)))
}

func sqrt[T Float](x T) T {
	return T(m.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	return T(m.Abs(float64(x)))
}

// ToRadians converts the provided degrees to radians.
func ToRadians[T Float](degrees T) T {
	return degrees * Deg2RadMultiplier
}

// ToDegrees converts the provided radians to degrees.
func ToDegrees[T Float](radians T) T {
	return radians * Rad2DegMultiplier
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}
