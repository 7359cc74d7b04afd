// Package zalgebra is a linear algebra kernel for real-time graphics:
// 2, 3 and 4 component vectors and a column-major 4x4 matrix, generic
// over the two IEEE-754 floating point widths.
package zalgebra

import "golang.org/x/exp/constraints"

// Float is the scalar constraint for every type in this package.
// Only 32 and 64 bit floating point element types are accepted;
// anything else is rejected at compile time.
type Float = constraints.Float

// Vec2 represents a 2D vector.
type Vec2[T Float] struct {
	X, Y T
}

// Vec3 represents a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 represents a 4D vector. In this package it is primarily the
// operand and result of Mat4 multiplication, with W carrying the
// homogeneous coordinate.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// Mat4 is a 4x4 matrix stored flat in column-major order: element
// (col, row) lives at Data[col*4+row], so each column's four scalars
// are contiguous. Every formula in this package assumes that layout,
// and Data can be handed to a graphics API expecting column-major
// contiguous floats as-is.
//
// Memory layout (indices):
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
type Mat4[T Float] struct {
	Data [16]T
}

// Transform represents the placement of an object in the world:
// a position, an axis-angle rotation and a scale, with a cached local
// matrix and an optional parent whose transform is taken into account.
// The fields should not be edited directly; use the Transform methods
// so the cached matrix is regenerated when needed.
type Transform[T Float] struct {
	// Position in the world.
	Position Vec3[T]
	// RotationAngle is the rotation around RotationAxis, in degrees.
	RotationAngle T
	// RotationAxis is the rotation axis. It does not need to be
	// pre-normalized but must have non-zero length.
	RotationAxis Vec3[T]
	// Scale per axis.
	Scale Vec3[T]
	// IsDirty indicates the cached local matrix is stale.
	IsDirty bool
	// Local is the cached local transformation matrix.
	Local Mat4[T]
	// Parent is an optional parent transform. Can be nil.
	Parent *Transform[T]
}
