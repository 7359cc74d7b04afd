package zalgebra

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.
 */
func NewVec4Zero[T Float]() Vec4[T] {
	return Vec4[T]{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.
 */
func NewVec4One[T Float]() Vec4[T] {
	return Vec4[T]{1.0, 1.0, 1.0, 1.0}
}

// ToVec3 returns a new Vec3 containing the x, y and z components of v,
// essentially dropping the w component.
func (v Vec4[T]) ToVec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// Add returns the component-wise sum of v and other.
func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

// Sub returns the component-wise difference of v and other.
func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// MulScalar multiplies all elements of v by scalar and returns a copy
// of the result.
func (v Vec4[T]) MulScalar(scalar T) Vec4[T] {
	return Vec4[T]{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W * scalar,
	}
}

// Dot returns the dot product of v and other.
func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared length of the provided vector.
func (v Vec4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the Euclidean length of the provided vector.
func (v Vec4[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Normalized returns a unit-length copy of v. The caller must ensure v
// has non-zero length; a zero vector yields non-finite components.
func (v Vec4[T]) Normalized() Vec4[T] {
	length := v.Length()
	return Vec4[T]{
		v.X / length,
		v.Y / length,
		v.Z / length,
		v.W / length}
}

// Eq reports whether v and other are exactly equal in every component.
// No tolerance is applied; use Compare for approximate equality.
func (v Vec4[T]) Eq(other Vec4[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically FloatEpsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4[T]) Compare(other Vec4[T], tolerance T) bool {
	if abs(v.X-other.X) > tolerance {
		return false
	}

	if abs(v.Y-other.Y) > tolerance {
		return false
	}

	if abs(v.Z-other.Z) > tolerance {
		return false
	}

	if abs(v.W-other.W) > tolerance {
		return false
	}

	return true
}
