package zalgebra

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.
 */
func NewVec2Zero[T Float]() Vec2[T] {
	return Vec2[T]{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.
 */
func NewVec2One[T Float]() Vec2[T] {
	return Vec2[T]{1.0, 1.0}
}

// Add returns the component-wise sum of v and other.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

// MulScalar multiplies all elements of v by scalar and returns a copy
// of the result.
func (v Vec2[T]) MulScalar(scalar T) Vec2[T] {
	return Vec2[T]{v.X * scalar, v.Y * scalar}
}

// Dot returns the dot product of v and other.
func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared length of the provided vector.
func (v Vec2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of the provided vector.
func (v Vec2[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Normalized returns a unit-length copy of v. The caller must ensure v
// has non-zero length; a zero vector yields non-finite components.
func (v Vec2[T]) Normalized() Vec2[T] {
	length := v.Length()
	return Vec2[T]{v.X / length, v.Y / length}
}

// Eq reports whether v and other are exactly equal in every component.
func (v Vec2[T]) Eq(other Vec2[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance. Typically FloatEpsilon or similar.
 */
func (v Vec2[T]) Compare(other Vec2[T], tolerance T) bool {
	if abs(v.X-other.X) > tolerance {
		return false
	}
	if abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// Distance returns the distance between v and other.
func (v Vec2[T]) Distance(other Vec2[T]) T {
	d := Vec2[T]{
		v.X - other.X,
		v.Y - other.Y}
	return d.Length()
}
