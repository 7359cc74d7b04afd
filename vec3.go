package zalgebra

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func NewVec3Zero[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.
 */
func NewVec3One[T Float]() Vec3[T] {
	return Vec3[T]{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down[T Float]() Vec3[T] {
	return Vec3[T]{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left[T Float]() Vec3[T] {
	return Vec3[T]{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right[T Float]() Vec3[T] {
	return Vec3[T]{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back[T Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, 1.0}
}

// ToVec4 returns a new Vec4 using v as the x, y and z components and w for w.
func (v Vec3[T]) ToVec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// Add returns the component-wise sum of v and other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

// Sub returns the component-wise difference of v and other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3[T]) MulScalar(scalar T) Vec3[T] {
	return Vec3[T]{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

// LengthSquared returns the squared length of the provided vector.
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length of the provided vector.
func (v Vec3[T]) Length() T {
	return sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit-length copy of the supplied vector.
 *
 * The caller must ensure the vector has non-zero length: normalizing a
 * zero-length vector divides by zero and yields non-finite components.
 * No guard is applied.
 */
func (v Vec3[T]) Normalized() Vec3[T] {
	length := v.Length()
	return Vec3[T]{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3[T]) Dot(other Vec3[T]) T {
	p := T(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the right-handed cross product of the supplied
 * vectors. The cross product is a new vector which is orthogonal to both
 * provided vectors.
 */
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// Eq reports whether v and other are exactly equal in every component.
// No tolerance is applied; use Compare for approximate equality.
func (v Vec3[T]) Eq(other Vec3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically FloatEpsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3[T]) Compare(other Vec3[T], tolerance T) bool {
	if abs(v.X-other.X) > tolerance {
		return false
	}

	if abs(v.Y-other.Y) > tolerance {
		return false
	}

	if abs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

// Distance returns the distance between v and other.
func (v Vec3[T]) Distance(other Vec3[T]) T {
	d := Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}
