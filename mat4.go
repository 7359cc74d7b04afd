package zalgebra

import (
	"fmt"
	"strings"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix.
 */
func NewMat4Identity[T Float]() Mat4[T] {
	out := Mat4[T]{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

/**
 * @brief Returns the result of multiplying m and other, in that order.
 *
 * Under column-major storage: out[col][row] = sum_k m[k][row] * other[col][k].
 * Every compound transform in this package (Translate, Rotate, Scale, MVP
 * composition) is built on this index mapping.
 */
func (m Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	out := Mat4[T]{}

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := T(0)
			for k := 0; k < 4; k++ {
				sum += m.Data[k*4+row] * other.Data[col*4+k]
			}
			out.Data[col*4+row] = sum
		}
	}

	return out
}

/**
 * @brief Multiplies m by the column vector v and returns the result.
 *
 * v's components map positionally to columns (x: col 0 .. w: col 3), so
 * out[row] = sum_col m[col][row] * v[col].
 */
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: m.Data[0]*v.X + m.Data[4]*v.Y + m.Data[8]*v.Z + m.Data[12]*v.W,
		Y: m.Data[1]*v.X + m.Data[5]*v.Y + m.Data[9]*v.Z + m.Data[13]*v.W,
		Z: m.Data[2]*v.X + m.Data[6]*v.Y + m.Data[10]*v.Z + m.Data[14]*v.W,
		W: m.Data[3]*v.X + m.Data[7]*v.Y + m.Data[11]*v.Z + m.Data[15]*v.W,
	}
}

// Eq reports whether m and other are exactly equal in all 16 elements,
// compared in column-major order. No tolerance is applied; use Compare
// for approximate equality.
func (m Mat4[T]) Eq(other Mat4[T]) bool {
	for i := 0; i < 16; i++ {
		if m.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}

/**
 * @brief Compares all elements of m and other and ensures the difference
 * is less than tolerance.
 */
func (m Mat4[T]) Compare(other Mat4[T], tolerance T) bool {
	for i := 0; i < 16; i++ {
		if abs(m.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation[T Float](position Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// Translate returns the translation by t pre-multiplied onto m, i.e.
// NewMat4Translation(t) * m. The translation is applied after m has
// already transformed the point.
func (m Mat4[T]) Translate(t Vec3[T]) Mat4[T] {
	return NewMat4Translation(t).Mul(m)
}

// GetTranslation extracts the translation column (column 3, rows 0-2)
// as a Vec3.
func (m Mat4[T]) GetTranslation() Vec3[T] {
	return Vec3[T]{m.Data[12], m.Data[13], m.Data[14]}
}

/**
 * @brief Creates a rotation matrix of angleDegrees around the given axis,
 * using Rodrigues' rotation formula.
 *
 * The axis is normalized internally and must have non-zero length.
 *
 * @param angleDegrees The rotation angle in degrees.
 * @param axis The rotation axis.
 * @return A rotation matrix.
 */
func NewMat4Rotation[T Float](angleDegrees T, axis Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()

	n := axis.Normalized()
	c := cos(ToRadians(angleDegrees))
	s := sin(ToRadians(angleDegrees))
	c1 := 1 - c

	out.Data[0] = n.X*n.X*c1 + c
	out.Data[1] = n.X*n.Y*c1 + n.Z*s
	out.Data[2] = n.X*n.Z*c1 - n.Y*s

	out.Data[4] = n.X*n.Y*c1 - n.Z*s
	out.Data[5] = n.Y*n.Y*c1 + c
	out.Data[6] = n.Y*n.Z*c1 + n.X*s

	out.Data[8] = n.X*n.Z*c1 + n.Y*s
	out.Data[9] = n.Y*n.Z*c1 - n.X*s
	out.Data[10] = n.Z*n.Z*c1 + c

	return out
}

// Rotate returns the rotation of angleDegrees around axis pre-multiplied
// onto m, i.e. NewMat4Rotation(angleDegrees, axis) * m.
func (m Mat4[T]) Rotate(angleDegrees T, axis Vec3[T]) Mat4[T] {
	return NewMat4Rotation(angleDegrees, axis).Mul(m)
}

/**
 * @brief Returns a scale matrix using the provided scale: the identity
 * with its diagonal replaced by (s.X, s.Y, s.Z, 1).
 *
 * @param s The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale[T Float](s Vec3[T]) Mat4[T] {
	out := NewMat4Identity[T]()
	out.Data[0] = s.X
	out.Data[5] = s.Y
	out.Data[10] = s.Z
	return out
}

// Scale returns the scale by s pre-multiplied onto m, i.e.
// NewMat4Scale(s) * m.
func (m Mat4[T]) Scale(s Vec3[T]) Mat4[T] {
	return NewMat4Scale(s).Mul(m)
}

/**
 * @brief Creates and returns a right-handed perspective projection matrix.
 * Typically used to render 3d scenes.
 *
 * The field of view is taken in degrees and converted to radians before
 * the half-angle tangent, matching NewMat4Rotation's handling of angles.
 *
 * @param fovyDegrees The vertical field of view in degrees.
 * @param aspect The aspect ratio.
 * @param zNear The near clipping plane distance.
 * @param zFar The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective[T Float](fovyDegrees, aspect, zNear, zFar T) Mat4[T] {
	f := 1.0 / tan(ToRadians(fovyDegrees)*0.5)
	out := Mat4[T]{}
	out.Data[0] = f / aspect
	out.Data[5] = f
	out.Data[10] = (zNear + zFar) / (zNear - zFar)
	out.Data[11] = -1.0
	out.Data[14] = 2.0 * zFar * zNear / (zNear - zFar)
	return out
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically
 * used to render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param zNear The near clipping plane distance.
 * @param zFar The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic[T Float](left, right, bottom, top, zNear, zFar T) Mat4[T] {
	out := Mat4[T]{}

	out.Data[0] = 2.0 / (right - left)
	out.Data[5] = 2.0 / (top - bottom)
	out.Data[10] = 2.0 / (zNear - zFar)
	out.Data[15] = 1.0

	out.Data[12] = (left + right) / (left - right)
	out.Data[13] = (bottom + top) / (bottom - top)
	out.Data[14] = (zFar + zNear) / (zNear - zFar)
	return out
}

/**
 * @brief Creates and returns a right-handed look-at (view) matrix, looking
 * at target from the perspective of eye. The camera's forward axis maps to
 * -Z in camera space.
 *
 * @param eye The position of the camera.
 * @param target The position to look at.
 * @param up The up vector.
 * @return A view matrix looking at target from eye.
 */
func NewMat4LookAt[T Float](eye, target, up Vec3[T]) Mat4[T] {
	f := target.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	out := Mat4[T]{}
	out.Data[0] = s.X
	out.Data[1] = u.X
	out.Data[2] = -f.X
	out.Data[4] = s.Y
	out.Data[5] = u.Y
	out.Data[6] = -f.Y
	out.Data[8] = s.Z
	out.Data[9] = u.Z
	out.Data[10] = -f.Z
	out.Data[12] = -s.Dot(eye)
	out.Data[13] = -u.Dot(eye)
	out.Data[14] = f.Dot(eye)
	out.Data[15] = 1.0

	return out
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows -> columns).
 */
func (m Mat4[T]) Transposed() Mat4[T] {
	out := Mat4[T]{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.Data[row*4+col] = m.Data[col*4+row]
		}
	}
	return out
}

/**
 * @brief Creates and returns an inverse of the provided matrix, via 2x2
 * minor (Laplace) expansion.
 *
 * If the matrix is singular the determinant is zero and the reciprocal
 * determinant becomes infinite: the result then contains non-finite
 * components. No singularity check is performed.
 */
func (m Mat4[T]) Inverse() Mat4[T] {
	d := m.Data

	s0 := d[0]*d[5] - d[4]*d[1]
	s1 := d[0]*d[6] - d[4]*d[2]
	s2 := d[0]*d[7] - d[4]*d[3]
	s3 := d[1]*d[6] - d[5]*d[2]
	s4 := d[1]*d[7] - d[5]*d[3]
	s5 := d[2]*d[7] - d[6]*d[3]

	c5 := d[10]*d[15] - d[14]*d[11]
	c4 := d[9]*d[15] - d[13]*d[11]
	c3 := d[9]*d[14] - d[13]*d[10]
	c2 := d[8]*d[15] - d[12]*d[11]
	c1 := d[8]*d[14] - d[12]*d[10]
	c0 := d[8]*d[13] - d[12]*d[9]

	idet := 1.0 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)

	out := Mat4[T]{}
	out.Data[0] = (d[5]*c5 - d[6]*c4 + d[7]*c3) * idet
	out.Data[1] = (-d[1]*c5 + d[2]*c4 - d[3]*c3) * idet
	out.Data[2] = (d[13]*s5 - d[14]*s4 + d[15]*s3) * idet
	out.Data[3] = (-d[9]*s5 + d[10]*s4 - d[11]*s3) * idet

	out.Data[4] = (-d[4]*c5 + d[6]*c2 - d[7]*c1) * idet
	out.Data[5] = (d[0]*c5 - d[2]*c2 + d[3]*c1) * idet
	out.Data[6] = (-d[12]*s5 + d[14]*s2 - d[15]*s1) * idet
	out.Data[7] = (d[8]*s5 - d[10]*s2 + d[11]*s1) * idet

	out.Data[8] = (d[4]*c4 - d[5]*c2 + d[7]*c0) * idet
	out.Data[9] = (-d[0]*c4 + d[1]*c2 - d[3]*c0) * idet
	out.Data[10] = (d[12]*s4 - d[13]*s2 + d[15]*s0) * idet
	out.Data[11] = (-d[8]*s4 + d[9]*s2 - d[11]*s0) * idet

	out.Data[12] = (-d[4]*c3 + d[5]*c1 - d[6]*c0) * idet
	out.Data[13] = (d[0]*c3 - d[1]*c1 + d[2]*c0) * idet
	out.Data[14] = (-d[12]*s3 + d[13]*s1 - d[14]*s0) * idet
	out.Data[15] = (d[8]*s3 - d[9]*s1 + d[10]*s0) * idet

	return out
}

// GetData returns a view of the 16 elements in contiguous column-major
// order, suitable for handing to a graphics API's uniform upload. The
// slice aliases the matrix storage; it is not a copy.
func (m *Mat4[T]) GetData() []T {
	return m.Data[:]
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 */
func (m Mat4[T]) Forward() Vec3[T] {
	forward := Vec3[T]{
		X: -m.Data[2],
		Y: -m.Data[6],
		Z: -m.Data[10],
	}
	return forward.Normalized()
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 */
func (m Mat4[T]) Backward() Vec3[T] {
	backward := Vec3[T]{
		X: m.Data[2],
		Y: m.Data[6],
		Z: m.Data[10],
	}
	return backward.Normalized()
}

/**
 * @brief Returns an upward vector relative to the provided matrix.
 */
func (m Mat4[T]) Up() Vec3[T] {
	up := Vec3[T]{
		X: m.Data[1],
		Y: m.Data[5],
		Z: m.Data[9],
	}
	return up.Normalized()
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 */
func (m Mat4[T]) Down() Vec3[T] {
	down := Vec3[T]{
		X: -m.Data[1],
		Y: -m.Data[5],
		Z: -m.Data[9],
	}
	return down.Normalized()
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 */
func (m Mat4[T]) Left() Vec3[T] {
	left := Vec3[T]{
		X: -m.Data[0],
		Y: -m.Data[4],
		Z: -m.Data[8],
	}
	return left.Normalized()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (m Mat4[T]) Right() Vec3[T] {
	right := Vec3[T]{
		X: m.Data[0],
		Y: m.Data[4],
		Z: m.Data[8],
	}
	return right.Normalized()
}

// String renders the matrix row by row for debugging. It does not
// modify the matrix.
func (m Mat4[T]) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&b, "(%v, %v, %v, %v)\n",
			m.Data[row], m.Data[4+row], m.Data[8+row], m.Data[12+row])
	}
	return b.String()
}
