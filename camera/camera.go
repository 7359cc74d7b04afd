// Package camera provides a view-matrix camera built on the zalgebra
// math kernel. Cameras are typically created once and steered through
// the setter and Move* methods so the view matrix is recalculated only
// when needed.
package camera

import (
	"github.com/doytsujin/zalgebra"
)

/**
 * @brief Represents a camera that can be used for a variety of things,
 * especially rendering.
 */
type Camera[T zalgebra.Float] struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position zalgebra.Vec3[T]
	/**
	 * @brief The rotation of this camera using Euler angles
	 * (pitch, yaw, roll), in degrees.
	 * NOTE: Do not set this directly, use SetEulerRotation() instead
	 * so the view matrix is recalculated when needed.
	 */
	EulerRotation zalgebra.Vec3[T]
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix zalgebra.Mat4[T]
}

// DefaultCameraName is the name of the default camera.
const DefaultCameraName string = "default"

func New[T zalgebra.Float]() *Camera[T] {
	camera := &Camera[T]{}
	camera.Reset()
	return camera
}

func (c *Camera[T]) Reset() {
	c.EulerRotation = zalgebra.NewVec3Zero[T]()
	c.Position = zalgebra.NewVec3Zero[T]()
	c.IsDirty = false
	c.ViewMatrix = zalgebra.NewMat4Identity[T]()
}

func (c *Camera[T]) GetPosition() zalgebra.Vec3[T] {
	return c.Position
}

func (c *Camera[T]) SetPosition(position zalgebra.Vec3[T]) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera[T]) GetEulerRotation() zalgebra.Vec3[T] {
	return c.EulerRotation
}

func (c *Camera[T]) SetEulerRotation(rotation zalgebra.Vec3[T]) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

// GetView returns the view matrix, rebuilding it from the camera's
// position and Euler rotation when stale. The view is the inverse of
// the camera's world transform.
func (c *Camera[T]) GetView() zalgebra.Mat4[T] {
	if c.IsDirty {
		rx := zalgebra.NewMat4Rotation(c.EulerRotation.X, zalgebra.NewVec3Right[T]())
		ry := zalgebra.NewMat4Rotation(c.EulerRotation.Y, zalgebra.NewVec3Up[T]())
		rz := zalgebra.NewMat4Rotation(c.EulerRotation.Z, zalgebra.NewVec3Back[T]())
		rotation := rx.Mul(ry).Mul(rz)
		translation := zalgebra.NewMat4Translation(c.Position)

		c.ViewMatrix = rotation.Mul(translation)
		c.ViewMatrix = c.ViewMatrix.Inverse()

		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera[T]) Forward() zalgebra.Vec3[T] {
	view := c.GetView()
	return view.Forward()
}

func (c *Camera[T]) Backward() zalgebra.Vec3[T] {
	view := c.GetView()
	return view.Backward()
}

func (c *Camera[T]) Left() zalgebra.Vec3[T] {
	view := c.GetView()
	return view.Left()
}

func (c *Camera[T]) Right() zalgebra.Vec3[T] {
	view := c.GetView()
	return view.Right()
}

func (c *Camera[T]) MoveForward(amount T) {
	direction := c.Forward()
	direction = direction.MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.IsDirty = true
}

func (c *Camera[T]) MoveBackward(amount T) {
	direction := c.Backward()
	direction = direction.MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.IsDirty = true
}

func (c *Camera[T]) MoveLeft(amount T) {
	direction := c.Left()
	direction = direction.MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.IsDirty = true
}

func (c *Camera[T]) MoveRight(amount T) {
	direction := c.Right()
	direction = direction.MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.IsDirty = true
}

func (c *Camera[T]) MoveUp(amount T) {
	direction := zalgebra.NewVec3Up[T]()
	direction = direction.MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.IsDirty = true
}

func (c *Camera[T]) MoveDown(amount T) {
	direction := zalgebra.NewVec3Down[T]()
	direction = direction.MulScalar(amount)
	c.Position = c.Position.Add(direction)
	c.IsDirty = true
}

func (c *Camera[T]) Yaw(amount T) {
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

func (c *Camera[T]) Pitch(amount T) {
	c.EulerRotation.X += amount

	// Clamp to avoid Gimbal lock.
	limit := T(89.0)
	c.EulerRotation.X = zalgebra.Clamp(c.EulerRotation.X, -limit, limit)

	c.IsDirty = true
}
