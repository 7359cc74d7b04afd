package zalgebra

// NewTransform creates a transform at the origin with no rotation and
// unit scale.
func NewTransform[T Float]() *Transform[T] {
	t := &Transform[T]{}
	t.SetPositionRotationScale(NewVec3Zero[T](), 0, NewVec3Up[T](), NewVec3One[T]())
	t.Local = NewMat4Identity[T]()
	t.Parent = nil
	return t
}

// NewTransformFromPosition creates a transform at the given position
// with no rotation and unit scale.
func NewTransformFromPosition[T Float](position Vec3[T]) *Transform[T] {
	t := &Transform[T]{}
	t.SetPositionRotationScale(position, 0, NewVec3Up[T](), NewVec3One[T]())
	t.Local = NewMat4Identity[T]()
	t.Parent = nil
	return t
}

// NewTransformFromRotation creates a transform at the origin rotated by
// angleDegrees around axis, with unit scale.
func NewTransformFromRotation[T Float](angleDegrees T, axis Vec3[T]) *Transform[T] {
	t := &Transform[T]{}
	t.SetPositionRotationScale(NewVec3Zero[T](), angleDegrees, axis, NewVec3One[T]())
	t.Local = NewMat4Identity[T]()
	t.Parent = nil
	return t
}

func (t *Transform[T]) SetPosition(position Vec3[T]) {
	t.Position = position
	t.IsDirty = true
}

// Translate moves the transform by the given offset.
func (t *Transform[T]) Translate(translation Vec3[T]) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform[T]) SetRotation(angleDegrees T, axis Vec3[T]) {
	t.RotationAngle = angleDegrees
	t.RotationAxis = axis
	t.IsDirty = true
}

// Rotate adds angleDegrees to the rotation around the current axis.
func (t *Transform[T]) Rotate(angleDegrees T) {
	t.RotationAngle += angleDegrees
	t.IsDirty = true
}

func (t *Transform[T]) SetScale(scale Vec3[T]) {
	t.Scale = scale
	t.IsDirty = true
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform[T]) ScaleBy(scale Vec3[T]) {
	t.Scale = Vec3[T]{
		t.Scale.X * scale.X,
		t.Scale.Y * scale.Y,
		t.Scale.Z * scale.Z}
	t.IsDirty = true
}

func (t *Transform[T]) SetPositionRotationScale(position Vec3[T], angleDegrees T, axis Vec3[T], scale Vec3[T]) {
	t.Position = position
	t.RotationAngle = angleDegrees
	t.RotationAxis = axis
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal returns the local transformation matrix, regenerating it
// from position, rotation and scale when stale.
func (t *Transform[T]) GetLocal() Mat4[T] {
	if t != nil {
		if t.IsDirty {
			m := NewMat4Rotation(t.RotationAngle, t.RotationAxis)
			tr := m.Mul(NewMat4Translation(t.Position))
			tr = NewMat4Scale(t.Scale).Mul(tr)
			t.Local = tr
			t.IsDirty = false
		}
		return t.Local
	}
	return NewMat4Identity[T]()
}

// GetWorld returns the world matrix, taking the parent chain into
// account.
func (t *Transform[T]) GetWorld() Mat4[T] {
	if t != nil {
		l := t.GetLocal()
		if t.Parent != nil {
			p := t.Parent.GetWorld()
			return l.Mul(p)
		}
		return l
	}
	return NewMat4Identity[T]()
}
