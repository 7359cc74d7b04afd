package zalgebra

import (
	"testing"
)

func TestTransformLocalCaching(t *testing.T) {
	tr := NewTransform[float64]()
	tr.SetPosition(NewVec3(2.0, 3.0, 4.0))

	if !tr.IsDirty {
		t.Fatalf("transform not marked dirty after SetPosition")
	}
	local := tr.GetLocal()
	if tr.IsDirty {
		t.Fatalf("transform still dirty after GetLocal")
	}
	if got := local.GetTranslation(); !got.Eq(NewVec3(2.0, 3.0, 4.0)) {
		t.Fatalf("local translation=%v, want (2,3,4)", got)
	}

	// The cached matrix must be reused until the next mutation.
	if again := tr.GetLocal(); !again.Eq(local) {
		t.Fatalf("cached local changed without mutation")
	}

	tr.Translate(NewVec3(1.0, 0.0, 0.0))
	if got := tr.GetLocal().GetTranslation(); !got.Eq(NewVec3(3.0, 3.0, 4.0)) {
		t.Fatalf("translation after Translate=%v, want (3,3,4)", got)
	}
}

func TestTransformScaleAffectsPosition(t *testing.T) {
	// Scale is pre-multiplied onto rotation*translation, so it also
	// scales the position, matching the local matrix build order.
	tr := NewTransform[float64]()
	tr.SetPositionRotationScale(NewVec3(1.0, 1.0, 1.0), 0, NewVec3Up[float64](), NewVec3(2.0, 2.0, 2.0))

	if got := tr.GetLocal().GetTranslation(); !got.Eq(NewVec3(2.0, 2.0, 2.0)) {
		t.Fatalf("translation=%v, want (2,2,2)", got)
	}
}

func TestTransformRotationAccumulates(t *testing.T) {
	tr := NewTransformFromRotation(30.0, NewVec3(0.0, 0.0, 1.0))
	tr.Rotate(60.0)

	want := NewMat4Rotation(90.0, NewVec3(0.0, 0.0, 1.0))
	if got := tr.GetLocal(); !got.Compare(want, 1e-12) {
		t.Fatalf("local after accumulation:\n%v\nwant:\n%v", got, want)
	}
}

func TestTransformWorldWithParent(t *testing.T) {
	parent := NewTransformFromPosition(NewVec3(0.0, 2.0, 0.0))
	child := NewTransformFromPosition(NewVec3(1.0, 0.0, 0.0))
	child.Parent = parent

	if got := child.GetWorld().GetTranslation(); !got.Eq(NewVec3(1.0, 2.0, 0.0)) {
		t.Fatalf("world translation=%v, want (1,2,0)", got)
	}

	// Without a parent the world matrix is the local matrix.
	if got := parent.GetWorld(); !got.Eq(parent.GetLocal()) {
		t.Fatalf("parent world != parent local")
	}
}
