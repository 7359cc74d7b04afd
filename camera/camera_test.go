package camera

import (
	"testing"

	"github.com/doytsujin/zalgebra"
)

func TestCameraViewMatchesLookAt(t *testing.T) {
	c := New[float64]()
	c.SetPosition(zalgebra.NewVec3(0.0, 0.0, 5.0))

	want := zalgebra.NewMat4LookAt(
		zalgebra.NewVec3(0.0, 0.0, 5.0),
		zalgebra.NewVec3Zero[float64](),
		zalgebra.NewVec3Up[float64]())

	if got := c.GetView(); !got.Compare(want, 1e-12) {
		t.Fatalf("view:\n%v\nwant:\n%v", got, want)
	}
}

func TestCameraViewCaching(t *testing.T) {
	c := New[float64]()
	c.SetPosition(zalgebra.NewVec3(1.0, 2.0, 3.0))

	if !c.IsDirty {
		t.Fatalf("camera not dirty after SetPosition")
	}
	first := c.GetView()
	if c.IsDirty {
		t.Fatalf("camera still dirty after GetView")
	}
	if again := c.GetView(); !again.Eq(first) {
		t.Fatalf("cached view changed without mutation")
	}
}

func TestCameraMoveForward(t *testing.T) {
	c := New[float64]()
	c.MoveForward(2)

	// An unrotated camera looks down -Z.
	want := zalgebra.NewVec3(0.0, 0.0, -2.0)
	if got := c.GetPosition(); !got.Compare(want, 1e-12) {
		t.Fatalf("position=%v, want %v", got, want)
	}
}

func TestCameraYawTurnsForward(t *testing.T) {
	c := New[float64]()
	c.Yaw(90)

	want := zalgebra.NewVec3(-1.0, 0.0, 0.0)
	if got := c.Forward(); !got.Compare(want, 1e-5) {
		t.Fatalf("forward=%v, want %v", got, want)
	}
}

func TestCameraPitchClamped(t *testing.T) {
	c := New[float64]()
	c.Pitch(200)
	if got := c.GetEulerRotation().X; got != 89 {
		t.Fatalf("pitch=%v, want clamped 89", got)
	}
	c.Pitch(-500)
	if got := c.GetEulerRotation().X; got != -89 {
		t.Fatalf("pitch=%v, want clamped -89", got)
	}
}

func TestCameraReset(t *testing.T) {
	c := New[float64]()
	c.SetPosition(zalgebra.NewVec3(5.0, 5.0, 5.0))
	c.Yaw(45)
	c.Reset()

	if !c.GetPosition().Eq(zalgebra.NewVec3Zero[float64]()) {
		t.Fatalf("position not reset: %v", c.GetPosition())
	}
	if !c.GetView().Eq(zalgebra.NewMat4Identity[float64]()) {
		t.Fatalf("view not reset:\n%v", c.GetView())
	}
}
