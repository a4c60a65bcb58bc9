package scene

import (
	"math"
	"testing"

	"github.com/euclase/hyperray/types"
)

func vec4Near(a, b types.Vec4, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func TestCameraDefaultBasis(t *testing.T) {
	c := NewCamera(math.Pi / 2)

	if !vec4Near(c.Forward, types.XYZW(0, 0, 1, 0), 1e-6) {
		t.Fatalf("expected default forward to be +z; got %v", c.Forward)
	}
	if !vec4Near(c.Right, types.XYZW(1, 0, 0, 0), 1e-6) {
		t.Fatalf("expected default right to be +x; got %v", c.Right)
	}
	if !vec4Near(c.Up, types.XYZW(0, 1, 0, 0), 1e-6) {
		t.Fatalf("expected default up to be +y; got %v", c.Up)
	}
	if !vec4Near(c.Over, types.XYZW(0, 0, 0, 1), 1e-6) {
		t.Fatalf("expected default over to be +w; got %v", c.Over)
	}
}

func TestCameraYaw(t *testing.T) {
	c := NewCamera(math.Pi / 2)
	c.Yaw = math.Pi / 2
	c.Update()

	// A quarter yaw turns the view from +z to +x.
	if !vec4Near(c.Forward, types.XYZW(1, 0, 0, 0), 1e-6) {
		t.Fatalf("expected forward to be +x; got %v", c.Forward)
	}
	if !vec4Near(c.Right, types.XYZW(0, 0, -1, 0), 1e-6) {
		t.Fatalf("expected right to be -z; got %v", c.Right)
	}
	if !vec4Near(c.Up, types.XYZW(0, 1, 0, 0), 1e-6) {
		t.Fatalf("expected up to be unchanged; got %v", c.Up)
	}
}

func TestCameraHyperPitch(t *testing.T) {
	c := NewCamera(math.Pi / 2)
	c.HyperPitch = math.Pi / 2
	c.Update()

	// A quarter turn in the zw plane points the view along the fourth
	// axis while right and up stay put.
	if !vec4Near(c.Forward, types.XYZW(0, 0, 0, 1), 1e-6) {
		t.Fatalf("expected forward to be +w; got %v", c.Forward)
	}
	if !vec4Near(c.Right, types.XYZW(1, 0, 0, 0), 1e-6) {
		t.Fatalf("expected right to be unchanged; got %v", c.Right)
	}
	if !vec4Near(c.Up, types.XYZW(0, 1, 0, 0), 1e-6) {
		t.Fatalf("expected up to be unchanged; got %v", c.Up)
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	c := NewCamera(math.Pi / 2)
	c.Yaw = 0.4
	c.Pitch = -0.8
	c.HyperYaw = 1.1
	c.HyperPitch = -0.3
	c.Update()

	basis := []types.Vec4{c.Forward, c.Right, c.Up, c.Over}
	for i, v := range basis {
		if l := v.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("expected basis vector %d to be unit length; got %f", i, l)
		}
		for j := i + 1; j < len(basis); j++ {
			if dot := v.Dot(basis[j]); math.Abs(float64(dot)) > 1e-5 {
				t.Errorf("expected basis vectors %d and %d to be orthogonal; got dot %f", i, j, dot)
			}
		}
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(math.Pi / 2)
	c.Yaw = math.Pi / 2
	c.Update()

	c.Move(Forward, 2)
	if !vec4Near(c.Position, types.XYZW(2, 0, 0, 0), 1e-6) {
		t.Fatalf("expected position to be (2, 0, 0, 0); got %v", c.Position)
	}

	c.Move(Ana, 1.5)
	if !vec4Near(c.Position, types.XYZW(2, 0, 0, 1.5), 1e-6) {
		t.Fatalf("expected position to be (2, 0, 0, 1.5); got %v", c.Position)
	}

	c.Move(Down, 1)
	if !vec4Near(c.Position, types.XYZW(2, -1, 0, 1.5), 1e-6) {
		t.Fatalf("expected position to be (2, -1, 0, 1.5); got %v", c.Position)
	}
}

func TestCameraValidate(t *testing.T) {
	c := NewCamera(math.Pi / 2)
	if err := c.Validate(); err != nil {
		t.Fatalf("expected default camera to validate; got %v", err)
	}

	c.MinDistance = 10
	c.MaxDistance = 1
	if err := c.Validate(); err == nil {
		t.Fatal("expected an inverted hit distance range to be rejected")
	}

	c = NewCamera(math.Pi / 2)
	c.SampleCount = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected a zero sample count to be rejected")
	}
}
