package scene

import (
	"fmt"

	"github.com/euclase/hyperray/types"
)

// Directions that can be passed to Camera.Move. Movement happens along
// the camera basis, not the world axes.
type CameraDirection uint8

const (
	Forward CameraDirection = iota
	Backward
	Left
	Right
	Up
	Down
	Ana
	Kata
)

// The camera type positions and orients the viewer in 4D space.
//
// Orientation is stored as four plane angles. Pitch and Yaw are the
// familiar 3D rotations (ZY and ZX planes); HyperPitch and HyperYaw
// rotate in the ZW and XW planes, which have no 3D analog and expose the
// fourth axis. Update derives the orthonormal Forward/Right/Up basis
// from these angles.
type Camera struct {
	Position types.Vec4

	Pitch      float32
	Yaw        float32
	HyperPitch float32
	HyperYaw   float32

	// Derived basis vectors, orthonormal after Update. Over is the
	// rotated +W axis; rays never use it but Move does for travel along
	// the fourth axis.
	Forward types.Vec4
	Right   types.Vec4
	Up      types.Vec4
	Over    types.Vec4

	// Vertical field of view in radians.
	FOV float32

	// Valid hit distance range for primary and bounce rays. MinDistance
	// doubles as the bias offset applied to bounce ray origins.
	MinDistance float32
	MaxDistance float32

	// Path termination and per-pixel sampling controls.
	BounceCount uint32
	SampleCount uint32
}

// NewCamera returns a camera at the origin looking down +Z with the
// given field of view and sensible clip/sampling defaults.
func NewCamera(fov float32) *Camera {
	c := &Camera{
		FOV:         fov,
		MinDistance: 0.01,
		MaxDistance: 1000.0,
		BounceCount: 5,
		SampleCount: 1,
	}
	c.Update()
	return c
}

// Update recomputes the camera basis from the orientation angles. The
// composed rotation is applied to each world axis in the same order the
// angles are stacked: yaw, pitch, hyper-yaw, hyper-pitch.
func (c *Camera) Update() {
	rotors := [4]types.Rotor4{
		types.RotorFromAnglePlane(c.Yaw, types.PlaneZX),
		types.RotorFromAnglePlane(c.Pitch, types.PlaneZY),
		types.RotorFromAnglePlane(c.HyperYaw, types.PlaneXW),
		types.RotorFromAnglePlane(c.HyperPitch, types.PlaneZW),
	}

	rotate := func(v types.Vec4) types.Vec4 {
		for _, r := range rotors {
			v = r.RotateVec(v)
		}
		return v
	}

	c.Forward = rotate(types.XYZW(0, 0, 1, 0))
	c.Right = rotate(types.XYZW(1, 0, 0, 0))
	c.Up = rotate(types.XYZW(0, 1, 0, 0))
	c.Over = rotate(types.XYZW(0, 0, 0, 1))
}

// Move translates the camera along its basis vectors.
func (c *Camera) Move(dir CameraDirection, distance float32) {
	var step types.Vec4
	switch dir {
	case Forward:
		step = c.Forward.Mul(distance)
	case Backward:
		step = c.Forward.Mul(-distance)
	case Left:
		step = c.Right.Mul(-distance)
	case Right:
		step = c.Right.Mul(distance)
	case Up:
		step = c.Up.Mul(distance)
	case Down:
		step = c.Up.Mul(-distance)
	case Ana:
		step = c.Over.Mul(distance)
	case Kata:
		step = c.Over.Mul(-distance)
	}
	c.Position = c.Position.Add(step)
}

// Validate checks the camera invariants that the kernel assumes.
func (c *Camera) Validate() error {
	if c.MinDistance < 0 || c.MinDistance >= c.MaxDistance {
		return fmt.Errorf("camera: hit distance range [%g, %g] is invalid", c.MinDistance, c.MaxDistance)
	}
	if c.SampleCount < 1 {
		return fmt.Errorf("camera: sample count must be at least 1")
	}
	return nil
}
