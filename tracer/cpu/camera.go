package cpu

import (
	"github.com/chewxy/math32"

	"github.com/euclase/hyperray/scene"
)

// cameraRay maps a pixel coordinate to a world-space primary ray. The
// pixel is normalized to [0,1], flipped vertically, rescaled to [-1,1],
// corrected for aspect ratio on the horizontal axis and scaled by
// tan(fov/2) before being projected through the camera basis.
func cameraRay(cam *scene.Camera, px, py, frameW, frameH uint32) ray {
	x := float32(px)/float32(frameW)*2 - 1
	y := (1-float32(py)/float32(frameH))*2 - 1

	scale := math32.Tan(cam.FOV * 0.5)
	x *= float32(frameW) / float32(frameH) * scale
	y *= scale

	return ray{
		origin:    cam.Position,
		direction: cam.Right.Mul(x).Add(cam.Up.Mul(y)).Add(cam.Forward).Normalize(),
	}
}
