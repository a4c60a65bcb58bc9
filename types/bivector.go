package types

import "math"

// A BiVector4 spans an oriented plane in 4D space. Its six components
// correspond to the six basis planes.
type BiVector4 struct {
	XY, XZ, XW, YZ, YW, ZW float32
}

// The basis planes that can be passed to RotorFromAnglePlane. The camera
// rotates in ZX (yaw), ZY (pitch), XW and ZW (the two rotations that have
// no 3D analog).
var (
	PlaneXY = BiVector4{XY: 1}
	PlaneXZ = BiVector4{XZ: 1}
	PlaneXW = BiVector4{XW: 1}
	PlaneYZ = BiVector4{YZ: 1}
	PlaneYW = BiVector4{YW: 1}
	PlaneZW = BiVector4{ZW: 1}
	PlaneZX = BiVector4{XZ: -1}
	PlaneZY = BiVector4{YZ: -1}
)

// Wedge calculates the exterior product of two 4D vectors, producing the
// bivector for the plane they span.
func Wedge(a, b Vec4) BiVector4 {
	return BiVector4{
		XY: a[0]*b[1] - b[0]*a[1],
		XZ: a[0]*b[2] - b[0]*a[2],
		XW: a[0]*b[3] - b[0]*a[3],
		YZ: a[1]*b[2] - b[1]*a[2],
		YW: a[1]*b[3] - b[1]*a[3],
		ZW: a[2]*b[3] - b[2]*a[3],
	}
}

// Multiply bivector with a scalar.
func (b BiVector4) Mul(s float32) BiVector4 {
	return BiVector4{b.XY * s, b.XZ * s, b.XW * s, b.YZ * s, b.YW * s, b.ZW * s}
}

// Negate a bivector, flipping the plane orientation.
func (b BiVector4) Neg() BiVector4 {
	return b.Mul(-1)
}

// Get bivector length.
func (b BiVector4) Len() float32 {
	sq := b.XY*b.XY + b.XZ*b.XZ + b.XW*b.XW + b.YZ*b.YZ + b.YW*b.YW + b.ZW*b.ZW
	return float32(math.Sqrt(float64(sq)))
}
