package types

import "math"

// A Rotor4 encodes a rotation in 4D space as a scalar plus a bivector
// part. Rotors generalize quaternions to four dimensions; rotating a
// vector is a sandwich product with the rotor and its reverse.
type Rotor4 struct {
	S float32
	B BiVector4
}

// The identity rotor leaves vectors unchanged.
var IdentityRotor = Rotor4{S: 1}

// RotorFromAnglePlane builds the rotor for a rotation by angle radians in
// the given basis plane. A rotation in plane AB moves axis A towards axis B.
func RotorFromAnglePlane(angle float32, plane BiVector4) Rotor4 {
	sin, cos := math.Sincos(float64(angle) * 0.5)
	return Rotor4{
		S: float32(cos),
		B: plane.Mul(float32(-sin)),
	}.Normalize()
}

// RotorBetween builds the rotor rotating the from vector onto the to
// vector. Both inputs are expected to be unit length.
func RotorBetween(from, to Vec4) Rotor4 {
	return Rotor4{
		S: 1 + to.Dot(from),
		B: Wedge(to, from),
	}.Normalize()
}

// Get rotor length.
func (r Rotor4) Len() float32 {
	bl := r.B.Len()
	return float32(math.Sqrt(float64(r.S*r.S + bl*bl)))
}

// Normalize the rotor to unit length.
func (r Rotor4) Normalize() Rotor4 {
	l := r.Len()
	if l < floatCmpEpsilon {
		return IdentityRotor
	}
	return Rotor4{S: r.S / l, B: r.B.Mul(1 / l)}
}

// Reverse returns the rotor for the opposite rotation.
func (r Rotor4) Reverse() Rotor4 {
	return Rotor4{S: r.S, B: r.B.Neg()}
}

// RotateVec applies the rotation to a 4D vector via the sandwich product
// R v R~. The intermediate terms carry the trivector components that
// appear mid-product and cancel in the final result.
func (r Rotor4) RotateVec(v Vec4) Vec4 {
	s, b := r.S, r.B

	x := s*v[0] + b.XY*v[1] + b.XZ*v[2] + b.XW*v[3]
	y := s*v[1] - b.XY*v[0] + b.YZ*v[2] + b.YW*v[3]
	z := s*v[2] - b.XZ*v[0] - b.YZ*v[1] + b.ZW*v[3]
	w := s*v[3] - b.XW*v[0] - b.YW*v[1] - b.ZW*v[2]

	xyz := b.XY*v[2] - b.XZ*v[1] + b.YZ*v[0]
	yzw := b.YZ*v[3] - b.YW*v[2] + b.ZW*v[1]
	zwx := b.XZ*v[3] - b.XW*v[2] + b.ZW*v[0]
	wxy := b.XY*v[3] - b.XW*v[1] + b.YW*v[0]

	p := r.Reverse().B
	return Vec4{
		x*s - y*p.XY - z*p.XZ - w*p.XW - xyz*p.YZ - wxy*p.YW - zwx*p.ZW,
		y*s + x*p.XY - z*p.YZ - w*p.YW + xyz*p.XZ + wxy*p.XW - yzw*p.ZW,
		z*s + x*p.XZ + y*p.YZ - w*p.ZW - xyz*p.XY + zwx*p.XW + yzw*p.YW,
		w*s + x*p.XW + y*p.YW + z*p.ZW - wxy*p.XY - zwx*p.XZ - yzw*p.YZ,
	}
}
