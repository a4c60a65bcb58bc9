package types

import (
	"math"
	"testing"
)

func vec4Near(a, b Vec4, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func TestIdentityRotor(t *testing.T) {
	v := XYZW(1, 2, 3, 4)
	if got := IdentityRotor.RotateVec(v); !vec4Near(got, v, 1e-6) {
		t.Fatalf("expected identity rotation to leave %v unchanged; got %v", v, got)
	}
}

func TestRotorPlaneRotation(t *testing.T) {
	quarter := float32(math.Pi / 2)

	specs := []struct {
		plane  BiVector4
		in     Vec4
		expOut Vec4
	}{
		// A rotation in plane AB moves axis A towards axis B.
		{PlaneXY, XYZW(1, 0, 0, 0), XYZW(0, 1, 0, 0)},
		{PlaneZX, XYZW(0, 0, 1, 0), XYZW(1, 0, 0, 0)},
		{PlaneZW, XYZW(0, 0, 1, 0), XYZW(0, 0, 0, 1)},
		{PlaneXW, XYZW(1, 0, 0, 0), XYZW(0, 0, 0, 1)},
	}

	for index, spec := range specs {
		r := RotorFromAnglePlane(quarter, spec.plane)
		if got := r.RotateVec(spec.in); !vec4Near(got, spec.expOut, 1e-6) {
			t.Errorf("[spec %d] expected rotation of %v to yield %v; got %v", index, spec.in, spec.expOut, got)
		}
	}
}

func TestRotateVecPreservesLength(t *testing.T) {
	r := RotorFromAnglePlane(0.7, PlaneXY)
	r2 := RotorFromAnglePlane(-1.3, PlaneZW)

	v := XYZW(1, -2, 3, -4)
	expLen := v.Len()

	v = r.RotateVec(v)
	v = r2.RotateVec(v)
	if math.Abs(float64(v.Len()-expLen)) > 1e-5 {
		t.Fatalf("expected rotated length to be %f; got %f", expLen, v.Len())
	}
}

func TestRotorReverse(t *testing.T) {
	r := RotorFromAnglePlane(0.9, PlaneYW)

	v := XYZW(0.3, -1.1, 2.2, 0.5)
	got := r.Reverse().RotateVec(r.RotateVec(v))
	if !vec4Near(got, v, 1e-5) {
		t.Fatalf("expected reverse rotation to undo rotation of %v; got %v", v, got)
	}
}

func TestRotorBetween(t *testing.T) {
	from := XYZW(1, 0, 0, 0)
	to := XYZW(0, 0, 0, 1)

	r := RotorBetween(from, to)
	if got := r.RotateVec(from); !vec4Near(got, to, 1e-5) {
		t.Fatalf("expected rotation of %v to yield %v; got %v", from, to, got)
	}
}
