package types

import (
	"math"
	"testing"
)

func TestVec4DotUsesAllComponents(t *testing.T) {
	a := XYZW(1, 2, 3, 4)
	b := XYZW(5, 6, 7, 8)

	var expDot float32 = 5 + 12 + 21 + 32
	if got := a.Dot(b); got != expDot {
		t.Fatalf("expected dot product to be %f; got %f", expDot, got)
	}

	// Vectors that differ only in w must not be treated as parallel.
	c := XYZW(0, 0, 0, 1)
	if got := a.Dot(c); got != 4 {
		t.Fatalf("expected dot product to be 4; got %f", got)
	}
}

func TestVec4Normalize(t *testing.T) {
	v := XYZW(1, -2, 3, -4).Normalize()
	if l := v.Len(); math.Abs(float64(l)-1) > 1e-6 {
		t.Fatalf("expected normalized length to be 1; got %f", l)
	}

	zero := Vec4{}.Normalize()
	if zero != (Vec4{}) {
		t.Fatalf("expected zero vector to normalize to zero; got %v", zero)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := XYZ(-0.5, 0.5, 1.5).Clamp(0, 1)
	expVal := XYZ(0, 0.5, 1)
	if v != expVal {
		t.Fatalf("expected clamped vector to be %v; got %v", expVal, v)
	}
}

func TestVec3MulVec(t *testing.T) {
	v := XYZ(0.5, 1, 2).MulVec(XYZ(2, 3, 0.25))
	expVal := XYZ(1, 3, 0.5)
	if v != expVal {
		t.Fatalf("expected component product to be %v; got %v", expVal, v)
	}
}
