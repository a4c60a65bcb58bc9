package cpu

import (
	"github.com/chewxy/math32"

	"github.com/euclase/hyperray/scene"
	"github.com/euclase/hyperray/types"
)

// A ray in 4D space. Direction must be unit length before any
// intersection test; the quadratic solver divides by its squared
// magnitude assuming it is 1.
type ray struct {
	origin    types.Vec4
	direction types.Vec4
}

func (r ray) at(t float32) types.Vec4 {
	return r.origin.Add(r.direction.Mul(t))
}

// hit describes a ray/primitive intersection. When ok is false the other
// fields carry no meaning except dist, which callers must not read.
type hit struct {
	ok       bool
	dist     float32
	position types.Vec4
	normal   types.Vec4
	material uint32
}

// intersectHyperSphere solves the quadratic obtained by substituting the
// ray equation into the implicit sphere equation with full 4D dot
// products. Each real root is checked against [tMin, tMax] on its own
// and the smaller in-range root wins; rays starting inside the sphere
// therefore hit the far wall.
func intersectHyperSphere(r ray, hs *scene.HyperSphere, tMin, tMax float32) hit {
	oc := r.origin.Sub(hs.Center)
	a := r.direction.Dot(r.direction)
	halfB := oc.Dot(r.direction)
	c := oc.Dot(oc) - hs.Radius*hs.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return hit{}
	}

	sqrtD := math32.Sqrt(discriminant)
	near := (-halfB - sqrtD) / a
	far := (-halfB + sqrtD) / a

	dist := near
	if dist < tMin || dist > tMax {
		dist = far
		if dist < tMin || dist > tMax {
			return hit{}
		}
	}

	position := r.at(dist)
	normal := position.Sub(hs.Center).Normalize()
	// The normal always faces the incoming ray so shading works for rays
	// originating inside the primitive as well.
	if normal.Dot(r.origin.Sub(position)) < 0 {
		normal = normal.Neg()
	}

	return hit{
		ok:       true,
		dist:     dist,
		position: position,
		normal:   normal,
		material: hs.Material,
	}
}

// intersectHyperCuboid runs a slab test across all four axes. A zero
// direction component means the ray is parallel to that slab and misses
// outright unless the origin lies between the slab planes.
func intersectHyperCuboid(r ray, hc *scene.HyperCuboid, tMin, tMax float32) hit {
	lo := hc.Center.Sub(hc.HalfExtents)
	hi := hc.Center.Add(hc.HalfExtents)

	tEntry := math32.Inf(-1)
	tExit := math32.Inf(1)
	entryAxis, exitAxis := -1, -1

	for axis := 0; axis < 4; axis++ {
		o, d := r.origin[axis], r.direction[axis]
		if d == 0 {
			if o < lo[axis] || o > hi[axis] {
				return hit{}
			}
			continue
		}

		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEntry {
			tEntry = t1
			entryAxis = axis
		}
		if t2 < tExit {
			tExit = t2
			exitAxis = axis
		}
	}

	if tEntry > tExit {
		return hit{}
	}

	// Prefer the entry distance; fall back to the exit distance when the
	// ray starts inside the box (entry behind tMin).
	dist := tEntry
	axis := entryAxis
	if dist < tMin || dist > tMax {
		dist = tExit
		axis = exitAxis
		if dist < tMin || dist > tMax {
			return hit{}
		}
	}
	if axis < 0 {
		return hit{}
	}

	var normal types.Vec4
	if r.direction[axis] > 0 {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}

	return hit{
		ok:       true,
		dist:     dist,
		position: r.at(dist),
		normal:   normal,
		material: hc.Material,
	}
}

// intersectHyperPlane tests against an infinite hyperplane. Rays running
// parallel to the plane never hit it.
func intersectHyperPlane(r ray, hp *scene.HyperPlane, tMin, tMax float32) hit {
	denom := r.direction.Dot(hp.Normal)
	if denom == 0 {
		return hit{}
	}

	dist := hp.Point.Sub(r.origin).Dot(hp.Normal) / denom
	if dist < tMin || dist > tMax {
		return hit{}
	}

	normal := hp.Normal
	if denom > 0 {
		normal = normal.Neg()
	}

	return hit{
		ok:       true,
		dist:     dist,
		position: r.at(dist),
		normal:   normal,
		material: hp.Material,
	}
}
