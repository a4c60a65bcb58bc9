package scene

import (
	"fmt"

	"github.com/euclase/hyperray/types"
)

// A HyperSphere is the set of points at a fixed radius from a center in
// 4D euclidean space.
type HyperSphere struct {
	Center   types.Vec4
	Radius   float32
	Material uint32
}

// NewHyperSphere validates and constructs a hypersphere.
func NewHyperSphere(center types.Vec4, radius float32, material uint32) (HyperSphere, error) {
	if radius <= 0 {
		return HyperSphere{}, fmt.Errorf("hypersphere: radius must be > 0, got %g", radius)
	}
	return HyperSphere{Center: center, Radius: radius, Material: material}, nil
}

// A HyperCuboid is an axis-aligned 4D box described by its center and
// per-axis half extents.
type HyperCuboid struct {
	Center      types.Vec4
	HalfExtents types.Vec4
	Material    uint32
}

// NewHyperCuboid validates and constructs a hypercuboid.
func NewHyperCuboid(center, halfExtents types.Vec4, material uint32) (HyperCuboid, error) {
	for i := 0; i < 4; i++ {
		if halfExtents[i] <= 0 {
			return HyperCuboid{}, fmt.Errorf("hypercuboid: half extent on axis %d must be > 0, got %g", i, halfExtents[i])
		}
	}
	return HyperCuboid{Center: center, HalfExtents: halfExtents, Material: material}, nil
}

// A HyperPlane is an infinite 3-dimensional hyperplane through Point
// with the given unit normal.
type HyperPlane struct {
	Point    types.Vec4
	Normal   types.Vec4
	Material uint32
}

// NewHyperPlane validates and constructs a hyperplane. The normal is
// normalized; a zero normal is rejected.
func NewHyperPlane(point, normal types.Vec4, material uint32) (HyperPlane, error) {
	if normal.Len() == 0 {
		return HyperPlane{}, fmt.Errorf("hyperplane: normal must be non-zero")
	}
	return HyperPlane{Point: point, Normal: normal.Normalize(), Material: material}, nil
}
