package scene

import (
	"fmt"

	"github.com/euclase/hyperray/types"
)

// A Material describes how a primitive responds to light. BaseColor
// attenuates path throughput on every bounce; the emissive terms add
// radiance when a path lands on the surface.
type Material struct {
	BaseColor        types.Vec3
	EmissiveColor    types.Vec3
	EmissionStrength float32
}

// NewMaterial validates and constructs a material. Base color channels
// must lie in [0, 1] and the emission strength must be non-negative.
func NewMaterial(baseColor, emissiveColor types.Vec3, emissionStrength float32) (Material, error) {
	for i := 0; i < 3; i++ {
		if baseColor[i] < 0 || baseColor[i] > 1 {
			return Material{}, fmt.Errorf("material: base color channel %d out of [0, 1]: %g", i, baseColor[i])
		}
	}
	if emissionStrength < 0 {
		return Material{}, fmt.Errorf("material: emission strength must be >= 0, got %g", emissionStrength)
	}
	return Material{
		BaseColor:        baseColor,
		EmissiveColor:    emissiveColor,
		EmissionStrength: emissionStrength,
	}, nil
}
