package cpu

import (
	"github.com/chewxy/math32"

	"github.com/euclase/hyperray/types"
)

// sampler is a pcg-style 32-bit generator. Every pixel task owns exactly
// one sampler, seeded from its pixel coordinates, and threads it through
// all random draws for all samples of that pixel. Identical seed and
// call order always reproduce the same sequence.
type sampler struct {
	state uint32
}

func newSampler(seed uint32) sampler {
	return sampler{state: seed}
}

// uniform advances the state and returns a float in the unit interval.
func (s *sampler) uniform() float32 {
	s.state = s.state*747796405 + 2891336453
	word := ((s.state >> ((s.state >> 28) + 4)) ^ s.state) * 277803737
	word = (word >> 22) ^ word
	return float32(word) / 4294967295.0
}

// normal returns a draw from the standard normal distribution using the
// Box-Muller transform.
func (s *sampler) normal() float32 {
	u1 := s.uniform()
	u2 := s.uniform()
	return math32.Sqrt(-2*math32.Log(u2)) * math32.Cos(2*math32.Pi*u1)
}

// direction returns a unit vector uniformly distributed over the surface
// of the 4D unit hypersphere (Marsaglia's method generalized: four
// independent normals, normalized).
func (s *sampler) direction() types.Vec4 {
	return types.Vec4{s.normal(), s.normal(), s.normal(), s.normal()}.Normalize()
}

// hemisphereDirection returns a unit vector uniform over the hemisphere
// around normal. This is plain hemisphere sampling, not cosine-weighted.
func (s *sampler) hemisphereDirection(normal types.Vec4) types.Vec4 {
	dir := s.direction()
	if dir.Dot(normal) < 0 {
		return dir.Neg()
	}
	return dir
}
