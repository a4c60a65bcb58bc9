package scene

import "fmt"

// A Scene bundles the camera, material list and primitive lists that a
// tracer consumes. Primitives reference materials by index; the kernel
// never bounds-checks those indices, so Validate must pass before a
// scene is handed to a tracer.
type Scene struct {
	Camera       *Camera
	Materials    []Material
	HyperSpheres []HyperSphere
	HyperCuboids []HyperCuboid
	HyperPlanes  []HyperPlane
}

// New returns an empty scene with a default camera.
func New(fov float32) *Scene {
	return &Scene{Camera: NewCamera(fov)}
}

// AddMaterial appends a material and returns its index.
func (s *Scene) AddMaterial(m Material) uint32 {
	s.Materials = append(s.Materials, m)
	return uint32(len(s.Materials) - 1)
}

// AddHyperSphere appends a hypersphere after checking its material index.
func (s *Scene) AddHyperSphere(hs HyperSphere) error {
	if err := s.checkMaterial(hs.Material); err != nil {
		return fmt.Errorf("hypersphere: %v", err)
	}
	s.HyperSpheres = append(s.HyperSpheres, hs)
	return nil
}

// AddHyperCuboid appends a hypercuboid after checking its material index.
func (s *Scene) AddHyperCuboid(hc HyperCuboid) error {
	if err := s.checkMaterial(hc.Material); err != nil {
		return fmt.Errorf("hypercuboid: %v", err)
	}
	s.HyperCuboids = append(s.HyperCuboids, hc)
	return nil
}

// AddHyperPlane appends a hyperplane after checking its material index.
func (s *Scene) AddHyperPlane(hp HyperPlane) error {
	if err := s.checkMaterial(hp.Material); err != nil {
		return fmt.Errorf("hyperplane: %v", err)
	}
	s.HyperPlanes = append(s.HyperPlanes, hp)
	return nil
}

func (s *Scene) checkMaterial(index uint32) error {
	if index >= uint32(len(s.Materials)) {
		return fmt.Errorf("material index %d out of range (%d materials)", index, len(s.Materials))
	}
	return nil
}

// Validate checks every invariant the kernel relies on: a valid camera
// and in-range material references on every primitive.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene: no camera defined")
	}
	if err := s.Camera.Validate(); err != nil {
		return err
	}
	for i, hs := range s.HyperSpheres {
		if hs.Radius <= 0 {
			return fmt.Errorf("scene: hypersphere %d has non-positive radius", i)
		}
		if err := s.checkMaterial(hs.Material); err != nil {
			return fmt.Errorf("scene: hypersphere %d: %v", i, err)
		}
	}
	for i, hc := range s.HyperCuboids {
		for axis := 0; axis < 4; axis++ {
			if hc.HalfExtents[axis] <= 0 {
				return fmt.Errorf("scene: hypercuboid %d has non-positive extent on axis %d", i, axis)
			}
		}
		if err := s.checkMaterial(hc.Material); err != nil {
			return fmt.Errorf("scene: hypercuboid %d: %v", i, err)
		}
	}
	for i, hp := range s.HyperPlanes {
		if hp.Normal.Len() == 0 {
			return fmt.Errorf("scene: hyperplane %d has zero normal", i)
		}
		if err := s.checkMaterial(hp.Material); err != nil {
			return fmt.Errorf("scene: hyperplane %d: %v", i, err)
		}
	}
	return nil
}
