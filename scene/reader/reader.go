// Package reader loads scene descriptions from JSON documents.
package reader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/euclase/hyperray/scene"
	"github.com/euclase/hyperray/types"
)

// Defaults applied by Document.Build when a field is left unset.
const (
	defaultFOVDeg      = 90.0
	defaultMinDistance = 0.01
	defaultMaxDistance = 1000.0
	defaultBounces     = 5
	defaultSamples     = 1
)

// CameraDoc is the JSON form of the camera. Angles are stored in degrees
// because they are friendlier to author than radians.
type CameraDoc struct {
	Position      types.Vec4 `json:"position"`
	PitchDeg      float32    `json:"pitchDeg,omitempty"`
	YawDeg        float32    `json:"yawDeg,omitempty"`
	HyperPitchDeg float32    `json:"hyperPitchDeg,omitempty"`
	HyperYawDeg   float32    `json:"hyperYawDeg,omitempty"`
	FOVDeg        float32    `json:"fovDeg,omitempty"`
	MinDistance   float32    `json:"minDistance,omitempty"`
	MaxDistance   float32    `json:"maxDistance,omitempty"`
	BounceCount   uint32     `json:"bounceCount,omitempty"`
	SampleCount   uint32     `json:"sampleCount,omitempty"`
}

type MaterialDoc struct {
	BaseColor        types.Vec3 `json:"baseColor"`
	EmissiveColor    types.Vec3 `json:"emissiveColor,omitempty"`
	EmissionStrength float32    `json:"emissionStrength,omitempty"`
}

type HyperSphereDoc struct {
	Center   types.Vec4 `json:"center"`
	Radius   float32    `json:"radius"`
	Material uint32     `json:"material"`
}

type HyperCuboidDoc struct {
	Center      types.Vec4 `json:"center"`
	HalfExtents types.Vec4 `json:"halfExtents"`
	Material    uint32     `json:"material"`
}

type HyperPlaneDoc struct {
	Point    types.Vec4 `json:"point"`
	Normal   types.Vec4 `json:"normal"`
	Material uint32     `json:"material"`
}

// Document is a complete JSON scene description.
type Document struct {
	Camera       CameraDoc        `json:"camera"`
	Materials    []MaterialDoc    `json:"materials"`
	HyperSpheres []HyperSphereDoc `json:"hyperSpheres,omitempty"`
	HyperCuboids []HyperCuboidDoc `json:"hyperCuboids,omitempty"`
	HyperPlanes  []HyperPlaneDoc  `json:"hyperPlanes,omitempty"`
}

func radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Build applies defaults, validates the document and assembles a scene.
func (d Document) Build() (*scene.Scene, error) {
	cd := d.Camera
	if cd.FOVDeg == 0 {
		cd.FOVDeg = defaultFOVDeg
	}
	if cd.MinDistance == 0 {
		cd.MinDistance = defaultMinDistance
	}
	if cd.MaxDistance == 0 {
		cd.MaxDistance = defaultMaxDistance
	}
	if cd.BounceCount == 0 {
		cd.BounceCount = defaultBounces
	}
	if cd.SampleCount == 0 {
		cd.SampleCount = defaultSamples
	}

	sc := scene.New(radians(cd.FOVDeg))
	sc.Camera.Position = cd.Position
	sc.Camera.Pitch = radians(cd.PitchDeg)
	sc.Camera.Yaw = radians(cd.YawDeg)
	sc.Camera.HyperPitch = radians(cd.HyperPitchDeg)
	sc.Camera.HyperYaw = radians(cd.HyperYawDeg)
	sc.Camera.MinDistance = cd.MinDistance
	sc.Camera.MaxDistance = cd.MaxDistance
	sc.Camera.BounceCount = cd.BounceCount
	sc.Camera.SampleCount = cd.SampleCount
	sc.Camera.Update()

	for i, md := range d.Materials {
		m, err := scene.NewMaterial(md.BaseColor, md.EmissiveColor, md.EmissionStrength)
		if err != nil {
			return nil, fmt.Errorf("material %d: %v", i, err)
		}
		sc.AddMaterial(m)
	}
	for i, sd := range d.HyperSpheres {
		hs, err := scene.NewHyperSphere(sd.Center, sd.Radius, sd.Material)
		if err != nil {
			return nil, fmt.Errorf("hypersphere %d: %v", i, err)
		}
		if err := sc.AddHyperSphere(hs); err != nil {
			return nil, fmt.Errorf("hypersphere %d: %v", i, err)
		}
	}
	for i, bd := range d.HyperCuboids {
		hc, err := scene.NewHyperCuboid(bd.Center, bd.HalfExtents, bd.Material)
		if err != nil {
			return nil, fmt.Errorf("hypercuboid %d: %v", i, err)
		}
		if err := sc.AddHyperCuboid(hc); err != nil {
			return nil, fmt.Errorf("hypercuboid %d: %v", i, err)
		}
	}
	for i, pd := range d.HyperPlanes {
		hp, err := scene.NewHyperPlane(pd.Point, pd.Normal, pd.Material)
		if err != nil {
			return nil, fmt.Errorf("hyperplane %d: %v", i, err)
		}
		if err := sc.AddHyperPlane(hp); err != nil {
			return nil, fmt.Errorf("hyperplane %d: %v", i, err)
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ReadScene parses the JSON scene description at path.
func ReadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reader: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reader: parsing %s: %v", path, err)
	}
	return doc.Build()
}

// WriteDocument serializes a scene description to path as indented JSON.
func WriteDocument(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("reader: %v", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Default returns a starter scene: an orange hypersphere resting on a
// green ground hyperplane, viewed from a short distance back.
func Default() Document {
	return Document{
		Camera: CameraDoc{
			Position:    types.XYZW(0, 1, -3, 0),
			FOVDeg:      90,
			MinDistance: 0.01,
			MaxDistance: 1000,
			BounceCount: 5,
			SampleCount: 16,
		},
		Materials: []MaterialDoc{
			{BaseColor: types.XYZ(0.8, 0.4, 0.1)},
			{BaseColor: types.XYZ(0.1, 0.8, 0.3)},
		},
		HyperSpheres: []HyperSphereDoc{
			{Center: types.XYZW(0, 1, 0, 0), Radius: 1, Material: 0},
		},
		HyperPlanes: []HyperPlaneDoc{
			{Point: types.XYZW(0, 0, 0, 0), Normal: types.XYZW(0, 1, 0, 0), Material: 1},
		},
	}
}
