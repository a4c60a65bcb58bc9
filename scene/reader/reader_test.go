package reader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/euclase/hyperray/types"
)

func TestBuildAppliesDefaults(t *testing.T) {
	doc := Document{
		Materials: []MaterialDoc{
			{BaseColor: types.XYZ(1, 1, 1)},
		},
	}

	sc, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}

	cam := sc.Camera
	if math.Abs(float64(cam.FOV)-math.Pi/2) > 1e-6 {
		t.Fatalf("expected default fov to be pi/2 radians; got %f", cam.FOV)
	}
	if cam.MinDistance != 0.01 || cam.MaxDistance != 1000 {
		t.Fatalf("expected default hit range [0.01, 1000]; got [%g, %g]", cam.MinDistance, cam.MaxDistance)
	}
	if cam.BounceCount != 5 {
		t.Fatalf("expected default bounce count to be 5; got %d", cam.BounceCount)
	}
	if cam.SampleCount != 1 {
		t.Fatalf("expected default sample count to be 1; got %d", cam.SampleCount)
	}
}

func TestBuildConvertsAngles(t *testing.T) {
	doc := Default()
	doc.Camera.YawDeg = 180

	sc, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(float64(sc.Camera.Yaw)-math.Pi) > 1e-6 {
		t.Fatalf("expected yaw to be pi radians; got %f", sc.Camera.Yaw)
	}

	// A 180 degree yaw looks down -z.
	if sc.Camera.Forward.Sub(types.XYZW(0, 0, -1, 0)).Len() > 1e-6 {
		t.Fatalf("expected forward to be -z; got %v", sc.Camera.Forward)
	}
}

func TestBuildRejectsInvalidDocuments(t *testing.T) {
	doc := Document{
		Materials: []MaterialDoc{
			{BaseColor: types.XYZ(2, 0, 0)},
		},
	}
	if _, err := doc.Build(); err == nil {
		t.Fatal("expected an out of range base color to be rejected")
	}

	doc = Document{
		HyperSpheres: []HyperSphereDoc{
			{Center: types.Vec4{}, Radius: 1, Material: 0},
		},
	}
	if _, err := doc.Build(); err == nil {
		t.Fatal("expected a dangling material reference to be rejected")
	}
}

func TestReadSceneRoundtrip(t *testing.T) {
	sceneFile := filepath.Join(t.TempDir(), "scene.json")

	if err := WriteDocument(sceneFile, Default()); err != nil {
		t.Fatal(err)
	}

	sc, err := ReadScene(sceneFile)
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Materials) != 2 {
		t.Fatalf("expected 2 materials; got %d", len(sc.Materials))
	}
	if len(sc.HyperSpheres) != 1 || len(sc.HyperPlanes) != 1 {
		t.Fatalf("expected 1 hypersphere and 1 hyperplane; got %d and %d", len(sc.HyperSpheres), len(sc.HyperPlanes))
	}
	if sc.Camera.SampleCount != 16 {
		t.Fatalf("expected sample count to be 16; got %d", sc.Camera.SampleCount)
	}
}

func TestReadSceneErrors(t *testing.T) {
	if _, err := ReadScene(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected a missing file to be reported")
	}

	sceneFile := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(sceneFile, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadScene(sceneFile); err == nil {
		t.Fatal("expected malformed json to be reported")
	}
}
