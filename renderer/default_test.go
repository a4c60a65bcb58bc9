package renderer

import (
	"math"
	"testing"

	"github.com/euclase/hyperray/scene"
	"github.com/euclase/hyperray/tracer"
	"github.com/euclase/hyperray/tracer/cpu"
	"github.com/euclase/hyperray/types"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()

	sc := scene.New(math.Pi / 2)
	sc.Camera.Position = types.XYZW(0, 1, -3, 0)
	sc.Camera.SampleCount = 2
	sc.Camera.BounceCount = 3

	matIndex := sc.AddMaterial(scene.Material{BaseColor: types.XYZ(0.8, 0.4, 0.1)})
	hs, err := scene.NewHyperSphere(types.XYZW(0, 1, 0, 0), 1, matIndex)
	if err != nil {
		t.Fatal(err)
	}
	if err = sc.AddHyperSphere(hs); err != nil {
		t.Fatal(err)
	}
	return sc
}

func testTracers() []tracer.Tracer {
	return []tracer.Tracer{cpu.NewTracer("cpu-0", 2)}
}

func TestNewDefaultValidation(t *testing.T) {
	opts := Options{FrameW: 16, FrameH: 16}

	if _, err := NewDefault(nil, tracer.NaiveScheduler(), testTracers(), opts); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}

	sc := testScene(t)
	if _, err := NewDefault(sc, tracer.NaiveScheduler(), nil, opts); err != ErrNoTracers {
		t.Fatalf("expected ErrNoTracers; got %v", err)
	}

	if _, err := NewDefault(sc, tracer.NaiveScheduler(), testTracers(), Options{}); err != ErrInvalidFrameDims {
		t.Fatalf("expected ErrInvalidFrameDims; got %v", err)
	}

	sc.Camera = nil
	if _, err := NewDefault(sc, tracer.NaiveScheduler(), testTracers(), opts); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined; got %v", err)
	}
}

func TestDefaultRendererRendersFrame(t *testing.T) {
	opts := Options{FrameW: 16, FrameH: 16, Seed: 1}

	r, err := NewDefault(testScene(t), tracer.NaiveScheduler(), testTracers(), opts)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	frame := r.Frame()
	bounds := frame.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Fatalf("expected a 16x16 frame; got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Every pixel must be opaque after a full frame.
	for i := 3; i < len(frame.Pix); i += 4 {
		if frame.Pix[i] != 255 {
			t.Fatalf("expected opaque pixels; got alpha %d at byte %d", frame.Pix[i], i)
		}
	}

	stats := r.Stats()
	if len(stats.Tracers) != 1 {
		t.Fatalf("expected stats for 1 tracer; got %d", len(stats.Tracers))
	}
	if stats.Tracers[0].BlockH != 16 {
		t.Fatalf("expected the single tracer to render all 16 rows; got %d", stats.Tracers[0].BlockH)
	}
	if !stats.Tracers[0].IsPrimary {
		t.Fatal("expected the first tracer to be marked primary")
	}
}

func TestDefaultRendererOptionOverrides(t *testing.T) {
	sc := testScene(t)
	opts := Options{FrameW: 8, FrameH: 8, SamplesPerPixel: 4, NumBounces: 2}

	r, err := NewDefault(sc, tracer.NaiveScheduler(), testTracers(), opts)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if sc.Camera.SampleCount != 4 {
		t.Fatalf("expected options to override sample count; got %d", sc.Camera.SampleCount)
	}
	if sc.Camera.BounceCount != 2 {
		t.Fatalf("expected options to override bounce count; got %d", sc.Camera.BounceCount)
	}
}

func TestDefaultRendererSplitsFrameAcrossTracers(t *testing.T) {
	tracers := []tracer.Tracer{
		cpu.NewTracer("cpu-0", 1),
		cpu.NewTracer("cpu-1", 1),
	}
	opts := Options{FrameW: 16, FrameH: 16, Seed: 1}

	r, err := NewDefault(testScene(t), tracer.NaiveScheduler(), tracers, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	stats := r.Stats()
	var totalRows uint32
	for _, stat := range stats.Tracers {
		totalRows += stat.BlockH
	}
	if totalRows != 16 {
		t.Fatalf("expected tracer blocks to cover all 16 rows; got %d", totalRows)
	}
}

func TestDefaultRendererAccumulation(t *testing.T) {
	// With no primitives the frame is the deterministic sky gradient, so
	// accumulating extra frames must not change the display output.
	sc := scene.New(math.Pi / 2)

	renderFrames := func(frames uint32) []uint8 {
		opts := Options{FrameW: 8, FrameH: 8, Seed: 1, AccumulateFrames: frames}
		r, err := NewDefault(sc, tracer.NaiveScheduler(), testTracers(), opts)
		if err != nil {
			t.Fatal(err)
		}
		defer r.Close()

		if err = r.Render(); err != nil {
			t.Fatal(err)
		}
		return r.Frame().Pix
	}

	single := renderFrames(1)
	accumulated := renderFrames(3)
	for i := range single {
		diff := int(single[i]) - int(accumulated[i])
		if diff < -1 || diff > 1 {
			t.Fatalf("expected accumulation of a constant image to be stable; got %d vs %d at byte %d", single[i], accumulated[i], i)
		}
	}
}
