package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel and frame. Zero keeps the scene
	// camera's sample count.
	SamplesPerPixel uint32

	// Max path length. Zero keeps the scene camera's bounce count.
	NumBounces uint32

	// Base value mixed into per-pixel random generator seeds.
	Seed uint32

	// Number of frames to accumulate before Render returns. Zero means a
	// single frame.
	AccumulateFrames uint32

	// Worker goroutines per attached cpu tracer. Zero selects one per
	// logical CPU.
	NumWorkers int

	// Number of cpu tracers to attach.
	NumTracers int
}
