package renderer

import (
	"image"
	"time"

	"github.com/euclase/hyperray/log"
	"github.com/euclase/hyperray/scene"
	"github.com/euclase/hyperray/tracer"
)

// Seed offset between consecutive accumulation frames so repeated
// frames from the same camera do not retrace identical paths.
const frameSeedStride uint32 = 2654435769

// The default offline renderer. It fans frame blocks out to the
// attached tracers, waits for completion and exposes the assembled
// frame buffer as an image.
type defaultRenderer struct {
	logger log.Logger

	options   Options
	scene     *scene.Scene
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	// Last block row assignment, one entry per tracer.
	blockAssignments []uint32

	// Shared output buffers. Each pixel owns four floats of accumulated
	// radiance and four display bytes (RGBA).
	accumBuffer []float32
	frameBuffer []uint8

	doneChan chan uint32
	errChan  chan error

	// Frames accumulated since the last camera change.
	frameCount uint32

	stats FrameStats
}

// Create a new default renderer using the specified block scheduler and
// tracer list.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, tracers []tracer.Tracer, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameDims
	}

	// Option overrides trump the scene camera settings.
	if opts.SamplesPerPixel > 0 {
		sc.Camera.SampleCount = opts.SamplesPerPixel
	}
	if opts.NumBounces > 0 {
		sc.Camera.BounceCount = opts.NumBounces
	}
	sc.Camera.Update()

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:      log.New("renderer"),
		options:     opts,
		scene:       sc,
		scheduler:   scheduler,
		tracers:     tracers,
		accumBuffer: make([]float32, opts.FrameW*opts.FrameH*4),
		frameBuffer: make([]uint8, opts.FrameW*opts.FrameH*4),
		doneChan:    make(chan uint32, len(tracers)),
		errChan:     make(chan error, len(tracers)),
	}

	for _, tr := range r.tracers {
		if err := tr.Setup(opts.FrameW, opts.FrameH, r.accumBuffer, r.frameBuffer); err != nil {
			return nil, err
		}
	}
	r.syncScene()

	return r, nil
}

// Push the full scene state to every attached tracer.
func (r *defaultRenderer) syncScene() {
	for _, tr := range r.tracers {
		tr.AppendChange(tracer.SetMaterials, r.scene.Materials)
		tr.AppendChange(tracer.SetHyperSpheres, r.scene.HyperSpheres)
		tr.AppendChange(tracer.SetHyperCuboids, r.scene.HyperCuboids)
		tr.AppendChange(tracer.SetHyperPlanes, r.scene.HyperPlanes)
		tr.AppendChange(tracer.UpdateCamera, r.scene.Camera)
	}
}

// Render frame. Runs the configured number of accumulation passes and
// blocks until every tracer has completed its rows.
func (r *defaultRenderer) Render() error {
	frames := r.options.AccumulateFrames
	if frames == 0 {
		frames = 1
	}

	start := time.Now()
	for frame := uint32(0); frame < frames; frame++ {
		if err := r.renderFrame(); err != nil {
			return err
		}
	}
	r.stats.RenderTime = time.Since(start)
	r.logger.Infof("rendered %d frame(s) in %d ms", frames, r.stats.RenderTime.Nanoseconds()/1e6)

	return nil
}

func (r *defaultRenderer) renderFrame() error {
	for _, tr := range r.tracers {
		if err := tr.ApplyPendingChanges(); err != nil {
			return err
		}
	}

	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.options.FrameH)
	r.frameCount++

	var blockY uint32
	for trIndex, tr := range r.tracers {
		tr.Enqueue(tracer.BlockRequest{
			BlockY:          blockY,
			BlockH:          r.blockAssignments[trIndex],
			SamplesPerPixel: r.options.SamplesPerPixel,
			Seed:            r.options.Seed + (r.frameCount-1)*frameSeedStride,
			FrameCount:      r.frameCount,
			DoneChan:        r.doneChan,
			ErrChan:         r.errChan,
		})
		blockY += r.blockAssignments[trIndex]
	}

	var pendingRows = r.options.FrameH
	for pendingRows > 0 {
		select {
		case rows := <-r.doneChan:
			pendingRows -= rows
		case err := <-r.errChan:
			return err
		}
	}

	r.collectStats()
	return nil
}

// Refresh per-tracer statistics after a completed frame.
func (r *defaultRenderer) collectStats() {
	if len(r.stats.Tracers) != len(r.tracers) {
		r.stats.Tracers = make([]TracerStat, len(r.tracers))
	}
	for trIndex, tr := range r.tracers {
		stats := tr.Stats()
		r.stats.Tracers[trIndex] = TracerStat{
			Id:           tr.Id(),
			IsPrimary:    trIndex == 0,
			BlockH:       stats.BlockH,
			FramePercent: float32(stats.BlockH) / float32(r.options.FrameH) * 100.0,
			RenderTime:   time.Duration(stats.BlockTime),
		}
	}
}

// Push a camera update to the tracers and restart accumulation. The
// accumulated radiance belongs to the previous viewpoint so it is
// discarded.
func (r *defaultRenderer) updateCamera() {
	r.scene.Camera.Update()
	for _, tr := range r.tracers {
		tr.AppendChange(tracer.UpdateCamera, r.scene.Camera)
	}

	for i := range r.accumBuffer {
		r.accumBuffer[i] = 0
	}
	r.frameCount = 0
}

// Get a copy of the current display frame.
func (r *defaultRenderer) Frame() *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, int(r.options.FrameW), int(r.options.FrameH)))
	copy(frame.Pix, r.frameBuffer)
	return frame
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
}
