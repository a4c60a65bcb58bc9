// Package cpu implements the rendering kernel: a pure-Go tracer that
// path-traces 4D scenes on a pool of worker goroutines. It is the
// in-process stand-in for a GPU compute dispatch; every pixel is an
// independent unit of work grouped into fixed-size tiles for
// scheduling.
package cpu

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/euclase/hyperray/log"
	"github.com/euclase/hyperray/scene"
	"github.com/euclase/hyperray/tracer"
)

// Tile dims used to carve block requests into work units.
const tileSize = 16

type pendingChange struct {
	changeType tracer.ChangeType
	data       interface{}
}

// Tracer renders blocks of the frame on numWorkers goroutines. It
// implements the tracer.Tracer interface.
type Tracer struct {
	logger log.Logger
	id     string

	numWorkers int

	frameW uint32
	frameH uint32

	// Shared output buffers handed in by the renderer. Tiles within a
	// request and blocks across tracers never overlap so writes need no
	// synchronization.
	accumBuffer []float32
	frameBuffer []uint8

	// The active immutable snapshot and the queued updates to it.
	state          frameState
	pendingMutex   sync.Mutex
	pendingChanges []pendingChange

	stats tracer.Stats
}

// NewTracer creates a cpu tracer with the given worker count; zero or
// negative selects one worker per logical CPU.
func NewTracer(id string, numWorkers int) *Tracer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Tracer{
		logger:     log.New(id),
		id:         fmt.Sprintf("%s (%d workers)", id, numWorkers),
		numWorkers: numWorkers,
	}
}

// Get tracer id.
func (tr *Tracer) Id() string {
	return tr.id
}

// Shutdown and cleanup tracer.
func (tr *Tracer) Close() {
}

// Get the tracer's speed estimate.
func (tr *Tracer) SpeedEstimate() float32 {
	return float32(tr.numWorkers)
}

// Setup the tracer.
func (tr *Tracer) Setup(frameW, frameH uint32, accumBuffer []float32, frameBuffer []uint8) error {
	if uint32(len(accumBuffer)) < frameW*frameH*4 || uint32(len(frameBuffer)) < frameW*frameH*4 {
		return fmt.Errorf("cpu tracer: output buffers too small for %dx%d frame", frameW, frameH)
	}
	tr.frameW = frameW
	tr.frameH = frameH
	tr.accumBuffer = accumBuffer
	tr.frameBuffer = frameBuffer
	return nil
}

// Append a change to the tracer's update buffer.
func (tr *Tracer) AppendChange(changeType tracer.ChangeType, data interface{}) {
	tr.pendingMutex.Lock()
	defer tr.pendingMutex.Unlock()
	tr.pendingChanges = append(tr.pendingChanges, pendingChange{changeType, data})
}

// Apply all pending changes from the update buffer. Changes swap in
// copies so the active snapshot stays immutable while blocks render.
func (tr *Tracer) ApplyPendingChanges() error {
	tr.pendingMutex.Lock()
	changes := tr.pendingChanges
	tr.pendingChanges = nil
	tr.pendingMutex.Unlock()

	for _, change := range changes {
		switch change.changeType {
		case tracer.UpdateCamera:
			cam, ok := change.data.(*scene.Camera)
			if !ok {
				return fmt.Errorf("cpu tracer: UpdateCamera expects *scene.Camera, got %T", change.data)
			}
			tr.state.camera = *cam
		case tracer.SetMaterials:
			data, ok := change.data.([]scene.Material)
			if !ok {
				return fmt.Errorf("cpu tracer: SetMaterials expects []scene.Material, got %T", change.data)
			}
			tr.state.materials = append([]scene.Material(nil), data...)
		case tracer.SetHyperSpheres:
			data, ok := change.data.([]scene.HyperSphere)
			if !ok {
				return fmt.Errorf("cpu tracer: SetHyperSpheres expects []scene.HyperSphere, got %T", change.data)
			}
			tr.state.hyperSpheres = append([]scene.HyperSphere(nil), data...)
		case tracer.SetHyperCuboids:
			data, ok := change.data.([]scene.HyperCuboid)
			if !ok {
				return fmt.Errorf("cpu tracer: SetHyperCuboids expects []scene.HyperCuboid, got %T", change.data)
			}
			tr.state.hyperCuboids = append([]scene.HyperCuboid(nil), data...)
		case tracer.SetHyperPlanes:
			data, ok := change.data.([]scene.HyperPlane)
			if !ok {
				return fmt.Errorf("cpu tracer: SetHyperPlanes expects []scene.HyperPlane, got %T", change.data)
			}
			tr.state.hyperPlanes = append([]scene.HyperPlane(nil), data...)
		default:
			return fmt.Errorf("cpu tracer: unknown change type %d", change.changeType)
		}
	}
	return nil
}

// Enqueue block request. The block renders asynchronously; completion is
// signalled on the request's done channel with the number of rows.
func (tr *Tracer) Enqueue(req tracer.BlockRequest) {
	go tr.renderBlock(req)
}

// Retrieve last frame statistics.
func (tr *Tracer) Stats() *tracer.Stats {
	return &tr.stats
}

// tile is a work unit: a tileSize x tileSize pixel region. Tiles at the
// frame edges overhang; out-of-bounds pixels are skipped without side
// effects.
type tile struct {
	x, y uint32
}

func (tr *Tracer) renderBlock(req tracer.BlockRequest) {
	if tr.accumBuffer == nil || tr.frameBuffer == nil {
		req.ErrChan <- fmt.Errorf("cpu tracer: not set up")
		return
	}

	// Snapshot the active state for this block; a per-request sample
	// count overrides the camera's.
	fs := tr.state
	if req.SamplesPerPixel > 0 {
		fs.camera.SampleCount = req.SamplesPerPixel
	}

	start := time.Now()

	tilesX := (tr.frameW + tileSize - 1) / tileSize
	tilesY := (req.BlockH + tileSize - 1) / tileSize

	tileChan := make(chan tile, tilesX*tilesY)
	for ty := uint32(0); ty < tilesY; ty++ {
		for tx := uint32(0); tx < tilesX; tx++ {
			tileChan <- tile{x: tx * tileSize, y: req.BlockY + ty*tileSize}
		}
	}
	close(tileChan)

	var wg sync.WaitGroup
	for worker := 0; worker < tr.numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tileChan {
				tr.renderTile(&fs, t, req)
			}
		}()
	}
	wg.Wait()

	tr.stats.BlockH = req.BlockH
	tr.stats.BlockTime = time.Since(start).Nanoseconds()
	tr.logger.Debugf("rendered %d rows starting at %d in %d ms", req.BlockH, req.BlockY, tr.stats.BlockTime/1e6)

	req.DoneChan <- req.BlockH
}

// renderTile traces every pixel of a tile and writes the accumulated
// radiance plus the clamped 8-bit color for display.
func (tr *Tracer) renderTile(fs *frameState, t tile, req tracer.BlockRequest) {
	blockEnd := req.BlockY + req.BlockH

	for py := t.y; py < t.y+tileSize; py++ {
		if py >= blockEnd || py >= tr.frameH {
			break
		}
		for px := t.x; px < t.x+tileSize; px++ {
			if px >= tr.frameW {
				break
			}

			color := fs.renderPixel(px, py, tr.frameW, tr.frameH, req.Seed)

			frames := req.FrameCount
			if frames == 0 {
				frames = 1
			}

			offset := (py*tr.frameW + px) * 4
			for ch := 0; ch < 3; ch++ {
				tr.accumBuffer[offset+uint32(ch)] += color[ch]

				value := tr.accumBuffer[offset+uint32(ch)] / float32(frames)
				if value < 0 {
					value = 0
				} else if value > 1 {
					value = 1
				}
				tr.frameBuffer[offset+uint32(ch)] = uint8(value * 255)
			}
			tr.accumBuffer[offset+3] = 1
			tr.frameBuffer[offset+3] = 255
		}
	}
}
