package renderer

import "image"

type Renderer interface {
	// Render frame.
	Render() error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get a copy of the current display frame.
	Frame() *image.RGBA

	// Get render statistics.
	Stats() FrameStats
}
