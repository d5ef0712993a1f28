package graphics

import "errors"

// ErrContextUnavailable is returned when no rasterization context can be created.
var ErrContextUnavailable = errors.New("rasterization context unavailable")

// Context defines the interface for an OpenGL window host.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// LayoutSize returns the drawable size in logical (density independent) units.
	LayoutSize() (float64, float64)
	// PixelDensity returns the ratio of physical to logical pixels.
	PixelDensity() float64
	SetTitle(title string)
}

// Surface is the drawable the renderer keeps sized to layout × density.
type Surface interface {
	LayoutSize() (float64, float64)
	PixelDensity() float64
	BufferSize() (int, int)
	SetBufferSize(width, height int)
}

// FrameRequester schedules a single callback for the next display refresh.
// The timestamp passed to the callback is in milliseconds.
type FrameRequester interface {
	RequestFrame(cb func(timestamp float64))
}
