package renderer

import (
	"fmt"

	"github.com/richinsley/golava/graphics"
)

// Layout reports the logical size and pixel density of whatever the target
// is displayed on.
type Layout interface {
	LayoutSize() (float64, float64)
	PixelDensity() float64
}

// FixedLayout is a layout that never changes, used for offscreen recording.
type FixedLayout struct {
	Width   float64
	Height  float64
	Density float64
}

func (f FixedLayout) LayoutSize() (float64, float64) { return f.Width, f.Height }
func (f FixedLayout) PixelDensity() float64          { return f.Density }

// Target is the offscreen colour buffer the effect renders into. Its size is
// the surface buffer size the SurfaceManager maintains; the window only ever
// sees it scaled by Present.
type Target struct {
	dev     graphics.Device
	layout  Layout
	fbo     uint32
	texture uint32
	width   int
	height  int
}

// NewTarget creates a 1x1 target and binds it for drawing. The first Sync
// sizes it properly.
func NewTarget(dev graphics.Device, layout Layout) (*Target, error) {
	fbo, texture, err := dev.CreateRenderTarget(1, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create render target: %w", err)
	}
	dev.BindFramebuffer(fbo)
	return &Target{
		dev:     dev,
		layout:  layout,
		fbo:     fbo,
		texture: texture,
		width:   1,
		height:  1,
	}, nil
}

func (t *Target) LayoutSize() (float64, float64) {
	return t.layout.LayoutSize()
}

func (t *Target) PixelDensity() float64 {
	return t.layout.PixelDensity()
}

func (t *Target) BufferSize() (int, int) {
	return t.width, t.height
}

func (t *Target) SetBufferSize(width, height int) {
	t.dev.ResizeRenderTarget(t.texture, width, height)
	t.width = width
	t.height = height
}

// Present scales the target onto a window framebuffer of the given size.
func (t *Target) Present(windowWidth, windowHeight int) {
	t.dev.BlitToWindow(t.fbo, t.width, t.height, windowWidth, windowHeight)
}

// Pixels reads back the target as RGBA8, bottom row first.
func (t *Target) Pixels() []byte {
	return t.dev.ReadPixels(t.width, t.height)
}

func (t *Target) Destroy() {
	t.dev.BindFramebuffer(0)
	t.dev.DeleteRenderTarget(t.fbo, t.texture)
}
