package renderer

import (
	"log"
	"math"

	"github.com/richinsley/golava/graphics"
)

// MaxPixelDensity caps the backing buffer scale to bound fragment cost.
const MaxPixelDensity = 2.0

// SurfaceManager keeps a surface's buffer and the viewport at layout × density.
type SurfaceManager struct {
	dev     graphics.Device
	verbose bool
}

func NewSurfaceManager(dev graphics.Device, verbose bool) *SurfaceManager {
	return &SurfaceManager{dev: dev, verbose: verbose}
}

// TargetSize returns floor(layout × min(density, MaxPixelDensity)).
// A missing or non-positive density counts as 1.
func TargetSize(layoutWidth, layoutHeight, density float64) (int, int) {
	if !(density > 0) {
		density = 1
	}
	density = math.Min(density, MaxPixelDensity)
	w := int(math.Floor(math.Max(layoutWidth, 0) * density))
	h := int(math.Floor(math.Max(layoutHeight, 0) * density))
	return w, h
}

// Sync resizes the surface buffer and reissues the viewport when the target
// size changed. It reports whether a resize happened; when it did not, no GPU
// call is made.
func (m *SurfaceManager) Sync(s graphics.Surface) bool {
	lw, lh := s.LayoutSize()
	w, h := TargetSize(lw, lh, s.PixelDensity())
	cw, ch := s.BufferSize()
	if w == cw && h == ch {
		return false
	}
	s.SetBufferSize(w, h)
	m.dev.Viewport(0, 0, int32(w), int32(h))
	if m.verbose {
		log.Printf("Surface resized: %dx%d -> %dx%d", cw, ch, w, h)
	}
	return true
}
