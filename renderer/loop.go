package renderer

import "github.com/richinsley/golava/graphics"

// Loop is a FrameRequester that also owns the host's refresh loop.
type Loop interface {
	graphics.FrameRequester
	Run() error
}

// VSync delivers frame callbacks from a window's swap loop. With swap
// interval 1 that is one callback per vertical refresh.
type VSync struct {
	ctx     graphics.Context
	pending func(timestamp float64)
}

func NewVSync(ctx graphics.Context) *VSync {
	return &VSync{ctx: ctx}
}

func (v *VSync) RequestFrame(cb func(timestamp float64)) {
	v.pending = cb
}

// Run loops until the window is asked to close.
func (v *VSync) Run() error {
	for !v.ctx.ShouldClose() {
		if cb := v.pending; cb != nil {
			v.pending = nil
			cb(v.ctx.Time() * 1000)
		}
		v.ctx.EndFrame()
	}
	return nil
}

// FixedStep delivers a fixed number of callbacks with timestamps spaced at
// exactly 1/FPS, independent of wall-clock time.
type FixedStep struct {
	FPS     int
	Frames  int
	frame   int
	pending func(timestamp float64)
}

func (f *FixedStep) RequestFrame(cb func(timestamp float64)) {
	f.pending = cb
}

func (f *FixedStep) Run() error {
	for f.frame < f.Frames && f.pending != nil {
		cb := f.pending
		f.pending = nil
		cb(float64(f.frame) * 1000 / float64(f.FPS))
		f.frame++
	}
	return nil
}
