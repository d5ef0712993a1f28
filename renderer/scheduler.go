package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/golava/graphics"
	"github.com/richinsley/golava/params"
)

// State is the scheduler's lifecycle state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Snapshotter yields the current parameter values once per frame.
type Snapshotter interface {
	Snapshot() params.Values
}

// Pipeline is the render state a Scheduler drives. Everything the frame loop
// touches is reachable from here.
type Pipeline struct {
	Device  graphics.Device
	Program *Program
	Quad    *Quad
	Surface graphics.Surface
	Params  Snapshotter
}

// Scheduler runs one sync/push/draw cycle per display refresh.
type Scheduler struct {
	pipeline  Pipeline
	surfaces  *SurfaceManager
	requester graphics.FrameRequester
	onFrame   []func(u *Uniforms)

	state     State
	firstTick float64
	elapsed   float64
	frames    uint64
}

func NewScheduler(p Pipeline, surfaces *SurfaceManager, requester graphics.FrameRequester) *Scheduler {
	return &Scheduler{
		pipeline:  p,
		surfaces:  surfaces,
		requester: requester,
	}
}

// OnFrame registers a hook that runs after each draw, before the next tick is
// requested.
func (s *Scheduler) OnFrame(fn func(u *Uniforms)) {
	s.onFrame = append(s.onFrame, fn)
}

// Start requests the first tick. Calling it again once running has no effect.
func (s *Scheduler) Start() {
	if s.state != Idle {
		return
	}
	s.requester.RequestFrame(s.Tick)
}

// Tick renders one frame for a refresh signal at timestamp (milliseconds).
func (s *Scheduler) Tick(timestamp float64) {
	if s.state == Idle {
		s.state = Running
		s.firstTick = timestamp
	}

	p := s.pipeline
	s.surfaces.Sync(p.Surface)

	// never run the clock backwards, even if the host timestamp does
	elapsed := (timestamp - s.firstTick) * 0.001
	if elapsed > s.elapsed {
		s.elapsed = elapsed
	}

	w, h := p.Surface.BufferSize()
	u := &Uniforms{
		Resolution: mgl32.Vec2{float32(w), float32(h)},
		Time:       float32(s.elapsed),
		Values:     p.Params.Snapshot(),
	}
	updateUniforms(p.Device, p.Program, u)
	p.Quad.Draw()
	s.frames++

	for _, fn := range s.onFrame {
		fn(u)
	}
	s.requester.RequestFrame(s.Tick)
}

func (s *Scheduler) State() State {
	return s.state
}

// Elapsed returns the clock value pushed on the most recent tick, in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}

// Frames returns the number of ticks rendered.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}
