package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/golava/encoder"
	"github.com/richinsley/golava/graphics"
	"github.com/richinsley/golava/shader"
)

// Config carries everything New needs. Nothing is read from globals.
type Config struct {
	Device     graphics.Device
	Translator Translator
	Sources    shader.Sources
	Params     Snapshotter
	Layout     Layout
	Loop       Loop
	Verbose    bool
}

// FrameSink receives a copy of every rendered frame as RGBA8, bottom row first.
type FrameSink interface {
	WriteFrame(pixels []byte) error
}

// Renderer owns the effect program, the fullscreen quad and the render
// target, and drives them with a Scheduler.
type Renderer struct {
	dev         graphics.Device
	program     *Program
	quad        *Quad
	target      *Target
	scheduler   *Scheduler
	loop        Loop
	screenshots []string
}

// New builds the effect program and uploads the geometry. Shader errors are
// returned as *CompileError or *LinkError and nothing is scheduled.
func New(cfg Config) (*Renderer, error) {
	program, err := BuildProgram(cfg.Device, cfg.Translator, cfg.Sources.Vertex, cfg.Sources.Fragment, UniformNames)
	if err != nil {
		return nil, err
	}
	log.Printf("Successfully built shader program")
	if cfg.Verbose {
		for _, name := range UniformNames {
			if program.Slot(name) == AbsentSlot {
				log.Printf("Uniform %s is not used by the shader", name)
			}
		}
	}

	target, err := NewTarget(cfg.Device, cfg.Layout)
	if err != nil {
		program.Delete()
		return nil, err
	}

	r := &Renderer{
		dev:     cfg.Device,
		program: program,
		quad:    UploadQuad(cfg.Device, program),
		target:  target,
		loop:    cfg.Loop,
	}
	r.scheduler = NewScheduler(Pipeline{
		Device:  cfg.Device,
		Program: r.program,
		Quad:    r.quad,
		Surface: r.target,
		Params:  cfg.Params,
	}, NewSurfaceManager(cfg.Device, cfg.Verbose), cfg.Loop)
	r.scheduler.OnFrame(r.takeScreenshots)
	return r, nil
}

func (r *Renderer) Scheduler() *Scheduler {
	return r.scheduler
}

func (r *Renderer) Program() *Program {
	return r.program
}

// PresentTo blits every frame to the window behind ctx.
func (r *Renderer) PresentTo(ctx graphics.Context) {
	r.scheduler.OnFrame(func(*Uniforms) {
		w, h := ctx.GetFramebufferSize()
		r.target.Present(w, h)
	})
}

// RecordTo hands every frame to sink. A failing sink is logged once per frame
// and does not stop rendering.
func (r *Renderer) RecordTo(sink FrameSink) {
	r.scheduler.OnFrame(func(*Uniforms) {
		if err := sink.WriteFrame(r.target.Pixels()); err != nil {
			log.Printf("Error writing frame %d: %v", r.scheduler.Frames(), err)
		}
	})
}

// RequestScreenshot saves the next rendered frame as a PNG at path.
func (r *Renderer) RequestScreenshot(path string) {
	r.screenshots = append(r.screenshots, path)
}

func (r *Renderer) takeScreenshots(*Uniforms) {
	if len(r.screenshots) == 0 {
		return
	}
	w, h := r.target.BufferSize()
	pixels := r.target.Pixels()
	for _, path := range r.screenshots {
		if err := encoder.SavePNG(path, w, h, pixels); err != nil {
			log.Printf("Screenshot failed: %v", err)
			continue
		}
		log.Printf("Saved screenshot to %s (%dx%d)", path, w, h)
	}
	r.screenshots = r.screenshots[:0]
}

// Run starts the scheduler and blocks in the host loop. There is no stop
// control; the loop ends when its host does.
func (r *Renderer) Run() error {
	r.scheduler.Start()
	if err := r.loop.Run(); err != nil {
		return fmt.Errorf("render loop failed: %w", err)
	}
	return nil
}

func (r *Renderer) Shutdown() {
	r.quad.Delete()
	r.target.Destroy()
	r.program.Delete()
}
