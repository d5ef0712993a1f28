package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/golava/encoder"
	"github.com/richinsley/golava/gldevice"
	"github.com/richinsley/golava/glfwcontext"
	"github.com/richinsley/golava/headless"
	"github.com/richinsley/golava/options"
	"github.com/richinsley/golava/params"
	"github.com/richinsley/golava/renderer"
	"github.com/richinsley/golava/shader"
	"github.com/richinsley/golava/translator"
)

func init() {
	runtime.LockOSThread()
}

func newTranslator(opts *options.LavaOptions) (renderer.Translator, error) {
	if !*opts.Translate {
		return translator.Passthrough{}, nil
	}
	tr, err := translator.New(context.Background(), *opts.GLES)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// openRecordingContext returns the GL host for record mode: an EGL pbuffer
// when -headless is set, otherwise a hidden GLFW window.
func openRecordingContext(opts *options.LavaOptions) (func(), error) {
	if *opts.Headless {
		h, err := headless.New(*opts.Width, *opts.Height)
		if err != nil {
			return nil, err
		}
		// EGL gives a GLES 3 context, so translate to ESSL.
		*opts.GLES = true
		return h.Shutdown, nil
	}
	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, err
	}
	win, err := glfwcontext.New(glfwcontext.Config{
		Width:   *opts.Width,
		Height:  *opts.Height,
		Title:   "golava",
		Visible: false,
	})
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, err
	}
	return func() {
		win.Shutdown()
		glfwcontext.TerminateGraphics()
	}, nil
}

func runLava(opts *options.LavaOptions, panel *params.Panel, sources shader.Sources) {
	record := *opts.Mode == "record"

	var win *glfwcontext.Context
	if record {
		closeContext, err := openRecordingContext(opts)
		if err != nil {
			log.Fatalf("Failed to create rendering context: %v", err)
		}
		defer closeContext()
	} else {
		if err := glfwcontext.InitGraphics(); err != nil {
			log.Fatalf("Failed to initialize graphics: %v", err)
		}
		defer glfwcontext.TerminateGraphics()

		var err error
		win, err = glfwcontext.New(glfwcontext.Config{
			Width:      *opts.Width,
			Height:     *opts.Height,
			Title:      "golava",
			Visible:    true,
			Fullscreen: *opts.Fullscreen,
			VSync:      *opts.VSync,
		})
		if err != nil {
			log.Fatalf("Failed to create window: %v", err)
		}
		defer win.Shutdown()
	}

	dev, err := gldevice.New()
	if err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	tr, err := newTranslator(opts)
	if err != nil {
		log.Fatalf("Failed to create shader translator: %v", err)
	}

	registry := params.NewRegistry(panel, params.DefaultSchema())
	cfg := renderer.Config{
		Device:     dev,
		Translator: tr,
		Sources:    sources,
		Params:     registry,
		Verbose:    *opts.Verbose,
	}
	if record {
		cfg.Layout = renderer.FixedLayout{Width: float64(*opts.Width), Height: float64(*opts.Height), Density: 1}
		cfg.Loop = &renderer.FixedStep{FPS: *opts.FPS, Frames: opts.TotalFrames()}
	} else {
		cfg.Layout = win
		cfg.Loop = renderer.NewVSync(win)
	}

	r, err := renderer.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if record {
		rec, err := encoder.NewRecorder(encoder.Options{
			OutputFile: *opts.OutputFile,
			FFMPEGPath: *opts.FFMPEGPath,
			Codec:      *opts.Codec,
			Width:      *opts.Width,
			Height:     *opts.Height,
			FPS:        *opts.FPS,
		})
		if err != nil {
			log.Fatalf("Failed to start recorder: %v", err)
		}
		r.RecordTo(rec)
		log.Println("Starting offscreen render loop...")
		runErr := r.Run()
		if err := rec.Close(); err != nil {
			log.Fatalf("Recording failed: %v", err)
		}
		if runErr != nil {
			log.Fatalf("Offscreen rendering failed: %v", runErr)
		}
		log.Printf("Successfully rendered %d frames to %s", rec.Frames(), *opts.OutputFile)
		return
	}

	r.PresentTo(win)
	bindControls(win, panel, registry, r, *opts.ScreenshotDir)
	log.Println("Starting interactive render loop...")
	if err := r.Run(); err != nil {
		log.Fatalf("Render loop failed: %v", err)
	}
}

func main() {
	schema := params.DefaultSchema()
	opts := options.Register(flag.CommandLine, schema)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Procedural lava viewer/recorder")
		flag.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	panel := params.NewPanel(schema)
	if *opts.Preset != "" {
		if err := panel.LoadPreset(*opts.Preset); err != nil {
			log.Fatalf("Error loading preset: %v", err)
		}
		log.Printf("Loaded preset %s", *opts.Preset)
	}
	for name, value := range opts.Overrides() {
		if err := panel.Set(name, value); err != nil {
			log.Fatalf("Error applying -%s%s: %v", options.ParamFlagPrefix, name, err)
		}
	}

	sources, err := shader.Load(*opts.VertexShader, *opts.FragmentShader)
	if err != nil {
		log.Fatalf("Error loading shaders: %v", err)
	}

	runLava(opts, panel, sources)

	if *opts.SavePreset != "" {
		if err := panel.SavePreset(*opts.SavePreset); err != nil {
			log.Printf("Error saving preset: %v", err)
			os.Exit(1)
		}
		log.Printf("Saved preset to %s", *opts.SavePreset)
	}
}
