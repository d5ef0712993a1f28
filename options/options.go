package options

import (
	"flag"
	"fmt"

	"github.com/richinsley/golava/params"
)

type LavaOptions struct {
	Help           *bool
	Mode           *string // window or record
	Width          *int
	Height         *int
	Fullscreen     *bool
	VSync          *bool
	VertexShader   *string // optional GLSL ES 3.00 vertex stage overriding the built-in one
	FragmentShader *string // optional GLSL ES 3.00 fragment stage overriding the built-in one
	Translate      *bool   // run sources through the ANGLE translator before compiling
	GLES           *bool   // translate to ESSL instead of GLSL 410
	Preset         *string
	SavePreset     *string
	ScreenshotDir  *string
	Verbose        *bool
	// Recording options
	Headless   *bool // render through an EGL pbuffer instead of a hidden window (Linux)
	Duration   *float64
	FPS        *int
	OutputFile *string
	Codec      *string
	FFMPEGPath *string
	// Parameter overrides, keyed by schema name
	Params map[string]*string
}

// ParamFlagPrefix namespaces the per-parameter flags, so -param.mode=2 selects
// the effect mode while -mode picks window or record.
const ParamFlagPrefix = "param."

// Register binds every option to fs. Each schema parameter gets its own flag
// whose empty default leaves the schema default in place.
func Register(fs *flag.FlagSet, schema []params.Param) *LavaOptions {
	o := &LavaOptions{
		Help:           fs.Bool("help", false, "Show help message"),
		Mode:           fs.String("mode", "window", "Mode: window or record"),
		Width:          fs.Int("width", 1280, "Window width in layout units"),
		Height:         fs.Int("height", 720, "Window height in layout units"),
		Fullscreen:     fs.Bool("fullscreen", false, "Start fullscreen on the primary monitor"),
		VSync:          fs.Bool("vsync", true, "Synchronise frames to the display refresh"),
		VertexShader:   fs.String("vs", "", "Vertex shader file (GLSL ES 3.00)"),
		FragmentShader: fs.String("fs", "", "Fragment shader file (GLSL ES 3.00)"),
		Translate:      fs.Bool("translate", true, "Translate shaders with ANGLE before compiling"),
		GLES:           fs.Bool("gles", false, "Translate to ESSL rather than desktop GLSL"),
		Preset:         fs.String("preset", "", "Load parameter values from a JSON preset"),
		SavePreset:     fs.String("save-preset", "", "Write parameter values to a JSON preset on exit"),
		ScreenshotDir:  fs.String("screenshots", ".", "Directory for screenshots"),
		Verbose:        fs.Bool("verbose", false, "Log resizes and unused uniforms"),
		Headless:       fs.Bool("headless", false, "Record without a window using EGL (Linux only)"),
		Duration:       fs.Float64("duration", 10.0, "Duration in seconds for record mode"),
		FPS:            fs.Int("fps", 60, "Frames per second for record mode"),
		OutputFile:     fs.String("output", "lava.mp4", "Output file for record mode"),
		Codec:          fs.String("codec", "h264", "Video codec for record mode: h264 or hevc"),
		FFMPEGPath:     fs.String("ffmpeg", "", "Path to the ffmpeg binary (default: search PATH)"),
		Params:         make(map[string]*string, len(schema)),
	}
	for _, p := range schema {
		usage := fmt.Sprintf("%s (%s, %g..%g, default %s)", p.Label, p.Kind, p.Domain.Min, p.Domain.Max, p.Default)
		o.Params[p.Name] = fs.String(ParamFlagPrefix+p.Name, "", usage)
	}
	return o
}

// Validate checks option combinations that flag parsing cannot.
func (o *LavaOptions) Validate() error {
	switch *o.Mode {
	case "window":
		if *o.Headless {
			return fmt.Errorf("-headless only applies to record mode")
		}
	case "record":
		if *o.FPS <= 0 {
			return fmt.Errorf("fps must be positive, got %d", *o.FPS)
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("duration must be positive, got %g", *o.Duration)
		}
		if *o.OutputFile == "" {
			return fmt.Errorf("record mode requires an output file")
		}
	default:
		return fmt.Errorf("unknown mode %q, want window or record", *o.Mode)
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height)
	}
	return nil
}

// TotalFrames is the number of frames a recording of Duration at FPS needs.
func (o *LavaOptions) TotalFrames() int {
	return int(*o.Duration * float64(*o.FPS))
}

// Overrides returns the parameter flags that were set on the command line.
func (o *LavaOptions) Overrides() map[string]string {
	out := make(map[string]string)
	for name, v := range o.Params {
		if *v != "" {
			out[name] = *v
		}
	}
	return out
}
