package renderer

import (
	"fmt"

	"github.com/richinsley/golava/graphics"
	"github.com/richinsley/golava/translator"
)

// AbsentSlot is the location of a uniform the linked program does not use.
// Pushing to it is a no-op.
const AbsentSlot int32 = -1

// PositionAttribName is the vertex attribute the fullscreen quad feeds.
const PositionAttribName = "aPos"

// UniformNames is the uniform contract between the pipeline and the effect shader.
var UniformNames = []string{
	"iResolution",
	"iTime",
	"uMode",
	"uOctaves",
	"uLacunarity",
	"uGain",
	"uFBMScale",
	"uVoroScale",
	"uCrackWidth",
	"uWarpStrength",
	"uFlowSpeed",
	"uPalette",
}

// Translator rewrites a shader stage into the dialect the device compiles.
type Translator interface {
	Translate(stage graphics.ShaderStage, source string) (translator.Result, error)
}

// CompileError reports a shader stage that failed translation or compilation.
type CompileError struct {
	Stage  graphics.ShaderStage
	Log    string
	Source string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// Program is a linked vertex+fragment pair with its uniform slots resolved.
type Program struct {
	dev   graphics.Device
	id    uint32
	slots map[string]int32
}

// BuildProgram compiles and links the two stages and resolves the given
// uniform names. A failing stage aborts the build and nothing is returned.
func BuildProgram(dev graphics.Device, tr Translator, vertexSource, fragmentSource string, uniforms []string) (*Program, error) {
	vs, vsNames, err := compileStage(dev, tr, graphics.VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, fsNames, err := compileStage(dev, tr, graphics.FragmentStage, fragmentSource)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.BindAttribLocation(program, graphics.PositionAttrib, vsNames.Mapped(PositionAttribName))
	ok, infoLog := dev.LinkProgram(program)

	// attached shaders are released together with the program
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if !ok {
		dev.DeleteProgram(program)
		return nil, &LinkError{Log: infoLog}
	}

	p := &Program{
		dev:   dev,
		id:    program,
		slots: make(map[string]int32, len(uniforms)),
	}
	for _, name := range uniforms {
		mapped := fsNames.Mapped(name)
		if mapped == name {
			mapped = vsNames.Mapped(name)
		}
		p.slots[name] = dev.GetUniformLocation(program, mapped)
	}
	return p, nil
}

func compileStage(dev graphics.Device, tr Translator, stage graphics.ShaderStage, source string) (uint32, translator.Result, error) {
	res, err := tr.Translate(stage, source)
	if err != nil {
		return 0, translator.Result{}, &CompileError{Stage: stage, Log: err.Error(), Source: source}
	}

	shader := dev.CreateShader(stage)
	if ok, infoLog := dev.CompileShader(shader, res.Code); !ok {
		dev.DeleteShader(shader)
		return 0, translator.Result{}, &CompileError{Stage: stage, Log: infoLog, Source: res.Code}
	}
	return shader, res, nil
}

func (p *Program) ID() uint32 {
	return p.id
}

// Slot returns the cached location for a uniform, or AbsentSlot.
func (p *Program) Slot(name string) int32 {
	if loc, ok := p.slots[name]; ok {
		return loc
	}
	return AbsentSlot
}

func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

func (p *Program) Delete() {
	p.dev.DeleteProgram(p.id)
}
