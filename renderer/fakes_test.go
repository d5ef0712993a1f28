package renderer

import (
	"strings"

	"github.com/richinsley/golava/graphics"
	"github.com/richinsley/golava/params"
)

// fakeDevice records the GPU calls the renderer makes. Shader sources with
// unbalanced braces fail to compile; uniforms resolve only if listed in
// locations.
type fakeDevice struct {
	nextID    uint32
	locations map[string]int32
	linkLog   string

	stages          map[uint32]graphics.ShaderStage
	compiled        map[uint32]string
	attached        map[uint32][]uint32
	attribs         map[string]uint32
	deletedShaders  []uint32
	deletedPrograms []uint32
	programs        int
	used            uint32
	lookups         []string

	ints          map[int32]int32
	floats        map[int32]float32
	vec2s         map[int32][2]float32
	uniformWrites int

	vertices   []float32
	attrib     uint32
	components int32
	boundVAO   uint32

	viewports [][4]int32
	draws     int
	drawCount int32

	targets  int
	resizes  int
	blits    int
	reads    int
	boundFBO uint32
}

func newFakeDevice(uniforms ...string) *fakeDevice {
	d := &fakeDevice{
		locations: make(map[string]int32),
		stages:    make(map[uint32]graphics.ShaderStage),
		compiled:  make(map[uint32]string),
		attached:  make(map[uint32][]uint32),
		attribs:   make(map[string]uint32),
		ints:      make(map[int32]int32),
		floats:    make(map[int32]float32),
		vec2s:     make(map[int32][2]float32),
	}
	for i, name := range uniforms {
		d.locations[name] = int32(i)
	}
	return d
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) CreateShader(stage graphics.ShaderStage) uint32 {
	id := d.id()
	d.stages[id] = stage
	return id
}

func (d *fakeDevice) CompileShader(shader uint32, source string) (bool, string) {
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return false, "ERROR: 0:1: '' : syntax error"
	}
	d.compiled[shader] = source
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.programs++
	return d.id()
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) BindAttribLocation(program, index uint32, name string) {
	d.attribs[name] = index
}

func (d *fakeDevice) LinkProgram(program uint32) (bool, string) {
	if d.linkLog != "" {
		return false, d.linkLog
	}
	return true, ""
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.used = program
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.deletedPrograms = append(d.deletedPrograms, program)
}

func (d *fakeDevice) GetUniformLocation(program uint32, name string) int32 {
	d.lookups = append(d.lookups, name)
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) CreateVertexArray(vertices []float32, attrib uint32, components int32) (uint32, uint32) {
	d.vertices = append([]float32(nil), vertices...)
	d.attrib = attrib
	d.components = components
	return d.id(), d.id()
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.boundVAO = vao
}

func (d *fakeDevice) DeleteVertexArray(vao, vbo uint32) {}

func (d *fakeDevice) Uniform1i(location int32, v int32) {
	d.uniformWrites++
	d.ints[location] = v
}

func (d *fakeDevice) Uniform1f(location int32, v float32) {
	d.uniformWrites++
	d.floats[location] = v
}

func (d *fakeDevice) Uniform2f(location int32, x, y float32) {
	d.uniformWrites++
	d.vec2s[location] = [2]float32{x, y}
}

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.viewports = append(d.viewports, [4]int32{x, y, width, height})
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.draws++
	d.drawCount = count
}

func (d *fakeDevice) CreateRenderTarget(width, height int) (uint32, uint32, error) {
	d.targets++
	return d.id(), d.id(), nil
}

func (d *fakeDevice) ResizeRenderTarget(texture uint32, width, height int) {
	d.resizes++
}

func (d *fakeDevice) DeleteRenderTarget(fbo, texture uint32) {}

func (d *fakeDevice) BindFramebuffer(fbo uint32) {
	d.boundFBO = fbo
}

func (d *fakeDevice) BlitToWindow(fbo uint32, srcWidth, srcHeight, dstWidth, dstHeight int) {
	d.blits++
}

func (d *fakeDevice) ReadPixels(width, height int) []byte {
	d.reads++
	return make([]byte, width*height*4)
}

// fakeSurface is a surface whose layout the test controls.
type fakeSurface struct {
	layoutW, layoutH float64
	density          float64
	bufW, bufH       int
	sets             int
}

func (s *fakeSurface) LayoutSize() (float64, float64) { return s.layoutW, s.layoutH }
func (s *fakeSurface) PixelDensity() float64          { return s.density }
func (s *fakeSurface) BufferSize() (int, int)         { return s.bufW, s.bufH }

func (s *fakeSurface) SetBufferSize(width, height int) {
	s.sets++
	s.bufW, s.bufH = width, height
}

// manualRequester holds the pending callback until the test fires it.
type manualRequester struct {
	pending  func(timestamp float64)
	requests int
}

func (m *manualRequester) RequestFrame(cb func(timestamp float64)) {
	m.requests++
	m.pending = cb
}

func (m *manualRequester) fire(timestamp float64) {
	cb := m.pending
	m.pending = nil
	cb(timestamp)
}

func (m *manualRequester) Run() error { return nil }

// staticParams returns the same values every frame.
type staticParams params.Values

func (s staticParams) Snapshot() params.Values { return params.Values(s) }

const validFragment = `#version 300 es
precision highp float;
uniform vec2 iResolution;
uniform float iTime;
out vec4 fragColor;
void main() { fragColor = vec4(iTime); }
`

const validVertex = `#version 300 es
in vec2 aPos;
void main() { gl_Position = vec4(aPos, 0.0, 1.0); }
`
