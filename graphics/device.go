package graphics

// ShaderStage identifies one of the two programmable pipeline stages.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// PositionAttrib is the vertex attribute location aPos is bound to before linking.
const PositionAttrib uint32 = 0

// Device is the subset of the GPU API the renderer drives. Calls are
// fire-and-forget except for the compile and link status queries.
type Device interface {
	CreateShader(stage ShaderStage) uint32
	// CompileShader uploads source and compiles it, returning the status and info log.
	CompileShader(shader uint32, source string) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32

	// CreateVertexArray uploads static vertices and describes one float attribute.
	CreateVertexArray(vertices []float32, attrib uint32, components int32) (vao, vbo uint32)
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao, vbo uint32)

	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)

	Viewport(x, y, width, height int32)
	DrawTriangles(first, count int32)

	CreateRenderTarget(width, height int) (fbo, texture uint32, err error)
	ResizeRenderTarget(texture uint32, width, height int)
	DeleteRenderTarget(fbo, texture uint32)
	BindFramebuffer(fbo uint32)
	// BlitToWindow scales the target's colour buffer onto the window framebuffer
	// and leaves fbo bound for drawing. It does not touch the viewport.
	BlitToWindow(fbo uint32, srcWidth, srcHeight, dstWidth, dstHeight int)
	// ReadPixels reads RGBA8 pixels from the bound read framebuffer, bottom row first.
	ReadPixels(width, height int) []byte
}
