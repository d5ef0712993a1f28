package renderer

import "github.com/richinsley/golava/graphics"

// QuadVertexCount is the number of vertices in the fullscreen quad.
const QuadVertexCount = 6

// two triangles covering NDC
var quadVertices = []float32{
	-1.0, -1.0, 1.0, -1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// Quad is the static fullscreen geometry, uploaded once.
type Quad struct {
	dev graphics.Device
	vao uint32
	vbo uint32
}

// UploadQuad binds program, uploads the quad and leaves its vertex array bound.
func UploadQuad(dev graphics.Device, program *Program) *Quad {
	program.Use()
	vao, vbo := dev.CreateVertexArray(quadVertices, graphics.PositionAttrib, 2)
	dev.BindVertexArray(vao)
	return &Quad{dev: dev, vao: vao, vbo: vbo}
}

func (q *Quad) Draw() {
	q.dev.DrawTriangles(0, QuadVertexCount)
}

func (q *Quad) Delete() {
	q.dev.DeleteVertexArray(q.vao, q.vbo)
}
