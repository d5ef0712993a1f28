package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/golava/graphics"
	"github.com/richinsley/golava/translator"
)

func TestUploadQuad(t *testing.T) {
	dev := newFakeDevice()
	p, err := BuildProgram(dev, translator.Passthrough{}, validVertex, validFragment, UniformNames)
	require.NoError(t, err)

	q := UploadQuad(dev, p)
	assert.Equal(t, p.ID(), dev.used, "program bound before upload")
	assert.Equal(t, []float32{
		-1, -1, 1, -1, -1, 1,
		-1, 1, 1, -1, 1, 1,
	}, dev.vertices)
	assert.Equal(t, graphics.PositionAttrib, dev.attrib)
	assert.Equal(t, int32(2), dev.components)
	assert.Equal(t, q.vao, dev.boundVAO)

	q.Draw()
	q.Draw()
	assert.Equal(t, 2, dev.draws)
	assert.Equal(t, int32(QuadVertexCount), dev.drawCount)
	assert.Len(t, dev.vertices, 2*QuadVertexCount, "geometry is not re-uploaded by draws")
}
