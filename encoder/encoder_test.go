package encoder

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNGFlipsRows(t *testing.T) {
	// bottom row red, top row blue, as glReadPixels returns them
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, 1, 2, pixels))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [2]uint32{0, 0xffff}, [2]uint32{r, b}, "top pixel should be blue")
	r, _, b, _ = img.At(0, 1).RGBA()
	assert.Equal(t, [2]uint32{0xffff, 0}, [2]uint32{r, b}, "bottom pixel should be red")
}

func TestWritePNGShortBuffer(t *testing.T) {
	assert.Error(t, WritePNG(io.Discard, 4, 4, make([]byte, 10)))
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shot.png")
	assert.Error(t, SavePNG(path, 1, 1, make([]byte, 4)))
}

func TestRecorderStreamsEveryFrame(t *testing.T) {
	const frameLen = 16
	var got bytes.Buffer
	rec := newRecorder(frameLen, func(r io.Reader) error {
		_, err := io.Copy(&got, r)
		return err
	})

	for i := 0; i < 10; i++ {
		require.NoError(t, rec.WriteFrame(bytes.Repeat([]byte{byte(i)}, frameLen)))
	}
	require.NoError(t, rec.Close())
	require.Equal(t, 10*frameLen, got.Len())
	assert.Equal(t, byte(9), got.Bytes()[9*frameLen], "last frame")
	assert.Equal(t, 10, rec.Frames())
}

func TestRecorderRejectsWrongFrameSize(t *testing.T) {
	rec := newRecorder(16, func(r io.Reader) error {
		_, err := io.Copy(io.Discard, r)
		return err
	})
	assert.Error(t, rec.WriteFrame(make([]byte, 15)))
	require.NoError(t, rec.Close())
}

func TestRecorderEncoderExitsEarly(t *testing.T) {
	boom := errors.New("ffmpeg exited with status 1")
	rec := newRecorder(8, func(r io.Reader) error {
		return boom
	})

	// more frames than the channel buffer; must not deadlock
	for i := 0; i < 20; i++ {
		require.NoError(t, rec.WriteFrame(make([]byte, 8)))
	}
	assert.ErrorIs(t, rec.Close(), boom)
}

func TestGetArgs(t *testing.T) {
	in, out := getArgs(Options{OutputFile: "lava.mp4", Codec: "hevc", Width: 640, Height: 360, FPS: 30})
	assert.Equal(t, "640x360", in["s"])
	assert.Equal(t, "rgba", in["pix_fmt"])
	assert.Equal(t, "libx265", out["c:v"])
	assert.Equal(t, "hvc1", out["tag:v"])

	_, out = getArgs(Options{OutputFile: "lava.mkv", Width: 1, Height: 1, FPS: 1})
	assert.Equal(t, "libx264", out["c:v"], "default codec")
	assert.NotContains(t, out, "tag:v", "tag:v is only set for hevc")
	assert.Contains(t, out["vf"], "vflip")
}

func TestNewRecorderValidates(t *testing.T) {
	_, err := NewRecorder(Options{OutputFile: "x.mp4", Width: 0, Height: 10, FPS: 30})
	assert.Error(t, err)
}
