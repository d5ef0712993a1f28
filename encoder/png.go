package encoder

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes RGBA8 pixels read back from GL (bottom row first) as a PNG
// with the top row first.
func WritePNG(w io.Writer, width, height int, pixels []byte) error {
	stride := width * 4
	if len(pixels) < stride*height {
		return fmt.Errorf("pixel buffer too small: %d bytes for %dx%d", len(pixels), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return png.Encode(w, img)
}

// SavePNG writes a PNG file at path.
func SavePNG(path string, width, height int, pixels []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := WritePNG(f, width, height, pixels); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return f.Close()
}
