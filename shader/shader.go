package shader

import (
	_ "embed"
	"fmt"
	"os"
)

// Default effect sources, written in GLSL ES 3.00 and translated at startup.
var (
	//go:embed lava.vert
	vertexShaderSource string
	//go:embed lava.frag
	fragmentShaderSource string
)

// Sources is a vertex/fragment pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Default returns the built-in lava effect.
func Default() Sources {
	return Sources{Vertex: vertexShaderSource, Fragment: fragmentShaderSource}
}

// Load reads user-supplied stage files. An empty path keeps the built-in stage.
func Load(vertexPath, fragmentPath string) (Sources, error) {
	src := Default()
	if vertexPath != "" {
		b, err := os.ReadFile(vertexPath)
		if err != nil {
			return Sources{}, fmt.Errorf("could not read vertex shader file: %w", err)
		}
		src.Vertex = string(b)
	}
	if fragmentPath != "" {
		b, err := os.ReadFile(fragmentPath)
		if err != nil {
			return Sources{}, fmt.Errorf("could not read fragment shader file: %w", err)
		}
		src.Fragment = string(b)
	}
	return src, nil
}
