package translator

import (
	"context"
	"fmt"
	"log"

	"github.com/richinsley/golava/graphics"
	gst "github.com/richinsley/goshadertranslator"
)

// Result is a translated shader stage.
type Result struct {
	Code string
	// Names maps identifiers in the original source to their names in Code.
	Names map[string]string
}

// Mapped returns the translated name for an identifier, or the identifier
// itself when the translator did not rename it.
func (r Result) Mapped(name string) string {
	if m, ok := r.Names[name]; ok && m != "" {
		return m
	}
	return name
}

// Translator converts GLSL ES 3.00 (WebGL2) sources into the shading language
// of the active context.
type Translator struct {
	st   *gst.ShaderTranslator
	gles bool
}

// New starts the translator runtime. gles selects ESSL output instead of GLSL 410.
func New(ctx context.Context, gles bool) (*Translator, error) {
	st, err := gst.NewShaderTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	log.Printf("Shader translator ready")
	return &Translator{st: st, gles: gles}, nil
}

func (t *Translator) Translate(stage graphics.ShaderStage, source string) (Result, error) {
	outputFormat := gst.OutputFormatGLSL410
	if t.gles {
		outputFormat = gst.OutputFormatESSL
	}
	out, err := t.st.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return Result{}, err
	}
	res := Result{Code: out.Code, Names: make(map[string]string, len(out.Variables))}
	for name, v := range out.Variables {
		res.Names[name] = v.MappedName
	}
	return res, nil
}

// Passthrough hands sources to the driver untouched, for shaders already
// written for the active context.
type Passthrough struct{}

func (Passthrough) Translate(_ graphics.ShaderStage, source string) (Result, error) {
	return Result{Code: source}, nil
}
