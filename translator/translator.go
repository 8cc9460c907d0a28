// Package translator adapts goshadertranslator to shader.Translator so GLSL
// ES 3.00 sources can be compiled on a desktop GL 4.1 context.
package translator

import (
	"context"
	"fmt"

	"github.com/richinsley/glscene/shader"
	gst "github.com/richinsley/goshadertranslator"
)

// Translator rewrites WebGL2 (GLSL ES 3.00) sources as GLSL 4.10.
type Translator struct {
	t *gst.ShaderTranslator
}

var _ shader.Translator = (*Translator)(nil)

// New starts a translator.
func New(ctx context.Context) (*Translator, error) {
	t, err := gst.NewShaderTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	return &Translator{t: t}, nil
}

// Translate implements shader.Translator.
func (t *Translator) Translate(source string, stage shader.Stage) (*shader.Translation, error) {
	res, err := t.t.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	uniforms := make(map[string]string, len(res.Variables))
	for name, v := range res.Variables {
		uniforms[name] = v.MappedName
	}
	return &shader.Translation{Code: res.Code, Uniforms: uniforms}, nil
}
