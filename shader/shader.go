// Package shader compiles GLSL stages, links them into programs and uploads
// uniforms through cached locations.
package shader

import (
	"fmt"
	"strings"

	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/resources"
)

// Stage is a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// stageExtensions maps file suffixes to stages, in lookup order.
var stageExtensions = []struct {
	ext   string
	stage Stage
}{
	{".vert", Vertex},
	{".frag", Fragment},
}

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

func (s Stage) kind() glapi.Enum {
	if s == Vertex {
		return glapi.VertexShader
	}
	return glapi.FragmentShader
}

// StageFromName derives the stage from a file name suffix.
func StageFromName(name string) (Stage, error) {
	for _, e := range stageExtensions {
		if strings.HasSuffix(name, e.ext) {
			return e.stage, nil
		}
	}
	return 0, &UnknownStageKindError{Name: name}
}

// Shader is a compiled stage object.
type Shader struct {
	gl    glapi.GL
	id    uint32
	name  string
	stage Stage
	// uniforms maps declared uniform names to the names the compiled source
	// uses for them when the source went through a Translator.
	uniforms map[string]string
}

// Compile compiles source as stage. name is only used for diagnostics.
func Compile(gl glapi.GL, name, source string, stage Stage) (*Shader, error) {
	id, ok, log := gl.CompileShader(stage.kind(), source)
	if !ok {
		return nil, &CompileError{Name: name, Stage: stage, Log: log}
	}
	return &Shader{gl: gl, id: id, name: name, stage: stage}, nil
}

// FromResource loads and compiles the resource at name. The stage is
// derived from the suffix before anything is read.
func FromResource(gl glapi.GL, res resources.Loader, name string, opts ...Option) (*Shader, error) {
	stage, err := StageFromName(name)
	if err != nil {
		return nil, err
	}
	source, err := res.LoadText(name)
	if err != nil {
		return nil, &ResourceLoadError{Name: name, Err: err}
	}

	cfg := newConfig(opts)
	var uniforms map[string]string
	if cfg.translator != nil {
		t, err := cfg.translator.Translate(source, stage)
		if err != nil {
			return nil, fmt.Errorf("failed to translate %s: %w", name, err)
		}
		source, uniforms = t.Code, t.Uniforms
	}

	s, err := Compile(gl, name, source, stage)
	if err != nil {
		return nil, err
	}
	s.uniforms = uniforms
	return s, nil
}

func (s *Shader) ID() uint32 { return s.id }

func (s *Shader) Name() string { return s.name }

func (s *Shader) Stage() Stage { return s.stage }

// Delete releases the stage object. Later calls do nothing.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	s.gl.DeleteShader(s.id)
	s.id = 0
}
