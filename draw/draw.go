// Package draw combines a program, a vertex buffer and a vertex array into
// long-lived orchestrators that issue the per-frame draw calls.
package draw

import (
	"fmt"
	"path"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/buffer"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/resources"
	"github.com/richinsley/glscene/shader"
	"github.com/richinsley/glscene/vertex"
)

// Shaders tells orchestrators where their programs live.
type Shaders struct {
	Loader resources.Loader
	// Dir is prefixed to the program names, e.g. "shaders" or "shaders/es".
	Dir     string
	Options []shader.Option
}

func (s Shaders) program(gl glapi.GL, name string) (*shader.Program, error) {
	p, err := shader.ProgramFromResource(gl, s.Loader, path.Join(s.Dir, name), s.Options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s program: %w", name, err)
	}
	return p, nil
}

type uniform struct {
	name string
	loc  *int32
}

// locate resolves every uniform in order, stopping at the first missing one.
func locate(p *shader.Program, uniforms ...uniform) error {
	for _, u := range uniforms {
		loc, err := p.UniformLocation(u.name)
		if err != nil {
			return fmt.Errorf("program %s: %w", p.Name(), err)
		}
		*u.loc = loc
	}
	return nil
}

// model holds the transform uniforms shared by every object program.
type model struct {
	scale           int32
	translation     int32
	rotation        int32
	viewTranslation int32
	viewRotation    int32
	projection      int32
}

func (m *model) uniforms() []uniform {
	return []uniform{
		{"model_scale", &m.scale},
		{"model_translation", &m.translation},
		{"model_rotation", &m.rotation},
		{"view_translation", &m.viewTranslation},
		{"view_rotation", &m.viewRotation},
		{"projection", &m.projection},
	}
}

// objects is the part common to the lit and the solid color orchestrators:
// a static vertex batch drawn piecewise under per-object model transforms.
type objects struct {
	gl       glapi.GL
	program  *shader.Program
	vbo      *buffer.ArrayBuffer
	vao      *buffer.VertexArray
	model    model
	vertices int
}

func newObjects(gl glapi.GL, program *shader.Program, vertices []vertex.Lit) (*objects, error) {
	layout, err := vertex.LayoutOf(vertex.Lit{})
	if err != nil {
		return nil, err
	}
	o := &objects{
		gl:       gl,
		program:  program,
		vertices: len(vertices),
	}
	if err := locate(program, o.model.uniforms()...); err != nil {
		return nil, err
	}

	o.vbo = buffer.NewArrayBuffer(gl)
	o.vbo.Bind()
	o.vbo.StaticDrawData(vertex.Pack(vertices))

	o.vao = buffer.NewVertexArray(gl)
	o.vao.Bind()
	layout.Apply(gl)
	o.vao.Unbind()
	o.vbo.Unbind()
	return o, nil
}

func (o *objects) prepareForDraws() {
	o.program.Use()
	o.vbo.Bind()
	o.vao.Bind()
}

func (o *objects) setView(translation, rotation mgl32.Mat4) {
	o.program.Use()
	o.program.SetMat4(o.model.viewTranslation, translation)
	o.program.SetMat4(o.model.viewRotation, rotation)
}

func (o *objects) setProjection(projection mgl32.Mat4) {
	o.program.Use()
	o.program.SetMat4(o.model.projection, projection)
}

func (o *objects) draw(scale float32, translation, rotation mgl32.Mat4, count, offset int) {
	if offset < 0 || count < 0 || offset+count > o.vertices {
		panic(fmt.Sprintf("draw: range [%d, %d) outside the %d uploaded vertices", offset, offset+count, o.vertices))
	}
	o.program.SetFloat(o.model.scale, scale)
	o.program.SetMat4(o.model.translation, translation)
	o.program.SetMat4(o.model.rotation, rotation)
	o.gl.DrawArrays(glapi.Triangles, int32(offset), int32(count))
}

func (o *objects) delete() {
	o.vao.Delete()
	o.vbo.Delete()
	o.program.Delete()
}
