package draw

import (
	"fmt"

	"github.com/richinsley/glscene/buffer"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/shader"
	"github.com/richinsley/glscene/vertex"
)

// Triangles draws an unlit batch that is uploaded again on every frame.
type Triangles struct {
	gl      glapi.GL
	program *shader.Program
	vbo     *buffer.ArrayBuffer
	vao     *buffer.VertexArray
}

func NewTriangles(gl glapi.GL, shaders Shaders) (*Triangles, error) {
	layout, err := vertex.LayoutOf(vertex.Colored{})
	if err != nil {
		return nil, err
	}
	program, err := shaders.program(gl, "triangle")
	if err != nil {
		return nil, err
	}
	d := &Triangles{
		gl:      gl,
		program: program,
		vbo:     buffer.NewArrayBuffer(gl),
		vao:     buffer.NewVertexArray(gl),
	}
	d.vbo.Bind()
	d.vao.Bind()
	layout.Apply(gl)
	d.vao.Unbind()
	d.vbo.Unbind()
	return d, nil
}

// Draw replaces the buffer contents with vertices and renders all of them
// as a triangle list in a single call.
func (d *Triangles) Draw(vertices []vertex.Colored) {
	if len(vertices)%3 != 0 {
		panic(fmt.Sprintf("draw: %d vertices do not form whole triangles", len(vertices)))
	}
	d.vbo.Bind()
	d.vbo.DynamicDrawData(vertex.Pack(vertices))
	d.program.Use()
	d.vao.Bind()
	d.gl.DrawArrays(glapi.Triangles, 0, int32(len(vertices)))
}

func (d *Triangles) Delete() {
	d.vao.Delete()
	d.vbo.Delete()
	d.program.Delete()
}
