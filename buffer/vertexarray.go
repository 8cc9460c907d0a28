package buffer

import "github.com/richinsley/glscene/glapi"

// VertexArray records the attribute bindings registered while it is bound.
// Like Buffer it must not be copied.
type VertexArray struct {
	_  noCopy
	gl glapi.GL
	id uint32
}

// NewVertexArray allocates a vertex array object.
func NewVertexArray(gl glapi.GL) *VertexArray {
	return &VertexArray{gl: gl, id: gl.GenVertexArray()}
}

func (v *VertexArray) ID() uint32 { return v.id }

func (v *VertexArray) Bind() { v.gl.BindVertexArray(v.id) }

func (v *VertexArray) Unbind() { v.gl.BindVertexArray(0) }

// Delete releases the native handle. Later calls do nothing.
func (v *VertexArray) Delete() {
	if v.id == 0 {
		return
	}
	v.gl.DeleteVertexArray(v.id)
	v.id = 0
}
