// Package buffer wraps GL buffer and vertex array objects. Each wrapper owns
// exactly one native handle and releases it at most once.
package buffer

import "github.com/richinsley/glscene/glapi"

// noCopy makes go vet's copylocks check reject copies of the holder.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Kind selects the binding target of a Buffer.
type Kind interface {
	Target() glapi.Enum
}

// Array is the vertex attribute buffer kind.
type Array struct{}

func (Array) Target() glapi.Enum { return glapi.ArrayBuffer }

// ElementArray is the index buffer kind.
type ElementArray struct{}

func (ElementArray) Target() glapi.Enum { return glapi.ElementArrayBuffer }

// Buffer is a device buffer bound at the target of K. It is used through a
// pointer only: a copied value would release the same handle again.
type Buffer[K Kind] struct {
	_    noCopy
	gl   glapi.GL
	id   uint32
	size int
}

type (
	ArrayBuffer        = Buffer[Array]
	ElementArrayBuffer = Buffer[ElementArray]
)

// New allocates an empty buffer.
func New[K Kind](gl glapi.GL) *Buffer[K] {
	return &Buffer[K]{gl: gl, id: gl.GenBuffer()}
}

// NewArrayBuffer allocates an empty vertex attribute buffer.
func NewArrayBuffer(gl glapi.GL) *ArrayBuffer { return New[Array](gl) }

// NewElementArrayBuffer allocates an empty index buffer.
func NewElementArrayBuffer(gl glapi.GL) *ElementArrayBuffer { return New[ElementArray](gl) }

func (b *Buffer[K]) target() glapi.Enum {
	var k K
	return k.Target()
}

// ID returns the native handle, 0 once deleted.
func (b *Buffer[K]) ID() uint32 { return b.id }

// Size returns the byte length of the last upload.
func (b *Buffer[K]) Size() int { return b.size }

func (b *Buffer[K]) Bind() { b.gl.BindBuffer(b.target(), b.id) }

func (b *Buffer[K]) Unbind() { b.gl.BindBuffer(b.target(), 0) }

// StaticDrawData uploads content that stays fixed for the rest of the
// buffer's life. The buffer must be bound.
func (b *Buffer[K]) StaticDrawData(data []byte) {
	b.gl.BufferData(b.target(), data, glapi.StaticDraw)
	b.size = len(data)
}

// DynamicDrawData replaces the whole content; it may be called every frame
// with a different size. The buffer must be bound.
func (b *Buffer[K]) DynamicDrawData(data []byte) {
	b.gl.BufferData(b.target(), data, glapi.DynamicDraw)
	b.size = len(data)
}

// Delete releases the native handle. Later calls do nothing.
func (b *Buffer[K]) Delete() {
	if b.id == 0 {
		return
	}
	b.gl.DeleteBuffer(b.id)
	b.id = 0
	b.size = 0
}
