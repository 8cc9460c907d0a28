// Package glapi declares the slice of OpenGL the rendering pipeline depends on.
//
// Every resource wrapper takes a GL value at construction and keeps it as a
// non-owning reference. The native implementation lives in package glcore; the
// recording implementation used by tests lives in glapi/glfake.
package glapi

import "github.com/go-gl/mathgl/mgl32"

// Enum is a GL enumerant. Values match the OpenGL 4.1 core headers.
type Enum = uint32

const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893

	StaticDraw  Enum = 0x88E4
	DynamicDraw Enum = 0x88E8

	Byte                     Enum = 0x1400
	UnsignedByte             Enum = 0x1401
	Float                    Enum = 0x1406
	UnsignedInt2_10_10_10Rev Enum = 0x8368

	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30

	Triangles Enum = 0x0004

	DepthBufferBit Enum = 0x00000100
	ColorBufferBit Enum = 0x00004000

	Blend            Enum = 0x0BE2
	DepthTest        Enum = 0x0B71
	SrcAlpha         Enum = 0x0302
	OneMinusSrcAlpha Enum = 0x0303

	RGBA Enum = 0x1908
)

// GL is the process-wide graphics context handle.
//
// All methods must be called from the thread that owns the context.
type GL interface {
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	BufferData(target Enum, data []byte, usage Enum)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)

	// CompileShader creates a shader object of the given kind, compiles
	// source into it and returns the object together with the compiler
	// status. On failure log holds the complete info log and the object has
	// already been deleted.
	CompileShader(kind Enum, source string) (id uint32, ok bool, log string)
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// LinkProgram links program and returns the link status with the full
	// info log on failure.
	LinkProgram(program uint32) (ok bool, log string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32

	Uniform1f(location int32, v float32)
	Uniform1ui(location int32, v uint32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	DrawArrays(mode Enum, first, count int32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	ReadPixels(x, y, width, height int32, format, xtype Enum, dst []byte)
}
