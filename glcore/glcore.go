// Package glcore implements glapi.GL on top of the go-gl OpenGL 4.1 core bindings.
package glcore

import (
	"fmt"
	"log"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
)

var glInitOnce sync.Once

// GL is the native context handle. It carries no state of its own; the
// current context of the calling thread is what the calls act upon.
type GL struct{}

var _ glapi.GL = GL{}

// Init loads the OpenGL function pointers for the current context. The
// context must already be current on the calling thread.
func Init() (GL, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
		if initErr == nil {
			log.Printf("OpenGL initialized: %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	})
	if initErr != nil {
		return GL{}, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return GL{}, nil
}

func (GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (GL) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (GL) BindBuffer(target glapi.Enum, id uint32) { gl.BindBuffer(target, id) }

func (GL) BufferData(target glapi.Enum, data []byte, usage glapi.Enum) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (GL) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (GL) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (GL) VertexAttribPointer(index uint32, size int32, xtype glapi.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (GL) CompileShader(kind glapi.Enum, source string) (uint32, bool, string) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, false, strings.TrimRight(logText, "\x00")
	}
	return shader, true, ""
}

func (GL) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (GL) CreateProgram() uint32 { return gl.CreateProgram() }

func (GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (GL) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (GL) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		return false, strings.TrimRight(logText, "\x00")
	}
	return true, ""
}

func (GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GL) UseProgram(program uint32) { gl.UseProgram(program) }

func (GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GL) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (GL) Uniform1ui(location int32, v uint32) { gl.Uniform1ui(location, v) }

func (GL) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (GL) Uniform4f(location int32, x, y, z, w float32) { gl.Uniform4f(location, x, y, z, w) }

// UniformMatrix4fv uploads m as-is; mgl32 matrices are already column-major.
func (GL) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (GL) DrawArrays(mode glapi.Enum, first, count int32) { gl.DrawArrays(mode, first, count) }

func (GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (GL) Clear(mask glapi.Enum) { gl.Clear(mask) }

func (GL) Enable(capability glapi.Enum) { gl.Enable(capability) }

func (GL) BlendFunc(sfactor, dfactor glapi.Enum) { gl.BlendFunc(sfactor, dfactor) }

func (GL) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, dst []byte) {
	gl.ReadPixels(x, y, width, height, format, xtype, gl.Ptr(dst))
}
