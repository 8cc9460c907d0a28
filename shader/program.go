package shader

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/resources"
)

// Program is a linked pipeline program. Uniform locations are looked up on
// first use and cached for the life of the program.
type Program struct {
	gl   glapi.GL
	id   uint32
	name string

	locs   map[string]int32
	mapped map[string]string
}

// Link links shaders into a program. On success every stage is detached and
// left for the caller to delete.
func Link(gl glapi.GL, name string, shaders ...*Shader) (*Program, error) {
	id := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(id, s.id)
	}
	if ok, msg := gl.LinkProgram(id); !ok {
		gl.DeleteProgram(id)
		return nil, &LinkError{Name: name, Log: msg}
	}
	for _, s := range shaders {
		gl.DetachShader(id, s.id)
	}

	p := &Program{
		gl:     gl,
		id:     id,
		name:   name,
		locs:   make(map[string]int32),
		mapped: make(map[string]string),
	}
	for _, s := range shaders {
		for from, to := range s.uniforms {
			p.mapped[from] = to
		}
	}
	return p, nil
}

// ProgramFromResource compiles name+".vert" and name+".frag" and links them.
// The stage objects are deleted once the program exists.
func ProgramFromResource(gl glapi.GL, res resources.Loader, name string, opts ...Option) (*Program, error) {
	var shaders []*Shader
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()
	for _, ext := range stageExtensions {
		s, err := FromResource(gl, res, name+ext.ext, opts...)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, s)
	}

	p, err := Link(gl, name, shaders...)
	if err != nil {
		return nil, err
	}
	log.Printf("Linked program %s", name)
	return p, nil
}

func (p *Program) ID() uint32 { return p.id }

func (p *Program) Name() string { return p.name }

// Use makes p the active program.
func (p *Program) Use() {
	p.gl.UseProgram(p.id)
}

// UniformLocation resolves name to a location. Repeated calls for the same
// name return the same value without querying the driver again.
func (p *Program) UniformLocation(name string) (int32, error) {
	if loc, ok := p.locs[name]; ok {
		return loc, nil
	}
	base, index, _ := strings.Cut(name, "[")
	query := name
	if m, ok := p.mapped[base]; ok {
		query = m
		if index != "" {
			query += "[" + index
		}
	}
	loc := p.gl.GetUniformLocation(p.id, query)
	if loc < 0 {
		return -1, &UniformNotFoundError{Name: name}
	}
	p.locs[name] = loc
	return loc, nil
}

// MustUniformLocation is like UniformLocation but panics on a missing name.
func (p *Program) MustUniformLocation(name string) int32 {
	loc, err := p.UniformLocation(name)
	if err != nil {
		panic(fmt.Sprintf("program %s: %v", p.name, err))
	}
	return loc
}

// The setters below write to the active program; callers activate it first.

func (p *Program) SetFloat(loc int32, v float32) { p.gl.Uniform1f(loc, v) }

func (p *Program) SetUint(loc int32, v uint32) { p.gl.Uniform1ui(loc, v) }

func (p *Program) SetVec3(loc int32, v mgl32.Vec3) { p.gl.Uniform3f(loc, v[0], v[1], v[2]) }

func (p *Program) SetVec4(loc int32, v mgl32.Vec4) { p.gl.Uniform4f(loc, v[0], v[1], v[2], v[3]) }

func (p *Program) SetMat4(loc int32, m mgl32.Mat4) { p.gl.UniformMatrix4fv(loc, m) }

// Indexed setters write element index of the array uniform at base.

func (p *Program) SetFloatAt(base int32, index int, v float32) {
	p.SetFloat(base+int32(index), v)
}

func (p *Program) SetVec3At(base int32, index int, v mgl32.Vec3) {
	p.SetVec3(base+int32(index), v)
}

func (p *Program) SetVec4At(base int32, index int, v mgl32.Vec4) {
	p.SetVec4(base+int32(index), v)
}

// Delete releases the program. Later calls do nothing.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.gl.DeleteProgram(p.id)
	p.id = 0
}
