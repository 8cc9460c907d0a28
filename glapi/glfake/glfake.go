// Package glfake provides an in-memory glapi.GL that records every call.
//
// It lets the pipeline run without a device: handles are allocated from a
// counter, buffer uploads are kept per buffer, uniform writes are kept per
// program and location, and draw calls are appended to a log.
package glfake

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
)

// AttribPointer is one recorded VertexAttribPointer call.
type AttribPointer struct {
	VAO        uint32
	Buffer     uint32
	Index      uint32
	Size       int32
	Type       glapi.Enum
	Normalized bool
	Stride     int32
	Offset     int
}

// Upload is one recorded BufferData call.
type Upload struct {
	Buffer uint32
	Target glapi.Enum
	Data   []byte
	Usage  glapi.Enum
}

// DrawCall is one recorded DrawArrays call with the state it ran under.
type DrawCall struct {
	Mode    glapi.Enum
	First   int32
	Count   int32
	Program uint32
	VAO     uint32
	Buffer  uint32
}

// UniformKey addresses a uniform slot of a program.
type UniformKey struct {
	Program  uint32
	Location int32
}

type shaderObject struct {
	kind   glapi.Enum
	source string
}

type programObject struct {
	attached map[uint32]bool
	linked   bool
	uniforms map[string]int32
}

// GL is the recording implementation. The zero value is not usable; call New.
type GL struct {
	next uint32

	buffers  map[uint32]bool
	vaos     map[uint32]bool
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject

	bound       map[glapi.Enum]uint32
	boundVAO    uint32
	current     uint32
	enabledAttr map[uint32]map[uint32]bool

	// BufferContents holds the latest upload for each buffer handle.
	BufferContents map[uint32][]byte
	Uploads        []Upload
	Attribs        []AttribPointer
	Draws          []DrawCall
	// Uniforms holds the last value written to each slot: float32, uint32,
	// mgl32.Vec3, mgl32.Vec4 or mgl32.Mat4.
	Uniforms      map[UniformKey]any
	UniformWrites int

	DeletedBuffers  map[uint32]int
	DeletedVAOs     map[uint32]int
	DeletedShaders  map[uint32]int
	DeletedPrograms map[uint32]int
	Detached        map[uint32][]uint32
	Enabled         map[glapi.Enum]bool
	ClearColorValue [4]float32
	Clears          int
	ViewportValue   [4]int32

	// Pixels is returned by ReadPixels, cycling if shorter than dst.
	Pixels []byte

	// FailLink makes every LinkProgram call fail with this log when non-empty.
	FailLink string
}

var _ glapi.GL = (*GL)(nil)

// New returns an empty recording context.
func New() *GL {
	return &GL{
		buffers:         make(map[uint32]bool),
		vaos:            make(map[uint32]bool),
		shaders:         make(map[uint32]*shaderObject),
		programs:        make(map[uint32]*programObject),
		bound:           make(map[glapi.Enum]uint32),
		enabledAttr:     make(map[uint32]map[uint32]bool),
		BufferContents:  make(map[uint32][]byte),
		Uniforms:        make(map[UniformKey]any),
		DeletedBuffers:  make(map[uint32]int),
		DeletedVAOs:     make(map[uint32]int),
		DeletedShaders:  make(map[uint32]int),
		DeletedPrograms: make(map[uint32]int),
		Detached:        make(map[uint32][]uint32),
		Enabled:         make(map[glapi.Enum]bool),
	}
}

func (g *GL) handle() uint32 {
	g.next++
	return g.next
}

// Bound reports the buffer currently bound at target.
func (g *GL) Bound(target glapi.Enum) uint32 { return g.bound[target] }

// BoundVAO reports the currently bound vertex array.
func (g *GL) BoundVAO() uint32 { return g.boundVAO }

// CurrentProgram reports the program last passed to UseProgram.
func (g *GL) CurrentProgram() uint32 { return g.current }

// AttribEnabled reports whether index was enabled while vao was bound.
func (g *GL) AttribEnabled(vao, index uint32) bool { return g.enabledAttr[vao][index] }

// Uniform returns the last value written at location of program.
func (g *GL) Uniform(program uint32, location int32) (any, bool) {
	v, ok := g.Uniforms[UniformKey{program, location}]
	return v, ok
}

func (g *GL) GenBuffer() uint32 {
	id := g.handle()
	g.buffers[id] = true
	return id
}

func (g *GL) DeleteBuffer(id uint32) {
	g.DeletedBuffers[id]++
	delete(g.buffers, id)
	for target, b := range g.bound {
		if b == id {
			g.bound[target] = 0
		}
	}
}

func (g *GL) BindBuffer(target glapi.Enum, id uint32) { g.bound[target] = id }

func (g *GL) BufferData(target glapi.Enum, data []byte, usage glapi.Enum) {
	id := g.bound[target]
	cp := append([]byte(nil), data...)
	g.BufferContents[id] = cp
	g.Uploads = append(g.Uploads, Upload{Buffer: id, Target: target, Data: cp, Usage: usage})
}

func (g *GL) GenVertexArray() uint32 {
	id := g.handle()
	g.vaos[id] = true
	return id
}

func (g *GL) DeleteVertexArray(id uint32) {
	g.DeletedVAOs[id]++
	delete(g.vaos, id)
	if g.boundVAO == id {
		g.boundVAO = 0
	}
}

func (g *GL) BindVertexArray(id uint32) { g.boundVAO = id }

func (g *GL) EnableVertexAttribArray(index uint32) {
	m, ok := g.enabledAttr[g.boundVAO]
	if !ok {
		m = make(map[uint32]bool)
		g.enabledAttr[g.boundVAO] = m
	}
	m[index] = true
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype glapi.Enum, normalized bool, stride int32, offset int) {
	g.Attribs = append(g.Attribs, AttribPointer{
		VAO:        g.boundVAO,
		Buffer:     g.bound[glapi.ArrayBuffer],
		Index:      index,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

// CompileShader fails when the source contains the token "#error" or a line
// that does not parse as GLSL-ish text (unbalanced braces).
func (g *GL) CompileShader(kind glapi.Enum, source string) (uint32, bool, string) {
	if msg := diagnose(source); msg != "" {
		return 0, false, msg
	}
	id := g.handle()
	g.shaders[id] = &shaderObject{kind: kind, source: source}
	return id, true, ""
}

func diagnose(source string) string {
	for n, line := range strings.Split(source, "\n") {
		if strings.Contains(line, "#error") {
			return fmt.Sprintf("0:%d(1): error: %s", n+1, strings.TrimSpace(line))
		}
	}
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return "0:0(0): error: syntax error, unexpected end of file"
	}
	if strings.Count(source, "(") != strings.Count(source, ")") {
		return "0:0(0): error: syntax error, unbalanced parentheses"
	}
	return ""
}

func (g *GL) DeleteShader(id uint32) {
	g.DeletedShaders[id]++
	delete(g.shaders, id)
}

func (g *GL) CreateProgram() uint32 {
	id := g.handle()
	g.programs[id] = &programObject{attached: make(map[uint32]bool)}
	return id
}

func (g *GL) AttachShader(program, shader uint32) {
	if p, ok := g.programs[program]; ok {
		p.attached[shader] = true
	}
}

func (g *GL) DetachShader(program, shader uint32) {
	if p, ok := g.programs[program]; ok {
		delete(p.attached, shader)
	}
	g.Detached[program] = append(g.Detached[program], shader)
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*(\[\s*(\d+)\s*\])?\s*;`)

// LinkProgram assigns locations to every uniform declared by the attached
// shaders in declaration order. Arrays take consecutive locations.
func (g *GL) LinkProgram(program uint32) (bool, string) {
	p, ok := g.programs[program]
	if !ok {
		return false, "error: invalid program object"
	}
	if g.FailLink != "" {
		return false, g.FailLink
	}
	kinds := make(map[glapi.Enum]bool)
	p.uniforms = make(map[string]int32)
	var next int32
	for id := range p.attached {
		s := g.shaders[id]
		if s == nil {
			continue
		}
		kinds[s.kind] = true
	}
	if !kinds[glapi.VertexShader] || !kinds[glapi.FragmentShader] {
		return false, "error: program must have a vertex and a fragment shader"
	}
	// deterministic order: vertex stage first, then fragment
	for _, kind := range []glapi.Enum{glapi.VertexShader, glapi.FragmentShader} {
		for id := range p.attached {
			s := g.shaders[id]
			if s == nil || s.kind != kind {
				continue
			}
			for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
				name := m[1]
				if _, seen := p.uniforms[name]; seen {
					continue
				}
				n := int32(1)
				if m[3] != "" {
					fmt.Sscanf(m[3], "%d", &n)
				}
				p.uniforms[name] = next
				next += n
			}
		}
	}
	p.linked = true
	return true, ""
}

func (g *GL) DeleteProgram(program uint32) {
	g.DeletedPrograms[program]++
	delete(g.programs, program)
}

func (g *GL) UseProgram(program uint32) { g.current = program }

func (g *GL) GetUniformLocation(program uint32, name string) int32 {
	p, ok := g.programs[program]
	if !ok || !p.linked {
		return -1
	}
	base := name
	var index int32
	if i := strings.IndexByte(name, '['); i >= 0 {
		base = name[:i]
		fmt.Sscanf(name[i:], "[%d]", &index)
	}
	loc, ok := p.uniforms[base]
	if !ok {
		return -1
	}
	return loc + index
}

func (g *GL) setUniform(location int32, v any) {
	if location < 0 {
		return
	}
	g.UniformWrites++
	g.Uniforms[UniformKey{g.current, location}] = v
}

func (g *GL) Uniform1f(location int32, v float32) { g.setUniform(location, v) }

func (g *GL) Uniform1ui(location int32, v uint32) { g.setUniform(location, v) }

func (g *GL) Uniform3f(location int32, x, y, z float32) {
	g.setUniform(location, mgl32.Vec3{x, y, z})
}

func (g *GL) Uniform4f(location int32, x, y, z, w float32) {
	g.setUniform(location, mgl32.Vec4{x, y, z, w})
}

func (g *GL) UniformMatrix4fv(location int32, m mgl32.Mat4) { g.setUniform(location, m) }

func (g *GL) DrawArrays(mode glapi.Enum, first, count int32) {
	g.Draws = append(g.Draws, DrawCall{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: g.current,
		VAO:     g.boundVAO,
		Buffer:  g.bound[glapi.ArrayBuffer],
	})
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.ViewportValue = [4]int32{x, y, width, height}
}

func (g *GL) ClearColor(r, gr, b, a float32) { g.ClearColorValue = [4]float32{r, gr, b, a} }

func (g *GL) Clear(mask glapi.Enum) { g.Clears++ }

func (g *GL) Enable(capability glapi.Enum) { g.Enabled[capability] = true }

func (g *GL) BlendFunc(sfactor, dfactor glapi.Enum) {}

func (g *GL) ReadPixels(x, y, width, height int32, format, xtype glapi.Enum, dst []byte) {
	if len(g.Pixels) == 0 {
		return
	}
	for i := range dst {
		dst[i] = g.Pixels[i%len(g.Pixels)]
	}
}
