package shader

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi/glfake"
	"github.com/richinsley/glscene/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertSrc = `#version 410 core
layout (location = 0) in vec3 Position;
uniform mat4 projection;
uniform float model_scale;
void main() { gl_Position = projection * vec4(Position * model_scale, 1.0); }
`

const fragSrc = `#version 410 core
uniform vec4 solid_color;
uniform vec3 light_positions[4];
uniform uint lights_count;
out vec4 Color;
void main() { Color = solid_color; }
`

func testResources() *resources.Resources {
	return resources.FromFS(fstest.MapFS{
		"shaders/basic.vert":  {Data: []byte(vertSrc)},
		"shaders/basic.frag":  {Data: []byte(fragSrc)},
		"shaders/broken.vert": {Data: []byte(vertSrc)},
		"shaders/broken.frag": {Data: []byte("#version 410 core\nvoid main() {\n#error nope\n}\n")},
		"shaders/lonely.vert": {Data: []byte(vertSrc)},
	})
}

func TestStageFromName(t *testing.T) {
	s, err := StageFromName("shaders/objects.vert")
	require.NoError(t, err)
	assert.Equal(t, Vertex, s)

	s, err = StageFromName("objects.frag")
	require.NoError(t, err)
	assert.Equal(t, Fragment, s)

	_, err = StageFromName("objects.geom")
	var unknown *UnknownStageKindError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "objects.geom", unknown.Name)
}

func TestFromResourceUnknownStageReadsNothing(t *testing.T) {
	gl := glfake.New()
	_, err := FromResource(gl, testResources(), "shaders/missing.geom")
	var unknown *UnknownStageKindError
	assert.ErrorAs(t, err, &unknown)
}

func TestCompileErrorCarriesLog(t *testing.T) {
	gl := glfake.New()
	_, err := Compile(gl, "bad.frag", "void main() {\n#error broken here\n}", Fragment)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, Fragment, cerr.Stage)
	assert.Contains(t, cerr.Log, "error")
	assert.Contains(t, cerr.Log, "broken here")
	assert.Contains(t, err.Error(), "fragment")
}

func TestProgramFromResource(t *testing.T) {
	gl := glfake.New()
	p, err := ProgramFromResource(gl, testResources(), "shaders/basic")
	require.NoError(t, err)
	require.NotZero(t, p.ID())

	assert.Len(t, gl.Detached[p.ID()], 2)
	assert.Len(t, gl.DeletedShaders, 2)
	for _, n := range gl.DeletedShaders {
		assert.Equal(t, 1, n)
	}
}

func TestProgramFromResourceMissingStage(t *testing.T) {
	gl := glfake.New()
	_, err := ProgramFromResource(gl, testResources(), "shaders/lonely")
	var lerr *ResourceLoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "shaders/lonely.frag", lerr.Name)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	// the vertex stage that did compile is still released
	assert.Len(t, gl.DeletedShaders, 1)
}

func TestProgramFromResourceCompileFailure(t *testing.T) {
	gl := glfake.New()
	_, err := ProgramFromResource(gl, testResources(), "shaders/broken")
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "shaders/broken.frag", cerr.Name)
	assert.Contains(t, cerr.Log, "#error nope")
}

func TestLinkFailure(t *testing.T) {
	gl := glfake.New()
	gl.FailLink = "error: vertex output Color not consumed"
	_, err := ProgramFromResource(gl, testResources(), "shaders/basic")
	var lerr *LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "shaders/basic", lerr.Name)
	assert.Contains(t, lerr.Log, "error")
	assert.Len(t, gl.DeletedPrograms, 1)
}

func TestLinkRequiresBothStages(t *testing.T) {
	gl := glfake.New()
	vs, err := Compile(gl, "v", vertSrc, Vertex)
	require.NoError(t, err)
	_, err = Link(gl, "only-vertex", vs)
	var lerr *LinkError
	assert.ErrorAs(t, err, &lerr)
}

func TestUniformLocation(t *testing.T) {
	gl := glfake.New()
	p, err := ProgramFromResource(gl, testResources(), "shaders/basic")
	require.NoError(t, err)

	first, err := p.UniformLocation("solid_color")
	require.NoError(t, err)
	second, err := p.UniformLocation("solid_color")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int32(0))

	proj := p.MustUniformLocation("projection")
	assert.NotEqual(t, first, proj)

	_, err = p.UniformLocation("no_such_uniform")
	var nf *UniformNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "no_such_uniform", nf.Name)

	_, again := p.UniformLocation("no_such_uniform")
	var nfAgain *UniformNotFoundError
	require.ErrorAs(t, again, &nfAgain)
	assert.Equal(t, err.Error(), again.Error())

	assert.Panics(t, func() { p.MustUniformLocation("no_such_uniform") })
}

func TestSetters(t *testing.T) {
	gl := glfake.New()
	p, err := ProgramFromResource(gl, testResources(), "shaders/basic")
	require.NoError(t, err)
	p.Use()
	assert.Equal(t, p.ID(), gl.CurrentProgram())

	scale := p.MustUniformLocation("model_scale")
	p.SetFloat(scale, 2.5)
	v, ok := gl.Uniform(p.ID(), scale)
	require.True(t, ok)
	assert.Equal(t, float32(2.5), v)

	count := p.MustUniformLocation("lights_count")
	p.SetUint(count, 3)
	v, _ = gl.Uniform(p.ID(), count)
	assert.Equal(t, uint32(3), v)

	color := p.MustUniformLocation("solid_color")
	p.SetVec4(color, mgl32.Vec4{1, 0.5, 0.25, 1})
	v, _ = gl.Uniform(p.ID(), color)
	assert.Equal(t, mgl32.Vec4{1, 0.5, 0.25, 1}, v)

	proj := p.MustUniformLocation("projection")
	p.SetMat4(proj, mgl32.Ident4())
	v, _ = gl.Uniform(p.ID(), proj)
	assert.Equal(t, mgl32.Ident4(), v)
}

func TestIndexedSetterAddressesElement(t *testing.T) {
	gl := glfake.New()
	p, err := ProgramFromResource(gl, testResources(), "shaders/basic")
	require.NoError(t, err)
	p.Use()

	base := p.MustUniformLocation("light_positions")
	p.SetVec3At(base, 2, mgl32.Vec3{1, 2, 3})

	elem := p.MustUniformLocation("light_positions[2]")
	assert.Equal(t, base+2, elem)
	v, ok := gl.Uniform(p.ID(), elem)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v)

	_, ok = gl.Uniform(p.ID(), base)
	assert.False(t, ok)
}

type renamingTranslator struct{}

func (renamingTranslator) Translate(source string, stage Stage) (*Translation, error) {
	return &Translation{
		Code:     source,
		Uniforms: map[string]string{"solid_color": "solid_color"},
	}, nil
}

type failingTranslator struct{}

func (failingTranslator) Translate(string, Stage) (*Translation, error) {
	return nil, errors.New("unsupported construct")
}

func TestTranslatorHook(t *testing.T) {
	gl := glfake.New()
	p, err := ProgramFromResource(gl, testResources(), "shaders/basic", WithTranslator(renamingTranslator{}))
	require.NoError(t, err)
	_, err = p.UniformLocation("solid_color")
	assert.NoError(t, err)

	_, err = ProgramFromResource(gl, testResources(), "shaders/basic", WithTranslator(failingTranslator{}))
	assert.ErrorContains(t, err, "unsupported construct")
}

func TestProgramDeleteOnce(t *testing.T) {
	gl := glfake.New()
	p, err := ProgramFromResource(gl, testResources(), "shaders/basic")
	require.NoError(t, err)
	id := p.ID()
	p.Delete()
	p.Delete()
	assert.Equal(t, 1, gl.DeletedPrograms[id])
}
