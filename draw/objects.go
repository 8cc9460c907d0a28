package draw

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/vertex"
)

// MaxLights is the size of the light arrays in the lit program.
const MaxLights = 32

// Light is what the lit program needs to know about a point light.
type Light struct {
	Radius float32
	Color  mgl32.Vec4
}

type lights struct {
	count, positions, colors, radiuses int32
}

// Objects draws lit geometry uploaded once at construction.
type Objects struct {
	*objects
	lights lights
}

// NewObjects builds the lit orchestrator over vertices, which stay resident
// for its whole life.
func NewObjects(gl glapi.GL, shaders Shaders, vertices []vertex.Lit) (*Objects, error) {
	program, err := shaders.program(gl, "objects")
	if err != nil {
		return nil, err
	}
	d := &Objects{}
	err = locate(program,
		uniform{"lights_count", &d.lights.count},
		uniform{"light_positions", &d.lights.positions},
		uniform{"light_colors", &d.lights.colors},
		uniform{"light_radiuses", &d.lights.radiuses},
	)
	if err != nil {
		program.Delete()
		return nil, err
	}
	if d.objects, err = newObjects(gl, program, vertices); err != nil {
		program.Delete()
		return nil, err
	}
	return d, nil
}

// PrepareForDraws activates the program, buffer and vertex array once before
// a run of Draw calls.
func (d *Objects) PrepareForDraws() { d.prepareForDraws() }

// Draw renders count vertices starting at offset under the given model
// transform. The range must lie inside the uploaded batch.
func (d *Objects) Draw(scale float32, translation, rotation mgl32.Mat4, count, offset int) {
	d.draw(scale, translation, rotation, count, offset)
}

func (d *Objects) SetView(translation, rotation mgl32.Mat4) { d.setView(translation, rotation) }

func (d *Objects) SetProjection(projection mgl32.Mat4) { d.setProjection(projection) }

// SetSpotlights uploads every light with its world position and then the
// number of lights written. Lights past MaxLights are dropped.
func (d *Objects) SetSpotlights(seq iter.Seq2[Light, mgl32.Vec3]) {
	d.program.Use()
	var n int
	for light, pos := range seq {
		if n == MaxLights {
			break
		}
		d.program.SetVec3At(d.lights.positions, n, pos)
		d.program.SetFloatAt(d.lights.radiuses, n, light.Radius)
		d.program.SetVec4At(d.lights.colors, n, light.Color)
		n++
	}
	d.program.SetUint(d.lights.count, uint32(n))
}

// Delete releases the program, buffer and vertex array.
func (d *Objects) Delete() { d.delete() }
