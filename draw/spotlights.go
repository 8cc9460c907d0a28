package draw

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/vertex"
)

// Spotlights draws light markers filled with a single color.
type Spotlights struct {
	*objects
	solidColor int32
}

func NewSpotlights(gl glapi.GL, shaders Shaders, vertices []vertex.Lit) (*Spotlights, error) {
	program, err := shaders.program(gl, "spotlight")
	if err != nil {
		return nil, err
	}
	d := &Spotlights{}
	if err := locate(program, uniform{"solid_color", &d.solidColor}); err != nil {
		program.Delete()
		return nil, err
	}
	if d.objects, err = newObjects(gl, program, vertices); err != nil {
		program.Delete()
		return nil, err
	}
	return d, nil
}

func (d *Spotlights) PrepareForDraws() { d.prepareForDraws() }

// SetSolidColor sets the fill of the next marker.
func (d *Spotlights) SetSolidColor(c mgl32.Vec4) {
	d.program.Use()
	d.program.SetVec4(d.solidColor, c)
}

func (d *Spotlights) Draw(scale float32, translation, rotation mgl32.Mat4, count, offset int) {
	d.draw(scale, translation, rotation, count, offset)
}

func (d *Spotlights) SetView(translation, rotation mgl32.Mat4) { d.setView(translation, rotation) }

func (d *Spotlights) SetProjection(projection mgl32.Mat4) { d.setProjection(projection) }

func (d *Spotlights) Delete() { d.delete() }
