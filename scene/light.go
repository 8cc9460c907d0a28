package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/draw"
)

// Spotlight is a point light orbiting Center in the XY plane.
type Spotlight struct {
	Center mgl32.Vec3
	Orbit  float32
	Angle  float32
	// Radius is how far the light reaches.
	Radius float32
	Color  Color
}

// Location is the current position on the orbit.
func (s Spotlight) Location() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(s.Angle))
	return s.Center.Add(mgl32.Vec3{s.Orbit * float32(cos), s.Orbit * float32(sin), 0})
}

// MarkerScale is the size of the cube drawn where the light is.
func (s Spotlight) MarkerScale() float32 { return s.Radius / 50 }

func (s Spotlight) Light() draw.Light {
	return draw.Light{Radius: s.Radius, Color: s.Color.Vec4()}
}

// Advance moves the light along its orbit by angle radians.
func (s *Spotlight) Advance(angle float32) {
	s.Angle = wrap(s.Angle + angle)
}
