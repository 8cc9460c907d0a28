// Package scene describes what is drawn: colors, placements, the camera,
// lights and the geometry of the objects.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/vertex"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Color is a straight (not premultiplied) RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4{c.R, c.G, c.B, c.A} }

// Packed converts c to the per-vertex color encoding.
func (c Color) Packed() vertex.U2U10U10U10RevFloat {
	return vertex.PackColor(c.R, c.G, c.B, c.A)
}

// Orientation holds Euler angles in radians.
type Orientation struct {
	Pitch, Yaw, Roll float32
}

// Rotation returns Rz(roll) * Ry(yaw) * Rx(pitch).
func (o Orientation) Rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(o.Roll).
		Mul4(mgl32.HomogRotate3DY(o.Yaw)).
		Mul4(mgl32.HomogRotate3DX(o.Pitch))
}

// Normalize wraps every angle into [0, Tau).
func (o Orientation) Normalize() Orientation {
	return Orientation{wrap(o.Pitch), wrap(o.Yaw), wrap(o.Roll)}
}

func wrap(a float32) float32 {
	w := float32(math.Mod(float64(a), Tau))
	if w < 0 {
		w += Tau
	}
	if w >= Tau {
		w = 0
	}
	return w
}

// Spatial places an object in the world.
type Spatial struct {
	Location    mgl32.Vec3
	Orientation Orientation
	Scale       float32
}

// Model returns the three model uniforms for s.
func (s Spatial) Model() (scale float32, translation, rotation mgl32.Mat4) {
	return s.Scale,
		mgl32.Translate3D(s.Location.X(), s.Location.Y(), s.Location.Z()),
		s.Orientation.Rotation()
}
