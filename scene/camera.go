package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fovY = math.Pi / 2
	near = 0.1
	far  = 10000

	orthoBase = 10
)

type Camera struct {
	Location    mgl32.Vec3
	Orientation Orientation
}

// View returns the translation and rotation that move the world into
// camera space.
func (c Camera) View() (translation, rotation mgl32.Mat4) {
	translation = mgl32.Translate3D(-c.Location.X(), -c.Location.Y(), -c.Location.Z())
	rotation = c.Orientation.Rotation().Transpose()
	return translation, rotation
}

// Normalize wraps the camera angles into [0, Tau).
func (c *Camera) Normalize() {
	c.Orientation = c.Orientation.Normalize()
}

// Forward is the direction the camera looks at, -Z in camera space.
func (c Camera) Forward() mgl32.Vec3 {
	return c.Orientation.Rotation().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
}

// Perspective returns the projection used for interactive rendering.
func Perspective(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(fovY, aspect, near, far)
}

// Orthographic returns a parallel projection showing orthoBase units above
// and below the center.
func Orthographic(aspect float32) mgl32.Mat4 {
	return mgl32.Ortho(-orthoBase*aspect, orthoBase*aspect, -orthoBase, orthoBase, near, far)
}
