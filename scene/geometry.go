package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/vertex"
)

// FlatNormal is the unit normal of the counter-clockwise triangle a, b, c.
// Degenerate triangles have a zero normal.
func FlatNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl32.Vec3{}
}

// Triangle is a single colored face.
type Triangle struct {
	A, B, C mgl32.Vec3
	Color   Color
}

// Vertices returns the three lit vertices sharing the face normal.
func (t Triangle) Vertices() [3]vertex.Lit {
	n := vertex.NewF32x3(FlatNormal(t.A, t.B, t.C))
	clr := t.Color.Packed()
	return [3]vertex.Lit{
		{Pos: vertex.NewF32x3(t.A), Clr: clr, Norm: n},
		{Pos: vertex.NewF32x3(t.B), Clr: clr, Norm: n},
		{Pos: vertex.NewF32x3(t.C), Clr: clr, Norm: n},
	}
}

// Unlit returns the triangle as position and color only.
func (t Triangle) Unlit() [3]vertex.Colored {
	clr := t.Color.Packed()
	return [3]vertex.Colored{
		{Pos: vertex.PointF32x4(t.A), Clr: clr},
		{Pos: vertex.PointF32x4(t.B), Clr: clr},
		{Pos: vertex.PointF32x4(t.C), Clr: clr},
	}
}

// CubeVertexCount is the number of vertices Cube returns.
const CubeVertexCount = 36

// Face indexes the sides of a cube. Front through Bottom face +Z, -Z, -X,
// +X, +Y and -Y.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Top
	Bottom
)

// cubeFaces lists each face as two counter-clockwise triangles seen from
// outside, corners at +-0.5.
var cubeFaces = [6][6]mgl32.Vec3{
	Front: {
		{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5},
		{-.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5},
	},
	Back: {
		{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5},
		{.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5},
	},
	Left: {
		{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5},
		{-.5, -.5, -.5}, {-.5, .5, .5}, {-.5, .5, -.5},
	},
	Right: {
		{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5},
		{.5, -.5, .5}, {.5, .5, -.5}, {.5, .5, .5},
	},
	Top: {
		{-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5},
		{-.5, .5, .5}, {.5, .5, -.5}, {-.5, .5, -.5},
	},
	Bottom: {
		{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5},
		{-.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5},
	},
}

// Cube returns a unit cube centered on the origin, one color per face.
func Cube(colors [6]Color) []vertex.Lit {
	vs := make([]vertex.Lit, 0, CubeVertexCount)
	for f, corners := range cubeFaces {
		for i := 0; i < len(corners); i += 3 {
			t := Triangle{A: corners[i], B: corners[i+1], C: corners[i+2], Color: colors[f]}
			tv := t.Vertices()
			vs = append(vs, tv[:]...)
		}
	}
	return vs
}

// SolidCube is a cube with the same color on every face.
func SolidCube(c Color) []vertex.Lit {
	return Cube([6]Color{c, c, c, c, c, c})
}
