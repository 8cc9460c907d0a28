package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/draw"
	"github.com/richinsley/glscene/game"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/graphics"
	"github.com/richinsley/glscene/scene"
	"github.com/richinsley/glscene/vertex"
)

// Triangles is the unlit demo: flat triangles turned on the CPU by the
// game camera's orientation and uploaded again every frame.
type Triangles struct {
	gl        glapi.GL
	game      *game.Game
	draw      *draw.Triangles
	triangles []scene.Triangle
	vertices  []vertex.Colored
}

// DemoTriangles returns count triangles spread evenly around the Z axis.
func DemoTriangles(count int) []scene.Triangle {
	colors := []scene.Color{scene.RGB(0.9, 0.2, 0.4), scene.RGB(0.2, 0.9, 0.4), scene.RGB(0.2, 0.4, 0.9)}
	tris := make([]scene.Triangle, 0, count)
	for i := range count {
		rot := mgl32.Rotate3DZ(float32(i) * scene.Tau / float32(count))
		tris = append(tris, scene.Triangle{
			A:     rot.Mul3x1(mgl32.Vec3{0.1, 0, 0}),
			B:     rot.Mul3x1(mgl32.Vec3{0.7, -0.3, 0}),
			C:     rot.Mul3x1(mgl32.Vec3{0.7, 0.3, 0}),
			Color: colors[i%len(colors)],
		})
	}
	return tris
}

func NewTriangles(gl glapi.GL, shaders draw.Shaders, g *game.Game, triangles []scene.Triangle) (*Triangles, error) {
	setupState(gl)
	d, err := draw.NewTriangles(gl, shaders)
	if err != nil {
		return nil, err
	}
	return &Triangles{gl: gl, game: g, draw: d, triangles: triangles}, nil
}

// Vertices returns the current, rotated batch.
func (t *Triangles) Vertices() []vertex.Colored {
	rot := t.game.Camera.Orientation.Rotation().Mat3()
	t.vertices = t.vertices[:0]
	for _, tri := range t.triangles {
		tri.A, tri.B, tri.C = rot.Mul3x1(tri.A), rot.Mul3x1(tri.B), rot.Mul3x1(tri.C)
		u := tri.Unlit()
		t.vertices = append(t.vertices, u[:]...)
	}
	return t.vertices
}

func (t *Triangles) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	side := int32(math.Min(float64(width), float64(height)))
	t.gl.Viewport((int32(width)-side)/2, (int32(height)-side)/2, side, side)
}

func (t *Triangles) RenderFrame() {
	t.gl.Clear(glapi.ColorBufferBit | glapi.DepthBufferBit)
	t.draw.Draw(t.Vertices())
}

func (t *Triangles) Run(ctx graphics.Context) {
	for !ctx.ShouldClose() {
		now, _ := ctx.Timer()
		t.game.Process(now)
		t.RenderFrame()
		ctx.EndFrame()
	}
}

func (t *Triangles) Delete() { t.draw.Delete() }
