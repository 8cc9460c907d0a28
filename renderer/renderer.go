package renderer

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/draw"
	"github.com/richinsley/glscene/game"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/graphics"
	"github.com/richinsley/glscene/scene"
)

// ClearColor is the background of every frame.
var ClearColor = mgl32.Vec4{0.04, 0.05, 0.04, 1}

// Renderer draws a game: its cubes lit by its spotlights, and a marker
// cube for every light.
type Renderer struct {
	gl   glapi.GL
	game *game.Game

	objects    *draw.Objects
	spotlights *draw.Spotlights

	width, height int
	// Projection builds the projection for an aspect ratio.
	Projection func(aspect float32) mgl32.Mat4
}

// setupState enables alpha blending and depth testing and sets the clear color.
func setupState(gl glapi.GL) {
	gl.Enable(glapi.Blend)
	gl.BlendFunc(glapi.SrcAlpha, glapi.OneMinusSrcAlpha)
	gl.Enable(glapi.DepthTest)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
}

// New compiles the programs, uploads the scene geometry and sets the
// viewport to width x height.
func New(gl glapi.GL, shaders draw.Shaders, g *game.Game, width, height int) (*Renderer, error) {
	setupState(gl)

	objects, err := draw.NewObjects(gl, shaders, g.Mesh.Vertices)
	if err != nil {
		return nil, fmt.Errorf("failed to create object renderer: %w", err)
	}
	spotlights, err := draw.NewSpotlights(gl, shaders, game.MarkerVertices())
	if err != nil {
		objects.Delete()
		return nil, fmt.Errorf("failed to create spotlight renderer: %w", err)
	}

	r := &Renderer{
		gl:         gl,
		game:       g,
		objects:    objects,
		spotlights: spotlights,
		Projection: scene.Perspective,
	}
	r.Resize(width, height)
	log.Printf("Renderer ready: %d cubes, %d lights, %dx%d", len(g.Cubes), len(g.Lights), width, height)
	return r, nil
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Resize updates the viewport and the projection of both programs. A zero
// size (minimized window) is ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.gl.Viewport(0, 0, int32(width), int32(height))
	proj := r.Projection(float32(width) / float32(height))
	r.objects.SetProjection(proj)
	r.spotlights.SetProjection(proj)
}

// RenderFrame clears the framebuffer and draws the scene once.
func (r *Renderer) RenderFrame() {
	r.gl.Clear(glapi.ColorBufferBit | glapi.DepthBufferBit)

	viewTranslation, viewRotation := r.game.Camera.View()

	r.objects.SetView(viewTranslation, viewRotation)
	r.objects.SetSpotlights(r.game.Spotlights())
	r.objects.PrepareForDraws()
	for _, c := range r.game.Cubes {
		scale, translation, rotation := c.Spatial.Model()
		r.objects.Draw(scale, translation, rotation, c.Part.Count, c.Part.Offset)
	}

	r.spotlights.SetView(viewTranslation, viewRotation)
	r.spotlights.PrepareForDraws()
	for _, l := range r.game.Lights {
		r.spotlights.SetSolidColor(l.Color.Vec4())
		scale, translation, rotation := l.Marker().Model()
		r.spotlights.Draw(scale, translation, rotation, scene.CubeVertexCount, 0)
	}
}

// Run renders until the window is closed, advancing the game with the
// context's timer before each frame.
func (r *Renderer) Run(ctx graphics.Context) {
	for !ctx.ShouldClose() {
		now, _ := ctx.Timer()
		r.game.Process(now)
		r.RenderFrame()
		ctx.EndFrame()
	}
}

// Delete releases the programs, buffers and vertex arrays.
func (r *Renderer) Delete() {
	r.objects.Delete()
	r.spotlights.Delete()
}
