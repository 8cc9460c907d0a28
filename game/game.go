// Package game holds the simulation: cubes, orbiting lights and a camera
// steered by abstract controls, advanced in fixed ticks.
package game

import (
	"iter"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/draw"
	"github.com/richinsley/glscene/scene"
	"github.com/richinsley/glscene/vertex"
)

const (
	SpinPerSecond     = scene.Tau / 2
	SpinPerMousePixel = scene.Tau / 300
)

// Cube is one drawn object and the part of the shared mesh it uses.
type Cube struct {
	Spatial scene.Spatial
	Part    scene.Range
}

// Light is a spotlight with its own orbit speed in radians per second.
type Light struct {
	scene.Spotlight
	Spin float32
}

// Marker places the cube that shows where the light is.
func (l Light) Marker() scene.Spatial {
	return scene.Spatial{
		Location:    l.Location(),
		Orientation: scene.Orientation{Roll: l.Angle},
		Scale:       l.MarkerScale(),
	}
}

type Game struct {
	Camera scene.Camera
	Cubes  []Cube
	Lights []Light
	// Mesh holds the geometry of every cube, one part each.
	Mesh scene.Mesh

	time *GameTime

	keys      KeyStack
	mouseDown bool

	pitchPerSecond float32
	yawPerSecond   float32
	rollPerSecond  float32

	vsync bool
}

// New builds the scene described by cfg. now and frequency describe the
// monotonic counter used by Process.
func New(cfg *Config, now, frequency uint64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		Camera: scene.Camera{
			Location:    vec3(cfg.Camera.Location),
			Orientation: cfg.Camera.Orientation.orientation(),
		},
		time: NewGameTime(frequency, cfg.TickLengthUS, now),
	}
	for _, c := range cfg.Cubes {
		colors := DefaultPalette
		for f, clr := range c.Colors {
			colors[f] = color(clr)
		}
		g.Cubes = append(g.Cubes, Cube{
			Spatial: scene.Spatial{
				Location:    vec3(c.Location),
				Orientation: c.Orientation.orientation(),
				Scale:       c.Scale,
			},
			Part: g.Mesh.Add(scene.Cube(colors)),
		})
	}
	for _, l := range cfg.Lights {
		g.Lights = append(g.Lights, Light{
			Spotlight: scene.Spotlight{
				Center: vec3(l.Center),
				Orbit:  l.Orbit,
				Angle:  l.Angle,
				Radius: l.Radius,
				Color:  color(l.Color),
			},
			Spin: l.Spin,
		})
	}
	log.Printf("Scene has %d cubes and %d lights", len(g.Cubes), len(g.Lights))
	return g, nil
}

// MarkerVertices is the geometry drawn for every light.
func MarkerVertices() []vertex.Lit {
	return scene.SolidCube(scene.RGB(1, 1, 1))
}

// Process advances the simulation to the counter value now.
func (g *Game) Process(now uint64) {
	ticks := g.time.Update(now)
	if ticks == 0 {
		return
	}
	dt := g.time.TickSeconds * float32(ticks)

	o := g.Camera.Orientation
	o.Pitch += g.pitchPerSecond * dt
	o.Yaw += g.yawPerSecond * dt
	o.Roll += g.rollPerSecond * dt
	g.Camera.Orientation = o
	g.Camera.Normalize()

	for i := range g.Lights {
		g.Lights[i].Advance(g.Lights[i].Spin * dt)
	}
}

// Spotlights yields every light with its current position.
func (g *Game) Spotlights() iter.Seq2[draw.Light, mgl32.Vec3] {
	return func(yield func(draw.Light, mgl32.Vec3) bool) {
		for _, l := range g.Lights {
			if !yield(l.Light(), l.Location()) {
				return
			}
		}
	}
}

func (g *Game) KeyDown(k GameKey) {
	g.keys = g.keys.Press(k)
	g.steer()
}

func (g *Game) KeyUp(k GameKey) {
	g.keys = g.keys.Depress(k)
	g.steer()
}

func (g *Game) MouseButton(down bool) { g.mouseDown = down }

// MouseMoved turns the camera by a relative cursor movement while a mouse
// button is held.
func (g *Game) MouseMoved(dx, dy float64) {
	if !g.mouseDown {
		return
	}
	keys := g.keys.Normalize()
	if keys.IsPressed(RollModifier) {
		g.Camera.Orientation.Roll += SpinPerMousePixel * float32(dx)
	} else {
		g.Camera.Orientation.Yaw += SpinPerMousePixel * float32(dx)
	}
	g.Camera.Orientation.Pitch += SpinPerMousePixel * float32(dy)
	g.Camera.Normalize()
}

// ToggleVsync flips the vsync setting and returns the new value.
func (g *Game) ToggleVsync() bool {
	g.vsync = !g.vsync
	return g.vsync
}

func (g *Game) SetVsync(on bool) { g.vsync = on }

func (g *Game) Vsync() bool { return g.vsync }

// Rates reports the current pitch, yaw and roll speeds in radians per second.
func (g *Game) Rates() (pitch, yaw, roll float32) {
	return g.pitchPerSecond, g.yawPerSecond, g.rollPerSecond
}

func (g *Game) steer() {
	keys := g.keys.Normalize()

	switch {
	case keys.IsPressed(Up):
		g.pitchPerSecond = SpinPerSecond
	case keys.IsPressed(Down):
		g.pitchPerSecond = -SpinPerSecond
	default:
		g.pitchPerSecond = 0
	}

	var turn float32
	switch {
	case keys.IsPressed(Right):
		turn = SpinPerSecond
	case keys.IsPressed(Left):
		turn = -SpinPerSecond
	}
	g.yawPerSecond, g.rollPerSecond = turn, 0
	if keys.IsPressed(RollModifier) {
		g.yawPerSecond, g.rollPerSecond = 0, turn
	}
}
