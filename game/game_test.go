package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/draw"
	"github.com/richinsley/glscene/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStackPressDepress(t *testing.T) {
	var s KeyStack
	s = s.Press(Left).Press(Up).Press(Left)
	assert.Equal(t, []GameKey{Left, Up}, s.Keys())

	before := s
	after := s.Depress(Left)
	assert.Equal(t, []GameKey{Up}, after.Keys())
	assert.Equal(t, []GameKey{Left, Up}, before.Keys())

	assert.Empty(t, after.Depress(Up).Keys())
	assert.Empty(t, KeyStack{}.Depress(Down).Keys())
}

func TestKeyStackNormalizeKeepsNewestPerGroup(t *testing.T) {
	var s KeyStack
	s = s.Press(Left).Press(Up).Press(RollModifier).Press(Right).Press(Down)

	n := s.Normalize()
	assert.Equal(t, []GameKey{RollModifier, Right, Down}, n.Keys())
	assert.False(t, n.IsPressed(Left))
	assert.True(t, s.IsPressed(Left))

	// releasing the newer key brings the older one back
	n = s.Depress(Right).Normalize()
	assert.True(t, n.IsPressed(Left))

	assert.Empty(t, KeyStack{}.Normalize().Keys())
}

func TestGameTimeCarriesRemainder(t *testing.T) {
	// 1 MHz counter, 100us ticks: 100 counts per tick
	gt := NewGameTime(1_000_000, 100, 1000)
	assert.InDelta(t, 0.0001, gt.TickSeconds, 1e-9)

	assert.Equal(t, uint64(2), gt.Update(1250))
	assert.Equal(t, uint64(0), gt.Update(1290))
	assert.Equal(t, uint64(1), gt.Update(1300))
	assert.Equal(t, uint64(10), gt.Update(2300))
}

func TestGameTimeSlowCounter(t *testing.T) {
	gt := NewGameTime(1000, 100, 0)
	assert.Equal(t, uint64(5), gt.Update(5))
	assert.Equal(t, uint64(0), gt.Update(3))
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(DefaultConfig(), 0, 1_000_000)
	require.NoError(t, err)
	return g
}

func TestNewBuildsSharedMesh(t *testing.T) {
	g := newTestGame(t)
	require.Len(t, g.Cubes, 3)
	require.Len(t, g.Lights, 2)
	assert.Len(t, g.Mesh.Vertices, 3*scene.CubeVertexCount)
	for i, c := range g.Cubes {
		assert.Equal(t, scene.Range{Offset: i * scene.CubeVertexCount, Count: scene.CubeVertexCount}, c.Part)
	}
	assert.Len(t, MarkerVertices(), scene.CubeVertexCount)
}

func TestSteering(t *testing.T) {
	g := newTestGame(t)

	g.KeyDown(Up)
	pitch, yaw, roll := g.Rates()
	assert.Equal(t, float32(SpinPerSecond), pitch)
	assert.Zero(t, yaw)
	assert.Zero(t, roll)

	g.KeyDown(Down)
	pitch, _, _ = g.Rates()
	assert.Equal(t, float32(-SpinPerSecond), pitch)

	g.KeyDown(Right)
	_, yaw, roll = g.Rates()
	assert.Equal(t, float32(SpinPerSecond), yaw)
	assert.Zero(t, roll)

	g.KeyDown(RollModifier)
	_, yaw, roll = g.Rates()
	assert.Zero(t, yaw)
	assert.Equal(t, float32(SpinPerSecond), roll)

	g.KeyUp(Right)
	g.KeyUp(Down)
	g.KeyUp(Up)
	pitch, yaw, roll = g.Rates()
	assert.Zero(t, pitch)
	assert.Zero(t, yaw)
	assert.Zero(t, roll)
}

func TestProcessTurnsCameraAndLights(t *testing.T) {
	g := newTestGame(t)
	startAngle := g.Lights[0].Angle
	g.KeyDown(Right)

	// 5000 ticks of 100us = half a second
	g.Process(500_000)
	assert.InDelta(t, SpinPerSecond/2, g.Camera.Orientation.Yaw, 1e-3)
	assert.InDelta(t, startAngle+g.Lights[0].Spin/2, g.Lights[0].Angle, 1e-3)

	// no time passed, nothing moves
	yaw := g.Camera.Orientation.Yaw
	g.Process(500_000)
	assert.Equal(t, yaw, g.Camera.Orientation.Yaw)
}

func TestMouseTurnsOnlyWhileHeld(t *testing.T) {
	g := newTestGame(t)
	g.MouseMoved(30, 0)
	assert.Zero(t, g.Camera.Orientation.Yaw)

	g.MouseButton(true)
	g.MouseMoved(30, 15)
	assert.InDelta(t, SpinPerMousePixel*30, g.Camera.Orientation.Yaw, 1e-5)
	assert.InDelta(t, SpinPerMousePixel*15, g.Camera.Orientation.Pitch, 1e-5)

	g.KeyDown(RollModifier)
	g.MouseMoved(10, 0)
	assert.InDelta(t, SpinPerMousePixel*10, g.Camera.Orientation.Roll, 1e-5)

	g.MouseButton(false)
	g.MouseMoved(100, 100)
	assert.InDelta(t, SpinPerMousePixel*10, g.Camera.Orientation.Roll, 1e-5)
}

func TestSpotlightsYieldsEveryLight(t *testing.T) {
	g := newTestGame(t)
	var positions []mgl32.Vec3
	for light, pos := range g.Spotlights() {
		positions = append(positions, pos)
		assert.Positive(t, light.Radius)
	}
	require.Len(t, positions, 2)
	assert.Equal(t, g.Lights[0].Location(), positions[0])

	m := g.Lights[0].Marker()
	assert.Equal(t, g.Lights[0].Radius/50, m.Scale)
	assert.Equal(t, g.Lights[0].Angle, m.Orientation.Roll)

	var seen int
	for range g.Spotlights() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestToggleVsync(t *testing.T) {
	g := newTestGame(t)
	g.SetVsync(true)
	assert.False(t, g.ToggleVsync())
	assert.True(t, g.ToggleVsync())
	assert.True(t, g.Vsync())
}

const sceneYAML = `
tick_length_us: 250
camera:
  location: [0, 1, 10]
  orientation: {yaw: 0.5}
cubes:
  - location: [1, 2, 3]
    scale: 2
    colors:
      - [1, 0, 0, 1]
      - [0, 1, 0, 1]
      - [0, 0, 1, 1]
      - [1, 1, 0, 1]
      - [0, 1, 1, 1]
      - [1, 0, 1, 1]
lights:
  - center: [0, 0, 0]
    orbit: 4
    radius: 50
    spin: 2
    color: [1, 1, 1, 1]
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	assert.Equal(t, uint64(250), cfg.TickLengthUS)
	assert.Equal(t, float32(0.5), cfg.Camera.Orientation.Yaw)

	g, err := New(cfg, 0, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 1, 10}, g.Camera.Location)
	require.Len(t, g.Cubes, 1)
	assert.Equal(t, float32(2), g.Cubes[0].Spatial.Scale)
	assert.Equal(t, scene.RGB(0, 0, 1).Packed(), g.Mesh.Vertices[2*6].Clr)
	assert.Equal(t, float32(1), g.Lights[0].Marker().Scale)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":     "camera:\n  location: [0, 0, 0]\nfog: true\n",
		"short location":  "camera:\n  location: [0, 0]\n",
		"bad color count": "camera:\n  location: [0, 0, 0]\ncubes:\n  - location: [0, 0, 0]\n    scale: 1\n    colors: [[1, 1, 1, 1]]\n",
		"zero radius":     "camera:\n  location: [0, 0, 0]\nlights:\n  - center: [0, 0, 0]\n    color: [1, 1, 1, 1]\n",
		"zero scale":      "camera:\n  location: [0, 0, 0]\ncubes:\n  - location: [0, 0, 0]\n",
		"not yaml":        "camera: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Lights, 1)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateLimitsLightCount(t *testing.T) {
	cfg := DefaultConfig()
	light := cfg.Lights[0]
	cfg.Lights = nil
	for range draw.MaxLights + 1 {
		cfg.Lights = append(cfg.Lights, light)
	}
	assert.ErrorContains(t, cfg.Validate(), "at most 32 lights")

	cfg.Lights = cfg.Lights[:draw.MaxLights]
	assert.NoError(t, cfg.Validate())
}
