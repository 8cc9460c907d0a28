package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/draw"
	"github.com/richinsley/glscene/scene"
	"gopkg.in/yaml.v3"
)

// DefaultTickLengthUS is the simulation step when the scene does not set one.
const DefaultTickLengthUS = 100

// Config is the YAML description of a scene.
type Config struct {
	TickLengthUS uint64        `yaml:"tick_length_us"`
	Camera       CameraConfig  `yaml:"camera"`
	Cubes        []CubeConfig  `yaml:"cubes"`
	Lights       []LightConfig `yaml:"lights"`
}

type OrientationConfig struct {
	Pitch float32 `yaml:"pitch"`
	Yaw   float32 `yaml:"yaw"`
	Roll  float32 `yaml:"roll"`
}

type CameraConfig struct {
	Location    []float32         `yaml:"location"`
	Orientation OrientationConfig `yaml:"orientation"`
}

type CubeConfig struct {
	Location    []float32         `yaml:"location"`
	Orientation OrientationConfig `yaml:"orientation"`
	Scale       float32           `yaml:"scale"`
	// Colors holds one RGBA quadruple per face; empty selects the default
	// palette.
	Colors [][]float32 `yaml:"colors"`
}

type LightConfig struct {
	Center []float32 `yaml:"center"`
	Orbit  float32   `yaml:"orbit"`
	Angle  float32   `yaml:"angle"`
	Radius float32   `yaml:"radius"`
	// Spin is the orbit speed in radians per second.
	Spin  float32   `yaml:"spin"`
	Color []float32 `yaml:"color"`
}

// DefaultPalette colors the faces of cubes that do not set their own.
var DefaultPalette = [6]scene.Color{
	scene.Front:  scene.RGB(0.2, 0.5, 0.9),
	scene.Back:   scene.RGB(0.9, 0.2, 0.4),
	scene.Left:   scene.RGB(0.2, 0.9, 0.4),
	scene.Right:  scene.RGB(0.2, 0.2, 0.4),
	scene.Top:    scene.RGB(0.9, 0.9, 0.4),
	scene.Bottom: scene.RGB(0.2, 0.2, 0.9),
}

// DefaultConfig is the scene used when no file is given: three cubes in a
// row, two lights circling them and the camera looking down -Z.
func DefaultConfig() *Config {
	return &Config{
		TickLengthUS: DefaultTickLengthUS,
		Camera:       CameraConfig{Location: []float32{0, 0, 6}},
		Cubes: []CubeConfig{
			{Location: []float32{-2, 0, 0}, Scale: 1},
			{Location: []float32{0, 0, 0}, Scale: 1.5, Orientation: OrientationConfig{Pitch: 0.4, Yaw: 0.6}},
			{Location: []float32{2, 0, 0}, Scale: 1, Orientation: OrientationConfig{Roll: 0.8}},
		},
		Lights: []LightConfig{
			{Center: []float32{0, 0, 1.5}, Orbit: 3, Radius: 10, Spin: 1, Color: []float32{1, 0.9, 0.7, 1}},
			{Center: []float32{0, 0, -1.5}, Orbit: 2, Angle: 3.14, Radius: 8, Spin: -0.5, Color: []float32{0.3, 0.4, 1, 1}},
		},
	}
}

// LoadConfig decodes a scene from r. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{TickLengthUS: DefaultTickLengthUS}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads a scene file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	cfg, err := LoadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks vector lengths and ranges.
func (c *Config) Validate() error {
	if c.TickLengthUS == 0 {
		return errors.New("tick_length_us must be positive")
	}
	if err := checkLen("camera.location", c.Camera.Location, 3); err != nil {
		return err
	}
	for i, cube := range c.Cubes {
		if err := checkLen(fmt.Sprintf("cubes[%d].location", i), cube.Location, 3); err != nil {
			return err
		}
		if cube.Scale <= 0 {
			return fmt.Errorf("cubes[%d].scale must be positive", i)
		}
		if len(cube.Colors) != 0 && len(cube.Colors) != 6 {
			return fmt.Errorf("cubes[%d].colors needs 6 faces, got %d", i, len(cube.Colors))
		}
		for f, clr := range cube.Colors {
			if err := checkLen(fmt.Sprintf("cubes[%d].colors[%d]", i, f), clr, 4); err != nil {
				return err
			}
		}
	}
	if len(c.Lights) > draw.MaxLights {
		return fmt.Errorf("at most %d lights are supported, got %d", draw.MaxLights, len(c.Lights))
	}
	for i, l := range c.Lights {
		if err := checkLen(fmt.Sprintf("lights[%d].center", i), l.Center, 3); err != nil {
			return err
		}
		if err := checkLen(fmt.Sprintf("lights[%d].color", i), l.Color, 4); err != nil {
			return err
		}
		if l.Radius <= 0 {
			return fmt.Errorf("lights[%d].radius must be positive", i)
		}
	}
	return nil
}

func checkLen(field string, v []float32, n int) error {
	if len(v) != n {
		return fmt.Errorf("%s needs %d components, got %d", field, n, len(v))
	}
	return nil
}

func vec3(v []float32) mgl32.Vec3 { return mgl32.Vec3{v[0], v[1], v[2]} }

func color(v []float32) scene.Color { return scene.Color{R: v[0], G: v[1], B: v[2], A: v[3]} }

func (o OrientationConfig) orientation() scene.Orientation {
	return scene.Orientation{Pitch: o.Pitch, Yaw: o.Yaw, Roll: o.Roll}
}
