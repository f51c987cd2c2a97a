// Package config loads the viewer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"vertex/internal/camera"
	"vertex/internal/graphics"
	"vertex/internal/linalg"
	"vertex/internal/logger"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Camera   Camera        `yaml:"camera"`
	Pipeline Pipeline      `yaml:"pipeline"`
	Scene    Scene         `yaml:"scene"`
	Log      logger.Config `yaml:"log"`
}

type Camera struct {
	Near         float64   `yaml:"near"`
	Far          float64   `yaml:"far"`
	FieldOfView  float64   `yaml:"fieldOfView"`
	Position     []float64 `yaml:"position"`
	Direction    []float64 `yaml:"direction"`
	Displacement float64   `yaml:"displacement"`
	Light        []float64 `yaml:"light"`
}

type Pipeline struct {
	Scale             float64 `yaml:"scale"`
	TargetFPS         int     `yaml:"targetFps"`
	PhysicsRate       int     `yaml:"physicsRate"`
	UseParallelWorker bool    `yaml:"useParallelWorker"`
	Style             string  `yaml:"style"`
	Workers           int     `yaml:"workers"`
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
}

type Scene struct {
	Name string `yaml:"name"`
	// SpherePath optionally replaces the procedural sphere with an OBJ file.
	SpherePath string `yaml:"spherePath"`
}

func Default() *Config {
	return &Config{
		Camera: Camera{
			Near:         0.01,
			Far:          1000,
			FieldOfView:  90,
			Position:     []float64{0, 0, 0},
			Direction:    []float64{0, 0, -5},
			Displacement: 0.5,
			Light:        []float64{0, 0, -1},
		},
		Pipeline: Pipeline{
			Scale:       300,
			TargetFPS:   30,
			PhysicsRate: 60,
			Style:       "stroke",
			Width:       800,
			Height:      600,
		},
		Scene: Scene{Name: "twoBody"},
		Log:   logger.Config{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads YAML over the defaults and validates the result. Empty
// input yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	cam := c.Camera
	if cam.Near <= 0 {
		bad("camera.near must be positive, got %g", cam.Near)
	}
	if cam.Far <= cam.Near {
		bad("camera.far (%g) must exceed camera.near (%g)", cam.Far, cam.Near)
	}
	if cam.FieldOfView <= 0 || cam.FieldOfView >= 180 {
		bad("camera.fieldOfView must be in (0, 180), got %g", cam.FieldOfView)
	}
	for _, f := range []struct {
		name string
		v    []float64
	}{
		{"position", cam.Position},
		{"direction", cam.Direction},
		{"light", cam.Light},
	} {
		if len(f.v) != 3 {
			bad("camera.%s needs 3 components, got %d", f.name, len(f.v))
		}
	}

	p := c.Pipeline
	if p.Scale <= 0 {
		bad("pipeline.scale must be positive, got %g", p.Scale)
	}
	if p.TargetFPS <= 0 {
		bad("pipeline.targetFps must be positive, got %d", p.TargetFPS)
	}
	if p.PhysicsRate <= 0 {
		bad("pipeline.physicsRate must be positive, got %d", p.PhysicsRate)
	}
	if p.Workers < 0 {
		bad("pipeline.workers must not be negative, got %d", p.Workers)
	}
	if p.Width <= 0 || p.Height <= 0 {
		bad("pipeline size must be positive, got %dx%d", p.Width, p.Height)
	}
	if _, err := graphics.ParseStyle(p.Style); err != nil {
		bad("pipeline.style: %v", err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		bad("log.level: %v", err)
	}
	return errors.Join(errs...)
}

// CameraOptions converts the camera section. Width and Height come from
// the pipeline section.
func (c *Config) CameraOptions() camera.Options {
	return camera.Options{
		Position:     linalg.NewVector(c.Camera.Position...),
		Direction:    linalg.NewVector(c.Camera.Direction...),
		Displacement: c.Camera.Displacement,
		Near:         c.Camera.Near,
		Far:          c.Camera.Far,
		Width:        float64(c.Pipeline.Width),
		Height:       float64(c.Pipeline.Height),
		Light:        linalg.NewVector(c.Camera.Light...),
	}
}

// GraphicsOptions converts a validated config into pipeline options.
func (c *Config) GraphicsOptions() graphics.Options {
	style, _ := graphics.ParseStyle(c.Pipeline.Style)
	return graphics.Options{
		Camera:            c.CameraOptions(),
		FieldOfView:       c.Camera.FieldOfView,
		Scale:             c.Pipeline.Scale,
		TargetFPS:         c.Pipeline.TargetFPS,
		Style:             style,
		UseParallelWorker: c.Pipeline.UseParallelWorker,
		Workers:           c.Pipeline.Workers,
	}
}
