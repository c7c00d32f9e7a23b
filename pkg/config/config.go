// Package config loads, validates and watches the renderer's scene options
// file. The evaluator assumes values already satisfy the constraints
// enforced here; validation is this layer's responsibility alone.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/quatray/go-quaternion-julia/pkg/core"
	"github.com/quatray/go-quaternion-julia/pkg/scene"
)

// CameraConfig describes the orbit camera pose
type CameraConfig struct {
	Distance    float64 `toml:"distance"`     // orbit radius from the origin
	MinDistance float64 `toml:"min_distance"` // closest the zoom may dolly in
	Phi         float64 `toml:"phi"`          // azimuth angle in radians
	Theta       float64 `toml:"theta"`        // elevation angle in radians
}

// Config is the on-disk TOML representation of the viewport, scene options
// and camera pose
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Shape           string     `toml:"shape"`
	Power           float64    `toml:"power"`
	Constant        [4]float64 `toml:"constant"`
	SliceW          float64    `toml:"slice_w"`
	MaxIterations   int        `toml:"max_iterations"`
	MaxDistance     float64    `toml:"max_distance"`
	Epsilon         float64    `toml:"epsilon"`
	FractalColor    [3]float64 `toml:"fractal_color"`
	BackgroundColor [3]float64 `toml:"background_color"`
	Heatmap         bool       `toml:"heatmap"`
	AnalyticNormals bool       `toml:"analytic_normals"`
	ShowAxes        bool       `toml:"show_axes"`

	Camera CameraConfig `toml:"camera"`
}

// Default returns the configuration matching scene.DefaultOptions with a
// 16:9 viewport and the viewer's default orbit
func Default() Config {
	opts := scene.DefaultOptions()
	return Config{
		Width:           800,
		Height:          450,
		Shape:           opts.Shape.String(),
		Power:           opts.Power,
		Constant:        [4]float64{opts.Constant.W, opts.Constant.X, opts.Constant.Y, opts.Constant.Z},
		SliceW:          opts.SliceW,
		MaxIterations:   opts.MaxIterations,
		MaxDistance:     opts.MaxDistance,
		Epsilon:         opts.Epsilon,
		FractalColor:    [3]float64{opts.FractalColor.X, opts.FractalColor.Y, opts.FractalColor.Z},
		BackgroundColor: [3]float64{opts.BackgroundColor.X, opts.BackgroundColor.Y, opts.BackgroundColor.Z},
		Heatmap:         opts.Heatmap,
		AnalyticNormals: opts.AnalyticNormals,
		ShowAxes:        opts.ShowAxes,
		Camera: CameraConfig{
			Distance:    5,
			MinDistance: 2.5,
			Phi:         0,
			Theta:       0,
		},
	}
}

// Load reads and validates a configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration to disk in TOML form
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the constraints the evaluator relies on
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Power < 1 {
		return fmt.Errorf("power must be >= 1, got %g", c.Power)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be > 0, got %d", c.MaxIterations)
	}
	if c.MaxDistance <= 0 {
		return fmt.Errorf("max_distance must be > 0, got %g", c.MaxDistance)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be > 0, got %g", c.Epsilon)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera distance must be > 0, got %g", c.Camera.Distance)
	}
	for _, ch := range c.FractalColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("fractal_color channels must be in [0,1], got %v", c.FractalColor)
		}
	}
	for _, ch := range c.BackgroundColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("background_color channels must be in [0,1], got %v", c.BackgroundColor)
		}
	}
	return nil
}

// Options converts the file representation into the evaluator's snapshot
func (c Config) Options() scene.Options {
	return scene.Options{
		Shape:           scene.ShapeFromName(c.Shape),
		Power:           c.Power,
		Constant:        core.NewQuaternion(c.Constant[0], c.Constant[1], c.Constant[2], c.Constant[3]),
		SliceW:          c.SliceW,
		MaxIterations:   c.MaxIterations,
		MaxDistance:     c.MaxDistance,
		Epsilon:         c.Epsilon,
		FractalColor:    core.NewVec3(c.FractalColor[0], c.FractalColor[1], c.FractalColor[2]),
		BackgroundColor: core.NewVec3(c.BackgroundColor[0], c.BackgroundColor[1], c.BackgroundColor[2]),
		Heatmap:         c.Heatmap,
		AnalyticNormals: c.AnalyticNormals,
		ShowAxes:        c.ShowAxes,
	}
}
