// Package config handles simulator configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/drape/internal/cloth"
	"github.com/Faultbox/drape/internal/sim"
	"github.com/Faultbox/drape/pkg/math"
)

// Config holds all simulator settings.
type Config struct {
	Cloth      ClothConfig      `yaml:"cloth"`
	Fold       FoldConfig       `yaml:"fold"`
	Turbulence TurbulenceConfig `yaml:"turbulence"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ClothConfig holds solver constants and default forces.
type ClothConfig struct {
	Drag       float32    `yaml:"drag"`
	Iterations int        `yaml:"iterations"`
	Floor      float32    `yaml:"floor"`
	Friction   float32    `yaml:"friction"`
	Timestep   float32    `yaml:"timestep"` // Fixed step, independent of frame time
	Gravity    float32    `yaml:"gravity"`
	Wind       [3]float32 `yaml:"wind"`
}

// FoldConfig holds folding settings.
type FoldConfig struct {
	Thickness float32 `yaml:"thickness"` // Depth added per fold layer
	Epsilon   float32 `yaml:"epsilon"`   // Cut line dead zone
	Animate   bool    `yaml:"animate"`
	Speed     float32 `yaml:"speed"` // Radians per second when animating
}

// TurbulenceConfig holds the wind gust noise settings.
type TurbulenceConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Seed      int64   `yaml:"seed"`
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Octaves   int32   `yaml:"octaves"`
	Frequency float64 `yaml:"frequency"`
	RealTime  bool    `yaml:"real_time"` // Use wall-clock phase instead of simulated time
	TimeScale float64 `yaml:"time_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	solver := cloth.DefaultConfig()
	return &Config{
		Cloth: ClothConfig{
			Drag:       solver.Drag,
			Iterations: solver.Iterations,
			Floor:      solver.Floor,
			Friction:   solver.Friction,
			Timestep:   0.018,
			Gravity:    -9.8,
		},
		Fold: FoldConfig{
			Thickness: 0.002,
			Epsilon:   0.001,
			Animate:   false,
			Speed:     2,
		},
		Turbulence: TurbulenceConfig{
			Enabled:   true,
			Seed:      1,
			Alpha:     2,
			Beta:      2,
			Octaves:   3,
			Frequency: 0.5,
			RealTime:  false,
			TimeScale: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting the solver cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Cloth.Drag <= 0 || c.Cloth.Drag >= 1:
		return fmt.Errorf("cloth.drag must be in (0, 1), got %v", c.Cloth.Drag)
	case c.Cloth.Iterations < 1:
		return fmt.Errorf("cloth.iterations must be at least 1, got %d", c.Cloth.Iterations)
	case c.Cloth.Friction < 0 || c.Cloth.Friction > 1:
		return fmt.Errorf("cloth.friction must be in [0, 1], got %v", c.Cloth.Friction)
	case c.Cloth.Timestep <= 0:
		return fmt.Errorf("cloth.timestep must be positive, got %v", c.Cloth.Timestep)
	case c.Fold.Animate && c.Fold.Speed <= 0:
		return fmt.Errorf("fold.speed must be positive when fold.animate is set, got %v", c.Fold.Speed)
	case c.Fold.Epsilon < 0:
		return fmt.Errorf("fold.epsilon must not be negative, got %v", c.Fold.Epsilon)
	case c.Turbulence.Enabled && c.Turbulence.Octaves < 1:
		return fmt.Errorf("turbulence.octaves must be at least 1, got %d", c.Turbulence.Octaves)
	}
	return nil
}

// SimSettings converts the config into session settings.
func (c *Config) SimSettings() sim.Settings {
	return sim.Settings{
		Cloth: cloth.Config{
			Drag:       c.Cloth.Drag,
			Iterations: c.Cloth.Iterations,
			Floor:      c.Cloth.Floor,
			Friction:   c.Cloth.Friction,
		},
		Forces: cloth.Forces{
			Wind:     math.Vec3{X: c.Cloth.Wind[0], Y: c.Cloth.Wind[1], Z: c.Cloth.Wind[2]},
			Gravity:  c.Cloth.Gravity,
			Timestep: c.Cloth.Timestep,
		},
		Thickness:    c.Fold.Thickness,
		Epsilon:      c.Fold.Epsilon,
		AnimateFolds: c.Fold.Animate,
	}
}

// SessionOptions returns the turbulence and clock options the config asks for.
func (c *Config) SessionOptions() []sim.Option {
	t := c.Turbulence
	if !t.Enabled {
		return []sim.Option{sim.WithTurbulence(cloth.ConstantTurbulence(1))}
	}
	opts := []sim.Option{
		sim.WithTurbulence(cloth.NewPerlinTurbulence(t.Alpha, t.Beta, t.Octaves, t.Seed, t.Frequency)),
	}
	if t.RealTime {
		opts = append(opts, sim.WithClock(cloth.NewWallClock(t.TimeScale)))
	}
	return opts
}
