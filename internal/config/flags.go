package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides bound to a pflag set.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath string
	Debug      bool
	LogFile    string
	Iterations int
	Gravity    float32
	Timestep   float32
	Wind       []float32
	Seed       int64
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file as well")
	fs.IntVar(&f.Iterations, "iterations", 0, "Constraint relaxation iterations per step")
	fs.Float32Var(&f.Gravity, "gravity", 0, "Vertical acceleration")
	fs.Float32Var(&f.Timestep, "timestep", 0, "Fixed simulation step in seconds")
	fs.Float32SliceVar(&f.Wind, "wind", nil, "Wind vector x,y,z")
	fs.Int64Var(&f.Seed, "seed", 0, "Turbulence noise seed")
	return f
}

// configPath returns the explicit config path if provided via --config flag.
func (f *Flags) configPath() string {
	if f == nil {
		return ""
	}
	return f.ConfigPath
}

func (f *Flags) changed(name string) bool {
	return f != nil && f.fs != nil && f.fs.Changed(name)
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Iterations > 0 {
		cfg.Cloth.Iterations = f.Iterations
	}
	if f.changed("gravity") {
		cfg.Cloth.Gravity = f.Gravity
	}
	if f.Timestep > 0 {
		cfg.Cloth.Timestep = f.Timestep
	}
	if f.changed("wind") {
		var w [3]float32
		copy(w[:], f.Wind)
		cfg.Cloth.Wind = w
	}
	if f.changed("seed") {
		cfg.Turbulence.Seed = f.Seed
	}
}
