// Package cloth advances a pinned mass-spring sheet with Verlet
// integration, iterative distance constraints and a frictional floor.
package cloth

import "github.com/Faultbox/drape/pkg/math"

// Config holds the solver constants.
type Config struct {
	// Drag scales the implicit velocity each step, in (0, 1).
	Drag float32
	// Iterations is the number of relaxation sweeps per step; more
	// sweeps make the sheet stiffer.
	Iterations int
	// Floor is the lowest height any free vertex may reach.
	Floor float32
	// Friction is the fraction of horizontal velocity removed on contact.
	Friction float32
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Drag:       0.97,
		Iterations: 3,
		Floor:      -3,
		Friction:   0.5,
	}
}

// Forces are the external parameters for one step.
type Forces struct {
	// Wind contributes its X and Z components, modulated by turbulence.
	Wind math.Vec3
	// Gravity is applied to Y unmodulated; negative pulls down.
	Gravity float32
	// Timestep is the fixed simulation step in seconds.
	Timestep float32
	// Phase drives the turbulence signal, usually elapsed seconds.
	Phase float64
}
