package cloth

import (
	"time"

	"github.com/aquilax/go-perlin"
)

// Turbulence modulates wind strength. Factor must return a value in [0, 1].
type Turbulence interface {
	Factor(phase float64, height float32) float32
}

// ConstantTurbulence applies the wind at a fixed strength.
type ConstantTurbulence float32

// Factor implements Turbulence.
func (c ConstantTurbulence) Factor(float64, float32) float32 {
	return clampf(float32(c), 0, 1)
}

// PerlinTurbulence gusts wind with 2D Perlin noise over time and height.
type PerlinTurbulence struct {
	noise *perlin.Perlin
	// Frequency scales both noise axes; lower is smoother.
	Frequency float64
}

// NewPerlinTurbulence builds a seeded noise source. alpha and beta are
// the octave weight and frequency ratios, octaves the number of layers.
func NewPerlinTurbulence(alpha, beta float64, octaves int32, seed int64, frequency float64) *PerlinTurbulence {
	return &PerlinTurbulence{
		noise:     perlin.NewPerlin(alpha, beta, octaves, seed),
		Frequency: frequency,
	}
}

// Factor implements Turbulence.
func (p *PerlinTurbulence) Factor(phase float64, height float32) float32 {
	n := p.noise.Noise2D(phase*p.Frequency, float64(height)*p.Frequency)
	return clampf(float32(n+1)/2, 0, 1)
}

// Clock supplies the turbulence phase.
type Clock interface {
	Phase() float64
}

// StepClock advances by a fixed amount per Tick, making runs reproducible.
type StepClock struct {
	Step float64
	t    float64
}

// Tick advances the clock by one step.
func (c *StepClock) Tick() {
	c.t += c.Step
}

// Phase implements Clock.
func (c *StepClock) Phase() float64 {
	return c.t
}

// WallClock reports seconds since it was created.
type WallClock struct {
	start time.Time
	// Scale multiplies elapsed seconds.
	Scale float64
}

// NewWallClock starts a clock at the current time.
func NewWallClock(scale float64) *WallClock {
	return &WallClock{start: time.Now(), Scale: scale}
}

// Phase implements Clock.
func (c *WallClock) Phase() float64 {
	return time.Since(c.start).Seconds() * c.Scale
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
