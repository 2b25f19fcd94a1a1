package cloth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/pkg/math"
)

// ErrBufferMismatch is returned when the state does not match the
// vertex count the solver was built for.
var ErrBufferMismatch = errors.New("buffer size mismatch")

// Solver steps one topology. It holds no per-frame state; positions
// live in the State passed to Advance.
type Solver struct {
	cfg         Config
	vertexCount int
	constraints []mesh.Constraint
	pins        mesh.IndexSet
	turbulence  Turbulence
	log         *zap.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithTurbulence sets the wind modulation source.
func WithTurbulence(t Turbulence) Option {
	return func(s *Solver) {
		s.turbulence = t
	}
}

// WithLogger sets the solver's logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		s.log = l
	}
}

// NewSolver validates constraints and pins against vertexCount.
// Without WithTurbulence the wind blows at full strength.
func NewSolver(cfg Config, vertexCount int, constraints []mesh.Constraint, pins mesh.IndexSet, opts ...Option) (*Solver, error) {
	for i, c := range constraints {
		if c.A < 0 || c.A >= vertexCount || c.B < 0 || c.B >= vertexCount {
			return nil, fmt.Errorf("constraint %d (%d-%d): %w", i, c.A, c.B, mesh.ErrVertexOutOfRange)
		}
	}
	if pins.Capacity() != 0 && pins.Capacity() != vertexCount {
		return nil, fmt.Errorf("pin set sized for %d vertices, mesh has %d: %w", pins.Capacity(), vertexCount, ErrBufferMismatch)
	}
	if cfg.Iterations < 0 {
		return nil, fmt.Errorf("iterations must not be negative, got %d", cfg.Iterations)
	}

	s := &Solver{
		cfg:         cfg,
		vertexCount: vertexCount,
		constraints: constraints,
		pins:        pins,
		turbulence:  ConstantTurbulence(1),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log.Debug("cloth solver ready",
		zap.Int("vertices", vertexCount),
		zap.Int("constraints", len(constraints)),
		zap.Int("pins", pins.Len()),
		zap.Int("iterations", cfg.Iterations))
	return s, nil
}

// Config returns the solver constants.
func (s *Solver) Config() Config {
	return s.cfg
}

// Constraints returns the distance constraints. The slice is shared.
func (s *Solver) Constraints() []mesh.Constraint {
	return s.constraints
}

// Advance moves the sheet forward by one timestep: Verlet integration,
// then Iterations rounds of constraint relaxation each followed by a
// floor pass. Pinned vertices and the override vertex never move except
// that the override vertex is snapped to its target. Inputs are
// validated before anything is written.
func (s *Solver) Advance(st *State, ov *Override, f Forces) error {
	if err := s.validate(st, ov); err != nil {
		return err
	}
	s.integrate(st, ov, f)
	for range s.cfg.Iterations {
		s.relax(st, ov)
		s.collideFloor(st, ov)
	}
	return nil
}

// Relax runs one constraint relaxation sweep without integrating or
// touching the floor.
func (s *Solver) Relax(st *State, ov *Override) error {
	if err := s.validate(st, ov); err != nil {
		return err
	}
	s.relax(st, ov)
	return nil
}

// MaxStretch returns the largest |length - rest| / rest over all
// constraints with a non-zero rest length.
func (s *Solver) MaxStretch(st *State) float32 {
	var worst float32
	for _, c := range s.constraints {
		if c.Rest == 0 {
			continue
		}
		d := st.Positions[c.A].Distance(st.Positions[c.B])
		if e := abs(d-c.Rest) / c.Rest; e > worst {
			worst = e
		}
	}
	return worst
}

func (s *Solver) validate(st *State, ov *Override) error {
	if st == nil {
		return fmt.Errorf("nil state: %w", ErrBufferMismatch)
	}
	if len(st.Positions) != s.vertexCount || len(st.Previous) != s.vertexCount {
		return fmt.Errorf("positions %d, previous %d, solver %d: %w",
			len(st.Positions), len(st.Previous), s.vertexCount, ErrBufferMismatch)
	}
	if ov != nil && (ov.Vertex < 0 || ov.Vertex >= s.vertexCount) {
		return fmt.Errorf("override vertex %d: %w", ov.Vertex, mesh.ErrVertexOutOfRange)
	}
	return nil
}

func (s *Solver) integrate(st *State, ov *Override, f Forces) {
	dt2 := f.Timestep * f.Timestep
	windy := f.Wind.X != 0 || f.Wind.Z != 0

	for i := range st.Positions {
		if s.pins.Has(i) {
			continue
		}
		if ov != nil && ov.Vertex == i {
			st.Positions[i] = ov.Target
			st.Previous[i] = ov.Target
			continue
		}

		cur := st.Positions[i]
		vel := cur.Sub(st.Previous[i]).Scale(s.cfg.Drag)
		st.Previous[i] = cur

		var w float32
		if windy {
			w = s.turbulence.Factor(f.Phase, cur.Y)
		}
		accel := math.Vec3{
			X: f.Wind.X * w,
			Y: f.Gravity,
			Z: f.Wind.Z * w,
		}
		st.Positions[i] = cur.Add(vel).Add(accel.Scale(dt2))
	}
}

func (s *Solver) fixed(i int, ov *Override) bool {
	return s.pins.Has(i) || (ov != nil && ov.Vertex == i)
}

func (s *Solver) relax(st *State, ov *Override) {
	pos := st.Positions
	for _, c := range s.constraints {
		var wa, wb float32
		if !s.fixed(c.A, ov) {
			wa = 0.5
		}
		if !s.fixed(c.B, ov) {
			wb = 0.5
		}
		if wa == 0 && wb == 0 {
			continue
		}

		delta := pos[c.B].Sub(pos[c.A])
		dist := delta.Length()
		if dist == 0 {
			continue
		}
		diff := (dist - c.Rest) / dist

		pos[c.A] = pos[c.A].Add(delta.Scale(diff * wa))
		pos[c.B] = pos[c.B].Sub(delta.Scale(diff * wb))
	}
}

func (s *Solver) collideFloor(st *State, ov *Override) {
	floor := s.cfg.Floor
	for i, p := range st.Positions {
		if p.Y >= floor || s.fixed(i, ov) {
			continue
		}
		st.Positions[i].Y = floor

		prev := &st.Previous[i]
		prev.X += (p.X - prev.X) * s.cfg.Friction
		prev.Z += (p.Z - prev.Z) * s.cfg.Friction
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
