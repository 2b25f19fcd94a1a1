// Package sim ties a topology, its fold stack and the cloth solver into
// one frame-driven session.
package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/drape/internal/cloth"
	"github.com/Faultbox/drape/internal/fold"
	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/internal/picking"
	"github.com/Faultbox/drape/pkg/math"
)

// Settings are the per-session constants.
type Settings struct {
	Cloth     cloth.Config
	Forces    cloth.Forces
	Thickness float32
	Epsilon   float32
	// AnimateFolds starts new folds flat and lets AnimateFolds swing
	// them toward their target angle.
	AnimateFolds bool
}

// DefaultSettings returns the reference tuning.
func DefaultSettings() Settings {
	return Settings{
		Cloth: cloth.DefaultConfig(),
		Forces: cloth.Forces{
			Gravity:  -9.8,
			Timestep: 0.018,
		},
		Thickness: fold.DefaultThickness,
		Epsilon:   fold.SideEpsilon,
	}
}

// Session owns everything derived from one topology. Folding rebuilds
// the rest pose and restarts the cloth from it; a new topology replaces
// all of it at once.
type Session struct {
	settings   Settings
	topo       *mesh.Topology
	folds      fold.Stack
	rest       []math.Vec3
	solver     *cloth.Solver
	state      *cloth.State
	drag       cloth.Interaction
	dragNormal math.Vec3 // Facing of the plane a grabbed vertex slides in
	clock      cloth.Clock
	turbulence cloth.Turbulence
	paused     bool
	frame      int
	log        *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithClock sets the turbulence phase source. The default is a
// StepClock ticking once per frame by the timestep.
func WithClock(c cloth.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithTurbulence sets the wind modulation source.
func WithTurbulence(t cloth.Turbulence) Option {
	return func(s *Session) {
		s.turbulence = t
	}
}

// New starts a session on topo.
func New(settings Settings, topo *mesh.Topology, opts ...Option) (*Session, error) {
	s := &Session{
		settings:   settings,
		turbulence: cloth.ConstantTurbulence(1),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = &cloth.StepClock{Step: float64(settings.Forces.Timestep)}
	}
	if err := s.SetTopology(topo); err != nil {
		return nil, err
	}
	return s, nil
}

// SetTopology discards folds, buffers and constraints and starts over
// on topo. On error the session is left exactly as it was.
func (s *Session) SetTopology(topo *mesh.Topology) error {
	if topo == nil {
		return fmt.Errorf("nil topology")
	}
	p, err := s.build(topo, nil)
	if err != nil {
		return fmt.Errorf("reset topology: %w", err)
	}
	s.topo = topo
	s.folds.Clear()
	s.drag.End()
	s.commit(p)
	s.log.Info("topology loaded",
		zap.Int("vertices", topo.VertexCount()),
		zap.Int("triangles", topo.TriangleCount()),
		zap.Int("pins", topo.Pins.Len()))
	return nil
}

// pose is a rest pose and the solver built from it.
type pose struct {
	rest   []math.Vec3
	solver *cloth.Solver
}

// build composes folds onto topo and builds a solver for the result
// without touching the session.
func (s *Session) build(topo *mesh.Topology, folds []fold.Fold) (pose, error) {
	comp := fold.Compositor{Thickness: s.settings.Thickness}
	rest, err := comp.Compose(topo.Positions, folds)
	if err != nil {
		return pose{}, err
	}
	cs, err := topo.ConstraintsFor(rest)
	if err != nil {
		return pose{}, err
	}
	solver, err := cloth.NewSolver(s.settings.Cloth, len(rest), cs, topo.Pins,
		cloth.WithTurbulence(s.turbulence),
		cloth.WithLogger(s.log.Named("cloth")))
	if err != nil {
		return pose{}, err
	}
	return pose{rest: rest, solver: solver}, nil
}

// commit restarts the cloth from p.
func (s *Session) commit(p pose) {
	s.rest = p.rest
	s.solver = p.solver
	s.state = cloth.NewState(p.rest)
	s.frame = 0
}

// rebuild recomputes the rest pose from the fold stack and restarts
// the solver from it.
func (s *Session) rebuild() error {
	p, err := s.build(s.topo, s.folds.Folds())
	if err != nil {
		return err
	}
	s.commit(p)
	return nil
}

// Fold partitions the base sheet along the line through origin with
// direction axis, lifting the side containing seed by angle radians.
// A seed on the line adds nothing and returns a zero Fold.
func (s *Session) Fold(origin, axis math.Vec2, seed int, angle float32, inverted bool) (fold.Fold, error) {
	start := angle
	if s.settings.AnimateFolds {
		start = 0
	}
	pt := fold.Partitioner{Epsilon: s.settings.Epsilon}
	members, err := pt.Partition(s.topo.Positions, s.topo.Adjacency, origin, axis, seed)
	if err != nil {
		return fold.Fold{}, fmt.Errorf("partition: %w", err)
	}
	if members.Len() == 0 {
		s.log.Debug("fold seed lies on the cut line", zap.Int("seed", seed))
		return fold.Fold{}, nil
	}

	f := s.folds.Push(fold.Fold{
		Origin:      origin,
		Axis:        axis.Normalize(),
		Members:     members,
		Angle:       start,
		TargetAngle: angle,
		Inverted:    inverted,
	})
	if err := s.rebuild(); err != nil {
		_, _ = s.folds.Undo()
		return fold.Fold{}, err
	}
	s.log.Debug("fold added",
		zap.Int("id", f.ID),
		zap.Int("members", members.Len()),
		zap.Float32("angle", angle),
		zap.Bool("inverted", inverted))
	return f, nil
}

// Undo removes the most recent fold.
func (s *Session) Undo() error {
	f, err := s.folds.Undo()
	if err != nil {
		return err
	}
	s.log.Debug("fold undone", zap.Int("id", f.ID))
	return s.rebuild()
}

// ClearFolds removes every fold.
func (s *Session) ClearFolds() error {
	s.folds.Clear()
	return s.rebuild()
}

// SetFoldAngle changes one fold's angle and rebuilds the rest pose.
func (s *Session) SetFoldAngle(id int, angle float32) error {
	if err := s.folds.SetAngle(id, angle); err != nil {
		return err
	}
	return s.rebuild()
}

// AnimateFolds swings folds toward their target angles at speed
// radians per second and rebuilds the rest pose if any moved.
func (s *Session) AnimateFolds(dt, speed float32) (bool, error) {
	if !s.folds.Animate(dt, speed) {
		return false, nil
	}
	return true, s.rebuild()
}

// Folds returns the fold stack in application order.
func (s *Session) Folds() []fold.Fold {
	return s.folds.Folds()
}

// StartDrag begins dragging vertex toward target.
func (s *Session) StartDrag(vertex int, target math.Vec3) error {
	if vertex < 0 || vertex >= s.topo.VertexCount() {
		return fmt.Errorf("drag vertex %d: %w", vertex, mesh.ErrVertexOutOfRange)
	}
	s.drag.Start(vertex, target)
	return nil
}

// Grab starts dragging the front-most vertex within radius of r. The
// vertex then follows DragAlong in the plane through it facing the ray.
func (s *Session) Grab(r picking.Ray, radius float32) (int, bool) {
	v, ok := picking.PickVertex(s.state.Positions, r, radius)
	if !ok {
		return -1, false
	}
	s.drag.Start(v, s.state.Positions[v])
	s.dragNormal = r.Direction.Scale(-1)
	s.log.Debug("vertex grabbed", zap.Int("vertex", v))
	return v, true
}

// DragAlong moves the drag target to where r crosses the drag plane.
// It reports false when nothing is grabbed or r misses the plane.
func (s *Session) DragAlong(r picking.Ray) bool {
	o := s.drag.Override()
	if o == nil {
		return false
	}
	target, ok := r.IntersectPlane(o.Target, s.dragNormal)
	if !ok {
		return false
	}
	s.drag.Update(target)
	return true
}

// UpdateDrag moves the drag target.
func (s *Session) UpdateDrag(target math.Vec3) {
	s.drag.Update(target)
}

// EndDrag releases the dragged vertex.
func (s *Session) EndDrag() {
	s.drag.End()
}

// SetPaused stops or resumes stepping.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether stepping is suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// SetForces replaces wind and gravity. The timestep stays fixed.
func (s *Session) SetForces(wind math.Vec3, gravity float32) {
	s.settings.Forces.Wind = wind
	s.settings.Forces.Gravity = gravity
}

// Step advances the cloth by one fixed timestep. It does nothing while
// paused.
func (s *Session) Step() error {
	if s.paused {
		return nil
	}
	f := s.settings.Forces
	f.Phase = s.clock.Phase()
	if err := s.solver.Advance(s.state, s.drag.Override(), f); err != nil {
		return fmt.Errorf("frame %d: %w", s.frame, err)
	}
	if c, ok := s.clock.(*cloth.StepClock); ok {
		c.Tick()
	}
	s.frame++
	return nil
}

// Run steps n frames.
func (s *Session) Run(n int) error {
	for range n {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Positions is the live render buffer. Callers must treat it as
// read-only and recompute normals after each Step.
func (s *Session) Positions() []math.Vec3 {
	return s.state.Positions
}

// RestPose returns a copy of the folded, undeformed sheet.
func (s *Session) RestPose() []math.Vec3 {
	out := make([]math.Vec3, len(s.rest))
	copy(out, s.rest)
	return out
}

// Topology returns the current topology.
func (s *Session) Topology() *mesh.Topology {
	return s.topo
}

// Frame returns the number of steps since the last reset.
func (s *Session) Frame() int {
	return s.frame
}

// Stats summarizes the current frame.
type Stats struct {
	Frame      int
	MinY, MaxY float32
	MaxStretch float32
}

// Stats reports the current frame's extent and worst stretch.
func (s *Session) Stats() Stats {
	st := Stats{Frame: s.frame, MaxStretch: s.solver.MaxStretch(s.state)}
	for i, p := range s.state.Positions {
		if i == 0 || p.Y < st.MinY {
			st.MinY = p.Y
		}
		if i == 0 || p.Y > st.MaxY {
			st.MaxY = p.Y
		}
	}
	return st
}
