package cloth

import "github.com/Faultbox/drape/pkg/math"

// State is the pair of buffers the solver owns between frames.
// Positions doubles as the render mesh; Previous holds last step's
// positions and so encodes velocity.
type State struct {
	Positions []math.Vec3
	Previous  []math.Vec3
}

// NewState starts a sheet at rest on a copy of rest. The caller keeps
// ownership of rest.
func NewState(rest []math.Vec3) *State {
	s := &State{
		Positions: make([]math.Vec3, len(rest)),
		Previous:  make([]math.Vec3, len(rest)),
	}
	copy(s.Positions, rest)
	copy(s.Previous, rest)
	return s
}

// Len returns the vertex count.
func (s *State) Len() int {
	return len(s.Positions)
}

// Velocity returns the implicit per-step velocity of vertex i.
func (s *State) Velocity(i int) math.Vec3 {
	return s.Positions[i].Sub(s.Previous[i])
}
