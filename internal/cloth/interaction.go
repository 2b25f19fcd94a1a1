package cloth

import "github.com/Faultbox/drape/pkg/math"

// Override pins one vertex to a target chosen by the user.
type Override struct {
	Vertex int
	Target math.Vec3
}

// Interaction is the single drag slot. Input handling writes it between
// frames and the solver reads it during Advance.
type Interaction struct {
	active   bool
	override Override
}

// Start begins dragging vertex toward target, replacing any drag in progress.
func (in *Interaction) Start(vertex int, target math.Vec3) {
	in.active = true
	in.override = Override{Vertex: vertex, Target: target}
}

// Update moves the drag target. It is ignored when no drag is active.
func (in *Interaction) Update(target math.Vec3) {
	if in.active {
		in.override.Target = target
	}
}

// End releases the dragged vertex.
func (in *Interaction) End() {
	in.active = false
	in.override = Override{}
}

// Active reports whether a vertex is being dragged.
func (in *Interaction) Active() bool {
	return in.active
}

// Override returns the current override, or nil when idle.
func (in *Interaction) Override() *Override {
	if !in.active {
		return nil
	}
	o := in.override
	return &o
}
