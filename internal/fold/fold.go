// Package fold partitions a sheet along cut lines and composes the
// resulting rigid rotations into a folded rest pose.
package fold

import (
	"errors"

	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/pkg/math"
)

var (
	// ErrNoFolds is returned when undoing an empty stack.
	ErrNoFolds = errors.New("no folds to undo")
	// ErrUnknownFold is returned for a fold ID that is not on the stack.
	ErrUnknownFold = errors.New("unknown fold")
	// ErrTopologyMismatch is returned when a fold was partitioned against
	// a different vertex buffer than the one being folded.
	ErrTopologyMismatch = errors.New("fold does not match vertex buffer")
)

// Fold is one crease: the vertices in Members rotate by Angle about the
// line through Origin along Axis. Drag folds and drawn folds differ only
// in how Origin and Axis were picked.
type Fold struct {
	ID          int
	Origin      math.Vec2
	Axis        math.Vec2
	Members     mesh.IndexSet
	Angle       float32
	TargetAngle float32
	// Inverted folds the other way (valley instead of mountain).
	Inverted bool
}

// AppliedAngle is the signed rotation the compositor uses.
func (f Fold) AppliedAngle() float32 {
	if f.Inverted {
		return -f.Angle
	}
	return f.Angle
}

// rotate moves p about the crease and lifts it by thickness.
func (f Fold) rotate(p math.Vec3, thickness float32) math.Vec3 {
	p = math.RotateAbout(p, f.Origin.Vec3(0), f.Axis.Vec3(0), f.AppliedAngle())
	p.Z += thickness
	return p
}
