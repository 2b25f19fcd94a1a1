package fold

import (
	"fmt"

	"github.com/Faultbox/drape/pkg/math"
)

// DefaultThickness is the depth each fold adds to the layer it lifts.
const DefaultThickness = 0.002

// Compositor applies a fold stack to a base pose.
type Compositor struct {
	Thickness float32
}

// Compose returns a new buffer holding base with folds applied.
func (c Compositor) Compose(base []math.Vec3, folds []Fold) ([]math.Vec3, error) {
	out := make([]math.Vec3, len(base))
	if err := c.Apply(base, folds, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply writes base with folds applied, in order, into out. Each vertex
// is rotated by every fold that contains it, so later folds act on the
// already folded position. base is never modified. Nothing is written
// if validation fails.
func (c Compositor) Apply(base []math.Vec3, folds []Fold, out []math.Vec3) error {
	if len(out) != len(base) {
		return fmt.Errorf("output has %d vertices, base has %d: %w", len(out), len(base), ErrTopologyMismatch)
	}
	for _, f := range folds {
		if f.Members.Capacity() != len(base) {
			return fmt.Errorf("fold %d sized for %d vertices, base has %d: %w",
				f.ID, f.Members.Capacity(), len(base), ErrTopologyMismatch)
		}
	}

	for i, p := range base {
		for _, f := range folds {
			if f.Members.Has(i) {
				p = f.rotate(p, c.Thickness)
			}
		}
		out[i] = p
	}
	return nil
}
