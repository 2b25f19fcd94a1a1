package fold

import "fmt"

// Stack is the ordered list of folds. Order matters: the compositor
// applies folds front to back, and Undo only ever removes the last one.
type Stack struct {
	folds  []Fold
	nextID int
}

// Push appends f, assigning it the next ID, and returns the stored fold.
func (s *Stack) Push(f Fold) Fold {
	s.nextID++
	f.ID = s.nextID
	s.folds = append(s.folds, f)
	return f
}

// Undo removes and returns the most recent fold.
func (s *Stack) Undo() (Fold, error) {
	if len(s.folds) == 0 {
		return Fold{}, ErrNoFolds
	}
	last := s.folds[len(s.folds)-1]
	s.folds = s.folds[:len(s.folds)-1]
	return last, nil
}

// Clear removes every fold.
func (s *Stack) Clear() {
	s.folds = nil
}

// Len returns the number of folds.
func (s *Stack) Len() int {
	return len(s.folds)
}

// Folds returns the folds in application order.
func (s *Stack) Folds() []Fold {
	out := make([]Fold, len(s.folds))
	copy(out, s.folds)
	return out
}

// SetAngle overrides the current angle of fold id.
func (s *Stack) SetAngle(id int, angle float32) error {
	for i := range s.folds {
		if s.folds[i].ID == id {
			s.folds[i].Angle = angle
			return nil
		}
	}
	return fmt.Errorf("fold %d: %w", id, ErrUnknownFold)
}

// Animate moves every fold's Angle toward its TargetAngle by at most
// speed*dt radians. It reports whether any angle changed.
func (s *Stack) Animate(dt, speed float32) bool {
	step := speed * dt
	if step <= 0 {
		return false
	}
	changed := false
	for i := range s.folds {
		f := &s.folds[i]
		delta := f.TargetAngle - f.Angle
		switch {
		case delta == 0:
			continue
		case delta > step:
			f.Angle += step
		case delta < -step:
			f.Angle -= step
		default:
			f.Angle = f.TargetAngle
		}
		changed = true
	}
	return changed
}
