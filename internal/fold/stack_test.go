package fold

import (
	"errors"
	"testing"
)

func TestStackPushUndo(t *testing.T) {
	var s Stack
	a := s.Push(Fold{Angle: 1})
	b := s.Push(Fold{Angle: 2})
	if a.ID == b.ID {
		t.Fatalf("IDs should be unique, got %d twice", a.ID)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	last, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if last.ID != b.ID {
		t.Errorf("Undo() removed fold %d, want %d", last.ID, b.ID)
	}
	folds := s.Folds()
	if len(folds) != 1 || folds[0].ID != a.ID {
		t.Errorf("Folds() = %+v, want only fold %d", folds, a.ID)
	}

	s.Clear()
	if _, err := s.Undo(); !errors.Is(err, ErrNoFolds) {
		t.Errorf("Undo on empty stack: expected ErrNoFolds, got %v", err)
	}
	if c := s.Push(Fold{}); c.ID <= b.ID {
		t.Errorf("IDs should keep increasing after Clear, got %d", c.ID)
	}
}

func TestStackFoldsIsACopy(t *testing.T) {
	var s Stack
	s.Push(Fold{Angle: 1})
	folds := s.Folds()
	folds[0].Angle = 99
	if s.Folds()[0].Angle != 1 {
		t.Error("mutating Folds() result changed the stack")
	}
}

func TestStackSetAngle(t *testing.T) {
	var s Stack
	f := s.Push(Fold{})
	if err := s.SetAngle(f.ID, 0.5); err != nil {
		t.Fatalf("SetAngle: %v", err)
	}
	if got := s.Folds()[0].Angle; got != 0.5 {
		t.Errorf("Angle = %v, want 0.5", got)
	}
	if err := s.SetAngle(f.ID+10, 1); !errors.Is(err, ErrUnknownFold) {
		t.Errorf("expected ErrUnknownFold, got %v", err)
	}
}

func TestStackAnimate(t *testing.T) {
	var s Stack
	s.Push(Fold{TargetAngle: 1})
	s.Push(Fold{Angle: 1, TargetAngle: -0.25})

	if !s.Animate(0.5, 1) {
		t.Fatal("Animate should report a change")
	}
	folds := s.Folds()
	if folds[0].Angle != 0.5 {
		t.Errorf("fold 0 angle = %v, want 0.5", folds[0].Angle)
	}
	if folds[1].Angle != 0.5 {
		t.Errorf("fold 1 angle = %v, want 0.5", folds[1].Angle)
	}

	for s.Animate(0.5, 1) {
	}
	folds = s.Folds()
	if folds[0].Angle != 1 || folds[1].Angle != -0.25 {
		t.Errorf("angles = %v, %v, want targets 1, -0.25", folds[0].Angle, folds[1].Angle)
	}
	if s.Animate(0, 1) {
		t.Error("zero dt should not change anything")
	}
}
