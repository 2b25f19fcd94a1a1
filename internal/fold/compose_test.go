package fold

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/pkg/math"
)

const halfPi = float32(gomath.Pi / 2)

func near(a, b math.Vec3) bool {
	return a.Sub(b).MaxAbs() < 1e-4
}

// quarterFolds returns a fold lifting y<0 about the x axis and a fold
// lifting x<0 about the y axis. Both contain the corner (-1,-1).
func quarterFolds(t *testing.T, topo *mesh.Topology) (Fold, Fold) {
	t.Helper()
	below, err := Partition(topo.Positions, topo.Adjacency, math.Vec2{}, math.Vec2{X: 1},
		mesh.NearestVertex(topo.Positions, math.Vec2{Y: -1}))
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	left, err := Partition(topo.Positions, topo.Adjacency, math.Vec2{}, math.Vec2{Y: 1},
		mesh.NearestVertex(topo.Positions, math.Vec2{X: -1}))
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	return Fold{ID: 1, Axis: math.Vec2{X: 1}, Members: below, Angle: halfPi},
		Fold{ID: 2, Axis: math.Vec2{Y: 1}, Members: left, Angle: halfPi}
}

func TestComposeSingleFold(t *testing.T) {
	topo := sheet(t)
	below, _ := quarterFolds(t, topo)
	c := Compositor{Thickness: 0.01}

	out, err := c.Compose(topo.Positions, []Fold{below})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	for i, p := range topo.Positions {
		if !below.Members.Has(i) {
			if out[i] != p {
				t.Errorf("non-member %d moved from %v to %v", i, p, out[i])
			}
			continue
		}
		// quarter turn about x sends (x, y, 0) to (x, 0, y)
		want := math.Vec3{X: p.X, Y: 0, Z: p.Y + 0.01}
		if !near(out[i], want) {
			t.Errorf("member %d = %v, want %v", i, out[i], want)
		}
	}
}

func TestComposeOrderMatters(t *testing.T) {
	topo := sheet(t)
	f1, f2 := quarterFolds(t, topo)
	corner := mesh.NearestVertex(topo.Positions, math.Vec2{X: -1, Y: -1})
	const th = 0.01
	c := Compositor{Thickness: th}

	ab, err := c.Compose(topo.Positions, []Fold{f1, f2})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	ba, err := c.Compose(topo.Positions, []Fold{f2, f1})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	wantAB := math.Vec3{X: -1 + th, Y: 0, Z: 1 + th}
	wantBA := math.Vec3{X: 0, Y: -1 - th, Z: -1 + th}
	if !near(ab[corner], wantAB) {
		t.Errorf("[F1 F2] corner = %v, want %v", ab[corner], wantAB)
	}
	if !near(ba[corner], wantBA) {
		t.Errorf("[F2 F1] corner = %v, want %v", ba[corner], wantBA)
	}
	if ab[corner].Distance(ba[corner]) < 0.5 {
		t.Error("fold order should change the result for overlapping folds")
	}
}

func TestComposeDoesNotMutateBase(t *testing.T) {
	topo := sheet(t)
	f1, f2 := quarterFolds(t, topo)
	before := topo.Clone()

	if _, err := (Compositor{Thickness: DefaultThickness}).Compose(topo.Positions, []Fold{f1, f2}); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	for i := range before {
		if topo.Positions[i] != before[i] {
			t.Fatalf("base vertex %d changed from %v to %v", i, before[i], topo.Positions[i])
		}
	}
}

func TestComposeInverted(t *testing.T) {
	topo := sheet(t)
	f1, _ := quarterFolds(t, topo)
	f1.Inverted = true
	seed := mesh.NearestVertex(topo.Positions, math.Vec2{Y: -1})

	out, err := Compositor{}.Compose(topo.Positions, []Fold{f1})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	want := math.Vec3{Y: 0, Z: 1}
	if !near(out[seed], want) {
		t.Errorf("inverted fold moved seed to %v, want %v", out[seed], want)
	}
}

func TestComposeRejectsMismatch(t *testing.T) {
	topo := sheet(t)
	f1, _ := quarterFolds(t, topo)
	c := Compositor{}

	out := make([]math.Vec3, 3)
	if err := c.Apply(topo.Positions, []Fold{f1}, out); !errors.Is(err, ErrTopologyMismatch) {
		t.Errorf("short output: expected ErrTopologyMismatch, got %v", err)
	}
	if out[0] != (math.Vec3{}) {
		t.Error("output written despite validation failure")
	}

	if _, err := c.Compose(topo.Positions[:4], []Fold{f1}); !errors.Is(err, ErrTopologyMismatch) {
		t.Errorf("foreign fold: expected ErrTopologyMismatch, got %v", err)
	}
}
