package mesh

import (
	"fmt"

	"github.com/Faultbox/drape/pkg/math"
)

// Plane selects which world plane a grid is laid out in.
type Plane int

const (
	// PlaneXY is the drafting plane: a panel hanging upright, facing +Z.
	PlaneXY Plane = iota
	// PlaneXZ lays the grid flat at height Origin.Y.
	PlaneXZ
)

// GridSpec describes a rectangular sheet of Cols x Rows vertices.
// Vertices are numbered row-major; row 0 sits at Origin.
type GridSpec struct {
	Cols, Rows int
	Spacing    float32
	Origin     math.Vec3
	Plane      Plane
	// StructuralOnly constrains only horizontal and vertical neighbors,
	// leaving out the triangle diagonals.
	StructuralOnly bool
	Pins           []int
}

// Index returns the vertex index of column c in row r.
func (g GridSpec) Index(c, r int) int {
	return r*g.Cols + c
}

// TopRow returns the indices of the last row, the one farthest from Origin.
func (g GridSpec) TopRow() []int {
	out := make([]int, g.Cols)
	for c := range g.Cols {
		out[c] = g.Index(c, g.Rows-1)
	}
	return out
}

// StructuralEdges returns every horizontal and vertical neighbor pair.
func (g GridSpec) StructuralEdges() [][2]int {
	var edges [][2]int
	for r := range g.Rows {
		for c := range g.Cols {
			if c+1 < g.Cols {
				edges = append(edges, [2]int{g.Index(c, r), g.Index(c+1, r)})
			}
			if r+1 < g.Rows {
				edges = append(edges, [2]int{g.Index(c, r), g.Index(c, r+1)})
			}
		}
	}
	return edges
}

// NewGrid builds a triangulated sheet topology.
func NewGrid(spec GridSpec) (*Topology, error) {
	if spec.Cols < 2 || spec.Rows < 2 {
		return nil, fmt.Errorf("grid needs at least 2x2 vertices, got %dx%d", spec.Cols, spec.Rows)
	}
	if spec.Spacing <= 0 {
		return nil, fmt.Errorf("grid spacing must be positive, got %v", spec.Spacing)
	}

	positions := make([]math.Vec3, 0, spec.Cols*spec.Rows)
	for r := range spec.Rows {
		for c := range spec.Cols {
			u := float32(c) * spec.Spacing
			v := float32(r) * spec.Spacing
			offset := math.Vec3{X: u, Y: v}
			if spec.Plane == PlaneXZ {
				offset = math.Vec3{X: u, Z: v}
			}
			positions = append(positions, spec.Origin.Add(offset))
		}
	}

	indices := make([]uint32, 0, (spec.Cols-1)*(spec.Rows-1)*6)
	for r := 0; r < spec.Rows-1; r++ {
		for c := 0; c < spec.Cols-1; c++ {
			a := uint32(spec.Index(c, r))
			b := a + 1
			up := uint32(spec.Index(c, r+1))
			upRight := up + 1
			indices = append(indices, a, b, up, b, upRight, up)
		}
	}

	topo, err := NewTopology(positions, indices, spec.Pins)
	if err != nil {
		return nil, err
	}
	if spec.StructuralOnly {
		topo.Constraints = EdgeConstraints(positions, spec.StructuralEdges())
	}
	return topo, nil
}

// NearestVertex returns the index of the vertex whose drafting-plane
// projection is closest to p, or -1 for an empty buffer.
func NearestVertex(positions []math.Vec3, p math.Vec2) int {
	best := -1
	var bestDist float32
	for i, v := range positions {
		d := v.XY().Distance(p)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
