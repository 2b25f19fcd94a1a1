package mesh

import (
	"fmt"

	"github.com/Faultbox/drape/pkg/math"
)

// Topology is what a pattern generator hands to the deformation core.
// Vertex identity is the index into Positions for the lifetime of the topology.
type Topology struct {
	Positions []math.Vec3
	Indices   []uint32
	Adjacency Adjacency
	Pins      IndexSet
	// Constraints defaults to TriangleConstraints(Positions, Indices) when nil.
	Constraints []Constraint
}

// NewTopology validates indices and builds adjacency from the triangles.
func NewTopology(positions []math.Vec3, indices []uint32, pins []int) (*Topology, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index buffer length %d is not a multiple of 3", len(indices))
	}
	n := len(positions)
	for _, idx := range indices {
		if int(idx) >= n {
			return nil, fmt.Errorf("triangle index %d (vertices %d): %w", idx, n, ErrVertexOutOfRange)
		}
	}
	pinSet, err := IndexSetOf(n, pins...)
	if err != nil {
		return nil, fmt.Errorf("pins: %w", err)
	}
	return &Topology{
		Positions: positions,
		Indices:   indices,
		Adjacency: BuildAdjacency(n, indices),
		Pins:      pinSet,
	}, nil
}

// VertexCount returns the number of vertices.
func (t *Topology) VertexCount() int {
	return len(t.Positions)
}

// TriangleCount returns the number of triangles.
func (t *Topology) TriangleCount() int {
	return len(t.Indices) / 3
}

// ConstraintsFor returns the distance constraints measured against rest.
// rest must have one entry per vertex.
func (t *Topology) ConstraintsFor(rest []math.Vec3) ([]Constraint, error) {
	if len(rest) != len(t.Positions) {
		return nil, fmt.Errorf("rest pose has %d vertices, topology has %d", len(rest), len(t.Positions))
	}
	if t.Constraints == nil {
		return TriangleConstraints(rest, t.Indices), nil
	}
	out := make([]Constraint, len(t.Constraints))
	for i, c := range t.Constraints {
		if c.A < 0 || c.A >= len(rest) || c.B < 0 || c.B >= len(rest) {
			return nil, fmt.Errorf("constraint %d (%d-%d): %w", i, c.A, c.B, ErrVertexOutOfRange)
		}
		out[i] = Constraint{A: c.A, B: c.B, Rest: rest[c.A].Distance(rest[c.B])}
	}
	return out, nil
}

// Clone returns a copy of the base positions.
func (t *Topology) Clone() []math.Vec3 {
	out := make([]math.Vec3, len(t.Positions))
	copy(out, t.Positions)
	return out
}
