package mesh

import "github.com/Faultbox/drape/pkg/math"

// Constraint keeps vertices A and B at distance Rest.
type Constraint struct {
	A, B int
	Rest float32
}

// TriangleConstraints emits one constraint per side of every triangle.
// Sides shared by two triangles appear twice, which makes those edges
// stiffer than boundary edges; use DedupeConstraints to opt out.
func TriangleConstraints(positions []math.Vec3, indices []uint32) []Constraint {
	out := make([]Constraint, 0, len(indices))
	add := func(a, b uint32) {
		out = append(out, Constraint{
			A:    int(a),
			B:    int(b),
			Rest: positions[a].Distance(positions[b]),
		})
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return out
}

// EdgeConstraints emits one constraint per edge pair.
func EdgeConstraints(positions []math.Vec3, edges [][2]int) []Constraint {
	out := make([]Constraint, 0, len(edges))
	for _, e := range edges {
		out = append(out, Constraint{
			A:    e[0],
			B:    e[1],
			Rest: positions[e[0]].Distance(positions[e[1]]),
		})
	}
	return out
}

// DedupeConstraints drops constraints joining an already seen vertex pair,
// in either order. The first occurrence wins.
func DedupeConstraints(cs []Constraint) []Constraint {
	seen := make(map[[2]int]bool, len(cs))
	out := make([]Constraint, 0, len(cs))
	for _, c := range cs {
		key := [2]int{c.A, c.B}
		if c.B < c.A {
			key = [2]int{c.B, c.A}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
