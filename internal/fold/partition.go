package fold

import (
	"fmt"

	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/pkg/math"
)

// SideEpsilon is the dead zone, in mesh units, within which a vertex
// counts as lying on the cut line.
const SideEpsilon = 0.001

// Partitioner finds the region a fold lifts.
type Partitioner struct {
	Epsilon float32
}

// Partition uses the default dead zone.
func Partition(base []math.Vec3, adj mesh.Adjacency, origin, axis math.Vec2, seed int) (mesh.IndexSet, error) {
	return Partitioner{Epsilon: SideEpsilon}.Partition(base, adj, origin, axis, seed)
}

// Side classifies p against the cut line as -1, 0 or +1.
func (pt Partitioner) Side(p math.Vec3, origin, axis math.Vec2) int {
	normal := axis.Normalize().Perp()
	return math.Sign(p.XY().Sub(origin).Dot(normal), pt.Epsilon)
}

// Partition returns the vertices connected to seed that lie strictly on
// the seed's side of the cut line. Vertices on the line stop the flood
// but never join it. A seed on the line yields an empty set.
func (pt Partitioner) Partition(base []math.Vec3, adj mesh.Adjacency, origin, axis math.Vec2, seed int) (mesh.IndexSet, error) {
	n := len(base)
	if seed < 0 || seed >= n {
		return mesh.IndexSet{}, fmt.Errorf("seed %d (vertices %d): %w", seed, n, mesh.ErrVertexOutOfRange)
	}
	if len(adj) != n {
		return mesh.IndexSet{}, fmt.Errorf("adjacency has %d vertices, buffer has %d: %w", len(adj), n, ErrTopologyMismatch)
	}

	result := mesh.NewIndexSet(n)
	side := pt.Side(base[seed], origin, axis)
	if side == 0 {
		return result, nil
	}

	visited := make([]bool, n)
	visited[seed] = true
	_ = result.Add(seed)
	queue := []int{seed}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adj[current] {
			if next < 0 || next >= n {
				return mesh.IndexSet{}, fmt.Errorf("neighbor %d of vertex %d (vertices %d): %w", next, current, n, mesh.ErrVertexOutOfRange)
			}
			if visited[next] {
				continue
			}
			visited[next] = true

			if pt.Side(base[next], origin, axis) != side {
				continue
			}
			_ = result.Add(next)
			queue = append(queue, next)
		}
	}
	return result, nil
}
