package mesh

// Adjacency lists the neighbors of each vertex. It is undirected and
// read-only once built.
type Adjacency [][]int

// BuildAdjacency links the three sides of every triangle, skipping
// pairs that are already connected.
func BuildAdjacency(vertexCount int, indices []uint32) Adjacency {
	adj := make(Adjacency, vertexCount)
	link := func(a, b int) {
		if a == b || adj.Connected(a, b) {
			return
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		link(a, b)
		link(b, c)
		link(c, a)
	}
	return adj
}

// Connected reports whether a and b share an edge.
func (adj Adjacency) Connected(a, b int) bool {
	if a < 0 || a >= len(adj) {
		return false
	}
	for _, n := range adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// EdgeCount returns the number of undirected edges.
func (adj Adjacency) EdgeCount() int {
	total := 0
	for _, ns := range adj {
		total += len(ns)
	}
	return total / 2
}
