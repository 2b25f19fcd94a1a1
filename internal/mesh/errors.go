// Package mesh holds the topology consumed by the fold and cloth solvers:
// flat vertex buffers, triangle indices, adjacency, constraints and pins.
package mesh

import "errors"

// ErrVertexOutOfRange reports a vertex index that does not address the
// current vertex buffer.
var ErrVertexOutOfRange = errors.New("vertex index out of range")
