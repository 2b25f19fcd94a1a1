package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/drape/pkg/math"
)

// WriteOBJ writes positions and triangles as a Wavefront OBJ document.
// Normals are left to the consumer.
func WriteOBJ(w io.Writer, name string, positions []math.Vec3, indices []uint32) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, p := range positions {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		// OBJ indices are 1-based
		fmt.Fprintf(bw, "f %d %d %d\n", indices[i]+1, indices[i+1]+1, indices[i+2]+1)
	}
	return bw.Flush()
}
