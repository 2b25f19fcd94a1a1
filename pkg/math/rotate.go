package math

import "github.com/go-gl/mathgl/mgl32"

// RotateAbout rotates p by angle radians around the line through origin
// with direction axis. axis need not be normalized; a zero axis leaves p
// unchanged.
func RotateAbout(p, origin, axis Vec3, angle float32) Vec3 {
	if axis.Length() == 0 || angle == 0 {
		return p
	}
	q := mgl32.QuatRotate(angle, axis.Normalize().Mgl())
	local := p.Sub(origin)
	return FromMgl(q.Rotate(local.Mgl())).Add(origin)
}
