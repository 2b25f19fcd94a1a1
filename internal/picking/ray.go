// Package picking casts rays into the sheet to grab and drag vertices.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/drape/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay returns a ray from origin toward dir. dir is normalized.
func NewRay(origin, dir math.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	// Normalized device coords, Y flipped
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	nearWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	near := perspectiveDivide(nearWorld)
	far := perspectiveDivide(farWorld)
	return NewRay(near, far.Sub(near))
}

func perspectiveDivide(v mgl32.Vec4) math.Vec3 {
	if v[3] != 0 {
		return math.Vec3{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]}
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// IntersectPlane intersects the ray with the plane through point with
// the given normal. Hits behind the origin are rejected.
func (r Ray) IntersectPlane(point, normal math.Vec3) (math.Vec3, bool) {
	denom := r.Direction.Dot(normal)
	if gomath.Abs(float64(denom)) < 1e-6 {
		return math.Vec3{}, false // Parallel
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	// Entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Bounds returns the box around positions grown by pad on every side.
func Bounds(positions []math.Vec3, pad float32) AABB {
	if len(positions) == 0 {
		return AABB{}
	}
	box := AABB{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		box.Min = math.Vec3{X: min(box.Min.X, p.X), Y: min(box.Min.Y, p.Y), Z: min(box.Min.Z, p.Z)}
		box.Max = math.Vec3{X: max(box.Max.X, p.X), Y: max(box.Max.Y, p.Y), Z: max(box.Max.Z, p.Z)}
	}
	grow := math.Vec3{X: pad, Y: pad, Z: pad}
	box.Min = box.Min.Sub(grow)
	box.Max = box.Max.Add(grow)
	return box
}

// PickVertex returns the vertex nearest the ray origin among those
// within radius of the ray. Vertices behind the origin are ignored.
func PickVertex(positions []math.Vec3, r Ray, radius float32) (int, bool) {
	if _, hit := r.IntersectAABB(Bounds(positions, radius)); !hit {
		return -1, false
	}
	best, bestT := -1, float32(gomath.MaxFloat32)
	r2 := radius * radius
	for i, p := range positions {
		rel := p.Sub(r.Origin)
		t := rel.Dot(r.Direction)
		if t < 0 {
			continue
		}
		off := rel.Sub(r.Direction.Scale(t))
		if off.Dot(off) > r2 {
			continue
		}
		if t < bestT {
			best, bestT = i, t
		}
	}
	return best, best >= 0
}
