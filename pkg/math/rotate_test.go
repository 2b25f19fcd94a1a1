package math

import (
	"math"
	"testing"
)

func approxVec3(a, b Vec3, eps float32) bool {
	return a.Sub(b).MaxAbs() <= eps
}

func TestRotateAbout(t *testing.T) {
	halfPi := float32(math.Pi / 2)

	tests := []struct {
		name   string
		p      Vec3
		origin Vec3
		axis   Vec3
		angle  float32
		want   Vec3
	}{
		{
			name:  "x axis quarter turn lifts -y into -z",
			p:     Vec3{0, -1, 0},
			axis:  Vec3{1, 0, 0},
			angle: halfPi,
			want:  Vec3{0, 0, -1},
		},
		{
			name:  "y axis quarter turn",
			p:     Vec3{-1, 0, 0},
			axis:  Vec3{0, 1, 0},
			angle: halfPi,
			want:  Vec3{0, 0, 1},
		},
		{
			name:   "offset origin",
			p:      Vec3{2, 0, 0},
			origin: Vec3{1, 0, 0},
			axis:   Vec3{0, 1, 0},
			angle:  float32(math.Pi),
			want:   Vec3{0, 0, 0},
		},
		{
			name:  "unnormalized axis",
			p:     Vec3{0, 1, 0},
			axis:  Vec3{5, 0, 0},
			angle: halfPi,
			want:  Vec3{0, 0, 1},
		},
		{
			name:  "zero axis is identity",
			p:     Vec3{1, 2, 3},
			angle: halfPi,
			want:  Vec3{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateAbout(tt.p, tt.origin, tt.axis, tt.angle)
			if !approxVec3(got, tt.want, 1e-5) {
				t.Errorf("RotateAbout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateAboutPreservesDistanceToAxis(t *testing.T) {
	origin := Vec3{0.5, 0.5, 0}
	axis := Vec3{1, 1, 0}
	p := Vec3{2, -1, 0}
	before := p.Distance(origin)
	for _, angle := range []float32{0.3, 1, 2.5, -1.2} {
		got := RotateAbout(p, origin, axis, angle)
		if d := got.Distance(origin); math.Abs(float64(d-before)) > 1e-4 {
			t.Errorf("angle %v: distance to origin = %v, want %v", angle, d, before)
		}
	}
}
