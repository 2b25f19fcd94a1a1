package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec2Perp(t *testing.T) {
	got := Vec2{1, 0}.Perp()
	want := Vec2{0, 1}
	if got != want {
		t.Errorf("Vec2.Perp() = %v, want %v", got, want)
	}
	if d := (Vec2{3, -2}).Dot(Vec2{3, -2}.Perp()); d != 0 {
		t.Errorf("Perp should be orthogonal, dot = %v", d)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		f    float32
		want int
	}{
		{1, 1},
		{-1, -1},
		{0, 0},
		{0.0005, 0},
		{-0.0009, 0},
		{0.002, 1},
		{-0.002, -1},
	}
	for _, tt := range tests {
		if got := Sign(tt.f, 0.001); got != tt.want {
			t.Errorf("Sign(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	got := a.Lerp(b, 0.5)
	want := Vec3{5, 10, 15}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestVec3MaxAbs(t *testing.T) {
	if got := (Vec3{1, -7, 3}).MaxAbs(); got != 7 {
		t.Errorf("Vec3.MaxAbs() = %v, want 7", got)
	}
}

func TestVec3MglRoundTrip(t *testing.T) {
	v := Vec3{1.5, -2, 3}
	if got := FromMgl(v.Mgl()); got != v {
		t.Errorf("FromMgl(Mgl()) = %v, want %v", got, v)
	}
	if d := float64(v.Distance(Vec3{1.5, -2, 0})); math.Abs(d-3) > 1e-6 {
		t.Errorf("Distance = %v, want 3", d)
	}
}
