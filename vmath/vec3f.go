package vmath

import (
	"math"
)

// Epsilon is the tolerance used for unit-length and separation checks
const Epsilon = 1e-9

// Vec3F is a float64 3D vector
// Z is carried for visual lift only; planar helpers ignore it
type Vec3F struct {
	X, Y, Z float64
}

// Vec2F is a float64 2D extent or planar vector
type Vec2F struct {
	X, Y float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns v scaled to unit length, zero vector stays zero
// Components are pre-scaled by the largest magnitude so tiny or huge inputs keep precision
func V3FNormalize(v Vec3F) Vec3F {
	m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if m == 0 || !Finite(m) {
		return Vec3F{}
	}
	s := Vec3F{v.X / m, v.Y / m, v.Z / m}
	mag := V3FMag(s)
	return Vec3F{s.X / mag, s.Y / mag, s.Z / mag}
}

// V3FPlanar drops the Z component
func V3FPlanar(v Vec3F) Vec3F {
	return Vec3F{X: v.X, Y: v.Y}
}

// IsZero reports whether every component is exactly zero
func (v Vec3F) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsUnitOrZero reports whether v has length 0 or 1 within Epsilon tolerance
func IsUnitOrZero(v Vec3F) bool {
	if v.IsZero() {
		return true
	}
	return math.Abs(V3FMag(v)-1) <= 1e-6
}

// Finite reports whether x is neither NaN nor infinite
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
