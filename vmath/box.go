package vmath

import "math"

// Box is an axis-aligned rectangle described by centre and half-extents
type Box struct {
	CX, CY float64 // Centre
	HW, HH float64 // Half width, half height
}

// BoxAt builds a box centred on the planar part of center with full size
func BoxAt(center Vec3F, size Vec2F) Box {
	return Box{CX: center.X, CY: center.Y, HW: size.X / 2, HH: size.Y / 2}
}

func (b Box) MinX() float64 { return b.CX - b.HW }
func (b Box) MaxX() float64 { return b.CX + b.HW }
func (b Box) MinY() float64 { return b.CY - b.HH }
func (b Box) MaxY() float64 { return b.CY + b.HH }

// BoxPenetration returns overlap depth on each axis
// Both values strictly positive means the boxes overlap; touching edges do not
func BoxPenetration(a, b Box) (px, py float64) {
	px = a.HW + b.HW - math.Abs(a.CX-b.CX)
	py = a.HH + b.HH - math.Abs(a.CY-b.CY)
	return px, py
}

// BoxOverlaps checks strict interior overlap of two boxes
func BoxOverlaps(a, b Box) bool {
	px, py := BoxPenetration(a, b)
	return px > 0 && py > 0
}

// BoxContainsPoint checks if point lies strictly inside the box
func BoxContainsPoint(b Box, x, y float64) bool {
	return math.Abs(x-b.CX) < b.HW && math.Abs(y-b.CY) < b.HH
}
