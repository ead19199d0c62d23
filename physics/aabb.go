package physics

import "github.com/lixenwraith/baobei/vmath"

// Penetration returns the overlap depth of a and b on each axis
// Overlap only when both are strictly positive
func Penetration(a, b vmath.Box) (px, py float64) {
	return vmath.BoxPenetration(a, b)
}

// Overlaps reports strict interior overlap
func Overlaps(a, b vmath.Box) bool {
	return vmath.BoxOverlaps(a, b)
}

// Resolve computes the correction that moves box a out of box b
// Correction is along the axis of least penetration, away from b's centre, plus skin
// Coincident centres push toward +X or +Y
func Resolve(a, b vmath.Box, skin float64) (dx, dy float64, hit bool) {
	px, py := Penetration(a, b)
	if px <= 0 || py <= 0 {
		return 0, 0, false
	}

	if px <= py {
		dx = px + skin
		if a.CX < b.CX {
			dx = -dx
		}
		return dx, 0, true
	}

	dy = py + skin
	if a.CY < b.CY {
		dy = -dy
	}
	return 0, dy, true
}
