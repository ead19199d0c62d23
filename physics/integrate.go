package physics

import (
	"time"

	"github.com/lixenwraith/baobei/vmath"
)

// Integrate advances pos along dir at speed for dt
// Z is carried unchanged
func Integrate(pos, dir vmath.Vec3F, speed float64, dt time.Duration) vmath.Vec3F {
	if dt <= 0 || speed == 0 || dir.IsZero() {
		return pos
	}
	step := vmath.V3FScale(vmath.V3FPlanar(dir), speed*dt.Seconds())
	return vmath.V3FAdd(pos, step)
}
