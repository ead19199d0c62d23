package component

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/baobei/vmath"
)

var ErrInvalidExtent = errors.New("extent must be positive and finite")

// BoxColliderComponent is a solid axis-aligned box
// Size is the full extent; the box centre is Position + Offset
type BoxColliderComponent struct {
	Size   vmath.Vec2F
	Offset vmath.Vec3F
}

// NewBoxCollider validates extents and builds a collider
func NewBoxCollider(w, h float64, offset vmath.Vec3F) (BoxColliderComponent, error) {
	if err := checkExtent(w, h); err != nil {
		return BoxColliderComponent{}, fmt.Errorf("box collider: %w", err)
	}
	return BoxColliderComponent{Size: vmath.Vec2F{X: w, Y: h}, Offset: offset}, nil
}

// Box returns the world-space box for an entity at pos
func (c BoxColliderComponent) Box(pos vmath.Vec3F) vmath.Box {
	return vmath.BoxAt(vmath.V3FAdd(pos, c.Offset), c.Size)
}

// TriggerAreaComponent is a non-solid detection box centred on the owner position
type TriggerAreaComponent struct {
	Size vmath.Vec2F
}

// NewTriggerArea validates extents and builds a trigger area
func NewTriggerArea(w, h float64) (TriggerAreaComponent, error) {
	if err := checkExtent(w, h); err != nil {
		return TriggerAreaComponent{}, fmt.Errorf("trigger area: %w", err)
	}
	return TriggerAreaComponent{Size: vmath.Vec2F{X: w, Y: h}}, nil
}

// Box returns the world-space trigger box for an owner at pos
func (c TriggerAreaComponent) Box(pos vmath.Vec3F) vmath.Box {
	return vmath.BoxAt(pos, c.Size)
}

// StaticComponent marks an anchor that collision never displaces
type StaticComponent struct{}

func checkExtent(w, h float64) error {
	if !vmath.Finite(w) || !vmath.Finite(h) || w <= 0 || h <= 0 {
		return fmt.Errorf("%gx%g: %w", w, h, ErrInvalidExtent)
	}
	return nil
}
