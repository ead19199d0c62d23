package component

import "github.com/lixenwraith/baobei/vmath"

// PositionComponent is the world location of an entity
// Z is a visual lift and takes no part in collision or trigger tests
type PositionComponent struct {
	vmath.Vec3F
}

// MovementComponent is the intent written by the movement phase
type MovementComponent struct {
	Direction vmath.Vec3F // Unit or zero, accumulated sum of this tick's messages
	Speed     float64     // Room units per second
	Moved     bool        // Set when position changed this tick, read by collision
	From      vmath.Vec3F // Position before this tick's move, collision replays the path from here
}
