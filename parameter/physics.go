package parameter

// Collision Resolution
const (
	// CollisionIterations is the max number of passes over solids per tick
	// A corrected entity may be pushed into another solid; passes stop once clean
	CollisionIterations = 4

	// CollisionSkin is added to every correction so the resolved pair no longer overlaps
	// Touching edges are not overlap, the skin keeps float error on the separated side
	CollisionSkin = 1e-6

	// StickDeadZone is the default magnitude below which a stick reading is ignored
	StickDeadZone = 0.15
)
