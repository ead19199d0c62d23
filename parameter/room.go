package parameter

// Room dimensions in room units; origin bottom-left, +Y up
const (
	RoomWidth  = 1280.0
	RoomHeight = 720.0

	// WallGap is the thickness of the boundary walls
	WallGap = 50.0

	// WallTopY is the inner line of the top wall, lower than the room edge to leave the back wall visible
	WallTopY = 510.0

	// DepthRange is the span of the presentation depth value
	DepthRange = 1000.0
)

// Spawn layout, reference coordinates for a RoomWidth x RoomHeight room
// Size is the full box extent
const (
	PlayerX, PlayerY           = 640.0, 260.0
	PlayerColliderW            = 75.0
	PlayerColliderH            = 50.0
	PlayerColliderOffsetY      = -10.0
	CompanionX, CompanionY     = 1050.0, 150.0
	CompanionZ                 = 85.0
	CompanionTriggerW          = 150.0
	CompanionTriggerH          = 150.0
	SinkX, SinkY               = 1050.0, 500.0
	SinkW, SinkH               = 220.0, 40.0
	SinkOffsetY                = 10.0
	KitchenX, KitchenY         = 300.0, 540.0
	KitchenW, KitchenH         = 400.0, 100.0
	FridgeX, FridgeY           = 720.0, 540.0
	FridgeW, FridgeH           = 100.0, 100.0
	CouchX, CouchY             = 1000.0, 150.0
	CouchW, CouchH             = 300.0, 40.0
	CouchOffsetX, CouchOffsetY = 10.0, 15.0
	TableX, TableY             = 300.0, 200.0
	TableW, TableH             = 300.0, 40.0
	TableOffsetY               = 25.0
)

// Producer trigger areas
const (
	WaterProducerX, WaterProducerY       = 1050.0, 500.0
	WaterProducerW, WaterProducerH       = 230.0, 50.0
	ChipsProducerX, ChipsProducerY       = 210.0, 480.0
	ChipsProducerW, ChipsProducerH       = 75.0, 75.0
	IceCreamProducerX, IceCreamProducerY = 720.0, 540.0
	IceCreamProducerW, IceCreamProducerH = 175.0, 175.0
)
