package room

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/baobei/component"
	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/vmath"
)

// Layout holds the entities created by Spawn
type Layout struct {
	Player    core.Entity
	Companion core.Entity
	Producers map[core.Item]core.Entity
	Solids    []core.Entity // Furniture and walls
}

// solid is a static anchor in reference room coordinates
type solid struct {
	name   string
	kind   core.Kind
	x, y   float64
	w, h   float64
	ox, oy float64
}

type producer struct {
	item core.Item
	x, y float64
	w, h float64
}

var furniture = []solid{
	{"sink", core.KindFurniture, parameter.SinkX, parameter.SinkY, parameter.SinkW, parameter.SinkH, 0, parameter.SinkOffsetY},
	{"kitchen", core.KindFurniture, parameter.KitchenX, parameter.KitchenY, parameter.KitchenW, parameter.KitchenH, 0, 0},
	{"fridge", core.KindFurniture, parameter.FridgeX, parameter.FridgeY, parameter.FridgeW, parameter.FridgeH, 0, 0},
	{"couch", core.KindFurniture, parameter.CouchX, parameter.CouchY, parameter.CouchW, parameter.CouchH, parameter.CouchOffsetX, parameter.CouchOffsetY},
	{"table", core.KindFurniture, parameter.TableX, parameter.TableY, parameter.TableW, parameter.TableH, 0, parameter.TableOffsetY},
}

var producers = []producer{
	{core.ItemWaterGlass, parameter.WaterProducerX, parameter.WaterProducerY, parameter.WaterProducerW, parameter.WaterProducerH},
	{core.ItemChips, parameter.ChipsProducerX, parameter.ChipsProducerY, parameter.ChipsProducerW, parameter.ChipsProducerH},
	{core.ItemIceCream, parameter.IceCreamProducerX, parameter.IceCreamProducerY, parameter.IceCreamProducerW, parameter.IceCreamProducerH},
}

// walls encloses the room; the top wall sits below the edge to leave the back wall visible
func walls() []solid {
	const (
		w   = parameter.RoomWidth
		h   = parameter.RoomHeight
		gap = parameter.WallGap
	)
	return []solid{
		{"wall_top", core.KindWall, w / 2, parameter.WallTopY + gap, w, gap, 0, 0},
		{"wall_bottom", core.KindWall, w / 2, gap / 2, w, gap, 0, 0},
		{"wall_left", core.KindWall, gap / 2, h / 2, gap, h, 0, 0},
		{"wall_right", core.KindWall, w - gap/2, h / 2, gap, h, 0, 0},
	}
}

// Spawn clears the world and builds the room scaled to the configured size
// The companion's first request is drawn from the world random source
func Spawn(w *engine.World) (Layout, error) {
	res := w.Resource
	cfg := res.Config
	cs := w.Components

	w.Clear()

	sx := cfg.RoomWidth / parameter.RoomWidth
	sy := cfg.RoomHeight / parameter.RoomHeight
	at := func(x, y, z float64) vmath.Vec3F {
		return vmath.Vec3F{X: x * sx, Y: y * sy, Z: z}
	}

	layout := Layout{Producers: make(map[core.Item]core.Entity, len(producers))}

	// Player
	playerCol, err := component.NewBoxCollider(parameter.PlayerColliderW*sx, parameter.PlayerColliderH*sy,
		vmath.Vec3F{Y: parameter.PlayerColliderOffsetY * sy})
	if err != nil {
		return Layout{}, fmt.Errorf("spawn player: %w", err)
	}
	layout.Player = w.CreateEntity()
	cs.Player.Set(layout.Player, component.PlayerComponent{})
	cs.Kind.Set(layout.Player, component.KindComponent{Kind: core.KindPlayer, Name: "didi"})
	cs.Position.Set(layout.Player, component.PositionComponent{Vec3F: at(parameter.PlayerX, parameter.PlayerY, 0)})
	cs.Collider.Set(layout.Player, playerCol)
	cs.Movement.Set(layout.Player, component.MovementComponent{Speed: cfg.PlayerSpeed})
	cs.Carrier.Set(layout.Player, component.CarrierComponent{})

	// Companion
	area, err := component.NewTriggerArea(parameter.CompanionTriggerW*sx, parameter.CompanionTriggerH*sy)
	if err != nil {
		return Layout{}, fmt.Errorf("spawn companion: %w", err)
	}
	layout.Companion = w.CreateEntity()
	cs.Companion.Set(layout.Companion, component.CompanionComponent{})
	cs.Kind.Set(layout.Companion, component.KindComponent{Kind: core.KindCompanion, Name: "baobei"})
	cs.Position.Set(layout.Companion, component.PositionComponent{Vec3F: at(parameter.CompanionX, parameter.CompanionY, parameter.CompanionZ)})
	cs.Trigger.Set(layout.Companion, area)
	cs.Requester.Set(layout.Companion, component.RequesterComponent{Item: core.RandomItem(res.Rand)})
	cs.Mood.Set(layout.Companion, component.MoodComponent{Value: core.MoodEmpty.Add(cfg.MoodInitial)})

	// Furniture and walls
	for _, s := range slices.Concat(furniture, walls()) {
		col, err := component.NewBoxCollider(s.w*sx, s.h*sy, vmath.Vec3F{X: s.ox * sx, Y: s.oy * sy})
		if err != nil {
			return Layout{}, fmt.Errorf("spawn %s: %w", s.name, err)
		}
		e := w.CreateEntity()
		cs.Kind.Set(e, component.KindComponent{Kind: s.kind, Name: s.name})
		cs.Position.Set(e, component.PositionComponent{Vec3F: at(s.x, s.y, 0)})
		cs.Collider.Set(e, col)
		cs.Static.Set(e, component.StaticComponent{})
		layout.Solids = append(layout.Solids, e)
	}

	// Producers
	for _, p := range producers {
		trig, err := component.NewTriggerArea(p.w*sx, p.h*sy)
		if err != nil {
			return Layout{}, fmt.Errorf("spawn %v producer: %w", p.item, err)
		}
		e := w.CreateEntity()
		cs.Kind.Set(e, component.KindComponent{Kind: core.KindProducer, Name: p.item.String()})
		cs.Position.Set(e, component.PositionComponent{Vec3F: at(p.x, p.y, 0)})
		cs.Trigger.Set(e, trig)
		cs.Producer.Set(e, component.ProducerComponent{Item: p.item})
		layout.Producers[p.item] = e
	}

	return layout, nil
}
