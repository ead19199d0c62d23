package system

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/parameter"
)

// ExchangeSystem runs the pick/drop/deliver state machine of the carried-item slot
// At most one transition per tick, gated by the pick/drop cooldown
//
// Priority on action:
//  1. carrying the requested item inside the companion area: deliver
//  2. carrying anything else, anywhere: drop
//  3. empty inside a producer area: pickup, lowest producer ID wins
//  4. otherwise nothing and the cooldown is kept
type ExchangeSystem struct {
	world *engine.World

	cooldown      core.Cooldown
	actionCursor  event.Cursor
	triggerCursor event.Cursor
}

// NewExchangeSystem creates the exchange system, failing on a negative cooldown
func NewExchangeSystem(world *engine.World) (engine.System, error) {
	cd, err := core.NewCooldown(world.Resource.Config.Cooldown.Duration)
	if err != nil {
		return nil, fmt.Errorf("exchange: %w", err)
	}
	s := &ExchangeSystem{world: world, cooldown: cd}
	s.Init()
	return s, nil
}

// Init resets the cooldown window and cursors
func (s *ExchangeSystem) Init() {
	s.cooldown.Reset()
	s.actionCursor = event.Cursor{}
	s.triggerCursor = event.Cursor{}
}

func (s *ExchangeSystem) Name() string {
	return "exchange"
}

func (s *ExchangeSystem) Priority() int {
	return parameter.PriorityExchange
}

func (s *ExchangeSystem) Update() {
	res := s.world.Resource
	cs := s.world.Components

	s.cooldown.Tick(res.Time.DeltaTime)
	actions := res.Event.Action.Read(&s.actionCursor)
	triggers := res.Event.Trigger.Read(&s.triggerCursor)

	if len(actions) == 0 || !s.cooldown.Ready() {
		return
	}

	player, ok := engine.Single(cs.Player)
	if !ok {
		return
	}
	companion, ok := engine.Single(cs.Companion)
	if !ok {
		return
	}

	carrier, ok := cs.Carrier.Get(player)
	if !ok {
		panic(fmt.Sprintf("exchange: player %d has no carrier slot", player))
	}
	req, ok := cs.Requester.Get(companion)
	if !ok || !req.Item.Valid() {
		panic(fmt.Sprintf("exchange: companion %d has no valid request", companion))
	}

	insideCompanion := false
	var producers []core.Entity
	for _, tm := range triggers {
		if tm.Other != player || !tm.State.Inside() {
			continue
		}
		if tm.Owner == companion {
			insideCompanion = true
		} else if cs.Producer.Has(tm.Owner) {
			producers = append(producers, tm.Owner)
		}
	}

	var msg event.ExchangeMessage
	switch {
	case carrier.Carrying && insideCompanion && carrier.Item == req.Item:
		delivered := carrier.Clear()
		req.Item = core.RandomItem(res.Rand)
		cs.Requester.Set(companion, req)
		res.Event.Delivered.Push(event.DeliveredMessage{Companion: companion, Item: delivered})
		msg = event.ExchangeMessage{Kind: event.ExchangeDeliver, Item: delivered}

	case carrier.Carrying:
		dropped := carrier.Clear()
		msg = event.ExchangeMessage{Kind: event.ExchangeDrop, Item: dropped}

	case len(producers) > 0:
		source := slices.Min(producers)
		prod, _ := cs.Producer.Get(source)
		carrier.Pick(prod.Item)
		msg = event.ExchangeMessage{Kind: event.ExchangePickup, Item: prod.Item, Producer: source}

	default:
		return
	}

	s.cooldown.TryFire()
	cs.Carrier.Set(player, carrier)
	msg.Requested = req.Item
	res.Event.Exchange.Push(msg)
}
