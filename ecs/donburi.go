package ecs

import (
	"github.com/phanxgames/plexus"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FieldEventType is the Donburi event type for plexus field events.
// Subscribe to this in your ECS systems to receive init, resize and pointer
// events.
var FieldEventType = events.NewEventType[plexus.FieldEvent]()

// FieldState mirrors the most recent field (re)initialization and pointer
// position. One entity carrying it is created per store.
type FieldState struct {
	Width      float64
	Height     float64
	Particles  int
	Rebuilds   int
	Pointer    plexus.Vec2
	PointerSet bool
}

// FieldStateComponent is the component type holding FieldState.
var FieldStateComponent = donburi.NewComponentType[FieldState]()

// DonburiStore is an EventSink backed by a Donburi world.
type DonburiStore struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Field events are published to FieldEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:  world,
		entity: world.Create(FieldStateComponent),
	}
}

// Entity returns the entity carrying the FieldState component.
func (s *DonburiStore) Entity() donburi.Entity {
	return s.entity
}

// State returns the current FieldState snapshot.
func (s *DonburiStore) State() FieldState {
	return *FieldStateComponent.Get(s.world.Entry(s.entity))
}

// EmitEvent updates the FieldState component and queues the event.
func (s *DonburiStore) EmitEvent(event plexus.FieldEvent) {
	state := FieldStateComponent.Get(s.world.Entry(s.entity))
	switch event.Type {
	case plexus.EventFieldInit, plexus.EventFieldResize:
		state.Width = event.Width
		state.Height = event.Height
		state.Particles = event.Particles
		state.Rebuilds++
	case plexus.EventPointerMove:
		state.Pointer = plexus.Vec2{X: event.X, Y: event.Y}
		state.PointerSet = true
	}
	FieldEventType.Publish(s.world, event)
}
