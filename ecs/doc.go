// Package ecs provides ECS adapters for plexus's field event bridge.
//
// The primary adapter is [NewDonburiStore], which forwards plexus field
// events (init, resize, pointer move) into a [Donburi] world as typed events
// and mirrors the latest field dimensions into a singleton [FieldState]
// component. Subscribe to [FieldEventType] in your ECS systems to receive
// the events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	driver.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
