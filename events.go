package plexus

// EventSink is the interface for optional ECS or telemetry integration.
// When set on a Driver, field lifecycle and pointer events are forwarded to it.
type EventSink interface {
	EmitEvent(event FieldEvent)
}

// FieldEvent carries lifecycle and pointer data for the event bridge.
type FieldEvent struct {
	Type  EventType
	Frame uint64 // frames rendered before the event
	// Init/resize fields (valid for EventFieldInit, EventFieldResize)
	Width     float64
	Height    float64
	Particles int
	// Pointer fields (valid for EventPointerMove)
	X float64
	Y float64
}
