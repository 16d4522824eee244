package plexus

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// recordingSink collects emitted events.
type recordingSink struct {
	events []FieldEvent
}

func (r *recordingSink) EmitEvent(ev FieldEvent) {
	r.events = append(r.events, ev)
}

// mutableViewport is a Viewport whose size tests can change between calls.
type mutableViewport struct {
	size Vec2
}

func (m *mutableViewport) Size() Vec2 { return m.size }

func TestNewDriverUninitialized(t *testing.T) {
	d := New(DefaultFieldConfig())
	if d.State() != StateUninitialized {
		t.Errorf("state = %v, want uninitialized", d.State())
	}
	if d.Pointer().InfluenceRadius() != 150 {
		t.Errorf("influence radius = %v, want 150", d.Pointer().InfluenceRadius())
	}
	if d.Viewport() != nil {
		t.Error("viewport should be nil before Start")
	}
}

func TestDriverFrameAndResizeBeforeStartAreNoops(t *testing.T) {
	d := New(DefaultFieldConfig())
	s := newRecordingSurface(300, 300)

	d.Frame(s)
	d.Resize()

	if s.clears != 0 {
		t.Errorf("clears = %d, want 0 before Start", s.clears)
	}
	if d.FrameCount() != 0 || d.Field().Len() != 0 {
		t.Errorf("frame=%d len=%d, want 0/0", d.FrameCount(), d.Field().Len())
	}
}

func TestDriverStartBuildsField(t *testing.T) {
	d := New(DefaultFieldConfig())
	vp := &mutableViewport{size: Vec2{300, 300}}

	d.Start(vp)

	if d.State() != StateRunning {
		t.Fatalf("state = %v, want running", d.State())
	}
	if d.Field().Len() != 10 {
		t.Errorf("particles = %d, want 10", d.Field().Len())
	}

	// A second Start is ignored.
	first := d.Field().Particles()[0]
	vp.size = Vec2{600, 600}
	d.Start(vp)
	if d.Field().Len() != 10 || d.Field().Particles()[0] != first {
		t.Error("second Start rebuilt the field")
	}
}

func TestDriverFrameStepsField(t *testing.T) {
	d := New(DefaultFieldConfig())
	d.Start(&mutableViewport{size: Vec2{300, 300}})
	s := newRecordingSurface(300, 300)

	for i := 0; i < 3; i++ {
		d.Frame(s)
	}

	if d.FrameCount() != 3 {
		t.Errorf("FrameCount = %d, want 3", d.FrameCount())
	}
	if s.clears != 3 {
		t.Errorf("clears = %d, want 3", s.clears)
	}
	if got := len(s.circles()); got != 10 {
		t.Errorf("circles in last frame = %d, want 10", got)
	}
}

func TestDriverResizeRequeriesViewport(t *testing.T) {
	d := New(DefaultFieldConfig())
	vp := &mutableViewport{size: Vec2{300, 300}}
	d.Start(vp)
	s := newRecordingSurface(300, 300)
	d.Frame(s)

	before := make(map[*Particle]bool)
	for _, p := range d.Field().Particles() {
		before[p] = true
	}

	vp.size = Vec2{600, 600}
	d.Resize()

	if d.State() != StateRunning {
		t.Errorf("state after resize = %v, want running", d.State())
	}
	if d.Field().Len() != 40 {
		t.Fatalf("particles after resize = %d, want 40", d.Field().Len())
	}
	if d.Field().Size() != (Vec2{600, 600}) {
		t.Errorf("field size = %v, want 600x600", d.Field().Size())
	}
	for _, p := range d.Field().Particles() {
		if before[p] {
			t.Fatal("particle survived resize")
		}
	}

	// The loop continues with the rebuilt field.
	d.Frame(s)
	if got := len(s.circles()); got != 40 {
		t.Errorf("circles after resize = %d, want 40", got)
	}
	if d.FrameCount() != 2 {
		t.Errorf("FrameCount = %d, want 2", d.FrameCount())
	}
}

func TestDriverMovePointer(t *testing.T) {
	d := New(DefaultFieldConfig())
	if _, ok := d.Pointer().Position(); ok {
		t.Fatal("pointer should start unset")
	}

	d.MovePointer(10, 20)
	d.MovePointer(30, 40)

	pos, ok := d.Pointer().Position()
	if !ok || pos != (Vec2{30, 40}) {
		t.Errorf("pointer = %v (set=%v), want (30,40)", pos, ok)
	}
}

func TestDriverEmitsEvents(t *testing.T) {
	d := New(DefaultFieldConfig())
	sink := &recordingSink{}
	d.SetEventSink(sink)
	vp := &mutableViewport{size: Vec2{300, 300}}

	d.Start(vp)
	d.Frame(newRecordingSurface(300, 300))
	d.MovePointer(5, 6)
	vp.size = Vec2{600, 600}
	d.Resize()

	if len(sink.events) != 3 {
		t.Fatalf("events = %d, want 3", len(sink.events))
	}
	e0, e1, e2 := sink.events[0], sink.events[1], sink.events[2]
	if e0.Type != EventFieldInit || e0.Particles != 10 || e0.Width != 300 || e0.Frame != 0 {
		t.Errorf("init event = %+v", e0)
	}
	if e1.Type != EventPointerMove || e1.X != 5 || e1.Y != 6 || e1.Frame != 1 {
		t.Errorf("pointer event = %+v", e1)
	}
	if e2.Type != EventFieldResize || e2.Particles != 40 || e2.Height != 600 {
		t.Errorf("resize event = %+v", e2)
	}
}

func TestDriverRevealFadesInAfterEachRebuild(t *testing.T) {
	d := New(DefaultFieldConfig())
	d.SetReveal(1, ease.Linear)
	d.TickDelta = 0.5
	vp := &mutableViewport{size: Vec2{300, 300}}
	d.Start(vp)
	s := newRecordingSurface(300, 300)
	base := DefaultFieldConfig().ParticleColor.A

	d.Frame(s)
	assertNear(t, "alpha at 0.5s", s.circles()[0].color.A, base*0.5)

	d.Frame(s)
	assertNear(t, "alpha at 1s", s.circles()[0].color.A, base)

	d.Frame(s)
	assertNear(t, "alpha after fade", s.circles()[0].color.A, base)

	d.Resize()
	d.Frame(s)
	assertNear(t, "alpha restarted", s.circles()[0].color.A, base*0.5)
}

func TestDriverSetRevealDisable(t *testing.T) {
	d := New(DefaultFieldConfig())
	d.SetReveal(1, nil)
	if d.reveal == nil {
		t.Fatal("reveal should be set")
	}
	d.SetReveal(0, nil)
	if d.reveal != nil {
		t.Error("reveal should be cleared for non-positive duration")
	}
}

func TestDriverSetDebugModePropagates(t *testing.T) {
	d := New(DefaultFieldConfig())
	d.SetDebugMode(true)
	if !d.debug || !d.Field().debug {
		t.Error("debug mode not propagated to field")
	}
	d.SetDebugMode(false)
	if d.debug || d.Field().debug {
		t.Error("debug mode not cleared")
	}
}

func TestDriverStateString(t *testing.T) {
	if StateUninitialized.String() != "uninitialized" || StateRunning.String() != "running" {
		t.Error("unexpected state names")
	}
	if DriverState(7).String() != "unknown" {
		t.Error("unknown state should stringify as unknown")
	}
}
