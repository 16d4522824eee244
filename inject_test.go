package plexus

import "testing"

func runningDriver(w, h float64) *Driver {
	d := New(DefaultFieldConfig())
	d.Start(ViewportFunc(func() Vec2 { return Vec2{w, h} }))
	return d
}

func TestInjectMoveQueuesUntilFrame(t *testing.T) {
	d := runningDriver(300, 300)
	d.InjectMove(40, 50)

	if d.PendingInjections() != 1 {
		t.Fatalf("pending = %d, want 1", d.PendingInjections())
	}
	if _, ok := d.Pointer().Position(); ok {
		t.Error("pointer set before the frame consumed the injection")
	}

	d.Frame(newRecordingSurface(300, 300))

	if d.PendingInjections() != 0 {
		t.Errorf("pending after frame = %d, want 0", d.PendingInjections())
	}
	pos, ok := d.Pointer().Position()
	if !ok || pos != (Vec2{40, 50}) {
		t.Errorf("pointer = %v (set=%v), want (40,50)", pos, ok)
	}
}

func TestInjectSweepInterpolates(t *testing.T) {
	d := runningDriver(300, 300)
	d.InjectSweep(0, 100, 30, 100, 4)

	if d.PendingInjections() != 4 {
		t.Fatalf("pending = %d, want 4", d.PendingInjections())
	}

	s := newRecordingSurface(300, 300)
	want := []float64{0, 10, 20, 30}
	for i, x := range want {
		d.Frame(s)
		pos, _ := d.Pointer().Position()
		assertNear(t, "sweep x", pos.X, x)
		assertNear(t, "sweep y", pos.Y, 100)
		if d.PendingInjections() != len(want)-i-1 {
			t.Errorf("frame %d: pending = %d", i, d.PendingInjections())
		}
	}
}

func TestInjectSweepMinimumFrames(t *testing.T) {
	d := runningDriver(300, 300)
	d.InjectSweep(1, 2, 3, 4, 0)
	if d.PendingInjections() != 2 {
		t.Fatalf("pending = %d, want 2 (start + end)", d.PendingInjections())
	}
	if d.injectQueue[0] != (Vec2{1, 2}) || d.injectQueue[1] != (Vec2{3, 4}) {
		t.Errorf("queue = %v", d.injectQueue)
	}
}

func TestInjectedMoveAppliesBeforeStep(t *testing.T) {
	d := New(DefaultFieldConfig())
	d.Start(ViewportFunc(func() Vec2 { return Vec2{0, 0} }))
	p := restingParticle(0, 0, 10)
	d.Field().particles = []*Particle{p}

	d.InjectMove(100, 0)
	d.Frame(newRecordingSurface(300, 300))

	// The injected pointer is already in effect for this frame's update.
	assertNear(t, "x", p.Position.X, 10.0/3.0)
}

func TestProcessInjectedInputEmpty(t *testing.T) {
	d := runningDriver(300, 300)
	if d.processInjectedInput() {
		t.Error("processInjectedInput on empty queue returned true")
	}
}
