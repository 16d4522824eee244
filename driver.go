package plexus

import "github.com/tanema/gween/ease"

// DriverState is the lifecycle state of a Driver.
type DriverState uint8

const (
	StateUninitialized DriverState = iota // constructed, no field built yet
	StateRunning                          // field built; frames render until the host goes away
)

// String returns a short lowercase name for the state.
func (s DriverState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

const defaultTickDelta = float32(1.0 / 60.0)

// Driver owns the animation lifecycle of a Field. It is a passive state
// machine: a runner (Run for a window, term.Run for a terminal, or a plain
// loop for headless rendering) calls Start once, Frame once per display
// refresh, Resize on every resize notification and MovePointer whenever the
// pointer source reports.
//
// All methods must be called from the runner's goroutine.
type Driver struct {
	field    *Field
	pointer  *PointerTracker
	viewport Viewport
	state    DriverState
	frame    uint64
	store    EventSink
	reveal   *Fade
	debug    bool

	// TickDelta is the simulated time in seconds between frames, used to
	// advance the reveal fade. Runners set it from their refresh rate.
	TickDelta float32

	// ScreenshotDir is the directory where screenshot PNGs are written.
	// Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string

	injectQueue []Vec2
	testRunner  *TestRunner
}

// NewDriver creates an uninitialized driver for field, reading pointer
// positions from pointer.
func NewDriver(field *Field, pointer *PointerTracker) *Driver {
	return &Driver{
		field:         field,
		pointer:       pointer,
		TickDelta:     defaultTickDelta,
		ScreenshotDir: "screenshots",
	}
}

// New is a convenience that builds a Field, a PointerTracker using the
// config's influence radius, and a Driver over both.
func New(cfg FieldConfig) *Driver {
	return NewDriver(NewField(cfg), NewPointerTracker(cfg.InfluenceRadius))
}

// Field returns the driven field.
func (d *Driver) Field() *Field {
	return d.field
}

// Pointer returns the pointer tracker consulted every frame.
func (d *Driver) Pointer() *PointerTracker {
	return d.pointer
}

// State returns the current lifecycle state.
func (d *Driver) State() DriverState {
	return d.state
}

// FrameCount returns the number of frames rendered since Start.
func (d *Driver) FrameCount() uint64 {
	return d.frame
}

// Viewport returns the viewport passed to Start, or nil before Start.
func (d *Driver) Viewport() Viewport {
	return d.viewport
}

// Start transitions Uninitialized → Running: it remembers v as the viewport
// to re-query on resize and builds the first field from its size. Calling
// Start on a running driver does nothing.
func (d *Driver) Start(v Viewport) {
	if d.state != StateUninitialized {
		return
	}
	d.viewport = v
	d.state = StateRunning
	d.rebuild(EventFieldInit)
}

// Resize rebuilds the field synchronously from the viewport's current size.
// The frame loop is neither paused nor restarted; the next Frame renders the
// new population. Before Start it does nothing.
func (d *Driver) Resize() {
	if d.state != StateRunning {
		return
	}
	d.rebuild(EventFieldResize)
}

func (d *Driver) rebuild(kind EventType) {
	size := d.viewport.Size()
	d.field.Init(size)
	if d.reveal != nil {
		d.reveal.Restart()
	}

	ev := FieldEvent{
		Type:      kind,
		Frame:     d.frame,
		Width:     size.X,
		Height:    size.Y,
		Particles: d.field.Len(),
	}
	if d.debug {
		debugLogInit(ev)
	}
	if d.store != nil {
		d.store.EmitEvent(ev)
	}
}

// MovePointer records a pointer position reported by the pointer source.
// It may be called any number of times between frames; last write wins.
func (d *Driver) MovePointer(x, y float64) {
	d.pointer.Set(x, y)
	if d.store != nil {
		d.store.EmitEvent(FieldEvent{Type: EventPointerMove, Frame: d.frame, X: x, Y: y})
	}
}

// Frame renders one animation frame onto s. Scripted steps and one queued
// synthetic pointer move are applied first, then the field is stepped and any
// queued screenshots are captured. Frame before Start does nothing.
func (d *Driver) Frame(s Surface) {
	if d.state != StateRunning {
		return
	}

	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	d.processInjectedInput()

	var target Surface = s
	if d.reveal != nil && !d.reveal.Done {
		target = fadeSurface{Surface: s, alpha: d.reveal.Update(d.TickDelta)}
	}
	d.field.Step(target, d.pointer)
	d.frame++

	d.flushScreenshots(s)
}

// SetReveal makes every freshly built field fade in over duration seconds
// using the easing function. A duration <= 0 disables the fade.
func (d *Driver) SetReveal(duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		d.reveal = nil
		return
	}
	d.reveal = NewFade(duration, fn)
}

// SetEventSink sets the optional event bridge.
func (d *Driver) SetEventSink(sink EventSink) {
	d.store = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// and line counts are logged to stderr along with every field rebuild, and
// oversized populations produce a warning.
func (d *Driver) SetDebugMode(enabled bool) {
	d.debug = enabled
	d.field.debug = enabled
}
