package plexus

// PointerTracker holds the latest known pointer position and the radius
// within which it influences particles. The position is unset until the
// pointer source reports at least once; unset is distinct from (0, 0).
//
// A tracker has a single writer (the runner's pointer source) and is read by
// Particle.Update on the same goroutine, so it carries no synchronization.
type PointerTracker struct {
	x, y   float64
	set    bool
	radius float64
}

// NewPointerTracker creates a tracker with no position and the given
// influence radius. The radius is fixed for the tracker's lifetime.
func NewPointerTracker(influenceRadius float64) *PointerTracker {
	return &PointerTracker{radius: influenceRadius}
}

// Set records a new pointer position. Last write wins.
func (t *PointerTracker) Set(x, y float64) {
	t.x, t.y = x, y
	t.set = true
}

// Position returns the last reported position and whether one was reported.
func (t *PointerTracker) Position() (Vec2, bool) {
	return Vec2{t.x, t.y}, t.set
}

// InfluenceRadius returns the radius inside which particles are displaced.
func (t *PointerTracker) InfluenceRadius() float64 {
	return t.radius
}
