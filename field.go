package plexus

import (
	"math"
	"math/rand/v2"
	"time"
)

// Field owns a population of particles sized to a viewport and runs the
// per-frame simulate/draw/connect pass over them.
type Field struct {
	config    FieldConfig
	particles []*Particle
	width     float64
	height    float64

	debug bool
	stats debugStats
}

// NewField creates an empty Field. Call Init to populate it.
func NewField(cfg FieldConfig) *Field {
	return &Field{config: cfg}
}

// Config returns the field's configuration.
func (f *Field) Config() FieldConfig {
	return f.config
}

// Init discards every particle and spawns floor(w*h / AreaPerParticle) new
// ones at uniformly random rest positions in [0, w) × [0, h).
func (f *Field) Init(size Vec2) {
	f.width, f.height = size.X, size.Y

	n := 0
	if size.X > 0 && size.Y > 0 && f.config.AreaPerParticle > 0 {
		n = int(math.Floor(size.X * size.Y / f.config.AreaPerParticle))
	}

	f.particles = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		x := rand.Float64() * size.X
		y := rand.Float64() * size.Y
		f.particles = append(f.particles, NewParticle(x, y, f.config))
	}

	if f.debug {
		debugCheckParticleCount(n)
	}
}

// Step renders one frame: clear the surface, draw then update every particle
// in order, then connect close pairs using the freshly updated positions.
func (f *Field) Step(s Surface, p *PointerTracker) {
	var t0 time.Time
	if f.debug {
		t0 = time.Now()
	}

	s.Clear()
	for _, pt := range f.particles {
		pt.Draw(s)
		pt.Update(p)
	}

	if f.debug {
		f.stats.simulateTime = time.Since(t0)
		t0 = time.Now()
	}

	f.stats.lineCount = f.connect(s)

	if f.debug {
		f.stats.connectTime = time.Since(t0)
		f.stats.particleCount = len(f.particles)
		f.debugLog(f.stats)
	}
}

// connect draws one line for every unordered pair closer than
// ConnectDistance, fading linearly with distance. Returns the line count.
func (f *Field) connect(s Surface) int {
	maxDist := f.config.ConnectDistance
	maxDistSq := maxDist * maxDist
	lines := 0

	for a := 0; a < len(f.particles); a++ {
		pa := f.particles[a].Position
		for b := a + 1; b < len(f.particles); b++ {
			pb := f.particles[b].Position
			distSq := pa.Sub(pb).LenSq()
			if distSq >= maxDistSq {
				continue
			}
			distance := math.Sqrt(distSq)
			opacity := (1 - distance/maxDist) * f.config.LineAlpha
			s.StrokeLine(pa, pb, f.config.LineColor.WithAlpha(opacity), f.config.LineWidth)
			lines++
		}
	}
	return lines
}

// Particles returns the current population in insertion order. The returned
// slice MUST NOT be mutated; it is replaced wholesale by the next Init.
func (f *Field) Particles() []*Particle {
	return f.particles
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Size returns the dimensions the field was last initialized with.
func (f *Field) Size() Vec2 {
	return Vec2{f.width, f.height}
}

// LastLineCount returns the number of connections drawn by the most recent
// Step.
func (f *Field) LastLineCount() int {
	return f.stats.lineCount
}
