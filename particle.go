package plexus

import "math"

// Particle is a single dot in a Field. It remembers where it was spawned
// (Origin) and drifts back there whenever the pointer is out of reach.
type Particle struct {
	// Position is where the particle is drawn. Mutated by Update.
	Position Vec2
	// Origin is the rest position assigned at spawn.
	Origin Vec2
	// Radius is the drawn dot size.
	Radius float64
	// Density scales the displacement caused by the pointer force.
	Density float64
	// Color fills the dot.
	Color Color

	relax float64 // divisor applied to the offset from Origin per frame
}

// NewParticle spawns a particle at rest at (x, y), drawing its radius and
// density from cfg.
func NewParticle(x, y float64, cfg FieldConfig) *Particle {
	return &Particle{
		Position: Vec2{x, y},
		Origin:   Vec2{x, y},
		Radius:   cfg.Radius.Random(),
		Density:  cfg.Density.Random(),
		Color:    cfg.ParticleColor,
		relax:    cfg.RelaxDivisor,
	}
}

// Draw renders the particle as a filled circle. It does not mutate state.
func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.Position, p.Radius, p.Color)
}

// Update advances the particle one frame against the pointer.
//
// Inside the influence radius the particle moves along the vector toward the
// pointer, scaled by a force that falls linearly from 1 at the pointer to 0
// at the radius, times Density. Outside it, each axis recovers 1/relax of its
// offset from Origin. With no pointer reported yet the particle holds still,
// and when the pointer sits exactly on the particle the displacement is zero.
func (p *Particle) Update(t *PointerTracker) {
	pointer, ok := t.Position()
	if !ok {
		return
	}

	d := pointer.Sub(p.Position)
	distance := math.Sqrt(d.LenSq())
	radius := t.InfluenceRadius()

	if distance < radius {
		if distance == 0 {
			return
		}
		force := (radius - distance) / radius
		p.Position.X += d.X / distance * force * p.Density
		p.Position.Y += d.Y / distance * force * p.Density
		return
	}

	relax := p.relax
	if relax <= 0 {
		relax = 10
	}
	if p.Position.X != p.Origin.X {
		p.Position.X -= (p.Position.X - p.Origin.X) / relax
	}
	if p.Position.Y != p.Origin.Y {
		p.Position.Y -= (p.Position.Y - p.Origin.Y) / relax
	}
}
