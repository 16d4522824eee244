package plexus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FieldConfig controls how a Field is populated, how its particles respond to
// the pointer, and how connections are drawn.
type FieldConfig struct {
	// AreaPerParticle is the surface area (in units²) that yields one particle.
	// A Field of width*height spawns floor(width*height / AreaPerParticle).
	AreaPerParticle float64 `json:"areaPerParticle"`
	// InfluenceRadius is the distance within which the pointer moves particles.
	InfluenceRadius float64 `json:"influenceRadius"`
	// ConnectDistance is the threshold below which two particles are joined.
	ConnectDistance float64 `json:"connectDistance"`
	// LineAlpha is the opacity of a connection between coincident particles.
	// Opacity falls off linearly to zero at ConnectDistance.
	LineAlpha float64 `json:"lineAlpha"`
	// LineWidth is the stroke width of connections.
	LineWidth float64 `json:"lineWidth"`
	// RelaxDivisor is the fraction (1/RelaxDivisor) of the remaining offset a
	// particle recovers per frame outside the influence radius.
	RelaxDivisor float64 `json:"relaxDivisor"`
	// Radius is the range of dot radii drawn at spawn.
	Radius Range `json:"radius"`
	// Density is the range of pointer responsiveness drawn at spawn.
	Density Range `json:"density"`
	// ParticleColor fills every dot.
	ParticleColor Color `json:"particleColor"`
	// LineColor strokes every connection. Its alpha is replaced per line.
	LineColor Color `json:"lineColor"`
}

// DefaultFieldConfig returns the stock network look: violet dots, cyan lines.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		AreaPerParticle: 9000,
		InfluenceRadius: 150,
		ConnectDistance: 100,
		LineAlpha:       0.2,
		LineWidth:       1,
		RelaxDivisor:    10,
		Radius:          Range{Min: 1, Max: 3},
		Density:         Range{Min: 1, Max: 31},
		ParticleColor:   RGB8(139, 92, 246, 0.5),
		LineColor:       RGB8(6, 182, 212, 1),
	}
}

// Validate reports the first setting that would make the simulation
// meaningless (division by zero, empty ranges, negative opacity).
func (c FieldConfig) Validate() error {
	switch {
	case c.AreaPerParticle <= 0:
		return errors.New("field config: area per particle must be positive")
	case c.InfluenceRadius <= 0:
		return errors.New("field config: influence radius must be positive")
	case c.ConnectDistance <= 0:
		return errors.New("field config: connect distance must be positive")
	case c.LineAlpha < 0 || c.LineAlpha > 1:
		return fmt.Errorf("field config: line alpha %v outside [0, 1]", c.LineAlpha)
	case c.LineWidth <= 0:
		return errors.New("field config: line width must be positive")
	case c.RelaxDivisor < 1:
		return fmt.Errorf("field config: relax divisor %v would overshoot the origin", c.RelaxDivisor)
	case c.Radius.Min < 0 || c.Radius.Max < c.Radius.Min:
		return fmt.Errorf("field config: invalid radius range [%v, %v)", c.Radius.Min, c.Radius.Max)
	case c.Density.Min < 0 || c.Density.Max < c.Density.Min:
		return fmt.Errorf("field config: invalid density range [%v, %v)", c.Density.Min, c.Density.Max)
	}
	return nil
}

// LoadConfig parses JSON over DefaultFieldConfig, so a document only needs
// the keys it overrides, and validates the result.
func LoadConfig(jsonData []byte) (FieldConfig, error) {
	cfg := DefaultFieldConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return FieldConfig{}, fmt.Errorf("parse field config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FieldConfig{}, err
	}
	return cfg, nil
}
