package plexus

import "math/rand/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at surface submission time.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns a copy of c with the alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGB8 builds a Color from 8-bit channel values and a [0, 1] alpha, the way
// CSS rgba() literals are written.
func RGB8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Range is a general-purpose min/max range.
// Used by FieldConfig for the per-particle radius and density draws.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// EventType identifies a kind of field lifecycle or pointer event.
type EventType uint8

const (
	EventFieldInit   EventType = iota // the driver started and built the first field
	EventFieldResize                  // the field was rebuilt after a resize notification
	EventPointerMove                  // the pointer source reported a new position
)

// String returns a short lowercase name for the event type.
func (e EventType) String() string {
	switch e {
	case EventFieldInit:
		return "init"
	case EventFieldResize:
		return "resize"
	case EventPointerMove:
		return "pointer-move"
	default:
		return "unknown"
	}
}

// toRGBA converts a Color to a colorRGBA (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill and the
// vector drawing helpers.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
