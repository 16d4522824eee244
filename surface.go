package plexus

import "image"

// Viewport reports the current size of the area a Field covers. The driver
// re-queries it on every resize notification.
type Viewport interface {
	Size() Vec2
}

// Surface is a clearable 2D drawing context sized to its container.
// Colors are straight (not premultiplied); implementations premultiply when
// they submit.
type Surface interface {
	Viewport
	// Clear erases the whole surface.
	Clear()
	// FillCircle draws a filled circle centered at center.
	FillCircle(center Vec2, radius float64, c Color)
	// StrokeLine draws a straight line from a to b.
	StrokeLine(a, b Vec2, c Color, width float64)
}

// Snapshotter is implemented by surfaces that can hand back the frame they
// rendered, as straight-alpha pixels. Screenshots need it.
type Snapshotter interface {
	Snapshot() *image.NRGBA
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() Vec2

// Size calls f.
func (f ViewportFunc) Size() Vec2 { return f() }

// fadeSurface scales the alpha of everything drawn through it.
// Used by Driver while a reveal fade is in progress.
type fadeSurface struct {
	Surface
	alpha float64
}

func (f fadeSurface) FillCircle(center Vec2, radius float64, c Color) {
	f.Surface.FillCircle(center, radius, c.WithAlpha(c.A*f.alpha))
}

func (f fadeSurface) StrokeLine(a, b Vec2, c Color, width float64) {
	f.Surface.StrokeLine(a, b, c.WithAlpha(c.A*f.alpha), width)
}
