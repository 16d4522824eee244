package plexus

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the minimum polygon resolution used to approximate dots.
const circleSegments = 16

// RasterSurface is a headless Surface backed by an *image.RGBA. Shapes are
// scan-converted with an anti-aliasing vector rasterizer and composited with
// source-over, so it produces the same look as the window surface without a
// GPU. It implements Snapshotter and Resizer.
type RasterSurface struct {
	img        *image.RGBA
	background Color
	rast       *vector.Rasterizer
}

// NewRasterSurface creates a width×height surface that clears to background.
func NewRasterSurface(width, height int, background Color) *RasterSurface {
	r := &RasterSurface{background: background}
	r.Resize(width, height)
	return r
}

// Size returns the surface dimensions in pixels.
func (r *RasterSurface) Size() Vec2 {
	b := r.img.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

// Resize reallocates the backing image. Contents are discarded.
func (r *RasterSurface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.rast = vector.NewRasterizer(width, height)
	r.Clear()
}

// Image returns the backing image (premultiplied).
func (r *RasterSurface) Image() *image.RGBA {
	return r.img
}

// Clear fills the surface with the background color.
func (r *RasterSurface) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background.toRGBA()), image.Point{}, draw.Src)
}

// FillCircle draws a filled circle approximated by a regular polygon.
func (r *RasterSurface) FillCircle(center Vec2, radius float64, c Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	n := max(circleSegments, int(radius*4))
	r.begin()
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := float32(center.X + radius*math.Cos(theta))
		y := float32(center.Y + radius*math.Sin(theta))
		if i == 0 {
			r.rast.MoveTo(x, y)
		} else {
			r.rast.LineTo(x, y)
		}
	}
	r.rast.ClosePath()
	r.flush(c)
}

// StrokeLine draws the segment as a quad of the given width.
func (r *RasterSurface) StrokeLine(a, b Vec2, c Color, width float64) {
	if width <= 0 || c.A <= 0 {
		return
	}
	px, py := perpendicular(a, b)
	hw := width / 2
	ox, oy := px*hw, py*hw

	r.begin()
	r.rast.MoveTo(float32(a.X+ox), float32(a.Y+oy))
	r.rast.LineTo(float32(b.X+ox), float32(b.Y+oy))
	r.rast.LineTo(float32(b.X-ox), float32(b.Y-oy))
	r.rast.LineTo(float32(a.X-ox), float32(a.Y-oy))
	r.rast.ClosePath()
	r.flush(c)
}

// Snapshot returns the current frame as straight-alpha pixels.
func (r *RasterSurface) Snapshot() *image.NRGBA {
	b := r.img.Bounds()
	return unpremultiply(r.img.Pix, b.Dx(), b.Dy())
}

func (r *RasterSurface) begin() {
	b := r.img.Bounds()
	r.rast.Reset(b.Dx(), b.Dy())
	r.rast.DrawOp = draw.Over
}

func (r *RasterSurface) flush(c Color) {
	r.rast.Draw(r.img, r.img.Bounds(), image.NewUniform(c.toRGBA()), image.Point{})
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
