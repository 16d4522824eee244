package plexus

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface draws onto an Ebitengine image with the vector package.
// The window runner re-points img at the screen before every frame.
type ebitenSurface struct {
	img        *ebiten.Image
	background Color
}

func (e *ebitenSurface) Size() Vec2 {
	b := e.img.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

func (e *ebitenSurface) Clear() {
	if e.background.A > 0 {
		e.img.Fill(e.background.toRGBA())
		return
	}
	e.img.Clear()
}

func (e *ebitenSurface) FillCircle(center Vec2, radius float64, c Color) {
	vector.DrawFilledCircle(e.img, float32(center.X), float32(center.Y), float32(radius), c.toRGBA(), true)
}

func (e *ebitenSurface) StrokeLine(a, b Vec2, c Color, width float64) {
	vector.StrokeLine(e.img,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(width), c.toRGBA(), true)
}

// Snapshot reads back the rendered frame. Only valid inside Draw.
func (e *ebitenSurface) Snapshot() *image.NRGBA {
	bounds := e.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	e.img.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}
