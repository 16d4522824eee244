package plexus

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudInterval is how often the HUD text is re-rendered, in seconds.
const hudInterval = 0.5

// fpsOverlay displays FPS, TPS, particle and line counts in the top-left
// corner of the window. The text is redrawn every ~0.5 seconds into a
// private image using ebitenutil.DebugPrint.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	primed     bool
}

func newFPSOverlay() *fpsOverlay {
	// 140x64 is enough for four lines of DebugPrint text.
	return &fpsOverlay{img: ebiten.NewImage(140, 64)}
}

func (o *fpsOverlay) update(dt float64, f *Field) {
	o.lastUpdate += dt
	if o.primed && o.lastUpdate < hudInterval {
		return
	}
	o.lastUpdate = 0
	o.primed = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d\nLines: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), f.Len(), f.LastLineCount()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
