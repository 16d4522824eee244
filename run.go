package plexus

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in device-independent pixels.
	Width, Height int
	// Resizable lets the user resize the window; every resize rebuilds the field.
	Resizable bool
	// ShowFPS starts with the HUD visible. F3 toggles it at runtime.
	ShowFPS bool
	// Debug enables per-frame stats on stderr.
	Debug bool
	// Background is the clear color. A zero Color clears to transparent.
	Background Color
	// Reveal fades each freshly built field in over this many seconds.
	Reveal float32
	// TPS overrides Ebitengine's ticks per second when positive.
	TPS int
	// ScreenshotDir overrides where F12 screenshots are written.
	ScreenshotDir string
}

// Run opens a window and drives d until the window is closed. Ebitengine's
// game loop is the frame scheduler: Draw renders one Frame per display
// refresh, Layout reports size changes as resize notifications, and the
// mouse cursor (or the first touch) is the pointer source.
//
// F3 toggles the HUD and F12 queues a screenshot.
func Run(d *Driver, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "plexus"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Debug {
		d.SetDebugMode(true)
	}
	if cfg.Reveal > 0 {
		d.SetReveal(cfg.Reveal, ease.OutQuad)
	}
	if cfg.ScreenshotDir != "" {
		d.ScreenshotDir = cfg.ScreenshotDir
	}

	g := &game{
		driver:  d,
		surface: &ebitenSurface{background: cfg.Background},
		hud:     newFPSOverlay(),
		showHUD: cfg.ShowFPS,
	}
	return ebiten.RunGame(g)
}

// game adapts a Driver to ebiten.Game and doubles as the driver's Viewport.
type game struct {
	driver  *Driver
	surface *ebitenSurface
	width   int
	height  int

	cursorX, cursorY int
	cursorSeen       bool
	touchIDs         []ebiten.TouchID

	hud     *fpsOverlay
	showHUD bool
}

// Size reports the logical screen size from the last Layout call.
func (g *game) Size() Vec2 {
	return Vec2{float64(g.width), float64(g.height)}
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.driver.TickDelta = float32(dt)

	g.pollPointer()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.driver.Screenshot("window")
	}
	if g.showHUD {
		g.hud.update(dt, g.driver.Field())
	}
	return nil
}

// pollPointer reports the first active touch, or the mouse cursor once it
// has moved from where it was first seen. Until then the pointer stays unset.
func (g *game) pollPointer() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.driver.MovePointer(float64(x), float64(y))
		return
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorSeen {
		g.cursorX, g.cursorY = x, y
		g.cursorSeen = true
		return
	}
	if x == g.cursorX && y == g.cursorY {
		return
	}
	g.cursorX, g.cursorY = x, y
	g.driver.MovePointer(float64(x), float64(y))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.img = screen
	g.driver.Frame(g.surface)
	if g.showHUD {
		g.hud.draw(screen)
	}
}

// Layout tracks the outside size. The first call starts the driver; later
// changes are resize notifications.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.driver.State() == StateUninitialized {
			g.driver.Start(g)
		} else {
			g.driver.Resize()
		}
	}
	return outsideWidth, outsideHeight
}
