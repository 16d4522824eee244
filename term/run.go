// Package term runs a plexus field in a terminal. Particles and connections
// are rasterized into braille dots, the mouse is the pointer source, and
// terminal resize events rebuild the field.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/plexus"
)

// Config controls the terminal backend.
type Config struct {
	// Scale is the number of field units covered by one braille dot.
	Scale float64
	// Interval is the time between frames.
	Interval time.Duration
	// Background is painted behind every cell.
	Background plexus.Color
}

// DefaultConfig returns a 60 Hz, scale-4 configuration on a slate background.
func DefaultConfig() Config {
	return Config{
		Scale:      4,
		Interval:   16 * time.Millisecond,
		Background: plexus.RGB8(15, 23, 42, 1),
	}
}

// Run drives d on an initialized screen until ctx is done or the user quits
// with Esc, Ctrl-C or q. The caller owns screen.Init and screen.Fini.
//
// Terminal events are read on a helper goroutine and handed over a channel,
// so the driver is only ever touched from the loop below.
func Run(ctx context.Context, screen tcell.Screen, d *plexus.Driver, cfg Config) error {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	surface := NewBrailleSurface(screen, cfg)
	d.TickDelta = float32(cfg.Interval.Seconds())
	d.Start(surface)

	quit := make(chan struct{})
	defer close(quit)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !handleEvent(ev, screen, surface, d) {
				return nil
			}

		case <-ticker.C:
			d.Frame(surface)
			surface.Flush()
		}
	}
}

// handleEvent applies one terminal event. Returns false when the user quits.
func handleEvent(ev tcell.Event, screen tcell.Screen, surface *BrailleSurface, d *plexus.Driver) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		p := surface.CellCenter(col, row)
		d.MovePointer(p.X, p.Y)

	case *tcell.EventResize:
		screen.Sync()
		surface.Resize()
		d.Resize()
	}
	return true
}
