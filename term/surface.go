package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/plexus"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint8{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const brailleBase = 0x2800

// cellInk is the straight color a cell ends up with after every dot drawn
// into it this frame has been composited over the background.
type cellInk struct {
	r, g, b float64
}

// BrailleSurface is a plexus.Surface over a terminal screen. Every cell holds
// a 2x4 grid of braille dots and each dot covers Scale×Scale field units, so
// an 80x24 terminal at scale 4 behaves like a 640x384 canvas. A cell has a
// single foreground color: the blend of everything drawn into it.
type BrailleSurface struct {
	screen     tcell.Screen
	scale      float64
	background plexus.Color

	cols, rows int
	dots       []uint8
	ink        []cellInk
}

// NewBrailleSurface creates a surface covering the whole screen.
func NewBrailleSurface(screen tcell.Screen, cfg Config) *BrailleSurface {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	s := &BrailleSurface{screen: screen, scale: scale, background: cfg.Background}
	s.Resize()
	return s
}

// Resize re-reads the screen size and reallocates the dot buffers.
func (s *BrailleSurface) Resize() {
	s.cols, s.rows = s.screen.Size()
	s.cols, s.rows = max(s.cols, 0), max(s.rows, 0)
	s.dots = make([]uint8, s.cols*s.rows)
	s.ink = make([]cellInk, s.cols*s.rows)
	s.Clear()
}

// Size returns the surface size in field units.
func (s *BrailleSurface) Size() plexus.Vec2 {
	return plexus.Vec2{
		X: float64(s.cols*2) * s.scale,
		Y: float64(s.rows*4) * s.scale,
	}
}

// CellCenter converts a terminal cell to the field coordinates of its center,
// which is where a mouse event in that cell points.
func (s *BrailleSurface) CellCenter(col, row int) plexus.Vec2 {
	return plexus.Vec2{
		X: (float64(col) + 0.5) * 2 * s.scale,
		Y: (float64(row) + 0.5) * 4 * s.scale,
	}
}

// Clear erases all dots and resets every cell to the background.
func (s *BrailleSurface) Clear() {
	bg := cellInk{s.background.R, s.background.G, s.background.B}
	for i := range s.dots {
		s.dots[i] = 0
		s.ink[i] = bg
	}
}

// FillCircle sets every dot whose center lies inside the circle. The dot under
// the center is always set so sub-dot particles stay visible.
func (s *BrailleSurface) FillCircle(center plexus.Vec2, radius float64, c plexus.Color) {
	cx, cy := center.X/s.scale, center.Y/s.scale
	r := radius / s.scale
	s.plot(int(math.Floor(cx)), int(math.Floor(cy)), c)

	minX, maxX := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	minY, maxY := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x == int(math.Floor(cx)) && y == int(math.Floor(cy)) {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				s.plot(x, y, c)
			}
		}
	}
}

// StrokeLine walks the segment one dot at a time. Width is ignored: a dot is
// already wider than any hairline the field draws.
func (s *BrailleSurface) StrokeLine(a, b plexus.Vec2, c plexus.Color, _ float64) {
	ax, ay := a.X/s.scale, a.Y/s.scale
	bx, by := b.X/s.scale, b.Y/s.scale
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		s.plot(int(math.Floor(ax)), int(math.Floor(ay)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(int(math.Floor(ax+(bx-ax)*t)), int(math.Floor(ay+(by-ay)*t)), c)
	}
}

// plot sets the dot at (x, y) in dot coordinates and blends c into its cell.
func (s *BrailleSurface) plot(x, y int, c plexus.Color) {
	if x < 0 || y < 0 || x >= s.cols*2 || y >= s.rows*4 {
		return
	}
	i := (y/4)*s.cols + x/2
	s.dots[i] |= 1 << brailleBits[x%2][y%4]

	a := c.A
	ink := &s.ink[i]
	ink.r = c.R*a + ink.r*(1-a)
	ink.g = c.G*a + ink.g*(1-a)
	ink.b = c.B*a + ink.b*(1-a)
}

// Cell returns the braille rune for a cell and whether any dot is set.
func (s *BrailleSurface) Cell(col, row int) (rune, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return ' ', false
	}
	bits := s.dots[row*s.cols+col]
	if bits == 0 {
		return ' ', false
	}
	return rune(brailleBase + int(bits)), true
}

// Flush writes the frame to the screen and shows it.
func (s *BrailleSurface) Flush() {
	bg := toTcell(s.background)
	blank := tcell.StyleDefault.Background(bg)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			i := row*s.cols + col
			if s.dots[i] == 0 {
				s.screen.SetContent(col, row, ' ', nil, blank)
				continue
			}
			ink := s.ink[i]
			fg := tcell.NewRGBColor(channel(ink.r), channel(ink.g), channel(ink.b))
			s.screen.SetContent(col, row, rune(brailleBase+int(s.dots[i])), nil, blank.Foreground(fg))
		}
	}
	s.screen.Show()
}

func toTcell(c plexus.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
