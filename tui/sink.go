package tui

import (
	"image/color"

	"github.com/automoto/stonerush/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

// Each terminal cell stands for a CellWidth x CellHeight block of the
// logical view.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Sink renders draw commands onto a tcell screen at cell resolution.
type Sink struct {
	screen        tcell.Screen
	width, height int // logical pixels
}

func NewSink(screen tcell.Screen, width, height int) *Sink {
	return &Sink{screen: screen, width: width, height: height}
}

func (s *Sink) Size() (int, int) {
	return s.width, s.height
}

// cellRange converts a pixel span to the cells it covers.
func cellRange(pos, size float64, cell int) (int, int) {
	start := int(pos) / cell
	end := int(pos+size+float64(cell)-1) / cell
	if pos < 0 {
		start = 0
	}
	return start, end
}

func opaque(clr color.Color) bool {
	_, _, _, a := clr.RGBA()
	return a >= 0x8000
}

func (s *Sink) FillRect(x, y, w, h float64, clr color.Color) {
	// Translucent fills such as overlays have no cell equivalent.
	if !opaque(clr) {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	x0, x1 := cellRange(x, w, CellWidth)
	y0, y1 := cellRange(y, h, CellHeight)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (s *Sink) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	x0, x1 := cellRange(x, w, CellWidth)
	y0, y1 := cellRange(y, h, CellHeight)
	for cx := x0; cx < x1; cx++ {
		s.setForeground(cx, y0, '─', style)
		s.setForeground(cx, y1-1, '─', style)
	}
	for cy := y0; cy < y1; cy++ {
		s.setForeground(x0, cy, '│', style)
		s.setForeground(x1-1, cy, '│', style)
	}
}

// setForeground draws r while keeping the cell's background.
func (s *Sink) setForeground(cx, cy int, r rune, style tcell.Style) {
	_, _, existing, _ := s.screen.GetContent(cx, cy)
	_, bg, _ := existing.Decompose()
	s.screen.SetContent(cx, cy, r, nil, style.Background(bg))
}

// DrawImage always reports false; callers draw placeholders instead.
func (s *Sink) DrawImage(img *ebiten.Image, x, y float64, opts systems.ImageOptions) bool {
	return false
}

func (s *Sink) DrawText(str string, x, y float64, style systems.TextStyle, clr color.Color) {
	st := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
	if style == systems.TextTitle {
		st = st.Bold(true)
	}
	cx, cy := int(x)/CellWidth, int(y)/CellHeight
	for i, r := range []rune(str) {
		s.setForeground(cx+i, cy, r, st)
	}
}

func (s *Sink) MeasureText(str string, style systems.TextStyle) (float64, float64) {
	return float64(len([]rune(str)) * CellWidth), CellHeight
}
