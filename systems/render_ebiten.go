package systems

import (
	"image/color"

	"github.com/automoto/stonerush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var drawOp = &ebiten.DrawImageOptions{}

// EbitenSink draws onto an Ebitengine image.
type EbitenSink struct {
	screen *ebiten.Image
}

func NewEbitenSink(screen *ebiten.Image) *EbitenSink {
	return &EbitenSink{screen: screen}
}

func (s *EbitenSink) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSink) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSink) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(s.screen, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s *EbitenSink) DrawImage(img *ebiten.Image, x, y float64, opts ImageOptions) bool {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	if opts.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Translate(x, y)
	s.screen.DrawImage(img, drawOp)

	if opts.Flash {
		drawOp.ColorScale.Scale(1, 1, 1, 0.4)
		drawOp.Blend = ebiten.BlendLighter
		s.screen.DrawImage(img, drawOp)
		drawOp.Blend = ebiten.Blend{}
	}
	return true
}

func (s *EbitenSink) DrawText(str string, x, y float64, style TextStyle, clr color.Color) {
	face := faceFor(style)
	if face == nil {
		return
	}
	// text.Draw takes the baseline; x, y is the top-left corner.
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(s.screen, str, face, int(x), int(y)+ascent, clr)
}

func (s *EbitenSink) MeasureText(str string, style TextStyle) (float64, float64) {
	face := faceFor(style)
	if face == nil {
		return 0, 0
	}
	bounds := text.BoundString(face, str)
	return float64(bounds.Dx()), float64(face.Metrics().Height.Ceil())
}

func faceFor(style TextStyle) font.Face {
	name := fonts.Body
	if style == TextTitle {
		name = fonts.Title
	}
	if !fonts.Loaded(name) {
		return nil
	}
	return name.Get()
}
