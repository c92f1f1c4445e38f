package frame

import (
	"image/color"
	"math"

	"geomdraw/internal/geometry"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// LabelFont is the bitmap font used by Label.
var LabelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// displayer adapts a frame to drivers.Displayer. Glyph pixels go through
// the Drawer so text obeys the same bounds rules as every other shape.
// The first rejected pixel is kept and later pixels are dropped.
type displayer struct {
	d   geometry.Drawer
	f   *Frame
	err error
}

var _ drivers.Displayer = (*displayer)(nil)

func (p *displayer) Size() (x, y int16) {
	return int16(min(p.f.Width, math.MaxInt16)), int16(min(p.f.Height, math.MaxInt16))
}

func (p *displayer) SetPixel(x, y int16, c color.RGBA) {
	if p.err != nil {
		return
	}
	p.err = p.d.WritePixel(p.f.Pix, int(x), int(y), Pack(c))
}

func (p *displayer) Display() error { return p.err }

// Label writes text with its baseline at y, starting at x.
// It returns the first out-of-bounds error a glyph pixel produced. An
// origin outside the int16 range the font renderer works in is rejected
// before anything is drawn.
func Label(f *Frame, x, y int, text string, c geometry.Color) error {
	if !fitsInt16(x) || !fitsInt16(y) {
		return &geometry.OutOfBoundsError{X: x, Y: y}
	}
	p := &displayer{d: f.Drawer(), f: f}
	tinyfont.WriteLine(p, LabelFont, int16(x), int16(y), text, Unpack(c))
	return p.Display()
}

// LabelWidth returns the advance width of text in pixels.
func LabelWidth(text string) int {
	_, w := tinyfont.LineWidth(LabelFont, text)
	return int(w)
}

func fitsInt16(v int) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}
