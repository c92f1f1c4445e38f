package scene

import (
	"fmt"

	"geomdraw/internal/frame"
	"geomdraw/internal/geometry"
)

// Render draws every shape into f in order. It stops at the first shape
// that fails; shapes already drawn, and the failing shape's pixels up to
// the bad coordinate, stay in f.
func (s *Scene) Render(f *frame.Frame) error {
	d := f.Drawer()
	for i, sh := range s.Shapes {
		if err := sh.draw(d, f); err != nil {
			return fmt.Errorf("scene %s: shape %d (%s): %w", s.Name, i, sh.Op, err)
		}
	}
	return nil
}

func (sh Shape) draw(d geometry.Drawer, f *frame.Frame) error {
	c := geometry.Color(sh.Color)
	switch sh.Op {
	case OpClear:
		return d.Clear(f.Pix, sh.X0, sh.Y0, sh.X1, sh.Y1)
	case OpBox:
		return d.FillBox(f.Pix, sh.X0, sh.Y0, sh.X1, sh.Y1, c)
	case OpLine:
		return d.DrawLine(f.Pix, sh.X0, sh.Y0, sh.X1, sh.Y1, c)
	case OpRect:
		t := sh.Thickness
		if t == 0 {
			t = 1
		}
		return d.DrawRectangle(f.Pix, sh.X0, sh.Y0, sh.X1, sh.Y1, t, c)
	case OpCircle:
		return d.DrawCircle(f.Pix, sh.CX, sh.CY, sh.R, c)
	case OpText:
		return frame.Label(f, sh.X, sh.Y, sh.Text, c)
	default:
		return fmt.Errorf("unknown op %q", sh.Op)
	}
}
