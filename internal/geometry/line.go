package geometry

import "iter"

// LinePoints yields the Bresenham traversal from (x0, y0) to (x1, y1),
// both endpoints included, starting at (x0, y0).
func LinePoints(x0, y0, x1, y1 int) iter.Seq2[int, int] {
	return func(yield func(x, y int) bool) {
		dx := abs(x1 - x0)
		dy := -abs(y1 - y0)
		sx, sy := 1, 1
		if x0 > x1 {
			sx = -1
		}
		if y0 > y1 {
			sy = -1
		}
		e := dx + dy
		x, y := x0, y0
		for {
			if !yield(x, y) {
				return
			}
			if x == x1 && y == y1 {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += sx
			}
			if e2 <= dx {
				e += dx
				y += sy
			}
		}
	}
}

// DrawLine draws the segment from (x0, y0) to (x1, y1) inclusive.
func (d Drawer) DrawLine(buf []Color, x0, y0, x1, y1 int, c Color) error {
	for x, y := range LinePoints(x0, y0, x1, y1) {
		if err := d.WritePixel(buf, x, y, c); err != nil {
			return err
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
