package geometry

// DrawCircle outlines a circle of radius r around (cx, cy) with the
// midpoint algorithm, plotting eight symmetric points per step.
// A negative radius draws nothing.
func (d Drawer) DrawCircle(buf []Color, cx, cy, r int, c Color) error {
	x, y := 0, r
	dv := 3 - 2*r
	for y >= x {
		if err := d.plot8(buf, cx, cy, x, y, c); err != nil {
			return err
		}
		x++
		if dv > 0 {
			y--
			dv += 4*(x-y) + 10
		} else {
			dv += 4*x + 6
		}
	}
	return nil
}

func (d Drawer) plot8(buf []Color, cx, cy, x, y int, c Color) error {
	pts := [8][2]int{
		{cx + x, cy + y}, {cx - x, cy + y},
		{cx + x, cy - y}, {cx - x, cy - y},
		{cx + y, cy + x}, {cx - y, cy + x},
		{cx + y, cy - x}, {cx - y, cy - x},
	}
	for _, p := range pts {
		if err := d.WritePixel(buf, p[0], p[1], c); err != nil {
			return err
		}
	}
	return nil
}
