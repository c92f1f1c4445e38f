package geometry

// FillBox sets every pixel of the half-open box [x0, x1) × [y0, y1) to c.
// An empty box draws nothing. Rows are filled top to bottom, each left to
// right.
func (d Drawer) FillBox(buf []Color, x0, y0, x1, y1 int, c Color) error {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if err := d.WritePixel(buf, x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clear fills [x0, x1) × [y0, y1) with Black.
func (d Drawer) Clear(buf []Color, x0, y0, x1, y1 int) error {
	return d.FillBox(buf, x0, y0, x1, y1, Black)
}
