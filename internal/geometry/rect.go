package geometry

// DrawRectangle outlines the box [x0, x1) × [y0, y1) with a border
// thickness pixels wide, growing inward. Each layer is four DrawLine calls:
// left, right, top, bottom. Layers that cross on a thin box are drawn as is.
func (d Drawer) DrawRectangle(buf []Color, x0, y0, x1, y1, thickness int, c Color) error {
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	right, bottom := x1-1, y1-1
	for i := 0; i < thickness; i++ {
		if err := d.DrawLine(buf, x0+i, y0, x0+i, bottom, c); err != nil {
			return err
		}
		if err := d.DrawLine(buf, right-i, y0, right-i, bottom, c); err != nil {
			return err
		}
		if err := d.DrawLine(buf, x0, y0+i, right, y0+i, c); err != nil {
			return err
		}
		if err := d.DrawLine(buf, x0, bottom-i, right, bottom-i, c); err != nil {
			return err
		}
	}
	return nil
}
