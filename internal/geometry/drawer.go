package geometry

import "log/slog"

// Color is a packed pixel value. The drawer never looks at its channels;
// callers conventionally use 0xRRGGBB.
type Color uint32

// Black is the color Clear writes.
const Black Color = 0x000000

// Drawer rasterizes primitives into a caller-owned, row-major pixel buffer.
// It holds only the window dimensions and is safe to copy and share.
//
// Every method takes the target buffer explicitly and borrows it for the
// duration of the call. The buffer's length, not the window height, bounds
// every write. Operations stop at the first coordinate that does not address
// a slot in the buffer and return an *OutOfBoundsError; pixels written before
// that point stay written.
type Drawer struct {
	width  int
	height int
}

// New returns a Drawer for a window of the given size.
// It panics if either dimension is negative.
func New(windowWidth, windowHeight int) Drawer {
	if windowWidth < 0 || windowHeight < 0 {
		panic("geometry: negative window dimensions")
	}
	return Drawer{width: windowWidth, height: windowHeight}
}

// Width returns the row width used for buffer addressing.
func (d Drawer) Width() int { return d.width }

// Height returns the window height given to New. It takes no part in
// bounds checking.
func (d Drawer) Height() int { return d.height }

// WritePixel stores c at (x, y).
// Exactly one slot changes on success and none on failure.
func (d Drawer) WritePixel(buf []Color, x, y int, c Color) error {
	idx, ok := d.index(len(buf), x, y)
	if !ok {
		Logger().Debug("geometry: pixel rejected",
			slog.Int("x", x), slog.Int("y", y), slog.Int("len", len(buf)))
		return &OutOfBoundsError{X: x, Y: y}
	}
	buf[idx] = c
	return nil
}

// index converts (x, y) to a buffer offset, reporting false when the
// point does not address one of n slots. Negative coordinates never wrap.
func (d Drawer) index(n, x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= n {
		return 0, false
	}
	// y*width + x < n without overflowing for large y.
	if d.width > 0 && y > (n-x-1)/d.width {
		return 0, false
	}
	return y*d.width + x, true
}
