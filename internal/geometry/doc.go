// Package geometry draws filled boxes, lines, rectangle outlines and circle
// outlines into flat row-major pixel buffers owned by the caller.
//
// A Drawer is built once per window size and reused:
//
//	d := geometry.New(320, 240)
//	buf := make([]geometry.Color, 320*240)
//	if err := d.DrawCircle(buf, 160, 120, 50, 0xff0000); err != nil {
//		// errors.Is(err, geometry.ErrOutOfBounds)
//	}
//
// No operation allocates, resizes or retains the buffer. Concurrent draws
// into the same buffer must be serialized by the caller.
package geometry
