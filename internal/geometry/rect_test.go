package geometry

import (
	"errors"
	"testing"
)

func TestDrawRectangle_Perimeter(t *testing.T) {
	d := New(10, 10)
	buf := newBuf(10, 10)
	if err := d.DrawRectangle(buf, 1, 1, 8, 8, 1, 4); err != nil {
		t.Fatalf("DrawRectangle = %v, want nil", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inBox := x >= 1 && x < 8 && y >= 1 && y < 8
			edge := x == 1 || x == 7 || y == 1 || y == 7
			want := Color(0)
			if inBox && edge {
				want = 4
			}
			if got := buf[y*10+x]; got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDrawRectangle_Thickness(t *testing.T) {
	d := New(12, 12)
	buf := newBuf(12, 12)
	if err := d.DrawRectangle(buf, 0, 0, 12, 12, 3, 1); err != nil {
		t.Fatalf("DrawRectangle = %v, want nil", err)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			ring := x < 3 || x >= 9 || y < 3 || y >= 9
			got := buf[y*12+x] == 1
			if got != ring {
				t.Errorf("pixel (%d, %d) drawn = %v, want %v", x, y, got, ring)
			}
		}
	}
}

func TestDrawRectangle_Overlap(t *testing.T) {
	// A border thicker than half the box crosses itself; the box ends up solid.
	d := New(10, 10)
	buf := newBuf(10, 10)
	if err := d.DrawRectangle(buf, 2, 2, 6, 5, 4, 1); err != nil {
		t.Fatalf("DrawRectangle = %v, want nil", err)
	}
	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if buf[y*10+x] != 1 {
				t.Errorf("pixel (%d, %d) not drawn", x, y)
			}
		}
	}
}

func TestDrawRectangle_Noop(t *testing.T) {
	d := New(10, 10)
	tests := []struct {
		name                      string
		x0, y0, x1, y1, thickness int
	}{
		{"zero thickness", 1, 1, 8, 8, 0},
		{"negative thickness", 1, 1, 8, 8, -2},
		{"empty width", 5, 1, 5, 8, 1},
		{"inverted", 8, 8, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBuf(10, 10)
			if err := d.DrawRectangle(buf, tt.x0, tt.y0, tt.x1, tt.y1, tt.thickness, 1); err != nil {
				t.Errorf("DrawRectangle = %v, want nil", err)
			}
			if n := len(lit(buf, 10)); n != 0 {
				t.Errorf("%d pixels drawn, want 0", n)
			}
		})
	}
}

func TestDrawRectangle_FailFast(t *testing.T) {
	// Left edge fits, right edge runs off the end of the buffer.
	d := New(10, 10)
	buf := newBuf(10, 10)
	err := d.DrawRectangle(buf, 0, 5, 10, 11, 1, 2)

	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("DrawRectangle = %v, want *OutOfBoundsError", err)
	}
	if oob.X != 0 || oob.Y != 10 {
		t.Errorf("failure at (%d, %d), want (0, 10)", oob.X, oob.Y)
	}
	got := lit(buf, 10)
	if len(got) != 5 {
		t.Errorf("%d pixels written before failure, want 5", len(got))
	}
	for y := 5; y < 10; y++ {
		if !got[[2]int{0, y}] {
			t.Errorf("pixel (0, %d) not written before failure", y)
		}
	}
}
