package frame

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"geomdraw/internal/geometry"
)

func TestNew(t *testing.T) {
	f := New(8, 5)
	if len(f.Pix) != 40 {
		t.Fatalf("len(Pix) = %d, want 40", len(f.Pix))
	}
	d := f.Drawer()
	if d.Width() != 8 || d.Height() != 5 {
		t.Errorf("Drawer dims = %dx%d, want 8x5", d.Width(), d.Height())
	}
}

func TestImage(t *testing.T) {
	f := New(3, 2)
	f.Pix[0] = 0x112233
	f.Pix[5] = 0xffffff

	img := f.Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %v, want 3x2", got)
	}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{0x11, 0x22, 0x33, 0xff}},
		{1, 0, color.NRGBA{0, 0, 0, 0xff}},
		{2, 1, color.NRGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("NRGBAAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFill(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			bg.Set(x, y, color.RGBA{0x40, 0x80, 0xc0, 0xff})
		}
	}
	f := New(6, 4)
	f.Fill(bg)
	for i, c := range f.Pix {
		if c != 0x4080c0 {
			t.Fatalf("Pix[%d] = %#06x, want 0x4080c0", i, c)
		}
	}
}

func TestScale(t *testing.T) {
	f := New(2, 1)
	f.Pix[0] = 0xff0000
	f.Pix[1] = 0x0000ff

	img := Scale(f.Image(), 3)
	if got := img.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Fatalf("Bounds() = %v, want 6x3", got)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			want := color.NRGBA{0xff, 0, 0, 0xff}
			if x >= 3 {
				want = color.NRGBA{0, 0, 0xff, 0xff}
			}
			if got := img.NRGBAAt(x, y); got != want {
				t.Errorf("NRGBAAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScaleIdentity(t *testing.T) {
	img := New(2, 2).Image()
	if Scale(img, 1) != img {
		t.Error("Scale(img, 1) returned a copy")
	}
	if Scale(img, 0) != img {
		t.Error("Scale(img, 0) returned a copy")
	}
}

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		in   color.Color
		want geometry.Color
	}{
		{color.RGBA{0x12, 0x34, 0x56, 0xff}, 0x123456},
		{color.Black, 0x000000},
		{color.White, 0xffffff},
		{color.NRGBA{0xaa, 0xbb, 0xcc, 0x10}, 0xaabbcc},
	}
	for _, tt := range tests {
		if got := Pack(tt.in); got != tt.want {
			t.Errorf("Pack(%v) = %#06x, want %#06x", tt.in, got, tt.want)
		}
	}
	if got, want := Unpack(0x123456), (color.RGBA{0x12, 0x34, 0x56, 0xff}); got != want {
		t.Errorf("Unpack(0x123456) = %v, want %v", got, want)
	}
}

func TestLabel(t *testing.T) {
	f := New(64, 24)
	if err := Label(f, 2, 16, "Hi", 0x00ff00); err != nil {
		t.Fatalf("Label = %v, want nil", err)
	}
	n := 0
	for i, c := range f.Pix {
		switch c {
		case 0:
		case 0x00ff00:
			n++
		default:
			t.Fatalf("Pix[%d] = %#06x, want label color or black", i, c)
		}
	}
	if n == 0 {
		t.Error("Label drew nothing")
	}
}

func TestLabelEmpty(t *testing.T) {
	f := New(8, 8)
	if err := Label(f, 0, 6, "", 1); err != nil {
		t.Errorf("Label(\"\") = %v, want nil", err)
	}
	for i, c := range f.Pix {
		if c != 0 {
			t.Fatalf("Pix[%d] = %d after empty label", i, c)
		}
	}
}

func TestLabelOutOfBounds(t *testing.T) {
	// Baseline on the top row puts glyph bodies above the frame.
	f := New(64, 24)
	err := Label(f, 2, 0, "Hi", 1)
	if !errors.Is(err, geometry.ErrOutOfBounds) {
		t.Errorf("Label = %v, want ErrOutOfBounds", err)
	}
}

func TestLabelOriginOutsideInt16(t *testing.T) {
	tests := []struct{ x, y int }{
		{65536 + 2, 16},
		{2, 65536 + 16},
		{math.MaxInt16 + 1, 16},
		{math.MinInt16 - 1, 16},
	}
	for _, tt := range tests {
		f := New(64, 24)
		err := Label(f, tt.x, tt.y, "Hi", 0x00ff00)
		var oob *geometry.OutOfBoundsError
		if !errors.As(err, &oob) || oob.X != tt.x || oob.Y != tt.y {
			t.Errorf("Label(%d, %d) = %v, want out of bounds at the origin", tt.x, tt.y, err)
		}
		for i, c := range f.Pix {
			if c != 0 {
				t.Fatalf("Label(%d, %d) drew Pix[%d] = %#06x", tt.x, tt.y, i, c)
			}
		}
	}
}

func TestLabelWidth(t *testing.T) {
	if LabelWidth("") != 0 {
		t.Errorf("LabelWidth(\"\") = %d, want 0", LabelWidth(""))
	}
	if a, b := LabelWidth("A"), LabelWidth("AAAA"); b <= a {
		t.Errorf("LabelWidth(AAAA) = %d, not wider than LabelWidth(A) = %d", b, a)
	}
}
