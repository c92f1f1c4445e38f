package frame

import (
	"image"

	"geomdraw/internal/geometry"

	"golang.org/x/image/draw"
)

// Frame owns the pixel buffer handed to a geometry.Drawer.
type Frame struct {
	Width  int
	Height int
	Pix    []geometry.Color // 0xRRGGBB, row-major, len = W*H
}

// New allocates a black frame.
func New(w, h int) *Frame {
	return &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]geometry.Color, w*h),
	}
}

// Drawer returns a Drawer addressing this frame's rows.
func (f *Frame) Drawer() geometry.Drawer {
	return geometry.New(f.Width, f.Height)
}

// Image converts the frame to an opaque NRGBA image.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, c := range f.Pix {
		o := i * 4
		img.Pix[o] = uint8(c >> 16)
		img.Pix[o+1] = uint8(c >> 8)
		img.Pix[o+2] = uint8(c)
		img.Pix[o+3] = 255
	}
	return img
}

// Fill stretches src over the whole frame, dropping alpha.
func (f *Frame) Fill(src image.Image) {
	tmp := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.ApproxBiLinear.Scale(tmp, tmp.Bounds(), src, src.Bounds(), draw.Src, nil)
	for i := range f.Pix {
		o := i * 4
		f.Pix[i] = geometry.Color(tmp.Pix[o])<<16 |
			geometry.Color(tmp.Pix[o+1])<<8 |
			geometry.Color(tmp.Pix[o+2])
	}
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling
// so every drawn pixel stays a hard-edged square.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
