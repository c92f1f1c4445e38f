package frame

import (
	"image/color"

	"geomdraw/internal/geometry"
)

// Pack converts any color to 0xRRGGBB, ignoring alpha.
func Pack(c color.Color) geometry.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return geometry.Color(n.R)<<16 | geometry.Color(n.G)<<8 | geometry.Color(n.B)
}

// Unpack converts 0xRRGGBB to an opaque RGBA color.
func Unpack(c geometry.Color) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
