package scene

import "geomdraw/internal/geometry"

// Op names a drawing operation in a scene file.
type Op string

const (
	OpClear  Op = "clear"
	OpBox    Op = "box"
	OpLine   Op = "line"
	OpRect   Op = "rect"
	OpCircle Op = "circle"
	OpText   Op = "text"
)

// Scene is one picture: a window size, an optional background image and
// the shapes drawn over it in order.
type Scene struct {
	Name       string  `json:"name"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Background string  `json:"background,omitempty"` // resolved against the scene file's directory
	Shapes     []Shape `json:"shapes"`

	Path string `json:"-"`
}

// Shape is a single drawing call. Which coordinates are read depends on Op:
// clear/box/line/rect use X0..Y1, circle uses CX, CY, R, and text uses
// X, Y (baseline) and Text. A rect with no thickness gets a 1-pixel border.
type Shape struct {
	Op        Op     `json:"op"`
	X0        int    `json:"x0"`
	Y0        int    `json:"y0"`
	X1        int    `json:"x1"`
	Y1        int    `json:"y1"`
	Thickness int    `json:"thickness,omitempty"`
	CX        int    `json:"cx"`
	CY        int    `json:"cy"`
	R         int    `json:"r"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Text      string `json:"text,omitempty"`
	Color     Color  `json:"color"`
}

// Color is a geometry.Color that unmarshals from a JSON number or from a
// "#RRGGBB" / "0xRRGGBB" string.
type Color geometry.Color
