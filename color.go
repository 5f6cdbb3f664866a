package attrtext

import "fmt"

// Color is a terminal color. The zero value represents the default foreground
// or background color
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25

	colorPayload Color = 0xFFFFFF
)

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates an RGB color from a 0xRRGGBB value
func HexColor(hex uint32) Color {
	return Color(hex)&colorPayload | rgb
}

// IsDefault reports whether c is the terminal default color
func (c Color) IsDefault() bool {
	return c&(indexed|rgb) == 0
}

func (c Color) IsIndexed() bool {
	return c&indexed != 0
}

func (c Color) IsRGB() bool {
	return c&rgb != 0
}

// Index returns the palette index of an indexed color. The result is
// meaningless for other colors
func (c Color) Index() uint8 {
	return uint8(c)
}

// RGB returns the channels of an RGB color. The result is meaningless for
// other colors
func (c Color) RGB() (r uint8, g uint8, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	switch {
	case c.IsIndexed():
		return fmt.Sprintf("index(%d)", c.Index())
	case c.IsRGB():
		return fmt.Sprintf("#%06x", uint32(c&colorPayload))
	}
	return "default"
}
