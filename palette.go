package attrtext

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DistanceFunc measures how far apart two colors are. Only the ordering of
// the results matters
type DistanceFunc func(a colorful.Color, b colorful.Color) float64

// DistanceRGB is the squared euclidean distance in RGB space
func DistanceRGB(a colorful.Color, b colorful.Color) float64 {
	r1, g1, b1 := a.RGB255()
	r2, g2, b2 := b.RGB255()
	dr := int(r1) - int(r2)
	dg := int(g1) - int(g2)
	db := int(b1) - int(b2)
	return float64(dr*dr + dg*dg + db*db)
}

// DistanceCIE76 is the euclidean distance in L*a*b* space
func DistanceCIE76(a colorful.Color, b colorful.Color) float64 {
	return a.DistanceCIE76(b)
}

func DistanceCIE94(a colorful.Color, b colorful.Color) float64 {
	return a.DistanceCIE94(b)
}

func DistanceCIEDE2000(a colorful.Color, b colorful.Color) float64 {
	return a.DistanceCIEDE2000(b)
}

// DistanceByName returns the distance function for one of "rgb", "cie76",
// "cie94" or "cie00"
func DistanceByName(name string) (DistanceFunc, error) {
	switch strings.ToLower(name) {
	case "", "rgb":
		return DistanceRGB, nil
	case "cie76":
		return DistanceCIE76, nil
	case "cie94":
		return DistanceCIE94, nil
	case "cie00", "ciede2000":
		return DistanceCIEDE2000, nil
	}
	return nil, fmt.Errorf("unknown color distance %q", name)
}

// Palette maps color indexes to RGB values. A Palette is immutable and safe
// for concurrent use
type Palette struct {
	colors   []Color
	points   []colorful.Color
	distance DistanceFunc
}

type PaletteOption func(*Palette)

// WithDistance sets the metric used by Round. The default is DistanceRGB
func WithDistance(fn DistanceFunc) PaletteOption {
	return func(p *Palette) {
		if fn != nil {
			p.distance = fn
		}
	}
}

// DefaultPalette is the xterm 256 color palette
var DefaultPalette = mustPalette(xtermColors())

func xtermColors() []Color {
	colors := make([]Color, 0, 256)
	for _, hex := range ansiColors {
		colors = append(colors, HexColor(hex))
	}
	for r := 0; r < 6; r += 1 {
		for g := 0; g < 6; g += 1 {
			for b := 0; b < 6; b += 1 {
				colors = append(colors, RGBColor(cubeLevels[r], cubeLevels[g], cubeLevels[b]))
			}
		}
	}
	for i := 0; i < 24; i += 1 {
		level := uint8(8 + 10*i)
		colors = append(colors, RGBColor(level, level, level))
	}
	return colors
}

var ansiColors = [16]uint32{
	0x000000, // black
	0x800000, // red
	0x008000, // green
	0x808000, // yellow
	0x000080, // blue
	0x800080, // magenta
	0x008080, // cyan
	0xc0c0c0, // white
	0x808080, // bright black
	0xff0000, // bright red
	0x00ff00, // bright green
	0xffff00, // bright yellow
	0x0000ff, // bright blue
	0xff00ff, // bright magenta
	0x00ffff, // bright cyan
	0xffffff, // bright white
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func mustPalette(colors []Color) *Palette {
	p, err := NewPalette(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPalette creates a palette from 1 to 256 RGB colors
func NewPalette(colors []Color, opts ...PaletteOption) (*Palette, error) {
	if len(colors) == 0 || len(colors) > 256 {
		return nil, fmt.Errorf("palette must have between 1 and 256 colors, got %d", len(colors))
	}
	p := &Palette{
		colors:   make([]Color, len(colors)),
		points:   make([]colorful.Color, len(colors)),
		distance: DistanceRGB,
	}
	for i, c := range colors {
		if !c.IsRGB() {
			return nil, fmt.Errorf("palette entry %d is not an RGB color: %s", i, c)
		}
		r, g, b := c.RGB()
		p.colors[i] = c
		p.points[i] = colorful.Color{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ParsePalette parses a list of hex colors ("#rrggbb" or "rrggbb") separated
// by whitespace or commas
func ParsePalette(s string, opts ...PaletteOption) (*Palette, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	colors := make([]Color, 0, len(fields))
	for _, field := range fields {
		if !strings.HasPrefix(field, "#") {
			field = "#" + field
		}
		c, err := colorful.Hex(field)
		if err != nil {
			return nil, fmt.Errorf("invalid palette color %q: %w", field, err)
		}
		r, g, b := c.RGB255()
		colors = append(colors, RGBColor(r, g, b))
	}
	return NewPalette(colors, opts...)
}

// Len returns the number of colors in the palette
func (p *Palette) Len() int {
	return len(p.colors)
}

// Color returns the RGB value of palette slot i
func (p *Palette) Color(i int) (r uint8, g uint8, b uint8) {
	if i < 0 || i >= len(p.colors) {
		panic(fmt.Sprintf("attrtext: palette index %d out of range [0,%d)", i, len(p.colors)))
	}
	return p.colors[i].RGB()
}

// Limit returns a palette restricted to the first n colors. The returned
// palette shares storage with p
func (p *Palette) Limit(n int) *Palette {
	if n < 1 {
		panic(fmt.Sprintf("attrtext: palette limit %d must be positive", n))
	}
	if n >= len(p.colors) {
		return p
	}
	return &Palette{
		colors:   p.colors[:n],
		points:   p.points[:n],
		distance: p.distance,
	}
}

// Round returns the index of the palette color nearest to the RGB value.
// Ties go to the lowest index
func (p *Palette) Round(r uint8, g uint8, b uint8) int {
	target := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	best := 0
	bestDist := p.distance(target, p.points[0])
	for i := 1; i < len(p.points); i += 1 {
		d := p.distance(target, p.points[i])
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// RoundIndex resolves an indexed color against the palette. Indexes the
// palette holds are returned unchanged, others are rounded from their xterm
// value
func (p *Palette) RoundIndex(index uint8) int {
	if int(index) < len(p.colors) {
		return int(index)
	}
	r, g, b := DefaultPalette.colors[index].RGB()
	return p.Round(r, g, b)
}

// UsingDistance returns a copy of p which rounds with fn. Storage is shared
// with p
func (p *Palette) UsingDistance(fn DistanceFunc) *Palette {
	if fn == nil {
		return p
	}
	return &Palette{
		colors:   p.colors,
		points:   p.points,
		distance: fn,
	}
}
