package attrtext

import "strings"

// AttributeMask represents a bitmask of boolean attributes to style a
// character
type AttributeMask uint16

const (
	AttrNone AttributeMask = 0
	AttrBold AttributeMask = 1 << (iota - 1)
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrConceal
	AttrCrossedOut
	// AttrHidden marks characters which take no room on screen. It is never
	// written to the terminal
	AttrHidden

	attrMask AttributeMask = 1<<9 - 1
)

var attrNames = []string{
	"bold",
	"faint",
	"italic",
	"underline",
	"blink",
	"inverse",
	"conceal",
	"crossed-out",
	"hidden",
}

func (a AttributeMask) String() string {
	if a == AttrNone {
		return "none"
	}
	names := []string{}
	for i, name := range attrNames {
		if a&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Style is the packed attribute and color state of a single character. Two
// styles are equal if and only if they render the same, so styles can be
// compared with ==. The zero value is the default style.
//
// Layout, from the least significant bit:
//
//	0-8    attributes
//	9      foreground is indexed
//	10     foreground is RGB
//	11     background is indexed
//	12     background is RGB
//	16-39  foreground payload
//	40-63  background payload
type Style uint64

const (
	fgIndexed Style = 1 << 9
	fgRGB     Style = 1 << 10
	bgIndexed Style = 1 << 11
	bgRGB     Style = 1 << 12

	fgShift = 16
	bgShift = 40

	fgFlags Style = fgIndexed | fgRGB
	bgFlags Style = bgIndexed | bgRGB
	fgBits  Style = Style(colorPayload)<<fgShift | fgFlags
	bgBits  Style = Style(colorPayload)<<bgShift | bgFlags
)

// DefaultStyle has no attributes and default colors
const DefaultStyle Style = 0

// NewStyle packs the colors and attributes into a Style
func NewStyle(fg Color, bg Color, attrs AttributeMask) Style {
	return DefaultStyle.
		WithForeground(fg).
		WithBackground(bg).
		WithAttributes(attrs)
}

// Foreground returns the foreground color
func (s Style) Foreground() Color {
	payload := Color(s>>fgShift) & colorPayload
	switch {
	case s&fgIndexed != 0:
		return payload | indexed
	case s&fgRGB != 0:
		return payload | rgb
	}
	return 0
}

// Background returns the background color
func (s Style) Background() Color {
	payload := Color(s>>bgShift) & colorPayload
	switch {
	case s&bgIndexed != 0:
		return payload | indexed
	case s&bgRGB != 0:
		return payload | rgb
	}
	return 0
}

// Attributes returns the attribute bits
func (s Style) Attributes() AttributeMask {
	return AttributeMask(s) & attrMask
}

func (s Style) WithForeground(c Color) Style {
	s &^= fgBits
	switch {
	case c.IsIndexed():
		s |= fgIndexed | Style(c.Index())<<fgShift
	case c.IsRGB():
		s |= fgRGB | Style(c&colorPayload)<<fgShift
	}
	return s
}

func (s Style) WithBackground(c Color) Style {
	s &^= bgBits
	switch {
	case c.IsIndexed():
		s |= bgIndexed | Style(c.Index())<<bgShift
	case c.IsRGB():
		s |= bgRGB | Style(c&colorPayload)<<bgShift
	}
	return s
}

// WithAttributes returns s with attrs switched on
func (s Style) WithAttributes(attrs AttributeMask) Style {
	return s | Style(attrs&attrMask)
}

// WithoutAttributes returns s with attrs switched off
func (s Style) WithoutAttributes(attrs AttributeMask) Style {
	return s &^ Style(attrs&attrMask)
}

// Has reports whether all of attrs are set
func (s Style) Has(attrs AttributeMask) bool {
	return s.Attributes()&attrs == attrs
}

func (s Style) IsDefault() bool {
	return s == DefaultStyle
}

func (s Style) IsHidden() bool {
	return s.Has(AttrHidden)
}

// foreground and background return the raw packed channel, used to detect
// changes without unpacking
func (s Style) foreground() Style {
	return s & fgBits
}

func (s Style) background() Style {
	return s & bgBits
}

func (s Style) String() string {
	return "fg=" + s.Foreground().String() +
		" bg=" + s.Background().String() +
		" attrs=" + s.Attributes().String()
}
