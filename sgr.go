package attrtext

import (
	"strconv"
	"strings"
)

const (
	csi      = "\x1b["
	sgrReset = "\x1b[0m"

	// Normal intensity clears both bold and faint
	boldFaintReset = 22
	boldSet        = 1
	faintSet       = 2

	fgSet       = 30
	fgBrightSet = 90
	fgExtended  = 38
	fgReset     = 39
	bgSet       = 40
	bgBrightSet = 100
	bgExtended  = 48
	bgReset     = 49
	ulExtended  = 58

	extendedIndex = 5
	extendedRGB   = 2
)

// sgrAttributes are the attributes with their own set and reset codes, in
// the order they are written
var sgrAttributes = []struct {
	attr  AttributeMask
	set   int
	reset int
}{
	{AttrItalic, 3, 23},
	{AttrUnderline, 4, 24},
	{AttrBlink, 5, 25},
	{AttrInverse, 7, 27},
	{AttrConceal, 8, 28},
	{AttrCrossedOut, 9, 29},
}

// cutEscape splits the escape sequence at the start of s from the rest of
// the text. For CSI sequences the parameters and final byte are returned,
// other sequences report a zero final byte
func cutEscape(s string) (params string, final byte, rest string) {
	if len(s) < 2 {
		return "", 0, ""
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i += 1 {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return s[2:i], s[i], s[i+1:]
			}
		}
		// unterminated
		return "", 0, ""
	case ']':
		for i := 2; i < len(s); i += 1 {
			switch {
			case s[i] == 0x07:
				return "", 0, s[i+1:]
			case s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\':
				return "", 0, s[i+2:]
			}
		}
		return "", 0, ""
	case '(', ')':
		// charset designation
		if len(s) < 3 {
			return "", 0, ""
		}
		return "", 0, s[3:]
	}
	return "", 0, s[2:]
}

// applySGR updates style with the parameters of one SGR sequence. Both the
// colon and semicolon forms of extended colors are understood
func applySGR(style Style, params string) Style {
	if params == "" {
		return DefaultStyle
	}
	ps := strings.Split(params, ";")
	for i := 0; i < len(ps); i += 1 {
		subs := strings.Split(ps[i], ":")
		code, err := strconv.Atoi(subs[0])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			style = DefaultStyle
		case code == boldSet:
			style = style.WithAttributes(AttrBold)
		case code == faintSet:
			style = style.WithAttributes(AttrFaint)
		case code == 4 && len(subs) > 1 && subs[1] == "0":
			style = style.WithoutAttributes(AttrUnderline)
		case code == 6:
			// rapid blink
			style = style.WithAttributes(AttrBlink)
		case code == 21:
			// double underline
			style = style.WithAttributes(AttrUnderline)
		case code == boldFaintReset:
			style = style.WithoutAttributes(AttrBold | AttrFaint)
		case code >= fgSet && code < fgSet+8:
			style = style.WithForeground(IndexColor(uint8(code - fgSet)))
		case code >= fgBrightSet && code < fgBrightSet+8:
			style = style.WithForeground(IndexColor(uint8(code - fgBrightSet + 8)))
		case code >= bgSet && code < bgSet+8:
			style = style.WithBackground(IndexColor(uint8(code - bgSet)))
		case code >= bgBrightSet && code < bgBrightSet+8:
			style = style.WithBackground(IndexColor(uint8(code - bgBrightSet + 8)))
		case code == fgReset:
			style = style.WithForeground(0)
		case code == bgReset:
			style = style.WithBackground(0)
		case code == fgExtended, code == bgExtended, code == ulExtended:
			c, n, ok := extendedColor(subs, ps[i+1:])
			i += n
			if !ok {
				continue
			}
			switch code {
			case fgExtended:
				style = style.WithForeground(c)
			case bgExtended:
				style = style.WithBackground(c)
			}
			// underline colors are not part of a Style
		default:
			for _, a := range sgrAttributes {
				switch code {
				case a.set:
					style = style.WithAttributes(a.attr)
				case a.reset:
					style = style.WithoutAttributes(a.attr)
				}
			}
		}
	}
	return style
}

// extendedColor decodes the color of a 38, 48 or 58 parameter. subs holds the
// colon separated form, rest the parameters following it for the semicolon
// form. n is the number of parameters of rest that were consumed
func extendedColor(subs []string, rest []string) (c Color, n int, ok bool) {
	if len(subs) > 1 {
		switch {
		case subs[1] == "5" && len(subs) >= 3:
			return IndexColor(atoiByte(subs[2])), 0, true
		case subs[1] == "2" && len(subs) >= 5:
			// an optional colorspace id may precede the channels
			ch := subs[len(subs)-3:]
			return RGBColor(atoiByte(ch[0]), atoiByte(ch[1]), atoiByte(ch[2])), 0, true
		}
		return 0, 0, false
	}
	if len(rest) == 0 {
		return 0, 0, false
	}
	switch {
	case rest[0] == "5" && len(rest) >= 2:
		return IndexColor(atoiByte(rest[1])), 2, true
	case rest[0] == "2" && len(rest) >= 4:
		return RGBColor(atoiByte(rest[1]), atoiByte(rest[2]), atoiByte(rest[3])), 4, true
	}
	// malformed, drop the remaining parameters
	return 0, len(rest), false
}

func atoiByte(s string) uint8 {
	n, err := strconv.Atoi(s)
	switch {
	case err != nil, n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}
