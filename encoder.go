package attrtext

import (
	"bytes"
	"strconv"
)

// ForceMode overrides how colors are written
type ForceMode int

const (
	// ForceNone picks the color format from the color depth
	ForceNone ForceMode = iota
	// Force256Colors writes every palette color with the 256 color
	// sequence, even for the first 16 colors
	Force256Colors
	// ForceTrueColors writes palette colors as RGB when the terminal
	// supports it
	ForceTrueColors
)

func (f ForceMode) String() string {
	switch f {
	case Force256Colors:
		return "256"
	case ForceTrueColors:
		return "truecolor"
	}
	return "none"
}

const (
	// TrueColors is the color depth of a 24 bit terminal
	TrueColors = 0x1000000
	// highColors is the smallest color depth for which RGB colors are
	// written directly
	highColors = 0x7FFF
	// defaultColors is used when no color depth is given
	defaultColors = 256
)

// EncodeOptions describes the terminal an encoding is for
type EncodeOptions struct {
	// ColorDepth is the number of colors the terminal can show. Zero means
	// 256
	ColorDepth int
	// Force overrides the color format picked from ColorDepth
	Force ForceMode
	// Palette gives meaning to indexed colors and is used to quantize RGB
	// colors. Nil means DefaultPalette
	Palette *Palette
	// AltCharsetEnter and AltCharsetExit switch the terminal in and out of
	// its alternate character set. Line drawing characters are only
	// substituted when both are set
	AltCharsetEnter string
	AltCharsetExit  string
}

// altCharset maps box drawing characters to their alternate character set
// equivalent
var altCharset = map[rune]rune{
	'┘': 'j',
	'┐': 'k',
	'┌': 'l',
	'└': 'm',
	'┼': 'n',
	'─': 'q',
	'├': 't',
	'┤': 'u',
	'┴': 'v',
	'┬': 'w',
	'│': 'x',
}

type channel struct {
	set      int
	bright   int
	extended int
	reset    int
}

var (
	fgChannel = channel{fgSet, fgBrightSet, fgExtended, fgReset}
	bgChannel = channel{bgSet, bgBrightSet, bgExtended, bgReset}
)

// Encode renders seq as text with SGR escape sequences. Only the attributes
// and colors which change between two characters are written, and the
// output always ends in the default style
func Encode(seq Sequence, opts EncodeOptions) string {
	buf := getBuffer()
	defer putBuffer(buf)
	e := newEncoder(opts)
	e.encode(buf, seq)
	e.finish(buf)
	return buf.String()
}

// encoder tracks the terminal state between characters. The state carries
// over between calls to encode until finish
type encoder struct {
	depth    int
	force    ForceMode
	palette  *Palette
	altEnter string
	altExit  string

	// style is the style of the last character written, without
	// AttrHidden
	style Style
	// fg and bg are the packed colors last written
	fg  Style
	bg  Style
	alt bool
}

func newEncoder(opts EncodeOptions) *encoder {
	e := &encoder{
		depth:    opts.ColorDepth,
		force:    opts.Force,
		palette:  opts.Palette,
		altEnter: opts.AltCharsetEnter,
		altExit:  opts.AltCharsetExit,
	}
	if e.depth <= 0 {
		e.depth = defaultColors
	}
	if e.palette == nil {
		e.palette = DefaultPalette
	}
	if e.force != Force256Colors && e.depth < e.palette.Len() {
		e.palette = e.palette.Limit(e.depth)
	}
	return e
}

func (e *encoder) encode(buf *bytes.Buffer, seq Sequence) {
	substitute := e.altEnter != "" && e.altExit != ""
	for i := 0; i < seq.Len(); i += 1 {
		r := seq.RuneAt(i)
		if substitute {
			acs, ok := altCharset[r]
			if ok != e.alt {
				e.alt = ok
				if e.alt {
					buf.WriteString(e.altEnter)
				} else {
					buf.WriteString(e.altExit)
				}
			}
			if ok {
				r = acs
			}
		}
		e.setStyle(buf, seq.StyleAt(i))
		buf.WriteRune(r)
	}
}

// setStyle moves the terminal to style
func (e *encoder) setStyle(buf *bytes.Buffer, style Style) {
	next := style.WithoutAttributes(AttrHidden)
	if next == e.style {
		return
	}
	if next == DefaultStyle {
		buf.WriteString(sgrReset)
		e.fg, e.bg = 0, 0
	} else {
		e.transition(buf, e.style, next)
	}
	e.style = next
}

// finish closes an open alternate character set run and returns to the
// default style
func (e *encoder) finish(buf *bytes.Buffer) {
	if e.alt {
		buf.WriteString(e.altExit)
		e.alt = false
	}
	if e.style != DefaultStyle {
		buf.WriteString(sgrReset)
		e.style = DefaultStyle
		e.fg, e.bg = 0, 0
	}
}

// transition writes a single SGR sequence moving the terminal from prev to
// next
func (e *encoder) transition(buf *bytes.Buffer, prev Style, next Style) {
	p := sgrParams{buf: buf}
	buf.WriteString(csi)
	changed := (prev ^ next).Attributes()
	on := next.Attributes()
	for _, a := range sgrAttributes {
		if changed&a.attr == 0 {
			continue
		}
		if on&a.attr != 0 {
			p.add(a.set)
		} else {
			p.add(a.reset)
		}
	}
	if e.fg != next.foreground() {
		if e.color(&p, next.Foreground(), fgChannel) {
			// Some terminals drop bold when the foreground is set to a
			// bright color. Set it again
			changed |= on & AttrBold
		}
		e.fg = next.foreground()
	}
	if e.bg != next.background() {
		e.color(&p, next.Background(), bgChannel)
		e.bg = next.background()
	}
	const intensity = AttrBold | AttrFaint
	if changed&intensity != 0 {
		if changed&^on&intensity != 0 {
			p.add(boldFaintReset)
		}
		if changed&on&AttrBold != 0 {
			p.add(boldSet)
		}
		if changed&on&AttrFaint != 0 {
			p.add(faintSet)
		}
	}
	buf.WriteByte('m')
}

// color writes the parameters selecting c on ch. It reports whether the
// bright color form was used
func (e *encoder) color(p *sgrParams, c Color, ch channel) bool {
	switch {
	case c.IsDefault():
		p.add(ch.reset)
		return false
	case c.IsRGB() && e.depth >= highColors:
		r, g, b := c.RGB()
		p.add(ch.extended, extendedRGB, int(r), int(g), int(b))
		return false
	}
	var index int
	if c.IsRGB() {
		index = e.palette.Round(c.RGB())
	} else {
		index = e.palette.RoundIndex(c.Index())
	}
	switch {
	case e.depth >= highColors && e.force == ForceTrueColors:
		r, g, b := e.palette.Color(index)
		p.add(ch.extended, extendedRGB, int(r), int(g), int(b))
	case e.force == Force256Colors || index >= 16:
		p.add(ch.extended, extendedIndex, index)
	case index >= 8:
		p.add(ch.bright + index - 8)
		return true
	default:
		p.add(ch.set + index)
	}
	return false
}

// sgrParams joins SGR parameters with ';'
type sgrParams struct {
	buf     *bytes.Buffer
	written bool
	scratch [20]byte
}

func (p *sgrParams) add(params ...int) {
	for _, n := range params {
		if p.written {
			p.buf.WriteByte(';')
		}
		p.buf.Write(strconv.AppendInt(p.scratch[:0], int64(n), 10))
		p.written = true
	}
}
