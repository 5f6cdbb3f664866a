package attrtext

import "unicode/utf8"

// Builder accumulates styled text. Unlike String, a Builder grows in place,
// so slices of a Builder are copies. The zero value is ready to use
type Builder struct {
	runes  []rune
	styles []Style
	// style is applied to text added with Append, AppendRune and AppendANSI
	style Style
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Len() int {
	return len(b.runes)
}

func (b *Builder) RuneAt(i int) rune {
	checkIndex(i, len(b.runes))
	return b.runes[i]
}

func (b *Builder) StyleAt(i int) Style {
	checkIndex(i, len(b.runes))
	return b.styles[i]
}

// Slice copies the runes in [start, end) into a new String
func (b *Builder) Slice(start int, end int) *String {
	checkRange(start, end, len(b.runes))
	runes := make([]rune, end-start)
	styles := make([]Style, end-start)
	copy(runes, b.runes[start:end])
	copy(styles, b.styles[start:end])
	return &String{
		runes:  runes,
		styles: styles,
		length: len(runes),
	}
}

func (b *Builder) String() string {
	return string(b.runes)
}

// ToString returns a snapshot of the builder
func (b *Builder) ToString() *String {
	return b.Slice(0, len(b.runes))
}

// Style returns the current style
func (b *Builder) Style() Style {
	return b.style
}

// SetStyle sets the style used for subsequent appends
func (b *Builder) SetStyle(style Style) *Builder {
	b.style = style
	return b
}

func (b *Builder) AppendRune(r rune) *Builder {
	b.runes = append(b.runes, r)
	b.styles = append(b.styles, b.style)
	return b
}

// Append adds text in the current style
func (b *Builder) Append(text string) *Builder {
	return b.AppendStyled(text, b.style)
}

// AppendStyled adds text in the given style. The current style is not
// changed
func (b *Builder) AppendStyled(text string, style Style) *Builder {
	for _, r := range text {
		b.runes = append(b.runes, r)
		b.styles = append(b.styles, style)
	}
	return b
}

// AppendSequence adds every rune of seq with its own style
func (b *Builder) AppendSequence(seq Sequence) *Builder {
	for i := 0; i < seq.Len(); i += 1 {
		b.runes = append(b.runes, seq.RuneAt(i))
		b.styles = append(b.styles, seq.StyleAt(i))
	}
	return b
}

// AppendANSI adds text containing SGR escape sequences. Each SGR sequence
// updates the current style, which is kept after the call. Other escape
// sequences are dropped
func (b *Builder) AppendANSI(text string) *Builder {
	for len(text) > 0 {
		if text[0] != 0x1b {
			r, n := utf8.DecodeRuneInString(text)
			text = text[n:]
			b.AppendRune(r)
			continue
		}
		var params string
		var final byte
		params, final, text = cutEscape(text)
		if final == 'm' {
			b.style = applySGR(b.style, params)
		}
	}
	return b
}

// Reset clears the builder and its current style
func (b *Builder) Reset() {
	b.runes = b.runes[:0]
	b.styles = b.styles[:0]
	b.style = DefaultStyle
}
