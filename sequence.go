package attrtext

import "fmt"

// Sequence is an ordered run of characters, each with its own Style. Indexes
// address runes.
type Sequence interface {
	// Len returns the number of runes in the sequence
	Len() int
	// RuneAt returns the rune at index i
	RuneAt(i int) rune
	// StyleAt returns the style of the rune at index i
	StyleAt(i int) Style
	// Slice returns the runes in [start, end) as a String
	Slice(start int, end int) *String
	// String returns the plain text of the sequence, without styles
	String() string
}

// Segment is a piece of text sharing a single style
type Segment struct {
	Text  string
	Style Style
}

// String is an immutable styled sequence. Slicing a String returns a view
// sharing the same storage
type String struct {
	runes  []rune
	styles []Style
	offset int
	length int
}

// NewString creates a String where every rune has the same style
func NewString(text string, style Style) *String {
	runes := []rune(text)
	styles := make([]Style, len(runes))
	for i := range styles {
		styles[i] = style
	}
	return &String{
		runes:  runes,
		styles: styles,
		length: len(runes),
	}
}

// Styled creates a String by concatenating segments
func Styled(segments ...Segment) *String {
	b := NewBuilder()
	for _, seg := range segments {
		b.AppendStyled(seg.Text, seg.Style)
	}
	return b.ToString()
}

func (s *String) Len() int {
	return s.length
}

func (s *String) RuneAt(i int) rune {
	checkIndex(i, s.length)
	return s.runes[s.offset+i]
}

func (s *String) StyleAt(i int) Style {
	checkIndex(i, s.length)
	return s.styles[s.offset+i]
}

// Slice returns a view of the runes in [start, end). No data is copied
func (s *String) Slice(start int, end int) *String {
	checkRange(start, end, s.length)
	return &String{
		runes:  s.runes,
		styles: s.styles,
		offset: s.offset + start,
		length: end - start,
	}
}

func (s *String) String() string {
	return string(s.runes[s.offset : s.offset+s.length])
}

// Equal reports whether both strings hold the same runes with the same
// styles
func (s *String) Equal(other *String) bool {
	if s.length != other.length {
		return false
	}
	for i := 0; i < s.length; i += 1 {
		if s.runes[s.offset+i] != other.runes[other.offset+i] ||
			s.styles[s.offset+i] != other.styles[other.offset+i] {
			return false
		}
	}
	return true
}

// Contains reports whether r appears in seq
func Contains(seq Sequence, r rune) bool {
	for i := 0; i < seq.Len(); i += 1 {
		if seq.RuneAt(i) == r {
			return true
		}
	}
	return false
}

// IsHidden reports whether the rune at index i has the hidden attribute
func IsHidden(seq Sequence, i int) bool {
	return seq.StyleAt(i).IsHidden()
}

func checkIndex(i int, length int) {
	if i < 0 || i >= length {
		panic(fmt.Sprintf("attrtext: index %d out of range [0,%d)", i, length))
	}
}

func checkRange(start int, end int, length int) {
	if start < 0 || end > length || start > end {
		panic(fmt.Sprintf("attrtext: slice [%d:%d] out of range [0,%d]", start, end, length))
	}
}
