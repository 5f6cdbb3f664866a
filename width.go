package attrtext

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how the display width of text is measured. Terminals
// disagree on the width of complex graphemes, so the method should match the
// terminal the text is written to
type WidthMethod int

const (
	// Wcwidth measures each rune on its own, like the C wcwidth(3)
	// function most terminals use
	Wcwidth WidthMethod = iota
	// NoZWJ measures grapheme clusters, but not joined with zero width
	// joiners
	NoZWJ
	// Unicode measures grapheme clusters following the Unicode standard
	Unicode
)

func (m WidthMethod) String() string {
	switch m {
	case NoZWJ:
		return "nozwj"
	case Unicode:
		return "unicode"
	}
	return "wcwidth"
}

// StringWidth returns the display width of s
func (m WidthMethod) StringWidth(s string) int {
	switch m {
	case NoZWJ:
		s = strings.ReplaceAll(s, "\u200D", "")
		return uniseg.StringWidth(s)
	case Unicode:
		return uniseg.StringWidth(s)
	default:
		total := 0
		for _, r := range s {
			total += runeWidth(r)
		}
		return total
	}
}

func runeWidth(r rune) int {
	switch {
	case r >= 0x20 && r < 0x7F:
		return 1
	case r >= 0xFE00 && r <= 0xFE0F:
		// Variation Selectors 1 - 16
		return 0
	case r >= 0xE0100 && r <= 0xE01EF:
		// Variation Selectors 17-256
		return 0
	}
	return runewidth.RuneWidth(r)
}

// cell is a character as the terminal sees it: a single rune for Wcwidth, a
// grapheme cluster otherwise. A cell is never split
type cell struct {
	start   int
	end     int
	width   int
	newline bool
}

// cellIter walks the cells of a sequence. The width of hidden cells is
// reported as zero
type cellIter struct {
	seq    Sequence
	method WidthMethod
	pos    int
	// rest and state carry the grapheme segmentation for the Unicode
	// methods
	rest  string
	state int
	// pendingNewline is set after the \r of a \r\n cluster was returned
	pendingNewline bool
}

func (m WidthMethod) iter(seq Sequence) *cellIter {
	it := &cellIter{
		seq:    seq,
		method: m,
		state:  -1,
	}
	if m != Wcwidth {
		it.rest = seq.String()
	}
	return it
}

func (it *cellIter) next() (cell, bool) {
	if it.pos >= it.seq.Len() {
		return cell{}, false
	}
	var c cell
	switch {
	case it.method == Wcwidth:
		r := it.seq.RuneAt(it.pos)
		c = cell{
			start:   it.pos,
			end:     it.pos + 1,
			width:   runeWidth(r),
			newline: r == '\n',
		}
	case it.pendingNewline:
		it.pendingNewline = false
		c = cell{
			start:   it.pos,
			end:     it.pos + 1,
			newline: true,
		}
	default:
		var (
			cluster string
			width   int
		)
		cluster, it.rest, width, it.state = uniseg.FirstGraphemeClusterInString(it.rest, it.state)
		if cluster == "\r\n" {
			// newlines end lines on their own
			it.pendingNewline = true
			c = cell{
				start: it.pos,
				end:   it.pos + 1,
			}
			break
		}
		if it.method == NoZWJ {
			width = NoZWJ.StringWidth(cluster)
		}
		c = cell{
			start:   it.pos,
			end:     it.pos + utf8.RuneCountInString(cluster),
			width:   width,
			newline: cluster == "\n",
		}
	}
	if c.width > 0 && it.seq.StyleAt(c.start).IsHidden() {
		c.width = 0
	}
	it.pos = c.end
	return c, true
}
