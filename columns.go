package attrtext

import "fmt"

// DisplayWidth returns the number of columns seq takes on screen, measured
// with the Wcwidth method. Hidden characters take no room
func DisplayWidth(seq Sequence) int {
	return Wcwidth.DisplayWidth(seq)
}

// SliceColumns returns the characters of seq between the display columns
// start and end, measured with the Wcwidth method
func SliceColumns(seq Sequence, start int, end int) *String {
	return Wcwidth.SliceColumns(seq, start, end)
}

// SplitColumns breaks seq into lines at most maxColumns wide, measured with
// the Wcwidth method
func SplitColumns(seq Sequence, maxColumns int, includeNewlines bool, delayWrap bool) []*String {
	return Wcwidth.SplitColumns(seq, maxColumns, includeNewlines, delayWrap)
}

// DisplayWidth returns the number of columns seq takes on screen. Hidden
// characters take no room
func (m WidthMethod) DisplayWidth(seq Sequence) int {
	total := 0
	it := m.iter(seq)
	for c, ok := it.next(); ok; c, ok = it.next() {
		total += c.width
	}
	return total
}

// SliceColumns returns the characters of seq which fall in the display
// columns [start, end). A character is only included if it fits entirely
// before end, and the slice never extends past a newline
func (m WidthMethod) SliceColumns(seq Sequence, start int, end int) *String {
	if start < 0 || end < start {
		panic(fmt.Sprintf("attrtext: invalid column range [%d,%d)", start, end))
	}
	it := m.iter(seq)
	col := 0
	begin := seq.Len()
	c, ok := it.next()
	for ; ok; c, ok = it.next() {
		if col+c.width > start {
			begin = c.start
			break
		}
		col += c.width
	}
	stop := begin
	for ; ok; c, ok = it.next() {
		if c.newline || col+c.width > end {
			break
		}
		stop = c.end
		col += c.width
	}
	return seq.Slice(begin, stop)
}

// SplitColumns breaks seq into lines. A line ends at a newline, which is
// kept at the end of the line if includeNewlines is set, or before the
// character which would make it wider than maxColumns. A character wider
// than maxColumns at the start of a line ends an empty line. The last line
// holds whatever follows the last break and may be empty.
//
// delayWrap is reserved for terminals which delay wrapping until the
// character after the last column is written. It currently has no effect
func (m WidthMethod) SplitColumns(seq Sequence, maxColumns int, includeNewlines bool, delayWrap bool) []*String {
	if maxColumns <= 0 {
		panic(fmt.Sprintf("attrtext: maxColumns must be positive, got %d", maxColumns))
	}
	lines := []*String{}
	begin := 0
	col := 0
	it := m.iter(seq)
	for c, ok := it.next(); ok; c, ok = it.next() {
		switch {
		case c.newline:
			end := c.start
			if includeNewlines {
				end = c.end
			}
			lines = append(lines, seq.Slice(begin, end))
			begin = c.end
			col = 0
		case col+c.width > maxColumns:
			lines = append(lines, seq.Slice(begin, c.start))
			begin = c.start
			col = c.width
		default:
			col += c.width
		}
	}
	return append(lines, seq.Slice(begin, seq.Len()))
}
