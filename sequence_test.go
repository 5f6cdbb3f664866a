package attrtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	red := NewStyle(IndexColor(1), 0, 0)
	s := Styled(
		Segment{"ab", DefaultStyle},
		Segment{"日本", red},
		Segment{"", NewStyle(0, 0, AttrBold)},
	)
	require.Equal(t, 4, s.Len())
	assert.Equal(t, "ab日本", s.String())
	assert.Equal(t, '日', s.RuneAt(2))
	assert.Equal(t, red, s.StyleAt(3))
	assert.True(t, Contains(s, '本'))
	assert.False(t, Contains(s, 'c'))

	assert.Panics(t, func() { s.RuneAt(4) })
	assert.Panics(t, func() { s.StyleAt(-1) })
	assert.Panics(t, func() { s.Slice(3, 5) })
	assert.Panics(t, func() { s.Slice(2, 1) })
}

func TestStringSlice(t *testing.T) {
	s := NewString("abcdef", DefaultStyle)
	sub := s.Slice(1, 5)
	assert.Equal(t, "bcde", sub.String())
	assert.Same(t, &s.runes[1], &sub.runes[sub.offset])

	subsub := sub.Slice(1, 3)
	assert.Equal(t, "cd", subsub.String())
	assert.Equal(t, 'c', subsub.RuneAt(0))
	assert.Panics(t, func() { subsub.RuneAt(2) })
	assert.Equal(t, "", sub.Slice(4, 4).String())

	assert.True(t, subsub.Equal(NewString("cd", DefaultStyle)))
	assert.False(t, subsub.Equal(NewString("cd", NewStyle(0, 0, AttrBold))))
	assert.False(t, subsub.Equal(NewString("cde", DefaultStyle)))
}

func TestBuilder(t *testing.T) {
	bold := NewStyle(0, 0, AttrBold)
	b := NewBuilder()
	b.Append("a").
		SetStyle(bold).
		Append("b").
		AppendRune('c').
		AppendStyled("d", DefaultStyle).
		AppendSequence(NewString("e", NewStyle(0, 0, AttrItalic)))
	require.Equal(t, 5, b.Len())
	assert.Equal(t, "abcde", b.String())
	assert.Equal(t, bold, b.Style())
	assert.Equal(t, []Style{DefaultStyle, bold, bold, DefaultStyle, NewStyle(0, 0, AttrItalic)},
		[]Style{b.StyleAt(0), b.StyleAt(1), b.StyleAt(2), b.StyleAt(3), b.StyleAt(4)})

	snapshot := b.ToString()
	slice := b.Slice(1, 3)
	b.Append("f")
	b.runes[1] = 'x'
	assert.Equal(t, "abcde", snapshot.String())
	assert.Equal(t, "bc", slice.String())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, DefaultStyle, b.Style())

	var zero Builder
	zero.Append("ok")
	assert.Equal(t, "ok", zero.String())
}

func TestAppendANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *String
	}{
		{
			name:     "plain",
			input:    "abc",
			expected: NewString("abc", DefaultStyle),
		},
		{
			name:  "basic",
			input: "\x1b[1;31mred\x1b[0m plain",
			expected: Styled(
				Segment{"red", NewStyle(IndexColor(1), 0, AttrBold)},
				Segment{" plain", DefaultStyle},
			),
		},
		{
			name:  "empty reset",
			input: "\x1b[4mu\x1b[mx",
			expected: Styled(
				Segment{"u", NewStyle(0, 0, AttrUnderline)},
				Segment{"x", DefaultStyle},
			),
		},
		{
			name:     "bright",
			input:    "\x1b[94;103mx",
			expected: NewString("x", NewStyle(IndexColor(12), IndexColor(11), 0)),
		},
		{
			name:     "256 colors",
			input:    "\x1b[38;5;200;48;5;17mx",
			expected: NewString("x", NewStyle(IndexColor(200), IndexColor(17), 0)),
		},
		{
			name:     "rgb",
			input:    "\x1b[38;2;1;2;3;1mx",
			expected: NewString("x", NewStyle(RGBColor(1, 2, 3), 0, AttrBold)),
		},
		{
			name:     "colon rgb",
			input:    "\x1b[38:2::1:2:3;48:5:4mx",
			expected: NewString("x", NewStyle(RGBColor(1, 2, 3), IndexColor(4), 0)),
		},
		{
			name:     "underline color is ignored",
			input:    "\x1b[58;5;3;3mx",
			expected: NewString("x", NewStyle(0, 0, AttrItalic)),
		},
		{
			name:  "resets",
			input: "\x1b[1;2;3;31;42ma\x1b[22;23;39mb\x1b[49mc",
			expected: Styled(
				Segment{"a", NewStyle(IndexColor(1), IndexColor(2), AttrBold|AttrFaint|AttrItalic)},
				Segment{"b", NewStyle(0, IndexColor(2), 0)},
				Segment{"c", DefaultStyle},
			),
		},
		{
			name:     "other sequences are dropped",
			input:    "a\x1b[2K\x1b]0;title\x07\x1b]8;;http://example.com\x1b\\b\x1b(0q\x1b(Bc\x1b7",
			expected: NewString("abqc", DefaultStyle),
		},
		{
			name:     "unterminated",
			input:    "a\x1b[31",
			expected: NewString("a", DefaultStyle),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NewBuilder().AppendANSI(test.input).ToString()
			assert.Equal(t, test.expected.String(), got.String())
			assert.True(t, test.expected.Equal(got))
		})
	}

	t.Run("style carries over", func(t *testing.T) {
		b := NewBuilder()
		b.AppendANSI("\x1b[3ma")
		b.AppendANSI("b")
		assert.Equal(t, NewStyle(0, 0, AttrItalic), b.StyleAt(1))
		assert.Equal(t, NewStyle(0, 0, AttrItalic), b.Style())
	})
}

func TestRuns(t *testing.T) {
	a := NewStyle(0, 0, AttrBold)
	b := NewStyle(IndexColor(1), 0, 0)
	seq := Styled(
		Segment{"AA", a},
		Segment{"BBB", b},
		Segment{"A", a},
	)
	tests := []struct {
		index int
		start int
		limit int
	}{
		{0, 0, 2},
		{1, 0, 2},
		{2, 2, 5},
		{3, 2, 5},
		{4, 2, 5},
		{5, 5, 6},
	}
	for _, test := range tests {
		assert.Equal(t, test.start, RunStart(seq, test.index), "start of %d", test.index)
		assert.Equal(t, test.limit, RunLimit(seq, test.index), "limit of %d", test.index)
	}
	assert.Panics(t, func() { RunStart(seq, 6) })
	assert.Panics(t, func() { RunLimit(seq, -1) })

	// runs of a slice stop at its bounds
	sub := seq.Slice(3, 6)
	assert.Equal(t, 0, RunStart(sub, 1))
	assert.Equal(t, 2, RunLimit(sub, 0))
}
