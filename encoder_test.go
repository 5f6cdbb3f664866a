package attrtext

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	red := NewStyle(IndexColor(1), 0, 0)
	boldRed := red.WithAttributes(AttrBold)
	tests := []struct {
		name     string
		input    *String
		opts     EncodeOptions
		expected string
	}{
		{
			name:     "default style",
			input:    NewString("abc", DefaultStyle),
			expected: "abc",
		},
		{
			name:     "single run",
			input:    NewString("abc", red),
			expected: "\x1b[31mabc\x1b[0m",
		},
		{
			name: "back to default",
			input: Styled(
				Segment{"a", red},
				Segment{"b", DefaultStyle},
			),
			expected: "\x1b[31ma\x1b[0mb",
		},
		{
			name: "parameter order",
			input: NewString("x", NewStyle(
				IndexColor(2),
				IndexColor(4),
				AttrItalic|AttrUnderline|AttrBold|AttrFaint,
			)),
			expected: "\x1b[3;4;32;44;1;2mx\x1b[0m",
		},
		{
			name: "attribute resets",
			input: Styled(
				Segment{"a", NewStyle(0, 0, AttrItalic|AttrUnderline|AttrBlink|AttrInverse|AttrConceal|AttrCrossedOut)},
				Segment{"b", NewStyle(0, 0, AttrBold)},
			),
			expected: "\x1b[3;4;5;7;8;9ma\x1b[23;24;25;27;28;29;1mb\x1b[0m",
		},
		{
			name: "foreground reset",
			input: Styled(
				Segment{"a", boldRed},
				Segment{"b", NewStyle(0, 0, AttrBold)},
			),
			expected: "\x1b[31;1ma\x1b[39mb\x1b[0m",
		},
		{
			name: "background colors",
			input: Styled(
				Segment{"a", NewStyle(0, IndexColor(3), 0)},
				Segment{"b", NewStyle(0, IndexColor(9), 0)},
				Segment{"c", NewStyle(0, IndexColor(100), 0)},
				Segment{"d", NewStyle(0, 0, AttrItalic)},
			),
			expected: "\x1b[43ma\x1b[101mb\x1b[48;5;100mc\x1b[3;49md\x1b[0m",
		},
		{
			name: "bold off drops to normal intensity",
			input: Styled(
				Segment{"a", NewStyle(0, 0, AttrBold|AttrFaint)},
				Segment{"b", NewStyle(0, 0, AttrFaint)},
			),
			expected: "\x1b[1;2ma\x1b[22mb\x1b[0m",
		},
		{
			name: "bold off and faint on",
			input: Styled(
				Segment{"a", NewStyle(0, 0, AttrBold)},
				Segment{"b", NewStyle(0, 0, AttrFaint)},
			),
			expected: "\x1b[1ma\x1b[22;2mb\x1b[0m",
		},
		{
			name: "faint on keeps bold",
			input: Styled(
				Segment{"a", NewStyle(0, 0, AttrBold)},
				Segment{"b", NewStyle(0, 0, AttrBold|AttrFaint)},
			),
			expected: "\x1b[1ma\x1b[2mb\x1b[0m",
		},
		{
			name: "bright foreground sets bold again",
			input: Styled(
				Segment{"a", boldRed},
				Segment{"b", NewStyle(IndexColor(9), 0, AttrBold)},
			),
			expected: "\x1b[31;1ma\x1b[91;1mb\x1b[0m",
		},
		{
			name: "bright background leaves bold alone",
			input: Styled(
				Segment{"a", boldRed},
				Segment{"b", boldRed.WithBackground(IndexColor(9))},
			),
			expected: "\x1b[31;1ma\x1b[101mb\x1b[0m",
		},
		{
			name: "hidden is not written",
			input: Styled(
				Segment{"a", red},
				Segment{"b", red.WithAttributes(AttrHidden)},
				Segment{"c", NewStyle(0, 0, AttrHidden)},
			),
			expected: "\x1b[31mab\x1b[0mc",
		},
		{
			name:     "rgb on a 256 color terminal",
			input:    NewString("x", NewStyle(RGBColor(10, 20, 30), 0, 0)),
			opts:     EncodeOptions{ColorDepth: 256},
			expected: "\x1b[38;5;233mx\x1b[0m",
		},
		{
			name:     "rgb on a truecolor terminal",
			input:    NewString("x", NewStyle(RGBColor(10, 20, 30), RGBColor(1, 2, 3), 0)),
			opts:     EncodeOptions{ColorDepth: TrueColors},
			expected: "\x1b[38;2;10;20;30;48;2;1;2;3mx\x1b[0m",
		},
		{
			name:     "rgb on an 8 color terminal",
			input:    NewString("x", NewStyle(RGBColor(255, 0, 0), 0, 0)),
			opts:     EncodeOptions{ColorDepth: 8},
			expected: "\x1b[31mx\x1b[0m",
		},
		{
			name:     "rgb on a 16 color terminal",
			input:    NewString("x", NewStyle(RGBColor(255, 0, 0), 0, 0)),
			opts:     EncodeOptions{ColorDepth: 16},
			expected: "\x1b[91mx\x1b[0m",
		},
		{
			name:     "index on a 16 color terminal",
			input:    NewString("x", NewStyle(IndexColor(196), 0, 0)),
			opts:     EncodeOptions{ColorDepth: 16},
			expected: "\x1b[91mx\x1b[0m",
		},
		{
			name:     "force 256 colors",
			input:    NewString("x", red),
			opts:     EncodeOptions{ColorDepth: 8, Force: Force256Colors},
			expected: "\x1b[38;5;1mx\x1b[0m",
		},
		{
			name:     "force truecolor",
			input:    NewString("x", red),
			opts:     EncodeOptions{ColorDepth: TrueColors, Force: ForceTrueColors},
			expected: "\x1b[38;2;128;0;0mx\x1b[0m",
		},
		{
			name:     "force truecolor needs a truecolor terminal",
			input:    NewString("x", red),
			opts:     EncodeOptions{ColorDepth: 256, Force: ForceTrueColors},
			expected: "\x1b[31mx\x1b[0m",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Encode(test.input, test.opts))
		})
	}
}

func TestEncodeCustomPalette(t *testing.T) {
	palette, err := ParsePalette("#000000 #ff0000 #00ff00")
	assert.NoError(t, err)
	seq := NewString("x", NewStyle(RGBColor(250, 10, 10), 0, 0))
	assert.Equal(t, "\x1b[31mx\x1b[0m", Encode(seq, EncodeOptions{Palette: palette}))

	seq = NewString("x", NewStyle(IndexColor(2), 0, 0))
	assert.Equal(t,
		"\x1b[38;2;0;255;0mx\x1b[0m",
		Encode(seq, EncodeOptions{
			ColorDepth: TrueColors,
			Force:      ForceTrueColors,
			Palette:    palette,
		}),
	)
}

func TestEncodeAltCharset(t *testing.T) {
	const (
		enter = "\x1b(0"
		exit  = "\x1b(B"
	)
	opts := EncodeOptions{
		AltCharsetEnter: enter,
		AltCharsetExit:  exit,
	}
	tests := []struct {
		name     string
		input    *String
		opts     EncodeOptions
		expected string
	}{
		{
			name:     "box",
			input:    NewString("a┌─┐b", DefaultStyle),
			opts:     opts,
			expected: "a" + enter + "lqk" + exit + "b",
		},
		{
			name:     "every character",
			input:    NewString("┘┐┌└┼─├┤┴┬│", DefaultStyle),
			opts:     opts,
			expected: enter + "jklmnqtuvwx" + exit,
		},
		{
			name:     "styled",
			input:    NewString("─", NewStyle(IndexColor(1), 0, 0)),
			opts:     opts,
			expected: enter + "\x1b[31mq" + exit + "\x1b[0m",
		},
		{
			name:     "only enter",
			input:    NewString("─", DefaultStyle),
			opts:     EncodeOptions{AltCharsetEnter: enter},
			expected: "─",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Encode(test.input, test.opts))
		})
	}
}

func TestEncodeRuns(t *testing.T) {
	styles := []Style{
		NewStyle(IndexColor(1), 0, AttrBold),
		NewStyle(IndexColor(9), IndexColor(4), 0),
		DefaultStyle,
		NewStyle(RGBColor(1, 200, 30), 0, AttrUnderline|AttrFaint),
		NewStyle(0, 0, AttrHidden),
		NewStyle(IndexColor(200), 0, AttrItalic),
	}
	b := NewBuilder()
	for i := 0; i < 40; i += 1 {
		b.AppendStyled(strings.Repeat("x", i%3+1), styles[(i*7)%len(styles)])
	}
	seq := b.ToString()
	runs := 0
	for i := 0; i < seq.Len(); i = RunLimit(seq, i) {
		runs += 1
	}
	for _, depth := range []int{8, 16, 256, TrueColors} {
		out := Encode(seq, EncodeOptions{ColorDepth: depth})
		// one sequence per run at most, plus the final reset
		assert.LessOrEqual(t, strings.Count(out, "\x1b["), runs+1)
		assert.Equal(t, seq.String(), ansi.Strip(out))
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	seq := Styled(
		Segment{"plain ", DefaultStyle},
		Segment{"bold", NewStyle(0, 0, AttrBold)},
		Segment{"red", NewStyle(IndexColor(1), 0, AttrBold)},
		Segment{"bright", NewStyle(IndexColor(12), IndexColor(3), AttrItalic)},
		Segment{"cube", NewStyle(IndexColor(200), IndexColor(150), AttrUnderline|AttrFaint)},
		Segment{"rgb", NewStyle(RGBColor(1, 2, 3), RGBColor(4, 5, 6), AttrInverse|AttrConceal)},
		Segment{"strike", NewStyle(0, RGBColor(4, 5, 6), AttrCrossedOut|AttrBlink)},
		Segment{" end", DefaultStyle},
	)
	out := Encode(seq, EncodeOptions{ColorDepth: TrueColors})
	decoded := NewBuilder().AppendANSI(out).ToString()
	assert.True(t, seq.Equal(decoded), "decoded %q", out)
}
