package termcap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xtermEntry = `#	Reconstructed via infocmp from file: /usr/share/terminfo/x/xterm
xterm|xterm terminal emulator (X Window System),
	am,
	bce,
	colors#8,
	pairs#0x40,
	bel=^G,
	flash=\E[?5h$<100/>\E[?5l,
	rmacs=\E(B,
	smacs=\E(0,
	sgr0=\E(B\E[m,
`

func TestParseInfocmp(t *testing.T) {
	ti, err := ParseInfocmp(strings.NewReader(xtermEntry))
	require.NoError(t, err)
	assert.Equal(t, []string{"xterm", "xterm terminal emulator (X Window System)"}, ti.Names)
	assert.True(t, ti.Bools["am"])
	assert.True(t, ti.Bools["bce"])
	assert.Equal(t, 8, ti.Numerics["colors"])
	assert.Equal(t, 64, ti.Numerics["pairs"])
	assert.Equal(t, "\x07", ti.Strings["bel"])
	assert.Equal(t, "\x1b(0", ti.Strings["smacs"])
	assert.Equal(t, "\x1b(B", ti.Strings["rmacs"])
	assert.Equal(t, "\x1b(B\x1b[m", ti.Strings["sgr0"])
	assert.Equal(t, "\x1b[?5h\x1b[?5l", stripPadding(ti.Strings["flash"]))

	_, err = ParseInfocmp(strings.NewReader("# nothing here\n"))
	assert.Error(t, err)

	_, err = ParseInfocmp(strings.NewReader("bad|entry,\n\tcolors#lots,\n"))
	assert.Error(t, err)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`\E[m`, "\x1b[m"},
		{`\e[m`, "\x1b[m"},
		{`^G`, "\x07"},
		{`^[`, "\x1b"},
		{`\054`, ","},
		{`\0`, "\x00"},
		{`a\sb`, "a b"},
		{`\r\n\t\b\f`, "\r\n\t\b\f"},
		{`\l`, "\n"},
		{`\^\\`, "^\\"},
		{`plain`, "plain"},
		{`\18`, "18"},
		{`trailing\`, "trailing\\"},
		{`^`, "^"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, unescape(test.input), test.input)
	}
}

func TestStripPadding(t *testing.T) {
	assert.Equal(t, "\x1b[H", stripPadding("\x1b[H$<5>"))
	assert.Equal(t, "ab", stripPadding("a$<2*/>b"))
	assert.Equal(t, "a$<2", stripPadding("a$<2"))
	assert.Equal(t, "", stripPadding(""))
}
