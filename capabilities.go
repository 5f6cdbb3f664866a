package attrtext

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// Terminal types with special handling
const (
	TypeDumb            = "dumb"
	TypeWindows256Color = "windows-256color"
	TypeWindowsConEmu   = "windows-conemu"
	TypeWindowsVTP      = "windows-vtp"
)

// Capabilities is a snapshot of what a terminal can render. The zero value
// describes a 256 color terminal without an alternate character set
type Capabilities struct {
	// Type is the terminal type, usually the value of $TERM
	Type string
	// MaxColors is the color depth of the terminal. Zero means 256
	MaxColors int
	// AltCharsetEnter and AltCharsetExit are the resolved enter and exit
	// sequences of the alternate character set, empty if the terminal has
	// none
	AltCharsetEnter string
	AltCharsetExit  string
	// Palette is the terminal palette. Nil means DefaultPalette
	Palette *Palette
	// Width is the width method matching how the terminal lays out
	// graphemes
	Width WidthMethod
}

// IsDumb reports whether the terminal understands no escape sequences at
// all
func (c Capabilities) IsDumb() bool {
	return c.Type == TypeDumb
}

// EncodeOptions returns the options to encode text for the terminal
func (c Capabilities) EncodeOptions() EncodeOptions {
	opts := EncodeOptions{
		ColorDepth: c.MaxColors,
		Palette:    c.Palette,
	}
	if opts.ColorDepth <= 0 {
		opts.ColorDepth = defaultColors
	}
	switch c.Type {
	case TypeWindows256Color, TypeWindowsConEmu, TypeWindowsVTP:
		// Windows consoles report fewer colors than they render
		opts.Force = Force256Colors
	}
	settings := loadEnv()
	switch {
	case settings.forceTrueColor:
		opts.ColorDepth = TrueColors
		opts.Force = ForceTrueColors
	case settings.force256:
		opts.Force = Force256Colors
	}
	if !settings.disableAltCharset {
		opts.AltCharsetEnter = c.AltCharsetEnter
		opts.AltCharsetExit = c.AltCharsetExit
	}
	return opts
}

// ToANSI encodes seq for the terminal. Dumb terminals get the plain text
func ToANSI(seq Sequence, caps Capabilities) string {
	if caps.IsDumb() {
		return seq.String()
	}
	return Encode(seq, caps.EncodeOptions())
}

// Fprint writes seq encoded for the terminal to w
func Fprint(w io.Writer, seq Sequence, caps Capabilities) (int, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	encodeFor(buf, seq, caps)
	return w.Write(buf.Bytes())
}

// Fprintln is Fprint followed by a newline
func Fprintln(w io.Writer, seq Sequence, caps Capabilities) (int, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	encodeFor(buf, seq, caps)
	buf.WriteByte('\n')
	return w.Write(buf.Bytes())
}

func encodeFor(buf *bytes.Buffer, seq Sequence, caps Capabilities) {
	if caps.IsDumb() {
		buf.WriteString(seq.String())
		return
	}
	e := newEncoder(caps.EncodeOptions())
	e.encode(buf, seq)
	e.finish(buf)
}

// Environment variables read once per process
const (
	EnvDisableAltCharset = "ATTRTEXT_DISABLE_ALT_CHARSET"
	EnvForceTrueColor    = "ATTRTEXT_FORCE_TRUECOLOR"
	EnvForce256          = "ATTRTEXT_FORCE_256"
)

type envSettings struct {
	disableAltCharset bool
	forceTrueColor    bool
	force256          bool
}

var (
	envOnce sync.Once
	env     envSettings
)

func loadEnv() envSettings {
	envOnce.Do(func() {
		env = envSettings{
			disableAltCharset: os.Getenv(EnvDisableAltCharset) != "",
			forceTrueColor:    os.Getenv(EnvForceTrueColor) != "",
			force256:          os.Getenv(EnvForce256) != "",
		}
	})
	return env
}

// AltCharsetDisabled reports whether alternate character set substitution
// was disabled for this process with ATTRTEXT_DISABLE_ALT_CHARSET
func AltCharsetDisabled() bool {
	return loadEnv().disableAltCharset
}
