// Package termcap discovers the capabilities of the terminal attrtext
// output is written to
package termcap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/xo/terminfo"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/attrtext"
)

// ErrNoTerminfo is returned when no terminfo entry could be found for the
// terminal
var ErrNoTerminfo = errors.New("termcap: no terminfo entry")

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger sets the logger detection diagnostics are written to. A nil
// logger discards them
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = l
}

type Options struct {
	// Term is the terminal type. Defaults to $TERM
	Term string
	// Output is the file the terminal is attached to. Defaults to
	// os.Stdout
	Output *os.File
	// Palette is placed in the returned Capabilities
	Palette *attrtext.Palette
}

// Detect builds a Capabilities snapshot for the terminal. The color depth is
// the larger of the terminfo "colors" capability and the color profile the
// environment advertises (COLORTERM and friends). NO_COLOR makes the terminal
// dumb. The width method is picked from the terminal type and the
// ATTRTEXT_FORCE_WCWIDTH, ATTRTEXT_FORCE_UNICODE and ATTRTEXT_FORCE_NOZWJ
// variables.
//
// Detect always returns usable Capabilities. When no terminfo entry is found
// the error wraps ErrNoTerminfo and the capabilities fall back to the
// environment alone
func Detect(opts Options) (attrtext.Capabilities, error) {
	name := opts.Term
	if name == "" {
		name = os.Getenv("TERM")
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	caps := attrtext.Capabilities{
		Type:    name,
		Palette: opts.Palette,
	}
	applyQuirks(&caps)
	if name == "" && vtConsole(out) {
		log.Debug("windows console with virtual terminal processing")
		caps.Type = attrtext.TypeWindowsVTP
		caps.MaxColors = 256
		return caps, nil
	}
	if name == "" || name == attrtext.TypeDumb {
		caps.Type = attrtext.TypeDumb
		return caps, nil
	}
	if termenv.EnvNoColor() {
		log.Debug("NO_COLOR set, disabling styles")
		caps.Type = attrtext.TypeDumb
		return caps, nil
	}

	profile := termenv.NewOutput(out, termenv.WithUnsafe()).EnvColorProfile()
	caps.MaxColors = profileColors(profile)
	log.Debug("environment color profile", "profile", profileName(profile), "colors", caps.MaxColors)

	ti, err := Load(name)
	if err != nil {
		log.Warn("no terminfo entry", "term", name, "error", err)
		return caps, err
	}
	if n, ok := ti.Numerics["colors"]; ok && n > caps.MaxColors {
		caps.MaxColors = n
	}
	caps.AltCharsetEnter = stripPadding(ti.Strings["smacs"])
	caps.AltCharsetExit = stripPadding(ti.Strings["rmacs"])
	log.Debug("terminal capabilities",
		"term", name,
		"colors", caps.MaxColors,
		"altcharset", caps.AltCharsetEnter != "" && caps.AltCharsetExit != "",
	)
	return caps, nil
}

// Load reads the terminfo entry for name. The compiled terminfo database is
// searched first, infocmp(1) is used as a fallback
func Load(name string) (*Terminfo, error) {
	ti, err := terminfo.Load(name)
	if err == nil {
		return fromDatabase(ti), nil
	}
	log.Debug("terminfo database lookup failed, trying infocmp", "term", name, "error", err)
	entry, ierr := infocmp(name)
	if ierr != nil {
		return nil, fmt.Errorf("%w for %q: %v", ErrNoTerminfo, name, ierr)
	}
	return entry, nil
}

// fromDatabase copies the capabilities attrtext uses out of a compiled
// terminfo entry
func fromDatabase(ti *terminfo.Terminfo) *Terminfo {
	entry := newTerminfo()
	entry.Names = ti.Names
	if n := ti.Num(terminfo.MaxColors); n >= 0 {
		entry.Numerics["colors"] = n
	}
	if s, ok := ti.Strings[terminfo.EnterAltCharsetMode]; ok {
		entry.Strings["smacs"] = string(s)
	}
	if s, ok := ti.Strings[terminfo.ExitAltCharsetMode]; ok {
		entry.Strings["rmacs"] = string(s)
	}
	return entry
}

func profileColors(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return attrtext.TrueColors
	case termenv.ANSI256:
		return 256
	case termenv.ANSI:
		return 16
	}
	return 0
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	}
	return "ascii"
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
