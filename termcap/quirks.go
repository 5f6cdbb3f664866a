package termcap

import (
	"os"
	"strings"

	"git.sr.ht/~rockorager/attrtext"
)

// Environment variables overriding the detected width method
const (
	EnvForceWcwidth = "ATTRTEXT_FORCE_WCWIDTH"
	EnvForceUnicode = "ATTRTEXT_FORCE_UNICODE"
	EnvForceNoZWJ   = "ATTRTEXT_FORCE_NOZWJ"
)

// applyQuirks sets the width method of terminals known to lay out graphemes
// differently from wcwidth
func applyQuirks(caps *attrtext.Capabilities) {
	switch {
	case strings.HasPrefix(caps.Type, "xterm-kitty"):
		log.Debug("kitty identified. applying quirks")
		caps.Width = attrtext.NoZWJ
	case strings.HasPrefix(caps.Type, "foot"),
		strings.HasPrefix(caps.Type, "wezterm"),
		strings.HasPrefix(caps.Type, "xterm-ghostty"):
		caps.Width = attrtext.Unicode
	case os.Getenv("TERM_PROGRAM") == "tmux" && os.Getenv("TERM_PROGRAM_VERSION") == "3.4":
		// tmux 3.4 has unicode support, but doesn't advertise it
		caps.Width = attrtext.Unicode
	}

	switch {
	case os.Getenv(EnvForceWcwidth) != "":
		caps.Width = attrtext.Wcwidth
	case os.Getenv(EnvForceUnicode) != "":
		caps.Width = attrtext.Unicode
	case os.Getenv(EnvForceNoZWJ) != "":
		caps.Width = attrtext.NoZWJ
	}
}
