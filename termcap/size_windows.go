//go:build windows
// +build windows

package termcap

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// Size returns the size of the terminal attached to f
func Size(f *os.File) (cols int, rows int, err error) {
	return term.GetSize(int(f.Fd()))
}

// vtConsole reports whether f is a console with virtual terminal processing
// enabled
func vtConsole(f *os.File) bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(f.Fd()), &mode)
	if err != nil {
		return false
	}
	return mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0
}
