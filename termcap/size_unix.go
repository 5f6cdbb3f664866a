//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris zos

package termcap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Size returns the size of the terminal attached to f
func Size(f *os.File) (cols int, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// vtConsole is only meaningful on windows
func vtConsole(f *os.File) bool {
	return false
}
