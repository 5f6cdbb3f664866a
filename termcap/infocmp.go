package termcap

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Terminfo holds the capabilities of a terminfo entry, keyed by their short
// names ("colors", "smacs", ...)
type Terminfo struct {
	Names    []string
	Bools    map[string]bool
	Numerics map[string]int
	Strings  map[string]string
}

func newTerminfo() *Terminfo {
	return &Terminfo{
		Bools:    make(map[string]bool),
		Numerics: make(map[string]int),
		Strings:  make(map[string]string),
	}
}

// infocmp reads the entry for name with the infocmp(1) command
func infocmp(name string) (*Terminfo, error) {
	cmd := exec.Command("infocmp", "-1", "-x", name)
	r, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	err = cmd.Start()
	if err != nil {
		return nil, err
	}
	ti, err := ParseInfocmp(r)
	if err != nil {
		_ = cmd.Wait()
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("infocmp %s: %w", name, err)
	}
	return ti, nil
}

// ParseInfocmp parses the output of "infocmp -1 -x"
func ParseInfocmp(r io.Reader) (*Terminfo, error) {
	scanner := bufio.NewScanner(r)
	ti := newTerminfo()
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), ",")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "\t"):
			line = strings.TrimSpace(line)
			if key, val, found := strings.Cut(line, "#"); found {
				// int
				i, err := strconv.ParseUint(val, 0, 0)
				if err != nil {
					return nil, fmt.Errorf("capability %s: %w", key, err)
				}
				ti.Numerics[key] = int(i)
				continue
			}
			if key, val, found := strings.Cut(line, "="); found {
				// string
				ti.Strings[key] = unescape(val)
				continue
			}
			ti.Bools[line] = true
		default:
			ti.Names = strings.Split(line, "|")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ti.Names) == 0 {
		return nil, fmt.Errorf("no terminfo entry in input")
	}
	return ti, nil
}

// capEscapes maps the character after a backslash in a string capability
// to the byte it stands for
var capEscapes = map[byte]byte{
	'E': 0x1b,
	'e': 0x1b,
	'n': '\n',
	'l': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'f': '\f',
	's': ' ',
}

// unescape decodes a string capability as infocmp prints it: ^X is a
// control character, \NNN an octal byte and \0 a NUL. Any other escaped
// character stands for itself
func unescape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i+1 == len(s) || (c != '\\' && c != '^') {
			sb.WriteByte(c)
			continue
		}
		i++
		next := s[i]
		if c == '^' {
			sb.WriteByte(next ^ 0x40)
			continue
		}
		if b, ok := capEscapes[next]; ok {
			sb.WriteByte(b)
			continue
		}
		if b, ok := octal(s[i:]); ok {
			sb.WriteByte(b)
			i += 2
			continue
		}
		if next == '0' {
			sb.WriteByte(0)
			continue
		}
		sb.WriteByte(next)
	}
	return sb.String()
}

// octal decodes the three digit octal number at the start of s
func octal(s string) (byte, bool) {
	if len(s) < 3 {
		return 0, false
	}
	var v byte
	for _, d := range []byte(s[:3]) {
		if d < '0' || d > '7' {
			return 0, false
		}
		v = v<<3 | (d - '0')
	}
	return v, true
}

// stripPadding removes $<n> delay specifications, which only matter to
// hardware terminals
func stripPadding(s string) string {
	for {
		i := strings.Index(s, "$<")
		if i < 0 {
			return s
		}
		j := strings.IndexByte(s[i:], '>')
		if j < 0 {
			return s
		}
		s = s[:i] + s[i+j+1:]
	}
}
