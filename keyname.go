package stfl

import (
	"strconv"
	"strings"

	"github.com/chazu/stfl/surface"
)

// KeyName translates a keystroke into its symbolic event name. The
// handful of named keys (ENTER, SPACE, TAB, ESC, BACKSPACE) are
// decided by rune value alone, and other printable runes name
// themselves; remaining control codes and all function keys fall back
// to the Surface's own keyname, which is where ultraviolet's key decoding
// supplies the terminal-specific vocabulary (arrow keys, Home/End,
// F-keys, ...).
func KeyName(ch rune, funcKey bool, kn surface.Surface) string {
	if !funcKey {
		switch ch {
		case '\r', '\n':
			return "ENTER"
		case ' ':
			return "SPACE"
		case '\t':
			return "TAB"
		case 0x1B:
			return "ESC"
		case 0x7F:
			return "BACKSPACE"
		}
		if ch < 32 {
			if kn != nil {
				if name := kn.KeyName(ch, false); name != "" {
					return name
				}
			}
			return "UNKNOWN"
		}
		return string(ch)
	}

	if kn == nil {
		return "UNKNOWN"
	}
	name := kn.KeyName(ch, true)
	if name == "" {
		return "UNKNOWN"
	}
	// Function keys F0-F63 get the uniform "F<n>" spelling regardless
	// of how the underlying library names them ("f3", "F3", "KEY_F3",
	// ...); anything else just has a leading "KEY_" stripped.
	if n, ok := parseFunctionKeyNumber(name); ok {
		return "F" + strconv.Itoa(n)
	}
	return stripKeyPrefix(name)
}

// parseFunctionKeyNumber recognizes a terminal keyname denoting an F-key
// (case-insensitively "f<n>", optionally prefixed "KEY_", n in 0..63)
// and returns its number.
func parseFunctionKeyNumber(name string) (int, bool) {
	s := stripKeyPrefix(name)
	if len(s) < 2 {
		return 0, false
	}
	if s[0] != 'f' && s[0] != 'F' {
		return 0, false
	}
	digits := s[1:]
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 63 {
		return 0, false
	}
	return n, true
}

// stripKeyPrefix removes a leading "KEY_" from a terminal library's
// keyname.
func stripKeyPrefix(name string) string {
	const prefix = "KEY_"
	if len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
		return name[len(prefix):]
	}
	return name
}
