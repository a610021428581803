// Package richtext implements the styled-rich-text painter: text with
// inline style-switch markup, clipped to a cell width, painted through
// a surface.Window. The markup grammar is single-level (<name>, <>,
// </>) and resolves style names through a caller-supplied cascaded
// style_<name>_{normal,focus} attribute lookup.
package richtext

import (
	"github.com/mattn/go-runewidth"

	"github.com/chazu/stfl/style"
	"github.com/chazu/stfl/surface"
)

// StyleLookup resolves a named style, as the cascaded attribute
// style_<name>_focus (if focused is true) or style_<name>_normal
// (otherwise), starting from some widget. Returns ("", false) for an
// unknown name, which the painter treats as "no style change".
type StyleLookup func(name string) (desc string, ok bool)

// Paint paints text at (y, x) in win, clipped to width cells, honoring
// inline markup:
//
//	<>    emits a literal '<'
//	</>   restores base
//	<name> switches to the style named "name", resolved via lookup
//
// Paint returns the number of input runes consumed (not cells
// painted), so callers can measure source length even though cell
// advancement uses display width.
func Paint(win surface.Window, y, x, width int, text []rune, base style.Style, lookup StyleLookup) int {
	cur := base
	col := 0
	consumed := 0
	i := 0
	n := len(text)

	for i < n && col < width {
		if text[i] == '<' {
			tagEnd := indexByte(text, i+1, '>')
			if tagEnd < 0 {
				// Unterminated tag: nothing more to scan either way.
				break
			}
			name := string(text[i+1 : tagEnd])
			switch name {
			case "":
				if !putRune(win, y, x, &col, width, '<', cur) {
					return consumed
				}
			case "/":
				cur = base
			default:
				if desc, ok := lookup(name); ok {
					cur = style.Parse(desc)
				}
				// Unknown style name: leave the current style unchanged.
			}
			consumed += tagEnd - i + 1
			i = tagEnd + 1
			continue
		}

		ch := text[i]
		if !putRune(win, y, x, &col, width, ch, cur) {
			return consumed
		}
		consumed++
		i++
	}
	return consumed
}

// putRune paints one rune at the current column if it fits within the
// remaining width budget, advancing col by its display width. Returns
// false if the rune didn't fit, which terminates the paint: characters
// wider than the remaining budget stop the whole run rather than
// skipping ahead.
func putRune(win surface.Window, y, x int, col *int, width int, ch rune, st style.Style) bool {
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		w = 1
	}
	if *col+w > width {
		return false
	}
	win.PutChar(y, x+*col, ch, st)
	*col += w
	return true
}

func indexByte(s []rune, from int, b rune) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
