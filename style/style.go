// Package style parses the style descriptor strings resolved through
// stfl's cascading attribute lookup (style_<name>_normal, style_<name>_focus,
// and the widgets' style_normal/style_focus keys) into a renderable cell style.
package style

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal cell color. The zero value means "inherit from
// the terminal's default", matching ncurses COLOR_PAIR(0) semantics.
type Color struct {
	r, g, b uint8
	set     bool
}

// RGB builds a Color from 0-255 components.
func RGB(r, g, b uint8) Color { return Color{r: r, g: g, b: b, set: true} }

// IsSet reports whether the color was ever assigned.
func (c Color) IsSet() bool { return c.set }

// RGB255 returns the 0-255 components.
func (c Color) RGB255() (r, g, b uint8) { return c.r, c.g, c.b }

var named = map[string]Color{
	"black":   RGB(0, 0, 0),
	"red":     RGB(170, 0, 0),
	"green":   RGB(0, 170, 0),
	"yellow":  RGB(170, 85, 0),
	"blue":    RGB(0, 0, 170),
	"magenta": RGB(170, 0, 170),
	"cyan":    RGB(0, 170, 170),
	"white":   RGB(170, 170, 170),
	"default": {},
}

// ParseColor accepts a named ANSI color ("red", "blue", ...) or a hex
// literal ("#rrggbb", "rrggbb"), matching the vocabulary stfl style
// strings have historically used for fg=/bg=.
func ParseColor(s string) Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}
	}
	if c, ok := named[s]; ok {
		return c
	}
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if col, err := colorful.Hex(hex); err == nil {
		r, g, b := col.RGB255()
		return RGB(r, g, b)
	}
	return Color{}
}

// Attrs are boolean terminal rendering attributes, orthogonal to color.
type Attrs struct {
	Bold      bool
	Underline bool
	Reverse   bool
	Blink     bool
	Dim       bool
}

// Style is the fully resolved rendering style for a cell or run of cells.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attrs
}

// Parse parses a style descriptor of the form
// "fg=<color>,bg=<color>,attr=bold|underline|reverse|blink|dim[+...]"
// (clauses are comma-separated, attr values are '+'-joined). Unknown
// clauses and unknown colors are ignored, matching the "never fatal"
// error policy for attribute resolution.
func Parse(desc string) Style {
	var st Style
	for _, clause := range strings.Split(desc, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		kv := strings.SplitN(clause, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])
		switch key {
		case "fg":
			st.Fg = ParseColor(val)
		case "bg":
			st.Bg = ParseColor(val)
		case "attr":
			for _, a := range strings.Split(val, "+") {
				switch strings.ToLower(strings.TrimSpace(a)) {
				case "bold":
					st.Attrs.Bold = true
				case "underline":
					st.Attrs.Underline = true
				case "reverse":
					st.Attrs.Reverse = true
				case "blink":
					st.Attrs.Blink = true
				case "dim":
					st.Attrs.Dim = true
				}
			}
		}
	}
	return st
}

// Merge overlays non-zero fields of other on top of s: colors set in
// other replace those of s, and attribute flags are OR-ed together.
func (s Style) Merge(other Style) Style {
	out := s
	if other.Fg.IsSet() {
		out.Fg = other.Fg
	}
	if other.Bg.IsSet() {
		out.Bg = other.Bg
	}
	out.Attrs.Bold = out.Attrs.Bold || other.Attrs.Bold
	out.Attrs.Underline = out.Attrs.Underline || other.Attrs.Underline
	out.Attrs.Reverse = out.Attrs.Reverse || other.Attrs.Reverse
	out.Attrs.Blink = out.Attrs.Blink || other.Attrs.Blink
	out.Attrs.Dim = out.Attrs.Dim || other.Attrs.Dim
	return out
}

// String renders the style back into descriptor form, mainly for debug dumps.
func (s Style) String() string {
	var parts []string
	if s.Fg.IsSet() {
		r, g, b := s.Fg.RGB255()
		parts = append(parts, "fg=#"+hex2(r)+hex2(g)+hex2(b))
	}
	if s.Bg.IsSet() {
		r, g, b := s.Bg.RGB255()
		parts = append(parts, "bg=#"+hex2(r)+hex2(g)+hex2(b))
	}
	var attrs []string
	if s.Attrs.Bold {
		attrs = append(attrs, "bold")
	}
	if s.Attrs.Underline {
		attrs = append(attrs, "underline")
	}
	if s.Attrs.Reverse {
		attrs = append(attrs, "reverse")
	}
	if s.Attrs.Blink {
		attrs = append(attrs, "blink")
	}
	if s.Attrs.Dim {
		attrs = append(attrs, "dim")
	}
	if len(attrs) > 0 {
		parts = append(parts, "attr="+strings.Join(attrs, "+"))
	}
	return strings.Join(parts, ",")
}

func hex2(b uint8) string {
	s := strconv.FormatInt(int64(b), 16)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
