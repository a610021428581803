package widgets

import (
	"github.com/chazu/stfl"
	"github.com/chazu/stfl/richtext"
	"github.com/chazu/stfl/style"
)

func init() {
	stfl.RegisterType(&stfl.WidgetType{
		Name: "label",
		Ops: stfl.WidgetOps{
			Prepare: prepareLabel,
			Draw:    drawLabel,
		},
	})
}

// prepareLabel sets a label's minimum size from its text attribute:
// the rune length for width (richtext width clipping happens at draw
// time against the assigned rectangle), 1 row tall.
func prepareLabel(w *stfl.Widget) {
	text := []rune(stripMarkup(w.GetCascade("text", "")))
	w.SetMinSize(len(text), 1)
}

func drawLabel(w *stfl.Widget, win stfl.Window) {
	_, _, width, _ := w.Rect()
	base := style.Parse(w.GetCascade("style_normal", ""))
	text := []rune(w.GetCascade("text", ""))
	richtext.Paint(win, 0, 0, width, text, base, styleLookup(w))
}

// styleLookup adapts a widget's cascaded style_<name>_{normal,focus}
// attributes into the richtext.StyleLookup callback the painter uses
// to resolve inline <name> markup switches.
func styleLookup(w *stfl.Widget) richtext.StyleLookup {
	return func(name string) (string, bool) {
		suffix := "_normal"
		if w.IsFocused() {
			suffix = "_focus"
		}
		v := w.GetCascade("style_"+name+suffix, "")
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// stripMarkup strips <...> runs from richtext source so the minimum
// width reflects visible characters, not markup bytes. A best-effort
// pass; Prepare only needs an approximate width.
func stripMarkup(s string) string {
	out := make([]rune, 0, len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}
