package widgets

import "github.com/chazu/stfl"

// textAttr resolves a widget's "text" attribute as runes, the common
// content source for label/button (textinput keeps its own buffer in
// internal state instead, since it's user-editable).
func textAttr(w *stfl.Widget) []rune {
	return []rune(w.GetCascade("text", ""))
}
