package widgets

import (
	"github.com/chazu/stfl"
	"github.com/chazu/stfl/richtext"
	"github.com/chazu/stfl/style"
)

// checkboxState is the checkbox's internal per-widget state: whether
// it is currently checked. Draw reads this flag; each toggle also
// writes it back to the "checked" attribute, and Prepare picks up a
// non-empty "checked" attribute set by the host.
type checkboxState struct {
	checked bool
}

func init() {
	stfl.RegisterType(&stfl.WidgetType{
		Name:       "checkbox",
		AllowFocus: true,
		Ops: stfl.WidgetOps{
			Init:    func(w *stfl.Widget) { w.SetInternal(&checkboxState{}) },
			Prepare: prepareCheckbox,
			Draw:    drawCheckbox,
			Process: processCheckbox,
		},
	})
}

func checkboxStateOf(w *stfl.Widget) *checkboxState {
	cs, _ := w.Internal().(*checkboxState)
	if cs == nil {
		cs = &checkboxState{}
		w.SetInternal(cs)
	}
	return cs
}

func prepareCheckbox(w *stfl.Widget) {
	cs := checkboxStateOf(w)
	if v := w.Get("checked", ""); v != "" {
		cs.checked = v != "0"
	}
	text := stripMarkup(w.GetCascade("text", ""))
	// "[x] " / "[ ] " prefix plus label text.
	w.SetMinSize(len([]rune(text))+4, 1)
}

func drawCheckbox(w *stfl.Widget, win stfl.Window) {
	_, _, width, _ := w.Rect()
	cs := checkboxStateOf(w)
	mark := ' '
	if cs.checked {
		mark = 'x'
	}
	styleKey := "style_normal"
	if w.IsFocused() {
		styleKey = "style_focus"
	}
	base := style.Parse(w.GetCascade(styleKey, ""))
	prefix := []rune{'[', mark, ']', ' '}
	text := append(prefix, textAttr(w)...)
	richtext.Paint(win, 0, 0, width, text, base, styleLookup(w))
}

// processCheckbox toggles on SPACE or ENTER (autobind fallback "ENTER
// SPACE"), emitting "TOGGLE" after flipping the internal state and
// mirroring it back to the "checked" attribute for host inspection.
func processCheckbox(w *stfl.Widget, key stfl.KeyInput) bool {
	if w.GetCascadeInt("process", 1) == 0 {
		return false
	}
	if _, matched := stfl.MatchBinding(w, key, "toggle", "ENTER SPACE"); matched {
		cs := checkboxStateOf(w)
		cs.checked = !cs.checked
		if cs.checked {
			w.Set("checked", "1")
		} else {
			w.Set("checked", "0")
		}
		w.Emit("TOGGLE")
		return true
	}
	return false
}
