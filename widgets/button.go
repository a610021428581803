package widgets

import (
	"github.com/chazu/stfl"
	"github.com/chazu/stfl/richtext"
	"github.com/chazu/stfl/style"
)

func init() {
	stfl.RegisterType(&stfl.WidgetType{
		Name:       "button",
		AllowFocus: true,
		Ops: stfl.WidgetOps{
			Prepare: prepareButton,
			Draw:    drawButton,
			Process: processButton,
		},
	})
}

func prepareButton(w *stfl.Widget) {
	text := stripMarkup(w.GetCascade("text", ""))
	w.SetMinSize(len([]rune(text))+2, 1) // "[" + text + "]"
}

func drawButton(w *stfl.Widget, win stfl.Window) {
	_, _, width, _ := w.Rect()
	focused := w.IsFocused()
	styleKey := "style_normal"
	if focused {
		styleKey = "style_focus"
	}
	base := style.Parse(w.GetCascade(styleKey, ""))
	text := append([]rune("["), append(textAttr(w), ']')...)
	richtext.Paint(win, 0, 0, width, text, base, styleLookup(w))
}

// processButton handles the button's default "activate" binding:
// ENTER or SPACE (autobind fallback "ENTER SPACE"), emitting "ACTIVATE"
// unless the author overrides bind_activate.
func processButton(w *stfl.Widget, key stfl.KeyInput) bool {
	if w.GetCascadeInt("process", 1) == 0 {
		return false
	}
	if _, matched := stfl.MatchBinding(w, key, "activate", "ENTER SPACE"); matched {
		w.Emit("ACTIVATE")
		return true
	}
	return false
}
