package widgets

import (
	"github.com/chazu/stfl"
	"github.com/chazu/stfl/style"
)

// textInputState is a single-line editable buffer plus cursor
// position, kept as internal_data so every keystroke doesn't need to
// re-parse the "text" attribute.
type textInputState struct {
	buf    []rune
	cursor int
}

func init() {
	stfl.RegisterType(&stfl.WidgetType{
		Name:       "textinput",
		AllowFocus: true,
		Ops: stfl.WidgetOps{
			Init:    initTextInput,
			Prepare: prepareTextInput,
			Draw:    drawTextInput,
			Process: processTextInput,
		},
	})
}

func initTextInput(w *stfl.Widget) {
	w.SetInternal(&textInputState{})
}

func textInputStateOf(w *stfl.Widget) *textInputState {
	ts, _ := w.Internal().(*textInputState)
	if ts == nil {
		ts = &textInputState{}
		w.SetInternal(ts)
	}
	return ts
}

func prepareTextInput(w *stfl.Widget) {
	ts := textInputStateOf(w)
	if v, ok := syncFromAttr(w, ts); ok {
		_ = v
	}
	minW := w.GetCascadeInt(".width", 10)
	if minW < 1 {
		minW = 1
	}
	w.SetMinSize(minW, 1)
}

// syncFromAttr picks up an author-set "text" attribute the first time
// the widget is prepared (e.g. a pre-populated field), without
// clobbering in-progress edits on later steps.
func syncFromAttr(w *stfl.Widget, ts *textInputState) (string, bool) {
	if ts.buf != nil {
		return "", false
	}
	v := w.Get("text", "")
	ts.buf = []rune(v)
	ts.cursor = len(ts.buf)
	return v, true
}

func drawTextInput(w *stfl.Widget, win stfl.Window) {
	_, _, width, _ := w.Rect()
	ts := textInputStateOf(w)
	styleKey := "style_normal"
	if w.IsFocused() {
		styleKey = "style_focus"
	}
	st := style.Parse(w.GetCascade(styleKey, ""))
	win.Erase(st)
	n := win.PutString(0, 0, ts.buf, len(ts.buf), st)
	_ = n
	if w.IsFocused() {
		w.SetCursorHint(ts.cursor, 0)
	}
}

// processTextInput handles single-character insertion, BACKSPACE
// deletion, and LEFT/RIGHT cursor movement; everything else is left
// unconsumed so the engine's default focus-cycling and event
// enqueuing apply.
func processTextInput(w *stfl.Widget, key stfl.KeyInput) bool {
	ts := textInputStateOf(w)
	switch key.Name {
	case "BACKSPACE":
		if ts.cursor > 0 {
			ts.buf = append(ts.buf[:ts.cursor-1], ts.buf[ts.cursor:]...)
			ts.cursor--
			syncToAttr(w, ts)
		}
		return true
	case "LEFT":
		if ts.cursor > 0 {
			ts.cursor--
		}
		return true
	case "RIGHT":
		if ts.cursor < len(ts.buf) {
			ts.cursor++
		}
		return true
	case "ENTER", "TAB", "ESC":
		return false
	}
	if !key.FuncKey && len([]rune(key.Name)) == 1 {
		r := []rune(key.Name)[0]
		ts.buf = append(ts.buf[:ts.cursor], append([]rune{r}, ts.buf[ts.cursor:]...)...)
		ts.cursor++
		syncToAttr(w, ts)
		return true
	}
	return false
}

func syncToAttr(w *stfl.Widget, ts *textInputState) {
	w.Set("text", string(ts.buf))
}
