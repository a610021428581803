package widgets

import (
	"testing"

	"github.com/chazu/stfl"
	"github.com/chazu/stfl/style"
	"github.com/chazu/stfl/surface"
)

// recordingWindow is a minimal Window that records painted characters
// by absolute cell, letting tests assert on what a widget's Draw hook
// produced without a real terminal.
type recordingWindow struct {
	rect  surface.Rect
	cells map[[2]int]rune
}

func newRecordingWindow(w, h int) *recordingWindow {
	return &recordingWindow{rect: surface.Rect{W: w, H: h}, cells: map[[2]int]rune{}}
}

func (w *recordingWindow) Rect() surface.Rect { return w.rect }
func (w *recordingWindow) Erase(st style.Style) {
	for k := range w.cells {
		if k[0] >= w.rect.Y && k[0] < w.rect.Y+w.rect.H && k[1] >= w.rect.X && k[1] < w.rect.X+w.rect.W {
			delete(w.cells, k)
		}
	}
}
func (w *recordingWindow) PutChar(y, x int, ch rune, st style.Style) {
	w.cells[[2]int{w.rect.Y + y, w.rect.X + x}] = ch
}
func (w *recordingWindow) PutString(y, x int, s []rune, n int, st style.Style) int {
	if n > len(s) {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		w.PutChar(y, x+i, s[i], st)
	}
	return n
}
func (w *recordingWindow) Sub(r surface.Rect) surface.Window {
	return &recordingWindow{rect: surface.Rect{X: w.rect.X + r.X, Y: w.rect.Y + r.Y, W: r.W, H: r.H}, cells: w.cells}
}

func (w *recordingWindow) row(y, width int) string {
	out := make([]rune, width)
	for x := 0; x < width; x++ {
		if ch, ok := w.cells[[2]int{y, x}]; ok {
			out[x] = ch
		} else {
			out[x] = ' '
		}
	}
	return string(out)
}

func TestLabelMinSizeAndDraw(t *testing.T) {
	w := stfl.NewWidget("label")
	if w == nil {
		t.Fatal("label type should be registered")
	}
	w.Set("text", "hello")
	w.Prepare()
	minW, minH := w.MinSize()
	if minW != 5 || minH != 1 {
		t.Fatalf("label min size = (%d,%d), want (5,1)", minW, minH)
	}

	win := newRecordingWindow(5, 1)
	w.SetRect(0, 0, 5, 1)
	w.Draw(win)
	if got := win.row(0, 5); got != "hello" {
		t.Fatalf("label drew %q, want %q", got, "hello")
	}
}

func TestLabelMinSizeIgnoresMarkup(t *testing.T) {
	w := stfl.NewWidget("label")
	w.Set("text", "a<hi>b</>")
	w.Prepare()
	minW, _ := w.MinSize()
	if minW != 2 {
		t.Fatalf("label min width with markup stripped = %d, want 2", minW)
	}
}

func TestButtonActivatesOnEnterAndSpace(t *testing.T) {
	root := stfl.NewWidget("button")
	if root == nil {
		t.Fatal("button type should be registered")
	}
	root.SetName("ok")
	root.Set("text", "OK")
	stfl.NewFormWithSurface(root, nil) // links root to a form so Emit has somewhere to enqueue

	for _, key := range []string{"ENTER", "SPACE"} {
		if !root.ProcessKey(stfl.KeyInput{Name: key}) {
			t.Fatalf("button should consume %s", key)
		}
	}
}

func TestButtonIgnoresOtherKeys(t *testing.T) {
	root := stfl.NewWidget("button")
	root.Set("text", "OK")
	if root.ProcessKey(stfl.KeyInput{Name: "X"}) {
		t.Fatalf("button should not consume an unbound key")
	}
}

func TestCheckboxTogglesAndMirrorsAttribute(t *testing.T) {
	w := stfl.NewWidget("checkbox")
	if w == nil {
		t.Fatal("checkbox type should be registered")
	}
	w.Set("text", "agree")
	w.Prepare()

	if !w.ProcessKey(stfl.KeyInput{Name: "SPACE"}) {
		t.Fatalf("checkbox should consume SPACE")
	}
	if got := w.Get("checked", "0"); got != "1" {
		t.Fatalf("checked attribute = %q after toggling on, want \"1\"", got)
	}

	win := newRecordingWindow(10, 1)
	w.SetRect(0, 0, 10, 1)
	w.Draw(win)
	if got := win.row(0, 4); got != "[x] " {
		t.Fatalf("checkbox drew prefix %q, want %q", got, "[x] ")
	}

	w.ProcessKey(stfl.KeyInput{Name: "SPACE"})
	if got := w.Get("checked", "1"); got != "0" {
		t.Fatalf("checked attribute = %q after toggling off, want \"0\"", got)
	}
}

func TestTextInputInsertAndBackspace(t *testing.T) {
	w := stfl.NewWidget("textinput")
	if w == nil {
		t.Fatal("textinput type should be registered")
	}
	w.Prepare()

	for _, r := range "hi" {
		if !w.ProcessKey(stfl.KeyInput{Name: string(r), Ch: r}) {
			t.Fatalf("textinput should consume printable key %q", r)
		}
	}
	if got := w.Get("text", ""); got != "hi" {
		t.Fatalf("text attribute = %q, want %q", got, "hi")
	}

	if !w.ProcessKey(stfl.KeyInput{Name: "BACKSPACE"}) {
		t.Fatalf("textinput should consume BACKSPACE")
	}
	if got := w.Get("text", ""); got != "h" {
		t.Fatalf("text attribute after backspace = %q, want %q", got, "h")
	}
}

func TestTextInputLeftRightDoNotConsumeIntoText(t *testing.T) {
	w := stfl.NewWidget("textinput")
	w.Set("text", "ab")
	w.Prepare()

	if !w.ProcessKey(stfl.KeyInput{Name: "LEFT"}) {
		t.Fatalf("textinput should consume LEFT")
	}
	if got := w.Get("text", ""); got != "ab" {
		t.Fatalf("LEFT should not mutate the text, got %q", got)
	}
}

func TestHboxDistributesChildrenLeftToRight(t *testing.T) {
	root := stfl.NewWidget("hbox")
	if root == nil {
		t.Fatal("hbox type should be registered")
	}
	a := stfl.NewWidget("label")
	a.Set("text", "A")
	b := stfl.NewWidget("label")
	b.Set("text", "B")
	root.AppendChild(a)
	root.AppendChild(b)

	root.Prepare()
	win := newRecordingWindow(5, 1)
	root.SetRect(0, 0, 5, 1)
	root.Draw(win)

	if got := win.row(0, 5); got[0] != 'A' {
		t.Fatalf("first child should paint at column 0, row = %q", got)
	}
}

func TestVboxStacksChildrenTopToBottom(t *testing.T) {
	root := stfl.NewWidget("vbox")
	a := stfl.NewWidget("label")
	a.Set("text", "A")
	b := stfl.NewWidget("label")
	b.Set("text", "B")
	root.AppendChild(a)
	root.AppendChild(b)

	root.Prepare()
	win := newRecordingWindow(1, 2)
	root.SetRect(0, 0, 1, 2)
	root.Draw(win)

	if win.row(0, 1) != "A" || win.row(1, 1) != "B" {
		t.Fatalf("vbox should stack children top to bottom, got row0=%q row1=%q", win.row(0, 1), win.row(1, 1))
	}
}
