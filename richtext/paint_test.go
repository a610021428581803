package richtext

import (
	"testing"

	"github.com/chazu/stfl/style"
	"github.com/chazu/stfl/surface"
)

// recordingWindow captures every PutChar call so tests can assert on
// exactly what was painted and in what style, without a real terminal.
type recordingWindow struct {
	w, h  int
	cells map[[2]int]paintedCell
}

type paintedCell struct {
	ch rune
	st style.Style
}

func newRecordingWindow(w, h int) *recordingWindow {
	return &recordingWindow{w: w, h: h, cells: map[[2]int]paintedCell{}}
}

func (r *recordingWindow) Rect() surface.Rect { return surface.Rect{W: r.w, H: r.h} }
func (r *recordingWindow) Erase(st style.Style) { r.cells = map[[2]int]paintedCell{} }
func (r *recordingWindow) PutChar(y, x int, ch rune, st style.Style) {
	r.cells[[2]int{y, x}] = paintedCell{ch: ch, st: st}
}
func (r *recordingWindow) PutString(y, x int, s []rune, n int, st style.Style) int {
	if n > len(s) {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		r.PutChar(y, x+i, s[i], st)
	}
	return n
}
func (r *recordingWindow) Sub(rect surface.Rect) surface.Window { return r }

func (r *recordingWindow) text(y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		c, ok := r.cells[[2]int{y, x}]
		if !ok {
			break
		}
		out = append(out, c.ch)
	}
	return string(out)
}

func lookupFor(styles map[string]string) StyleLookup {
	return func(name string) (string, bool) {
		d, ok := styles[name]
		return d, ok
	}
}

func TestPaintSwitchesStyleOnNamedTag(t *testing.T) {
	win := newRecordingWindow(10, 1)
	base := style.Parse("fg=white")
	lookup := lookupFor(map[string]string{"hi": "fg=red"})

	consumed := Paint(win, 0, 0, 10, []rune("a<hi>b</>c"), base, lookup)

	if got := win.text(0, 3); got != "abc" {
		t.Fatalf("painted text = %q, want %q", got, "abc")
	}
	if consumed != len([]rune("a<hi>b</>c")) {
		t.Fatalf("consumed = %d, want %d (all input runes)", consumed, len([]rune("a<hi>b</>c")))
	}

	aStyle := win.cells[[2]int{0, 0}].st
	bStyle := win.cells[[2]int{0, 1}].st
	cStyle := win.cells[[2]int{0, 2}].st
	if aStyle.Fg != base.Fg {
		t.Fatalf("'a' should paint in the base style")
	}
	if bStyle.Fg == base.Fg {
		t.Fatalf("'b' should paint in the <hi> style, distinct from base")
	}
	if cStyle.Fg != base.Fg {
		t.Fatalf("'c' should have reverted to base style after </>")
	}
}

func TestPaintLiteralLessThan(t *testing.T) {
	win := newRecordingWindow(10, 1)
	base := style.Parse("")
	consumed := Paint(win, 0, 0, 10, []rune("a<>b"), base, lookupFor(nil))

	if got := win.text(0, 3); got != "a<b" {
		t.Fatalf("painted text = %q, want %q", got, "a<b")
	}
	if consumed != 4 {
		t.Fatalf("consumed = %d, want 4", consumed)
	}
}

func TestPaintUnknownStyleNameIsNoChange(t *testing.T) {
	win := newRecordingWindow(10, 1)
	base := style.Parse("fg=white")
	Paint(win, 0, 0, 10, []rune("a<nosuch>b"), base, lookupFor(nil))

	aStyle := win.cells[[2]int{0, 0}].st
	bStyle := win.cells[[2]int{0, 1}].st
	if aStyle.Fg != base.Fg || bStyle.Fg != base.Fg {
		t.Fatalf("an unresolved style name should leave the current style unchanged")
	}
}

func TestPaintClipsToWidth(t *testing.T) {
	win := newRecordingWindow(3, 1)
	base := style.Parse("")
	consumed := Paint(win, 0, 0, 3, []rune("abcdef"), base, lookupFor(nil))

	if got := win.text(0, 3); got != "abc" {
		t.Fatalf("painted text = %q, want %q", got, "abc")
	}
	if consumed != 3 {
		t.Fatalf("consumed = %d, want 3 (painting stops at the width budget)", consumed)
	}
}
