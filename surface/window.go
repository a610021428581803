package surface

import (
	"errors"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/chazu/stfl/style"
)

var errFatalAlloc = errors.New("surface: terminal allocation failure")

// cellWindow is a Window over any terminalCellWriter — the real
// terminal or an off-screen screen.Buffer — since both satisfy
// SetCell identically.
type cellWindow struct {
	rect  Rect
	cells terminalCellWriter
}

func (w *cellWindow) Rect() Rect { return w.rect }

func (w *cellWindow) Erase(st style.Style) {
	blank := uvCell(' ', 1, st)
	for y := 0; y < w.rect.H; y++ {
		for x := 0; x < w.rect.W; x++ {
			w.cells.SetCell(w.rect.X+x, w.rect.Y+y, blank)
		}
	}
}

func (w *cellWindow) PutChar(y, x int, ch rune, st style.Style) {
	if y < 0 || y >= w.rect.H || x < 0 || x >= w.rect.W {
		return
	}
	cw := runewidth.RuneWidth(ch)
	if cw < 1 {
		cw = 1
	}
	w.cells.SetCell(w.rect.X+x, w.rect.Y+y, uvCell(ch, cw, st))
}

func (w *cellWindow) PutString(y, x int, s []rune, n int, st style.Style) int {
	if n > len(s) {
		n = len(s)
	}
	col := x
	consumed := 0
	for i := 0; i < n; i++ {
		ch := s[i]
		cw := runewidth.RuneWidth(ch)
		if cw < 1 {
			cw = 1
		}
		if col+cw > w.rect.W {
			break
		}
		w.PutChar(y, col, ch, st)
		col += cw
		consumed++
	}
	return consumed
}

func (w *cellWindow) Sub(r Rect) Window {
	return &cellWindow{
		rect: Rect{X: w.rect.X + r.X, Y: w.rect.Y + r.Y, W: r.W, H: r.H},
		cells: w.cells,
	}
}

func uvCell(ch rune, width int, st style.Style) *uv.Cell {
	var attrs uint8
	if st.Attrs.Bold {
		attrs |= uv.AttrBold
	}
	if st.Attrs.Blink {
		attrs |= uv.AttrBlink
	}
	if st.Attrs.Reverse {
		attrs |= uv.AttrReverse
	}
	if st.Attrs.Dim {
		attrs |= uv.AttrFaint
	}
	us := uv.UnderlineNone
	if st.Attrs.Underline {
		us = uv.UnderlineSingle
	}
	return &uv.Cell{
		Content: string(ch),
		Width:   width,
		Style: uv.Style{
			Fg:        toANSI(st.Fg),
			Bg:        toANSI(st.Bg),
			Attrs:     attrs,
			Underline: us,
		},
	}
}

func toANSI(c style.Color) ansi.Color {
	if !c.IsSet() {
		return nil
	}
	r, g, b := c.RGB255()
	return ansi.RGBColor{R: r, G: g, B: b}
}
