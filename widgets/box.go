// Package widgets implements the built-in widget types: the generic
// vbox/hbox container (the only widget behavior the core engine
// itself specifies, beyond the widget contract) plus label, button,
// checkbox, and textinput as small demonstrations of that contract.
package widgets

import (
	"github.com/chazu/stfl"
	"github.com/chazu/stfl/style"
	"github.com/chazu/stfl/surface"
)

func init() {
	stfl.RegisterType(&stfl.WidgetType{
		Name: "vbox",
		Ops: stfl.WidgetOps{
			Prepare: func(w *stfl.Widget) { prepareBox(w, stfl.Vertical) },
			Draw:    func(w *stfl.Widget, win stfl.Window) { drawBox(w, win, stfl.Vertical) },
		},
	})
	stfl.RegisterType(&stfl.WidgetType{
		Name: "hbox",
		Ops: stfl.WidgetOps{
			Prepare: func(w *stfl.Widget) { prepareBox(w, stfl.Horizontal) },
			Draw:    func(w *stfl.Widget, win stfl.Window) { drawBox(w, win, stfl.Horizontal) },
		},
	})
}

// prepareBox is the bottom-up pass: each displayable child is
// prepared recursively, then its min size is folded into w's own. For
// a vertical container min_w = max(child min_w), min_h = sum(child
// min_h); horizontal is symmetric.
func prepareBox(w *stfl.Widget, axis stfl.Axis) {
	var minMain, minCross int
	for _, c := range w.DisplayedChildren() {
		c.Prepare()
		cw, ch := c.MinSize()
		main, cross := cw, ch
		if axis == stfl.Horizontal {
			main, cross = cw, ch
		} else {
			main, cross = ch, cw
		}
		minMain += main
		if cross > minCross {
			minCross = cross
		}
	}
	if axis == stfl.Horizontal {
		w.SetMinSize(minMain, minCross)
	} else {
		w.SetMinSize(minCross, minMain)
	}
}

// drawBox is the top-down pass: erase to the resolved style, apply
// w's own tie rule to center/stick its occupied minimum within the
// allotted rectangle, distribute leftover main-axis space among
// expandable children, apply each child's own tie rule across the
// cross axis, then recurse into each child's Draw.
func drawBox(w *stfl.Widget, win stfl.Window, axis stfl.Axis) {
	x, y, width, height := w.Rect()
	win.Erase(style.Parse(w.GetCascade("style_normal", "")))

	children := w.DisplayedChildren()
	if len(children) == 0 {
		return
	}

	sizes := make([]stfl.ChildSize, len(children))
	occupiedMain := 0
	for i, c := range children {
		cw, ch := c.MinSize()
		main := cw
		if axis == stfl.Vertical {
			main = ch
		}
		if axis == stfl.Horizontal {
			if dw := c.GetCascadeInt(".width", 0); dw > main {
				main = dw
			}
		} else {
			if dh := c.GetCascadeInt(".height", 0); dh > main {
				main = dh
			}
		}
		expandDesc := c.GetCascade(".expand", "vh")
		expand := containsByte(expandDesc, axis.Letter())
		sizes[i] = stfl.ChildSize{Size: main, Expand: expand}
		occupiedMain += main
	}

	outerMain := width
	if axis == stfl.Vertical {
		outerMain = height
	}

	// Resolve w's own tie to center/stick its occupied content within
	// the allotted rectangle when it's smaller than outerMain.
	tieDesc := w.GetCascade("tie", w.GetCascade(".tie", ""))
	left, right, top, bottom := stfl.ParseTie(tieDesc)
	var mainOffset, mainExtent int
	if axis == stfl.Horizontal {
		mainOffset, mainExtent = stfl.TieOffset(occupiedMain, outerMain, left, right)
	} else {
		mainOffset, mainExtent = stfl.TieOffset(occupiedMain, outerMain, top, bottom)
	}

	finalSizes := stfl.DistributeMainAxis(sizes, mainExtent)

	pos := mainOffset
	for i, c := range children {
		size := finalSizes[i]
		var cx, cy, cw, ch int
		if axis == stfl.Horizontal {
			cx, cy, cw, ch = x+pos, y, size, height
		} else {
			cx, cy, cw, ch = x, y+pos, width, size
		}
		cx, cy, cw, ch = applyChildCrossTie(c, axis, cx, cy, cw, ch)
		c.SetRect(cx, cy, cw, ch)
		childWin := win.Sub(surface.Rect{X: cx - x, Y: cy - y, W: cw, H: ch})
		c.Draw(childWin)
		pos += size
	}
}

// applyChildCrossTie applies a child's own tie rule across the
// container's cross axis (e.g. a vbox child's horizontal tie),
// shrinking/centering/sticking the child's rectangle along that axis
// when its min is smaller than the cross extent it was allotted.
func applyChildCrossTie(c *stfl.Widget, axis stfl.Axis, x, y, w, h int) (int, int, int, int) {
	minW, minH := c.MinSize()
	tieDesc := c.GetCascade("tie", c.GetCascade(".tie", ""))
	left, right, top, bottom := stfl.ParseTie(tieDesc)
	if axis == stfl.Horizontal {
		if minH >= h {
			return x, y, w, h
		}
		off, extent := stfl.TieOffset(minH, h, top, bottom)
		return x, y + off, w, extent
	}
	if minW >= w {
		return x, y, w, h
	}
	off, extent := stfl.TieOffset(minW, w, left, right)
	return x + off, y, extent, h
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
