package stfl

// findFirstFocusable walks w pre-order, returning w itself if it is
// displayable and focusable, else recursing into each displayable
// child in order.
//
// A child is descended into only if the *child's own* .display is
// non-zero, checked by the caller before recursing — w's own
// displayability is not re-checked inside the recursive call itself
// (Focusable already folds that in for w as a candidate).
func findFirstFocusable(w *Widget) *Widget {
	if w.Focusable() {
		return w
	}
	for c := w.firstChild; c != nil; c = c.nextSibling {
		if !c.Displayable() {
			continue
		}
		if found := findFirstFocusable(c); found != nil {
			return found
		}
	}
	return nil
}

// siblingSlice returns p's children in sibling order, as a slice for
// indexed backward/forward scanning.
func siblingSlice(p *Widget) []*Widget {
	var out []*Widget
	for c := p.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// focusPreviousInParent walks p's children to the sibling immediately
// preceding s, looking for its first focusable widget; if none, it
// moves one sibling further left and retries. Returns nil if no
// earlier sibling yields a focusable widget.
func focusPreviousInParent(p, s *Widget) *Widget {
	sibs := siblingSlice(p)
	idx := -1
	for i, c := range sibs {
		if c == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if found := findFirstFocusable(sibs[i]); found != nil {
			return found
		}
	}
	return nil
}

// focusNextInParent walks the siblings to the right of s; the first
// subtree yielding a focusable widget wins.
func focusNextInParent(p, s *Widget) *Widget {
	sibs := siblingSlice(p)
	idx := -1
	for i, c := range sibs {
		if c == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	for i := idx + 1; i < len(sibs); i++ {
		if found := findFirstFocusable(sibs[i]); found != nil {
			return found
		}
	}
	return nil
}

// globalForwardTab walks pre-order from the focused widget until a
// focusable widget is reached, wrapping to the root if the walk runs
// off the end of the tree while an old focus existed.
func globalForwardTab(root, old *Widget) *Widget {
	var cur *Widget
	if old == nil {
		cur = root
	} else {
		cur = nextPreorder(old)
	}
	for cur != nil {
		if cur.Focusable() {
			return cur
		}
		cur = nextPreorder(cur)
	}
	if old == nil {
		return nil
	}
	for cur = root; cur != nil; cur = nextPreorder(cur) {
		if cur.Focusable() {
			return cur
		}
	}
	return nil
}

// globalBackTab walks pre-order from root, recording the latest-seen
// focusable widget
// until the current focused widget is reached; that recording becomes
// the new focus. If nothing was found before reaching the current
// focus, the scan continues past it to the end of the tree to find
// the wrap-around candidate (the last focusable widget overall).
func globalBackTab(root, cur *Widget) *Widget {
	var last *Widget
	w := root
	for w != nil && w != cur {
		if w.Focusable() {
			last = w
		}
		w = nextPreorder(w)
	}
	if last != nil {
		return last
	}
	if cur != nil {
		for w = nextPreorder(cur); w != nil; w = nextPreorder(w) {
			if w.Focusable() {
				last = w
			}
		}
	}
	return last
}
