package stfl

// Axis identifies a container's main layout axis.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Letter returns the axis letter used by the .expand attribute
// vocabulary ('h' for Horizontal, 'v' for Vertical).
func (a Axis) Letter() byte {
	if a == Vertical {
		return 'v'
	}
	return 'h'
}

// ChildSize is one visible child's size along a container's main axis
// before leftover space is distributed, gathered by the container
// widget before calling DistributeMainAxis.
type ChildSize struct {
	Size   int
	Expand bool
}

// DistributeMainAxis hands out any leftover space along the main axis
// to expandable children using a running-average tie-break: each
// expandable child in turn gets ceil(remaining / remaining-expandable-count)
// of what's left, the pool and expandable count shrink accordingly, so
// uneven remainders accrue to earlier children and the sum of the
// returned sizes exactly equals avail whenever every child is
// expandable. avail is the rectangle's extent along the axis; sizes
// holds each child's size (its resolved min/declared size, no
// distribution applied) in sibling order.
func DistributeMainAxis(sizes []ChildSize, avail int) []int {
	out := make([]int, len(sizes))
	occupied := 0
	nExpand := 0
	for i, c := range sizes {
		out[i] = c.Size
		occupied += c.Size
		if c.Expand {
			nExpand++
		}
	}
	remaining := avail - occupied
	if remaining <= 0 || nExpand == 0 {
		return out
	}
	for i, c := range sizes {
		if !c.Expand {
			continue
		}
		extra := (remaining + nExpand - 1) / nExpand
		out[i] += extra
		remaining -= extra
		nExpand--
	}
	return out
}

// TieOffset resolves a tie/centering rule for one axis: given the
// occupied minimum and the outer extent along the axis, and whether
// the "low" (left/top) and "high" (right/bottom) tie letters are
// present in the widget's resolved tie flags, it returns the starting
// offset and the extent the content should occupy.
//
//   - missing both low and high: center (offset = (outer-min)/2)
//   - missing low, present high: stick to the high edge (offset = outer-min)
//   - missing either letter: shrink the occupied extent to min
//   - both present (or outer <= min): no offset, full outer extent
func TieOffset(min, outer int, hasLow, hasHigh bool) (offset, extent int) {
	if outer <= min {
		return 0, outer
	}
	switch {
	case !hasLow && !hasHigh:
		return (outer - min) / 2, min
	case !hasLow && hasHigh:
		return outer - min, min
	case hasLow && !hasHigh:
		return 0, min
	default:
		return 0, outer
	}
}

// ParseTie reports whether each of the four tie letters ('l','r','t','b')
// is present in a .tie/tie attribute value, defaulting to "lrtb" (all
// four, i.e. no centering) when desc is empty.
func ParseTie(desc string) (left, right, top, bottom bool) {
	if desc == "" {
		desc = "lrtb"
	}
	for _, c := range desc {
		switch c {
		case 'l':
			left = true
		case 'r':
			right = true
		case 't':
			top = true
		case 'b':
			bottom = true
		}
	}
	return
}
