package stfl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chazu/stfl/surface"
)

// Window is the drawable rectangle a widget's Draw hook paints into;
// an alias of surface.Window so callers outside this module's own
// surface package don't need a second import for it.
type Window = surface.Window

// NoCursor is the sentinel value for the coordinates returned by
// Widget.CursorHint meaning "this widget has no preferred
// hardware-cursor position".
const NoCursor = -1

// Widget is one node of the tree. Children are owned through
// firstChild/nextSibling; parent and lastChild are non-owning
// back-pointers/caches.
type Widget struct {
	id    int64
	typ   *WidgetType
	name  string
	class string

	allowFocus bool
	setfocus   bool

	x, y, w, h int
	minW, minH int
	curX, curY int

	internal any

	attrs attrStore

	parent      *Widget
	firstChild  *Widget
	lastChild   *Widget
	nextSibling *Widget

	// ownerForm is set only on the root widget, linking it back to the
	// Form that wraps it so widgets can ask "am I focused?" without
	// every widget needing its own reference to the form.
	ownerForm *Form
}

// ownerFormOf returns the Form wrapping w's tree, or nil if w isn't
// (yet) part of one.
func (w *Widget) ownerFormOf() *Form {
	root := w
	for root.parent != nil {
		root = root.parent
	}
	return root.ownerForm
}

// Emit enqueues a symbolic event on w's owning form, letting a
// widget's Process hook produce events the same way the runtime's own
// synthesized TIMEOUT/default-name events do. A no-op if w isn't part
// of a form yet.
func (w *Widget) Emit(name string) {
	if f := w.ownerFormOf(); f != nil {
		f.Event(name)
	}
}

// IsFocused reports whether w is the form's currently focused widget.
// Used by widget Draw hooks to choose between style_<name>_normal and
// style_<name>_focus when resolving a named style.
func (w *Widget) IsFocused() bool {
	f := w.ownerFormOf()
	if f == nil {
		return false
	}
	return f.currentFocusID == w.id
}

// ID returns the widget's process-unique, stable id.
func (w *Widget) ID() int64 { return w.id }

// TypeName returns the widget's type name, or "" if it has none
// (shouldn't happen for a live widget created through NewWidget).
func (w *Widget) TypeName() string {
	if w.typ == nil {
		return ""
	}
	return w.typ.Name
}

// Name returns the widget's symbolic name, if any.
func (w *Widget) Name() string { return w.name }

// Class returns the widget's symbolic class, if any.
func (w *Widget) Class() string { return w.class }

// Parent returns the widget's parent, or nil for the root.
func (w *Widget) Parent() *Widget { return w.parent }

// FirstChild returns the first child in sibling order, or nil.
func (w *Widget) FirstChild() *Widget { return w.firstChild }

// NextSibling returns the next sibling, or nil.
func (w *Widget) NextSibling() *Widget { return w.nextSibling }

// Rect returns the widget's last-assigned geometry.
func (w *Widget) Rect() (x, y, wdt, hgt int) { return w.x, w.y, w.w, w.h }

// MinSize returns the widget's last-computed minimum size.
func (w *Widget) MinSize() (minW, minH int) { return w.minW, w.minH }

// SetMinSize records w's minimum size, computed by its type's Prepare
// hook from its own content and its children's minimums.
func (w *Widget) SetMinSize(minW, minH int) { w.minW, w.minH = minW, minH }

// SetRect records w's assigned geometry, set by its parent's Draw
// hook during the top-down layout pass.
func (w *Widget) SetRect(x, y, width, height int) {
	w.x, w.y, w.w, w.h = x, y, width, height
}

// Prepare invokes w's own widget type's Prepare hook, if any. A
// container's Prepare hook calls this on each of its displayable
// children before aggregating their minimum sizes.
func (w *Widget) Prepare() {
	if w.typ != nil && w.typ.Ops.Prepare != nil {
		w.typ.Ops.Prepare(w)
	}
}

// Draw invokes w's own widget type's Draw hook, if any, with win
// covering the rectangle the caller has already assigned to w via
// SetRect. A container's Draw hook calls this on each child after
// computing its sub-rectangle.
func (w *Widget) Draw(win Window) {
	if w.typ != nil && w.typ.Ops.Draw != nil {
		w.typ.Ops.Draw(w, win)
	}
}

// ProcessKey invokes w's own widget type's Process hook, if any,
// reporting whether the keystroke was consumed. Returns false if the
// type defines no Process hook.
func (w *Widget) ProcessKey(key KeyInput) bool {
	if w.typ != nil && w.typ.Ops.Process != nil {
		return w.typ.Ops.Process(w, key)
	}
	return false
}

// EnterFocus invokes w's own widget type's Enter hook, if any.
func (w *Widget) EnterFocus() {
	if w.typ != nil && w.typ.Ops.Enter != nil {
		w.typ.Ops.Enter(w)
	}
}

// LeaveFocus invokes w's own widget type's Leave hook, if any.
func (w *Widget) LeaveFocus() {
	if w.typ != nil && w.typ.Ops.Leave != nil {
		w.typ.Ops.Leave(w)
	}
}

// DisplayedChildren returns w's children whose cascaded .display
// attribute is non-zero, in sibling order — the visibility filter the
// layout pipeline applies before recursing into a child.
func (w *Widget) DisplayedChildren() []*Widget {
	var out []*Widget
	for c := w.firstChild; c != nil; c = c.nextSibling {
		if c.Displayable() {
			out = append(out, c)
		}
	}
	return out
}

// CursorHint returns the widget's preferred hardware-cursor cell,
// relative to its own rectangle, or (NoCursor, NoCursor) if it
// doesn't want the cursor placed anywhere.
func (w *Widget) CursorHint() (x, y int) { return w.curX, w.curY }

// SetCursorHint records the widget's preferred cursor cell.
func (w *Widget) SetCursorHint(x, y int) { w.curX, w.curY = x, y }

// SetInternal stores a type's opaque per-widget state.
func (w *Widget) SetInternal(v any) { w.internal = v }

// Internal returns the type's opaque per-widget state.
func (w *Widget) Internal() any { return w.internal }

// NewWidget creates a widget of the given type name. A leading '!'
// requests setfocus and is stripped before type lookup. Returns nil if
// the type name is unregistered.
func NewWidget(typeName string) *Widget {
	setfocus := false
	if strings.HasPrefix(typeName, "!") {
		setfocus = true
		typeName = typeName[1:]
	}
	t := lookupType(typeName)
	if t == nil {
		return nil
	}
	w := &Widget{
		id:         nextID(),
		typ:        t,
		allowFocus: t.AllowFocus,
		setfocus:   setfocus,
		curX:       NoCursor,
		curY:       NoCursor,
	}
	if t.Ops.Init != nil {
		t.Ops.Init(w)
	}
	Log("created widget id=%d type=%s setfocus=%v", w.id, typeName, setfocus)
	return w
}

// SetName assigns w's symbolic name.
func (w *Widget) SetName(name string) { w.name = name }

// SetClass assigns w's symbolic class.
func (w *Widget) SetClass(class string) { w.class = class }

// AppendChild appends child as w's last child (invariant 2: firstChild
// and lastChild are both set once w has any children).
func (w *Widget) AppendChild(child *Widget) {
	child.parent = w
	if w.lastChild == nil {
		w.firstChild = child
		w.lastChild = child
	} else {
		w.lastChild.nextSibling = child
		w.lastChild = child
	}
}

// Destroy frees w and its entire subtree: the type's done hook runs
// bottom-up, then w is unlinked from its parent, updating the parent's
// lastChild cache if needed.
func (w *Widget) Destroy() {
	for c := w.firstChild; c != nil; {
		next := c.nextSibling
		c.destroySubtree()
		c = next
	}
	w.firstChild, w.lastChild = nil, nil
	if w.typ != nil && w.typ.Ops.Done != nil {
		w.typ.Ops.Done(w)
	}
	if w.parent != nil {
		w.parent.unlink(w)
	}
	Log("destroyed widget id=%d", w.id)
}

// destroySubtree runs Destroy without touching the (already-gone)
// parent link, since the parent is mid-teardown itself.
func (w *Widget) destroySubtree() {
	for c := w.firstChild; c != nil; {
		next := c.nextSibling
		c.destroySubtree()
		c = next
	}
	if w.typ != nil && w.typ.Ops.Done != nil {
		w.typ.Ops.Done(w)
	}
}

// unlink removes child from w's sibling chain and repairs lastChild.
func (w *Widget) unlink(child *Widget) {
	if w.firstChild == child {
		w.firstChild = child.nextSibling
		if w.lastChild == child {
			w.lastChild = nil
		}
		return
	}
	for c := w.firstChild; c != nil; c = c.nextSibling {
		if c.nextSibling == child {
			c.nextSibling = child.nextSibling
			if w.lastChild == child {
				w.lastChild = c
			}
			return
		}
	}
}

// FindByID searches w and its entire subtree, pre-order, for the
// widget with the given id. Used to re-resolve the focused widget
// after the form mutex is released and re-acquired across a blocking
// read, since the tree may have mutated in between.
func (w *Widget) FindByID(id int64) *Widget {
	if w.id == id {
		return w
	}
	for c := w.firstChild; c != nil; c = c.nextSibling {
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// nextPreorder returns the next widget after w in a pre-order walk of
// the whole tree (child, then sibling, then up-and-right), or nil at
// the end of the tree. Used by the focus engine's global tab/back-tab
// traversal.
func nextPreorder(w *Widget) *Widget {
	if w.firstChild != nil {
		return w.firstChild
	}
	for cur := w; cur != nil; cur = cur.parent {
		if cur.nextSibling != nil {
			return cur.nextSibling
		}
	}
	return nil
}

// Dump writes a human-readable pre-order tree dump to w, one line per
// widget with its type/name/class and direct attribute entries in
// insertion order.
func (w *Widget) Dump(out io.Writer, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(out, "%s%s id=%d", indent, w.TypeName(), w.id)
	if w.name != "" {
		fmt.Fprintf(out, " name=%s", w.name)
	}
	if w.class != "" {
		fmt.Fprintf(out, " class=%s", w.class)
	}
	fmt.Fprintln(out)
	for _, e := range w.attrs.entries() {
		fmt.Fprintf(out, "%s  %s=%q\n", indent, e.key, e.value)
	}
	for c := w.firstChild; c != nil; c = c.nextSibling {
		c.Dump(out, depth+1)
	}
}
