package stfl

import (
	"errors"
	"sync"
	"time"

	"github.com/chazu/stfl/surface"
)

// Form runtime timeout values. Any non-negative value is a
// millisecond wait-for-key budget; TimeoutBlock (0) waits
// indefinitely instead of returning immediately.
const (
	TimeoutBlock      = 0
	TimeoutDrawOnly   = -1
	TimeoutDrainEvent = -2
	TimeoutProbe      = -3
)

// terminal setup is process-global: at most one Surface is ever
// Init'd, serialized by termMu across every Form that happens to
// share it. Production code reaches this through
// defaultSurfaceInstance(); tests construct a Form directly over their
// own fake Surface via NewFormWithSurface and are responsible for
// calling resetTerminalStateForTest between cases that care.
var (
	termMu          sync.Mutex
	termInitialized bool

	defaultSurfaceOnce sync.Once
	defaultSurfaceInst surface.Surface
)

func defaultSurfaceInstance() surface.Surface {
	defaultSurfaceOnce.Do(func() {
		defaultSurfaceInst = surface.NewTerminal()
	})
	return defaultSurfaceInst
}

// resetTerminalStateForTest clears the process-global "initialized"
// latch so a test using its own fake Surface can observe Init being
// called again. Not exported; production code never needs it because
// a process only ever tears its terminal down via Form.Reset/form-free.
func resetTerminalStateForTest() {
	termMu.Lock()
	defer termMu.Unlock()
	termInitialized = false
}

// Form wraps a root widget with the runtime state the step loop needs:
// the pending event FIFO, the current-focus id, the latched
// current-event slot, and the mutex serializing every operation on
// this form. The cursor hint is read from the focused widget on each
// step rather than stored here.
type Form struct {
	root *Widget

	events          eventQueue
	currentFocusID  int64
	currentEvent    string
	hasCurrentEvent bool

	mu   sync.Mutex
	surf surface.Surface
}

// NewForm wraps root in a Form using the process's shared terminal
// surface. root may be nil; the "missing root" fatal case is only
// raised when a step actually needs the tree.
func NewForm(root *Widget) *Form {
	return NewFormWithSurface(root, defaultSurfaceInstance())
}

// NewFormWithSurface is NewForm with an explicit Surface, used by
// tests to drive the runtime without a real terminal.
func NewFormWithSurface(root *Widget, surf surface.Surface) *Form {
	f := &Form{root: root, surf: surf}
	if root != nil {
		root.ownerForm = f
	}
	return f
}

// Root returns the form's root widget.
func (form *Form) Root() *Widget { return form.root }

// Set is the host-facing direct attribute set by key on the root.
func (form *Form) Set(key, value string) {
	form.mu.Lock()
	defer form.mu.Unlock()
	if form.root != nil {
		form.root.Set(key, value)
	}
}

// SetByName replaces the value of the kv entry named name, wherever in
// the tree it lives, subtree-searched from root. Reports whether such
// an entry was found; it never creates one.
func (form *Form) SetByName(name, value string) bool {
	form.mu.Lock()
	defer form.mu.Unlock()
	if form.root == nil {
		return false
	}
	return form.root.SetByName(name, value)
}

// Get is the direct attribute get by key on the root.
func (form *Form) Get(key, def string) string {
	form.mu.Lock()
	defer form.mu.Unlock()
	if form.root == nil {
		return def
	}
	return form.root.Get(key, def)
}

// GetByName gets the value of the kv entry named name, subtree-searched
// from root.
func (form *Form) GetByName(name, def string) string {
	form.mu.Lock()
	defer form.mu.Unlock()
	if form.root == nil {
		return def
	}
	return form.root.GetByName(name, def)
}

// GetIntByName is GetByName with decimal-integer parsing.
func (form *Form) GetIntByName(name string, def int) int {
	form.mu.Lock()
	defer form.mu.Unlock()
	if form.root == nil {
		return def
	}
	return form.root.GetIntByName(name, def)
}

// Event externally enqueues a symbolic event, delivered in enqueue
// order ahead of the step's own synthesized events occurring in the
// same step.
func (form *Form) Event(name string) {
	form.mu.Lock()
	defer form.mu.Unlock()
	form.events.push(name)
}

// Redraw marks the next step as requiring a full repaint. The current
// pipeline always lays out and paints on every non-drain, non-probe
// step, so this exists for host code expecting a Reset/Redraw/Event
// trio and for a future caching layout pass to hook into; it is a
// documented no-op today.
func (form *Form) Redraw() {
	form.mu.Lock()
	defer form.mu.Unlock()
}

// Reset tears down the terminal surface if it was initialized. A
// concurrent blocking read in RunOneStep observes this as the read
// aborting.
func (form *Form) Reset() {
	form.mu.Lock()
	defer form.mu.Unlock()
	termMu.Lock()
	defer termMu.Unlock()
	if !termInitialized {
		return
	}
	form.surf.Reset()
	termInitialized = false
}

// Free tears down the tree under the mutex — the form owns the root.
// Any latched event is discarded.
func (form *Form) Free() {
	form.mu.Lock()
	defer form.mu.Unlock()
	if form.root != nil {
		form.root.Destroy()
		form.root = nil
	}
	form.events = eventQueue{}
	form.currentEvent = ""
	form.hasCurrentEvent = false
}

// CurrentEvent returns the form's latched current-event slot, the
// value the host reads after each step.
func (form *Form) CurrentEvent() (string, bool) {
	form.mu.Lock()
	defer form.mu.Unlock()
	return form.currentEvent, form.hasCurrentEvent
}

// SwitchFocus moves focus to w if it is focusable, firing leave/enter.
// Reports whether the move happened.
func (form *Form) SwitchFocus(w *Widget) bool {
	form.mu.Lock()
	defer form.mu.Unlock()
	if w == nil || !w.Focusable() {
		return false
	}
	form.switchFocusLocked(w)
	return true
}

func (form *Form) switchFocusLocked(target *Widget) {
	old := form.focusedWidgetLocked()
	if old == target {
		return
	}
	if old != nil {
		old.LeaveFocus()
	}
	form.currentFocusID = target.id
	target.EnterFocus()
	Log("focus: %v -> widget id=%d", focusedID(old), target.id)
}

func focusedID(w *Widget) int64 {
	if w == nil {
		return 0
	}
	return w.id
}

// focusedWidgetLocked re-resolves the focused widget by id: the tree
// may have mutated while the mutex was released across a blocking
// read.
func (form *Form) focusedWidgetLocked() *Widget {
	if form.root == nil || form.currentFocusID == 0 {
		return nil
	}
	return form.root.FindByID(form.currentFocusID)
}

// checkSetFocusLocked is a pre-order scan that, for each widget with
// its one-shot setfocus flag set, moves focus to it and clears the
// flag.
func (form *Form) checkSetFocusLocked() {
	if form.root == nil {
		return
	}
	var walk func(w *Widget)
	walk = func(w *Widget) {
		if w.setfocus {
			form.currentFocusID = w.id
			w.setfocus = false
		}
		for c := w.firstChild; c != nil; c = c.nextSibling {
			walk(c)
		}
	}
	walk(form.root)
}

// reconcileFocusLocked ensures that, on each step, the focus id is
// reconciled to a focusable widget if possible, firing enter on first
// acquisition.
func (form *Form) reconcileFocusLocked() {
	form.checkSetFocusLocked()
	cur := form.focusedWidgetLocked()
	if cur != nil && cur.Focusable() {
		return
	}
	target := findFirstFocusable(form.root)
	if target == nil {
		form.currentFocusID = 0
		return
	}
	old := cur
	form.currentFocusID = target.id
	if old != nil {
		old.LeaveFocus()
	}
	target.EnterFocus()
}

// cursorHintAbsLocked translates the focused widget's preferred
// cursor cell (relative to its own rectangle) into absolute screen
// coordinates.
func (form *Form) cursorHintAbsLocked() (x, y int, ok bool) {
	fw := form.focusedWidgetLocked()
	if fw == nil {
		return 0, 0, false
	}
	cx, cy := fw.CursorHint()
	if cx == NoCursor || cy == NoCursor {
		return 0, 0, false
	}
	wx, wy, _, _ := fw.Rect()
	return wx + cx, wy + cy, true
}

func (form *Form) popEventLatchLocked() {
	if name, ok := form.events.pop(); ok {
		form.currentEvent = name
		form.hasCurrentEvent = true
	}
}

// ensureTerminalLocked brings up the process-global terminal surface
// at most once, under the process-wide terminal mutex rather than
// form.mu, since another form sharing the same surface must see the
// same latch.
func (form *Form) ensureTerminalLocked() {
	termMu.Lock()
	defer termMu.Unlock()
	if termInitialized {
		return
	}
	if err := form.surf.Init(); err != nil {
		fatalf("terminal allocation failure: %v", err)
	}
	termInitialized = true
}

// RunOneStep drives one iteration of the form's polling loop. timeout
// carries the overloaded semantics documented on the Timeout*
// constants: non-negative values (in milliseconds) wait for a
// keystroke, -1 lays out and draws without reading input, -2 dequeues
// the next pending event without redrawing, and -3 probes minimum
// sizes into a throwaway off-screen window.
func RunOneStep(form *Form, timeout int) {
	form.mu.Lock()
	form.currentEvent, form.hasCurrentEvent = "", false

	if timeout == TimeoutDrainEvent {
		form.popEventLatchLocked()
		form.mu.Unlock()
		return
	}

	if form.root == nil {
		form.mu.Unlock()
		fatalf("missing root widget")
	}

	form.ensureTerminalLocked()

	if timeout == TimeoutProbe {
		form.root.Prepare()
		rect := form.surf.ScreenRect()
		win := form.surf.NewOffscreenWindow(rect)
		form.root.SetRect(rect.X, rect.Y, rect.W, rect.H)
		form.root.Draw(win)
		form.mu.Unlock()
		return
	}

	form.root.Prepare()
	form.reconcileFocusLocked()
	rect := form.surf.ScreenRect()
	win, err := form.surf.NewWindow(rect)
	if err != nil {
		form.mu.Unlock()
		fatalf("terminal allocation failure: %v", err)
	}
	form.root.SetRect(rect.X, rect.Y, rect.W, rect.H)
	form.root.Draw(win)
	if x, y, ok := form.cursorHintAbsLocked(); ok {
		form.surf.MoveCursor(y, x)
	}
	form.surf.Flush()

	if timeout == TimeoutDrawOnly {
		form.mu.Unlock()
		return
	}

	// Release the mutex across the only suspension point in a step:
	// the blocking keystroke read. Another goroutine may enqueue
	// events, request reset, or free the form while we wait.
	if timeout == TimeoutBlock {
		form.surf.SetTimeout(-1)
	} else {
		form.surf.SetTimeout(time.Duration(timeout) * time.Millisecond)
	}
	form.mu.Unlock()

	key, readErr := form.surf.ReadKey()

	form.mu.Lock()
	defer form.mu.Unlock()

	if form.root == nil {
		// Freed while we were blocked reading; nothing left to dispatch to.
		return
	}

	focused := form.focusedWidgetLocked()

	if errors.Is(readErr, surface.ErrTimeout) {
		form.events.push("TIMEOUT")
		form.popEventLatchLocked()
		return
	}
	if readErr != nil {
		form.popEventLatchLocked()
		return
	}

	name := KeyName(key.Ch, key.FuncKey, form.surf)
	form.dispatchLocked(focused, KeyInput{Name: name, Ch: key.Ch, FuncKey: key.FuncKey})
	form.popEventLatchLocked()
}

// dispatchLocked walks from the focused widget upward, consulting
// on_<event>, then process, stopping at the first ancestor that
// consumes the key or declares itself modal; otherwise it falls back
// to global tab/back-tab cycling or enqueues the raw event name.
func (form *Form) dispatchLocked(focused *Widget, key KeyInput) {
	for anc := focused; anc != nil; anc = anc.parent {
		if handler := anc.Get("on_"+key.Name, ""); handler != "" {
			form.events.push(handler)
			return
		}
		if anc.GetCascadeInt("process", 1) != 0 && anc.ProcessKey(key) {
			return
		}
		if anc.GetCascadeInt("modal", 0) != 0 {
			form.events.push(key.Name)
			return
		}
	}

	switch key.Name {
	case "TAB":
		if next := globalForwardTab(form.root, focused); next != nil {
			form.switchFocusLocked(next)
			return
		}
	case "BTAB":
		if prev := globalBackTab(form.root, focused); prev != nil {
			form.switchFocusLocked(prev)
			return
		}
	}
	form.events.push(key.Name)
}
