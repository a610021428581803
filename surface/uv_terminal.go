package surface

import (
	"strings"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/screen"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"

	"github.com/chazu/stfl/style"
)

// terminalCellWriter is satisfied by both *uv.Terminal and
// *screen.Buffer — it lets windows target the real screen or an
// off-screen probe buffer identically.
type terminalCellWriter interface {
	SetCell(x, y int, c *uv.Cell)
}

// uvTerminal is the production Surface, built on ultraviolet: raw mode,
// the alternate screen, cell writes and keystroke decode via
// ultraviolet itself, TTY state snapshot/restore via x/term, and the
// focus-event mode and cursor-position escape sequences via x/ansi.
type uvTerminal struct {
	term     *uv.Terminal
	ttyState *term.State
	timeout  time.Duration
	events   <-chan uv.Event
}

// NewTerminal returns the ultraviolet-backed Surface implementation.
func NewTerminal() Surface {
	return &uvTerminal{timeout: -1}
}

func (t *uvTerminal) Init() error {
	t.term = uv.DefaultTerminal()
	t.ttyState = snapshotTTYState()
	if err := t.term.MakeRaw(); err != nil {
		return err
	}
	t.term.EnterAltScreen()
	writeTerminalSequences(t.term.WriteString, []string{
		ansi.SetModeFocusEvent,
	})
	t.events = t.term.Events()
	return nil
}

func (t *uvTerminal) Reset() {
	if t.term == nil {
		return
	}
	writeTerminalSequences(t.term.WriteString, []string{
		ansi.ResetModeFocusEvent,
	})
	t.term.ExitAltScreen()
	_ = t.term.Close()
	restoreTTYState(t.ttyState)
	t.term = nil
}

func (t *uvTerminal) ScreenRect() Rect {
	if t.term == nil {
		return Rect{}
	}
	w, h := t.term.Size()
	return Rect{X: 0, Y: 0, W: w, H: h}
}

func (t *uvTerminal) NewWindow(r Rect) (Window, error) {
	if t.term == nil {
		return nil, errFatalAlloc
	}
	return &cellWindow{rect: r, cells: t.term}, nil
}

func (t *uvTerminal) NewOffscreenWindow(r Rect) Window {
	buf := screen.NewBuffer(r.W, r.H)
	return &cellWindow{rect: r, cells: buf}
}

func (t *uvTerminal) SetTimeout(d time.Duration) {
	t.timeout = d
}

func (t *uvTerminal) ReadKey() (Key, error) {
	if t.events == nil {
		return Key{}, ErrTimeout
	}
	var timer *time.Timer
	var timeoutCh <-chan time.Time
	if t.timeout >= 0 {
		timer = time.NewTimer(t.timeout)
		timeoutCh = timer.C
		defer timer.Stop()
	}
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return Key{}, ErrTimeout
			}
			if kp, isKey := ev.(uv.KeyPressEvent); isKey {
				return decodeKeyPress(kp), nil
			}
			// Non-key events (resize, mouse, focus) are swallowed here;
			// the engine only consumes keystrokes through ReadKey.
		case <-timeoutCh:
			return Key{}, ErrTimeout
		}
	}
}

func (t *uvTerminal) MoveCursor(y, x int) {
	if t.term == nil {
		return
	}
	_, _ = t.term.WriteString(ansi.CursorPosition(x+1, y+1))
}

func (t *uvTerminal) Flush() {
	if t.term != nil {
		t.term.Display()
	}
}

// btabCode is a sentinel Key.Ch value (outside any valid rune/KeyCode
// range ultraviolet itself produces) used to carry "shift+tab" through
// as a function key distinct from plain tab, since ultraviolet reports
// it via its Mod bitfield rather than a separate KeyCode.
const btabCode rune = -2

func (t *uvTerminal) KeyName(code rune, funcKey bool) string {
	if funcKey {
		if code == btabCode {
			return "BTAB"
		}
		return strings.ToUpper(uv.KeyPressEvent{Code: uv.KeyCode(code)}.String())
	}
	return "UNKNOWN"
}

// decodeKeyPress turns an ultraviolet key event into the engine's
// (ch rune, isfunckey bool) pair consumed by key naming.
func decodeKeyPress(ev uv.KeyPressEvent) Key {
	if ev.Code == uv.KeyTab && ev.Mod&uv.ModShift != 0 {
		return Key{Ch: btabCode, FuncKey: true}
	}
	if len(ev.Text) > 0 {
		return Key{Ch: []rune(ev.Text)[0]}
	}
	switch ev.String() {
	case "enter":
		return Key{Ch: '\n'}
	case "tab":
		return Key{Ch: '\t'}
	case "space":
		return Key{Ch: ' '}
	case "escape":
		return Key{Ch: 0x1B}
	case "backspace":
		return Key{Ch: 0x7F}
	}
	return Key{Ch: rune(ev.Code), FuncKey: true}
}

func writeTerminalSequences(writeString func(string) (int, error), seqs []string) {
	for _, s := range seqs {
		_, _ = writeString(s)
	}
}

func snapshotTTYState() *term.State {
	fd := term.StdinFd()
	if !term.IsTerminal(fd) {
		return nil
	}
	st, err := term.GetState(fd)
	if err != nil {
		return nil
	}
	return st
}

func restoreTTYState(st *term.State) {
	if st == nil {
		return
	}
	_ = term.Restore(term.StdinFd(), st)
}
