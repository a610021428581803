// Package surface is the terminal capability consumed by the stfl
// engine. It is the only place in this module that touches a real
// terminal: window creation, character-cell writes, color/attribute
// styling, cursor movement, and keystroke input with wide-character
// decoding. The engine never imports a terminal library directly; it
// depends only on the Surface interface below, so any terminal
// library that can satisfy it suffices.
//
// The production implementation wraps github.com/charmbracelet/ultraviolet,
// driving the terminal through raw mode, the alternate screen, and
// direct cell writes.
package surface

import (
	"errors"
	"time"

	"github.com/chazu/stfl/style"
)

// ErrTimeout is returned by ReadKey when the input wait expires without
// a keystroke. It is not a failure: the runtime turns this into a
// synthesized TIMEOUT event rather than propagating it.
var ErrTimeout = errors.New("surface: read timeout")

// Rect is a character-cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Key is one decoded keystroke: a wide character code plus whether it
// arrived as a terminal "function key" (arrows, F-keys, Home/End, ...)
// rather than a printable/control character.
type Key struct {
	Ch      rune
	FuncKey bool
}

// Surface is the capability the stfl engine requires from a terminal
// library. Implementations must be safe to drive from a single
// goroutine at a time; the engine itself serializes access via the
// Form mutex.
type Surface interface {
	// Init brings the terminal into raw mode: no echo, no newline
	// translation, keypad/function-key decoding on, default colors,
	// blank background. Must be idempotent-safe to call once per
	// process; the engine guarantees it is only invoked while
	// uninitialized.
	Init() error

	// Reset tears the terminal back down to cooked mode. Safe to call
	// even if Init was never called.
	Reset()

	// ScreenRect returns the current full-screen rectangle.
	ScreenRect() Rect

	// NewWindow creates a drawable window over the given rectangle.
	// A returned error (the terminal implementation returns one when it
	// was never initialized) is a fatal terminal allocation failure for
	// the engine.
	NewWindow(r Rect) (Window, error)

	// NewOffscreenWindow creates a window backed by an off-screen
	// buffer (never painted to the real terminal), used by the
	// timeout=-3 layout probe step.
	NewOffscreenWindow(r Rect) Window

	// SetTimeout sets the blocking-read timeout. A negative duration
	// means "block indefinitely".
	SetTimeout(d time.Duration)

	// ReadKey blocks (up to the configured timeout) for one keystroke.
	// Returns ErrTimeout if the timeout elapses first.
	ReadKey() (Key, error)

	// MoveCursor places the hardware cursor at the given cell,
	// relative to the full screen.
	MoveCursor(y, x int)

	// Flush pushes any buffered writes to the terminal.
	Flush()

	// KeyName maps a control-code rune to the terminal library's name
	// for it (e.g. "KEY_UP"), used as the fallback path in key naming
	// for control codes and non-ASCII function keys.
	KeyName(code rune, funcKey bool) string
}

// Window is one paintable rectangle, either the real screen or an
// off-screen probe buffer.
type Window interface {
	Rect() Rect
	Erase(st style.Style)
	PutChar(y, x int, ch rune, st style.Style)
	// PutString writes the first n runes of s at (y, x), clipped to
	// the window's width, and returns the number of runes it
	// consumed before running out of space.
	PutString(y, x int, s []rune, n int, st style.Style) int
	// Sub returns a Window for the sub-rectangle r, given in this
	// window's own local coordinates, backed by the same underlying
	// cells. Containers use this to hand each child a window scoped
	// to its own assigned rectangle during the draw pass.
	Sub(r Rect) Window
}
