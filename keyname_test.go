package stfl

import (
	"testing"
	"time"

	"github.com/chazu/stfl/surface"
)

// fakeKeynameSurface supplies only the KeyName fallback KeyName()
// consults; every other Surface method is an unused stub.
type fakeKeynameSurface struct{}

func (fakeKeynameSurface) Init() error                                   { return nil }
func (fakeKeynameSurface) Reset()                                        {}
func (fakeKeynameSurface) ScreenRect() surface.Rect                      { return surface.Rect{} }
func (fakeKeynameSurface) NewWindow(r surface.Rect) (surface.Window, error) {
	return nil, nil
}
func (fakeKeynameSurface) NewOffscreenWindow(r surface.Rect) surface.Window { return nil }
func (fakeKeynameSurface) SetTimeout(d time.Duration)                       {}
func (fakeKeynameSurface) ReadKey() (surface.Key, error)                   { return surface.Key{}, nil }
func (fakeKeynameSurface) MoveCursor(y, x int)                             {}
func (fakeKeynameSurface) Flush()                                          {}
func (fakeKeynameSurface) KeyName(code rune, funcKey bool) string {
	if !funcKey {
		return ""
	}
	switch code {
	case 3:
		return "KEY_F3"
	case 10:
		return "KEY_UP"
	}
	return ""
}

func TestKeyNaming(t *testing.T) {
	kn := fakeKeynameSurface{}
	cases := []struct {
		ch   rune
		fn   bool
		want string
	}{
		{'\t', false, "TAB"},
		{'\n', false, "ENTER"},
		{0x1B, false, "ESC"},
		{'A', false, "A"},
		{' ', false, "SPACE"},
		{0x7F, false, "BACKSPACE"},
		{3, true, "F3"},
		{0, true, "UNKNOWN"},
	}
	for _, c := range cases {
		got := KeyName(c.ch, c.fn, kn)
		if got != c.want {
			t.Errorf("KeyName(%q, %v) = %q, want %q", c.ch, c.fn, got, c.want)
		}
	}
}

func TestParseFunctionKeyNumber(t *testing.T) {
	cases := []struct {
		in string
		n  int
		ok bool
	}{
		{"f3", 3, true},
		{"F12", 12, true},
		{"KEY_F3", 3, true},
		{"up", 0, false},
		{"f", 0, false},
		{"f99", 0, false},
	}
	for _, c := range cases {
		n, ok := parseFunctionKeyNumber(c.in)
		if ok != c.ok || (ok && n != c.n) {
			t.Errorf("parseFunctionKeyNumber(%q) = (%d,%v), want (%d,%v)", c.in, n, ok, c.n, c.ok)
		}
	}
}
