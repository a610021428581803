package stfl

import "github.com/chazu/stfl/surface"

// KeyInput is the decoded keystroke handed to a widget's process
// operation.
type KeyInput struct {
	Name    string // the symbolic event name
	Ch      rune
	FuncKey bool
}

// WidgetOps is the capability set a widget type may implement, each of
// its seven hooks optional; the engine simply skips a nil one.
type WidgetOps struct {
	// Init allocates internal state, called immediately after creation.
	Init func(w *Widget)
	// Done releases internal state, called before destruction.
	Done func(w *Widget)
	// Enter is called when focus transitions onto the widget.
	Enter func(w *Widget)
	// Leave is called when focus transitions off the widget.
	Leave func(w *Widget)
	// Prepare computes w.minW/minH from its children (bottom-up pass).
	Prepare func(w *Widget)
	// Draw paints w and its children into win, which covers w's
	// assigned rectangle (top-down pass).
	Draw func(w *Widget, win surface.Window)
	// Process handles a keystroke, returning whether it was consumed.
	Process func(w *Widget, key KeyInput) bool
}

// WidgetType is one entry in the registry: a type name plus its
// capability set and whether instances are focus candidates by
// default — allow_focus is a type property, not a per-widget one.
type WidgetType struct {
	Name       string
	AllowFocus bool
	Ops        WidgetOps
}

// registry is the fixed ordered list of known widget types; factory
// lookup compares the requested name against each entry in order.
var registry []*WidgetType

// RegisterType adds t to the registry. Types are typically registered
// from init() functions in packages that define widget behaviors
// (e.g. the widgets package's box/label/button/checkbox/textinput).
func RegisterType(t *WidgetType) {
	registry = append(registry, t)
}

// lookupType performs the factory's linear scan by name.
func lookupType(name string) *WidgetType {
	for _, t := range registry {
		if t.Name == name {
			return t
		}
	}
	return nil
}
