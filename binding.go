package stfl

import "strings"

// MatchBinding resolves and matches a widget's keystroke binding: the
// cascaded bind_<group> attribute, falling back to the type's own
// autobind description when bind_<group> is unset and autobind stays
// enabled. group names the binding ("left", "right", "up", "down",
// ...); autoDescription is the widget type's auto-bind default for
// that group.
//
// Returns the key's resolved event name and whether it matched either
// description.
func MatchBinding(w *Widget, key KeyInput, group, autoDescription string) (eventName string, matched bool) {
	eventName = key.Name

	// autobind=0 empties the auto-description entirely, including for
	// the "**" retry pass below — not just for the initial fallback.
	if w.GetCascadeInt("autobind", 1) == 0 {
		autoDescription = ""
	}

	desc := w.GetCascade("bind_"+group, autoDescription)

	if matchesToken(desc, eventName) {
		return eventName, true
	}

	// "**" anywhere in the custom description authorizes a second pass
	// over the (possibly now-empty) auto-description tokens. The "**"
	// token itself never matches.
	if containsToken(desc, "**") && matchesToken(autoDescription, eventName) {
		return eventName, true
	}

	return eventName, false
}

// matchesToken reports whether any whitespace-separated token of desc
// equals name exactly. The "**" token is never itself a match — it
// only authorizes a second pass over the auto-description elsewhere.
func matchesToken(desc, name string) bool {
	for _, tok := range strings.Fields(desc) {
		if tok == "**" {
			continue
		}
		if tok == name {
			return true
		}
	}
	return false
}

// containsToken reports whether tok is one of desc's whitespace-
// separated tokens.
func containsToken(desc, tok string) bool {
	for _, t := range strings.Fields(desc) {
		if t == tok {
			return true
		}
	}
	return false
}
