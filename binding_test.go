package stfl

import "testing"

func TestAutobindFallback(t *testing.T) {
	if lookupType("bindingtest_hbox") == nil {
		RegisterType(&WidgetType{Name: "bindingtest_hbox"})
	}
	w := NewWidget("bindingtest_hbox")

	name, matched := MatchBinding(w, KeyInput{Name: "LEFT"}, "left", "LEFT")
	if !matched || name != "LEFT" {
		t.Fatalf("expected autobind fallback to match LEFT, got matched=%v name=%q", matched, name)
	}

	w.Set("autobind", "0")
	_, matched = MatchBinding(w, KeyInput{Name: "LEFT"}, "left", "LEFT")
	if matched {
		t.Fatalf("autobind=0 should disable the auto-description fallback")
	}
}

func TestBindCustomOverridesAutobind(t *testing.T) {
	if lookupType("bindingtest_hbox") == nil {
		RegisterType(&WidgetType{Name: "bindingtest_hbox"})
	}
	w := NewWidget("bindingtest_hbox")
	w.Set("bind_left", "H")

	_, matched := MatchBinding(w, KeyInput{Name: "LEFT"}, "left", "LEFT")
	if matched {
		t.Fatalf("a custom bind_left should replace, not add to, the auto-description")
	}
	_, matched = MatchBinding(w, KeyInput{Name: "H"}, "left", "LEFT")
	if !matched {
		t.Fatalf("expected the custom bind_left token H to match")
	}
}

func TestDoubleStarRetriesAutoDescription(t *testing.T) {
	if lookupType("bindingtest_hbox") == nil {
		RegisterType(&WidgetType{Name: "bindingtest_hbox"})
	}
	w := NewWidget("bindingtest_hbox")
	w.Set("bind_left", "X **")

	_, matched := MatchBinding(w, KeyInput{Name: "X"}, "left", "LEFT")
	if !matched {
		t.Fatalf("expected custom token X to match directly")
	}
	_, matched = MatchBinding(w, KeyInput{Name: "LEFT"}, "left", "LEFT")
	if !matched {
		t.Fatalf("** in the custom description should authorize falling back to the auto-description")
	}
	_, matched = MatchBinding(w, KeyInput{Name: "**"}, "left", "LEFT")
	if matched {
		t.Fatalf("the literal ** token itself must never match a keystroke")
	}
}

func TestDoubleStarRetriesEmptyDescriptionWhenAutobindDisabled(t *testing.T) {
	if lookupType("bindingtest_hbox") == nil {
		RegisterType(&WidgetType{Name: "bindingtest_hbox"})
	}
	w := NewWidget("bindingtest_hbox")
	w.Set("bind_left", "X **")
	w.Set("autobind", "0")

	_, matched := MatchBinding(w, KeyInput{Name: "X"}, "left", "LEFT")
	if !matched {
		t.Fatalf("expected custom token X to match directly regardless of autobind")
	}
	_, matched = MatchBinding(w, KeyInput{Name: "LEFT"}, "left", "LEFT")
	if matched {
		t.Fatalf("autobind=0 should empty the auto-description for the ** retry too, not just the initial fallback")
	}
}
