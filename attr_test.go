package stfl

import "testing"

func newLeaf(t *testing.T, typeName string) *Widget {
	t.Helper()
	if lookupType(typeName) == nil {
		RegisterType(&WidgetType{Name: typeName, AllowFocus: true})
	}
	w := NewWidget(typeName)
	if w == nil {
		t.Fatalf("NewWidget(%q) returned nil", typeName)
	}
	return w
}

func TestAttributeRoundTrip(t *testing.T) {
	w := newLeaf(t, "attrtest_leaf")
	w.Set("color", "red")
	if got := w.Get("color", ""); got != "red" {
		t.Fatalf("Get(color) = %q, want %q", got, "red")
	}
}

func TestAttributeSetReplacesInPlace(t *testing.T) {
	w := newLeaf(t, "attrtest_leaf")
	w.Set("color", "red")
	first := w.attrs.head
	w.Set("color", "blue")
	if w.attrs.head != first {
		t.Fatalf("Set on existing key should update in place, not prepend a new entry")
	}
	if got := w.Get("color", ""); got != "blue" {
		t.Fatalf("Get(color) = %q, want %q", got, "blue")
	}
}

// TestCascadePrecedence builds ancestors A (child B, child leaf).
// Setting @<typeof-leaf>#color=red on B and @color=blue on A causes
// leaf's cascaded get of color to yield red; removing the first causes
// blue; removing both yields the caller's default.
func TestCascadePrecedence(t *testing.T) {
	a := newLeaf(t, "attrtest_a")
	b := newLeaf(t, "attrtest_b")
	leaf := newLeaf(t, "attrtest_leaf")
	a.AppendChild(b)
	b.AppendChild(leaf)

	b.Set("@attrtest_leaf#color", "red")
	a.Set("@color", "blue")

	if got := leaf.GetCascade("color", "default"); got != "red" {
		t.Fatalf("GetCascade(color) = %q, want %q (type-qualified on B should win)", got, "red")
	}

	// Remove the type-qualified entry on B: falls through to A's bare @color.
	b.attrs.head = nil
	if got := leaf.GetCascade("color", "default"); got != "blue" {
		t.Fatalf("GetCascade(color) = %q, want %q (bare cascade on A)", got, "blue")
	}

	a.attrs.head = nil
	if got := leaf.GetCascade("color", "default"); got != "default" {
		t.Fatalf("GetCascade(color) = %q, want caller default %q", got, "default")
	}
}

func TestCascadeDirectShortCircuits(t *testing.T) {
	a := newLeaf(t, "attrtest_a")
	leaf := newLeaf(t, "attrtest_leaf")
	a.AppendChild(leaf)

	a.Set("@color", "blue")
	leaf.Set("color", "green") // direct, non-cascading set on leaf itself

	if got := leaf.GetCascade("color", "default"); got != "green" {
		t.Fatalf("direct attribute on leaf should short-circuit the cascade, got %q", got)
	}
}

func TestCascadeIntParseFailureReturnsDefault(t *testing.T) {
	w := newLeaf(t, "attrtest_leaf")
	w.Set("count", "not-a-number")
	if got := w.GetCascadeInt("count", 42); got != 42 {
		t.Fatalf("GetCascadeInt on unparsable value = %d, want default 42", got)
	}
	w.Set("count", "")
	if got := w.GetCascadeInt("count", 42); got != 42 {
		t.Fatalf("GetCascadeInt on empty value = %d, want default 42", got)
	}
}

func TestFindByNameSearchesSubtree(t *testing.T) {
	root := newLeaf(t, "attrtest_a")
	child := newLeaf(t, "attrtest_b")
	grandchild := newLeaf(t, "attrtest_leaf")
	root.AppendChild(child)
	child.AppendChild(grandchild)
	grandchild.SetName("target")

	found := root.FindByName("target")
	if found != grandchild {
		t.Fatalf("FindByName did not locate the named grandchild")
	}
	if root.FindByName("nope") != nil {
		t.Fatalf("FindByName should return nil for an unknown name")
	}
}

// TestKVEntryByNameSearchesWholeSubtree builds root (child with a
// grandchild carrying a named kv entry) and checks that SetByName and
// GetByName find the entry by its own symbolic name, regardless of
// which widget holds it or what key it's stored under — not by any
// widget's name.
func TestKVEntryByNameSearchesWholeSubtree(t *testing.T) {
	root := newLeaf(t, "attrtest_a")
	child := newLeaf(t, "attrtest_b")
	grandchild := newLeaf(t, "attrtest_leaf")
	root.AppendChild(child)
	child.AppendChild(grandchild)

	grandchild.SetNamed("color", "red", "accent")

	if got := root.GetByName("accent", "default"); got != "red" {
		t.Fatalf("GetByName(accent) = %q, want %q", got, "red")
	}
	if ok := root.SetByName("accent", "blue"); !ok {
		t.Fatalf("SetByName(accent) should find the entry named by a descendant")
	}
	if got := grandchild.Get("color", ""); got != "blue" {
		t.Fatalf("SetByName should update the located entry in place, got %q", got)
	}
	if ok := root.SetByName("nope", "x"); ok {
		t.Fatalf("SetByName should report false for an unknown symbolic name, not create an entry")
	}
	if got := root.GetByName("nope", "fallback"); got != "fallback" {
		t.Fatalf("GetByName(nope) = %q, want caller default %q", got, "fallback")
	}
}

func TestWidgetAndKVIDsAreUnique(t *testing.T) {
	seen := map[int64]bool{}
	w1 := newLeaf(t, "attrtest_leaf")
	w2 := newLeaf(t, "attrtest_leaf")
	w1.Set("a", "1")
	w1.Set("b", "2")
	ids := []int64{w1.id, w2.id, w1.attrs.head.id, w1.attrs.head.next.id}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d among widgets/kv entries", id)
		}
		seen[id] = true
	}
}
