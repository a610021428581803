package stfl

import "strconv"

// kv is one attribute entry: a key, a value, an optional symbolic
// name, a process-unique id, and the widget that owns it. Entries form
// a singly linked, newest-first list per widget.
type kv struct {
	id    int64
	key   string
	value string
	name  string
	owner *Widget
	next  *kv
}

// attrStore is one widget's attribute store: an ordered mapping of
// keys to values with at most one entry per key (invariant 5).
type attrStore struct {
	head *kv
}

// set replaces the value of an existing key in place (preserving its
// id and position), or prepends a new entry, newest-first.
func (s *attrStore) set(key, value string) *kv {
	for e := s.head; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return e
		}
	}
	e := &kv{id: nextID(), key: key, value: value, next: s.head}
	s.head = e
	return e
}

// get performs the direct (non-cascading) linear scan by key.
func (s *attrStore) get(key string) (string, bool) {
	for e := s.head; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// setNamed assigns a symbolic name to the entry for key, creating the
// entry if it doesn't exist yet.
func (s *attrStore) setNamed(key, value, name string) *kv {
	e := s.set(key, value)
	e.name = name
	return e
}

// findByName returns the entry in this store with the given name, if any.
func (s *attrStore) findByName(name string) *kv {
	if name == "" {
		return nil
	}
	for e := s.head; e != nil; e = e.next {
		if e.name == name {
			return e
		}
	}
	return nil
}

// findKVByName searches w's own attribute store first, then recurses
// into children pre-order, for the first kv entry whose symbolic name
// matches. This is the kv-entry-name lookup (distinct from FindByName,
// which matches a widget's own name): an entry is found by its own
// .name field wherever in the subtree it lives.
func (w *Widget) findKVByName(name string) *kv {
	if name == "" {
		return nil
	}
	if e := w.attrs.findByName(name); e != nil {
		return e
	}
	for c := w.firstChild; c != nil; c = c.nextSibling {
		if e := c.findKVByName(name); e != nil {
			return e
		}
	}
	return nil
}

// entries returns the store's entries in insertion order (oldest
// first), used by Widget.Dump for stable, readable output even though
// the live list is stored newest-first.
func (s *attrStore) entries() []*kv {
	var rev []*kv
	for e := s.head; e != nil; e = e.next {
		rev = append(rev, e)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Get performs the direct (non-cascading) attribute lookup on w,
// returning def if the key is unset.
func (w *Widget) Get(key, def string) string {
	if v, ok := w.attrs.get(key); ok {
		return v
	}
	return def
}

// Set replaces w's value for key (or creates it), never cascading.
func (w *Widget) Set(key, value string) {
	e := w.attrs.set(key, value)
	e.owner = w
}

// SetNamed is Set plus tagging the entry with a symbolic name, so it
// can later be found anywhere in the subtree by SetByName/GetByName
// regardless of which widget holds it or what its key is.
func (w *Widget) SetNamed(key, value, name string) {
	e := w.attrs.setNamed(key, value, name)
	e.owner = w
}

// GetCascade is the cascading attribute lookup. Given a bare key K, it
// first tries a direct (non-cascading) lookup on w
// (short-circuiting the cascade); failing that, it forms the three
// candidate keys
//
//	@<class>#<K>   (if w has a class)
//	@<type>#<K>
//	@<K>
//
// and walks from w up through its ancestors, trying all three
// candidates at each widget in that priority order, returning the
// first hit. def is returned if nothing matches up to the root.
func (w *Widget) GetCascade(key, def string) string {
	if v, ok := w.attrs.get(key); ok {
		return v
	}
	var candidates []string
	if w.class != "" {
		candidates = append(candidates, "@"+w.class+"#"+key)
	}
	if w.typ != nil {
		candidates = append(candidates, "@"+w.typ.Name+"#"+key)
	}
	candidates = append(candidates, "@"+key)

	for cur := w; cur != nil; cur = cur.parent {
		for _, c := range candidates {
			if v, ok := cur.attrs.get(c); ok {
				return v
			}
		}
	}
	return def
}

// GetCascadeInt parses the cascaded value of key as a decimal integer.
// An empty value or parse failure returns def rather than raising an
// error.
func (w *Widget) GetCascadeInt(key string, def int) int {
	v := w.GetCascade(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// SetByName searches w's subtree (pre-order, own entries first) for a
// kv entry with the given symbolic name and replaces its value.
// Reports whether such an entry was found; unlike Set, it never
// creates one.
func (w *Widget) SetByName(name, value string) bool {
	e := w.findKVByName(name)
	if e == nil {
		return false
	}
	e.value = value
	return true
}

// GetByName searches w's subtree for a kv entry with the given
// symbolic name and returns its value, or def if no such entry exists.
func (w *Widget) GetByName(name, def string) string {
	e := w.findKVByName(name)
	if e == nil {
		return def
	}
	return e.value
}

// Displayable reports whether w's cascaded .display attribute is
// non-zero (default 1).
func (w *Widget) Displayable() bool {
	return w.GetCascadeInt(".display", 1) != 0
}

// Focusable reports whether w is a focus candidate: allow_focus is a
// type property, can_focus is an author override, and .display gates
// visibility. w is focusable iff allow_focus is set and its resolved
// can_focus attribute is non-zero and its resolved .display is
// non-zero.
func (w *Widget) Focusable() bool {
	if !w.allowFocus {
		return false
	}
	if w.GetCascadeInt("can_focus", 1) == 0 {
		return false
	}
	return w.Displayable()
}

// GetIntByName is GetByName with decimal-integer parsing: an empty
// value, a missing entry, or a parse failure all return def.
func (w *Widget) GetIntByName(name string, def int) int {
	e := w.findKVByName(name)
	if e == nil || e.value == "" {
		return def
	}
	n, err := strconv.Atoi(e.value)
	if err != nil {
		return def
	}
	return n
}

// FindByName searches w and its entire subtree, pre-order, for the
// first widget whose name matches.
func (w *Widget) FindByName(name string) *Widget {
	if w.name == name {
		return w
	}
	for c := w.firstChild; c != nil; c = c.nextSibling {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}
