package fdt

import "strings"

// NodeIterator is satisfied by every node-producing iterator in this
// package (Nodes, Subnodes, Children, and the filter adaptors below),
// so the filter combinators compose over any of them without knowing
// which kind of traversal produced their input.
type NodeIterator interface {
	Next() (Node, bool)
}

// NameFilter yields only the nodes of an upstream iterator whose
// HasName(name) holds.
type NameFilter struct {
	up   NodeIterator
	name string
}

// Next returns the next matching node, or (Node{}, false).
func (f *NameFilter) Next() (Node, bool) {
	for {
		n, ok := f.up.Next()
		if !ok {
			return Node{}, false
		}
		if n.HasName(f.name) {
			return n, true
		}
	}
}

// CompatFilter yields only the nodes of an upstream iterator whose
// IsCompatibleWith(value) holds.
type CompatFilter struct {
	up    NodeIterator
	value string
}

// Next returns the next matching node, or (Node{}, false).
func (f *CompatFilter) Next() (Node, bool) {
	for {
		n, ok := f.up.Next()
		if !ok {
			return Node{}, false
		}
		if n.IsCompatibleWith(f.value) {
			return n, true
		}
	}
}

// PropertyFilter yields only the nodes of an upstream iterator that
// have a property named name.
type PropertyFilter struct {
	up   NodeIterator
	name string
}

// Next returns the next matching node, or (Node{}, false).
func (f *PropertyFilter) Next() (Node, bool) {
	for {
		n, ok := f.up.Next()
		if !ok {
			return Node{}, false
		}
		if _, ok := n.Property(f.name); ok {
			return n, true
		}
	}
}

// WithValue chains a value comparison onto a PropertyFilter: the
// combined filter yields nodes that have the property and whose value
// equals match's judgment.
func (f *PropertyFilter) WithValue(match func(Property) bool) *PropertyValueFilter {
	return &PropertyValueFilter{up: f.up, name: f.name, match: match}
}

// WithValueU32 is a WithValue specialized for u32-valued properties,
// the common case (phandle, #address-cells, and similar).
func (f *PropertyFilter) WithValueU32(v uint32) *PropertyValueFilter {
	return f.WithValue(func(p Property) bool { return p.IsEqualU32(v) })
}

// WithValueString is a WithValue specialized for string-valued properties.
func (f *PropertyFilter) WithValueString(v string) *PropertyValueFilter {
	return f.WithValue(func(p Property) bool { return p.IsEqualString(v) })
}

// PropertyValueFilter yields nodes with a named property whose value
// satisfies match. It fuses the presence check and the value check
// into a single property scan, rather than scanning a node's
// properties twice — the fused-scan optimization spec.md §9 leaves
// open is implemented here.
type PropertyValueFilter struct {
	up    NodeIterator
	name  string
	match func(Property) bool
}

// Next returns the next matching node, or (Node{}, false).
func (f *PropertyValueFilter) Next() (Node, bool) {
	for {
		n, ok := f.up.Next()
		if !ok {
			return Node{}, false
		}
		p, ok := n.Property(f.name)
		if ok && f.match(p) {
			return n, true
		}
	}
}

// PathFilter is the stateful walker described in spec.md §4.6: it
// matches a slash-delimited path against any node-producing traversal,
// tracking how many path segments have matched so far. Segment indices
// are relative to base (the traversal's starting depth), since the
// wrapped iterator's nodes carry absolute tree depths, not depths
// relative to the node the traversal started from. A path starting
// with "/" begins with an empty segment, which matches only the root
// node (name ""); this requires up to be a full-tree traversal that
// actually yields the root — a *Nodes built with NewNodes(..., 0), not
// a *Subnodes (which never yields the node it was derived from).
type PathFilter struct {
	up       NodeIterator
	segs     []string
	base     int
	consumed int
	done     bool
}

// Next returns the node the path denotes, or (Node{}, false) if no
// remaining node in the traversal matches. With no address part in a
// segment, every node with a matching base name at that depth matches —
// callers wanting a single unique node should call Next once.
func (f *PathFilter) Next() (Node, bool) {
	if f.done {
		return Node{}, false
	}
	for {
		n, ok := f.up.Next()
		if !ok {
			f.done = true
			return Node{}, false
		}
		rel := n.depth - f.base
		switch {
		case rel == f.consumed:
			if f.consumed >= len(f.segs) {
				continue
			}
			curr := f.segs[f.consumed]
			if n.HasName(curr) || curr == "*" {
				if f.consumed+1 < len(f.segs) {
					f.consumed++
					continue
				}
				return n, true
			}
		case rel < f.consumed:
			f.consumed = rel
		}
		// rel > consumed: too deep for the currently-matched prefix;
		// skip and keep waiting for the traversal to back out.
	}
}

// WithName returns a NameFilter over it that yields nodes matching name.
func WithName(it NodeIterator, name string) *NameFilter {
	return &NameFilter{up: it, name: name}
}

// CompatibleWith returns a CompatFilter over it.
func CompatibleWith(it NodeIterator, value string) *CompatFilter {
	return &CompatFilter{up: it, value: value}
}

// WithProperty returns a PropertyFilter over it.
func WithProperty(it NodeIterator, name string) *PropertyFilter {
	return &PropertyFilter{up: it, name: name}
}

// WithPhandle consumes it and returns the first node whose phandle
// property equals phandle, or (Node{}, false).
func WithPhandle(it NodeIterator, phandle uint32) (Node, bool) {
	f := WithProperty(it, "phandle").WithValueU32(phandle)
	return f.Next()
}

// WithPath returns a PathFilter over it, resolving path against nodes
// starting at depth base (it must begin yielding nodes at that depth).
func WithPath(it NodeIterator, base int, path string) *PathFilter {
	return &PathFilter{up: it, segs: strings.Split(path, "/"), base: base}
}

// WithName returns a NameFilter over n's remaining items.
func (n *Nodes) WithName(name string) *NameFilter { return WithName(n, name) }

// CompatibleWith returns a CompatFilter over n's remaining items.
func (n *Nodes) CompatibleWith(value string) *CompatFilter { return CompatibleWith(n, value) }

// WithProperty returns a PropertyFilter over n's remaining items.
func (n *Nodes) WithProperty(name string) *PropertyFilter { return WithProperty(n, name) }

// WithPhandle consumes n and returns the first node with the given
// phandle, or (Node{}, false).
func (n *Nodes) WithPhandle(phandle uint32) (Node, bool) { return WithPhandle(n, phandle) }

// WithPath returns the stateful path-matching filter described in
// spec.md §4.6, consuming n. Because n starts at its own startDepth
// (0 for FDT.Nodes(), the only public full-tree traversal), an
// absolute path — one beginning with "/", whose first segment is
// empty — can match the root node here, unlike on a *Subnodes.
func (n *Nodes) WithPath(path string) *PathFilter { return WithPath(n, n.startDepth, path) }

// WithName returns a NameFilter over s's remaining items.
func (s *Subnodes) WithName(name string) *NameFilter { return WithName(s, name) }

// CompatibleWith returns a CompatFilter over s's remaining items.
func (s *Subnodes) CompatibleWith(value string) *CompatFilter { return CompatibleWith(s, value) }

// WithProperty returns a PropertyFilter over s's remaining items.
func (s *Subnodes) WithProperty(name string) *PropertyFilter { return WithProperty(s, name) }

// WithPhandle consumes s and returns the first node with the given
// phandle, or (Node{}, false).
func (s *Subnodes) WithPhandle(phandle uint32) (Node, bool) { return WithPhandle(s, phandle) }

// WithPath returns the stateful path-matching filter described in
// spec.md §4.6, consuming s. s never yields the node it was derived
// from, so an absolute ("/"-prefixed) path cannot resolve through this
// method — use FDT.Nodes's WithPath for that.
func (s *Subnodes) WithPath(path string) *PathFilter {
	return WithPath(s, s.minDepth, path)
}

// WithName returns a NameFilter over c's remaining items.
func (c *Children) WithName(name string) *NameFilter { return WithName(c, name) }

// CompatibleWith returns a CompatFilter over c's remaining items.
func (c *Children) CompatibleWith(value string) *CompatFilter { return CompatibleWith(c, value) }

// WithName further narrows f by name.
func (f *NameFilter) WithName(name string) *NameFilter { return WithName(f, name) }

// CompatibleWith further narrows f.
func (f *NameFilter) CompatibleWith(value string) *CompatFilter { return CompatibleWith(f, value) }

// WithProperty further narrows f.
func (f *NameFilter) WithProperty(name string) *PropertyFilter { return WithProperty(f, name) }

// WithPhandle consumes f.
func (f *NameFilter) WithPhandle(phandle uint32) (Node, bool) { return WithPhandle(f, phandle) }

// WithName further narrows f.
func (f *CompatFilter) WithName(name string) *NameFilter { return WithName(f, name) }

// WithProperty further narrows f.
func (f *CompatFilter) WithProperty(name string) *PropertyFilter { return WithProperty(f, name) }
