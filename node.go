package fdt

import "strings"

// Node is a single FDT_BEGIN_NODE..FDT_END_NODE entity: a name (a Go
// string copy), a depth in the tree (root is 0), a properties cursor positioned
// right after the name and its alignment padding, and a subnodes cursor
// positioned right after all of this node's properties.
type Node struct {
	name     string
	props    StructReader
	subnodes StructReader
	depth    int
}

// Name returns the node's name, including the address part after '@'
// if present, but excluding the full path.
func (n Node) Name() string { return n.name }

// Depth returns the node's depth in the tree; the root is 0, its direct
// children are 1, and so on.
func (n Node) Depth() int { return n.depth }

// Properties returns an iterator over the node's own properties.
func (n Node) Properties() *Properties {
	return NewProperties(n.props)
}

// Subnodes returns an iterator, in depth-first preorder, over every
// descendant of n (children, grandchildren, ...).
func (n Node) Subnodes() *Subnodes {
	return &Subnodes{iter: Nodes{r: n.subnodes, depth: n.depth + 1}, minDepth: n.depth + 1}
}

// Children returns an iterator over n's direct children only.
func (n Node) Children() *Children {
	return &Children{sub: n.Subnodes()}
}

// HasName reports whether n's name matches q. If q contains an address
// part ('@' and anything after), both the base name and the address
// part must match; otherwise only the base name is compared, regardless
// of n's own address part.
func (n Node) HasName(q string) bool {
	nBase, nAddr, nHasAddr := splitAddr(n.name)
	qBase, qAddr, qHasAddr := splitAddr(q)
	if nBase != qBase {
		return false
	}
	if !qHasAddr {
		return true
	}
	return nHasAddr && nAddr == qAddr
}

func splitAddr(s string) (base, addr string, hasAddr bool) {
	if i := strings.IndexByte(s, '@'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// Property returns the first property named name, or (Property{}, false).
func (n Node) Property(name string) (Property, bool) {
	return n.Properties().WithName(name)
}

// Phandle returns the node's "phandle" property decoded as a u32, or
// (0, false) if the node has no such property.
func (n Node) Phandle() (uint32, bool) {
	p, ok := n.Property("phandle")
	if !ok {
		return 0, false
	}
	v, err := p.AsU32()
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsCompatibleWith reports whether n's "compatible" property contains s.
// Returns false if n has no "compatible" property.
func (n Node) IsCompatibleWith(s string) bool {
	p, ok := n.Property("compatible")
	if !ok {
		return false
	}
	sl, err := p.AsStringList()
	if err != nil {
		return false
	}
	return sl.Contains(s)
}

// AddressCells returns the "#address-cells" property value, defaulting
// to 2 if absent — the source library's default, preserved here per
// SPEC_FULL.md's resolution of the matching Open Question.
func (n Node) AddressCells() uint32 {
	return n.cellsOr("#address-cells", 2)
}

// SizeCells returns the "#size-cells" property value, defaulting to 2
// if absent, for the same reason as AddressCells.
func (n Node) SizeCells() uint32 {
	return n.cellsOr("#size-cells", 2)
}

func (n Node) cellsOr(name string, def uint32) uint32 {
	p, ok := n.Property(name)
	if !ok {
		return def
	}
	v, err := p.AsU32()
	if err != nil {
		return def
	}
	return v
}

// Nodes iterates a structure block in depth-first preorder, emitting
// one Node per FDT_BEGIN_NODE encountered at or below its starting
// depth. It is the root of every other node traversal in this package.
type Nodes struct {
	r          StructReader
	depth      int
	startDepth int
	err        error
	done       bool
}

// NewNodes wraps r as a Nodes iterator starting at the given depth
// (normally 0, for a fresh structure-block cursor).
func NewNodes(r StructReader, depth int) *Nodes {
	return &Nodes{r: r, depth: depth, startDepth: depth}
}

// Next returns the next node in depth-first preorder, or (Node{},
// false) once the structure block is exhausted or a structural error
// is encountered — see Err.
func (it *Nodes) Next() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	for {
		kind, err := it.r.Token()
		if err != nil {
			it.done, it.err = true, err
			return Node{}, false
		}
		switch kind {
		case TokenBeginNode:
			name, err := it.r.String()
			if err != nil {
				it.done, it.err = true, err
				return Node{}, false
			}
			it.r.Align(4)
			propsCursor := it.r.Clone()
			subCursor := it.r.Clone()
			if err := subCursor.SkipProps(); err != nil {
				it.done, it.err = true, err
				return Node{}, false
			}
			d := it.depth
			it.depth++
			it.r = subCursor
			return Node{name: name, props: propsCursor, subnodes: subCursor, depth: d}, true
		case TokenEndNode:
			if it.depth == 0 {
				err := &StructureError{Offset: it.r.Offset() - 4, Tag: tagEndNode}
				it.done, it.err = true, err
				return Node{}, false
			}
			it.depth--
		case TokenEnd:
			if it.depth != 0 {
				err := &StructureError{Offset: it.r.Offset() - 4, Tag: tagEnd}
				it.done, it.err = true, err
				return Node{}, false
			}
			it.done = true
			return Node{}, false
		case TokenProp:
			// A property encountered here belongs to the node that's
			// still open; SkipProps on the enclosing BeginNode already
			// accounted for it, so this path is only reached for a
			// structure block that starts mid-node, which callers of
			// NewNodes on a raw buffer should not do, or for a property
			// placed after a child node's FDT_END_NODE.
			err := &StructureError{Offset: it.r.Offset() - 4, Tag: tagProp}
			it.done, it.err = true, err
			return Node{}, false
		}
	}
}

// Err returns the error that terminated iteration, or nil if iteration
// has not ended or ended normally on FDT_END.
func (it *Nodes) Err() error { return it.err }

// Subnodes wraps a Nodes iterator and yields only nodes at or below a
// minimum depth, terminating as soon as the wrapped iterator would
// ascend above that depth.
type Subnodes struct {
	iter     Nodes
	minDepth int
	done     bool
}

// NewSubnodes wraps r, starting at depth, as a Subnodes iterator whose
// minimum depth is also depth.
func NewSubnodes(r StructReader, depth int) *Subnodes {
	return &Subnodes{iter: Nodes{r: r, depth: depth}, minDepth: depth}
}

// Next returns the next node at or below the minimum depth, or (Node{},
// false) once the subtree is exhausted. Once Next returns false it
// keeps returning false — the iterator is fused, even though the
// underlying cursor may have advanced past the subtree boundary.
func (it *Subnodes) Next() (Node, bool) {
	if it.done {
		return Node{}, false
	}
	n, ok := it.iter.Next()
	if !ok || n.depth < it.minDepth {
		it.done = true
		return Node{}, false
	}
	return n, true
}

// Err returns the underlying Nodes iterator's terminal error, if any.
func (it *Subnodes) Err() error { return it.iter.Err() }

// Children wraps a Subnodes iterator and yields only direct children —
// nodes whose depth equals the wrapped iterator's minimum depth.
type Children struct {
	sub *Subnodes
}

// Next returns the next direct child, or (Node{}, false) once exhausted.
// Fused: once false, Next keeps returning false.
func (it *Children) Next() (Node, bool) {
	want := it.sub.minDepth
	for {
		n, ok := it.sub.Next()
		if !ok {
			return Node{}, false
		}
		if n.depth == want {
			return n, true
		}
	}
}

// Err returns the underlying iterator's terminal error, if any.
func (it *Children) Err() error { return it.sub.Err() }
