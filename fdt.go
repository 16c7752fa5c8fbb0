package fdt

import "strings"

// FDT is the public entry point for parsing a flattened device tree
// from an in-memory buffer. It is passive and single-shot: all
// traversal is lazy, and nothing is mutated or indexed ahead of time.
type FDT struct {
	blob Blob
}

// New validates buf as an FDT blob and returns a parser over it. buf
// must not be modified while the returned FDT or anything derived from
// it is in use — every byte slice this package hands back (property
// values among them) is a subrange of buf; names and string values are
// copies.
func New(buf []byte) (*FDT, error) {
	b, err := NewBlob(buf)
	if err != nil {
		return nil, err
	}
	return &FDT{blob: b}, nil
}

// BootCpuidPhys returns the physical id of the boot CPU. The second
// return value is false when the blob's version is below 2.
func (f *FDT) BootCpuidPhys() (uint32, bool) {
	return f.blob.Header().BootCpuidPhys()
}

// TotalSize returns the total size in bytes of the FDT blob.
func (f *FDT) TotalSize() uint32 {
	return f.blob.Header().TotalSize()
}

// Rsvmap returns an iterator over the reserved memory regions.
func (f *FDT) Rsvmap() *ReserveMap {
	return f.blob.Rsvmap()
}

// Nodes returns a root-level Nodes iterator over the tree, in
// depth-first preorder.
func (f *FDT) Nodes() *Nodes {
	return NewNodes(f.blob.StructReader(), 0)
}

// Phandle returns the node whose "phandle" property equals phandle, or
// (Node{}, false) if none exists. If multiple nodes share a phandle
// value, the first one encountered in preorder wins.
func (f *FDT) Phandle(phandle uint32) (Node, bool) {
	return f.Nodes().WithPhandle(phandle)
}

// Alias resolves an alias name (a property of the "/aliases" node) to
// the device path it names, or ("", false) if the "/aliases" node or
// the named alias doesn't exist. A single trailing NUL, if present, is
// trimmed from the property's value before it is returned — see
// SPEC_FULL.md's resolution of the matching Open Question.
func (f *FDT) Alias(name string) (string, bool) {
	aliases, ok := f.Nodes().WithPath("/aliases").Next()
	if !ok {
		return "", false
	}
	prop, ok := aliases.Property(name)
	if !ok {
		return "", false
	}
	path, err := prop.AsStr()
	if err != nil {
		return "", false
	}
	path = strings.TrimSuffix(path, "\x00")
	return path, true
}
