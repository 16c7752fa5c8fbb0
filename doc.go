// Package fdt parses Flattened Device Tree (FDT / DTB) blobs: the binary
// format firmware hands early-boot kernels to describe hardware topology.
//
// The parser is read-only: every raw property value returned by this
// package is a subslice of the buffer passed to New, and nothing is
// mutated. Node names, property names, and string values are returned
// as Go strings, which are copies of the corresponding bytes.
// Traversal is exposed as a set of small, composable iterators —
// Nodes, Properties, Subnodes, Children — plus filter methods
// (WithName, WithPath, CompatibleWith, WithProperty, WithPhandle) that
// wrap an iterator in a lazy adaptor.
//
// A minimal walk looks like:
//
//	tree, err := fdt.New(blob)
//	if err != nil {
//		return err
//	}
//	cpus, ok := tree.Nodes().WithName("cpus").Next()
//	if !ok {
//		return errors.New("no cpus node")
//	}
//	children := cpus.Children()
//	for {
//		child, ok := children.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(child.Name())
//	}
//
// This package does not build or mutate device trees, does not resolve
// overlays, and does not maintain a phandle index; see the sibling
// internal/fdtbuild package (used only by this repository's own tests)
// for constructing synthetic blobs.
package fdt
