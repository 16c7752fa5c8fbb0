package fdt

import "testing"

func TestWithPropertyWithValueU32(t *testing.T) {
	tree := mustFDT(t)
	n, ok := tree.Nodes().WithProperty("reg").WithValueU32(0x1000).Next()
	if !ok {
		t.Fatal("expected a node with reg=0x1000")
	}
	if n.Name() != "serial@1000" {
		t.Fatalf("got %q", n.Name())
	}
}

func TestWithPropertyAbsent(t *testing.T) {
	tree := mustFDT(t)
	if _, ok := tree.Nodes().WithProperty("nonexistent-prop").Next(); ok {
		t.Fatal("did not expect a match")
	}
}

func TestNodeHasNameAddressMatching(t *testing.T) {
	n := Node{name: "serial@1000"}
	if !n.HasName("serial") {
		t.Fatal("base-name-only query should match regardless of address")
	}
	if !n.HasName("serial@1000") {
		t.Fatal("exact address should match")
	}
	if n.HasName("serial@2000") {
		t.Fatal("mismatched address should not match")
	}
}

func TestWithPathWildcardSegment(t *testing.T) {
	tree := mustFDT(t)
	root, _ := tree.Nodes().Next()
	n, ok := root.Subnodes().WithPath("cpus/*").Next()
	if !ok {
		t.Fatal("expected the wildcard to match the first cpu leaf")
	}
	if n.Name() != "cpu@0" {
		t.Fatalf("got %q", n.Name())
	}
}

func TestWithPathAbsoluteWildcardSegment(t *testing.T) {
	tree := mustFDT(t)
	n, ok := tree.Nodes().WithPath("/cpus/*").Next()
	if !ok {
		t.Fatal("expected the wildcard to match the first cpu leaf")
	}
	if n.Name() != "cpu@0" {
		t.Fatalf("got %q", n.Name())
	}
}
