package fdt

import "testing"

func TestPropertyAsU32TooShort(t *testing.T) {
	p := Property{name: "reg", value: []byte{1, 2}}
	if _, err := p.AsU32(); err == nil {
		t.Fatal("expected error for short value")
	}
}

func TestPropertyIsEqualU32(t *testing.T) {
	p := Property{name: "phandle", value: []byte{0, 0, 0, 7}}
	if !p.IsEqualU32(7) {
		t.Fatal("expected IsEqualU32(7) to hold")
	}
	if p.IsEqualU32(8) {
		t.Fatal("did not expect IsEqualU32(8) to hold")
	}
}

func TestPropertyIsEqualBytes(t *testing.T) {
	p := Property{name: "reg", value: []byte{1, 2, 3}}
	if !p.IsEqualBytes([]byte{1, 2, 3}) {
		t.Fatal("expected equal")
	}
	if p.IsEqualBytes([]byte{1, 2}) {
		t.Fatal("expected unequal for differing length")
	}
}

func TestPropertiesNextTerminatesOnNonProp(t *testing.T) {
	structure := append(buildStruct(tagProp, 0, 0), buildStruct(tagEndNode)...)
	it := NewProperties(NewStructReader(structure, []byte{0}))
	if _, ok := it.Next(); !ok {
		t.Fatal("expected one property")
	}
	if _, ok := it.Next(); ok {
		t.Fatal("expected iteration to stop at the EndNode tag")
	}
	if it.Err() != nil {
		t.Fatalf("unexpected error on normal termination: %v", it.Err())
	}
}
