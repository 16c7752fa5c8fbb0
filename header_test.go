package fdt

import "testing"

func TestHeaderValidateBadMagic(t *testing.T) {
	raw := make([]byte, HeaderV1Size)
	h := NewHeader(raw)
	var magicErr *MagicError
	err := h.Validate()
	if err == nil {
		t.Fatal("expected error for zeroed header")
	}
	if me, ok := err.(*MagicError); ok {
		magicErr = me
	} else {
		t.Fatalf("got %T, want *MagicError", err)
	}
	if magicErr.Got != 0 {
		t.Fatalf("got %+v", magicErr)
	}
}

func TestHeaderVersionGatedFields(t *testing.T) {
	raw := make([]byte, HeaderV1Size)
	raw[20], raw[21], raw[22], raw[23] = 0, 0, 0, 1 // version = 1
	h := NewHeader(raw)
	if _, ok := h.BootCpuidPhys(); ok {
		t.Fatal("expected BootCpuidPhys absent at version 1")
	}
	if _, ok := h.SizeDtStrings(); ok {
		t.Fatal("expected SizeDtStrings absent at version 1")
	}
	if _, ok := h.SizeDtStruct(); ok {
		t.Fatal("expected SizeDtStruct absent at version 1")
	}
}
