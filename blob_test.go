package fdt

import (
	"encoding/binary"
	"testing"
)

// truncatedVersionedHeader builds a 30-byte buffer with a valid magic
// and a version/last_comp_version claiming boot_cpuid_phys,
// size_dt_strings, and size_dt_struct all exist, but a totalsize far
// too small to actually hold any of them.
func truncatedVersionedHeader() []byte {
	buf := make([]byte, 30)
	binary.BigEndian.PutUint32(buf[0:4], Magic)
	binary.BigEndian.PutUint32(buf[4:8], uint32(len(buf))) // totalsize
	binary.BigEndian.PutUint32(buf[8:12], 28)              // off_dt_struct
	binary.BigEndian.PutUint32(buf[12:16], 28)             // off_dt_strings
	binary.BigEndian.PutUint32(buf[16:20], 28)             // off_mem_rsvmap
	binary.BigEndian.PutUint32(buf[20:24], 17)             // version
	binary.BigEndian.PutUint32(buf[24:28], 16)             // last_comp_version
	return buf
}

func TestNewRejectsTotalSizeTooSmallForVersionedFields(t *testing.T) {
	_, err := New(truncatedVersionedHeader())
	if err != ErrTruncated {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestHeaderVersionedAccessorsNeverIndexOutOfRange(t *testing.T) {
	h := NewHeader(truncatedVersionedHeader())
	if _, ok := h.BootCpuidPhys(); ok {
		t.Fatal("expected BootCpuidPhys absent for a too-short buffer")
	}
	if _, ok := h.SizeDtStrings(); ok {
		t.Fatal("expected SizeDtStrings absent for a too-short buffer")
	}
	if _, ok := h.SizeDtStruct(); ok {
		t.Fatal("expected SizeDtStruct absent for a too-short buffer")
	}
}
