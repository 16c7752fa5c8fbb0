package fdt

import (
	"encoding/binary"
	"testing"
)

func buildRsvmap(entries ...ReserveMapEntry) []byte {
	out := make([]byte, 16*(len(entries)+1))
	for i, e := range entries {
		binary.BigEndian.PutUint64(out[i*16:], e.Address)
		binary.BigEndian.PutUint64(out[i*16+8:], e.Size)
	}
	return out
}

func TestReserveMapMultipleEntries(t *testing.T) {
	raw := buildRsvmap(
		ReserveMapEntry{Address: 0x1000, Size: 0x100},
		ReserveMapEntry{Address: 0x2000, Size: 0x200},
	)
	it := newReserveMap(raw)
	var got []ReserveMapEntry
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, e)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Address != 0x1000 || got[1].Address != 0x2000 {
		t.Fatalf("got %+v", got)
	}
}

func TestReserveMapEmpty(t *testing.T) {
	it := newReserveMap(buildRsvmap())
	if _, ok := it.Next(); ok {
		t.Fatal("expected no entries for a sentinel-only map")
	}
}

func TestReserveMapTruncatedBuffer(t *testing.T) {
	it := newReserveMap([]byte{0, 0, 0, 0})
	if _, ok := it.Next(); ok {
		t.Fatal("expected no entries for a buffer too short to hold one")
	}
}
