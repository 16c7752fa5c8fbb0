package fdt

import "encoding/binary"

// ReserveMapEntry is one reserved physical memory region: the kernel
// must not allocate from [Address, Address+Size).
type ReserveMapEntry struct {
	Address uint64
	Size    uint64
}

// ReserveMap iterates pairs of big-endian u64 (address, size) starting
// at off_mem_rsvmap, terminating on the sentinel pair (0, 0).
type ReserveMap struct {
	raw  []byte
	off  int
	done bool
}

func newReserveMap(raw []byte) *ReserveMap {
	return &ReserveMap{raw: raw}
}

// Next returns the next reservation entry, or (ReserveMapEntry{},
// false) once the sentinel (0, 0) pair has been consumed.
func (it *ReserveMap) Next() (ReserveMapEntry, bool) {
	if it.done {
		return ReserveMapEntry{}, false
	}
	if it.off+16 > len(it.raw) {
		it.done = true
		return ReserveMapEntry{}, false
	}
	addr := binary.BigEndian.Uint64(it.raw[it.off : it.off+8])
	size := binary.BigEndian.Uint64(it.raw[it.off+8 : it.off+16])
	it.off += 16
	if addr == 0 && size == 0 {
		it.done = true
		return ReserveMapEntry{}, false
	}
	return ReserveMapEntry{Address: addr, Size: size}, true
}
