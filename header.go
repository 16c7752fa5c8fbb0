package fdt

import "encoding/binary"

// Magic is the fixed 32-bit value every valid FDT blob begins with.
const Magic uint32 = 0xd00dfeed

// HeaderV1Size is the size in bytes of the fields every supported
// version carries: magic through last_comp_version.
const HeaderV1Size = 28

// HeaderSize is the size of the full fixed-layout header, including the
// version-dependent fields (boot_cpuid_phys, size_dt_strings,
// size_dt_struct) this package always expects a v16/v17 producer to emit.
const HeaderSize = 40

// Header is a typed, read-only view over the 28-to-40-byte fixed record
// at offset 0 of an FDT blob. All fields are big-endian.
type Header struct {
	raw []byte
}

// NewHeader wraps raw, which must be at least HeaderV1Size bytes, as a
// Header view. It performs no validation; call Validate separately.
func NewHeader(raw []byte) Header {
	return Header{raw: raw}
}

func (h Header) u32(off int) uint32 {
	return binary.BigEndian.Uint32(h.raw[off : off+4])
}

// MagicValue returns the raw magic field.
func (h Header) MagicValue() uint32 { return h.u32(0) }

// TotalSize returns the total size in bytes of the FDT blob.
func (h Header) TotalSize() uint32 { return h.u32(4) }

// OffDtStruct returns the byte offset of the structure block.
func (h Header) OffDtStruct() uint32 { return h.u32(8) }

// OffDtStrings returns the byte offset of the strings block.
func (h Header) OffDtStrings() uint32 { return h.u32(12) }

// OffMemRsvmap returns the byte offset of the memory reservation block.
func (h Header) OffMemRsvmap() uint32 { return h.u32(16) }

// Version returns the format version the producer wrote.
func (h Header) Version() uint32 { return h.u32(20) }

// LastCompVersion returns the lowest format version a consumer must
// understand to parse this blob.
func (h Header) LastCompVersion() uint32 { return h.u32(24) }

// BootCpuidPhys returns the physical id of the boot CPU. The second
// return value is false when Version() < 2, or when the blob is too
// short to actually carry the field despite what Version() claims.
func (h Header) BootCpuidPhys() (uint32, bool) {
	if h.Version() < 2 || !h.fits(28) {
		return 0, false
	}
	return h.u32(28), true
}

// SizeDtStrings returns the size of the strings block. The second
// return value is false when Version() < 3, or when the blob is too
// short to actually carry the field despite what Version() claims.
func (h Header) SizeDtStrings() (uint32, bool) {
	if h.Version() < 3 || !h.fits(32) {
		return 0, false
	}
	return h.u32(32), true
}

// SizeDtStruct returns the size of the structure block. The second
// return value is false when Version() < 17, or when the blob is too
// short to actually carry the field despite what Version() claims.
func (h Header) SizeDtStruct() (uint32, bool) {
	if h.Version() < 17 || !h.fits(36) {
		return 0, false
	}
	return h.u32(36), true
}

// fits reports whether a 4-byte field at off is within h.raw.
func (h Header) fits(off int) bool {
	return off+4 <= len(h.raw)
}

// Validate checks the magic number and the last_comp_version range.
// It does not check the version-gated fields (boot_cpuid_phys and
// similar) against the buffer length — at the point Validate is
// normally called, totalsize (and so the real buffer bound) is not yet
// known to be trustworthy; see ValidateSize, which NewBlob calls once
// totalsize has been confirmed to fit the supplied buffer.
func (h Header) Validate() error {
	if m := h.MagicValue(); m != Magic {
		return &MagicError{Got: m}
	}
	if v := h.LastCompVersion(); v < MinCompatVersion || v > MaxCompatVersion {
		return &VersionError{Got: v}
	}
	return nil
}

// ValidateSize checks that h.raw is long enough to hold every
// version-gated field Version() claims it carries. A producer that
// inflates version without inflating totalsize would otherwise pass
// Validate and only fail, by index-out-of-range, the first time a
// caller reached for one of those fields (BootCpuidPhys and similar).
// Callers must pass a Header built over the full, totalsize-bounded
// buffer, not just the first HeaderV1Size bytes.
func (h Header) ValidateSize() error {
	if h.Version() >= 2 && !h.fits(28) {
		return ErrTruncated
	}
	if h.Version() >= 3 && !h.fits(32) {
		return ErrTruncated
	}
	if h.Version() >= 17 && !h.fits(36) {
		return ErrTruncated
	}
	return nil
}
