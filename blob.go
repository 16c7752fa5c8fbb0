package fdt

// Blob is a read-only borrow over a contiguous byte range containing a
// valid FDT. It owns no memory of its own; every byte-slice view derived
// from it (Header, StructReader, Property values, ReserveMap) is a
// subrange of the same buffer. Node names, property names, and string
// values are returned as Go strings, which are copies.
type Blob struct {
	raw []byte
}

// NewBlob validates buf as an FDT header and binds the totalsize-byte
// range as the Blob's buffer.
//
// It reads only the first HeaderV1Size bytes before totalsize is known,
// validates the header, and fails with ErrTruncated if buf is shorter
// than the header's totalsize field or totalsize is smaller than
// HeaderV1Size. Once totalsize is confirmed to fit,
// it re-validates against the full, totalsize-bounded header so that a
// version field claiming fields (boot_cpuid_phys and similar) the blob
// is too short to actually carry is also rejected here, rather than
// panicking the first time a caller reaches for one of those fields.
// A structure, strings, or reservation block offset beyond totalsize is
// likewise rejected with ErrTruncated.
func NewBlob(buf []byte) (Blob, error) {
	if len(buf) < HeaderV1Size {
		return Blob{}, ErrTruncated
	}
	h := NewHeader(buf[:HeaderV1Size])
	if err := h.Validate(); err != nil {
		return Blob{}, err
	}
	total := int(h.TotalSize())
	if total < HeaderV1Size || len(buf) < total {
		return Blob{}, ErrTruncated
	}
	full := NewHeader(buf[:total])
	if err := full.ValidateSize(); err != nil {
		return Blob{}, err
	}
	if int(full.OffDtStruct()) > total || int(full.OffDtStrings()) > total || int(full.OffMemRsvmap()) > total {
		return Blob{}, ErrTruncated
	}
	return Blob{raw: buf[:total]}, nil
}

// Header returns a typed view of the blob's fixed header.
func (b Blob) Header() Header {
	return NewHeader(b.raw)
}

// StructBlock returns the raw bytes of the structure block, from
// off_dt_struct to the end of the bound buffer.
func (b Blob) StructBlock() []byte {
	return b.raw[b.Header().OffDtStruct():]
}

// StringsBlock returns the raw bytes of the strings block, from
// off_dt_strings to the end of the bound buffer.
func (b Blob) StringsBlock() []byte {
	return b.raw[b.Header().OffDtStrings():]
}

// StructReader returns a StructReader positioned at offset 0 of the
// structure block, resolving property names against the strings block.
func (b Blob) StructReader() StructReader {
	return NewStructReader(b.StructBlock(), b.StringsBlock())
}

// Rsvmap returns an iterator over the memory reservation block.
func (b Blob) Rsvmap() *ReserveMap {
	return newReserveMap(b.raw[b.Header().OffMemRsvmap():])
}

// String resolves a byte offset into the strings block to the
// NUL-terminated UTF-8 string stored there, returned as a copy.
func (b Blob) String(stringOffset int) (string, error) {
	sb := b.StringsBlock()
	if stringOffset < 0 || stringOffset > len(sb) {
		return "", ErrTruncated
	}
	r := StructReader{structure: sb, strings: sb, offset: stringOffset}
	return r.String()
}
