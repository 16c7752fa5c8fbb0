package fdt

import (
	"errors"
	"fmt"
)

// Supported last_comp_version range (spec.md DATA MODEL, Header invariant).
const (
	MinCompatVersion = 1
	MaxCompatVersion = 17
)

// Sentinel errors for the fixed, no-payload failure conditions.
var (
	// ErrTruncated is returned by New when the supplied buffer is shorter
	// than the header's totalsize field, or when totalsize is too small
	// for the header fields or block offsets the header declares; the
	// structure-block readers also return it when a read runs past the
	// end of a block.
	ErrTruncated = errors.New("fdt: buffer shorter than header totalsize")

	// ErrBadStructure is returned when the structure block violates the
	// begin/end nesting rules: an EndNode at depth 0, an End token at a
	// nonzero depth, or an unrecognized tag.
	ErrBadStructure = errors.New("fdt: malformed structure block")

	// ErrNulNotFound is returned when a NUL-terminated string run the
	// parser expects to be terminated within the buffer is not.
	ErrNulNotFound = errors.New("fdt: NUL terminator not found")
)

// MagicError reports a header magic value other than 0xd00dfeed.
type MagicError struct {
	Got uint32
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("fdt: bad magic 0x%08x, want 0x%08x", e.Got, Magic)
}

// VersionError reports a last_comp_version outside [MinCompatVersion, MaxCompatVersion].
type VersionError struct {
	Got uint32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("fdt: incompatible last_comp_version %d (supported %d..%d)", e.Got, MinCompatVersion, MaxCompatVersion)
}

// ValueError reports a typed property decode failure: a value too short
// to hold the requested type, or a value (or string list) that is not
// valid UTF-8. A string list without a trailing NUL is accepted, not
// reported.
type ValueError struct {
	Property string
	Reason   string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("fdt: property %q: %s", e.Property, e.Reason)
}

// StructureError decorates ErrBadStructure with the offending tag and
// the byte offset at which it was encountered, the way BuildError in the
// dockerfile package carries an Op and wraps an underlying sentinel.
type StructureError struct {
	Offset int
	Tag    uint32
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("fdt: unexpected tag 0x%x at offset %d", e.Tag, e.Offset)
}

func (e *StructureError) Unwrap() error {
	return ErrBadStructure
}

func (e *StructureError) Is(target error) bool {
	return target == ErrBadStructure
}
