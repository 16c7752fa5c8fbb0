package fdt

import (
	"encoding/binary"
	"unicode/utf8"
)

// Property is a single FDT_PROP tag: a name read from the strings block
// (held as a Go string copy) and a value borrowed from the structure
// block.
type Property struct {
	name  string
	value []byte
}

// Name returns the property's name.
func (p Property) Name() string { return p.name }

// Raw returns the property's raw value bytes.
func (p Property) Raw() []byte { return p.value }

// AsU32 decodes the value as a big-endian 32-bit integer. It fails if
// the value is fewer than 4 bytes.
func (p Property) AsU32() (uint32, error) {
	if len(p.value) < 4 {
		return 0, &ValueError{Property: p.name, Reason: "value too small to be parsed as u32"}
	}
	return binary.BigEndian.Uint32(p.value[:4]), nil
}

// AsStr interprets the value as a UTF-8 string, NUL terminator and all
// (property values that are C strings keep their trailing NUL, matching
// the reference behavior — see spec.md §8 scenario S4).
func (p Property) AsStr() (string, error) {
	if !utf8.Valid(p.value) {
		return "", &ValueError{Property: p.name, Reason: "value is not valid UTF-8"}
	}
	return string(p.value), nil
}

// AsStringList interprets the value as a NUL-separated string list.
func (p Property) AsStringList() (StringList, error) {
	sl, err := NewStringList(p.value)
	if err != nil {
		return StringList{}, &ValueError{Property: p.name, Reason: err.Error()}
	}
	return sl, nil
}

// IsEqualU32 compares a uint32 against the raw value using the u32
// decode capability: true only if the value is at least 4 bytes and its
// first 4 bytes decode, big-endian, to v (as AsU32 reads them).
func (p Property) IsEqualU32(v uint32) bool {
	got, err := p.AsU32()
	return err == nil && got == v
}

// IsEqualString compares a string against the raw value, treating the
// value as a (possibly NUL-terminated) UTF-8 string.
func (p Property) IsEqualString(v string) bool {
	s, err := p.AsStr()
	if err != nil {
		return false
	}
	return s == v
}

// IsEqualBytes compares raw bytes against the raw value.
func (p Property) IsEqualBytes(v []byte) bool {
	if len(p.value) != len(v) {
		return false
	}
	for i := range v {
		if p.value[i] != v[i] {
			return false
		}
	}
	return true
}

// Properties iterates the properties of a node in structure-block
// order, terminating at the first non-FDT_PROP token. It is
// non-restartable once advanced; Clone the underlying cursor via the
// owning Node to restart.
type Properties struct {
	r   StructReader
	err error
	// terminated indicates the iterator has returned its last item —
	// either it hit a non-Prop tag (normal termination) or a decode
	// error (err is set).
	terminated bool
}

// NewProperties wraps r (typically a node's props cursor) as a
// Properties iterator.
func NewProperties(r StructReader) *Properties {
	return &Properties{r: r}
}

// Next returns the next property, or (Property{}, false) when the
// iterator has reached a non-PROP tag or a decode error. Call Err after
// a false Next to distinguish normal termination from a parse failure.
func (it *Properties) Next() (Property, bool) {
	if it.terminated {
		return Property{}, false
	}
	kind, err := it.r.Token()
	if err != nil {
		it.terminated = true
		it.err = err
		return Property{}, false
	}
	if kind != TokenProp {
		it.terminated = true
		return Property{}, false
	}
	length, err := it.r.ReadU32()
	if err != nil {
		it.terminated, it.err = true, err
		return Property{}, false
	}
	name, err := it.r.StringRef()
	if err != nil {
		it.terminated, it.err = true, err
		return Property{}, false
	}
	value, err := it.r.Slice(int(length))
	if err != nil {
		it.terminated, it.err = true, err
		return Property{}, false
	}
	it.r.Align(4)
	return Property{name: name, value: value}, true
}

// Err returns the error that terminated iteration, or nil if iteration
// ended normally (a non-PROP tag) or has not yet ended.
func (it *Properties) Err() error { return it.err }

// WithName consumes it and returns the first property among the
// remaining items whose name equals name, or (Property{}, false).
func (it *Properties) WithName(name string) (Property, bool) {
	for {
		p, ok := it.Next()
		if !ok {
			return Property{}, false
		}
		if p.name == name {
			return p, true
		}
	}
}
