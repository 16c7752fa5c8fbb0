package fdt

import (
	"strings"
	"unicode/utf8"
)

// StringList is a view over a copy (as a Go string) of a byte range
// containing a concatenation of NUL-terminated strings, such as a
// "compatible" property's value.
type StringList struct {
	raw string
}

// NewStringList interprets data as UTF-8 and wraps it as a StringList.
// It fails if data is not valid UTF-8.
func NewStringList(data []byte) (StringList, error) {
	s := string(data)
	if !utf8.ValidString(s) {
		return StringList{}, &ValueError{Reason: "value is not valid UTF-8"}
	}
	return StringList{raw: s}, nil
}

// Strings returns an iterator over the NUL-separated substrings. The
// whole list is split when Strings is called, not item by item. There is
// no empty trailing element after the final NUL (the split_terminator
// rule: a StringList whose raw bytes are "a\x00b\x00" yields ["a","b"],
// not ["a","b",""]).
func (l StringList) Strings() *StringsIter {
	raw := l.raw
	if len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	var parts []string
	if raw == "" {
		parts = nil
	} else {
		parts = strings.Split(raw, "\x00")
	}
	return &StringsIter{parts: parts}
}

// Contains reports whether any string in the list equals key.
func (l StringList) Contains(key string) bool {
	it := l.Strings()
	for {
		s, ok := it.Next()
		if !ok {
			return false
		}
		if s == key {
			return true
		}
	}
}

// StringsIter iterates the substrings of a StringList.
type StringsIter struct {
	parts []string
	i     int
}

// Next returns the next string, or ("", false) when exhausted.
func (it *StringsIter) Next() (string, bool) {
	if it.i >= len(it.parts) {
		return "", false
	}
	s := it.parts[it.i]
	it.i++
	return s, true
}
