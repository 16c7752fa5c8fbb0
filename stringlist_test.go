package fdt

import "testing"

func TestStringListSplitTerminator(t *testing.T) {
	sl, err := NewStringList([]byte("a\x00bb\x00"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	it := sl.Strings()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, s)
	}
	want := []string{"a", "bb"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStringListEmpty(t *testing.T) {
	sl, err := NewStringList(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sl.Strings().Next(); ok {
		t.Fatal("expected no strings in an empty list")
	}
}

func TestStringListContains(t *testing.T) {
	sl, err := NewStringList([]byte("acme,board-v2\x00acme,board\x00"))
	if err != nil {
		t.Fatal(err)
	}
	if !sl.Contains("acme,board") {
		t.Fatal("expected to find acme,board")
	}
	if sl.Contains("acme,missing") {
		t.Fatal("did not expect to find acme,missing")
	}
}

func TestStringListRejectsInvalidUTF8(t *testing.T) {
	_, err := NewStringList([]byte{0xff, 0xfe, 0})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}
