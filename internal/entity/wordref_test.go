package entity

import "testing"

func TestWordRefRoundTrip(t *testing.T) {
	ref := FormatWordRef(2, 0, 14, 3)
	if ref != "2:0:14:3" {
		t.Fatalf("FormatWordRef() = %q, want %q", ref, "2:0:14:3")
	}

	page, block, line, word, err := ParseWordRef(ref)
	if err != nil {
		t.Fatalf("ParseWordRef() error = %v", err)
	}
	if page != 2 || block != 0 || line != 14 || word != 3 {
		t.Errorf("ParseWordRef() = %d:%d:%d:%d, want 2:0:14:3", page, block, line, word)
	}
}

func TestParseWordRef_Malformed(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{name: "empty", ref: ""},
		{name: "too few parts", ref: "1:2:3"},
		{name: "too many parts", ref: "1:2:3:4:5"},
		{name: "non-numeric", ref: "1:2:x:4"},
		{name: "negative index", ref: "1:2:-3:4"},
		{name: "legacy id", ref: "word_0_3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, _, err := ParseWordRef(tt.ref); err == nil {
				t.Errorf("ParseWordRef(%q) expected error", tt.ref)
			}
		})
	}
}

func TestWordRefOf(t *testing.T) {
	w := Word{PageIndex: 1, BlockIndex: 2, LineIndex: 3, WordIndex: 4}
	if got := WordRefOf(w); got != "1:2:3:4" {
		t.Errorf("WordRefOf() = %q, want %q", got, "1:2:3:4")
	}
}
