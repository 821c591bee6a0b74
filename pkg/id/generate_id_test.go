package id

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if len(got) != Len {
		t.Fatalf("length = %d, want %d (got=%q)", len(got), Len, got)
	}
	if !IsID32(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsID32(t *testing.T) {
	cases := map[string]bool{
		strings.Repeat("a", 32):                true,
		"0123456789abcdef0123456789abcdef":     true,
		strings.Repeat("A", 32):                false,
		strings.Repeat("a", 31):                false,
		strings.Repeat("a", 33):                false,
		strings.Repeat("g", 32):                false,
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88": false,
		"":                                     false,
	}
	for in, want := range cases {
		if got := IsID32(in); got != want {
			t.Fatalf("IsID32(%q) = %v, want %v", in, got, want)
		}
	}
}
