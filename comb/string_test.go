package comb

import (
	"strings"
	"testing"
	"unicode/utf8"
)

const family = "\U0001F468\u200D\U0001F469\u200D\U0001F467\u200D\U0001F466"

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		lit     string
		input   string
		ok      bool
		wantPos int
	}{
		{"exact", "test", "test", true, 4},
		{"repetitive input", "test", "testtest", true, 4},
		{"mismatch", "test", "wrong", false, 0},
		{"zero-length input", "test", "", false, 0},
		{"empty literal", "", "abc", true, 0},
		{"multi-byte literal", "héllo", "héllo!", true, 5},
		{"emoji prefix", "\U0001F468", family, true, 1},
		{"partial codepoint", "\xc3", "é", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Run(String(tt.lit), tt.input)
			if r.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (%v)", r.Ok(), tt.ok, r)
			}
			if r.State.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", r.State.Pos(), tt.wantPos)
			}
			if tt.ok && r.Value != tt.lit {
				t.Errorf("Value = %q, want %q", r.Value, tt.lit)
			}
			if !tt.ok && r.Expected != tt.lit {
				t.Errorf("Expected = %q, want %q", r.Expected, tt.lit)
			}
		})
	}
}

func TestUStringRoundTrip(t *testing.T) {
	tests := []string{
		"test",
		"语言处理",
		"Hëllø!",
		"Family :: " + family + " " + family + " " + family,
	}

	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			r := Run(UString(tc), tc)
			if !r.Ok() {
				t.Fatalf("UString(%q) failed: %v", tc, r)
			}
			if r.Value != tc {
				t.Errorf("Value = %q, want %q", r.Value, tc)
			}
			if got, want := r.State.Pos(), utf8.RuneCountInString(tc); got != want {
				t.Errorf("Pos() = %d, want %d", got, want)
			}
			if !r.State.AtEnd() {
				t.Error("should have consumed the whole input")
			}
		})
	}
}

func TestUString(t *testing.T) {
	tests := []struct {
		name    string
		lit     string
		input   string
		ok      bool
		wantPos int
	}{
		{"repetitive input", "test", strings.Repeat("test", 2), true, 4},
		{"mismatch", "test", "wrong", false, 0},
		{"zero-length input", "test", "", false, 0},
		{"input shorter than literal", "test", "tes", false, 0},
		{"split grapheme cluster", "\U0001F468", family, false, 0},
		{"whole grapheme cluster", family, family + "!", true, 7},
		{"canonical equivalence", "\u00e9", "e\u0301x", true, 2},
		{"base letter without mark", "e", "e\u0301", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Run(UString(tt.lit), tt.input)
			if r.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (%v)", r.Ok(), tt.ok, r)
			}
			if r.State.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", r.State.Pos(), tt.wantPos)
			}
			if !tt.ok && r.Expected != tt.lit {
				t.Errorf("Expected = %q, want %q", r.Expected, tt.lit)
			}
		})
	}
}
