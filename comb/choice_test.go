package comb

import "testing"

func TestChoice(t *testing.T) {
	tests := []struct {
		name     string
		p        Parser[string]
		input    string
		ok       bool
		want     string
		expected string
		pos      int
	}{
		{"first alternative", Choice(String("a"), String("b")), "a", true, "a", "", 1},
		{"second alternative", Choice(String("a"), String("b")), "b", true, "b", "", 1},
		{"last failure is reported", Choice(String("a"), String("b")), "c", false, "", "b", 0},
		{
			"backtracks after partial advance",
			Choice(Recognize(Sequence(String("a"), String("b"))), String("ac")),
			"ac", true, "ac", "", 2,
		},
		{
			"last failure keeps its own position",
			Choice(String("x"), Recognize(Sequence(String("a"), String("b")))),
			"ac", false, "", "b", 1,
		},
		{"no alternatives", Choice[string](), "a", false, "", "choice", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Run(tt.p, tt.input)
			if r.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (%v)", r.Ok(), tt.ok, r)
			}
			if tt.ok && r.Value != tt.want {
				t.Errorf("Value = %q, want %q", r.Value, tt.want)
			}
			if !tt.ok && r.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", r.Expected, tt.expected)
			}
			if r.State.Pos() != tt.pos {
				t.Errorf("Pos() = %d, want %d", r.State.Pos(), tt.pos)
			}
		})
	}
}
