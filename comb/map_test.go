package comb

import (
	"strconv"
	"testing"
)

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func TestMap(t *testing.T) {
	p := Map(String("9000"), atoi)

	r := Run(p, "9000")
	if !r.Ok() || r.Value != 9000 {
		t.Fatalf("got %v, want success(9000)", r)
	}

	plain := Run(String("9000"), "9000")
	if r.State.Pos() != plain.State.Pos() {
		t.Errorf("Map moved the state to %d, String alone to %d", r.State.Pos(), plain.State.Pos())
	}

	r = Run(p, "xxxx")
	if r.Ok() {
		t.Fatalf("got %v, want failure", r)
	}
	plain = Run(String("9000"), "xxxx")
	if r.Expected != plain.Expected || r.State.Pos() != plain.State.Pos() {
		t.Errorf("failure = %v, want %v", r, plain)
	}
}

func TestMapPanicPropagates(t *testing.T) {
	p := Map(String("x"), func(string) int { panic("boom") })
	defer func() {
		if recover() == nil {
			t.Error("panic in map function should propagate")
		}
	}()
	Run(p, "x")
}

func TestMapTo(t *testing.T) {
	r := Run(MapTo(String("9000"), "constant"), "9000")
	if !r.Ok() || r.Value != "constant" {
		t.Errorf("got %v, want success(constant)", r)
	}

	r = Run(MapTo(String("9000"), "constant"), "1")
	if r.Ok() || r.Expected != "9000" {
		t.Errorf("got %v, want failure(9000)", r)
	}
}

func TestRecognize(t *testing.T) {
	p := Recognize(Sequence(String("a"), String("é")))

	r := Run(p, "aéb")
	if !r.Ok() || r.Value != "aé" {
		t.Fatalf("got %v, want success(aé)", r)
	}
	if r.State.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", r.State.Pos())
	}

	r = Run(p, "ab")
	if r.Ok() || r.Expected != "é" || r.State.Pos() != 1 {
		t.Errorf("got %v, want failure(é) at 1", r)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		p        Parser[string]
		input    string
		ok       bool
		expected string
		pos      int
	}{
		{"success passes through", Error(String("a"), "letter a"), "a", true, "", 1},
		{"failure is relabeled", Error(String("a"), "letter a"), "b", false, "letter a", 0},
		{"position of inner failure is kept", Error(Recognize(Sequence(String("a"), String("b"))), "ab"), "ax", false, "ab", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Run(tt.p, tt.input)
			if r.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v", r.Ok(), tt.ok)
			}
			if r.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", r.Expected, tt.expected)
			}
			if r.State.Pos() != tt.pos {
				t.Errorf("Pos() = %d, want %d", r.State.Pos(), tt.pos)
			}
		})
	}
}
