package comb

import (
	"reflect"
	"testing"
)

func TestSequence(t *testing.T) {
	r := Run(Sequence(String("a"), String("b"), String("c")), "abcd")
	if !r.Ok() {
		t.Fatalf("parse failed: %v", r)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(r.Value, want) {
		t.Errorf("got %q, want %q", r.Value, want)
	}
	if r.State.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", r.State.Pos())
	}
}

func TestSequenceShortCircuit(t *testing.T) {
	calls := 0
	var counted Parser[string] = Func[string](func(s State) Result[string] {
		calls++
		return Success(s, "")
	})

	first := String("a")
	r := Run(Sequence(first, counted), "b")
	if r.Ok() {
		t.Fatal("expected failure")
	}
	if calls != 0 {
		t.Errorf("second parser was called %d times, want 0", calls)
	}

	alone := Run(first, "b")
	if r.Expected != alone.Expected || r.State.Pos() != alone.State.Pos() {
		t.Errorf("failure = %v, want %v", r, alone)
	}
}

func TestSequenceFailsMidway(t *testing.T) {
	r := Run(Sequence(String("a"), String("b"), String("c")), "abx")
	if r.Ok() || r.Expected != "c" || r.State.Pos() != 2 {
		t.Errorf("got %v, want failure(c) at 2", r)
	}
}

func TestSequenceEmpty(t *testing.T) {
	r := Run(Sequence[string](), "abc")
	if !r.Ok() || len(r.Value) != 0 || r.State.Pos() != 0 {
		t.Errorf("got %v, want empty success at 0", r)
	}
}

func TestUntyped(t *testing.T) {
	p := Sequence(Untyped(String("n=")), Untyped(Integer()))
	r := Run(p, "n=42")
	if !r.Ok() {
		t.Fatalf("parse failed: %v", r)
	}
	if want := []any{"n=", 42}; !reflect.DeepEqual(r.Value, want) {
		t.Errorf("got %v, want %v", r.Value, want)
	}
}
