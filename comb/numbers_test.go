package comb

import (
	"errors"
	"testing"
)

func TestInteger(t *testing.T) {
	tests := []struct {
		input   string
		ok      bool
		want    int
		wantPos int
	}{
		{"42", true, 42, 2},
		{"-7", true, -7, 2},
		{"0123", true, 0, 1},
		{"abc", false, 0, 0},
		{"99999999999999999999", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := Run(Integer(), tt.input)
			if r.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (%v)", r.Ok(), tt.ok, r)
			}
			if r.Value != tt.want || r.State.Pos() != tt.wantPos {
				t.Errorf("got %d at %d, want %d at %d", r.Value, r.State.Pos(), tt.want, tt.wantPos)
			}
			if !tt.ok && r.Expected != "integer" {
				t.Errorf("Expected = %q, want %q", r.Expected, "integer")
			}
		})
	}
}

func TestIntegerUnsigned(t *testing.T) {
	if r := Run(IntegerUnsigned(), "9000"); !r.Ok() || r.Value != 9000 {
		t.Errorf("got %v, want 9000", r)
	}
	if r := Run(IntegerUnsigned(), "-1"); r.Ok() {
		t.Errorf("got %v, want failure", r)
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		want  float64
	}{
		{"3.14", true, 3.14},
		{"-0.5", true, -0.5},
		{"3", false, 0},
		{".5", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := Run(Float(), tt.input)
			if r.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (%v)", r.Ok(), tt.ok, r)
			}
			if r.Value != tt.want {
				t.Errorf("Value = %v, want %v", r.Value, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	p := Convert(Regexp(`[a-z]+`, "word"), "short word", func(text string) (int, error) {
		if len(text) > 3 {
			return 0, errors.New("too long")
		}
		return len(text), nil
	})

	if r := Run(p, "abc"); !r.Ok() || r.Value != 3 || r.State.Pos() != 3 {
		t.Errorf("got %v, want success(3) at 3", r)
	}
	if r := Run(p, "abcdef"); r.Ok() || r.Expected != "short word" || r.State.Pos() != 0 {
		t.Errorf("got %v, want failure(short word) at 0", r)
	}
	if r := Run(p, "1"); r.Ok() || r.Expected != "word" {
		t.Errorf("got %v, want failure(word)", r)
	}
}
