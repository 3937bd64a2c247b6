package comb

import (
	"errors"
	"sync"
	"testing"
)

func TestRunScenarios(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		r := Run(String("test"), "test")
		if !r.Ok() || r.Value != "test" {
			t.Errorf("got %v, want success(test)", r)
		}
	})

	t.Run("literal leaves the rest", func(t *testing.T) {
		r := Run(String("test"), "testtest")
		if !r.Ok() || r.Value != "test" || r.State.Remaining() != "test" {
			t.Errorf("got %v with rest %q, want success(test) with rest %q", r, r.State.Remaining(), "test")
		}
	})

	t.Run("literal on empty input", func(t *testing.T) {
		r := Run(String("test"), "")
		if r.Ok() || r.Expected != "test" {
			t.Errorf("got %v, want failure(test)", r)
		}
	})

	t.Run("windows newline", func(t *testing.T) {
		r := Run(EOL(), "\r\n")
		if !r.Ok() || r.Value != "\r\n" {
			t.Errorf("got %v, want success(\\r\\n)", r)
		}
	})

	t.Run("missing newline", func(t *testing.T) {
		r := Run(Sequence(Letters(), EOL()), "Hello")
		if r.Ok() || r.Expected != "end of line" {
			t.Errorf("got %v, want failure(end of line)", r)
		}
	})

	t.Run("zero-width regexp", func(t *testing.T) {
		r := Run(Regexp(`\d*`, "digits*"), "")
		if !r.Ok() || r.Value != "" || r.State.Pos() != 0 {
			t.Errorf("got %v, want success(\"\") at 0", r)
		}
	})
}

func TestParseAll(t *testing.T) {
	v, err := ParseAll(String("test"), "test")
	if err != nil || v != "test" {
		t.Errorf("ParseAll() = %q, %v; want %q, nil", v, err, "test")
	}

	_, err = ParseAll(String("test"), "testtest")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseAll() error = %v, want *ParseError", err)
	}
	if perr.Expected != "end of input" || perr.Position.Column != 5 {
		t.Errorf("error = %v, want expected end of input at 1:5", perr)
	}
}

func TestConcurrentRuns(t *testing.T) {
	p := List(Integer(), String(","))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := ParseAll(p, "1,2,3,4")
				if err != nil {
					errs <- err
					return
				}
				if len(v) != 4 {
					errs <- errors.New("wrong number of items")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
