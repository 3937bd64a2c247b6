package comb

import "fmt"

// Result is the outcome of a parse attempt: either a success carrying
// the produced value and the state after consumption, or a failure
// carrying the expected label and the state at the point of failure.
type Result[T any] struct {
	Value    T
	State    State
	Expected string
	ok       bool
}

// Success wraps value with the already-advanced state s.
func Success[T any](s State, value T) Result[T] {
	return Result[T]{Value: value, State: s, ok: true}
}

// Failure reports that expected was not found at s. By convention s is the
// state before any consumption attributable to this failure.
func Failure[T any](s State, expected string) Result[T] {
	return Result[T]{State: s, Expected: expected}
}

// Retype carries a failure over to a parser of another value type.
func Retype[U, T any](r Result[T]) Result[U] {
	if r.ok {
		panic("comb: Retype called on a successful result")
	}
	return Failure[U](r.State, r.Expected)
}

// Ok reports whether r is a success.
func (r Result[T]) Ok() bool {
	return r.ok
}

// Err returns nil for a success and a *ParseError for a failure.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &ParseError{Expected: r.Expected, Position: r.State.Position()}
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v) at %d", r.Value, r.State.Pos())
	}
	return fmt.Sprintf("failure(expected %s) at %d", r.Expected, r.State.Pos())
}
