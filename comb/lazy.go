package comb

import "sync"

type lazy[T any] struct {
	get func() Parser[T]
}

// Lazy builds the parser returned by thunk on the first parse attempt.
// Use it to refer to a rule that is defined later or to itself. If thunk
// panics, every parse attempt panics with the same value.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	return &lazy[T]{get: sync.OnceValue(thunk)}
}

func (l *lazy[T]) Parse(s State) Result[T] {
	return l.get().Parse(s)
}

// Deferred is a parser declared before its definition. Call Set before
// the first parse; parsing an unset Deferred panics.
type Deferred[T any] struct {
	p Parser[T]
}

// Defer declares a parser whose body is supplied later with Set.
func Defer[T any]() *Deferred[T] {
	return &Deferred[T]{}
}

// Set supplies the body of d.
func (d *Deferred[T]) Set(p Parser[T]) {
	d.p = p
}

func (d *Deferred[T]) Parse(s State) Result[T] {
	if d.p == nil {
		panic("comb: parse of a deferred parser that was never set")
	}
	return d.p.Parse(s)
}
