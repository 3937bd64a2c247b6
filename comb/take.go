package comb

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Both runs a then b and produces both values.
func Both[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(s State) Result[Pair[A, B]] {
		ra := a.Parse(s)
		if !ra.Ok() {
			return Retype[Pair[A, B]](ra)
		}
		rb := b.Parse(ra.State)
		if !rb.Ok() {
			return Retype[Pair[A, B]](rb)
		}
		return Success(rb.State, Pair[A, B]{Left: ra.Value, Right: rb.Value})
	})
}

// TakeLeft runs l then r and keeps the value of l.
func TakeLeft[L, R any](l Parser[L], r Parser[R]) Parser[L] {
	return Map(Both(l, r), func(p Pair[L, R]) L { return p.Left })
}

// TakeRight runs l then r and keeps the value of r.
func TakeRight[L, R any](l Parser[L], r Parser[R]) Parser[R] {
	return Map(Both(l, r), func(p Pair[L, R]) R { return p.Right })
}

// TakeMid runs l, m and r and keeps the value of m.
func TakeMid[L, M, R any](l Parser[L], m Parser[M], r Parser[R]) Parser[M] {
	return TakeLeft(TakeRight(l, m), r)
}

// TakeSides runs l, m and r and keeps the values of l and r.
func TakeSides[L, M, R any](l Parser[L], m Parser[M], r Parser[R]) Parser[Pair[L, R]] {
	return Both(TakeLeft(l, m), r)
}
