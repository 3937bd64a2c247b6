package comb

// List matches one or more p separated by sep and produces the values of
// p. A separator that is not followed by p is left unconsumed.
func List[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	tail := Many(TakeRight(sep, p))
	return Func[[]T](func(s State) Result[[]T] {
		first := p.Parse(s)
		if !first.Ok() {
			return Retype[[]T](first)
		}
		rest := tail.Parse(first.State)
		values := append([]T{first.Value}, rest.Value...)
		return Success(rest.State, values)
	})
}

// SepBy is List that also accepts zero occurrences.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	list := List(p, sep)
	return Func[[]T](func(s State) Result[[]T] {
		r := list.Parse(s)
		if !r.Ok() {
			return Success(s, []T{})
		}
		return r
	})
}
