package comb

// Sequence runs ps one after the other and produces their values in order.
// It stops at the first failure and returns it as is.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return Func[[]T](func(s State) Result[[]T] {
		values := make([]T, 0, len(ps))
		cur := s
		for _, p := range ps {
			r := p.Parse(cur)
			if !r.Ok() {
				return Retype[[]T](r)
			}
			values = append(values, r.Value)
			cur = r.State
		}
		return Success(cur, values)
	})
}

// Untyped erases the value type of p so that parsers of different types
// can be combined with Sequence or Choice.
func Untyped[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}
