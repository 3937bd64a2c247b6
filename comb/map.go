package comb

// Map applies fn to the value produced by p. Failures pass through
// unchanged. fn must not fail; a panic in fn is not recovered.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return Func[U](func(s State) Result[U] {
		r := p.Parse(s)
		if !r.Ok() {
			return Retype[U](r)
		}
		return Success(r.State, fn(r.Value))
	})
}

// MapTo replaces the value produced by p with value.
func MapTo[T, U any](p Parser[T], value U) Parser[U] {
	return Map(p, func(T) U { return value })
}

// Recognize produces the input text consumed by p instead of p's value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return Func[string](func(s State) Result[string] {
		r := p.Parse(s)
		if !r.Ok() {
			return Retype[string](r)
		}
		return Success(r.State, s.Slice(r.State))
	})
}
