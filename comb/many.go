package comb

// Many runs p until it fails and produces the values collected so far.
// It always succeeds. The failing attempt consumes nothing. If p succeeds
// without consuming input, its value is kept and repetition stops there.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(s State) Result[[]T] {
		return manyFrom(p, s, make([]T, 0))
	})
}

// Many1 is Many but requires at least one success. Otherwise it returns
// the first failure of p.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(s State) Result[[]T] {
		first := p.Parse(s)
		if !first.Ok() {
			return Retype[[]T](first)
		}
		values := []T{first.Value}
		if first.State.Equal(s) {
			return Success(first.State, values)
		}
		return manyFrom(p, first.State, values)
	})
}

func manyFrom[T any](p Parser[T], s State, values []T) Result[[]T] {
	cur := s
	for {
		r := p.Parse(cur)
		if !r.Ok() {
			break
		}
		values = append(values, r.Value)
		if r.State.Equal(cur) {
			break
		}
		cur = r.State
	}
	return Success(cur, values)
}

// Optional runs p once. On failure it succeeds with nil at the original
// position.
func Optional[T any](p Parser[T]) Parser[*T] {
	return Func[*T](func(s State) Result[*T] {
		r := p.Parse(s)
		if !r.Ok() {
			return Success[*T](s, nil)
		}
		v := r.Value
		return Success(r.State, &v)
	})
}
