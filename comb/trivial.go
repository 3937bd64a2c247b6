package comb

// Succeed always succeeds with value and consumes nothing.
func Succeed[T any](value T) Parser[T] {
	return Func[T](func(s State) Result[T] {
		return Success(s, value)
	})
}

// Nothing always succeeds with an empty value and consumes nothing.
func Nothing() Parser[struct{}] {
	return Succeed(struct{}{})
}

// Fail always fails with label.
func Fail[T any](label string) Parser[T] {
	return Func[T](func(s State) Result[T] {
		return Failure[T](s, label)
	})
}

// Rest consumes and produces the remaining input, possibly empty.
func Rest() Parser[string] {
	return Func[string](func(s State) Result[string] {
		return Success(s.Advance(s.Len()-s.Pos()), s.Remaining())
	})
}

// EOF succeeds only when the whole input has been consumed.
func EOF() Parser[struct{}] {
	return Func[struct{}](func(s State) Result[struct{}] {
		if !s.AtEnd() {
			return Failure[struct{}](s, "end of input")
		}
		return Success(s, struct{}{})
	})
}
