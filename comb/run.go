package comb

// Run parses input with p, starting at the first codepoint, and returns
// the final result. Input left over after a success is not an error; see
// ParseAll.
func Run[T any](p Parser[T], input string, opts ...Option) Result[T] {
	return p.Parse(NewState(input, opts...))
}

// ParseAll runs p and requires it to consume the whole input.
func ParseAll[T any](p Parser[T], input string, opts ...Option) (T, error) {
	r := Run(TakeLeft(p, EOF()), input, opts...)
	return r.Value, r.Err()
}
