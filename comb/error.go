package comb

// Error replaces the expected label of a failure of p with label, keeping
// the position where p failed. Successes pass through.
func Error[T any](p Parser[T], label string) Parser[T] {
	return Func[T](func(s State) Result[T] {
		r := p.Parse(s)
		if r.Ok() {
			return r
		}
		return Failure[T](r.State, label)
	})
}
