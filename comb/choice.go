package comb

// Choice tries each parser on the same input and returns the first
// success. When all of them fail, the failure of the last one is
// returned.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(s State) Result[T] {
		r := Failure[T](s, "choice")
		for _, p := range ps {
			r = p.Parse(s)
			if r.Ok() {
				return r
			}
		}
		return r
	})
}
