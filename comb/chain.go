package comb

// ChainL matches p (op p)* and folds the operands from the left with the
// functions produced by op, so "1-2-3" becomes (1-2)-3.
func ChainL[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	tail := Many(Both(op, p))
	return Func[T](func(s State) Result[T] {
		first := p.Parse(s)
		if !first.Ok() {
			return first
		}
		rest := tail.Parse(first.State)
		acc := first.Value
		for _, step := range rest.Value {
			acc = step.Left(acc, step.Right)
		}
		return Success(rest.State, acc)
	})
}

// ChainR matches p (op p)* and folds from the right, so "2^3^2" becomes
// 2^(3^2).
func ChainR[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	tail := Many(Both(op, p))
	return Func[T](func(s State) Result[T] {
		first := p.Parse(s)
		if !first.Ok() {
			return first
		}
		rest := tail.Parse(first.State)
		steps := rest.Value
		if len(steps) == 0 {
			return Success(rest.State, first.Value)
		}
		acc := steps[len(steps)-1].Right
		for i := len(steps) - 1; i > 0; i-- {
			acc = steps[i].Left(steps[i-1].Right, acc)
		}
		acc = steps[0].Left(first.Value, acc)
		return Success(rest.State, acc)
	})
}
