package comb

import "strconv"

// Integer matches an optionally negative decimal integer without leading
// zeros.
func Integer() Parser[int] {
	return Convert(Regexp(`-?(?:0|[1-9][0-9]*)`, "integer"), "integer", strconv.Atoi)
}

// IntegerUnsigned matches a decimal integer without sign or leading zeros.
func IntegerUnsigned() Parser[uint] {
	return Convert(Regexp(`0|[1-9][0-9]*`, "unsigned integer"), "unsigned integer", func(text string) (uint, error) {
		n, err := strconv.ParseUint(text, 10, 0)
		return uint(n), err
	})
}

// Float matches an optionally negative decimal with a fractional part.
func Float() Parser[float64] {
	return Convert(Regexp(`-?[0-9]+\.[0-9]+`, "float"), "float", func(text string) (float64, error) {
		return strconv.ParseFloat(text, 64)
	})
}

// Convert converts the text matched by p with conv. When conv returns an
// error, such as for an overflowing number, Convert fails with label at
// the start state.
func Convert[T any](p Parser[string], label string, conv func(string) (T, error)) Parser[T] {
	return Func[T](func(s State) Result[T] {
		r := p.Parse(s)
		if !r.Ok() {
			return Retype[T](r)
		}
		v, err := conv(r.Value)
		if err != nil {
			return Failure[T](s, label)
		}
		return Success(r.State, v)
	})
}
