package grammars

import (
	"math"

	"github.com/dhamidi/comb/comb"
)

func token[T any](p comb.Parser[T]) comb.Parser[T] {
	return comb.TakeLeft(p, comb.WhitespaceOptional())
}

func symbol(s string) comb.Parser[string] {
	return token(comb.String(s))
}

type binop = func(a, b float64) float64

// Calc parses arithmetic expressions over floating point numbers with
// the usual precedence: ^ (right associative) over * and / over + and -.
func Calc() comb.Parser[float64] {
	var expr comb.Parser[float64]

	number := token(comb.Convert(comb.Regexp(`[0-9]+(?:\.[0-9]+)?`, "number"), "number", parseFloat))
	atom := comb.Choice(
		number,
		comb.TakeMid(symbol("("), comb.Lazy(func() comb.Parser[float64] { return expr }), symbol(")")),
	)
	negated := comb.Choice(
		comb.Map(comb.TakeRight(symbol("-"), atom), func(v float64) float64 { return -v }),
		atom,
	)
	power := comb.ChainR(negated, comb.MapTo[string, binop](symbol("^"), math.Pow))
	term := comb.ChainL(power, comb.Choice(
		comb.MapTo[string, binop](symbol("*"), func(a, b float64) float64 { return a * b }),
		comb.MapTo[string, binop](symbol("/"), func(a, b float64) float64 { return a / b }),
	))
	expr = comb.ChainL(term, comb.Choice(
		comb.MapTo[string, binop](symbol("+"), func(a, b float64) float64 { return a + b }),
		comb.MapTo[string, binop](symbol("-"), func(a, b float64) float64 { return a - b }),
	))

	return comb.TakeRight(comb.WhitespaceOptional(), expr)
}
