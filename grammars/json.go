package grammars

import (
	"encoding/json"
	"strconv"

	"github.com/dhamidi/comb/comb"
)

// JSON parses a JSON document into the same Go values encoding/json
// produces for an any target: nil, bool, float64, string, []any and
// map[string]any.
func JSON() comb.Parser[any] {
	value := comb.Defer[any]()

	str := token(comb.Convert(comb.Regexp(`"(?:[^"\\\x00-\x1f]|\\(?:["\\/bfnrt]|u[0-9a-fA-F]{4}))*"`, "string"), "string", unquote))
	number := token(comb.Convert(comb.Regexp(`-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`, "number"), "number", parseFloat))

	member := comb.Both(comb.TakeLeft(str, symbol(":")), comb.Parser[any](value))
	object := comb.Map(
		comb.TakeMid(symbol("{"), comb.SepBy(member, symbol(",")), symbol("}")),
		func(members []comb.Pair[string, any]) any {
			obj := make(map[string]any, len(members))
			for _, m := range members {
				obj[m.Left] = m.Right
			}
			return obj
		},
	)
	array := comb.Map(
		comb.TakeMid(symbol("["), comb.SepBy(comb.Parser[any](value), symbol(",")), symbol("]")),
		func(items []any) any {
			if items == nil {
				return []any{}
			}
			return items
		},
	)

	value.Set(comb.Choice(
		object,
		array,
		comb.Untyped(str),
		comb.Untyped(number),
		comb.MapTo[string, any](symbol("true"), true),
		comb.MapTo[string, any](symbol("false"), false),
		comb.MapTo[string, any](symbol("null"), nil),
	))

	return comb.TakeRight(comb.WhitespaceOptional(), comb.Parser[any](value))
}

func unquote(lit string) (string, error) {
	var s string
	err := json.Unmarshal([]byte(lit), &s)
	return s, err
}

// parseFloat rejects literals outside the float64 range.
func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}
