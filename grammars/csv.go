package grammars

import (
	"strings"

	"github.com/dhamidi/comb/comb"
)

// CSV parses comma separated records. Fields may be quoted with double
// quotes, in which case they can contain commas, line breaks and doubled
// quotes. A trailing line break after the last record is allowed.
func CSV() comb.Parser[[][]string] {
	bare := comb.Regexp(`(?!")[^,"\r\n]*`, "field")
	quoted := comb.Map(
		comb.TakeMid(
			comb.String(`"`),
			comb.Regexp(`(?:[^"]|"")*`, "quoted field"),
			comb.Error(comb.String(`"`), "closing quote"),
		),
		func(s string) string { return strings.ReplaceAll(s, `""`, `"`) },
	)
	field := comb.Choice(bare, quoted)

	record := comb.List(field, comb.String(","))
	separator := comb.TakeLeft(comb.EOL(), moreInput("record"))
	records := comb.List(record, separator)

	return comb.TakeLeft(records, comb.Optional(comb.EOL()))
}

// moreInput succeeds without consuming when input remains.
func moreInput(label string) comb.Parser[struct{}] {
	return comb.Func[struct{}](func(s comb.State) comb.Result[struct{}] {
		if s.AtEnd() {
			return comb.Failure[struct{}](s, label)
		}
		return comb.Success(s, struct{}{})
	})
}
