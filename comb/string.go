package comb

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// String matches lit byte for byte. The produced value is lit.
func String(lit string) Parser[string] {
	return Func[string](func(s State) Result[string] {
		if !strings.HasPrefix(s.Remaining(), lit) {
			return Failure[string](s, lit)
		}
		next, ok := s.advanceBytes(len(lit))
		if !ok {
			return Failure[string](s, lit)
		}
		return Success(next, lit)
	})
}

// UString matches lit one grapheme cluster at a time, comparing the NFC
// forms of the clusters. A match never ends inside a user-perceived
// character, and canonically equivalent spellings match each other. The
// cursor advances by the codepoints of the input clusters consumed.
func UString(lit string) Parser[string] {
	want := graphemes(lit)
	return Func[string](func(s State) Result[string] {
		rest := s.Remaining()
		consumed := 0
		state := -1
		for _, w := range want {
			if rest == "" {
				return Failure[string](s, lit)
			}
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if norm.NFC.String(cluster) != w {
				return Failure[string](s, lit)
			}
			consumed += utf8.RuneCountInString(cluster)
		}
		return Success(s.Advance(consumed), lit)
	})
}

func graphemes(text string) []string {
	var out []string
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, norm.NFC.String(cluster))
	}
	return out
}
