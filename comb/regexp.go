package comb

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Regexp matches pattern at the cursor and produces the matched text.
// The pattern is compiled with regexp2 and may use lookaround,
// backreferences and \p{...} classes naming a Unicode general category
// (\p{L}, \p{So}) or script (\p{Greek}). Binary properties such as
// Emoji_Presentation and Script_Extensions are not supported. It panics
// if pattern does not compile.
//
// A pattern that can match the empty string succeeds without advancing
// when nothing else matches, e.g. `\d*` on "abc" yields "".
func Regexp(pattern, label string) Parser[string] {
	return RegexpWith(pattern, regexp2.None, label)
}

// RegexpWith is Regexp with explicit regexp2 options, such as
// regexp2.ECMAScript or regexp2.IgnoreCase.
func RegexpWith(pattern string, opts regexp2.RegexOptions, label string) Parser[string] {
	re := anchor(pattern, opts)
	return Func[string](func(s State) Result[string] {
		m, err := re.FindRunesMatchStartingAt(s.source().runes, s.pos)
		if err != nil || m == nil || m.Index != s.pos {
			return Failure[string](s, label)
		}
		return Success(s.Advance(m.Length), m.String())
	})
}

// anchor wraps pattern so it can only match where the search starts.
func anchor(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	return regexp2.MustCompile(`\G(?:`+pattern+`)`, opts)
}

// MatchStd is Regexp for a standard library expression. The match is
// anchored at the cursor the same way; leftmost-longest mode is not kept.
func MatchStd(re *regexp.Regexp, label string) Parser[string] {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)`)
	return Func[string](func(s State) Result[string] {
		rest := s.Remaining()
		loc := anchored.FindStringIndex(rest)
		if loc == nil {
			return Failure[string](s, label)
		}
		next, ok := s.advanceBytes(loc[1])
		if !ok {
			return Failure[string](s, label)
		}
		return Success(next, rest[:loc[1]])
	})
}
