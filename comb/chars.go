package comb

import (
	"fmt"
	"strings"
)

// NoneOf matches a single codepoint that does not occur in chars.
func NoneOf(chars string) Parser[string] {
	return runeIf(fmt.Sprintf("none of %q", chars), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// OneOf matches a single codepoint that occurs in chars.
func OneOf(chars string) Parser[string] {
	return runeIf(fmt.Sprintf("one of %q", chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// Any matches any single codepoint.
func Any() Parser[string] {
	return runeIf("any character", func(rune) bool { return true })
}

// Range matches a single codepoint between lo and hi inclusive.
func Range(lo, hi rune) Parser[string] {
	return runeIf(fmt.Sprintf("%q…%q", lo, hi), func(r rune) bool {
		return r >= lo && r <= hi
	})
}

func runeIf(label string, pred func(rune) bool) Parser[string] {
	return Func[string](func(s State) Result[string] {
		r, ok := s.Peek()
		if !ok || !pred(r) {
			return Failure[string](s, label)
		}
		return Success(s.Advance(1), string(r))
	})
}

// Letter matches one Unicode letter.
func Letter() Parser[string] {
	return Regexp(`\p{L}`, "letter")
}

// Letters matches one or more Unicode letters.
func Letters() Parser[string] {
	return Regexp(`\p{L}+`, "letters")
}

// Digit matches one ASCII digit.
func Digit() Parser[string] {
	return Regexp(`[0-9]`, "digit")
}

// Digits matches one or more ASCII digits.
func Digits() Parser[string] {
	return Regexp(`[0-9]+`, "digits")
}

// Whitespace matches one or more whitespace characters.
func Whitespace() Parser[string] {
	return Regexp(`\s+`, "whitespace")
}

// WhitespaceOptional matches zero or more whitespace characters.
func WhitespaceOptional() Parser[string] {
	return Regexp(`\s*`, "optional whitespace")
}
