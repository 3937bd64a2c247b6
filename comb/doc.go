// Package comb is a scannerless parser-combinator engine.
//
// # Overview
//
// A grammar is built by combining small parsers into larger ones. Nothing
// runs while the grammar is built; Run drives the top-level parser over a
// string:
//
//	greeting := comb.TakeLeft(comb.Letters(), comb.EOL())
//	r := comb.Run(greeting, "Hello\n")
//	if !r.Ok() {
//	    return r.Err() // for "Hello": expected end of line at 1:6
//	}
//	fmt.Println(r.Value) // Hello
//
// # State
//
// A State is an immutable cursor into the input. Positions are codepoint
// indexes, never byte offsets, so multi-byte characters are consumed
// whole. Every successful step returns a new State, and backtracking is
// done by reusing an older one.
//
// # Results
//
// Every parse attempt returns a Result that is either a success (value and
// the state after consumption) or a failure (expected label and the state
// where the failure happened). Failures are ordinary values consumed by
// Choice, Optional and Many; only the Result returned by Run is final.
//
// # Primitives
//
//	String, UString          literal text (bytes / grapheme clusters)
//	Regexp, RegexpWith       regexp2 patterns anchored at the cursor
//	MatchStd                 standard library regexp anchored at the cursor
//	EOL                      "\n" or "\r\n"
//	NoneOf, OneOf, Range     single codepoints
//	Letter(s), Digit(s)      common classes
//	Whitespace(Optional)     runs of white space
//	Integer, Float           numbers
//	Any, Rest, EOF           input boundaries
//	Succeed, Nothing, Fail   constants
//
// # Combinators
//
//	Map, MapTo, Recognize    transform values
//	Convert                  fallible conversion of matched text
//	Error                    relabel failures
//	Choice                   ordered choice with full backtracking
//	Sequence, Both           sequencing
//	TakeLeft/Mid/Right/Sides keep some values of a sequence
//	Many, Many1, Optional    repetition
//	List, SepBy              separated repetition
//	ChainL, ChainR           operator chains
//	Lazy, Defer              recursive grammars
//	Trace                    debug logging through commonlog
//
// # Thread Safety
//
// Parsers hold no mutable state and may be used from many goroutines at
// once. A Deferred must be Set before it is shared.
package comb
