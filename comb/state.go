package comb

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Position is a human-readable location in the input.
type Position struct {
	File   string
	Offset int // codepoint index from the start of the input
	Line   int // 1-based
	Column int // 1-based, in codepoints
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// source is the input of a single run. It is shared by every State of
// that run and never modified after construction.
type source struct {
	file    string
	text    string
	runes   []rune
	offsets []int // byte offset of each rune; the final entry is len(text)
}

var emptySource = newSource("", "")

func newSource(text, file string) *source {
	n := utf8.RuneCountInString(text)
	src := &source{
		file:    file,
		text:    text,
		runes:   make([]rune, 0, n),
		offsets: make([]int, 0, n+1),
	}
	for i, r := range text {
		src.runes = append(src.runes, r)
		src.offsets = append(src.offsets, i)
	}
	src.offsets = append(src.offsets, len(text))
	return src
}

// runeIndex maps a byte offset to a codepoint index. It reports false when
// the offset does not fall on a codepoint boundary.
func (src *source) runeIndex(offset int) (int, bool) {
	i := sort.SearchInts(src.offsets, offset)
	if i >= len(src.offsets) || src.offsets[i] != offset {
		return 0, false
	}
	return i, true
}

// State is an immutable cursor into the input. Parsers never modify a
// State; they return a new one.
type State struct {
	src *source
	pos int
}

// NewState returns a State positioned at the start of input.
func NewState(input string, opts ...Option) State {
	cfg := newConfig(opts)
	return State{src: newSource(input, cfg.file)}
}

func (s State) source() *source {
	if s.src == nil {
		return emptySource
	}
	return s.src
}

// Pos returns the cursor as a codepoint index.
func (s State) Pos() int {
	return s.pos
}

// Offset returns the cursor as a byte offset into the input.
func (s State) Offset() int {
	return s.source().offsets[s.pos]
}

// Len returns the length of the whole input in codepoints.
func (s State) Len() int {
	return len(s.source().runes)
}

// Input returns the whole input.
func (s State) Input() string {
	return s.source().text
}

// Remaining returns the unconsumed part of the input.
func (s State) Remaining() string {
	src := s.source()
	return src.text[src.offsets[s.pos]:]
}

// AtEnd reports whether the whole input has been consumed.
func (s State) AtEnd() bool {
	return s.pos >= len(s.source().runes)
}

// Peek returns the codepoint under the cursor.
func (s State) Peek() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.source().runes[s.pos], true
}

// Advance returns a State moved forward by n codepoints, stopping at the
// end of the input.
func (s State) Advance(n int) State {
	end := len(s.source().runes)
	next := s.pos + n
	if next > end {
		next = end
	}
	if next < s.pos {
		next = s.pos
	}
	return State{src: s.src, pos: next}
}

// advanceBytes moves forward by n bytes. It fails when that would end in
// the middle of a codepoint.
func (s State) advanceBytes(n int) (State, bool) {
	src := s.source()
	i, ok := src.runeIndex(src.offsets[s.pos] + n)
	if !ok {
		return s, false
	}
	return State{src: s.src, pos: i}, true
}

// Slice returns the input text between s and end.
func (s State) Slice(end State) string {
	src := s.source()
	if end.pos < s.pos {
		return ""
	}
	return src.text[src.offsets[s.pos]:src.offsets[end.pos]]
}

// Equal reports whether both states refer to the same input at the same
// position.
func (s State) Equal(other State) bool {
	return s.source() == other.source() && s.pos == other.pos
}

// Position computes the line and column of the cursor. LF, CR and CRLF
// each end a line.
func (s State) Position() Position {
	src := s.source()
	line, col := 1, 1
	for i := 0; i < s.pos; i++ {
		switch src.runes[i] {
		case '\n':
			line++
			col = 1
		case '\r':
			if i+1 < len(src.runes) && src.runes[i+1] == '\n' {
				continue
			}
			line++
			col = 1
		default:
			col++
		}
	}
	return Position{File: src.file, Offset: s.pos, Line: line, Column: col}
}

func (s State) String() string {
	return fmt.Sprintf("State(%d/%d)", s.pos, s.Len())
}
