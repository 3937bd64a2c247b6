// Package report renders parse errors for humans.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/comb/comb"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Option configures Render.
type Option func(*config)

type config struct {
	color   *bool
	context int
}

// WithColor forces coloring on or off. By default color is used when the
// writer is a terminal.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = &enabled
	}
}

// WithContext prints up to n lines before the offending line.
func WithContext(n int) Option {
	return func(c *config) {
		c.context = n
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes a description of perr to w: the message, the offending
// line of source and a caret under the failing column.
//
//	input.txt:1:5: expected end of input
//	  1 | testtest
//	    |     ^
func Render(w io.Writer, source string, perr *comb.ParseError, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	color := isTerminal(w)
	if cfg.color != nil {
		color = *cfg.color
	}
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}
	out := termenv.NewOutput(w, termenv.WithProfile(profile))

	pos := perr.Position
	lines := SplitLines(source)

	msg := out.String("expected " + perr.Expected).Foreground(out.Color("1")).Bold()
	if _, err := fmt.Fprintf(w, "%s: %s\n", pos, msg); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if pos.Line < 1 || pos.Line > len(lines) {
		return nil
	}

	first := pos.Line - cfg.context
	if first < 1 {
		first = 1
	}
	gutter := len(fmt.Sprint(pos.Line))
	for n := first; n <= pos.Line; n++ {
		if _, err := fmt.Fprintf(w, "  %*d | %s\n", gutter, n, lines[n-1]); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	caret := out.String("^").Foreground(out.Color("2")).Bold()
	indent := caretIndent(lines[pos.Line-1], pos.Column)
	if _, err := fmt.Fprintf(w, "  %*s | %s%s\n", gutter, "", indent, caret); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// caretIndent returns the white space that puts a caret under column
// (1-based, in codepoints) of line. Tabs are kept so the caret lines up
// however the terminal expands them.
func caretIndent(line string, column int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	return sb.String()
}

// SplitLines splits text at LF, CR and CRLF, matching how comb counts
// lines.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
