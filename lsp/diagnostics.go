package lsp

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/dhamidi/comb/comb"
	"github.com/dhamidi/comb/ebnf/parse"
	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/project"
	"github.com/dhamidi/comb/report"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "comb"

// Diagnose parses text with g and reports the failure, if any, as LSP
// diagnostics. A grammar that cannot be loaded is reported at the start
// of the document.
func Diagnose(g *project.Grammar, cache *parse.Cache, text string) []protocol.Diagnostic {
	err := check(g, cache, text)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var perr *comb.ParseError
	if errors.As(err, &perr) {
		start := toLSPPosition(text, perr.Position)
		return []protocol.Diagnostic{
			newDiagnostic(protocol.Range{Start: start, End: start}, protocol.DiagnosticSeverityError, perr.Error()),
		}
	}

	return []protocol.Diagnostic{
		newDiagnostic(protocol.Range{}, protocol.DiagnosticSeverityWarning, err.Error()),
	}
}

func check(g *project.Grammar, cache *parse.Cache, text string) error {
	if g.IsBuiltin() {
		builtin, ok := grammars.Lookup(g.Name)
		if !ok {
			return fmt.Errorf("unknown builtin grammar %q", g.Name)
		}
		_, err := builtin.Parse(text)
		return err
	}

	p, err := g.Compile(cache)
	if err != nil {
		return fmt.Errorf("grammar %s: %w", g.Name, err)
	}
	_, err = p.Parse(text)
	return err
}

func newDiagnostic(r protocol.Range, severity protocol.DiagnosticSeverity, message string) protocol.Diagnostic {
	source := diagnosticSource
	return protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// toLSPPosition converts a comb position (1-based line, codepoint column)
// into an LSP position (0-based line, UTF-16 code units).
func toLSPPosition(text string, pos comb.Position) protocol.Position {
	lines := report.SplitLines(text)
	if pos.Line < 1 || pos.Line > len(lines) {
		return protocol.Position{}
	}

	units := 0
	col := 1
	for _, r := range lines[pos.Line-1] {
		if col >= pos.Column {
			break
		}
		units += utf16.RuneLen(r)
		col++
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(units),
	}
}
