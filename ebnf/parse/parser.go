package parse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/comb/comb"
	"golang.org/x/exp/ebnf"
)

// Parser parses input according to a compiled grammar.
type Parser struct {
	grammar ebnf.Grammar
	start   string
	root    comb.Parser[*Node]
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// ParseGrammar reads an EBNF grammar from r. name is used in error
// positions.
func ParseGrammar(name string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// Compile verifies g against the start production and builds a parser for
// it. Grammars with left recursion are rejected.
func Compile(g ebnf.Grammar, start string) (*Parser, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	if err := checkLeftRecursion(g); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := newCompiler(g)
	c.compileAll()

	root := c.rules[start]
	if !isLexical(start) {
		root = comb.TakeLeft(root, c.ws)
	}
	return &Parser{grammar: g, start: start, root: root}, nil
}

// CompileString parses and compiles a grammar held in memory.
func CompileString(name, src, start string) (*Parser, error) {
	g, err := ParseGrammar(name, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return Compile(g, start)
}

// Start returns the name of the start production.
func (p *Parser) Start() string {
	return p.start
}

// Grammar returns the grammar the parser was compiled from.
func (p *Parser) Grammar() ebnf.Grammar {
	return p.grammar
}

// Combinator returns the compiled start production. Trailing input is not
// rejected, so it can be embedded in larger comb grammars.
func (p *Parser) Combinator() comb.Parser[*Node] {
	return p.root
}

// Parse parses the whole input starting from the start production.
// Failures are reported as *comb.ParseError.
func (p *Parser) Parse(input string, opts ...comb.Option) (*Node, error) {
	return comb.ParseAll(p.root, input, opts...)
}
