// Package grammars holds ready-made grammars written with comb.
package grammars

import (
	_ "embed"
	"sort"
	"sync"

	"github.com/dhamidi/comb/comb"
	"github.com/dhamidi/comb/ebnf/parse"
)

// Grammar is a named grammar that parses a whole input into a value.
type Grammar struct {
	Name        string
	Description string
	parse       func(input string, opts ...comb.Option) (any, error)
}

// Parse parses the whole input.
func (g Grammar) Parse(input string, opts ...comb.Option) (any, error) {
	return g.parse(input, opts...)
}

func builtin[T any](name, description string, build func() comb.Parser[T]) Grammar {
	p := sync.OnceValue(build)
	return Grammar{
		Name:        name,
		Description: description,
		parse: func(input string, opts ...comb.Option) (any, error) {
			return comb.ParseAll(p(), input, opts...)
		},
	}
}

//go:embed ebnf/expr.ebnf
var exprGrammar string

// Expr compiles the bundled EBNF expression grammar.
func Expr() (*parse.Parser, error) {
	return parse.CompileString("expr.ebnf", exprGrammar, "Expr")
}

var exprParser = sync.OnceValues(Expr)

var registry = map[string]Grammar{}

func register(g Grammar) {
	registry[g.Name] = g
}

func init() {
	register(builtin("calc", "arithmetic expressions evaluated to a number", Calc))
	register(builtin("json", "JSON documents decoded to Go values", JSON))
	register(builtin("csv", "comma separated records", CSV))
	register(Grammar{
		Name:        "expr",
		Description: "expression syntax tree from the bundled EBNF grammar",
		parse: func(input string, opts ...comb.Option) (any, error) {
			p, err := exprParser()
			if err != nil {
				return nil, err
			}
			root, err := p.Parse(input, opts...)
			if err != nil {
				return nil, err
			}
			return root, nil
		},
	})
}

// Lookup returns the builtin grammar with the given name.
func Lookup(name string) (Grammar, bool) {
	g, ok := registry[name]
	return g, ok
}

// All returns the builtin grammars sorted by name.
func All() []Grammar {
	all := make([]Grammar, 0, len(registry))
	for _, g := range registry {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
