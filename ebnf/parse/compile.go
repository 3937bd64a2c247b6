package parse

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/comb/comb"
	"golang.org/x/exp/ebnf"
)

// isLexical follows the ebnf package: names starting with a lowercase
// letter denote lexical productions.
func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}

type nodes = []*Node

// compiler turns the productions of a grammar into parsers. Every
// production is compiled before the first parse; names refer to each
// other through comb.Lazy so recursion is resolved at parse time.
type compiler struct {
	grammar ebnf.Grammar
	rules   map[string]comb.Parser[*Node]
	ws      comb.Parser[string]
}

func newCompiler(g ebnf.Grammar) *compiler {
	return &compiler{
		grammar: g,
		rules:   make(map[string]comb.Parser[*Node], len(g)),
		ws:      comb.WhitespaceOptional(),
	}
}

func (c *compiler) compileAll() {
	for name, prod := range c.grammar {
		c.rules[name] = c.production(name, prod.Expr)
	}
}

func (c *compiler) production(name string, expr ebnf.Expression) comb.Parser[*Node] {
	if isLexical(name) {
		body := comb.Recognize(c.expr(expr, false))
		leaf := comb.Func[*Node](func(s comb.State) comb.Result[*Node] {
			r := body.Parse(s)
			if !r.Ok() {
				return comb.Retype[*Node](r)
			}
			return comb.Success(r.State, NewLeaf(name, r.Value, Span{s.Pos(), r.State.Pos()}))
		})
		return comb.Trace(comb.Error[*Node](leaf, name), name)
	}

	body := c.expr(expr, true)
	node := comb.Func[*Node](func(s comb.State) comb.Result[*Node] {
		r := body.Parse(s)
		if !r.Ok() {
			return comb.Retype[*Node](r)
		}
		n := NewNonTerminal(name, s.Pos())
		for _, child := range r.Value {
			n.AddChild(child)
		}
		return comb.Success(r.State, n)
	})
	return comb.Trace[*Node](node, name)
}

// expr compiles expr into a parser yielding the child nodes it matched.
// In syntactic context, optional whitespace is skipped before every token
// and every reference to a lexical production.
func (c *compiler) expr(expr ebnf.Expression, syntactic bool) comb.Parser[nodes] {
	switch e := expr.(type) {
	case nil:
		return comb.Succeed[nodes](nil)

	case *ebnf.Token:
		return c.skip(leaf(strconv.Quote(e.String), comb.String(e.String)), syntactic)

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		kind := strconv.Quote(e.Begin.String) + "…" + strconv.Quote(e.End.String)
		return c.skip(leaf(kind, comb.Range(lo, hi)), syntactic)

	case ebnf.Sequence:
		items := make([]comb.Parser[nodes], len(e))
		for i, item := range e {
			items[i] = c.expr(item, syntactic)
		}
		return comb.Map(comb.Sequence(items...), flatten)

	case ebnf.Alternative:
		alts := make([]comb.Parser[nodes], len(e))
		for i, alt := range e {
			alts[i] = c.expr(alt, syntactic)
		}
		return comb.Choice(alts...)

	case *ebnf.Repetition:
		return comb.Map(comb.Many(c.expr(e.Body, syntactic)), flatten)

	case *ebnf.Option:
		return comb.Map(comb.Optional(c.expr(e.Body, syntactic)), func(v *nodes) nodes {
			if v == nil {
				return nil
			}
			return *v
		})

	case *ebnf.Group:
		return c.expr(e.Body, syntactic)

	case *ebnf.Name:
		name := e.String
		ref := comb.Map(comb.Lazy(func() comb.Parser[*Node] {
			return c.rules[name]
		}), func(n *Node) nodes {
			return nodes{n}
		})
		if isLexical(name) {
			return c.skip(ref, syntactic)
		}
		return ref

	default:
		panic(fmt.Sprintf("parse: unexpected expression %T", expr))
	}
}

func (c *compiler) skip(p comb.Parser[nodes], syntactic bool) comb.Parser[nodes] {
	if !syntactic {
		return p
	}
	return comb.TakeRight(c.ws, p)
}

func leaf(kind string, p comb.Parser[string]) comb.Parser[nodes] {
	return comb.Func[nodes](func(s comb.State) comb.Result[nodes] {
		r := p.Parse(s)
		if !r.Ok() {
			return comb.Retype[nodes](r)
		}
		return comb.Success(r.State, nodes{NewLeaf(kind, r.Value, Span{s.Pos(), r.State.Pos()})})
	})
}

func flatten(groups []nodes) nodes {
	var out nodes
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
