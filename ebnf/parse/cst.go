// Package parse compiles EBNF grammars into comb parsers producing
// concrete syntax trees.
package parse

import "strings"

// Span is a range of codepoint offsets in the parsed input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of codepoints covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Node represents a node in the concrete syntax tree.
// Leaf nodes carry the consumed text; interior nodes have Children.
type Node struct {
	Kind     string  // Production name, or the quoted literal for tokens
	Children []*Node // Child nodes (nil for leaves)
	Text     string  // Consumed text (leaves only)
	Span     Span    // Source span covering this node
	leaf     bool
}

// IsLeaf returns true if the node was produced by a lexical production or
// a literal token.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Source returns the text covered by the node. For interior nodes the
// text of the leaves is concatenated, without the whitespace between them.
func (n *Node) Source() string {
	if n.leaf {
		return n.Text
	}
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.leaf {
			sb.WriteString(c.Text)
		}
		return true
	})
	return sb.String()
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first descendant (or n itself) of the given kind.
func (n *Node) Find(kind string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == kind {
			found = c
			return false
		}
		return true
	})
	return found
}

// AddChild appends a child node and updates the span.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Span.Start = child.Span.Start
	}
	n.Span.End = child.Span.End
}

// NewLeaf creates a leaf node.
func NewLeaf(kind, text string, span Span) *Node {
	return &Node{
		Kind: kind,
		Text: text,
		Span: span,
		leaf: true,
	}
}

// NewNonTerminal creates an empty interior node positioned at pos.
func NewNonTerminal(kind string, pos int) *Node {
	return &Node{
		Kind:     kind,
		Children: make([]*Node, 0),
		Span:     Span{Start: pos, End: pos},
	}
}
