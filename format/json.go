package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/comb/ebnf/parse"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *parse.Node) error {
	return e.write(nodeToJSON(node))
}

// EncodeValue writes v as indented JSON. Syntax trees are converted the
// same way Encode does.
func (e *JSONEncoder) EncodeValue(v any) error {
	if node, ok := v.(*parse.Node); ok {
		return e.Encode(node)
	}
	return e.write(v)
}

func (e *JSONEncoder) write(v any) error {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     jsonSpan    `json:"span"`
	Text     *string     `json:"text,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func nodeToJSON(n *parse.Node) *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind,
		Span: jsonSpan{Start: n.Span.Start, End: n.Span.End},
	}

	if n.IsLeaf() {
		text := n.Text
		jn.Text = &text
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
