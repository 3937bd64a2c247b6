package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/comb/ebnf/parse"
)

// TextEncoder writes one line per node, indented by depth:
//
//	Expr 0..5
//	  Term 0..1
//	    number 0..1 "1"
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node *parse.Node) error {
	var sb strings.Builder
	writeNode(&sb, node, 0)
	_, err := io.WriteString(e.w, sb.String())
	return err
}

// EncodeValue writes grammar values as an indented outline. Maps are
// written with sorted keys.
func (e *TextEncoder) EncodeValue(v any) error {
	if node, ok := v.(*parse.Node); ok {
		return e.Encode(node)
	}
	var sb strings.Builder
	writeValue(&sb, v, 0)
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, n *parse.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsLeaf() {
		fmt.Fprintf(sb, "%s%s %d..%d %q\n", indent, n.Kind, n.Span.Start, n.Span.End, n.Text)
		return
	}
	fmt.Fprintf(sb, "%s%s %d..%d\n", indent, n.Kind, n.Span.Start, n.Span.End)
	for _, c := range n.Children {
		writeNode(sb, c, depth+1)
	}
}

func writeValue(sb *strings.Builder, v any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if isScalar(v[k]) {
				fmt.Fprintf(sb, "%s%s: %s\n", indent, k, scalar(v[k]))
				continue
			}
			fmt.Fprintf(sb, "%s%s:\n", indent, k)
			writeValue(sb, v[k], depth+1)
		}
	case []any:
		for _, item := range v {
			writeItem(sb, item, depth)
		}
	case [][]string:
		for _, row := range v {
			fmt.Fprintf(sb, "%s- %s\n", indent, strings.Join(quoteAll(row), ", "))
		}
	default:
		fmt.Fprintf(sb, "%s%s\n", indent, scalar(v))
	}
}

func writeItem(sb *strings.Builder, item any, depth int) {
	indent := strings.Repeat("  ", depth)
	if isScalar(item) {
		fmt.Fprintf(sb, "%s- %s\n", indent, scalar(item))
		return
	}
	fmt.Fprintf(sb, "%s-\n", indent)
	writeValue(sb, item, depth+1)
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any, [][]string:
		return false
	}
	return true
}

func scalar(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
