// Package format writes parse results in machine and human readable form.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/comb/ebnf/parse"
)

// Encoder writes syntax trees and grammar values to an output.
type Encoder interface {
	Encode(node *parse.Node) error
	EncodeValue(v any) error
}

// New returns the encoder registered under name ("json" or "text").
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "text":
		return NewTextEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
