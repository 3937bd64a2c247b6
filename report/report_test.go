package report

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/dhamidi/comb/comb"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		source string
		parser comb.Parser[string]
		opts   []Option
		want   string
	}{
		{
			name:   "trailing input",
			source: "testtest",
			parser: comb.String("test"),
			want: "1:5: expected end of input\n" +
				"  1 | testtest\n" +
				"    |     ^\n",
		},
		{
			name:   "wide characters",
			source: "日本x",
			parser: comb.String("日本"),
			want: "1:3: expected end of input\n" +
				"  1 | 日本x\n" +
				"    |     ^\n",
		},
		{
			name:   "second line with context",
			source: "ab\r\ncd!",
			parser: comb.Regexp(`[a-d\r\n]+`, "letters"),
			opts:   []Option{WithContext(1)},
			want: "2:3: expected end of input\n" +
				"  1 | ab\n" +
				"  2 | cd!\n" +
				"    |   ^\n",
		},
		{
			name:   "tab",
			source: "\tx",
			parser: comb.String("\t"),
			want: "1:2: expected end of input\n" +
				"  1 | \tx\n" +
				"    | \t^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := comb.ParseAll(tt.parser, tt.source)
			var perr *comb.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *comb.ParseError", err)
			}

			var buf bytes.Buffer
			if err := Render(&buf, tt.source, perr, append(tt.opts, WithColor(false))...); err != nil {
				t.Fatalf("render: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderColor(t *testing.T) {
	perr := &comb.ParseError{Expected: "x", Position: comb.Position{Line: 1, Column: 1}}

	var buf bytes.Buffer
	if err := Render(&buf, "y", perr, WithColor(true)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Errorf("colored output has no escape sequences: %q", buf.String())
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\r\nc\rd")
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
