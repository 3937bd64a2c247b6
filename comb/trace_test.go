package comb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func TestTracePassesResultsThrough(t *testing.T) {
	p := Trace(Sequence(Letters(), EOL()), "line")

	r := Run(p, "Hello\n")
	if !r.Ok() || r.State.Pos() != 6 {
		t.Errorf("got %v, want success at 6", r)
	}

	r = Run(p, "Hello")
	if r.Ok() || r.Expected != "end of line" || r.State.Pos() != 5 {
		t.Errorf("got %v, want failure(end of line) at 5", r)
	}
}

// traceOutput runs fn with commonlog writing to a file at the given
// verbosity and returns what was logged.
func traceOutput(t *testing.T, verbosity int, fn func()) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	commonlog.Configure(verbosity, &path)
	defer commonlog.Configure(0, nil)

	fn()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestTraceLogsAtDebug(t *testing.T) {
	p := Trace(Sequence(Letters(), EOL()), "line")

	out := traceOutput(t, 2, func() {
		Run(p, "Hello\n")
		Run(p, "Hello")
	})

	for _, want := range []string{
		"line: try at 1:1",
		"line: matched 6 codepoints, now at 2:1",
		"line: expected end of line at 1:6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log = %q, want it to contain %q", out, want)
		}
	}
}

func TestTraceSilentWithoutDebug(t *testing.T) {
	p := Trace(Letters(), "word")

	out := traceOutput(t, 0, func() {
		Run(p, "Hello")
	})
	if strings.Contains(out, "word:") {
		t.Errorf("log = %q, want no trace lines below debug level", out)
	}
}
