package comb

import (
	"github.com/tliron/commonlog"
)

const traceLoggerName = "comb.trace"

// Trace logs every attempt of p under name at debug level. Results are
// passed through unchanged.
func Trace[T any](p Parser[T], name string) Parser[T] {
	return Func[T](func(s State) Result[T] {
		log := commonlog.GetLogger(traceLoggerName)
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(s)
		}
		log.Debugf("%s: try at %s", name, s.Position())
		r := p.Parse(s)
		if r.Ok() {
			log.Debugf("%s: matched %d codepoints, now at %s", name, r.State.Pos()-s.Pos(), r.State.Position())
		} else {
			log.Debugf("%s: expected %s at %s", name, r.Expected, r.State.Position())
		}
		return r
	})
}
