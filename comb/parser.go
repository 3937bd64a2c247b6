package comb

// Parser is the unit of composition. Parse must not modify anything but
// the values it returns, so a Parser can be shared freely.
type Parser[T any] interface {
	Parse(s State) Result[T]
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(s State) Result[T]

func (f Func[T]) Parse(s State) Result[T] {
	return f(s)
}

type Option func(*config)

type config struct {
	file string
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFile sets the file name reported in positions and errors.
func WithFile(name string) Option {
	return func(c *config) {
		c.file = name
	}
}
