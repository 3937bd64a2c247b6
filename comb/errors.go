package comb

import "fmt"

// ParseError is the error form of a failed Result.
type ParseError struct {
	Expected string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at %s", e.Expected, e.Position)
}
