package parse

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// checkLeftRecursion rejects grammars in which a production can reach
// itself without consuming input. Such grammars never terminate under
// recursive descent.
func checkLeftRecursion(g ebnf.Grammar) error {
	nullable := nullableSet(g)

	edges := make(map[string][]string, len(g))
	for name, prod := range g {
		seen := make(map[string]bool)
		leftNames(prod.Expr, nullable, seen)
		for n := range seen {
			edges[name] = append(edges[name], n)
		}
		sort.Strings(edges[name])
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(g))
	var path []string
	var visit func(string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case active:
			i := 0
			for path[i] != name {
				i++
			}
			cycle := append(append([]string{}, path[i:]...), name)
			return fmt.Errorf("left recursion: %s", strings.Join(cycle, " -> "))
		}
		state[name] = active
		path = append(path, name)
		for _, next := range edges[name] {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

func nullableSet(g ebnf.Grammar) map[string]bool {
	nullable := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !nullable[name] && isNullable(prod.Expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func isNullable(expr ebnf.Expression, nullable map[string]bool) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *ebnf.Token:
		return e.String == ""
	case *ebnf.Name:
		return nullable[e.String]
	case ebnf.Sequence:
		for _, item := range e {
			if !isNullable(item, nullable) {
				return false
			}
		}
		return true
	case ebnf.Alternative:
		for _, alt := range e {
			if isNullable(alt, nullable) {
				return true
			}
		}
		return false
	case *ebnf.Option, *ebnf.Repetition:
		return true
	case *ebnf.Group:
		return isNullable(e.Body, nullable)
	}
	return false
}

// leftNames collects the productions that can be entered before any input
// is consumed by expr.
func leftNames(expr ebnf.Expression, nullable map[string]bool, out map[string]bool) {
	switch e := expr.(type) {
	case *ebnf.Name:
		out[e.String] = true
	case ebnf.Sequence:
		for _, item := range e {
			leftNames(item, nullable, out)
			if !isNullable(item, nullable) {
				return
			}
		}
	case ebnf.Alternative:
		for _, alt := range e {
			leftNames(alt, nullable, out)
		}
	case *ebnf.Option:
		leftNames(e.Body, nullable, out)
	case *ebnf.Repetition:
		leftNames(e.Body, nullable, out)
	case *ebnf.Group:
		leftNames(e.Body, nullable, out)
	}
}
