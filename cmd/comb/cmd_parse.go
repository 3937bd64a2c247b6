package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/comb/comb"
	"github.com/dhamidi/comb/ebnf/parse"
	"github.com/dhamidi/comb/format"
	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/project"
	"github.com/dhamidi/comb/report"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var grammarName string
	var startProduction string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump the result",
		Long: `Parse a file and dump the result.

The grammar is either a builtin (see "comb grammars"), an .ebnf file
together with --start, or, when --grammar is omitted, the grammar the
workspace file (comb.yaml) associates with the file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			source := string(data)

			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			parseFn, err := resolveGrammar(filename, grammarName, startProduction)
			if err != nil {
				return err
			}

			value, err := parseFn(source, comb.WithFile(filename))
			if err != nil {
				var perr *comb.ParseError
				if errors.As(err, &perr) {
					if rerr := report.Render(cmd.ErrOrStderr(), source, perr); rerr != nil {
						return rerr
					}
					cmd.SilenceErrors = true
				}
				return err
			}

			if err := encoder.EncodeValue(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "", "builtin grammar name or .ebnf file")
	cmd.Flags().StringVar(&startProduction, "start", "", "start production for .ebnf grammars")

	return cmd
}

type parseFunc func(input string, opts ...comb.Option) (any, error)

func resolveGrammar(filename, grammarName, start string) (parseFunc, error) {
	if grammarName == "" {
		proj, err := project.LoadFrom(filepath.Dir(filename))
		if err != nil {
			return nil, err
		}
		g := proj.GrammarFor(filename)
		if g == nil {
			return nil, fmt.Errorf("no grammar for %s: use --grammar or add it to %s", filename, project.FileName)
		}
		if !g.IsBuiltin() {
			return ebnfParseFunc(g.FilePath(), g.Start)
		}
		grammarName = g.Name
	}

	if filepath.Ext(grammarName) == ".ebnf" {
		if start == "" {
			return nil, fmt.Errorf("--start is required with an .ebnf grammar")
		}
		return ebnfParseFunc(grammarName, start)
	}

	g, ok := grammars.Lookup(grammarName)
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q", grammarName)
	}
	return g.Parse, nil
}

func ebnfParseFunc(path, start string) (parseFunc, error) {
	g, err := parse.LoadGrammar(path)
	if err != nil {
		return nil, err
	}
	p, err := parse.Compile(g, start)
	if err != nil {
		return nil, err
	}
	return func(input string, opts ...comb.Option) (any, error) {
		root, err := p.Parse(input, opts...)
		if err != nil {
			return nil, err
		}
		return root, nil
	}, nil
}
