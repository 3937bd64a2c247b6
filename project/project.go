// Package project reads the comb.yaml workspace file that associates
// source files with the grammars used to parse them.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/comb/ebnf/parse"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the workspace file.
const FileName = "comb.yaml"

// Project is a directory tree whose files are parsed with the grammars
// listed in its workspace file.
type Project struct {
	RootDir  string
	Path     string // workspace file; empty for the default project
	Grammars []*Grammar
}

// Grammar associates files matching Pattern with a grammar. When File is
// empty, Name refers to a builtin grammar.
type Grammar struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	File    string `yaml:"file,omitempty"`
	Start   string `yaml:"start,omitempty"`

	Project *Project `yaml:"-"`
}

type workspaceFile struct {
	Grammars []*Grammar `yaml:"grammars"`
}

// Default returns a project that maps common extensions to the builtin
// grammars. It is used when no workspace file exists.
func Default(rootDir string) *Project {
	p := &Project{
		RootDir: rootDir,
		Grammars: []*Grammar{
			{Name: "json", Pattern: "*.json"},
			{Name: "csv", Pattern: "*.csv"},
			{Name: "calc", Pattern: "*.calc"},
			{Name: "expr", Pattern: "*.expr"},
		},
	}
	p.link()
	return p
}

// Load finds the workspace file in the current directory or one of its
// parents.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom finds the workspace file in dir or one of its parents. If there
// is none, the default project rooted at dir is returned.
func LoadFrom(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	for cur := abs; ; {
		path := filepath.Join(cur, FileName)
		if _, err := os.Stat(path); err == nil {
			return Read(path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return Default(abs), nil
		}
		cur = parent
	}
}

// Read parses the workspace file at path.
func Read(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}

	var wf workspaceFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse workspace %s: %w", path, err)
	}

	p := &Project{
		RootDir:  filepath.Dir(path),
		Path:     path,
		Grammars: wf.Grammars,
	}
	for i, g := range p.Grammars {
		if g == nil || g.Name == "" {
			return nil, fmt.Errorf("parse workspace %s: grammar %d has no name", path, i+1)
		}
		if g.Pattern == "" {
			return nil, fmt.Errorf("parse workspace %s: grammar %s has no pattern", path, g.Name)
		}
		if _, err := filepath.Match(g.Pattern, ""); err != nil {
			return nil, fmt.Errorf("parse workspace %s: grammar %s: %w", path, g.Name, err)
		}
		if g.File != "" && g.Start == "" {
			return nil, fmt.Errorf("parse workspace %s: grammar %s has no start production", path, g.Name)
		}
	}
	p.link()
	return p, nil
}

func (p *Project) link() {
	for _, g := range p.Grammars {
		g.Project = p
	}
}

// GrammarFor returns the first grammar whose pattern matches path, or nil.
// Patterns without a separator are matched against the base name, others
// against the path relative to the project root.
func (p *Project) GrammarFor(path string) *Grammar {
	rel := path
	if filepath.IsAbs(path) {
		if r, err := filepath.Rel(p.RootDir, path); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, g := range p.Grammars {
		target := rel
		if !strings.ContainsRune(g.Pattern, '/') {
			target = base
		}
		if ok, _ := filepath.Match(g.Pattern, target); ok {
			return g
		}
	}
	return nil
}

// IsBuiltin reports whether the grammar refers to a builtin grammar.
func (g *Grammar) IsBuiltin() bool {
	return g.File == ""
}

// FilePath returns the grammar file resolved against the project root.
func (g *Grammar) FilePath() string {
	if g.File == "" || filepath.IsAbs(g.File) || g.Project == nil {
		return g.File
	}
	return filepath.Join(g.Project.RootDir, g.File)
}

// Compile reads and compiles the grammar file through cache.
func (g *Grammar) Compile(cache *parse.Cache) (*parse.Parser, error) {
	if g.IsBuiltin() {
		return nil, fmt.Errorf("compile grammar %s: builtin grammars are not compiled", g.Name)
	}
	path := g.FilePath()
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}
	return cache.Get(path, string(src), g.Start)
}
