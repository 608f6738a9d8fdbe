package grammar

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Registry maps file extensions to grammars.
//
// A Registry is never modified after construction.
// Methods that "change" it return a new Registry instead.
type Registry struct {
	byExt  map[string]*Grammar // ".ext" -> grammar
	byName map[string]*Grammar // grammar.Name -> grammar
}

// New builds a registry from the given extension table.
// Extensions are matched case-insensitively,
// with or without the leading ".".
func New(table map[string]*Grammar) *Registry {
	r := Registry{
		byExt:  make(map[string]*Grammar, len(table)),
		byName: make(map[string]*Grammar),
	}
	for ext, g := range table {
		r.byExt[normalizeExt(ext)] = g
		if g.Name != "" {
			r.byName[g.Name] = g
		}
	}
	return &r
}

// Lookup returns the grammar registered for the given extension,
// or [Default] if none is.
func (r *Registry) Lookup(ext string) *Grammar {
	if g, ok := r.byExt[normalizeExt(ext)]; ok {
		return g
	}
	return Default
}

// ForPath returns the grammar for a file based on its extension.
func (r *Registry) ForPath(path string) *Grammar {
	return r.Lookup(filepath.Ext(path))
}

// Language returns the grammar with the given name.
// Names are matched case-insensitively.
func (r *Registry) Language(name string) (*Grammar, bool) {
	g, ok := r.byName[strings.ToLower(name)]
	return g, ok
}

// Names returns the sorted names of all registered languages.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.byName))
}

// Alias returns a copy of this registry
// that also maps ext to the language with the given name.
// It fails if no such language is registered.
func (r *Registry) Alias(ext, name string) (*Registry, error) {
	g, ok := r.Language(name)
	if !ok {
		return nil, errtrace.Errorf("unknown language %q: valid values are %q", name, r.Names())
	}

	table := maps.Clone(r.byExt)
	table[ext] = g
	return New(table), nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
