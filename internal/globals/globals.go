// Package globals holds the kernel's global environment: a mapping from
// names to a type and an optional definition (spec §3.5). A definition-
// less global is an abstract constant; a defined global evaluates lazily
// and glues once forced.
package globals

import "github.com/pikelet-go/pikelet/internal/terms"

// Entry is one global binding.
type Entry struct {
	Type       terms.Term
	Definition terms.Term // nil for an abstract (definition-less) global
}

// Globals is the kernel's global environment. Iteration order (Names) is
// insertion order, kept deterministic for display purposes.
type Globals struct {
	entries map[string]Entry
	order   []string
}

// New creates an empty global environment.
func New() *Globals {
	return &Globals{entries: make(map[string]Entry)}
}

// Declare adds an abstract global: a type with no definition.
func (g *Globals) Declare(name string, typ terms.Term) {
	g.insert(name, Entry{Type: typ})
}

// Define adds a defined global: a type and a definition that evaluates
// lazily wherever the global is referenced.
func (g *Globals) Define(name string, typ terms.Term, definition terms.Term) {
	g.insert(name, Entry{Type: typ, Definition: definition})
}

func (g *Globals) insert(name string, entry Entry) {
	if _, exists := g.entries[name]; !exists {
		g.order = append(g.order, name)
	}
	g.entries[name] = entry
}

// Get looks up a global by name.
func (g *Globals) Get(name string) (Entry, bool) {
	entry, ok := g.entries[name]
	return entry, ok
}

// Names returns the declared globals in insertion order.
func (g *Globals) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}
