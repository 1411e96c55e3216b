package terms

import (
	"fmt"
	"strings"
)

// Term is the input language the kernel evaluates (spec §3.2). Terms are
// immutable; subterms are shared by ordinary Go pointer references so that
// Lift and Ann are zero-copy and closures can stash handles to bodies
// without deep-copying them.
type Term interface {
	String() string
	termNode()
}

// Global is a free reference to a named entry in the global environment.
type Global struct {
	Name string
}

func (g *Global) termNode()     {}
func (g *Global) String() string { return g.Name }

// Local is a bound variable referenced by de Bruijn index.
type Local struct {
	Index LocalIndex
}

func (l *Local) termNode()     {}
func (l *Local) String() string { return fmt.Sprintf("local(%d)", l.Index) }

// Ann is a type annotation. Evaluation drops the annotation and keeps
// only the term.
type Ann struct {
	Term Term
	Type Term
}

func (a *Ann) termNode()     {}
func (a *Ann) String() string { return fmt.Sprintf("(%s : %s)", a.Term, a.Type) }

// TypeType is the type Type ℓ.
type TypeType struct {
	Level UniverseLevel
}

func (t *TypeType) termNode()     {}
func (t *TypeType) String() string { return fmt.Sprintf("Type^%d", t.Level) }

// Lift evaluates Term with the universe offset incremented by Shift.
type Lift struct {
	Term  Term
	Shift UniverseOffset
}

func (l *Lift) termNode() {}
func (l *Lift) String() string {
	return fmt.Sprintf("lift(%s, %d)", l.Term, l.Shift)
}

// NameHint is an optional display-only hint attached to a binder; it plays
// no role in evaluation or equality, only in read-back for display.
type NameHint string

// FunctionType is a dependent function (Π) type.
type FunctionType struct {
	ParamName NameHint
	ParamType Term
	BodyType  Term
}

func (f *FunctionType) termNode() {}
func (f *FunctionType) String() string {
	name := string(f.ParamName)
	if name == "" {
		name = "_"
	}
	return fmt.Sprintf("(%s : %s) -> %s", name, f.ParamType, f.BodyType)
}

// FunctionTerm is a function abstraction (λ).
type FunctionTerm struct {
	ParamName NameHint
	Body      Term
}

func (f *FunctionTerm) termNode() {}
func (f *FunctionTerm) String() string {
	name := string(f.ParamName)
	if name == "" {
		name = "_"
	}
	return fmt.Sprintf("fun %s => %s", name, f.Body)
}

// FunctionElim is function application.
type FunctionElim struct {
	Head     Term
	Argument Term
}

func (f *FunctionElim) termNode() {}
func (f *FunctionElim) String() string {
	return fmt.Sprintf("%s(%s)", f.Head, f.Argument)
}

// RecordTypeEntry is one labelled field of a RecordType; later entries may
// depend on earlier labels.
type RecordTypeEntry struct {
	Label string
	Type  Term
}

// RecordType is a dependent record type.
type RecordType struct {
	Entries []RecordTypeEntry
}

func (r *RecordType) termNode() {}
func (r *RecordType) String() string {
	parts := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		parts[i] = fmt.Sprintf("%s : %s", e.Label, e.Type)
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// RecordTermEntry is one labelled field of a RecordTerm.
type RecordTermEntry struct {
	Label string
	Term  Term
}

// RecordTerm is a record introduction.
type RecordTerm struct {
	Entries []RecordTermEntry
}

func (r *RecordTerm) termNode() {}
func (r *RecordTerm) String() string {
	parts := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		parts[i] = fmt.Sprintf("%s = %s", e.Label, e.Term)
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// RecordElim is field projection.
type RecordElim struct {
	Head  Term
	Label string
}

func (r *RecordElim) termNode() {}
func (r *RecordElim) String() string {
	return fmt.Sprintf("%s.%s", r.Head, r.Label)
}

// Sequence is an ordered sequence literal, typed against List or Array by
// the (external) elaborator; the kernel makes no distinction (spec §9
// hazard 3).
type Sequence struct {
	Entries []Term
}

func (s *Sequence) termNode() {}
func (s *Sequence) String() string {
	parts := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ConstantTerm wraps a primitive constant (spec §3.4).
type ConstantTerm struct {
	Constant Constant
}

func (c *ConstantTerm) termNode()     {}
func (c *ConstantTerm) String() string { return c.Constant.String() }

// Error is the sentinel injected on client errors; it propagates silently
// through every kernel operation (spec §3.6 invariant 5, §7).
type Error struct{}

func (e *Error) termNode()     {}
func (e *Error) String() string { return "<error>" }
