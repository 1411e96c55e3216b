// Package fixtures loads declarative YAML documents describing named
// globals and named example terms into the kernel's term and global-
// environment types. This is demonstration/test plumbing only: the kernel
// itself has no surface syntax and no configuration format, so fixtures
// gives cmd/pikelet and integration tests a way to name example programs
// without hand-building terms.Term trees at every call site.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pikelet-go/pikelet/internal/globals"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// Document is the top-level shape of a fixture file.
type Document struct {
	Globals  []GlobalSpec  `yaml:"globals"`
	Examples []ExampleSpec `yaml:"examples"`
}

// GlobalSpec declares or defines one global (spec.md §3.5): Definition is
// omitted for an abstract global.
type GlobalSpec struct {
	Name       string    `yaml:"name"`
	Type       TermSpec  `yaml:"type"`
	Definition *TermSpec `yaml:"definition,omitempty"`
}

// ExampleSpec names one example term, addressable from cmd/pikelet's REPL
// and from integration tests by Name.
type ExampleSpec struct {
	Name string   `yaml:"name"`
	Term TermSpec `yaml:"term"`
}

// TermSpec is a tagged union over the fixture combinator vocabulary: exactly
// one field is populated per node, matching which combinator the YAML
// author used. Build rejects a node with zero or more than one populated.
type TermSpec struct {
	Local       *uint32      `yaml:"local,omitempty"`
	Global      *string      `yaml:"global,omitempty"`
	Lam         *LamSpec     `yaml:"lam,omitempty"`
	App         *AppSpec     `yaml:"app,omitempty"`
	Ann         *AnnSpec     `yaml:"ann,omitempty"`
	Universe    *uint32      `yaml:"universe,omitempty"`
	Lift        *LiftSpec    `yaml:"lift,omitempty"`
	RecordType  []FieldSpec  `yaml:"record_type,omitempty"`
	RecordTerm  []FieldSpec  `yaml:"record_term,omitempty"`
	Field       *FieldAccess `yaml:"field,omitempty"`
	Const       *ConstSpec   `yaml:"const,omitempty"`
	Seq         []TermSpec   `yaml:"seq,omitempty"`
	ErrorMarker *bool        `yaml:"error,omitempty"`
}

// LamSpec is a function abstraction: `lam: {param: x, body: ...}`.
type LamSpec struct {
	Param string   `yaml:"param"`
	Body  TermSpec `yaml:"body"`
}

// AppSpec is function application: `app: {head: ..., argument: ...}`.
type AppSpec struct {
	Head     TermSpec `yaml:"head"`
	Argument TermSpec `yaml:"argument"`
}

// AnnSpec is a type annotation: `ann: {term: ..., type: ...}`.
type AnnSpec struct {
	Term TermSpec `yaml:"term"`
	Type TermSpec `yaml:"type"`
}

// LiftSpec shifts a term's embedded universe levels: `lift: {term: ..., shift: N}`.
type LiftSpec struct {
	Term  TermSpec `yaml:"term"`
	Shift uint32   `yaml:"shift"`
}

// FieldSpec is one labelled entry of a record_type or record_term list.
type FieldSpec struct {
	Label string   `yaml:"label"`
	Value TermSpec `yaml:"value"`
}

// FieldAccess is record projection: `field: {head: ..., label: foo}`.
type FieldAccess struct {
	Head  TermSpec `yaml:"head"`
	Label string   `yaml:"label"`
}

// ConstSpec is a primitive literal: `const: {kind: S64, value: 7}`.
type ConstSpec struct {
	Kind  string      `yaml:"kind"`
	Value interface{} `yaml:"value"`
}

// Load reads and parses a fixture document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a fixture document from raw YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: parse YAML: %w", err)
	}
	return &doc, nil
}

// Build constructs a *globals.Globals from the document's Globals section,
// declaring or defining each entry in document order (later entries may
// reference earlier ones by name).
func (d *Document) Build() (*globals.Globals, error) {
	g := globals.New()
	for _, gs := range d.Globals {
		typeTerm, err := gs.Type.Build()
		if err != nil {
			return nil, fmt.Errorf("fixtures: global %q type: %w", gs.Name, err)
		}
		if gs.Definition == nil {
			g.Declare(gs.Name, typeTerm)
			continue
		}
		defTerm, err := gs.Definition.Build()
		if err != nil {
			return nil, fmt.Errorf("fixtures: global %q definition: %w", gs.Name, err)
		}
		g.Define(gs.Name, typeTerm, defTerm)
	}
	return g, nil
}

// Examples builds the document's named example terms into a name->Term
// map. The map carries no order; callers that want to list the examples
// deterministically use NamesInOrder.
func (d *Document) Examples() (map[string]terms.Term, error) {
	out := make(map[string]terms.Term, len(d.Examples))
	for _, ex := range d.Examples {
		term, err := ex.Term.Build()
		if err != nil {
			return nil, fmt.Errorf("fixtures: example %q: %w", ex.Name, err)
		}
		out[ex.Name] = term
	}
	return out, nil
}

// NamesInOrder returns example names in the order they appear in the
// document.
func (d *Document) NamesInOrder() []string {
	out := make([]string, len(d.Examples))
	for i, ex := range d.Examples {
		out[i] = ex.Name
	}
	return out
}

// Build recursively converts a TermSpec node into a terms.Term, dispatching
// on whichever single combinator field is populated.
func (s *TermSpec) Build() (terms.Term, error) {
	count := 0
	var built terms.Term
	var err error

	tally := func(ok bool, fn func() (terms.Term, error)) {
		if !ok {
			return
		}
		count++
		if err == nil {
			built, err = fn()
		}
	}

	tally(s.Local != nil, func() (terms.Term, error) {
		return &terms.Local{Index: terms.LocalIndex(*s.Local)}, nil
	})
	tally(s.Global != nil, func() (terms.Term, error) {
		return &terms.Global{Name: *s.Global}, nil
	})
	tally(s.Lam != nil, func() (terms.Term, error) { return s.Lam.build() })
	tally(s.App != nil, func() (terms.Term, error) { return s.App.build() })
	tally(s.Ann != nil, func() (terms.Term, error) { return s.Ann.build() })
	tally(s.Universe != nil, func() (terms.Term, error) {
		return &terms.TypeType{Level: terms.UniverseLevel(*s.Universe)}, nil
	})
	tally(s.Lift != nil, func() (terms.Term, error) { return s.Lift.build() })
	tally(s.RecordType != nil, func() (terms.Term, error) { return buildRecordType(s.RecordType) })
	tally(s.RecordTerm != nil, func() (terms.Term, error) { return buildRecordTerm(s.RecordTerm) })
	tally(s.Field != nil, func() (terms.Term, error) { return s.Field.build() })
	tally(s.Const != nil, func() (terms.Term, error) { return s.Const.build() })
	tally(s.Seq != nil, func() (terms.Term, error) { return buildSeq(s.Seq) })
	tally(s.ErrorMarker != nil && *s.ErrorMarker, func() (terms.Term, error) { return &terms.Error{}, nil })

	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, fmt.Errorf("fixtures: term node must set exactly one combinator, got %d", count)
	}
	return built, nil
}

func (l *LamSpec) build() (terms.Term, error) {
	body, err := l.Body.Build()
	if err != nil {
		return nil, err
	}
	return &terms.FunctionTerm{ParamName: terms.NameHint(l.Param), Body: body}, nil
}

func (a *AppSpec) build() (terms.Term, error) {
	head, err := a.Head.Build()
	if err != nil {
		return nil, err
	}
	argument, err := a.Argument.Build()
	if err != nil {
		return nil, err
	}
	return &terms.FunctionElim{Head: head, Argument: argument}, nil
}

func (a *AnnSpec) build() (terms.Term, error) {
	term, err := a.Term.Build()
	if err != nil {
		return nil, err
	}
	typ, err := a.Type.Build()
	if err != nil {
		return nil, err
	}
	return &terms.Ann{Term: term, Type: typ}, nil
}

func (l *LiftSpec) build() (terms.Term, error) {
	term, err := l.Term.Build()
	if err != nil {
		return nil, err
	}
	return &terms.Lift{Term: term, Shift: terms.UniverseOffset(l.Shift)}, nil
}

func (f *FieldAccess) build() (terms.Term, error) {
	head, err := f.Head.Build()
	if err != nil {
		return nil, err
	}
	return &terms.RecordElim{Head: head, Label: f.Label}, nil
}

func buildRecordType(fields []FieldSpec) (terms.Term, error) {
	entries := make([]terms.RecordTypeEntry, len(fields))
	for i, f := range fields {
		typ, err := f.Value.Build()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Label, err)
		}
		entries[i] = terms.RecordTypeEntry{Label: f.Label, Type: typ}
	}
	return &terms.RecordType{Entries: entries}, nil
}

func buildRecordTerm(fields []FieldSpec) (terms.Term, error) {
	entries := make([]terms.RecordTermEntry, len(fields))
	for i, f := range fields {
		val, err := f.Value.Build()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Label, err)
		}
		entries[i] = terms.RecordTermEntry{Label: f.Label, Term: val}
	}
	return &terms.RecordTerm{Entries: entries}, nil
}

func buildSeq(items []TermSpec) (terms.Term, error) {
	entries := make([]terms.Term, len(items))
	for i := range items {
		term, err := items[i].Build()
		if err != nil {
			return nil, fmt.Errorf("seq[%d]: %w", i, err)
		}
		entries[i] = term
	}
	return &terms.Sequence{Entries: entries}, nil
}

func (c *ConstSpec) build() (terms.Term, error) {
	kind, ok := parseConstantKind(c.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown constant kind %q", c.Kind)
	}
	if kind == terms.String {
		s, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("const kind String needs a string value, got %T", c.Value)
		}
		return &terms.ConstantTerm{Constant: terms.NewStringConstant(s)}, nil
	}
	value, err := coerceConstantValue(kind, c.Value)
	if err != nil {
		return nil, err
	}
	return &terms.ConstantTerm{Constant: terms.Constant{Kind: kind, Value: value}}, nil
}

func parseConstantKind(name string) (terms.ConstantKind, bool) {
	switch name {
	case "U8":
		return terms.U8, true
	case "U16":
		return terms.U16, true
	case "U32":
		return terms.U32, true
	case "U64":
		return terms.U64, true
	case "S8":
		return terms.S8, true
	case "S16":
		return terms.S16, true
	case "S32":
		return terms.S32, true
	case "S64":
		return terms.S64, true
	case "F32":
		return terms.F32, true
	case "F64":
		return terms.F64, true
	case "Char":
		return terms.Char, true
	case "String":
		return terms.String, true
	default:
		return 0, false
	}
}

// coerceConstantValue converts the loosely-typed YAML scalar (yaml.v3
// decodes unadorned integers as int) into the Go representation Constant
// expects for kind (spec §3.4: uint64 for unsigned kinds, int64 for signed,
// float32 for F32 and float64 for F64, both parsed from the same YAML float
// literal since YAML doesn't distinguish them, rune for Char).
func coerceConstantValue(kind terms.ConstantKind, raw interface{}) (interface{}, error) {
	switch kind {
	case terms.U8, terms.U16, terms.U32, terms.U64:
		n, err := asInt64(raw)
		if err != nil {
			return nil, err
		}
		return uint64(n), nil
	case terms.S8, terms.S16, terms.S32, terms.S64:
		return asInt64(raw)
	case terms.F32:
		f, err := asFloat64(raw)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	case terms.F64:
		return asFloat64(raw)
	case terms.Char:
		s, ok := raw.(string)
		if !ok || len([]rune(s)) != 1 {
			return nil, fmt.Errorf("const kind Char needs a single-rune string, got %v", raw)
		}
		return []rune(s)[0], nil
	default:
		return nil, fmt.Errorf("unsupported constant kind %s", kind)
	}
}

func asInt64(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected an integer value, got %T", raw)
	}
}

func asFloat64(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %T", raw)
	}
}
