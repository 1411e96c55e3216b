package semantics

import (
	"fmt"
	"strings"

	"github.com/pikelet-go/pikelet/internal/terms"
)

// Value is the semantic domain produced by evaluation (spec §3.3). Naming
// mirrors the teacher's runtime-value convention (IntValue, ListValue,
// ...): every variant here is a *XxxValue.
type Value interface {
	String() string
	valueNode()
}

// HeadKind tags the two kinds of neutral head.
type HeadKind int

const (
	HeadGlobal HeadKind = iota
	HeadLocal
)

// Head is the head of a neutral (stuck or glued) value.
type Head struct {
	Kind   HeadKind
	Name   string               // valid when Kind == HeadGlobal
	Offset terms.UniverseOffset // valid when Kind == HeadGlobal
	Level  terms.LocalLevel     // valid when Kind == HeadLocal
}

// Equal compares two heads for conversion purposes. Deliberately ignores
// the captured universe offset on globals: two stuck globals with the
// same name and equal spines but different offsets are treated as equal
// (spec §9 "Universe offsets on stuck globals").
func (h Head) Equal(other Head) bool {
	if h.Kind != other.Kind {
		return false
	}
	switch h.Kind {
	case HeadGlobal:
		return h.Name == other.Name
	case HeadLocal:
		return h.Level == other.Level
	default:
		return false
	}
}

func (h Head) String() string {
	switch h.Kind {
	case HeadGlobal:
		return h.Name
	case HeadLocal:
		return fmt.Sprintf("level(%d)", h.Level)
	default:
		return "<head?>"
	}
}

// ElimKind tags the two kinds of spine entry.
type ElimKind int

const (
	ElimFunction ElimKind = iota
	ElimRecord
)

// Elim is one entry of a neutral value's spine.
type Elim struct {
	Kind     ElimKind
	Argument *LazyValue // valid when Kind == ElimFunction
	Label    string     // valid when Kind == ElimRecord
}

func (e Elim) String() string {
	switch e.Kind {
	case ElimFunction:
		return "(_)"
	case ElimRecord:
		return "." + e.Label
	default:
		return "<elim?>"
	}
}

// StuckValue is a neutral value: an elimination blocked on a head that
// cannot reduce further.
type StuckValue struct {
	Head  Head
	Spine []Elim
}

func (v *StuckValue) valueNode() {}
func (v *StuckValue) String() string {
	return spineString(v.Head, v.Spine)
}

// UnstuckValue is a glued value: originally stuck, now known to reduce to
// Lazy. Head/Spine are retained purely to short-circuit conversion checks
// and keep read-back compact when both sides agree on the head.
type UnstuckValue struct {
	Head  Head
	Spine []Elim
	Lazy  *LazyValue
}

func (v *UnstuckValue) valueNode() {}
func (v *UnstuckValue) String() string {
	return spineString(v.Head, v.Spine)
}

func spineString(head Head, spine []Elim) string {
	var b strings.Builder
	b.WriteString(head.String())
	for _, e := range spine {
		b.WriteString(e.String())
	}
	return b.String()
}

// TypeValue is the type Type ℓ.
type TypeValue struct {
	Level terms.UniverseLevel
}

func (v *TypeValue) valueNode()     {}
func (v *TypeValue) String() string { return fmt.Sprintf("Type^%d", v.Level) }

// Closure captures a universe offset, a snapshot of the local-value
// environment, and an unevaluated body term.
type Closure struct {
	Offset terms.UniverseOffset
	Env    Env
	Body   terms.Term
}

// Elim applies the closure to an argument by pushing it onto the captured
// environment and evaluating the body.
func (c *Closure) Elim(g Globals, argument Value) Value {
	return EvalTerm(g, c.Offset, c.Env.Push(argument), c.Body)
}

// FunctionTypeValue is a dependent function (Π) type.
type FunctionTypeValue struct {
	ParamName terms.NameHint
	ParamType Value
	BodyType  Closure
}

func (v *FunctionTypeValue) valueNode() {}
func (v *FunctionTypeValue) String() string {
	return fmt.Sprintf("(%s : %s) -> <closure>", v.ParamName, v.ParamType)
}

// FunctionTermValue is a function abstraction (λ).
type FunctionTermValue struct {
	ParamName terms.NameHint
	Body      Closure
}

func (v *FunctionTermValue) valueNode()     {}
func (v *FunctionTermValue) String() string { return fmt.Sprintf("fun %s => <closure>", v.ParamName) }

// RecordEntryTerm is one labelled, not-yet-evaluated field of a record
// closure: for a RecordType value these are field types, for a RecordTerm
// value these are field-value-producing bodies.
type RecordEntryTerm struct {
	Label string
	Body  terms.Term
}

// RecordClosure is the shared iteration mechanism behind both RecordType
// and RecordTerm values (spec §3.3, §8 item 1): it captures a universe
// offset and environment snapshot, and walks its entries left to right,
// evaluating each one under the environment extended by the previous
// entries. What gets pushed for a later entry to see is decided by the
// caller-supplied onEntry callback, so the same plumbing serves read-back,
// record projection, and field-type lookup. Equality/subtyping
// (recordClosuresEqual) walks two closures in lockstep with its own loop.
type RecordClosure struct {
	Offset  terms.UniverseOffset
	Env     Env
	Entries []RecordEntryTerm
}

// OnEntryFunc receives each entry's label and its evaluated body, and
// returns the value to extend the environment with before evaluating the
// next entry, plus whether Walk should stop after this entry.
type OnEntryFunc func(label string, evaluated Value) (pushed Value, stop bool)

// Walk iterates the closure's entries in order, calling onEntry for each,
// stopping as soon as onEntry asks it to (e.g. once a targeted label has
// been found).
func (rc *RecordClosure) Walk(g Globals, onEntry OnEntryFunc) {
	offset := rc.Offset
	env := rc.Env
	for _, entry := range rc.Entries {
		evaluated := EvalTerm(g, offset, env, entry.Body)
		pushed, stop := onEntry(entry.Label, evaluated)
		if stop {
			return
		}
		env = env.Push(pushed)
	}
}

// IdentityEntry is the onEntry callback used when a later field should see
// exactly the evaluated value of an earlier field (the RecordTerm case).
func IdentityEntry(_ string, evaluated Value) (Value, bool) { return evaluated, false }

// RecordTypeValue is a dependent record type.
type RecordTypeValue struct {
	Closure RecordClosure
}

func (v *RecordTypeValue) valueNode()     {}
func (v *RecordTypeValue) String() string { return "{...}" }

// RecordTermValue is a record introduction.
type RecordTermValue struct {
	Closure RecordClosure
}

func (v *RecordTermValue) valueNode()     {}
func (v *RecordTermValue) String() string { return "{...}" }

// SequenceValue is an ordered sequence literal.
type SequenceValue struct {
	Elements []Value
}

func (v *SequenceValue) valueNode() {}
func (v *SequenceValue) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ConstantValue wraps a primitive constant.
type ConstantValue struct {
	Constant terms.Constant
}

func (v *ConstantValue) valueNode()     {}
func (v *ConstantValue) String() string { return v.Constant.String() }

// ErrorValue is the absorbing error sentinel (spec §3.6 invariant 5).
type ErrorValue struct{}

func (v *ErrorValue) valueNode()     {}
func (v *ErrorValue) String() string { return "<error>" }

// Force follows Unstuck values to their forced payload, recursively (a
// glued value's payload may itself be glued).
func Force(g Globals, v Value) Value {
	for {
		u, ok := v.(*UnstuckValue)
		if !ok {
			return v
		}
		v = u.Lazy.Force(g)
	}
}

// NewLocal constructs the stuck neutral for a fresh local variable at the
// given level — used wherever read-back/conversion introduces a fresh
// bound variable to descend under a binder.
func NewLocal(level terms.LocalLevel) Value {
	return &StuckValue{Head: Head{Kind: HeadLocal, Level: level}}
}

// NewGlobal constructs the stuck neutral for an unknown/abstract global.
func NewGlobal(name string, offset terms.UniverseOffset) Value {
	return &StuckValue{Head: Head{Kind: HeadGlobal, Name: name, Offset: offset}}
}
