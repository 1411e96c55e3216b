// Package semantics implements the kernel's three tightly-coupled
// services — evaluation to weak-head normal form, read-back/quotation,
// and conversion checking — over a single shared Value domain (spec §2,
// §4.3–§4.7).
package semantics

import (
	"github.com/pikelet-go/pikelet/internal/kernelerrors"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// EvalTerm evaluates a term to weak-head normal form under globals, the
// current universe offset, and the local-value environment (spec §4.3).
// The evaluator is total modulo the Error sentinel: it never panics on a
// malformed term, it produces ErrorValue.
func EvalTerm(g Globals, offset terms.UniverseOffset, env Env, t terms.Term) Value {
	switch term := t.(type) {
	case *terms.Global:
		head := Head{Kind: HeadGlobal, Name: term.Name, Offset: offset}
		if entry, ok := g.Get(term.Name); ok && entry.Definition != nil {
			lazy := NewLazyEvalTerm(offset, env, entry.Definition)
			return &UnstuckValue{Head: head, Lazy: lazy}
		}
		return &StuckValue{Head: head}

	case *terms.Local:
		value, ok := env.Get(term.Index)
		if !ok {
			// term.Index escaped the environment it was evaluated under: a
			// malformed term (spec.md:232 is a client-bug path), not a
			// genuine stuck local. Defaulting the head's level to 0 here
			// would make every escaped index collide onto the same Head,
			// and be wrongly reported equal by IsEqual/isEqualSpine;
			// routing to Error (as read-back's own escape handling does
			// for the same condition) avoids that collision instead.
			return &ErrorValue{}
		}
		level, _ := env.Size().Level(term.Index)
		head := Head{Kind: HeadLocal, Level: level}
		return &UnstuckValue{Head: head, Lazy: NewLazyValue(value)}

	case *terms.Ann:
		return EvalTerm(g, offset, env, term.Term)

	case *terms.TypeType:
		level, ok := term.Level.Add(offset)
		if !ok {
			reportFault(kernelerrors.KRN004, "EvalTerm(TypeType)", "universe level arithmetic overflowed")
			return &ErrorValue{}
		}
		return &TypeValue{Level: level}

	case *terms.Lift:
		shifted, ok := offset.Add(term.Shift)
		if !ok {
			reportFault(kernelerrors.KRN004, "EvalTerm(Lift)", "universe offset arithmetic overflowed")
			return &ErrorValue{}
		}
		return EvalTerm(g, shifted, env, term.Term)

	case *terms.FunctionType:
		paramType := EvalTerm(g, offset, env, term.ParamType)
		return &FunctionTypeValue{
			ParamName: term.ParamName,
			ParamType: paramType,
			BodyType:  Closure{Offset: offset, Env: env, Body: term.BodyType},
		}

	case *terms.FunctionTerm:
		return &FunctionTermValue{
			ParamName: term.ParamName,
			Body:      Closure{Offset: offset, Env: env, Body: term.Body},
		}

	case *terms.FunctionElim:
		head := EvalTerm(g, offset, env, term.Head)
		argument := NewLazyEvalTerm(offset, env, term.Argument)
		return ApplyFunctionElim(g, head, argument)

	case *terms.RecordType:
		return &RecordTypeValue{Closure: newRecordClosure(offset, env, term.Entries)}

	case *terms.RecordTerm:
		entries := make([]RecordEntryTerm, len(term.Entries))
		for i, e := range term.Entries {
			entries[i] = RecordEntryTerm{Label: e.Label, Body: e.Term}
		}
		return &RecordTermValue{Closure: RecordClosure{Offset: offset, Env: env, Entries: entries}}

	case *terms.RecordElim:
		head := EvalTerm(g, offset, env, term.Head)
		return ApplyRecordElim(g, head, term.Label)

	case *terms.Sequence:
		elements := make([]Value, len(term.Entries))
		for i, e := range term.Entries {
			elements[i] = EvalTerm(g, offset, env, e)
		}
		return &SequenceValue{Elements: elements}

	case *terms.ConstantTerm:
		return &ConstantValue{Constant: term.Constant}

	case *terms.Error:
		return &ErrorValue{}

	default:
		return &ErrorValue{}
	}
}

func newRecordClosure(offset terms.UniverseOffset, env Env, entries []terms.RecordTypeEntry) RecordClosure {
	out := make([]RecordEntryTerm, len(entries))
	for i, e := range entries {
		out[i] = RecordEntryTerm{Label: e.Label, Body: e.Type}
	}
	return RecordClosure{Offset: offset, Env: env, Entries: out}
}

// ApplyFunctionElim applies a function elimination to a value (spec
// §4.3.1).
func ApplyFunctionElim(g Globals, head Value, argument *LazyValue) Value {
	switch h := head.(type) {
	case *StuckValue:
		spine := appendElim(h.Spine, Elim{Kind: ElimFunction, Argument: argument})
		return &StuckValue{Head: h.Head, Spine: spine}

	case *UnstuckValue:
		spine := appendElim(h.Spine, Elim{Kind: ElimFunction, Argument: argument})
		lazy := NewLazyApplyElim(h.Lazy, Elim{Kind: ElimFunction, Argument: argument})
		return &UnstuckValue{Head: h.Head, Spine: spine, Lazy: lazy}

	case *FunctionTermValue:
		return h.Body.Elim(g, argument.Force(g))

	default:
		reportFault(kernelerrors.KRN003, "ApplyFunctionElim", "elimination applied to a non-function, non-neutral head")
		return &ErrorValue{}
	}
}

// ApplyRecordElim applies a record projection to a value (spec §4.3.2).
func ApplyRecordElim(g Globals, head Value, label string) Value {
	switch h := head.(type) {
	case *StuckValue:
		spine := appendElim(h.Spine, Elim{Kind: ElimRecord, Label: label})
		return &StuckValue{Head: h.Head, Spine: spine}

	case *UnstuckValue:
		spine := appendElim(h.Spine, Elim{Kind: ElimRecord, Label: label})
		lazy := NewLazyApplyElim(h.Lazy, Elim{Kind: ElimRecord, Label: label})
		return &UnstuckValue{Head: h.Head, Spine: spine, Lazy: lazy}

	case *RecordTermValue:
		var found Value
		h.Closure.Walk(g, func(fieldLabel string, evaluated Value) (Value, bool) {
			if fieldLabel == label {
				found = evaluated
				return evaluated, true
			}
			return evaluated, false
		})
		if found == nil {
			reportFault(kernelerrors.KRN002, "ApplyRecordElim", "label "+label+" not found in record")
			return &ErrorValue{}
		}
		return found

	default:
		reportFault(kernelerrors.KRN003, "ApplyRecordElim", "elimination applied to a non-record, non-neutral head")
		return &ErrorValue{}
	}
}

// RecordElimType returns the type of label in a record type, with prior
// fields substituted by their projections from headValue (spec §4.3.3).
func RecordElimType(g Globals, headValue Value, label string, rc *RecordClosure) (Value, bool) {
	var result Value
	var found bool
	rc.Walk(g, func(entryLabel string, evaluatedType Value) (Value, bool) {
		if entryLabel == label {
			result = evaluatedType
			found = true
			return nil, true
		}
		return ApplyRecordElim(g, headValue, entryLabel), false
	})
	if !found {
		reportFault(kernelerrors.KRN002, "RecordElimType", "label "+label+" not found in record type")
	}
	return result, found
}

// NormalizeTerm fully normalizes a term: read-back of its fully-unfolded
// evaluation.
func NormalizeTerm(g Globals, offset terms.UniverseOffset, env Env, t terms.Term) terms.Term {
	v := EvalTerm(g, offset, env, t)
	return ReadBackValue(g, env.Size(), UnfoldAll, v)
}

func appendElim(spine []Elim, e Elim) []Elim {
	out := make([]Elim, len(spine), len(spine)+1)
	copy(out, spine)
	return append(out, e)
}
