package semantics

import "github.com/pikelet-go/pikelet/internal/terms"

// isEqualSpine checks that two eliminations of (possibly different) heads
// are equal: same head, same length spine, pairwise-equal eliminators
// (spec §4.6 step 1).
func isEqualSpine(g Globals, size terms.LocalSize, head0 Head, spine0 []Elim, head1 Head, spine1 []Elim) bool {
	if !head0.Equal(head1) || len(spine0) != len(spine1) {
		return false
	}
	for i := range spine0 {
		e0, e1 := spine0[i], spine1[i]
		if e0.Kind != e1.Kind {
			return false
		}
		switch e0.Kind {
		case ElimFunction:
			a0 := e0.Argument.Force(g)
			a1 := e1.Argument.Force(g)
			if !IsEqual(g, size, a0, a1) {
				return false
			}
		case ElimRecord:
			if e0.Label != e1.Label {
				return false
			}
		}
	}
	return true
}

// IsEqual decides β-η-equality up to α-conversion and glued-value
// coherence (spec §4.6). Both values must have been evaluated against a
// local environment of the given size.
func IsEqual(g Globals, size terms.LocalSize, v0, v1 Value) bool {
	switch a := v0.(type) {
	case *StuckValue:
		if b, ok := v1.(*StuckValue); ok {
			if isEqualSpine(g, size, a.Head, a.Spine, b.Head, b.Spine) {
				return true
			}
			return errorAbsorbs(v0, v1)
		}
		if b, ok := v1.(*UnstuckValue); ok {
			return IsEqual(g, size, v0, b.Lazy.Force(g))
		}
		if b, ok := v1.(*FunctionTermValue); ok {
			// η for functions (spec.md:257): is_equal(f, λx. f x) holds for
			// *any* f : A → B, including a neutral f (an abstract global or
			// a fresh bound local) that will never itself become a
			// FunctionTermValue closure to compare bodies against.
			return etaExpand(g, size, v0, b)
		}
		return errorAbsorbs(v0, v1)

	case *UnstuckValue:
		if b, ok := v1.(*UnstuckValue); ok {
			if isEqualSpine(g, size, a.Head, a.Spine, b.Head, b.Spine) {
				return true
			}
			return IsEqual(g, size, a.Lazy.Force(g), b.Lazy.Force(g))
		}
		return IsEqual(g, size, a.Lazy.Force(g), v1)
	}
	if b, ok := v1.(*UnstuckValue); ok {
		return IsEqual(g, size, v0, b.Lazy.Force(g))
	}

	// v0/v1 are neither Stuck nor Unstuck here (both handled above); fall
	// through to per-constructor comparison, then Error absorption below.
	switch a := v0.(type) {
	case *TypeValue:
		if b, ok := v1.(*TypeValue); ok {
			return a.Level == b.Level
		}
		return errorAbsorbs(v0, v1)

	case *ConstantValue:
		if b, ok := v1.(*ConstantValue); ok {
			return a.Constant.Equal(b.Constant)
		}
		return errorAbsorbs(v0, v1)

	case *SequenceValue:
		b, ok := v1.(*SequenceValue)
		if !ok {
			return errorAbsorbs(v0, v1)
		}
		if len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !IsEqual(g, size, a.Elements[i], b.Elements[i]) {
				return false
			}
		}
		return true

	case *RecordTypeValue:
		b, ok := v1.(*RecordTypeValue)
		if !ok {
			return errorAbsorbs(v0, v1)
		}
		return recordClosuresEqual(g, size, &a.Closure, &b.Closure, IsEqual)

	case *RecordTermValue:
		b, ok := v1.(*RecordTermValue)
		if !ok {
			return errorAbsorbs(v0, v1)
		}
		return recordClosuresEqual(g, size, &a.Closure, &b.Closure, IsEqual)

	case *FunctionTypeValue:
		b, ok := v1.(*FunctionTypeValue)
		if !ok {
			return errorAbsorbs(v0, v1)
		}
		if !IsEqual(g, size, a.ParamType, b.ParamType) {
			return false
		}
		local := NewLocal(size.NextLevel())
		body0 := a.BodyType.Elim(g, local)
		body1 := b.BodyType.Elim(g, local)
		return IsEqual(g, size.Increment(), body0, body1)

	case *FunctionTermValue:
		if b, ok := v1.(*FunctionTermValue); ok {
			local := NewLocal(size.NextLevel())
			body0 := a.Body.Elim(g, local)
			body1 := b.Body.Elim(g, local)
			return IsEqual(g, size.Increment(), body0, body1)
		}
		if b, ok := v1.(*StuckValue); ok {
			return etaExpand(g, size, b, a)
		}
		return errorAbsorbs(v0, v1)
	}

	return errorAbsorbs(v0, v1)
}

// etaExpand implements the asymmetric half of the η law for functions
// (spec.md:257): neutral is compared against fn by eta-expanding neutral
// into "neutral x" for a fresh local x and comparing that against fn's
// body under the same extension, rather than requiring neutral to already
// be a FunctionTermValue closure (it never will be, since it's neutral).
func etaExpand(g Globals, size terms.LocalSize, neutral Value, fn *FunctionTermValue) bool {
	local := NewLocal(size.NextLevel())
	applied := ApplyFunctionElim(g, neutral, NewLazyValue(local))
	body := fn.Body.Elim(g, local)
	return IsEqual(g, size.Increment(), applied, body)
}

// errorAbsorbs reports whether either side is the Error sentinel, the
// absorbing element for conversion checking (spec §3.6 invariant 5): an
// ill-typed or otherwise malformed comparison is never reported as a hard
// inequality once Error is involved.
func errorAbsorbs(v0, v1 Value) bool {
	if _, ok := v0.(*ErrorValue); ok {
		return true
	}
	if _, ok := v1.(*ErrorValue); ok {
		return true
	}
	return false
}

// recordClosuresEqual compares two record closures field-by-field: equal
// length and labels in order, each field equal under its own captured
// environment, threading a *shared* fresh local into both environments so
// later fields are compared under the same extension (spec §4.6 step 7/8).
func recordClosuresEqual(g Globals, size terms.LocalSize, rc0, rc1 *RecordClosure, cmp func(Globals, terms.LocalSize, Value, Value) bool) bool {
	if len(rc0.Entries) != len(rc1.Entries) {
		return false
	}
	offset0, offset1 := rc0.Offset, rc1.Offset
	env0, env1 := rc0.Env, rc1.Env
	runningSize := size
	for i := range rc0.Entries {
		e0, e1 := rc0.Entries[i], rc1.Entries[i]
		if e0.Label != e1.Label {
			return false
		}
		v0 := EvalTerm(g, offset0, env0, e0.Body)
		v1 := EvalTerm(g, offset1, env1, e1.Body)
		if !cmp(g, runningSize, v0, v1) {
			return false
		}
		local := NewLocal(runningSize.NextLevel())
		env0 = env0.Push(local)
		env1 = env1.Push(local)
		runningSize = runningSize.Increment()
	}
	return true
}
