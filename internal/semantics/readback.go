package semantics

import (
	"github.com/pikelet-go/pikelet/internal/kernelerrors"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// Unfold controls how much of an Unstuck value read-back exposes (spec
// §4.5).
type Unfold int

const (
	// UnfoldMinimal keeps glued values stuck, for compact/readable terms.
	UnfoldMinimal Unfold = iota
	// UnfoldAll unfolds every Unstuck value to its forced payload,
	// producing a fully normalised term.
	UnfoldAll
)

// ReadBackValue quotes a value back into term syntax (spec §4.5). Read-
// back is the only place new local levels are introduced, which is what
// makes α-equivalence decidable by structural equality on the resulting
// terms.
func ReadBackValue(g Globals, size terms.LocalSize, unfold Unfold, v Value) terms.Term {
	switch value := v.(type) {
	case *StuckValue:
		return readBackSpine(g, size, unfold, value.Head, value.Spine)

	case *UnstuckValue:
		if unfold == UnfoldAll || headEscapes(size, value.Head) {
			// A Local head built in a larger environment than this one is
			// unquotable as-is (spec §9 hazard 2); rather than fail, fall
			// back to forcing the payload and reading that back instead
			// (spec §8 scenario 6).
			return ReadBackValue(g, size, unfold, value.Lazy.Force(g))
		}
		return readBackSpine(g, size, unfold, value.Head, value.Spine)

	case *TypeValue:
		return &terms.TypeType{Level: value.Level}

	case *ConstantValue:
		return &terms.ConstantTerm{Constant: value.Constant}

	case *SequenceValue:
		entries := make([]terms.Term, len(value.Elements))
		for i, e := range value.Elements {
			entries[i] = ReadBackValue(g, size, unfold, e)
		}
		return &terms.Sequence{Entries: entries}

	case *RecordTypeValue:
		return &terms.RecordType{Entries: readBackRecordTypeEntries(g, size, unfold, &value.Closure)}

	case *RecordTermValue:
		return &terms.RecordTerm{Entries: readBackRecordTermEntries(g, size, unfold, &value.Closure)}

	case *FunctionTypeValue:
		localLevel := size.NextLevel()
		local := NewLocal(localLevel)
		paramType := ReadBackValue(g, size, unfold, value.ParamType)
		bodyType := value.BodyType.Elim(g, local)
		bodyTerm := ReadBackValue(g, size.Increment(), unfold, bodyType)
		return &terms.FunctionType{ParamName: value.ParamName, ParamType: paramType, BodyType: bodyTerm}

	case *FunctionTermValue:
		localLevel := size.NextLevel()
		local := NewLocal(localLevel)
		body := value.Body.Elim(g, local)
		bodyTerm := ReadBackValue(g, size.Increment(), unfold, body)
		return &terms.FunctionTerm{ParamName: value.ParamName, Body: bodyTerm}

	case *ErrorValue:
		return &terms.Error{}

	default:
		return &terms.Error{}
	}
}

// headEscapes reports whether head is a Local head whose level was captured
// in an environment larger than size, the condition an Unstuck value's
// fallback-to-forcing exists to handle (spec §9 hazard 2, §8 scenario 6).
func headEscapes(size terms.LocalSize, head Head) bool {
	if head.Kind != HeadLocal {
		return false
	}
	_, ok := size.Index(head.Level)
	return !ok
}

func readBackSpine(g Globals, size terms.LocalSize, unfold Unfold, head Head, spine []Elim) terms.Term {
	var result terms.Term
	switch head.Kind {
	case HeadGlobal:
		result = &terms.Global{Name: head.Name}
		if head.Offset != 0 {
			result = &terms.Lift{Term: result, Shift: head.Offset}
		}
	case HeadLocal:
		index, ok := size.Index(head.Level)
		if !ok {
			// The level escaped the environment it was read back in
			// (spec §4.5, §9 hazard 2): there is nothing sensible to
			// quote to, so this falls back to Error for a Stuck head.
			// Callers that can recover an Unstuck payload instead force
			// it before reaching here — see ReadBackValue's Unstuck arm.
			reportFault(kernelerrors.KRN001, "readBackSpine", "local level escaped the environment it was read back in")
			return &terms.Error{}
		}
		result = &terms.Local{Index: index}
	default:
		return &terms.Error{}
	}

	for _, elim := range spine {
		switch elim.Kind {
		case ElimRecord:
			result = &terms.RecordElim{Head: result, Label: elim.Label}
		case ElimFunction:
			argument := ReadBackValue(g, size, unfold, elim.Argument.Force(g))
			result = &terms.FunctionElim{Head: result, Argument: argument}
		}
	}
	return result
}

// readBackRecordTypeEntries and readBackRecordTermEntries walk a record
// closure once, read-backing each entry and threading a fresh local
// variable through the environment for subsequent entries (spec §4.5).
// They differ only in which concrete Term entry type they build.

func readBackRecordTypeEntries(g Globals, size terms.LocalSize, unfold Unfold, rc *RecordClosure) []terms.RecordTypeEntry {
	runningSize := size
	out := make([]terms.RecordTypeEntry, 0, len(rc.Entries))
	rc.Walk(g, func(label string, evaluated Value) (Value, bool) {
		entryTerm := ReadBackValue(g, runningSize, unfold, evaluated)
		out = append(out, terms.RecordTypeEntry{Label: label, Type: entryTerm})
		local := NewLocal(runningSize.NextLevel())
		runningSize = runningSize.Increment()
		return local, false
	})
	return out
}

func readBackRecordTermEntries(g Globals, size terms.LocalSize, unfold Unfold, rc *RecordClosure) []terms.RecordTermEntry {
	runningSize := size
	out := make([]terms.RecordTermEntry, 0, len(rc.Entries))
	rc.Walk(g, func(label string, evaluated Value) (Value, bool) {
		entryTerm := ReadBackValue(g, runningSize, unfold, evaluated)
		out = append(out, terms.RecordTermEntry{Label: label, Term: entryTerm})
		local := NewLocal(runningSize.NextLevel())
		runningSize = runningSize.Increment()
		return local, false
	})
	return out
}
