package semantics

import "github.com/pikelet-go/pikelet/internal/terms"

// IsSubtype decides cumulative subtyping between two types (spec §4.7).
// Defined only between types; the caller guarantees this.
func IsSubtype(g Globals, size terms.LocalSize, v0, v1 Value) bool {
	switch a := v0.(type) {
	case *StuckValue:
		if b, ok := v1.(*StuckValue); ok {
			if isEqualSpine(g, size, a.Head, a.Spine, b.Head, b.Spine) {
				return true
			}
		}
		if b, ok := v1.(*UnstuckValue); ok {
			return IsSubtype(g, size, v0, b.Lazy.Force(g))
		}
		return errorAbsorbs(v0, v1)
	case *UnstuckValue:
		if b, ok := v1.(*UnstuckValue); ok {
			if isEqualSpine(g, size, a.Head, a.Spine, b.Head, b.Spine) {
				return true
			}
			return IsSubtype(g, size, a.Lazy.Force(g), b.Lazy.Force(g))
		}
		return IsSubtype(g, size, a.Lazy.Force(g), v1)
	}
	if b, ok := v1.(*UnstuckValue); ok {
		return IsSubtype(g, size, v0, b.Lazy.Force(g))
	}

	switch a := v0.(type) {
	case *TypeValue:
		if b, ok := v1.(*TypeValue); ok {
			return a.Level <= b.Level
		}
		return errorAbsorbs(v0, v1)

	case *RecordTypeValue:
		b, ok := v1.(*RecordTypeValue)
		if !ok {
			return errorAbsorbs(v0, v1)
		}
		return recordClosuresEqual(g, size, &a.Closure, &b.Closure, IsSubtype)

	case *FunctionTypeValue:
		b, ok := v1.(*FunctionTypeValue)
		if !ok {
			return errorAbsorbs(v0, v1)
		}
		// Contravariant on the input.
		if !IsSubtype(g, size, b.ParamType, a.ParamType) {
			return false
		}
		local := NewLocal(size.NextLevel())
		body0 := a.BodyType.Elim(g, local)
		body1 := b.BodyType.Elim(g, local)
		return IsSubtype(g, size.Increment(), body0, body1)
	}

	return errorAbsorbs(v0, v1)
}
