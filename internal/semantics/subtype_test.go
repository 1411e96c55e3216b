package semantics

import (
	"testing"

	"github.com/pikelet-go/pikelet/internal/globals"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// TestSubtypeReflexive covers spec §8: IsSubtype must be reflexive for any
// value compared against itself (equality implies subtyping both ways).
func TestSubtypeReflexive(t *testing.T) {
	g := globals.New()
	v := EvalTerm(g, 0, NewEnv(), &terms.TypeType{Level: 3})
	if !IsSubtype(g, 0, v, v) {
		t.Errorf("expected Type^3 <: Type^3 (reflexivity)")
	}
}

// TestSubtypeCumulativeUniverses covers spec §3.6 invariant 2: Type ℓ1 <:
// Type ℓ2 iff ℓ1 <= ℓ2, and not the other way round when ℓ1 < ℓ2.
func TestSubtypeCumulativeUniverses(t *testing.T) {
	g := globals.New()
	low := EvalTerm(g, 0, NewEnv(), &terms.TypeType{Level: 1})
	high := EvalTerm(g, 0, NewEnv(), &terms.TypeType{Level: 4})

	if !IsSubtype(g, 0, low, high) {
		t.Errorf("expected Type^1 <: Type^4")
	}
	if IsSubtype(g, 0, high, low) {
		t.Errorf("expected Type^4 NOT <: Type^1")
	}
}

// TestSubtypeFunctionTypeVariance covers spec §4.7: function types are
// contravariant in the parameter and covariant in the body.
func TestSubtypeFunctionTypeVariance(t *testing.T) {
	g := globals.New()

	// (Type^4 -> Type^1) <: (Type^1 -> Type^4): contravariant param needs
	// Type^1 <: Type^4 (holds, since param sides are swapped in the check),
	// covariant body needs Type^1 <: Type^4 (holds).
	narrow := EvalTerm(g, 0, NewEnv(), &terms.FunctionType{
		ParamType: &terms.TypeType{Level: 4},
		BodyType:  &terms.TypeType{Level: 1},
	})
	wide := EvalTerm(g, 0, NewEnv(), &terms.FunctionType{
		ParamType: &terms.TypeType{Level: 1},
		BodyType:  &terms.TypeType{Level: 4},
	})

	if !IsSubtype(g, 0, narrow, wide) {
		t.Errorf("expected (Type^4 -> Type^1) <: (Type^1 -> Type^4) by contravariance/covariance")
	}
	if IsSubtype(g, 0, wide, narrow) {
		t.Errorf("expected (Type^1 -> Type^4) NOT <: (Type^4 -> Type^1)")
	}
}

// TestSubtypeRecordTypeWidthEqualCovariant covers spec §4.7: record types
// subtype field-by-field, covariantly, and must agree on width and labels.
func TestSubtypeRecordTypeWidthEqualCovariant(t *testing.T) {
	g := globals.New()
	narrow := EvalTerm(g, 0, NewEnv(), &terms.RecordType{Entries: []terms.RecordTypeEntry{
		{Label: "a", Type: &terms.TypeType{Level: 1}},
	}})
	wide := EvalTerm(g, 0, NewEnv(), &terms.RecordType{Entries: []terms.RecordTypeEntry{
		{Label: "a", Type: &terms.TypeType{Level: 4}},
	}})
	if !IsSubtype(g, 0, narrow, wide) {
		t.Errorf("expected {a : Type^1} <: {a : Type^4} by covariance")
	}

	differentWidth := EvalTerm(g, 0, NewEnv(), &terms.RecordType{Entries: []terms.RecordTypeEntry{
		{Label: "a", Type: &terms.TypeType{Level: 1}},
		{Label: "b", Type: &terms.TypeType{Level: 1}},
	}})
	if IsSubtype(g, 0, narrow, differentWidth) {
		t.Errorf("expected records of different width to not be subtypes")
	}
}

// TestSubtypeErrorAbsorbs covers spec §3.6 invariant 5: Error is an
// absorbing element for subtyping on either side.
func TestSubtypeErrorAbsorbs(t *testing.T) {
	g := globals.New()
	errV := EvalTerm(g, 0, NewEnv(), &terms.Error{})
	typeV := EvalTerm(g, 0, NewEnv(), &terms.TypeType{Level: 0})

	if !IsSubtype(g, 0, errV, typeV) {
		t.Errorf("expected Error <: Type^0")
	}
	if !IsSubtype(g, 0, typeV, errV) {
		t.Errorf("expected Type^0 <: Error")
	}
}
