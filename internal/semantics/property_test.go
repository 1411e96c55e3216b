package semantics

import (
	"testing"

	"github.com/pikelet-go/pikelet/internal/globals"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// TestEscapedUnstuckLevelForcesInstead covers spec §8 scenario 6: an
// Unstuck value built in a larger environment, read back in a smaller one,
// must not fail — it forces the payload and continues from there.
func TestEscapedUnstuckLevelForcesInstead(t *testing.T) {
	g := globals.New()
	g.Declare("S64", &terms.TypeType{Level: 0})

	// Build an Unstuck value whose head is local(3), captured in an env of
	// size 4, glued to a payload that forces to Constant(S64 7).
	bigEnv := NewEnv()
	for i := 0; i < 4; i++ {
		bigEnv = bigEnv.Push(NewLocal(terms.LocalLevel(i)))
	}
	payload := &ConstantValue{Constant: terms.Constant{Kind: terms.S64, Value: int64(7)}}
	escaped := &UnstuckValue{
		Head: Head{Kind: HeadLocal, Level: 3},
		Lazy: NewLazyValue(payload),
	}

	term := ReadBackValue(g, 0, UnfoldMinimal, escaped)
	ct, ok := term.(*terms.ConstantTerm)
	if !ok || ct.Constant.Value.(int64) != 7 {
		t.Errorf("read-back of escaped Unstuck = %v (%T), want Constant(7) via forced fallback", term, term)
	}
}

// TestAlphaInvariance covers spec §8: two terms differing only in bound
// parameter display names produce equal (indeed identical) values, since
// NameHint plays no role in evaluation or comparison.
func TestAlphaInvariance(t *testing.T) {
	g := globals.New()
	a := EvalTerm(g, 0, NewEnv(), &terms.FunctionTerm{ParamName: "x", Body: &terms.Local{Index: 0}})
	b := EvalTerm(g, 0, NewEnv(), &terms.FunctionTerm{ParamName: "y", Body: &terms.Local{Index: 0}})

	if !IsEqual(g, 0, a, b) {
		t.Errorf("expected (fun x => x) == (fun y => y) by alpha-invariance")
	}
}

// TestEqualityReflexiveForFunctionType covers spec §8's reflexivity
// property for a non-trivial value shape (a dependent-looking function
// type), beyond the simpler TypeValue case already covered elsewhere.
func TestEqualityReflexiveForFunctionType(t *testing.T) {
	g := globals.New()
	g.Declare("S64", &terms.TypeType{Level: 0})
	v := EvalTerm(g, 0, NewEnv(), &terms.FunctionType{
		ParamType: &terms.Global{Name: "S64"},
		BodyType:  &terms.Local{Index: 0},
	})
	if !IsEqual(g, 0, v, v) {
		t.Errorf("expected reflexivity: v == v")
	}
	if !IsSubtype(g, 0, v, v) {
		t.Errorf("expected reflexivity: v <: v")
	}
}

// TestEqualityErrorAbsorption covers spec §8's error absorption property
// for is_equal (the subtyping half is covered in subtype_test.go).
func TestEqualityErrorAbsorption(t *testing.T) {
	g := globals.New()
	errV := EvalTerm(g, 0, NewEnv(), &terms.Error{})
	fn := EvalTerm(g, 0, NewEnv(), &terms.FunctionTerm{ParamName: "x", Body: &terms.Local{Index: 0}})

	if !IsEqual(g, 0, errV, fn) {
		t.Errorf("expected Error == <anything>")
	}
	if !IsEqual(g, 0, fn, errV) {
		t.Errorf("expected <anything> == Error")
	}
}

// TestReadBackSoundness covers spec §8: eval(normalize(t)) is equal (under
// is_equal) to eval(t), for a term whose evaluation involves a defined
// global and an application.
func TestReadBackSoundness(t *testing.T) {
	g := globals.New()
	g.Declare("S64", &terms.TypeType{Level: 0})
	g.Define("id", &terms.FunctionType{ParamType: &terms.Global{Name: "S64"}, BodyType: &terms.Global{Name: "S64"}},
		&terms.FunctionTerm{ParamName: "x", Body: &terms.Local{Index: 0}})

	t0 := &terms.FunctionElim{Head: &terms.Global{Name: "id"}, Argument: s64(5)}

	original := EvalTerm(g, 0, NewEnv(), t0)
	normalized := NormalizeTerm(g, 0, NewEnv(), t0)
	reEvaluated := EvalTerm(g, 0, NewEnv(), normalized)

	if !IsEqual(g, 0, original, reEvaluated) {
		t.Errorf("eval(normalize(t)) not equal to eval(t): normalize(t) = %s", normalized)
	}
}

// TestGluedCoherence covers spec §8's glued-coherence property: forcing an
// Unstuck value and reading the forced payload back under UnfoldAll agrees
// with reading the original Unstuck value back under UnfoldAll directly.
func TestGluedCoherence(t *testing.T) {
	g := globals.New()
	g.Declare("S64", &terms.TypeType{Level: 0})
	g.Define("id", &terms.FunctionType{ParamType: &terms.Global{Name: "S64"}, BodyType: &terms.Global{Name: "S64"}},
		&terms.FunctionTerm{ParamName: "x", Body: &terms.Local{Index: 0}})

	call := &terms.FunctionElim{Head: &terms.Global{Name: "id"}, Argument: s64(11)}
	v := EvalTerm(g, 0, NewEnv(), call)
	u, ok := v.(*UnstuckValue)
	if !ok {
		t.Fatalf("expected UnstuckValue, got %T", v)
	}

	direct := ReadBackValue(g, 0, UnfoldAll, v)
	viaForce := ReadBackValue(g, 0, UnfoldAll, u.Lazy.Force(g))

	if direct.String() != viaForce.String() {
		t.Errorf("glued coherence violated: direct=%s viaForce=%s", direct, viaForce)
	}
}
