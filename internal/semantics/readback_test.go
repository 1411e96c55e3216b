package semantics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pikelet-go/pikelet/internal/globals"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// TestReadBackRoundTripsIdentity covers spec §8's read-back soundness
// property: evaluating a closed term and reading it back under UnfoldAll
// reproduces a term that normalizes to the same thing a second time
// (idempotence of normalization). go-cmp diffs the resulting term trees
// structurally rather than comparing their String() renderings, so a
// mismatch nested deep inside a record or spine is pinpointed directly.
func TestReadBackRoundTripsIdentity(t *testing.T) {
	g := globals.New()
	term := &terms.FunctionTerm{ParamName: "x", Body: &terms.Local{Index: 0}}

	v := EvalTerm(g, 0, NewEnv(), term)
	once := ReadBackValue(g, 0, UnfoldAll, v)

	v2 := EvalTerm(g, 0, NewEnv(), once)
	twice := ReadBackValue(g, 0, UnfoldAll, v2)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("normalization not idempotent (-once +twice):\n%s", diff)
	}
}

// TestReadBackUnfoldMinimalKeepsGlueCompact covers spec §4.5: UnfoldMinimal
// must not force the payload of a glued value, producing the same spine
// shape as the original stuck application.
func TestReadBackUnfoldMinimalKeepsGlueCompact(t *testing.T) {
	g := globals.New()
	g.Define("id", &terms.FunctionType{ParamType: &terms.Global{Name: "S64"}, BodyType: &terms.Global{Name: "S64"}},
		&terms.FunctionTerm{ParamName: "x", Body: &terms.Local{Index: 0}})
	g.Declare("S64", &terms.TypeType{Level: 0})

	call := &terms.FunctionElim{Head: &terms.Global{Name: "id"}, Argument: s64(9)}
	v := EvalTerm(g, 0, NewEnv(), call)

	u, ok := v.(*UnstuckValue)
	if !ok {
		t.Fatalf("expected UnstuckValue, got %T", v)
	}

	term := ReadBackValue(g, 0, UnfoldMinimal, v)
	if u.Lazy.Forced() {
		t.Errorf("UnfoldMinimal read-back forced the glued payload")
	}
	want := "id(9 : S64)"
	if term.String() != want {
		t.Errorf("read-back(UnfoldMinimal) = %s, want %s", term, want)
	}
}

// TestReadBackEscapedLocalProducesError covers spec §9 hazard 2: reading a
// bound variable back under a LocalSize smaller than its captured level
// yields the Error sentinel rather than a malformed index.
func TestReadBackEscapedLocalProducesError(t *testing.T) {
	g := globals.New()
	escaped := NewLocal(5)

	term := ReadBackValue(g, 0, UnfoldAll, escaped)
	if _, ok := term.(*terms.Error); !ok {
		t.Errorf("read-back of escaped local = %v (%T), want *terms.Error", term, term)
	}
}

// TestReadBackFunctionTypeIntroducesFreshLocal covers the "read-back is the
// only place new local levels appear" design: the bound variable inside a
// FunctionType's body is read back relative to size+1, producing local(0)
// regardless of how many outer bindings are already in scope.
func TestReadBackFunctionTypeIntroducesFreshLocal(t *testing.T) {
	g := globals.New()
	g.Declare("S64", &terms.TypeType{Level: 0})
	fnType := &terms.FunctionType{
		ParamName: "x",
		ParamType: &terms.Global{Name: "S64"},
		BodyType:  &terms.Local{Index: 0},
	}

	v := EvalTerm(g, 0, NewEnv().Push(NewLocal(0)), fnType)
	term := ReadBackValue(g, 1, UnfoldAll, v)

	ft, ok := term.(*terms.FunctionType)
	if !ok {
		t.Fatalf("expected *terms.FunctionType, got %T", term)
	}
	local, ok := ft.BodyType.(*terms.Local)
	if !ok || local.Index != 0 {
		t.Errorf("body type = %v, want local(0)", ft.BodyType)
	}
}
