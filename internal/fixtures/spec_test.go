package fixtures

import (
	"testing"

	"github.com/pikelet-go/pikelet/internal/terms"
)

const sampleDoc = `
globals:
  - name: S64
    type: { universe: 0 }
  - name: id
    type:
      app:
        head: { global: S64 }
        argument: { global: S64 }
    definition:
      lam:
        param: x
        body: { local: 0 }

examples:
  - name: id7
    term:
      app:
        head: { global: id }
        argument: { const: { kind: S64, value: 7 } }
  - name: pair
    term:
      record_term:
        - label: fst
          value: { const: { kind: U32, value: 1 } }
        - label: snd
          value: { const: { kind: U32, value: 2 } }
`

func TestParseAndBuildDocument(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build globals: %v", err)
	}
	if _, ok := g.Get("id"); !ok {
		t.Fatalf("expected global %q to be declared", "id")
	}

	examples, err := doc.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}

	id7, ok := examples["id7"]
	if !ok {
		t.Fatalf("expected example %q", "id7")
	}
	elim, ok := id7.(*terms.FunctionElim)
	if !ok {
		t.Fatalf("expected *terms.FunctionElim, got %T", id7)
	}
	ct, ok := elim.Argument.(*terms.ConstantTerm)
	if !ok || ct.Constant.Value.(int64) != 7 {
		t.Errorf("argument = %v, want Constant(S64 7)", elim.Argument)
	}

	pair, ok := examples["pair"]
	if !ok {
		t.Fatalf("expected example %q", "pair")
	}
	rt, ok := pair.(*terms.RecordTerm)
	if !ok || len(rt.Entries) != 2 {
		t.Fatalf("expected a 2-field RecordTerm, got %v", pair)
	}
	if rt.Entries[0].Label != "fst" || rt.Entries[1].Label != "snd" {
		t.Errorf("entries out of order: %+v", rt.Entries)
	}
}

func TestBuildRejectsAmbiguousNode(t *testing.T) {
	spec := TermSpec{Local: ptrUint32(0), Global: ptrString("foo")}
	if _, err := spec.Build(); err == nil {
		t.Errorf("expected an error for a node with two combinators set")
	}
}

func TestBuildRejectsEmptyNode(t *testing.T) {
	var spec TermSpec
	if _, err := spec.Build(); err == nil {
		t.Errorf("expected an error for a node with no combinator set")
	}
}

func ptrUint32(n uint32) *uint32 { return &n }
func ptrString(s string) *string { return &s }
