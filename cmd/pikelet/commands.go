package main

import (
	"fmt"
	"io"

	"github.com/pikelet-go/pikelet/internal/kernelerrors"
	"github.com/pikelet-go/pikelet/internal/semantics"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// showExample evaluates a named example term and read-backs it under the
// given unfold mode, printing the resulting core term. Shared by the
// one-shot `eval`/`normalize` subcommands and the REPL's `:show` (which
// passes the mode last set by `:unfold`).
// A sink is installed around the evaluation so that, if the example
// reduces to the Error sentinel, the kernel faults that produced it
// (KRN001-KRN004; see internal/kernelerrors) are reported alongside it.
func showExample(g semantics.Globals, examples map[string]terms.Term, name string, unfold semantics.Unfold, out io.Writer) {
	term, ok := examples[name]
	if !ok {
		fmt.Fprintf(out, "%s: no example named %q\n", red("Error"), name)
		return
	}

	sink := &kernelerrors.Sink{}
	prev := semantics.SetFaultSink(sink)
	defer semantics.SetFaultSink(prev)

	v := semantics.EvalTerm(g, 0, semantics.NewEnv(), term)
	result := semantics.ReadBackValue(g, 0, unfold, v)
	fmt.Fprintf(out, "%s\n", result)

	if _, isError := result.(*terms.Error); isError {
		for _, fault := range sink.Faults() {
			fmt.Fprintf(out, "%s %s\n", red("fault:"), fault)
		}
	}
}

// eqExamples evaluates two named examples and reports whether they are
// definitionally equal.
func eqExamples(g semantics.Globals, examples map[string]terms.Term, name0, name1 string, out io.Writer) {
	t0, ok0 := examples[name0]
	t1, ok1 := examples[name1]
	if !ok0 || !ok1 {
		fmt.Fprintf(out, "%s: unknown example name\n", red("Error"))
		return
	}
	v0 := semantics.EvalTerm(g, 0, semantics.NewEnv(), t0)
	v1 := semantics.EvalTerm(g, 0, semantics.NewEnv(), t1)
	if semantics.IsEqual(g, 0, v0, v1) {
		fmt.Fprintf(out, "%s\n", green("true"))
	} else {
		fmt.Fprintf(out, "%s\n", yellow("false"))
	}
}

// subExamples evaluates two named examples and reports whether the first
// is a subtype of the second.
func subExamples(g semantics.Globals, examples map[string]terms.Term, name0, name1 string, out io.Writer) {
	t0, ok0 := examples[name0]
	t1, ok1 := examples[name1]
	if !ok0 || !ok1 {
		fmt.Fprintf(out, "%s: unknown example name\n", red("Error"))
		return
	}
	v0 := semantics.EvalTerm(g, 0, semantics.NewEnv(), t0)
	v1 := semantics.EvalTerm(g, 0, semantics.NewEnv(), t1)
	if semantics.IsSubtype(g, 0, v0, v1) {
		fmt.Fprintf(out, "%s\n", green("true"))
	} else {
		fmt.Fprintf(out, "%s\n", yellow("false"))
	}
}
