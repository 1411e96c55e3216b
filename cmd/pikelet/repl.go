package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/pikelet-go/pikelet/internal/fixtures"
	"github.com/pikelet-go/pikelet/internal/semantics"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// repl is an interactive session over a fixed menu of named example terms
// loaded from a fixture file (SPEC_FULL.md §7.3). There is no surface
// syntax for this kernel, so unlike the teacher's REPL this one never
// parses free-form input: every meta-command operates on names already
// declared in the fixture document.
type repl struct {
	globals  semantics.Globals
	doc      *fixtures.Document
	examples map[string]terms.Term
	unfold   semantics.Unfold
	history  []string
}

func newREPL(g semantics.Globals, doc *fixtures.Document, examples map[string]terms.Term) *repl {
	return &repl{globals: g, doc: doc, examples: examples, unfold: semantics.UnfoldAll}
}

func (r *repl) start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".pikelet_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(partial string) (c []string) {
		if !strings.HasPrefix(partial, ":") {
			return nil
		}
		for _, cmd := range []string{":list", ":show", ":eq", ":sub", ":unfold", ":help", ":quit"} {
			if strings.HasPrefix(cmd, partial) {
				c = append(c, cmd)
			}
		}
		return c
	})

	fmt.Fprintf(out, "%s\n", bold("pikelet"))
	fmt.Fprintln(out, "Type :help for commands, :quit to exit.")
	fmt.Fprintln(out)

	for {
		input, err := line.Prompt(r.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		r.handle(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *repl) prompt() string {
	if r.unfold == semantics.UnfoldAll {
		return "pikelet[always]> "
	}
	return "pikelet[minimal]> "
}

func (r *repl) handle(input string, out io.Writer) {
	fields := strings.Fields(input)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case ":help":
		r.printHelp(out)

	case ":list":
		fmt.Fprintln(out, bold("Examples:"))
		for _, name := range r.doc.NamesInOrder() {
			fmt.Fprintf(out, "  %s\n", cyan(name))
		}

	case ":show":
		if len(args) != 1 {
			fmt.Fprintf(out, "%s: usage: :show NAME\n", red("Error"))
			return
		}
		showExample(r.globals, r.examples, args[0], r.unfold, out)

	case ":eq":
		if len(args) != 2 {
			fmt.Fprintf(out, "%s: usage: :eq NAME1 NAME2\n", red("Error"))
			return
		}
		eqExamples(r.globals, r.examples, args[0], args[1], out)

	case ":sub":
		if len(args) != 2 {
			fmt.Fprintf(out, "%s: usage: :sub NAME1 NAME2\n", red("Error"))
			return
		}
		subExamples(r.globals, r.examples, args[0], args[1], out)

	case ":unfold":
		if len(args) != 1 {
			fmt.Fprintf(out, "%s: usage: :unfold {always,minimal}\n", red("Error"))
			return
		}
		switch args[0] {
		case "always":
			r.unfold = semantics.UnfoldAll
		case "minimal":
			r.unfold = semantics.UnfoldMinimal
		default:
			fmt.Fprintf(out, "%s: unfold mode must be \"always\" or \"minimal\"\n", red("Error"))
		}

	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%4d  %s\n", i+1, h)
		}

	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("Error"), cmd)
	}
}

func (r *repl) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Commands:"))
	fmt.Fprintln(out, "  :list              list example names from the fixture file")
	fmt.Fprintln(out, "  :show NAME         evaluate and read back a named example")
	fmt.Fprintln(out, "  :eq N1 N2          check is_equal(eval(N1), eval(N2))")
	fmt.Fprintln(out, "  :sub N1 N2         check is_subtype(eval(N1), eval(N2))")
	fmt.Fprintln(out, "  :unfold always|minimal   toggle read-back unfold mode")
	fmt.Fprintln(out, "  :history           show this session's command history")
	fmt.Fprintln(out, "  :quit              exit")
}
