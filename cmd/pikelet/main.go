package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pikelet-go/pikelet/internal/fixtures"
	"github.com/pikelet-go/pikelet/internal/semantics"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		fixtureFlag = flag.String("fixtures", defaultFixturePath(), "Path to a YAML fixture file of named globals and example terms")
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	doc, err := fixtures.Load(*fixtureFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	g, err := doc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	examples, err := doc.Examples()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	command := flag.Arg(0)
	switch command {
	case "list":
		runList(doc)

	case "eval":
		requireExampleArg(command)
		showExample(g, examples, flag.Arg(1), semantics.UnfoldAll, os.Stdout)

	case "normalize":
		requireExampleArg(command)
		showExample(g, examples, flag.Arg(1), semantics.UnfoldMinimal, os.Stdout)

	case "repl":
		newREPL(g, doc, examples).start(os.Stdin, os.Stdout)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func requireExampleArg(command string) {
	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "%s: %s needs an example name\n", red("Error"), command)
		fmt.Printf("Usage: pikelet %s <example-name>\n", command)
		os.Exit(1)
	}
}

func runList(doc *fixtures.Document) {
	fmt.Println(bold("Examples:"))
	for _, name := range doc.NamesInOrder() {
		fmt.Printf("  %s\n", cyan(name))
	}
}

func defaultFixturePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "examples.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "examples.yaml")
}

func printVersion() {
	fmt.Printf("%s %s\n", bold("pikelet"), "dev")
	fmt.Println("A normalization-by-evaluation kernel for a dependently-typed core language.")
}

func printHelp() {
	fmt.Println(bold("pikelet - a dependently-typed core language kernel"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pikelet <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  list                 List named example terms from the fixture file")
	fmt.Println("  eval <name>          Evaluate and fully read back a named example")
	fmt.Println("  normalize <name>     Evaluate and read back without unfolding glued globals")
	fmt.Println("  repl                 Start an interactive session over the fixture file")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
