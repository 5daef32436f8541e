// Command rxgen writes a standalone Go source file embedding a
// frozen matcher for one pattern, using package codegen.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"rxdfa/codegen"
	"rxdfa/internal/dfa"
	"rxdfa/internal/nfa"
)

var cli struct {
	Pattern      string `arg:"" name:"pattern" help:"Regex pattern to compile." type:"string"`
	Output       string `short:"o" help:"Output file path." default:"matcher_generated.go"`
	Package      string `help:"Package clause for the generated file." default:"main"`
	Func         string `help:"Name of the generated matcher function." default:"Match"`
	Minimize     bool   `help:"Minimize the DFA before freezing."`
	AlphabetSize int    `help:"Modulus for the character column map." default:"128"`
	PreIndex     bool   `help:"Bake the char->column map in as a literal table instead of rebuilding it per call."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("rxgen"),
		kong.Description("Generates a standalone Go matcher function for a regex pattern."),
		kong.UsageOnError(),
	)

	frag, err := nfa.Parse(cli.Pattern)
	if err != nil {
		log.Fatalf("failed to parse pattern: %v", err)
	}

	d := dfa.Build(frag.Start)
	if cli.Minimize {
		d = dfa.Minimize(d)
	}

	f, err := codegen.Generate(d, codegen.Config{
		Package:      cli.Package,
		FuncName:     cli.Func,
		Pattern:      cli.Pattern,
		AlphabetSize: cli.AlphabetSize,
		PreIndex:     cli.PreIndex,
	})
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := codegen.Save(f, cli.Output); err != nil {
		log.Fatalf("failed to write %s: %v", cli.Output, err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s (func %s, %d states, %d chars)\n",
		cli.Output, cli.Func, len(d.States), len(d.Chars))
}
