// Command rxviz prints a Graphviz DOT rendering of the NFA or DFA
// built for a pattern, for debugging the compile pipeline.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"rxdfa/internal/dfa"
	"rxdfa/internal/nfa"
)

var cli struct {
	Pattern  string `arg:"" name:"pattern" help:"Regex pattern to visualize." type:"string"`
	Stage    string `help:"Which stage to render: nfa or dfa." enum:"nfa,dfa" default:"dfa"`
	Minimize bool   `help:"Minimize the DFA before rendering (only applies to --stage=dfa)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("rxviz"),
		kong.Description("Prints a Graphviz DOT graph of a pattern's NFA or DFA."),
		kong.UsageOnError(),
	)

	frag, err := nfa.Parse(cli.Pattern)
	if err != nil {
		log.Fatalf("failed to parse pattern: %v", err)
	}

	if cli.Stage == "nfa" {
		dfa.ExportDOT(os.Stdout, frag.Start)
		return
	}

	d := dfa.Build(frag.Start)
	if cli.Minimize {
		d = dfa.Minimize(d)
	}
	dfa.ExportDOT(os.Stdout, d)
}
