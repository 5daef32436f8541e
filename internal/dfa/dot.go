package dfa

import (
	"fmt"
	"io"
	"sort"

	"rxdfa/internal/nfa"
)

// ExportDOT writes a Graphviz rendering of a Dfa (or an Nfa fragment's
// entry state) to w, for debugging and the rxviz command.
func ExportDOT(w io.Writer, g interface{}) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {
	case *Dfa:
		exportDfaDOT(w, t)
	case *nfa.State:
		exportNfaDOT(w, t)
	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}

func exportDfaDOT(w io.Writer, d *Dfa) {
	for _, s := range d.States {
		shape := "circle"
		if s.IsEnd {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s.id, shape)
		for _, t := range s.Trans {
			fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", s.id, t.To.id, dotLabel(t.Ch))
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", d.Start.id)
}

func exportNfaDOT(w io.Writer, start *nfa.State) {
	visited := make(map[*nfa.State]bool)
	var dfs func(*nfa.State)
	dfs = func(s *nfa.State) {
		if visited[s] {
			return
		}
		visited[s] = true
		shape := "circle"
		if s.IsEnd {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", s.ID, shape)

		trans := s.Transitions()
		chars := make([]byte, 0, len(trans))
		for c := range trans {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		for _, c := range chars {
			for _, to := range trans[c] {
				fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", s.ID, to.ID, dotLabel(c))
				dfs(to)
			}
		}
	}
	dfs(start)
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", start.ID)
}

func dotLabel(c byte) string {
	if c == nfa.Epsilon {
		return "eps"
	}
	return string(c)
}
