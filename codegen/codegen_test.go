package codegen

import (
	"strings"
	"testing"

	"rxdfa/internal/dfa"
	"rxdfa/internal/nfa"
)

func buildDfa(t *testing.T, pattern string) *dfa.Dfa {
	t.Helper()
	frag, err := nfa.Parse(pattern)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return dfa.Build(frag.Start)
}

func TestGenerateProducesValidSource(t *testing.T) {
	d := buildDfa(t, "(a|b)*ab")
	f, err := Generate(d, Config{Package: "generated", FuncName: "MatchAB", Pattern: "(a|b)*ab"})
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := f.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	src := buf.String()
	for _, want := range []string{"package generated", "func MatchAB", "MatchABChs", "MatchABTransitions", "MatchABIsEnd"} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestGenerateWithPreIndexEmitsLiteralTable(t *testing.T) {
	d := buildDfa(t, "(a|b)*ab")
	f, err := Generate(d, Config{Package: "generated", FuncName: "MatchAB", Pattern: "(a|b)*ab", PreIndex: true})
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := f.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	src := buf.String()
	for _, want := range []string{"MatchABChIndex", "func MatchAB"} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "range MatchABChs") {
		t.Errorf("pre_index variant should not rebuild the column table at call time:\n%s", src)
	}
}
