package dfa

import (
	"testing"

	"rxdfa/internal/nfa"
)

func build(t *testing.T, pattern string) *Dfa {
	t.Helper()
	frag, err := nfa.Parse(pattern)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return Build(frag.Start)
}

func acc(t *testing.T, d *Dfa, input string, want bool) {
	t.Helper()
	if got := d.Match([]byte(input)); got != want {
		t.Errorf("%q: got %v want %v", input, got, want)
	}
}

func TestBuildMatchesSameLanguageAsNfa(t *testing.T) {
	d := build(t, "(a|b)*ab")
	acc(t, d, "ab", true)
	acc(t, d, "ababab", true)
	acc(t, d, "abb", false)
	acc(t, d, "", false)
}

func TestStartStateIsNo1(t *testing.T) {
	d := build(t, "a")
	if d.Start.No != 1 {
		t.Fatalf("start.No = %d, want 1", d.Start.No)
	}
}

func TestDeterministicByConstruction(t *testing.T) {
	d := build(t, "a|b")
	for _, st := range d.States {
		seen := map[byte]bool{}
		for _, tr := range st.Trans {
			if seen[tr.Ch] {
				t.Fatalf("state %d has duplicate transition on %q", st.No, tr.Ch)
			}
			seen[tr.Ch] = true
		}
	}
}

func TestEveryTransitionTargetInStateSet(t *testing.T) {
	d := build(t, "(ab|a)*c")
	known := map[*State]bool{}
	for _, st := range d.States {
		known[st] = true
	}
	for _, st := range d.States {
		for _, tr := range st.Trans {
			if !known[tr.To] {
				t.Fatalf("state %d has transition to a state outside d.States", st.No)
			}
		}
	}
}

func TestFingerprintStableAndOrderIndependent(t *testing.T) {
	a := fingerprint([]int{3, 1, 2})
	b := fingerprint([]int{1, 2, 3})
	if a != b {
		t.Fatalf("fingerprint not order-independent: %d != %d", a, b)
	}
}

func TestEquivalentPatternsProduceEquivalentDfas(t *testing.T) {
	d1 := build(t, "(a|b)")
	d2 := build(t, "(b|a)")
	for _, s := range []string{"a", "b", "c", ""} {
		if d1.Match([]byte(s)) != d2.Match([]byte(s)) {
			t.Fatalf("(a|b) and (b|a) disagree on %q", s)
		}
	}
}

func TestMinimizeReducesStatesAndPreservesLanguage(t *testing.T) {
	// The two accepting sink states reached via "ab" and "ac" have no
	// outgoing transitions and are therefore equivalent; Hopcroft
	// refinement merges them.
	d := build(t, "(ab|ac)")
	before := len(d.States)
	min := Minimize(d)
	if len(min.States) >= before {
		t.Fatalf("expected fewer states after minimize: before=%d after=%d", before, len(min.States))
	}
	for _, s := range []string{"ab", "ac", "a", "abc", ""} {
		if d.Match([]byte(s)) != min.Match([]byte(s)) {
			t.Fatalf("minimize changed language on %q", s)
		}
	}
}

func TestMinimizePreservesLanguageOnAlreadyMinimalDfa(t *testing.T) {
	// "a|(ab)" is already irreducible as a partial DFA: its two
	// accepting states are distinguished by the 'b' transition one
	// has and the other lacks.
	d := build(t, "a|(ab)")
	min := Minimize(d)
	for _, s := range []string{"a", "ab", "abc", ""} {
		if d.Match([]byte(s)) != min.Match([]byte(s)) {
			t.Fatalf("minimize changed language on %q", s)
		}
	}
}

func TestSetOps(t *testing.T) {
	a := build(t, "[ab]*")
	b := build(t, "a+")

	inter := Intersect(a, b)
	acc(t, inter, "aaa", true)
	acc(t, inter, "b", false)

	union := UnionDfa(build(t, "a"), build(t, "b"))
	acc(t, union, "a", true)
	acc(t, union, "b", true)
	acc(t, union, "c", false)
}

func TestToRegexpPreservesLanguage(t *testing.T) {
	d := build(t, "a(b|c)*d")
	restored := build(t, ToRegexp(d))
	for _, s := range []string{"ad", "abcd", "abcbcd", "acbd", "xyz"} {
		if d.Match([]byte(s)) != restored.Match([]byte(s)) {
			t.Fatalf("restore diff on %q", s)
		}
	}
}
