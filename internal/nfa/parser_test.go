package nfa

import "testing"

// runNfa walks the constructed fragment directly (no subset
// construction), via its own ε-closure-aware simulation, to test the
// parser and Thompson constructors in isolation from package dfa.
func runNfa(t *testing.T, frag *Fragment, s string) bool {
	t.Helper()
	cur := map[*State]bool{frag.Start: true}
	closeEps(cur)

	for _, b := range []byte(s) {
		next := map[*State]bool{}
		for st := range cur {
			for _, to := range st.NextStates(b) {
				next[to] = true
			}
		}
		closeEps(next)
		cur = next
	}
	for st := range cur {
		if st.IsEnd {
			return true
		}
	}
	return false
}

func closeEps(set map[*State]bool) {
	var stack []*State
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range s.NextStates(Epsilon) {
			if !set[to] {
				set[to] = true
				stack = append(stack, to)
			}
		}
	}
}

func acc(t *testing.T, pattern, input string, want bool) {
	t.Helper()
	frag, err := Parse(pattern)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	if got := runNfa(t, frag, input); got != want {
		t.Errorf("pattern %q on %q: got %v want %v", pattern, input, got, want)
	}
}

func TestEmptyPatternAcceptsOnlyEmpty(t *testing.T) {
	acc(t, "", "", true)
	acc(t, "", "a", false)
}

func TestLiteralConcat(t *testing.T) {
	acc(t, "abc", "abc", true)
	acc(t, "abc", "ab", false)
}

func TestAlternation(t *testing.T) {
	acc(t, "a|b", "a", true)
	acc(t, "a|b", "b", true)
	acc(t, "a|b", "c", false)
}

func TestClosurePlusOptional(t *testing.T) {
	acc(t, "a*", "", true)
	acc(t, "a*", "aaa", true)
	acc(t, "a+", "", false)
	acc(t, "a+", "a", true)
	acc(t, "a?", "", true)
	acc(t, "a?", "aa", false)
}

func TestGroupingAndPrecedence(t *testing.T) {
	acc(t, "a|bc*", "a", true)
	acc(t, "a|bc*", "bc", true)
	acc(t, "a|bc*", "bccc", true)
	acc(t, "a|bc*", "ab", false)
	acc(t, "(ab)+", "ababab", true)
	acc(t, "(ab)+", "aba", false)
}

func TestEscaping(t *testing.T) {
	acc(t, `\*`, "*", true)
	acc(t, `\*`, "a", false)
}

func TestCharClassRanges(t *testing.T) {
	acc(t, "[a-c]+", "abcabc", true)
	acc(t, "[a-c]+", "d", false)
	acc(t, "[a-zA-Z0-9_]+", "Abc_123", true)
}

func TestCharClassNegation(t *testing.T) {
	acc(t, "[^a-c]+", "xyz", true)
	acc(t, "[^a-c]+", "abc", false)
}

func TestCharClassDashEdgeCases(t *testing.T) {
	// '-' with no pending range_start becomes a literal dash; 'a' then
	// starts a new pending range that ']' closes before a second
	// character completes the pair, so 'a' is added as a singleton.
	acc(t, "[-a]", "-", true)
	acc(t, "[-a]", "a", true)

	// '-' with a pending range_start ('a') and nothing after it but
	// ']' has no second endpoint to pair with, so both the pending
	// start and the dash itself are flushed as literals: the class
	// matches 'a' or '-', not the empty string.
	acc(t, "[a-]", "a", true)
	acc(t, "[a-]", "-", true)
	acc(t, "[a-]", "", false)
	acc(t, "[a-]", "b", false)
}

func TestUnmatchedParenErrors(t *testing.T) {
	if _, err := Parse("(a"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Parse("a)"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLeadingAlternationErrors(t *testing.T) {
	if _, err := Parse("|"); err == nil {
		t.Fatal("expected error for leading |")
	}
}

func TestTrailingAlternationIsEpsilon(t *testing.T) {
	acc(t, "a|", "a", true)
	acc(t, "a|", "", true)
}

func TestUnmatchedBracketErrors(t *testing.T) {
	if _, err := Parse("[a-c"); err == nil {
		t.Fatal("expected error")
	}
}
