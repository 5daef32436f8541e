package normalize

import (
	"testing"

	"rxdfa/internal/token"
)

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func mustTokenize(t *testing.T, pattern string) []token.Token {
	t.Helper()
	toks, err := token.Tokenize(pattern)
	if err != nil {
		t.Fatalf("tokenize %q: %v", pattern, err)
	}
	return toks
}

func TestInsertsConcatBetweenLiterals(t *testing.T) {
	got := types(Normalize(mustTokenize(t, "ab")))
	want := []token.Type{token.Char, token.Concat, token.Char}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNoConcatAfterUnionOrLParen(t *testing.T) {
	got := types(Normalize(mustTokenize(t, "a|b")))
	want := []token.Type{token.Char, token.Union, token.Char}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got = types(Normalize(mustTokenize(t, "(a)")))
	want = []token.Type{token.LParen, token.Char, token.RParen}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestConcatAfterQuantifier(t *testing.T) {
	got := types(Normalize(mustTokenize(t, "a*c")))
	want := []token.Type{token.Char, token.Star, token.Concat, token.Char}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNoConcatInsideCharClass(t *testing.T) {
	got := types(Normalize(mustTokenize(t, "[a-c]")))
	want := []token.Type{token.LBracket, token.Char, token.Dash, token.Char, token.RBracket}
	if !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func equal(a, b []token.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
