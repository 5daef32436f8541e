// Package normalize inserts explicit concatenation tokens into a
// lexed pattern so that no two adjacent atoms are implicitly
// concatenated, per spec §4.1.
package normalize

import "rxdfa/internal/token"

// concatAttractable reports whether t may receive an inserted Concat
// immediately to its left: any character/escape/group-open, but not
// an operator that already binds leftward, nor a class terminator.
func concatAttractable(t token.Token) bool {
	switch t.Type {
	case token.Union, token.Star, token.Plus, token.QMark, token.RParen,
		token.RBracket, token.Dash:
		return false
	default:
		return true
	}
}

// rightActing reports whether t binds whatever follows it to its
// right, so no Concat should be inserted between t and its successor.
func rightActing(t token.Token) bool {
	switch t.Type {
	case token.Concat, token.Union, token.LParen:
		return true
	default:
		return false
	}
}

// Normalize walks toks left to right and returns a new slice with a
// Concat token inserted between every pair of adjacent atoms that
// would otherwise be implicitly concatenated. Character-class
// interiors (tracked via LBracket/RBracket depth) never receive an
// inserted Concat, matching spec §4.1's in_range rule.
func Normalize(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks)*2)
	inRange := false

	for _, t := range toks {
		if len(out) > 0 && concatAttractable(t) && !rightActing(out[len(out)-1]) && !inRange {
			out = append(out, token.Token{Type: token.Concat, Pos: t.Pos})
		}

		switch t.Type {
		case token.LBracket:
			inRange = true
		case token.RBracket:
			inRange = false
		}

		out = append(out, t)
	}
	return out
}
