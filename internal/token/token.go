// Package token tokenizes a regex pattern string into the typed byte
// tokens consumed by the normalizer and the NFA parser.
package token

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Type identifies the lexical class of a Token.
type Type int

const (
	Char    Type = iota // an ordinary literal byte
	Escaped             // `\x`, collapsed to the literal byte x
	LParen              // (
	RParen              // )
	LBracket            // [
	RBracket            // ]
	Dash                // - inside a character class
	Star                // *
	Plus                // +
	QMark               // ?
	Union               // |
	Concat              // inserted by the normalizer, never lexed
)

// Token is one lexed (or normalizer-inserted) unit of a pattern.
type Token struct {
	Type Type
	Ch   byte // the literal byte this token carries (0 for Concat)
	Pos  int  // byte offset in the original pattern
}

func (t Token) String() string {
	if t.Type == Concat {
		return "&"
	}
	return fmt.Sprintf("%c", t.Ch)
}

// IsOperator reports whether t is one of the calculation operators
// (&, |, *, +, ?) the NFA parser's shunting-yard scheduler pops on.
func (t Token) IsOperator() bool {
	switch t.Type {
	case Concat, Union, Star, Plus, QMark:
		return true
	default:
		return false
	}
}

// Priority returns the shunting-yard priority of a calculation
// operator: CLOSURE/PLUS/OPTIONAL = 2, CONCAT/UNION = 1, else 0.
func (t Token) Priority() int {
	switch t.Type {
	case Star, Plus, QMark:
		return 2
	case Concat, Union:
		return 1
	default:
		return 0
	}
}

var lex *lexmachine.Lexer

func init() {
	lex = lexmachine.NewLexer()

	// Escape: a literal backslash followed by any one byte. Longest
	// match wins over every single-byte rule below, so `\(` lexes as
	// one Escaped token rather than two.
	lex.Add([]byte(`\\.`), action(Escaped))

	lex.Add([]byte(`[(]`), action(LParen))
	lex.Add([]byte(`[)]`), action(RParen))
	lex.Add([]byte(`[\[]`), action(LBracket))
	lex.Add([]byte(`[]]`), action(RBracket))
	lex.Add([]byte(`[-]`), action(Dash))
	lex.Add([]byte(`[*]`), action(Star))
	lex.Add([]byte(`[+]`), action(Plus))
	lex.Add([]byte(`[?]`), action(QMark))
	lex.Add([]byte(`[|]`), action(Union))

	// Catch-all: any remaining single byte is an ordinary character.
	// Added last so the rules above win on equal-length matches.
	lex.Add([]byte{'[', 0x00, '-', 0xff, ']'}, action(Char))

	if err := lex.Compile(); err != nil {
		panic("token: lexmachine grammar failed to compile: " + err.Error())
	}
}

func action(typ Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lit := m.Bytes
		ch := lit[len(lit)-1] // for Escaped, the byte after `\`
		return Token{Type: typ, Ch: ch, Pos: m.StartColumn}, nil
	}
}

// Tokenize lexes pattern into a token stream. An empty pattern
// produces an empty token stream (the caller is responsible for the
// empty-pattern edge case).
func Tokenize(pattern string) ([]Token, error) {
	scanner, err := lex.Scanner([]byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}

	var out []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("token: invalid byte at offset %d: %w", len(out), err)
		}
		t := tok.(Token)
		// Byte 0 doubles as Epsilon, the sentinel the NFA builder
		// splices ε-edges on; letting a literal NUL through would
		// collide with that sentinel and corrupt ε-closure
		// computation, so it is rejected here instead of being fed to
		// the parser.
		if (t.Type == Char || t.Type == Escaped) && t.Ch == 0 {
			return nil, fmt.Errorf("token: NUL byte not allowed in pattern at offset %d", t.Pos)
		}
		out = append(out, t)
	}

	// A lone backslash can only fall through to the catch-all Char
	// rule when there is no following byte for `\\.` to pair with,
	// i.e. when it is the pattern's final byte.
	if n := len(out); n > 0 && out[n-1].Type == Char && out[n-1].Ch == '\\' {
		return nil, fmt.Errorf("token: trailing escape at offset %d", out[n-1].Pos)
	}
	return out, nil
}
