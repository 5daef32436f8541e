// Package rxdfa compiles a small regex grammar (literals, \-escapes,
// character classes with ranges and negation, *, +, ?, |, grouping)
// into a frozen, fixed-shape DFA via Thompson construction and subset
// construction, then matches whole strings against it.
//
// The pipeline is synchronous and single-threaded: pattern ->
// normalize -> parse to Nfa -> subset-construct to Dfa -> freeze to
// FixedDfa -> Match. A FixedDfa, once built, is immutable and safe
// for concurrent read-only use.
package rxdfa

import (
	"fmt"

	"rxdfa/internal/dfa"
	"rxdfa/internal/fixed"
	"rxdfa/internal/logging"
	"rxdfa/internal/nfa"
)

// FixedDfa is the compiled, immutable matcher returned by Compile.
type FixedDfa = fixed.FixedDfa

// CompileOptions configures the freezing step, per spec §6's
// configuration knobs. The zero value is the documented default:
// no pre-indexing, AlphabetSize 128.
type CompileOptions struct {
	// PreIndex precomputes the character-to-column map into a stored
	// array instead of rebuilding it on every Match call.
	PreIndex bool
	// AlphabetSize is the modulus used for the column map. Must
	// exceed the highest distinct pattern byte value to avoid a
	// collision; 0 selects fixed.DefaultAlphabetSize (128).
	AlphabetSize int
	// Minimize runs Hopcroft partition refinement over the subset-
	// constructed Dfa before freezing. Off by default: the spec's
	// core pipeline does not require it, and minimization is a
	// supplemented, optional feature (see SPEC_FULL.md §4).
	Minimize bool
	// Logger receives trace output for each pipeline stage, if set.
	Logger *logging.Logger
}

// Compile parses pattern and builds a FixedDfa, per spec §2 and §6.
// A malformed pattern (unmatched parenthesis or bracket, an operator
// without an operand, an empty alternation branch, or a trailing
// escape) returns a non-nil error.
func Compile(pattern string, opts CompileOptions) (*FixedDfa, error) {
	log := opts.Logger
	if log == nil {
		log = logging.New(false)
	}

	log.Stage("parse")
	frag, err := nfa.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("rxdfa: %w", err)
	}
	log.Log("nfa fragment built, %d states", frag.Size)

	log.Stage("subset construction")
	d := dfa.Build(frag.Start)
	log.Log("dfa built: %d states, %d chars", len(d.States), len(d.Chars))

	if opts.Minimize {
		log.Stage("minimize")
		d = dfa.Minimize(d)
		log.Log("minimized to %d states", len(d.States))
	}

	log.Stage("freeze")
	fz, err := fixed.Freeze(d, fixed.Options{
		PreIndex:     opts.PreIndex,
		AlphabetSize: opts.AlphabetSize,
	})
	if err != nil {
		return nil, err
	}
	log.Log("frozen: %d states, %d chars", fz.NStates(), fz.NChars())

	return fz, nil
}

// MustCompile is like Compile but panics on error, for use with
// trusted, literal patterns (mirroring regexp.MustCompile's idiom).
func MustCompile(pattern string) *FixedDfa {
	fz, err := Compile(pattern, CompileOptions{})
	if err != nil {
		panic(err)
	}
	return fz
}

// Match is a convenience equivalent to Compile(pattern,
// CompileOptions{}).Match(input), per spec §6.
func Match(pattern string, input []byte) (bool, error) {
	fz, err := Compile(pattern, CompileOptions{})
	if err != nil {
		return false, err
	}
	return fz.Match(input), nil
}
