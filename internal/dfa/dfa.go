// Package dfa implements subset construction (NFA -> DFA) with
// ε-closure memoization, per spec §4.4, and the deterministic
// automaton data model of spec §3/§4.4.
package dfa

// Transition is one outgoing edge of a State, kept in an ordered
// slice (rather than a map) so that Dfa.Chars and every State's
// fanout are enumerated in a deterministic order independent of Go's
// randomized map iteration.
type Transition struct {
	Ch byte
	To *State
}

// State is a deterministic automaton state: identity derived from the
// fingerprint of its underlying NFA-state set, a dense sequence
// number assigned in allocation order, and whether any constituent
// NFA state accepts.
type State struct {
	id    uint32
	No    int
	IsEnd bool
	Trans []Transition
}

// ID exposes the state's fingerprint identity, stable across equal
// underlying NFA-state sets.
func (s *State) ID() uint32 { return s.id }

// Next returns the destination on c, or nil if there is none.
func (s *State) Next(c byte) *State {
	for _, t := range s.Trans {
		if t.Ch == c {
			return t.To
		}
	}
	return nil
}

// Dfa is a complete deterministic automaton: a start state, every
// reachable state, and the set of characters appearing on any
// transition (in first-seen, deterministic order).
type Dfa struct {
	Start  *State
	States []*State // in allocation order; States[i].No == i+1
	Chars  []byte
}

// Match runs s through the automaton from Start, consuming one byte
// at a time, and reports whether the final state accepts. This is a
// convenience used by tests; the production matching path is
// FixedDfa.Match in package fixed.
func (d *Dfa) Match(s []byte) bool {
	st := d.Start
	for _, c := range s {
		st = st.Next(c)
		if st == nil {
			return false
		}
	}
	return st.IsEnd
}
