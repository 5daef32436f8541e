// Package nfa holds the Thompson-construction data model: states with
// per-symbol transition multimaps, and fragments combined by
// splicing per spec §4.3.
package nfa

// Epsilon is the sentinel byte denoting an ε-transition. Pattern bytes
// equal to Epsilon are not supported in input.
const Epsilon byte = 0

// State is one node of a Thompson NFA fragment. Ids are assigned
// sequentially starting at 1 by the parser that owns the state.
type State struct {
	ID     int
	IsEnd  bool
	trans  map[byte][]*State
}

func newState(id int) *State {
	return &State{ID: id, trans: make(map[byte][]*State)}
}

// AddTransition adds an edge labeled c from s to target. Adding any
// outgoing transition clears s.IsEnd, per spec §3's invariant.
func (s *State) AddTransition(c byte, target *State) {
	s.trans[c] = append(s.trans[c], target)
	s.IsEnd = false
}

// Accepts reports whether s has any outgoing edge labeled c.
func (s *State) Accepts(c byte) bool {
	return len(s.trans[c]) > 0
}

// NextStates returns the targets reachable from s on c. The returned
// slice is owned by s and must not be mutated by the caller.
func (s *State) NextStates(c byte) []*State {
	return s.trans[c]
}

// Transitions returns the full table, byte -> targets, for callers
// (the DFA builder) that need to enumerate every outgoing edge.
func (s *State) Transitions() map[byte][]*State {
	return s.trans
}

// Fragment is a partially constructed NFA with a single entry and
// single exit, per spec §3's Nfa triple.
type Fragment struct {
	Start *State
	End   *State
	Size  int
}
