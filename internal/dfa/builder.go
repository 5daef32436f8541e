package dfa

import (
	"sort"

	"rxdfa/internal/nfa"
)

// Build runs subset construction over start (the Nfa's entry state),
// per spec §4.4: ε-closure, ε-closure memoization via a pre-closure
// fingerprint cache, and a unique ever-seen FIFO work queue.
func Build(start *nfa.State) *Dfa {
	b := &builder{
		fanout: make(map[uint32]map[byte][]*nfa.State),
		states: make(map[uint32]*State),
		ecache: make(map[uint32]uint32),
	}
	return b.build(start)
}

type builder struct {
	// fanout[dfaID][c] is the non-ε NFA-state fanout recorded when the
	// DfaState with that id was created, per spec §4.4 step 3.
	fanout map[uint32]map[byte][]*nfa.State
	states map[uint32]*State
	ecache map[uint32]uint32
}

// epsilonClosure expands set in place via a DFS over ε-edges.
func epsilonClosure(set map[int]*nfa.State) {
	var stack []*nfa.State
	for _, s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range s.NextStates(nfa.Epsilon) {
			if _, ok := set[t.ID]; !ok {
				set[t.ID] = t
				stack = append(stack, t)
			}
		}
	}
}

func idsOf(set map[int]*nfa.State) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

func hasAccept(set map[int]*nfa.State) bool {
	for _, s := range set {
		if s.IsEnd {
			return true
		}
	}
	return false
}

// newDfaState allocates a DfaState for the ε-closed set, recording its
// non-ε fanout by character for the build loop to consume later.
func (b *builder) newDfaState(set map[int]*nfa.State, id uint32) *State {
	st := &State{id: id, IsEnd: hasAccept(set), No: len(b.states) + 1}
	b.states[id] = st

	fan := make(map[byte][]*nfa.State)
	for _, s := range set {
		for c, targets := range s.Transitions() {
			if c == nfa.Epsilon {
				continue
			}
			fan[c] = append(fan[c], targets...)
		}
	}
	b.fanout[id] = fan
	return st
}

func (b *builder) build(start *nfa.State) *Dfa {
	n0 := map[int]*nfa.State{start.ID: start}
	epsilonClosure(n0)
	id0 := fingerprint(idsOf(n0))
	s0 := b.newDfaState(n0, id0)

	q := newUniqueQueue()
	q.push(s0)

	d := &Dfa{Start: s0}
	seenChars := make(map[byte]bool)

	for !q.empty() {
		s := q.pop()
		fan := b.fanout[s.id]

		chars := make([]byte, 0, len(fan))
		for c := range fan {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		for _, c := range chars {
			target := b.move(s.id, c, fan[c])
			s.Trans = append(s.Trans, Transition{Ch: c, To: target})
			q.push(target)

			if !seenChars[c] {
				seenChars[c] = true
				d.Chars = append(d.Chars, c)
			}
		}

		d.States = append(d.States, s)
	}

	return d
}

// move computes the ε-closed destination DfaState reached from a
// fanout set N on character c, memoizing on N's pre-closure
// fingerprint per spec §4.4.
func (b *builder) move(fromID uint32, c byte, n []*nfa.State) *State {
	nset := make(map[int]*nfa.State, len(n))
	for _, s := range n {
		nset[s.ID] = s
	}

	kid := fingerprint(idsOf(nset))
	if id, ok := b.ecache[kid]; ok {
		return b.states[id]
	}

	epsilonClosure(nset)
	id := fingerprint(idsOf(nset))

	st, exists := b.states[id]
	if !exists {
		st = b.newDfaState(nset, id)
	}
	b.ecache[kid] = id
	return st
}
