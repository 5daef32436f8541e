package dfa

// Complement flips every state's acceptance. It assumes d is total
// over d.Chars (every state has an outgoing edge for every character
// in d.Chars); a partial automaton's complement is only correct on
// strings that never fall off a missing transition.
func Complement(d *Dfa) *Dfa {
	idx := make(map[*State]int, len(d.States))
	for i, s := range d.States {
		idx[s] = i
	}

	newStates := make([]*State, len(d.States))
	for i, s := range d.States {
		newStates[i] = &State{id: s.id, No: s.No, IsEnd: !s.IsEnd}
	}
	for i, s := range d.States {
		for _, t := range s.Trans {
			newStates[i].Trans = append(newStates[i].Trans, Transition{Ch: t.Ch, To: newStates[idx[t.To]]})
		}
	}
	return &Dfa{Start: newStates[idx[d.Start]], States: newStates, Chars: append([]byte(nil), d.Chars...)}
}

// Product builds the synchronized product of a and b, combining
// acceptance with op, per spec §6's Intersection/Union supplement.
// A side with no transition on a character is carried on as a nil
// (dead, non-accepting) state, so the result is correct for partial
// automata.
func Product(a, b *Dfa, op func(bool, bool) bool) *Dfa {
	type pair struct{ a, b *State }
	idOf := func(s *State) int {
		if s == nil {
			return 0
		}
		return int(s.id)
	}

	alpha := unionChars(a.Chars, b.Chars)

	mp := make(map[pair]*State)
	startPair := pair{a.Start, b.Start}
	start := &State{id: fingerprint([]int{int(a.Start.id), int(b.Start.id)}), No: 1, IsEnd: op(a.Start.IsEnd, b.Start.IsEnd)}
	mp[startPair] = start

	states := []*State{start}
	queue := []pair{startPair}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := mp[p]

		for _, c := range alpha {
			var ta, tb *State
			if p.a != nil {
				ta = p.a.Next(c)
			}
			if p.b != nil {
				tb = p.b.Next(c)
			}
			if ta == nil && tb == nil {
				continue
			}
			np := pair{ta, tb}
			ns, exists := mp[np]
			if !exists {
				ns = &State{
					id:    fingerprint([]int{idOf(ta), idOf(tb)}),
					No:    len(states) + 1,
					IsEnd: op(ta != nil && ta.IsEnd, tb != nil && tb.IsEnd),
				}
				mp[np] = ns
				states = append(states, ns)
				queue = append(queue, np)
			}
			cur.Trans = append(cur.Trans, Transition{Ch: c, To: ns})
		}
	}

	return &Dfa{Start: start, States: states, Chars: alpha}
}

// Intersect accepts strings accepted by both a and b.
func Intersect(a, b *Dfa) *Dfa {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// UnionDfa accepts strings accepted by either a or b.
func UnionDfa(a, b *Dfa) *Dfa {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

func unionChars(a, b []byte) []byte {
	seen := make(map[byte]bool, len(a)+len(b))
	var out []byte
	for _, c := range a {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
