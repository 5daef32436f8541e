package dfa

import "sort"

// Minimize collapses equivalent states via Hopcroft-style partition
// refinement, per spec §6's supplemented minimization note.
func Minimize(d *Dfa) *Dfa {
	if d == nil || d.Start == nil {
		return d
	}

	var acc, non []*State
	for _, s := range d.States {
		if s.IsEnd {
			acc = append(acc, s)
		} else {
			non = append(non, s)
		}
	}

	var partitions [][]*State
	if len(acc) > 0 {
		partitions = append(partitions, acc)
	}
	if len(non) > 0 {
		partitions = append(partitions, non)
	}

	work := make([]int, len(partitions))
	for i := range work {
		work[i] = i
	}

	blockOf := func(p []*State, s *State) bool {
		for _, t := range p {
			if t == s {
				return true
			}
		}
		return false
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		A := partitions[idx]

		for _, c := range d.Chars {
			var x []*State
			for _, s := range d.States {
				if t := s.Next(c); t != nil && blockOf(A, t) {
					x = append(x, s)
				}
			}
			inX := func(s *State) bool { return blockOf(x, s) }

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				y := partitions[pIdx]
				var inter, diff []*State
				for _, s := range y {
					if inX(s) {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				partitions[pIdx] = inter
				partitions = append(partitions, diff)

				if len(inter) < len(diff) {
					work = append(work, pIdx)
				} else {
					work = append(work, len(partitions)-1)
				}
			}
		}
	}

	// Deterministic block ordering: sort each block by original No,
	// then order blocks by their smallest member's No, per the
	// determinism requirement of spec §8.
	for _, p := range partitions {
		sort.Slice(p, func(i, j int) bool { return p[i].No < p[j].No })
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i][0].No < partitions[j][0].No })

	rep := make(map[*State]*State, len(d.States))
	newStates := make([]*State, 0, len(partitions))
	for i, p := range partitions {
		ids := make([]int, len(p))
		for j, s := range p {
			ids[j] = int(s.id)
		}
		ns := &State{id: fingerprint(ids), IsEnd: p[0].IsEnd, No: i + 1}
		for _, s := range p {
			rep[s] = ns
		}
		newStates = append(newStates, ns)
	}

	for old, ns := range rep {
		for _, t := range old.Trans {
			if hasTransition(ns.Trans, t.Ch) {
				continue
			}
			ns.Trans = append(ns.Trans, Transition{Ch: t.Ch, To: rep[t.To]})
		}
	}
	for _, ns := range newStates {
		sort.Slice(ns.Trans, func(i, j int) bool { return ns.Trans[i].Ch < ns.Trans[j].Ch })
	}

	return &Dfa{
		Start:  rep[d.Start],
		States: newStates,
		Chars:  append([]byte(nil), d.Chars...),
	}
}

func hasTransition(ts []Transition, c byte) bool {
	for _, t := range ts {
		if t.Ch == c {
			return true
		}
	}
	return false
}
