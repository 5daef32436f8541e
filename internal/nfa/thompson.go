package nfa

// newSymbolFragment builds s--c-->e, per spec §4.2's symbol
// constructor. Used both for ordinary characters and, with
// c = Epsilon, for the parser's priming fragment.
func (p *Parser) newSymbolFragment(c byte) *Fragment {
	s := p.newState()
	e := p.newState()
	e.IsEnd = true
	s.AddTransition(c, e)
	return &Fragment{Start: s, End: e, Size: 2}
}

// newSetFragment builds s--c_i-->e for each c_i in set, or s--ε-->e
// if the set is empty (an empty character class matches ε).
func (p *Parser) newSetFragment(set map[byte]struct{}) *Fragment {
	s := p.newState()
	e := p.newState()
	e.IsEnd = true
	if len(set) == 0 {
		s.AddTransition(Epsilon, e)
		return &Fragment{Start: s, End: e, Size: 2}
	}
	for c := range set {
		s.AddTransition(c, e)
	}
	return &Fragment{Start: s, End: e, Size: 2}
}

// concat splices a.End to b.Start via ε, per spec §4.2.
func (p *Parser) concat(a, b *Fragment) *Fragment {
	a.End.AddTransition(Epsilon, b.Start)
	return &Fragment{Start: a.Start, End: b.End, Size: a.Size + b.Size}
}

// union creates a new start/end bracketing a and b with ε edges.
func (p *Parser) union(a, b *Fragment) *Fragment {
	s := p.newState()
	e := p.newState()
	e.IsEnd = true
	s.AddTransition(Epsilon, a.Start)
	s.AddTransition(Epsilon, b.Start)
	a.End.AddTransition(Epsilon, e)
	b.End.AddTransition(Epsilon, e)
	return &Fragment{Start: s, End: e, Size: a.Size + b.Size + 2}
}

// closure builds a* with the classic Thompson loop-back shape.
func (p *Parser) closure(a *Fragment) *Fragment {
	s := p.newState()
	e := p.newState()
	e.IsEnd = true
	a.End.AddTransition(Epsilon, a.Start)
	s.AddTransition(Epsilon, a.Start)
	a.End.AddTransition(Epsilon, e)
	s.AddTransition(Epsilon, e)
	return &Fragment{Start: s, End: e, Size: a.Size + 2}
}

// plus is a+ expressed as a concatenated with a closure of a, per
// spec §4.2's table.
func (p *Parser) plus(a *Fragment) *Fragment {
	loop := p.closure(a)
	return p.concat(a, loop)
}

// optional builds a? with a single ε bypass around a.
func (p *Parser) optional(a *Fragment) *Fragment {
	s := p.newState()
	e := p.newState()
	e.IsEnd = true
	s.AddTransition(Epsilon, a.Start)
	a.End.AddTransition(Epsilon, e)
	s.AddTransition(Epsilon, e)
	return &Fragment{Start: s, End: e, Size: a.Size + 2}
}
