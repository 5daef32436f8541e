// Package fixed freezes a built Dfa into dense, fixed-shape lookup
// tables and provides the pure matcher that runs over them, per
// spec §4.5. The C++ original performs this at compile time via
// consteval; Go has no equivalent, so here freezing runs once at
// Compile-time (program init or call time) and the result is then
// immutable and safe for concurrent read-only use.
package fixed

import (
	"fmt"

	"rxdfa/internal/dfa"
)

// DefaultAlphabetSize is the modulus used by the character column
// map; 128 covers printable ASCII with no collision for ordinary
// patterns.
const DefaultAlphabetSize = 128

// FixedDfa is the frozen, dense matcher: a character table, an
// optional precomputed column index, a 2-D transition table, and an
// accept table, per spec §3's FixedDfa tables.
type FixedDfa struct {
	alphabetSize int
	preIndex     bool

	chs          []byte  // chs[i] is the character at column i+1
	chIndexTable []int   // populated only if preIndex; chIndexTable[ch%A] = column, 0 = invalid
	transitions  [][]int // transitions[no-1][col-1] = destination no, 0 = none
	isEnd        []bool  // isEnd[no-1]
}

// Options configures freezing, mirroring spec §7's pre_index and
// AlphabetSize knobs.
type Options struct {
	PreIndex     bool
	AlphabetSize int
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{PreIndex: false, AlphabetSize: DefaultAlphabetSize}
}

// Freeze freezes d into a FixedDfa, per spec §4.5: the tables are
// sized from d's state and character counts and then filled in a
// single pass over d. It assumes d.Start.No == 1, per the Dfa
// builder's invariant. It errors if two distinct characters collide
// under mod AlphabetSize, per the spec's SHOULD-assert guidance on
// alphabet collisions.
func Freeze(d *dfa.Dfa, opts Options) (*FixedDfa, error) {
	if opts.AlphabetSize <= 0 {
		opts.AlphabetSize = DefaultAlphabetSize
	}

	f := &FixedDfa{
		alphabetSize: opts.AlphabetSize,
		preIndex:     opts.PreIndex,
		chs:          append([]byte(nil), d.Chars...),
		transitions:  make([][]int, len(d.States)),
		isEnd:        make([]bool, len(d.States)),
	}
	for i := range f.transitions {
		f.transitions[i] = make([]int, len(d.Chars))
	}

	tmp := make([]int, opts.AlphabetSize)
	for i, ch := range f.chs {
		col := int(ch) % opts.AlphabetSize
		if tmp[col] != 0 {
			return nil, fmt.Errorf("rxdfa: alphabet collision: %q and %q both map to column %d mod %d",
				f.chs[tmp[col]-1], ch, col, opts.AlphabetSize)
		}
		tmp[col] = i + 1
	}

	if opts.PreIndex {
		f.chIndexTable = append([]int(nil), tmp...)
	}

	for _, st := range d.States {
		for _, t := range st.Trans {
			col := tmp[int(t.Ch)%opts.AlphabetSize]
			f.transitions[st.No-1][col-1] = t.To.No
		}
		if st.IsEnd {
			f.isEnd[st.No-1] = true
		}
	}

	return f, nil
}

// NStates returns the number of frozen states.
func (f *FixedDfa) NStates() int { return len(f.isEnd) }

// NChars returns the number of frozen distinct characters.
func (f *FixedDfa) NChars() int { return len(f.chs) }

// Match runs s through the frozen tables, per spec §4.5's matcher
// procedure. It is pure: no mutation, safe for concurrent callers.
func (f *FixedDfa) Match(s []byte) bool {
	t := f.columnTable()

	st := 1
	for _, b := range s {
		j := t[int(b)%f.alphabetSize]
		if j == 0 {
			return false
		}
		to := f.transitions[st-1][j-1]
		if to == 0 {
			return false
		}
		st = to
	}
	return f.isEnd[st-1]
}

// columnTable returns the char->column map, either the precomputed
// one or one built fresh, per spec §4.5 step 1.
func (f *FixedDfa) columnTable() []int {
	if f.preIndex {
		return f.chIndexTable
	}
	t := make([]int, f.alphabetSize)
	for i, ch := range f.chs {
		t[int(ch)%f.alphabetSize] = i + 1
	}
	return t
}
