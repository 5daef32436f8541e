package dfa

import "strings"

// ToRegexp turns d into an equivalent regular expression via state
// elimination (McNaughton-Yamada), for debugging only — it has no
// role in the compile/match pipeline.
func ToRegexp(d *Dfa) string {
	if d == nil || len(d.States) == 0 {
		return "∅"
	}

	n := len(d.States)
	idx := make(map[*State]int, n)
	for i, s := range d.States {
		idx[s] = i
	}

	r := make([][]string, n)
	for i := range r {
		r[i] = make([]string, n)
	}

	for _, s := range d.States {
		i := idx[s]
		for _, t := range s.Trans {
			lex := escapeRegexpChar(t.Ch)
			j := idx[t.To]
			if r[i][j] == "" {
				r[i][j] = lex
			} else {
				r[i][j] += "|" + lex
			}
		}
	}

	start := idx[d.Start]
	var finals []int
	for _, s := range d.States {
		if s.IsEnd {
			finals = append(finals, idx[s])
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}

				rik, rkk, rkj := r[i][k], r[k][k], r[k][j]
				if rik == "" || rkj == "" {
					continue
				}

				var middle string
				if rkk != "" {
					middle = "(" + rkk + ")*"
				}
				expr := "(" + regexAlt(rik) + middle + regexAlt(rkj) + ")"

				if r[i][j] == "" {
					r[i][j] = expr
				} else {
					r[i][j] += "|" + expr
				}
			}
		}
	}

	var parts []string
	for _, f := range finals {
		if part := r[start][f]; part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "∅"
	}
	return strings.Join(parts, "|")
}

func escapeRegexpChar(c byte) string {
	switch c {
	case '*', '+', '?', '|', '(', ')', '[', ']', '-', '\\':
		return "\\" + string(c)
	default:
		return string(c)
	}
}

func regexAlt(s string) string {
	if strings.ContainsRune(s, '|') {
		return "(" + s + ")"
	}
	return s
}
