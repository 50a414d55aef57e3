package solver

// propagate assigns forced cells until the grid is stable. Each pass
// computes candidates for every empty cell from the grid as it stood at
// the start of the pass, then applies all discovered singles as one
// batch before recomputing. That keeps the result independent of scan
// order. Returns ok=false when some empty cell has no candidates.
//
// Every pass that continues assigns at least one cell, so the loop runs
// at most 81 times. The caller's grid is untouched: the parameter is a
// value copy.
func propagate(g [9][9]uint8) ([9][9]uint8, bool) {
	type single struct {
		r, c int
		v    uint8
	}
	for {
		var singles []single
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g[r][c] != 0 {
					continue
				}
				cs := CandidatesFor(&g, r, c)
				if cs == 0 {
					return g, false
				}
				if v, ok := cs.Sole(); ok {
					singles = append(singles, single{r, c, v})
				}
			}
		}
		if len(singles) == 0 {
			return g, true
		}
		for _, s := range singles {
			g[s.r][s.c] = s.v
		}
		// Two peer cells can be forced to the same digit in one batch;
		// that only happens on a dead branch, but it must read as a
		// contradiction rather than survive as a duplicate.
		if len(singles) > 1 && hasConflict(&g) {
			return g, false
		}
	}
}
