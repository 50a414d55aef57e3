package solver

type pickStatus int

const (
	// pickFound: an empty cell was chosen.
	pickFound pickStatus = iota
	// pickNone: the grid has no empty cell left.
	pickNone
	// pickDead: some empty cell has zero candidates.
	pickDead
)

// chooseMRV returns the empty cell with the fewest candidates, scanning
// in row-major order. Ties keep the earliest cell (strict < below), so
// the choice — and therefore which of several valid solutions search
// returns — is deterministic. A zero-candidate cell aborts the scan
// immediately; a one-candidate cell is returned on the spot since no
// later cell can beat it.
func chooseMRV(g *[9][9]uint8) (row, col int, cs CandidateSet, st pickStatus) {
	best := -1
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			cands := CandidatesFor(g, r, c)
			n := cands.Count()
			if n == 0 {
				return 0, 0, 0, pickDead
			}
			if n == 1 {
				return r, c, cands, pickFound
			}
			if best == -1 || n < best {
				row, col, cs, best = r, c, cands, n
			}
		}
	}
	if best == -1 {
		return 0, 0, 0, pickNone
	}
	return row, col, cs, pickFound
}
