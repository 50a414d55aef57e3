package solver

import "math/bits"

// CandidateSet is the set of digits 1..9 still legal for a cell,
// packed into the low nine bits (bit 0 = digit 1).
type CandidateSet uint16

const allDigits CandidateSet = 0x1ff

func digitBit(v uint8) CandidateSet { return 1 << (v - 1) }

// Has reports whether digit v is in the set.
func (s CandidateSet) Has(v uint8) bool { return s&digitBit(v) != 0 }

// Count returns the number of digits in the set.
func (s CandidateSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single member of a one-element set.
func (s CandidateSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Values lists the members in ascending order.
func (s CandidateSet) Values() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// peerValues collects the digits already placed in the row, column, and
// box of cell (r,c). Only called for empty cells, so the cell itself
// never contributes.
func peerValues(g *[9][9]uint8, r, c int) CandidateSet {
	var used CandidateSet
	for i := 0; i < 9; i++ {
		if v := g[r][i]; v != 0 {
			used |= digitBit(v)
		}
		if v := g[i][c]; v != 0 {
			used |= digitBit(v)
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if v := g[br+dr][bc+dc]; v != 0 {
				used |= digitBit(v)
			}
		}
	}
	return used
}

// CandidatesFor computes the legal digits for cell (r,c). An assigned
// cell yields the singleton of its value. An empty cell whose peers use
// all nine digits yields the empty set, which is the contradiction
// signal propagation and search react to.
func CandidatesFor(g *[9][9]uint8, r, c int) CandidateSet {
	if v := g[r][c]; v != 0 {
		return digitBit(v)
	}
	return allDigits &^ peerValues(g, r, c)
}

// hasConflict reports a duplicate nonzero value in any row, column, or
// box. Kept local to the solver so both backends can fail fast before
// searching; the validator port does the same work for the UI with
// conflict coordinates attached.
func hasConflict(g *[9][9]uint8) bool {
	for i := 0; i < 9; i++ {
		var row, col CandidateSet
		for j := 0; j < 9; j++ {
			if v := g[i][j]; v != 0 {
				if row.Has(v) {
					return true
				}
				row |= digitBit(v)
			}
			if v := g[j][i]; v != 0 {
				if col.Has(v) {
					return true
				}
				col |= digitBit(v)
			}
		}
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		var box CandidateSet
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				if v := g[br+dr][bc+dc]; v != 0 {
					if box.Has(v) {
						return true
					}
					box |= digitBit(v)
				}
			}
		}
	}
	return false
}

func solved(g *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
