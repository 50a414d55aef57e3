package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
)

// SATSolver encodes the board as propositional clauses and hands them to
// gini. One variable per (row, col, digit) triple; the rules say every
// cell holds some digit and no digit repeats within a row, column, or
// box. Givens become unit clauses. Same external contract as MRVSolver.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func satLit(r, c, n int) z.Lit {
	return z.Var(r*81 + c*9 + n + 1).Pos()
}

// addRules emits the sudoku axioms shared by every query.
func addRules(g *gini.Gini) {
	// each cell holds at least one digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for n := 0; n < 9; n++ {
				g.Add(satLit(r, c, n))
			}
			g.Add(0)
		}
	}
	// pairwise exclusion inside a unit: cells a and b cannot both hold n
	exclude := func(cells [9][2]int) {
		for n := 0; n < 9; n++ {
			for i := 0; i < 9; i++ {
				for j := i + 1; j < 9; j++ {
					g.Add(satLit(cells[i][0], cells[i][1], n).Not())
					g.Add(satLit(cells[j][0], cells[j][1], n).Not())
					g.Add(0)
				}
			}
		}
	}
	var unit [9][2]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			unit[c] = [2]int{r, c}
		}
		exclude(unit)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			unit[r] = [2]int{r, c}
		}
		exclude(unit)
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		i := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				unit[i] = [2]int{br + dr, bc + dc}
				i++
			}
		}
		exclude(unit)
	}
	// a cell holds at most one digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for a := 0; a < 9; a++ {
				for b := a + 1; b < 9; b++ {
					g.Add(satLit(r, c, a).Not())
					g.Add(satLit(r, c, b).Not())
					g.Add(0)
				}
			}
		}
	}
}

func addGivens(g *gini.Gini, grid *[9][9]uint8) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := grid[r][c]; v != 0 {
				g.Add(satLit(r, c, int(v)-1))
				g.Add(0)
			}
		}
	}
}

func decodeModel(g *gini.Gini) [9][9]uint8 {
	var out [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for n := 0; n < 9; n++ {
				if g.Value(satLit(r, c, n)) {
					out[r][c] = uint8(n + 1)
					break
				}
			}
		}
	}
	return out
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := b.Check(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := b.Values
	if hasConflict(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrConflict
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	g := gini.New()
	addRules(g)
	addGivens(g, &grid)
	if g.Solve() != 1 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}
	out := decodeModel(g)
	return &domain.Board{Values: out, Fixed: b.Fixed}, ports.Stats{Duration: time.Since(start)}, nil
}

// Unique solves once, blocks the found model with one clause, and asks
// for a second model.
func (s *SATSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := b.Check(); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := b.Values
	if hasConflict(&grid) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	g := gini.New()
	addRules(g)
	addGivens(g, &grid)
	if g.Solve() != 1 {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	first := decodeModel(g)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.Add(satLit(r, c, int(first[r][c])-1).Not())
		}
	}
	g.Add(0)
	unique := g.Solve() != 1
	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
