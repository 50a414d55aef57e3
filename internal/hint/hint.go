// Package hint suggests one correct cell/value pair for a board.
package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
	"svw.info/gridsolver/internal/solver"
)

// SolutionHinter solves the board, then prefers an explainable naked
// single over a bare "the solution says so" cell. Solving first keeps
// conflicted boards from producing a confident wrong hint. A board with
// no solution yields found=false, not an error.
type SolutionHinter struct {
	Solver ports.Solver
}

func New(s ports.Solver) *SolutionHinter { return &SolutionHinter{Solver: s} }

func (h *SolutionHinter) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	out, _, err := h.Solver.Solve(ctx, b)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) || errors.Is(err, solver.ErrConflict) {
			return domain.Hint{}, false, nil
		}
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := solver.CandidatesFor(&b.Values, r, c).Sole(); ok {
				return domain.Hint{
					Message:   fmt.Sprintf("Single: only %d fits here", v),
					Cell:      domain.CellCoord{Row: r, Col: c},
					Value:     v,
					Technique: domain.TechniqueSingle,
				}, true, nil
			}
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				v := out.Values[r][c]
				return domain.Hint{
					Message:   fmt.Sprintf("Try %d here", v),
					Cell:      domain.CellCoord{Row: r, Col: c},
					Value:     v,
					Technique: domain.TechniqueSearch,
				}, true, nil
			}
		}
	}
	// fully assigned board: nothing to hint
	return domain.Hint{}, false, nil
}
