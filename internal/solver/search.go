package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/ports"
)

// ErrUnsolvable means the search exhausted every branch.
var ErrUnsolvable = errors.New("puzzle has no solution")

// ErrConflict means the givens already duplicate a value in some row,
// column, or box, so no search was attempted.
var ErrConflict = errors.New("puzzle givens conflict")

// MRVSolver combines constraint propagation with minimum-remaining-values
// backtracking. Each branch explores a private copy of the grid (arrays
// copy on assignment), so failed branches never leak assignments into
// their siblings. Recursion depth is bounded by the number of empty
// cells, at most 81.
type MRVSolver struct {
	// Progress, when set, is called with the running node count every
	// ProgressEvery nodes. Used by the live websocket channel.
	Progress      func(nodes int)
	ProgressEvery int
}

func NewMRVSolver() *MRVSolver { return &MRVSolver{} }

func (s *MRVSolver) tick(nodes int) {
	if s.Progress != nil && s.ProgressEvery > 0 && nodes%s.ProgressEvery == 0 {
		s.Progress(nodes)
	}
}

// Solve returns a completed board, or ErrConflict / ErrUnsolvable. The
// input board is never modified; the result keeps its Fixed mask. A
// canceled context surfaces as the context's error, which callers must
// treat as "no answer within budget", not as proven unsolvable.
func (s *MRVSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := b.Check(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := b.Values
	if hasConflict(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrConflict
	}
	nodes := 0
	out, found := s.search(ctx, grid, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !found {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return &domain.Board{Values: out, Fixed: b.Fixed}, st, nil
}

// search is one propagate → select → branch step. The grid parameter is
// a value, so each recursive call owns its copy.
func (s *MRVSolver) search(ctx context.Context, grid [9][9]uint8, nodes *int) ([9][9]uint8, bool) {
	if ctx.Err() != nil {
		return grid, false
	}
	p, ok := propagate(grid)
	if !ok {
		return grid, false
	}
	if solved(&p) {
		return p, true
	}
	r, c, cands, st := chooseMRV(&p)
	if st != pickFound {
		// pickNone is unreachable: the solved check above already
		// handled the full grid. pickDead is a dead branch either way.
		return grid, false
	}
	for _, v := range cands.Values() {
		*nodes++
		s.tick(*nodes)
		next := p
		next[r][c] = v
		if out, ok := s.search(ctx, next, nodes); ok {
			return out, true
		}
	}
	return grid, false
}

// Unique counts completions up to 2 and reports whether exactly one
// exists. Malformed input is an error; a conflicted or unsolvable board
// is simply not unique.
func (s *MRVSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := b.Check(); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := b.Values
	if hasConflict(&grid) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	nodes := 0
	count := 0
	var dfs func(g [9][9]uint8) bool
	dfs = func(g [9][9]uint8) bool {
		if ctx.Err() != nil {
			return true
		}
		p, ok := propagate(g)
		if !ok {
			return false
		}
		if solved(&p) {
			count++
			return count >= 2
		}
		r, c, cands, st := chooseMRV(&p)
		if st != pickFound {
			return false
		}
		for _, v := range cands.Values() {
			nodes++
			next := p
			next[r][c] = v
			if dfs(next) {
				return true
			}
		}
		return false
	}
	_ = dfs(grid)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
