package hint

import (
	"context"
	"testing"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/solver"
)

var classic = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestHintNakedSingle(t *testing.T) {
	// (0,2) is the only blank in its row: a naked single worth 4.
	grid := [9][9]uint8{
		{5, 3, 0, 6, 7, 8, 9, 1, 2},
		{6, 0, 2, 1, 9, 5, 3, 4, 8},
	}
	h := New(solver.NewMRVSolver())
	hh, found, err := h.Hint(testCtx(t), &domain.Board{Values: grid})
	if err != nil || !found {
		t.Fatalf("Hint failed: found=%v err=%v", found, err)
	}
	if hh.Technique != domain.TechniqueSingle {
		t.Fatalf("technique = %v, want TechniqueSingle", hh.Technique)
	}
	if hh.Cell != (domain.CellCoord{Row: 0, Col: 2}) || hh.Value != 4 {
		t.Fatalf("hint = %+v, want 4 at r=0 c=2", hh)
	}
}

func TestHintFromSolution(t *testing.T) {
	h := New(solver.NewMRVSolver())
	b := &domain.Board{Values: classic}
	hh, found, err := h.Hint(testCtx(t), b)
	if err != nil || !found {
		t.Fatalf("Hint failed: found=%v err=%v", found, err)
	}
	if b.Values[hh.Cell.Row][hh.Cell.Col] != 0 {
		t.Fatalf("hint targets a given at r=%d c=%d", hh.Cell.Row, hh.Cell.Col)
	}
	if hh.Value < 1 || hh.Value > 9 {
		t.Fatalf("hint value %d out of range", hh.Value)
	}
	// Applying the hint must leave the puzzle solvable.
	applied := *b
	applied.Values[hh.Cell.Row][hh.Cell.Col] = hh.Value
	if _, _, err := solver.NewMRVSolver().Solve(testCtx(t), &applied); err != nil {
		t.Fatalf("board unsolvable after applying hint: %v", err)
	}
}

func TestHintSearchFallback(t *testing.T) {
	// No cell of the empty board has a sole candidate, so the hint must
	// come from the solved grid.
	h := New(solver.NewMRVSolver())
	hh, found, err := h.Hint(testCtx(t), &domain.Board{})
	if err != nil || !found {
		t.Fatalf("Hint failed: found=%v err=%v", found, err)
	}
	if hh.Technique != domain.TechniqueSearch {
		t.Fatalf("technique = %v, want TechniqueSearch", hh.Technique)
	}
	if hh.Cell != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("cell = %+v, want the first blank", hh.Cell)
	}
	if hh.Value < 1 || hh.Value > 9 {
		t.Fatalf("hint value %d out of range", hh.Value)
	}
}

func TestHintUnsolvableBoard(t *testing.T) {
	grid := classic
	grid[0][2] = 5 // conflicts with the 5 at (0,0)
	h := New(solver.NewMRVSolver())
	_, found, err := h.Hint(testCtx(t), &domain.Board{Values: grid})
	if err != nil {
		t.Fatalf("Hint errored: %v", err)
	}
	if found {
		t.Fatal("hint offered for a conflicted board")
	}
}

func TestHintCompleteBoard(t *testing.T) {
	h := New(solver.NewMRVSolver())
	full, _, err := solver.NewMRVSolver().Solve(testCtx(t), &domain.Board{Values: classic})
	if err != nil {
		t.Fatalf("setup solve failed: %v", err)
	}
	_, found, err := h.Hint(testCtx(t), full)
	if err != nil {
		t.Fatalf("Hint errored: %v", err)
	}
	if found {
		t.Fatal("hint offered for a complete board")
	}
}
