package solver

import (
	"errors"
	"testing"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/validator"
)

func TestSATSolveClassic(t *testing.T) {
	s := NewSATSolver()
	out, _, err := s.Solve(testCtx(t), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values != sampleSolution {
		t.Fatalf("wrong solution:\n%v\nwant:\n%v", out.Values, sampleSolution)
	}
}

func TestSATSolveEmptyGrid(t *testing.T) {
	s := NewSATSolver()
	out, _, err := s.Solve(testCtx(t), &domain.Board{})
	if err != nil {
		t.Fatalf("Solve failed on empty grid: %v", err)
	}
	if !out.Solved() {
		t.Fatal("empty grid solve left blanks")
	}
	ok, conf, err := validator.New().Validate(testCtx(t), out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
}

func TestSATSolveUnsolvable(t *testing.T) {
	s := NewSATSolver()
	_, _, err := s.Solve(testCtx(t), &domain.Board{Values: unsolvableGrid})
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSATSolveConflictingGivens(t *testing.T) {
	grid := sample
	grid[0][2] = 5
	s := NewSATSolver()
	_, _, err := s.Solve(testCtx(t), &domain.Board{Values: grid})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestSATUnique(t *testing.T) {
	s := NewSATSolver()
	unique, _, err := s.Unique(testCtx(t), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !unique {
		t.Fatal("classic puzzle reported as not unique")
	}
	unique, _, err = s.Unique(testCtx(t), &domain.Board{})
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if unique {
		t.Fatal("empty grid reported as unique")
	}
}
