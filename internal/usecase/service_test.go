package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/hint"
	"svw.info/gridsolver/internal/infrastructure/storage"
	"svw.info/gridsolver/internal/library"
	"svw.info/gridsolver/internal/solver"
	"svw.info/gridsolver/internal/validator"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	lib, err := library.New()
	if err != nil {
		t.Fatalf("library.New failed: %v", err)
	}
	s := solver.NewMRVSolver()
	return NewService(s, validator.New(), hint.New(s), lib, storage.NewFS(t.TempDir()))
}

func TestServiceSolveSample(t *testing.T) {
	uc := newTestService(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p, err := uc.Sample(ctx, "classic")
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	out, _, err := uc.Solve(ctx, &p.Board)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !out.Solved() {
		t.Fatal("solve left blanks")
	}
}

func TestServiceValidateMalformed(t *testing.T) {
	uc := newTestService(t)
	var b domain.Board
	b.Values[2][2] = 11
	_, _, err := uc.Validate(context.Background(), &b)
	if !errors.Is(err, domain.ErrCellRange) {
		t.Fatalf("want ErrCellRange, got %v", err)
	}
}

func TestServiceUnconfigured(t *testing.T) {
	var uc Service
	if _, _, err := uc.Solve(context.Background(), &domain.Board{}); err == nil {
		t.Fatal("expected error from unconfigured service")
	}
	if _, err := uc.List(context.Background()); err == nil {
		t.Fatal("expected error from unconfigured service")
	}
}
