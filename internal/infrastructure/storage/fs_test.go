package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"svw.info/gridsolver/internal/domain"
)

func testPuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{ID: id, Name: "test " + id, Difficulty: d, CreatedAt: 42}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	return p
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	in := testPuzzle("p1", domain.Hard)
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := s.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.ID != in.ID || out.Difficulty != in.Difficulty || out.Board.Values != in.Board.Values {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", out, in)
	}
	if !out.Board.Fixed[0][0] {
		t.Fatal("fixed mask lost in roundtrip")
	}
}

func TestSaveUsesDifficultyDir(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	if err := s.Save(context.Background(), testPuzzle("p2", domain.Expert)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "expert", "p2.json")); err != nil {
		t.Fatalf("expected file under expert/: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for puzzle without ID")
	}
}

func TestListAcrossTiers(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	for i, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Expert} {
		if err := s.Save(ctx, testPuzzle(string(rune('a'+i)), d)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	ms, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ms) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(ms))
	}
	seen := map[domain.Difficulty]bool{}
	for _, m := range ms {
		seen[m.Difficulty] = true
		if m.CreatedAt != 42 {
			t.Fatalf("metadata lost for %s", m.ID)
		}
	}
	if !seen[domain.Easy] || !seen[domain.Medium] || !seen[domain.Expert] {
		t.Fatalf("difficulties missing from listing: %v", ms)
	}
}
