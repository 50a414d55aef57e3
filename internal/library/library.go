// Package library ships the built-in sample puzzles. The solver core
// only ever sees the 9x9 grid; the JSON layout here matches the storage
// format so saved and sample puzzles are interchangeable.
package library

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"svw.info/gridsolver/internal/domain"
)

//go:embed samples/*.json
var samplesFS embed.FS

// ErrNotFound reports an unknown sample id.
var ErrNotFound = errors.New("sample puzzle not found")

// Embedded serves samples parsed once at construction.
type Embedded struct {
	byID  map[string]*domain.Puzzle
	metas []domain.PuzzleMeta
}

func New() (*Embedded, error) {
	ents, err := samplesFS.ReadDir("samples")
	if err != nil {
		return nil, err
	}
	lib := &Embedded{byID: make(map[string]*domain.Puzzle, len(ents))}
	for _, e := range ents {
		data, err := samplesFS.ReadFile("samples/" + e.Name())
		if err != nil {
			return nil, err
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("sample %s: %w", e.Name(), err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("sample %s: missing id", e.Name())
		}
		// Sample grids are givens by definition.
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				p.Board.Fixed[r][c] = p.Board.Values[r][c] != 0
			}
		}
		lib.byID[p.ID] = &p
		lib.metas = append(lib.metas, domain.PuzzleMeta{
			ID:         p.ID,
			Name:       p.Name,
			Difficulty: p.Difficulty,
		})
	}
	sort.Slice(lib.metas, func(i, j int) bool {
		if lib.metas[i].Difficulty != lib.metas[j].Difficulty {
			return lib.metas[i].Difficulty < lib.metas[j].Difficulty
		}
		return lib.metas[i].ID < lib.metas[j].ID
	})
	return lib, nil
}

func (l *Embedded) Samples(ctx context.Context) ([]domain.PuzzleMeta, error) {
	out := make([]domain.PuzzleMeta, len(l.metas))
	copy(out, l.metas)
	return out, nil
}

func (l *Embedded) Sample(ctx context.Context, id string) (*domain.Puzzle, error) {
	p, ok := l.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}
