package domain

import "errors"

// Board holds current values and which cells are fixed givens.
// Values is a plain value-type array: assigning a Board (or its Values)
// copies the whole grid, which is what the solver relies on when it
// branches — sibling search branches never share cell storage.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// ErrCellRange reports a cell value outside [0,9].
var ErrCellRange = errors.New("cell value out of range [0,9]")

// Check verifies that every cell holds a value in [0,9]. The grid shape
// is fixed by the array type, so this is the whole malformed-input gate.
func (b *Board) Check() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return ErrCellRange
			}
		}
	}
	return nil
}

// Solved reports whether no cell is left unassigned.
func (b *Board) Solved() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is a single cell/value suggestion for the UI.
type Hint struct {
	Message   string    `json:"message,omitempty"`
	Cell      CellCoord `json:"cell"`
	Value     uint8     `json:"value"`
	Technique Technique `json:"technique"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}
