package main

import (
	"errors"
	"fmt"
	"strings"
)

// parseGrid reads a 9-line text puzzle. Each line carries nine cells,
// either space-separated or contiguous; '.', '_', and '0' all mean
// blank. Blank lines are skipped; surplus rows or cells are an error,
// not silently dropped.
func parseGrid(text string) ([9][9]uint8, error) {
	var grid [9][9]uint8
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row == 9 {
			return grid, errors.New("more than 9 rows")
		}
		cellChars := strings.Join(strings.Fields(line), "")
		if len(cellChars) != 9 {
			return grid, fmt.Errorf("row %d: want 9 cells, got %d", row, len(cellChars))
		}
		for c := 0; c < 9; c++ {
			switch ch := cellChars[c]; {
			case ch == '.' || ch == '_' || ch == '0':
				grid[row][c] = 0
			case ch >= '1' && ch <= '9':
				grid[row][c] = ch - '0'
			default:
				return grid, fmt.Errorf("row %d col %d: bad cell %q", row, c, ch)
			}
		}
		row++
	}
	if row < 9 {
		return grid, fmt.Errorf("want 9 rows, got %d", row)
	}
	return grid, nil
}

// renderGrid draws the board with 3x3 box separators, blanks as dots.
func renderGrid(grid *[9][9]uint8) string {
	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("-", 21) + "+\n")
	for r := 0; r < 9; r++ {
		sb.WriteString("|")
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c > 0 {
				sb.WriteString(" |")
			}
			if v := grid[r][c]; v == 0 {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(&sb, " %d", v)
			}
		}
		sb.WriteString(" |\n")
		if (r+1)%3 == 0 && r < 8 {
			sb.WriteString("|" + strings.Repeat("-", 7) + "+" +
				strings.Repeat("-", 7) + "+" + strings.Repeat("-", 7) + "|\n")
		}
	}
	sb.WriteString("+" + strings.Repeat("-", 21) + "+")
	return sb.String()
}
