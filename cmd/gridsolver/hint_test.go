package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

func writePuzzle(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write puzzle: %v", err)
	}
	return path
}

func TestHintCommandNakedSingle(t *testing.T) {
	// A solved board with one blank: (0,2) can only take 4, and the
	// command must say so rather than just name a cell.
	path := writePuzzle(t, `53.678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`)
	out := runCmd(t, "hint", path)
	if !strings.Contains(out, "Single: only 4 fits here") {
		t.Fatalf("output %q lacks the naked-single message", out)
	}
	if !strings.Contains(out, "row 1, col 3") {
		t.Fatalf("output %q points at the wrong cell", out)
	}
}

func TestHintCommandUnsolvable(t *testing.T) {
	path := writePuzzle(t, `535.7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`)
	out := runCmd(t, "hint", path)
	if !strings.Contains(out, "No hint") {
		t.Fatalf("conflicted board got a hint: %q", out)
	}
}
