package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/gridsolver/internal/domain"
	"svw.info/gridsolver/internal/hint"
	"svw.info/gridsolver/internal/library"
	"svw.info/gridsolver/internal/ports"
	"svw.info/gridsolver/internal/solver"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridsolver",
		Short:         "9x9 Sudoku solving engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), solveCmd(), hintCmd(), samplesCmd())
	return root
}

// newSolver maps the --solver flag to a backend.
func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "sat":
		return solver.NewSATSolver()
	default:
		return solver.NewMRVSolver()
	}
}

// loadBoard resolves the puzzle argument: a sample id when --sample is
// set, otherwise a file path ("-" for stdin).
func loadBoard(sample, path string) (*domain.Board, error) {
	if sample != "" {
		lib, err := library.New()
		if err != nil {
			return nil, err
		}
		p, err := lib.Sample(context.Background(), sample)
		if err != nil {
			return nil, err
		}
		b := p.Board
		return &b, nil
	}
	if path == "" {
		return nil, errors.New("need a puzzle file or --sample id")
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	grid, err := parseGrid(string(data))
	if err != nil {
		return nil, err
	}
	return &domain.Board{Values: grid}, nil
}

func solveCmd() *cobra.Command {
	var (
		sample      string
		solverKind  string
		timeout     time.Duration
		checkUnique bool
		prof        bool
	)
	cmd := &cobra.Command{
		Use:   "solve [puzzle-file]",
		Short: "Solve a puzzle and print the completed board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prof {
				defer profile.Start().Stop()
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			b, err := loadBoard(sample, path)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			s := newSolver(solverKind)
			out, st, err := s.Solve(ctx, b)
			switch {
			case errors.Is(err, solver.ErrConflict), errors.Is(err, solver.ErrUnsolvable):
				fmt.Println("No solution")
				return nil
			case err != nil:
				return err
			}
			fmt.Println(renderGrid(&out.Values))
			fmt.Printf("solved in %v, %d nodes\n", st.Duration.Round(time.Microsecond), st.Nodes)
			if checkUnique {
				unique, _, err := s.Unique(ctx, b)
				if err != nil {
					return err
				}
				fmt.Printf("unique solution: %v\n", unique)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sample, "sample", "", "solve a built-in sample instead of a file")
	cmd.Flags().StringVar(&solverKind, "solver", "mrv", "solver to use: mrv|sat")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	cmd.Flags().BoolVar(&checkUnique, "check-unique", false, "also report whether the solution is unique")
	cmd.Flags().BoolVar(&prof, "profile", false, "write a CPU profile")
	return cmd
}

func hintCmd() *cobra.Command {
	var sample string
	cmd := &cobra.Command{
		Use:   "hint [puzzle-file]",
		Short: "Suggest one correct cell for a puzzle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			b, err := loadBoard(sample, path)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			h := hint.New(solver.NewMRVSolver())
			hh, found, err := h.Hint(ctx, b)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case found:
				fmt.Fprintf(out, "row %d, col %d: %s\n", hh.Cell.Row+1, hh.Cell.Col+1, hh.Message)
			case b.Solved():
				fmt.Fprintln(out, "Board is already complete")
			default:
				fmt.Fprintln(out, "No hint: puzzle has no solution")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sample, "sample", "", "hint a built-in sample instead of a file")
	return cmd
}

func samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.New()
			if err != nil {
				return err
			}
			ms, err := lib.Samples(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range ms {
				fmt.Printf("%-14s %-8s %s\n", m.ID, m.Difficulty, m.Name)
			}
			return nil
		},
	}
}
