package dimacs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/operator-framework/nondet/pkg/solver"
)

func NewDimacsCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "dimacs <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every satisfying assignment instead of the first")
	return cmd
}

func run(w io.Writer, path string, all bool) error {
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	d, err := NewDimacs(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	found := false
	for assignment, err := range solver.Solve(context.Background(), Satisfy(d)) {
		if err != nil {
			return err
		}
		found = true
		fmt.Fprintln(w, "solution found:")
		for i, value := range assignment {
			fmt.Fprintf(w, "%d = %t\n", i+1, value)
		}
		if !all {
			break
		}
	}
	if !found {
		fmt.Fprintln(w, "no solution found")
	}
	return nil
}
