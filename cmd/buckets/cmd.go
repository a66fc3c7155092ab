package buckets

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/operator-framework/nondet/pkg/solver"
)

func NewBucketsCommand() *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "buckets [size...]",
		Short: "Solves the die-hard water-jug puzzle",
		Long: `Solves the die-hard water-jug puzzle: using jugs of the given sizes
(default 3 and 5), measure out exactly the target amount (default 4).
Prints the shortest move sequence found.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := []int{3, 5}
			if len(args) > 0 {
				sizes = make([]int, len(args))
				for i, arg := range args {
					size, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("invalid jug size (%s): %w", arg, err)
					}
					sizes[i] = size
				}
			}
			return run(cmd.OutOrStdout(), target, sizes)
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 4, "target amount")
	return cmd
}

func run(w io.Writer, target int, sizes []int) error {
	for moves, err := range solver.Solve(context.Background(), DieHard(target, sizes...)) {
		if err != nil {
			return err
		}
		for _, move := range moves {
			fmt.Fprintln(w, move)
		}
		return nil
	}
	fmt.Fprintln(w, "no solution found")
	return nil
}
