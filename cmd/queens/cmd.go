package queens

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/operator-framework/nondet/pkg/solver"
)

func NewQueensCommand() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Prints every way to place n queens on an n x n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), size)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 8, "board size")
	return cmd
}

func run(w io.Writer, size int) error {
	for board, err := range solver.Solve(context.Background(), Queens(size)) {
		if err != nil {
			return err
		}
		fmt.Fprintln(w, FormatBoard(board))
	}
	return nil
}
