package queens

import (
	"strings"

	"github.com/operator-framework/nondet/pkg/nondet"
)

// Queens returns a computation placing n queens on an n by n board, one
// row at a time. The result holds the chosen column per row. Branches
// placing a queen under attack are pruned.
func Queens(n int) nondet.Computation[[]int] {
	return func(ctx nondet.Context) ([]int, error) {
		board := make([]int, 0, n)
		for row := 0; row < n; row++ {
			col := ctx.ChooseIndex(n)
			if attacked(board, row, col) {
				ctx.Prune()
			}
			board = append(board, col)
		}
		return board, nil
	}
}

func attacked(board []int, row, col int) bool {
	for prevRow, prevCol := range board {
		if prevCol == col ||
			prevCol+prevRow == col+row ||
			prevCol-prevRow == col-row {
			return true
		}
	}
	return false
}

// FormatBoard renders a solution, one row per line, queens as 'Q'.
func FormatBoard(board []int) string {
	var sb strings.Builder
	n := len(board)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if board[row] == col {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
