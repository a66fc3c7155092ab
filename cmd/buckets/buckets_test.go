package buckets

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/nondet/pkg/solver"
)

func TestDieHardKnownSolution(t *testing.T) {
	want := []string{
		"fill 5",
		"pour 3 from 5 to 3",
		"empty 3",
		"pour 2 from 5 to 3",
		"fill 5",
		"pour 1 from 5 to 3",
		"done 5 == 4",
	}

	found := false
	seen := 0
	for moves, err := range solver.Solve(context.Background(), DieHard(4, 3, 5)) {
		require.NoError(t, err)
		if reflect.DeepEqual(moves, want) {
			found = true
			break
		}
		seen++
		require.Less(t, seen, 10000, "known solution not found in a reasonable prefix")
	}
	assert.True(t, found)
}

func TestDieHardFirstSolutionReachesTarget(t *testing.T) {
	for moves, err := range solver.Solve(context.Background(), DieHard(4, 3, 5)) {
		require.NoError(t, err)
		require.NotEmpty(t, moves)
		assert.Equal(t, "done 5 == 4", moves[len(moves)-1])
		return
	}
	t.Fatal("no solution yielded")
}

func TestDieHardUnreachableTarget(t *testing.T) {
	// jugs of 2 and 4 can only measure even amounts
	for moves, err := range solver.Solve(context.Background(), DieHard(3, 2, 4)) {
		require.NoError(t, err)
		t.Fatalf("unexpected solution: %v", moves)
	}
}

func TestRunPrintsMoves(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, 4, []int{3, 5}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "done 5 == 4", lines[len(lines)-1])
}
