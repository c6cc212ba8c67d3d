package filling

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* Puzzle instance taken from the nikoli website. */
const (
	nikoli7x7       = "6002002030603030000010230420200000305010404003003"
	nikoli7x7Solved = "6662232336663232331311235422255544325413434443313"
)

func TestSolveNikoli7x7(t *testing.T) {
	p := GameParams{Width: 7, Height: 7}
	board, err := p.parseDesc(nikoli7x7)
	require.NoError(t, err)

	solved, ok := p.Solve(board)
	require.True(t, ok, "solver got stuck:\n%s", solved.Text(7))
	assert.Equal(t, nikoli7x7Solved, solved.Digits())
}

func TestSolveLeavesInputAlone(t *testing.T) {
	p := GameParams{Width: 7, Height: 7}
	board, err := p.parseDesc(nikoli7x7)
	require.NoError(t, err)
	before := board.Clone()
	p.Solve(board)
	assert.Equal(t, before, board)
}

func TestSolveDeterministic(t *testing.T) {
	p := GameParams{Width: 7, Height: 7}
	board, err := p.parseDesc(nikoli7x7)
	require.NoError(t, err)

	first, ok1 := p.Solve(board)
	second, ok2 := p.Solve(board)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestSolveTrivial(t *testing.T) {
	/* an empty 1x1 grid has exactly one way to be filled */
	p := GameParams{Width: 1, Height: 1}
	solved, ok := p.Solve(Board{Empty})
	require.True(t, ok)
	assert.Equal(t, Board{1}, solved)

	/* an already complete board just comes back unchanged */
	p = GameParams{Width: 3, Height: 1}
	solved, ok = p.Solve(Board{2, 2, 1})
	require.True(t, ok)
	assert.Equal(t, Board{2, 2, 1}, solved)
}

func TestSolveForcedExpansions(t *testing.T) {
	/* too big: the left 2-domino blocks one side, so the right 2 can
	 * only grow rightwards */
	p := GameParams{Width: 5, Height: 1}
	solved, ok := p.Solve(Board{2, 2, Empty, 2, Empty})
	require.True(t, ok)
	assert.Equal(t, Board{2, 2, 1, 2, 2}, solved)

	/* too small: a 2 with a single empty neighbor must take it */
	p = GameParams{Width: 2, Height: 1}
	solved, ok = p.Solve(Board{2, Empty})
	require.True(t, ok)
	assert.Equal(t, Board{2, 2}, solved)
}

func TestSolveUnsolvableByDeduction(t *testing.T) {
	/* a blank 3x3 admits many fillings; nothing is forced */
	p := GameParams{Width: 3, Height: 3}
	_, ok := p.Solve(make(Board, 9))
	assert.False(t, ok)

	/* a blank 2x2 is a tromino plus a singleton in any of four
	 * orientations, so no deduction fires either */
	p = GameParams{Width: 2, Height: 2}
	_, ok = p.Solve(make(Board, 4))
	assert.False(t, ok)
}

func TestSolveRecoversGeneratedBoards(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(3, 4))
	for _, p := range []GameParams{{4, 4}, {5, 5}, {7, 7}, {9, 6}} {
		desc := p.NewGameDesc(r)
		clues, err := p.parseDesc(desc)
		require.NoError(t, err)

		solved, ok := p.Solve(clues)
		require.True(t, ok, "clue set %s not solvable", desc)
		requireValidBoard(t, p, solved)
		for i := range clues {
			if clues[i] != Empty {
				assert.Equal(t, clues[i], solved[i], "clue %d changed", i)
			}
		}
	}
}
