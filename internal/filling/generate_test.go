package filling

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireValidBoard checks the generator's contract: every cell is
// labelled with the size of its region, no region exceeds the size
// bound, and no two adjacent distinct regions share a size.
func requireValidBoard(t *testing.T, p GameParams, board Board) {
	t.Helper()
	require.Len(t, board, p.CellCount())

	pt := p.makePartition(board)
	for i := range board {
		require.GreaterOrEqual(t, int(board[i]), 1, "cell %d unlabelled", i)
		require.LessOrEqual(t, int(board[i]), p.MaxCellValue(), "cell %d over bound", i)
		// a mislabelled or split region shows up as count != value,
		// since makePartition merges any equal-valued neighbors
		require.Equal(t, int(board[i]), pt.count(i), "cell %d label vs region size", i)
	}
	for i := range board {
		p.neighbors(i, func(idx int) bool {
			if pt.canonify(i) != pt.canonify(idx) {
				require.NotEqual(t, board[i], board[idx],
					"adjacent regions at %d and %d share size %d", i, idx, board[i])
			}
			return true
		})
	}
}

func TestMakeBoard(t *testing.T) {
	t.Parallel()
	for w := 1; w <= 9; w++ {
		for h := 1; h <= 9; h++ {
			p := GameParams{Width: w, Height: h}
			t.Run(p.String(), func(t *testing.T) {
				r := rand.New(rand.NewPCG(uint64(w), uint64(h)))
				for range 10 {
					board, attempts := p.makeBoard(r)
					requireValidBoard(t, p, board)
					// generation restarts wholesale when a repair merge
					// blows the size cap; in practice a handful of
					// attempts suffice on small grids
					require.LessOrEqual(t, attempts, 500)
				}
			})
		}
	}
}

func TestMakeBoardDegenerate(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	board, _ := GameParams{Width: 1, Height: 1}.makeBoard(r)
	require.Equal(t, Board{1}, board)

	/* the only valid 2x2 partition is a tromino plus a singleton */
	p := GameParams{Width: 2, Height: 2}
	for range 20 {
		board, _ := p.makeBoard(r)
		threes, ones := 0, 0
		for _, c := range board {
			switch c {
			case 3:
				threes++
			case 1:
				ones++
			}
		}
		require.Equal(t, 3, threes, "board %v", board)
		require.Equal(t, 1, ones, "board %v", board)
	}
}

func TestMakeBoardReproducible(t *testing.T) {
	p := GameParams{Width: 6, Height: 6}
	a, _ := p.makeBoard(rand.New(rand.NewPCG(7, 42)))
	b, _ := p.makeBoard(rand.New(rand.NewPCG(7, 42)))
	require.Equal(t, a, b)
}

func TestMakeBoardLarge(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	t.Parallel()
	for _, s := range []int{11, 13, 15} {
		p := GameParams{Width: s, Height: s}
		t.Run(fmt.Sprintf("%dx%d", s, s), func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(uint64(s), 3))
			board, _ := p.makeBoard(r)
			requireValidBoard(t, p, board)
		})
	}
}
