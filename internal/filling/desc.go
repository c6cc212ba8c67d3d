// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

var (
	ErrDescNonDigit  = fmt.Errorf("non-digit in string")
	ErrDescBigDigit  = fmt.Errorf("too large digit in string")
	ErrDescTooLong   = fmt.Errorf("string too long")
	ErrDescTooShort  = fmt.Errorf("string too short")
	ErrNoSolution    = fmt.Errorf("no solution found")
	ErrBadSolution   = fmt.Errorf("malformed solution string")
	ErrBadMove       = fmt.Errorf("move must look like <cell>_<value>")
	ErrMoveOutOfGrid = fmt.Errorf("cell index outside the grid")
	ErrMoveBigValue  = fmt.Errorf("value exceeds the maximum for this grid")
	ErrMoveOnClue    = fmt.Errorf("cannot change a clue cell")
)

// ValidateDesc checks that desc is a legal game description for these
// params: exactly w*h digit characters, none exceeding MaxCellValue.
func (p GameParams) ValidateDesc(desc string) error {
	var (
		sz = p.CellCount()
		m  = byte('0' + p.MaxCellValue())
	)
	for i := 0; i < len(desc) && i < sz; i++ {
		if desc[i] < '0' || desc[i] > '9' {
			return ErrDescNonDigit
		}
		if desc[i] > m {
			return ErrDescBigDigit
		}
	}
	if len(desc) > sz {
		return ErrDescTooLong
	}
	if len(desc) < sz {
		return ErrDescTooShort
	}
	return nil
}

func (p GameParams) parseDesc(desc string) (Board, error) {
	if err := p.ValidateDesc(desc); err != nil {
		return nil, err
	}
	board := make(Board, len(desc))
	for i := range desc {
		board[i] = Cell(desc[i] - '0')
	}
	return board, nil
}

/*
 * NewGameDesc builds a puzzle: generate a full board, then greedily
 * blank clues while the solver can still recover the board from what
 * remains. Cells are attempted largest-region-first; large regions are
 * the easiest for the solver to rederive from their surroundings, so
 * trying them first maximises the number of blanked cells before only
 * the hard-to-infer small regions are left. Clues only ever help the
 * solver, so a single pass suffices: a cell removable under some clue
 * set is removable under any superset of it. (Inherited assumption,
 * asserted but not proven for this rule set.)
 */
func (p GameParams) NewGameDesc(r *rand.Rand) string {
	board, _ := p.makeBoard(r)
	pt := p.makePartition(board)

	order := make([]int, p.CellCount())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return pt.count(b) - pt.count(a)
	})

	clues := board.Clone()
	for _, i := range order {
		clues[i] = Empty
		if _, ok := p.Solve(clues); !ok {
			clues[i] = board[i]
		}
	}

	return clues.Digits()
}
