// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import "math/rand/v2"

/*
 * Board generation works by repair rather than construction. Every
 * cell starts out as a singleton region; as long as two orthogonally
 * adjacent cells belong to distinct regions of equal size the board is
 * invalid, so one conflicting region is merged with a neighboring
 * third region when one exists (growing it past the tie), or with the
 * other conflicting region as a last resort. A merge that would push a
 * region past MaxCellValue scraps the attempt wholesale: the partition
 * is reset and the scan order reshuffled. When a full scan finds no
 * conflict, each cell is labelled with the size of its region.
 */

// findConflict scans cells in the given order for a pair of adjacent,
// distinct, equal-sized regions. It returns the first such pair (a, b)
// plus c, a third distinct region adjacent to the conflicting cell, or
// -1 values when the board is already valid (or no third region
// exists).
func (p GameParams) findConflict(pt *partition, order []int) (a, b, c int) {
	a, b, c = -1, -1, -1
	for _, i := range order {
		aa := pt.canonify(i)
		cc := -1
		p.neighbors(i, func(idx int) bool {
			bb := pt.canonify(idx)
			if aa == bb {
				return true
			}
			if pt.size[aa] == pt.size[bb] {
				if a == -1 {
					a, b = aa, bb
				}
			} else if cc == -1 {
				cc = bb
			}
			return true
		})
		if a != -1 {
			c = cc
			return a, b, c
		}
	}
	return a, b, c
}

// makeBoard returns a fully labelled valid board along with the number
// of attempts it took. It loops until success and so never fails,
// though it may restart many times.
func (p GameParams) makeBoard(r *rand.Rand) (Board, int) {
	var (
		sz      = p.CellCount()
		maxSize = p.MaxCellValue()
		pt      = newPartition(sz)
		order   = make([]int, sz)
	)
	for i := range order {
		order[i] = i
	}

	for attempt := 1; ; attempt++ {
		r.Shuffle(sz, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for {
			a, b, c := p.findConflict(pt, order)
			if a == -1 {
				board := make(Board, sz)
				for i := range board {
					board[i] = Cell(pt.count(i))
				}
				Log.Debug("generated board", "params", p.String(), "attempts", attempt)
				return board, attempt
			}
			if c == -1 {
				c = b /* no other escape: grow the pair into each other */
			}
			pt.merge(a, c)
			if pt.count(a) > maxSize {
				break /* repair impossible; make a new board */
			}
		}

		pt.reset()
	}
}
