// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

/* Solving techniques:
 *
 * CONNECTED COMPONENT FORCED EXPANSION (too big):
 * When a CC can only be expanded in one direction, because all the
 * other ones would make the CC too big.
 *  +---+---+---+---+---+
 *  | 2 | 2 |   | 2 | _ |
 *  +---+---+---+---+---+
 *
 * CONNECTED COMPONENT FORCED EXPANSION (too small):
 * When a CC must include a particular square, because otherwise there
 * would not be enough room to complete it.
 *  +---+---+
 *  | 2 | _ |
 *  +---+---+
 *
 * DROPPING IN A ONE:
 * When an empty square has no neighbouring empty squares and only a 1
 * will go into the square (or other CCs would be too big).
 *  +---+---+---+
 *  | 2 | 2 | _ |
 *  +---+---+---+
 *
 * No deduction here ever guesses: the solver stops when no rule fires,
 * and backtracking search is deliberately out of scope.
 */

type solver struct {
	p       GameParams
	board   Board
	pt      *partition
	marks   []bool
	stack   []int
	visited []int
	nempty  int
}

func newSolver(p GameParams, input Board) *solver {
	sz := p.CellCount()
	s := &solver{
		p:     p,
		board: input.Clone(),
		pt:    newPartition(sz),
		marks: make([]bool, sz),
	}
	for i := range s.board {
		if s.board[i] == Empty {
			s.nempty++
			continue
		}
		s.p.neighbors(i, func(idx int) bool {
			if s.board[i] == s.board[idx] {
				s.pt.merge(i, idx)
			}
			return true
		})
	}
	return s
}

// expand commits board[dst] = board[src] and folds dst into every
// adjacent region of that value, keeping union-find and rings in sync.
func (s *solver) expand(dst, src int) {
	s.board[dst] = s.board[src]
	s.p.neighbors(dst, func(idx int) bool {
		if s.board[idx] == s.board[dst] {
			s.pt.merge(dst, idx)
		}
		return true
	})
	s.nempty--
}

// potential measures the breathing room of the region at src: the
// number of cells reachable from src through cells valued like src or
// empty, with cell skip fenced off. If this comes out below the
// region's target value the region cannot be completed without skip.
func (s *solver) potential(src, skip int) int {
	v := s.board[src]
	visited := s.visited[:0]
	stack := s.stack[:0]

	s.marks[skip] = true
	visited = append(visited, skip)

	visit := func(i int) {
		if s.marks[i] || (s.board[i] != Empty && s.board[i] != v) {
			return
		}
		s.marks[i] = true
		visited = append(visited, i)
		stack = append(stack, i)
	}

	visit(src)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.p.neighbors(i, func(idx int) bool {
			visit(idx)
			return true
		})
	}

	for _, i := range visited {
		s.marks[i] = false
	}
	s.stack, s.visited = stack[:0], visited[:0]

	return len(visited) - 1
}

// expandSize returns the would-be size of a region of value v that
// absorbed the empty cell i: one for i itself plus the sizes of all
// distinct v-valued regions adjacent to i, each counted once however
// many sides it touches.
func (s *solver) expandSize(i int, v Cell) int {
	var (
		size  = 1
		hits  [4]int
		nhits int
	)
	s.p.neighbors(i, func(idx int) bool {
		if s.board[idx] != v {
			return true
		}
		root := s.pt.canonify(idx)
		for m := range nhits {
			if hits[m] == root {
				return true
			}
		}
		size += s.pt.size[root]
		hits[nhits] = root
		nhits++
		return true
	})
	return size
}

// solveEmptyCell applies the empty-cell rules to cell i: absorb i into
// a neighboring region that cannot be completed without it, or failing
// that, drop in a 1 when no other value could legally occupy i.
func (s *solver) solveEmptyCell(i int) bool {
	one := true
	expanded := false
	s.p.neighbors(i, func(idx int) bool {
		if s.board[idx] == Empty {
			one = false
			return true
		}
		if one && (s.board[idx] == 1 ||
			int(s.board[idx]) >= s.expandSize(i, s.board[idx])) {
			/* i could extend this region, or a 1 would clash with it */
			one = false
		}
		if s.potential(idx, i) >= int(s.board[idx]) {
			return true
		}
		s.expand(i, idx)
		expanded = true
		return false
	})
	if expanded {
		return true
	}
	if one {
		s.board[i] = 1
		s.nempty--
		return true
	}
	return false
}

// growRegion looks for the unique empty cell the region rooted at i
// can still legally expand into. Two candidates mean nothing is forced
// this pass.
func (s *solver) growRegion(i int) bool {
	var (
		target    = int(s.board[i])
		exp       = -1
		ambiguous = false
	)
	for j := range s.pt.component(i) {
		s.p.neighbors(j, func(idx int) bool {
			if s.board[idx] != Empty || idx == exp {
				return true
			}
			if s.expandSize(idx, s.board[i]) > target {
				return true
			}
			if exp != -1 {
				ambiguous = true
				return false
			}
			exp = idx
			return true
		})
		if ambiguous {
			return false
		}
	}
	if exp == -1 {
		return false
	}
	s.expand(exp, i)
	return true
}

// Solve applies forced deductions to a partially labelled board until
// a fixpoint. It returns the resulting board and whether every cell
// got labelled. No search is performed: a false result means the
// puzzle is not solvable by direct deduction, not that no solution
// exists.
func (p GameParams) Solve(input Board) (Board, bool) {
	s := newSolver(p, input)
	for learn := true; learn && s.nempty > 0; {
		learn = false
		for i := range s.board {
			if s.board[i] == Empty {
				if s.solveEmptyCell(i) {
					learn = true
				}
				continue
			}

			j := s.pt.canonify(i)
			if i != j {
				continue /* one visit per region */
			}
			if s.pt.size[j] == int(s.board[j]) {
				continue /* already complete */
			}
			if s.growRegion(i) {
				learn = true
			}
		}
	}
	return s.board, s.nempty == 0
}
