// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import "strings"

// Empty marks a cell whose region size is not (yet) known.
const Empty Cell = 0

// Cell holds 0 (empty) or the size, 1..9, of the region the cell
// belongs to.
type Cell int8

type Board []Cell

func (b Board) Clone() Board {
	dup := make(Board, len(b))
	copy(dup, b)
	return dup
}

// Digits renders the board as w*h ASCII digits in row-major order,
// '0' for empty cells. This is the game description format.
func (b Board) Digits() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteByte('0' + byte(c))
	}
	return sb.String()
}

/* Example of plaintext rendering:
 *  +---+---+---+---+---+---+---+
 *  | 6 |   |   | 2 |   |   | 2 |
 *  +---+---+---+---+---+---+---+
 *  |   | 3 |   | 6 |   | 3 |   |
 *  +---+---+---+---+---+---+---+
 *  | 3 |   |   |   |   |   | 1 |
 *  +---+---+---+---+---+---+---+
 *  |   | 2 | 3 |   | 4 | 2 |   |
 *  +---+---+---+---+---+---+---+
 *  | 2 |   |   |   |   |   | 3 |
 *  +---+---+---+---+---+---+---+
 *  |   | 5 |   | 1 |   | 4 |   |
 *  +---+---+---+---+---+---+---+
 *  | 4 |   |   | 3 |   |   | 3 |
 *  +---+---+---+---+---+---+---+
 */
func (b Board) Text(width int) string {
	fence := strings.Repeat("+---", width) + "+\n"
	var sb strings.Builder
	sb.WriteString(fence)
	for y := 0; y*width < len(b); y++ {
		for x := range width {
			sb.WriteString("| ")
			if c := b[y*width+x]; c == Empty {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('0' + byte(c))
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		sb.WriteString(fence)
	}
	return sb.String()
}

// makePartition builds the partition of equal-valued orthogonally
// adjacent cells of a board (empty cells included, as their own runs).
func (p GameParams) makePartition(board Board) *partition {
	pt := newPartition(p.CellCount())
	for i := range board {
		p.neighbors(i, func(idx int) bool {
			if board[i] == board[idx] {
				pt.merge(i, idx)
			}
			return true
		})
	}
	return pt
}
