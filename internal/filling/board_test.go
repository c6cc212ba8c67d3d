package filling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardText(t *testing.T) {
	board := Board{2, Empty, 1, 3}
	want := "" +
		"+---+---+\n" +
		"| 2 |   |\n" +
		"+---+---+\n" +
		"| 1 | 3 |\n" +
		"+---+---+\n"
	assert.Equal(t, want, board.Text(2))
}

func TestBoardDigits(t *testing.T) {
	assert.Equal(t, "2013", Board{2, Empty, 1, 3}.Digits())
	assert.Equal(t, "", Board{}.Digits())
}

func TestBoardClone(t *testing.T) {
	board := Board{1, 2, 3}
	dup := board.Clone()
	dup[0] = 9
	assert.Equal(t, Cell(1), board[0])
}
