package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/filling-server/internal/filling"
)

func newTestGame(t *testing.T) *filling.GameState {
	t.Helper()
	game, err := filling.NewGameFromDesc(
		&filling.GameParams{Width: 2, Height: 2}, "3001",
	)
	require.NoError(t, err)
	return game
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		command string
		wantErr bool
	}{
		{"g", false},
		{"m 1 3", false},
		{"s", false},
		{"", true},
		{"x", true},
		{"m", true},
		{"m 1", true},
		{"m 1 2 3", true},
		{"m a 2", true},
		{"m 1 b", true},
		{"g 1", true},
		{"s now", true},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			err := parseCommand(newTestGame(t), tt.command)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseCommandMark(t *testing.T) {
	game := newTestGame(t)
	require.NoError(t, parseCommand(game, "m 1 3"))
	assert.Equal(t, filling.Cell(3), game.Board[1])
}

func TestParseCommandSolve(t *testing.T) {
	game := newTestGame(t)
	require.NoError(t, parseCommand(game, "s"))
	assert.True(t, game.Completed)
	assert.True(t, game.Cheated)
}

func TestParseCommandBadMoveLeavesBoard(t *testing.T) {
	game := newTestGame(t)
	before := game.Board.Digits()
	assert.Error(t, parseCommand(game, "m 0 2"))
	assert.Equal(t, before, game.Board.Digits())
}
