// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"bytes"
	"encoding/gob"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
)

var Log *slog.Logger = slog.Default()

type GameState struct {
	GameParams
	// Clues is the puzzle's canonical description. It is shared by
	// every snapshot of the same game and must never be written to
	// after the state is created.
	Clues Board
	// Board is this snapshot's fill-in, clues included.
	Board     Board
	Completed bool
	Cheated   bool
}

// NewGame generates a fresh puzzle for the given params.
func NewGame(params *GameParams, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newGameState(params, params.NewGameDesc(r))
}

// NewGameFromDesc builds a game from an existing description, which is
// validated first.
func NewGameFromDesc(params *GameParams, desc string) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := params.ValidateDesc(desc); err != nil {
		return nil, err
	}
	return newGameState(params, desc)
}

func newGameState(params *GameParams, desc string) (*GameState, error) {
	clues, err := params.parseDesc(desc)
	if err != nil {
		return nil, err
	}
	return &GameState{
		GameParams: *params,
		Clues:      clues,
		Board:      clues.Clone(),
	}, nil
}

// Clone makes an independent snapshot sharing the immutable clue set.
func (g GameState) Clone() *GameState {
	dup := g
	dup.Board = g.Board.Clone()
	return &dup
}

func ParseGameStateFromBytes(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g GameState) Desc() string {
	return g.Clues.Digits()
}

func (g GameState) Text() string {
	return g.Board.Text(g.Width)
}

/*
 * ApplyMove executes either a single-cell edit "<cell>_<value>" or a
 * full solution "s" followed by w*h digits. A malformed or illegal
 * move leaves the state untouched and returns an error.
 */
func (g *GameState) ApplyMove(move string) error {
	if rest, found := strings.CutPrefix(move, "s"); found {
		if err := g.ValidateDesc(rest); err != nil {
			return ErrBadSolution
		}
		for i := range g.Board {
			g.Board[i] = Cell(rest[i] - '0')
		}
		g.Cheated = true
		g.checkCompleted()
		return nil
	}

	cellStr, valueStr, found := strings.Cut(move, "_")
	if !found {
		return ErrBadMove
	}
	i, err := strconv.Atoi(cellStr)
	if err != nil {
		return ErrBadMove
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return ErrBadMove
	}
	if !g.ValidateCell(i) {
		return ErrMoveOutOfGrid
	}
	if value < 0 || value > g.MaxCellValue() {
		return ErrMoveBigValue
	}
	if g.Clues[i] != Empty {
		return ErrMoveOnClue
	}

	g.Board[i] = Cell(value)
	g.checkCompleted()
	return nil
}

// SolutionMove runs the solver on the clue board and encodes the
// outcome as an "s"-move, or reports that deduction got stuck.
func (g GameState) SolutionMove() (string, error) {
	board, ok := g.GameParams.Solve(g.Clues)
	if !ok {
		return "", ErrNoSolution
	}
	return "s" + board.Digits(), nil
}

// Solve fills in the board via the solver, marking the game cheated.
func (g *GameState) Solve() error {
	move, err := g.SolutionMove()
	if err != nil {
		return err
	}
	return g.ApplyMove(move)
}

// checkCompleted marks the game completed once every region's size
// matches its label. Completion is never unset afterwards.
func (g *GameState) checkCompleted() {
	if g.Completed {
		return
	}
	pt := g.makePartition(g.Board)
	for i := range g.Board {
		if g.Board[i] == Empty || int(g.Board[i]) != pt.count(i) {
			return
		}
	}
	g.Completed = true
}
