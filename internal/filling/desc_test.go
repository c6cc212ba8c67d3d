package filling

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDesc(t *testing.T) {
	p := GameParams{Width: 5, Height: 5}
	tests := []struct {
		name string
		desc string
		want error
	}{
		{"valid", strings.Repeat("0", 24) + "5", nil},
		{"all empty", strings.Repeat("0", 25), nil},
		{"non-digit", strings.Repeat("0", 24) + "x", ErrDescNonDigit},
		{"digit over bound", strings.Repeat("0", 24) + "6", ErrDescBigDigit},
		{"too short", strings.Repeat("0", 24), ErrDescTooShort},
		{"too long", strings.Repeat("0", 26), ErrDescTooLong},
		{"empty string", "", ErrDescTooShort},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := p.ValidateDesc(test.desc)
			if test.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.want)
			}
		})
	}
}

func TestValidateDescGridBound(t *testing.T) {
	/* the same digit can be legal or not depending on the grid */
	assert.NoError(t, GameParams{Width: 7, Height: 7}.ValidateDesc(nikoli7x7))
	assert.ErrorIs(t,
		GameParams{Width: 2, Height: 2}.ValidateDesc("4000"),
		ErrDescBigDigit,
	)
	assert.NoError(t, GameParams{Width: 2, Height: 2}.ValidateDesc("3000"))
}

func TestDescRoundTrip(t *testing.T) {
	p := GameParams{Width: 7, Height: 7}
	board, err := p.parseDesc(nikoli7x7)
	require.NoError(t, err)
	assert.Equal(t, nikoli7x7, board.Digits())
}

func TestNewGameDesc(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(5, 6))
	for _, p := range []GameParams{{1, 1}, {2, 2}, {3, 3}, {5, 5}, {7, 4}} {
		t.Run(p.String(), func(t *testing.T) {
			desc := p.NewGameDesc(r)
			require.NoError(t, p.ValidateDesc(desc))

			/* minimality of the greedy pass: no remaining clue can be
			 * dropped without losing solvability */
			clues, err := p.parseDesc(desc)
			require.NoError(t, err)
			for i := range clues {
				if clues[i] == Empty {
					continue
				}
				saved := clues[i]
				clues[i] = Empty
				_, ok := p.Solve(clues)
				clues[i] = saved
				assert.False(t, ok, "clue %d is redundant in %s", i, desc)
			}
		})
	}
}

func TestNewGameDescOneByOne(t *testing.T) {
	/* the single cell of a 1x1 board is rederivable, so its clue
	 * always gets blanked */
	r := rand.New(rand.NewPCG(9, 9))
	p := GameParams{Width: 1, Height: 1}
	assert.Equal(t, "0", p.NewGameDesc(r))
}

func TestNewGameDescReproducible(t *testing.T) {
	p := GameParams{Width: 6, Height: 6}
	a := p.NewGameDesc(rand.New(rand.NewPCG(11, 12)))
	b := p.NewGameDesc(rand.New(rand.NewPCG(11, 12)))
	assert.Equal(t, a, b)
}
