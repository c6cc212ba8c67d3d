package filling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameParams(t *testing.T) {
	tests := []struct {
		input  string
		want   GameParams
		wantOk bool
	}{
		{"7x7", GameParams{7, 7}, true},
		{"13x4", GameParams{13, 4}, true},
		{"5", GameParams{5, 5}, true},
		{"1x1", GameParams{1, 1}, true},
		{"0x5", GameParams{}, false},
		{"5x0", GameParams{}, false},
		{"ax3", GameParams{}, false},
		{"3xb", GameParams{}, false},
		{"", GameParams{}, false},
		{"3x3x3", GameParams{}, false},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p, err := ParseGameParams(test.input)
			if !test.wantOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, *p)
		})
	}
}

func TestValidateNamesTheDimension(t *testing.T) {
	err := GameParams{Width: 0, Height: 3}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")

	err = GameParams{Width: 3, Height: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}

func TestMaxCellValue(t *testing.T) {
	tests := []struct {
		params GameParams
		want   int
	}{
		{GameParams{1, 1}, 3},
		{GameParams{2, 2}, 3}, /* the special case */
		{GameParams{3, 3}, 3},
		{GameParams{7, 7}, 7},
		{GameParams{2, 8}, 8},
		{GameParams{9, 9}, 9},
		{GameParams{13, 13}, 9},
		{GameParams{1, 20}, 9},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.params.MaxCellValue(), test.params.String())
	}
}

func TestParamsRoundTrip(t *testing.T) {
	for _, s := range []string{"1x1", "2x2", "7x7", "13x4"} {
		p, err := ParseGameParams(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}
