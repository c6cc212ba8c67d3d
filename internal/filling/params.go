// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height int
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// ParseGameParams accepts "<width>x<height>" or "<width>" (square grid).
func ParseGameParams(s string) (*GameParams, error) {
	ws, hs, square := s, s, true
	if before, after, found := strings.Cut(s, "x"); found {
		ws, hs, square = before, after, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return nil, fmt.Errorf("invalid game params %q: %w", s, err)
	}
	h := w
	if !square {
		if h, err = strconv.Atoi(hs); err != nil {
			return nil, fmt.Errorf("invalid game params %q: %w", s, err)
		}
	}
	p := &GameParams{Width: w, Height: h}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("width must be at least one")
	}
	if p.Height < 1 {
		return fmt.Errorf("height must be at least one")
	}
	return nil
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

/*
 * Nine is the hard cap imposed by the single-digit cell encoding. The
 * 2x2 grid needs a region larger than max(w, h): no partition of its
 * four cells into regions of size <= 2 avoids two equal-sized regions
 * touching, so the bound is lifted to 3 there.
 */
func (p GameParams) MaxCellValue() int {
	return min(max(max(p.Width, p.Height), 3), 9)
}

func (p GameParams) ValidateCell(i int) bool {
	return 0 <= i && i < p.CellCount()
}

var (
	dx = [4]int{-1, 1, 0, 0}
	dy = [4]int{0, 0, -1, 1}
)

// neighbors calls fn with the index of each in-bounds orthogonal
// neighbor of cell i, in left, right, up, down order.
func (p GameParams) neighbors(i int, fn func(idx int) bool) {
	for k := range 4 {
		x := i%p.Width + dx[k]
		y := i/p.Width + dy[k]
		if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
			continue
		}
		if !fn(y*p.Width + x) {
			return
		}
	}
}
