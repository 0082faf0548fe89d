package csp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku-engine/internal/sudoku/board"
)

func TestSelectOptimalCellPrefersSmallDomains(t *testing.T) {
	b := emptyBoard(t, 3)
	// Constrain (0,8) down to a 2-candidate domain: seven values in its row.
	for c := 0; c < 7; c++ {
		require.NoError(t, b.Set(board.Position{Row: 0, Col: c}, c+1))
	}

	net := NewNetwork(b)
	dc := NewDensityCache(net)

	idx, score, ok := SelectOptimalCell(net, dc, DefaultWeights())
	require.True(t, ok)
	assert.Equal(t, 2, score.Candidates)
	assert.Equal(t, 2, net.DomainSize(idx))
}

func TestSelectOptimalCellTieBreakDeterministic(t *testing.T) {
	net := NewNetwork(emptyBoard(t, 2))
	dc := NewDensityCache(net)

	// On an empty board every cell ties; row-then-col break picks (0,0).
	idx, _, ok := SelectOptimalCell(net, dc, DefaultWeights())
	require.True(t, ok)
	assert.Equal(t, board.Position{Row: 0, Col: 0}, net.PositionOf(idx))
}

func TestSelectOptimalCellNoneLeft(t *testing.T) {
	b := emptyBoard(t, 2)
	// A complete 4x4 board: every domain is a singleton.
	grid := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r := range grid {
		for c := range grid[r] {
			require.NoError(t, b.Set(board.Position{Row: r, Col: c}, grid[r][c]))
		}
	}
	net := NewNetwork(b)
	_, _, ok := SelectOptimalCell(net, NewDensityCache(net), DefaultWeights())
	assert.False(t, ok)
}

func TestOrderByLCVAscendingImpact(t *testing.T) {
	b := emptyBoard(t, 3)
	// Value 1 placed nearby raises the impact of everything except 1 at the
	// probe cell; values already pruned from neighbors constrain less.
	for c := 0; c < 7; c++ {
		require.NoError(t, b.Set(board.Position{Row: 1, Col: c}, c+1))
	}
	net := NewNetwork(b)

	cell := net.Index(board.Position{Row: 0, Col: 0})
	got := OrderByLCV(net, cell)
	require.NotEmpty(t, got)
	require.ElementsMatch(t, net.DomainAt(cell).Values(nil), got)

	impact := func(v int) int {
		n := 0
		for _, j := range net.Neighbors(cell) {
			if net.HasValue(j, v) {
				n++
			}
		}
		return n
	}
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, impact(got[i-1]), impact(got[i]), "LCV order violated at %d", i)
	}
}

func TestCandidatesRandomIsPermutationOfDomain(t *testing.T) {
	net := NewNetwork(emptyBoard(t, 3))
	rng := rand.New(rand.NewSource(3))

	got := CandidatesRandom(net, 0, rng)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}
