package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku-engine/internal/sudoku/board"
)

func TestDensityCacheFromNetwork(t *testing.T) {
	b := emptyBoard(t, 3)
	// Two cells in box 0, one in box 4.
	require.NoError(t, b.Set(board.Position{Row: 0, Col: 0}, 1))
	require.NoError(t, b.Set(board.Position{Row: 1, Col: 1}, 2))
	require.NoError(t, b.Set(board.Position{Row: 4, Col: 4}, 3))

	dc := NewDensityCache(NewNetwork(b))
	assert.Equal(t, 2, dc.Get(0))
	assert.Equal(t, 1, dc.Get(4))
	assert.Equal(t, 0, dc.Get(8))
}

func TestDensityCacheIncrementDecrement(t *testing.T) {
	dc := NewDensityCache(NewNetwork(emptyBoard(t, 3)))

	dc.Increment(7, 7) // box 8
	dc.Increment(8, 8) // box 8
	assert.Equal(t, 2, dc.Get(8))

	dc.Decrement(7, 7)
	assert.Equal(t, 1, dc.Get(8))
}

func TestDensityCacheDecrementClamps(t *testing.T) {
	dc := NewDensityCache(NewNetwork(emptyBoard(t, 2)))
	dc.Decrement(0, 0)
	dc.Decrement(0, 0)
	assert.Equal(t, 0, dc.Get(0), "decrement must clamp at zero")
}

// A cache built from a network must hold, for every box, the network's
// singleton count in that box.
func TestDensityCacheMatchesNetwork(t *testing.T) {
	b := emptyBoard(t, 3)
	require.NoError(t, b.Set(board.Position{Row: 0, Col: 0}, 1))
	net := NewNetwork(b)
	dc := NewDensityCache(net)

	for box := 0; box < 9; box++ {
		want := 0
		for idx := 0; idx < net.Cells(); idx++ {
			p := net.PositionOf(idx)
			if p.BoxIndex(3) == box && net.DomainAt(idx).IsSingleton() {
				want++
			}
		}
		assert.Equal(t, want, dc.Get(box), "box %d", box)
	}
}
