package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku-engine/internal/sudoku/board"
)

func emptyBoard(t *testing.T, k int) *board.Board {
	t.Helper()
	b, err := board.New(k)
	require.NoError(t, err)
	return b
}

func TestNeighborCounts(t *testing.T) {
	// Each cell sees 3N - 2k - 1 distinct neighbors: N-1 in its row, N-1 in
	// its column, and the (k-1)^2 box cells outside both.
	for _, k := range []int{2, 3, 4} {
		n := k * k
		net := NewNetwork(emptyBoard(t, k))
		want := 3*n - 2*k - 1
		for idx := 0; idx < net.Cells(); idx++ {
			assert.Len(t, net.Neighbors(idx), want, "k=%d cell %d", k, idx)
		}
	}
}

func TestNeighborSymmetry(t *testing.T) {
	net := NewNetwork(emptyBoard(t, 3))
	for i := 0; i < net.Cells(); i++ {
		for _, j := range net.Neighbors(i) {
			found := false
			for _, back := range net.Neighbors(j) {
				if back == i {
					found = true
					break
				}
			}
			assert.True(t, found, "neighbor lists asymmetric: %d -> %d", i, j)
		}
	}
}

func TestNetworkFromBoard(t *testing.T) {
	b := emptyBoard(t, 3)
	require.NoError(t, b.Set(board.Position{Row: 0, Col: 0}, 5))
	require.NoError(t, b.Set(board.Position{Row: 4, Col: 4}, 1))

	net := NewNetwork(b)

	d := net.DomainAt(0)
	assert.True(t, d.IsSingleton())
	assert.Equal(t, 5, d.Value())

	// Every neighbor of (0,0) lost 5.
	for _, j := range net.Neighbors(0) {
		assert.False(t, net.HasValue(j, 5), "neighbor %d kept value 5", j)
	}

	// An unrelated cell keeps a full domain.
	far := net.Index(board.Position{Row: 8, Col: 8})
	assert.Equal(t, 9, net.DomainSize(far))
}

func TestNetworkOperations(t *testing.T) {
	net := NewNetwork(emptyBoard(t, 2))

	assert.True(t, net.RemoveValue(0, 3))
	assert.False(t, net.RemoveValue(0, 3))
	assert.Equal(t, 3, net.DomainSize(0))

	require.NoError(t, net.AssignValue(0, 2))
	assert.True(t, net.DomainAt(0).IsSingleton())
	assert.Error(t, net.AssignValue(0, 3), "assign of a removed value must fail")

	net.RestoreDomain(0)
	assert.Equal(t, 4, net.DomainSize(0))
	assert.False(t, net.DomainEmpty(0))
}

func TestIndexRoundTrip(t *testing.T) {
	net := NewNetwork(emptyBoard(t, 3))
	for idx := 0; idx < net.Cells(); idx++ {
		assert.Equal(t, idx, net.Index(net.PositionOf(idx)))
	}
}
