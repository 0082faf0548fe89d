package csp

// ============================================================================
// Constraint Network
// ============================================================================
//
// One variable per cell, identified by its row-major index. Neighbor lists
// (all cells sharing a row, column, or box) are precomputed once per
// subgrid size and shared read-only by every network of that size.
//
// A network is owned by a single solver invocation; it is never shared.
//
// ============================================================================

import (
	"fmt"
	"sync"

	"sudoku-engine/internal/sudoku/board"
)

var (
	neighborsMu    sync.Mutex
	neighborsBySub = make(map[int][][]int)
)

// neighborsFor returns the shared neighbor tables for subgrid size k,
// building them on first use.
func neighborsFor(k int) [][]int {
	neighborsMu.Lock()
	defer neighborsMu.Unlock()

	if nb, ok := neighborsBySub[k]; ok {
		return nb
	}

	n := k * k
	nb := make([][]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			seen := make(map[int]bool, 3*n)

			for i := 0; i < n; i++ {
				seen[r*n+i] = true
				seen[i*n+c] = true
			}
			br, bc := (r/k)*k, (c/k)*k
			for rr := br; rr < br+k; rr++ {
				for cc := bc; cc < bc+k; cc++ {
					seen[rr*n+cc] = true
				}
			}
			delete(seen, idx)

			list := make([]int, 0, len(seen))
			// Row-major order keeps the tables deterministic.
			for j := 0; j < n*n; j++ {
				if seen[j] {
					list = append(list, j)
				}
			}
			nb[idx] = list
		}
	}

	neighborsBySub[k] = nb
	return nb
}

// Network is the per-invocation constraint store.
type Network struct {
	k       int
	n       int
	domains []Domain
	// neighbors is shared read-only across networks of the same size.
	neighbors [][]int
}

// NewNetwork builds a network from a board: filled cells collapse to
// singletons and prune their neighbors; empty cells start full and are
// pruned by already-fixed neighbors.
func NewNetwork(b *board.Board) *Network {
	k, n := b.SubgridSize(), b.Size()
	net := &Network{
		k:         k,
		n:         n,
		domains:   make([]Domain, n*n),
		neighbors: neighborsFor(k),
	}

	for i := range net.domains {
		net.domains[i] = FullDomain(n)
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, _ := b.Get(board.Position{Row: r, Col: c})
			if v == 0 {
				continue
			}
			idx := r*n + c
			net.domains[idx] = SingletonDomain(v)
			for _, j := range net.neighbors[idx] {
				net.domains[j].Remove(v)
			}
		}
	}

	return net
}

// Size returns the board dimension N.
func (net *Network) Size() int { return net.n }

// SubgridSize returns k.
func (net *Network) SubgridSize() int { return net.k }

// Cells returns the variable count N*N.
func (net *Network) Cells() int { return len(net.domains) }

// Index converts a position to its variable index.
func (net *Network) Index(p board.Position) int { return p.Row*net.n + p.Col }

// PositionOf converts a variable index back to a position.
func (net *Network) PositionOf(idx int) board.Position {
	return board.Position{Row: idx / net.n, Col: idx % net.n}
}

// DomainAt returns a copy of the domain of variable idx.
func (net *Network) DomainAt(idx int) Domain { return net.domains[idx] }

// Neighbors returns the shared neighbor list of variable idx. Callers must
// not mutate it.
func (net *Network) Neighbors(idx int) []int { return net.neighbors[idx] }

// HasValue reports whether v remains possible for variable idx.
func (net *Network) HasValue(idx, v int) bool { return net.domains[idx].Has(v) }

// DomainSize returns the candidate count of variable idx.
func (net *Network) DomainSize(idx int) int { return net.domains[idx].Size() }

// DomainEmpty reports whether variable idx has been wiped out.
func (net *Network) DomainEmpty(idx int) bool { return net.domains[idx].IsEmpty() }

// RemoveValue drops v from variable idx, reporting whether it was present.
func (net *Network) RemoveValue(idx, v int) bool { return net.domains[idx].Remove(v) }

// AssignValue collapses variable idx to {v}. v must be in the domain.
func (net *Network) AssignValue(idx, v int) error {
	if !net.domains[idx].Has(v) {
		return fmt.Errorf("csp: value %d not in domain of cell %d", v, idx)
	}
	net.domains[idx].Assign(v)
	return nil
}

// RestoreDomain resets variable idx to the full set.
func (net *Network) RestoreDomain(idx int) { net.domains[idx].Reset(net.n) }

// setDomain writes a previously snapshotted domain back, bit for bit.
func (net *Network) setDomain(idx int, d Domain) { net.domains[idx] = d }

// Solved reports whether every domain is a singleton.
func (net *Network) Solved() bool {
	for i := range net.domains {
		if !net.domains[i].IsSingleton() {
			return false
		}
	}
	return true
}
