package csp

// ============================================================================
// Heuristics - Cell Selection and Value Ordering
// ============================================================================
//
// Cell choice is a composite of MRV (fewest candidates), box density
// (prefer crowded boxes) and degree (most undecided neighbors). Value
// order is LCV: least-constraining first. Tie-breaks are deterministic:
// candidates, then density, then row, then col.
//
// ============================================================================

import (
	"math/rand"
	"sort"

	"sudoku-engine/internal/sudoku/board"
	"sudoku-engine/pkg/constants"
)

// Weights parameterize the composite cell score.
type Weights struct {
	Candidates     int
	Density        int
	EmptyNeighbors int
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Candidates:     constants.WeightCandidates,
		Density:        constants.WeightDensity,
		EmptyNeighbors: constants.WeightEmptyNeighbors,
	}
}

// CellScore is the scored record for one undecided cell. Lower Combined is
// better.
type CellScore struct {
	Pos            board.Position
	Candidates     int
	BoxDensity     int
	EmptyNeighbors int
	Combined       int
}

// better reports whether a beats b under the deterministic order.
func (a CellScore) better(b CellScore) bool {
	if a.Combined != b.Combined {
		return a.Combined < b.Combined
	}
	if a.Candidates != b.Candidates {
		return a.Candidates < b.Candidates
	}
	if a.BoxDensity != b.BoxDensity {
		return a.BoxDensity > b.BoxDensity
	}
	if a.Pos.Row != b.Pos.Row {
		return a.Pos.Row < b.Pos.Row
	}
	return a.Pos.Col < b.Pos.Col
}

// SelectOptimalCell scans the network for the best undecided cell. ok is
// false when every domain is a singleton (the caller should have detected
// completion).
func SelectOptimalCell(net *Network, dc *DensityCache, w Weights) (int, CellScore, bool) {
	bestIdx := -1
	var best CellScore

	for idx := range net.domains {
		size := net.domains[idx].Size()
		if size <= 1 {
			continue
		}
		p := net.PositionOf(idx)

		emptyNeighbors := 0
		for _, j := range net.neighbors[idx] {
			if net.domains[j].Size() > 1 {
				emptyNeighbors++
			}
		}

		s := CellScore{
			Pos:            p,
			Candidates:     size,
			BoxDensity:     dc.Get(p.BoxIndex(net.k)),
			EmptyNeighbors: emptyNeighbors,
		}
		s.Combined = s.Candidates*w.Candidates - s.BoxDensity*w.Density - s.EmptyNeighbors*w.EmptyNeighbors

		if bestIdx < 0 || s.better(best) {
			bestIdx = idx
			best = s
		}
	}

	return bestIdx, best, bestIdx >= 0
}

// OrderByLCV returns the candidates of cell idx sorted least-constraining
// first: ascending by how many neighbor domains still contain the value.
// Ties keep ascending value order.
func OrderByLCV(net *Network, idx int) []int {
	vals := net.domains[idx].Values(make([]int, 0, net.domains[idx].Size()))
	if len(vals) == 0 {
		return nil
	}

	impact := make(map[int]int, len(vals))
	for _, v := range vals {
		n := 0
		for _, j := range net.neighbors[idx] {
			if net.domains[j].Has(v) {
				n++
			}
		}
		impact[v] = n
	}

	sort.SliceStable(vals, func(i, j int) bool {
		return impact[vals[i]] < impact[vals[j]]
	})
	return vals
}

// CandidatesRandom returns the candidates of cell idx in shuffled order.
// It is the fallback when LCV ordering is unavailable.
func CandidatesRandom(net *Network, idx int, rng *rand.Rand) []int {
	vals := net.domains[idx].Values(make([]int, 0, net.domains[idx].Size()))
	board.ShuffleInts(rng, vals)
	return vals
}
