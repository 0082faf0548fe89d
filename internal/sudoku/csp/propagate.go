package csp

// ============================================================================
// AC-3 Propagator
// ============================================================================
//
// The only constraint is "not equal", so revise(Xi, Xj) reduces to: when
// D(Xj) is the singleton {v}, remove v from D(Xi). Domains shrink
// monotonically, so both passes terminate.
//
// ============================================================================

import "sudoku-engine/pkg/constants"

// revise removes from D(Xi) every value with no differing partner in D(Xj).
// Returns whether anything was removed.
func revise(net *Network, xi, xj int, stats *Stats) bool {
	dj := net.domains[xj]
	if !dj.IsSingleton() {
		return false
	}
	if net.domains[xi].Remove(dj.Value()) {
		if stats != nil {
			stats.ValuesEliminated++
		}
		return true
	}
	return false
}

// EnforceConsistency runs a full AC-3 pass over every arc. Returns false the
// moment a domain is wiped out, or at once when a domain is already empty on
// entry.
func EnforceConsistency(net *Network, stats *Stats) bool {
	if stats != nil {
		stats.AC3Calls++
	}

	for idx := range net.domains {
		if net.domains[idx].IsEmpty() {
			return false
		}
	}

	q := newArcQueue(constants.ArcQueueFullPass)
	for xi := 0; xi < net.Cells(); xi++ {
		for _, xj := range net.neighbors[xi] {
			q.push(arc{from: xi, to: xj})
		}
	}
	return drain(net, q, stats)
}

// PropagateFrom runs an incremental pass seeded only with the arcs pointing
// at the just-assigned cell.
func PropagateFrom(net *Network, idx int, stats *Stats) bool {
	if stats != nil {
		stats.AC3Calls++
	}

	q := newArcQueue(constants.ArcQueueIncremental)
	for _, xi := range net.neighbors[idx] {
		q.push(arc{from: xi, to: idx})
	}
	return drain(net, q, stats)
}

func drain(net *Network, q *arcQueue, stats *Stats) bool {
	for {
		a, ok := q.pop()
		if !ok {
			return true
		}
		if !revise(net, a.from, a.to, stats) {
			continue
		}
		if net.domains[a.from].IsEmpty() {
			return false
		}
		for _, xk := range net.neighbors[a.from] {
			if xk != a.to {
				q.push(arc{from: xk, to: a.from})
			}
		}
	}
}
