package csp

import "github.com/rs/zerolog/log"

// DensityCache tracks, per box, how many cells are already decided
// (singleton domain). It is maintained incrementally during search so the
// heuristics never rescan the network.
type DensityCache struct {
	k      int
	counts []int
}

// NewDensityCache counts singleton domains per box for the given network.
func NewDensityCache(net *Network) *DensityCache {
	dc := &DensityCache{
		k:      net.k,
		counts: make([]int, net.n),
	}
	for idx := range net.domains {
		if net.domains[idx].IsSingleton() {
			p := net.PositionOf(idx)
			dc.counts[p.BoxIndex(net.k)]++
		}
	}
	return dc
}

// Get returns the decided-cell count of box idx.
func (dc *DensityCache) Get(idx int) int { return dc.counts[idx] }

func (dc *DensityCache) boxOf(r, c int) int { return (r/dc.k)*dc.k + c/dc.k }

// Increment records a newly decided cell at (r,c).
func (dc *DensityCache) Increment(r, c int) { dc.counts[dc.boxOf(r, c)]++ }

// Decrement records an undone decision at (r,c). The count never goes below
// zero; an underflow is logged and clamped.
func (dc *DensityCache) Decrement(r, c int) {
	box := dc.boxOf(r, c)
	if dc.counts[box] == 0 {
		log.Warn().Int("box", box).Msg("density cache decrement below zero, clamping")
		return
	}
	dc.counts[box]--
}
