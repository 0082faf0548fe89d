package csp

// ============================================================================
// AC3HB Solver - Arc Consistency + Heuristic Backtracking
// ============================================================================
//
// Completes a partially filled board in place. Each invocation owns its
// network, density cache, statistics, and timeout record; nothing survives
// between invocations except the registry handed to the board on success.
//
// Budgets by board size:
//
//	N <= 9   depth 1000, 10s, recursive
//	N <= 16  depth 300,  15s, recursive
//	N > 16   depth 150,  60s, iterative deepening in steps of 20
//
// ============================================================================

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"sudoku-engine/internal/sudoku/board"
	"sudoku-engine/pkg/constants"
)

// ErrTimeout reports that the invocation's time budget was exhausted.
var ErrTimeout = errors.New("csp: solver timeout")

// ErrNoSolution reports that the search space was exhausted without a
// complete assignment.
var ErrNoSolution = errors.New("csp: no solution found")

// Dead-end flavors internal to the recursion. Both unwind one frame; only
// the top level translates them into ErrNoSolution.
var (
	errInconsistent = errors.New("csp: inconsistent network")
	errDeadEnd      = errors.New("csp: candidates exhausted")
	errDepthLimit   = errors.New("csp: depth limit reached")
)

// domainBackup is one entry of the per-frame snapshot taken around a
// tentative assignment.
type domainBackup struct {
	idx int
	dom Domain
}

type solver struct {
	b       *board.Board
	net     *Network
	dc      *DensityCache
	fc      *board.ForcedCells
	stats   *Stats
	to      *timeout
	weights Weights
	rng     *rand.Rand

	// given marks cells that were filled in the input board; those never
	// enter the forced registry.
	given []bool
	step  int
}

// Complete fills b in place using default weights, discarding statistics.
func Complete(b *board.Board, rng *rand.Rand) error {
	var stats Stats
	return CompleteWithConfig(b, rng, DefaultWeights(), &stats)
}

// CompleteEx fills b in place using default weights, reporting statistics.
func CompleteEx(b *board.Board, rng *rand.Rand, stats *Stats) error {
	return CompleteWithConfig(b, rng, DefaultWeights(), stats)
}

// CompleteWithConfig fills b in place. On success the board carries a
// forced-cells registry describing how each derived cell was settled.
// Statistics are written on success and on controlled failure.
func CompleteWithConfig(b *board.Board, rng *rand.Rand, w Weights, stats *Stats) error {
	n := b.Size()

	var maxDepth int
	var budget time.Duration
	deepening := false
	switch {
	case n <= 9:
		maxDepth, budget = constants.MaxDepthSmall, constants.TimeoutSmall
	case n <= 16:
		maxDepth, budget = constants.MaxDepthMedium, constants.TimeoutMedium
	default:
		maxDepth, budget = constants.MaxDepthLarge, constants.TimeoutLarge
		deepening = true
	}

	stats.Reset()

	s := &solver{
		b:       b,
		fc:      board.NewForcedCells(n),
		stats:   stats,
		to:      newTimeout(budget),
		weights: w,
		rng:     rng,
		given:   make([]bool, n*n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, _ := b.Get(board.Position{Row: r, Col: c})
			s.given[r*n+c] = v != 0
		}
	}

	var err error
	if deepening {
		err = s.solveDeepening(maxDepth)
	} else {
		s.prepare()
		err = s.solve(0, maxDepth)
	}

	stats.TimeMS = s.to.elapsed().Milliseconds()

	switch {
	case err == nil:
		b.SetForcedCells(s.fc)
		return nil
	case errors.Is(err, ErrTimeout):
		return ErrTimeout
	default:
		return ErrNoSolution
	}
}

// prepare builds a fresh network and density cache from the board and seeds
// the registry with naked and hidden singles visible before any search.
func (s *solver) prepare() {
	s.net = NewNetwork(s.b)
	s.dc = NewDensityCache(s.net)
	s.registerInitialSingles()
}

// solveDeepening sweeps the depth limit upward, rebuilding the search state
// between iterations. The timeout record is never reset.
func (s *solver) solveDeepening(maxDepth int) error {
	for limit := constants.DeepeningStep; ; limit += constants.DeepeningStep {
		if limit > maxDepth {
			limit = maxDepth
		}

		s.stats.TotalBacktracks = 0
		s.stats.CellsAssigned = 0
		s.prepare()

		err := s.solve(0, limit)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrTimeout) {
			return ErrTimeout
		}
		if limit == maxDepth {
			return ErrNoSolution
		}
	}
}

// register is the nil-tolerant registry write. Propagation-derived entries
// never displace an earlier, more specific kind; Backtracked always wins.
func (s *solver) register(idx, value int, kind board.ForcedKind) {
	if s.fc == nil || s.given[idx] {
		return
	}
	p := s.net.PositionOf(idx)
	if kind == board.ForcedPropagated && s.fc.IsRegistered(p) {
		return
	}
	s.step++
	if err := s.fc.Register(p, value, kind, s.step); err != nil {
		log.Warn().Err(err).Msg("forced cell registration rejected")
	}
}

// registerInitialSingles records naked singles (singleton initial domains)
// and hidden singles (a value with exactly one home in a unit).
func (s *solver) registerInitialSingles() {
	n := s.net.n

	for idx := range s.net.domains {
		if !s.given[idx] && s.net.domains[idx].IsSingleton() {
			s.register(idx, s.net.domains[idx].Value(), board.ForcedNakedSingle)
		}
	}

	units := unitIndices(s.net.k)
	for _, unit := range units {
		for v := 1; v <= n; v++ {
			home := -1
			count := 0
			for _, idx := range unit {
				if s.net.domains[idx].Has(v) {
					home = idx
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 1 && !s.given[home] && !s.net.domains[home].IsSingleton() {
				s.register(home, v, board.ForcedHiddenSingle)
			}
		}
	}
}

// unitIndices returns the 3N units (rows, columns, boxes) as index lists.
func unitIndices(k int) [][]int {
	n := k * k
	units := make([][]int, 0, 3*n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			row[c] = r*n + c
		}
		units = append(units, row)
	}
	for c := 0; c < n; c++ {
		col := make([]int, n)
		for r := 0; r < n; r++ {
			col[r] = r*n + c
		}
		units = append(units, col)
	}
	for b := 0; b < n; b++ {
		br, bc := (b/k)*k, (b%k)*k
		box := make([]int, 0, n)
		for r := br; r < br+k; r++ {
			for c := bc; c < bc+k; c++ {
				box = append(box, r*n+c)
			}
		}
		units = append(units, box)
	}
	return units
}

// registerPropagated sweeps the network for singletons not yet on record.
func (s *solver) registerPropagated() {
	for idx := range s.net.domains {
		if s.net.domains[idx].IsSingleton() {
			s.register(idx, s.net.domains[idx].Value(), board.ForcedPropagated)
		}
	}
}

// solve is one frame of the backtracking recursion.
func (s *solver) solve(depth, limit int) error {
	s.to.tick()
	if s.to.expired() {
		return ErrTimeout
	}
	if depth > limit {
		return errDepthLimit
	}
	s.stats.observeDepth(depth)

	if !EnforceConsistency(s.net, s.stats) {
		return errInconsistent
	}
	s.to.tick()
	if s.to.expired() {
		return ErrTimeout
	}

	s.registerPropagated()

	if s.net.Solved() {
		return s.copyOut()
	}
	for idx := range s.net.domains {
		if s.net.domains[idx].IsEmpty() {
			return errInconsistent
		}
	}

	cell, _, ok := SelectOptimalCell(s.net, s.dc, s.weights)
	if !ok {
		return errDeadEnd
	}
	s.to.tick()
	if s.to.expired() {
		return ErrTimeout
	}

	candidates := OrderByLCV(s.net, cell)
	if candidates == nil {
		candidates = CandidatesRandom(s.net, cell, s.rng)
	}

	p := s.net.PositionOf(cell)
	for i, v := range candidates {
		if s.to.expired() {
			return ErrTimeout
		}

		backup := s.snapshot(cell)

		s.net.domains[cell].Assign(v)
		s.dc.Increment(p.Row, p.Col)
		s.stats.CellsAssigned++

		s.to.tick()
		if !s.to.expired() && PropagateFrom(s.net, cell, s.stats) {
			s.registerPropagated()

			err := s.solve(depth+1, limit)
			if err == nil {
				if i > 0 {
					s.register(cell, v, board.ForcedBacktracked)
				}
				return nil
			}
			if errors.Is(err, ErrTimeout) {
				s.restore(backup)
				s.dc.Decrement(p.Row, p.Col)
				return ErrTimeout
			}
		}

		s.restore(backup)
		s.dc.Decrement(p.Row, p.Col)
		s.stats.TotalBacktracks++
	}

	return errDeadEnd
}

// snapshot copies the domain of cell and every neighbor for later restore.
func (s *solver) snapshot(cell int) []domainBackup {
	nb := s.net.neighbors[cell]
	backup := make([]domainBackup, 0, len(nb)+1)
	backup = append(backup, domainBackup{idx: cell, dom: s.net.domains[cell]})
	for _, j := range nb {
		backup = append(backup, domainBackup{idx: j, dom: s.net.domains[j]})
	}
	return backup
}

// restore writes every backed-up domain back bit for bit.
func (s *solver) restore(backup []domainBackup) {
	for _, e := range backup {
		s.net.setDomain(e.idx, e.dom)
	}
}

// copyOut writes the solved network into the board and refreshes its
// cached counters.
func (s *solver) copyOut() error {
	n := s.net.n
	for idx := range s.net.domains {
		p := board.Position{Row: idx / n, Col: idx % n}
		if err := s.b.Set(p, s.net.domains[idx].Value()); err != nil {
			return err
		}
	}
	s.b.UpdateStats()
	return nil
}
