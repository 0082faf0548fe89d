package gen

// ============================================================================
// Elimination Pipeline
// ============================================================================
//
// Three phases under increasingly expensive correctness guarantees:
//
//	Phase 1 removes one cell per box (balanced; solvability is free since
//	every box keeps N-1 values).
//	Phase 2 removes cells whose value has no alternative home in its row,
//	column, or box — a solver re-derives them — iterating rounds to the
//	smallest fixed point, at most one removal per box per round.
//	Phase 3 removes cells only while the puzzle keeps a unique completion,
//	calibrating the clue count into the difficulty envelope.
//
// ============================================================================

import (
	"math"
	"sort"

	"sudoku-engine/internal/sudoku/board"
	"sudoku-engine/pkg/constants"
)

// phase1 removes exactly one cell from each box: the i-th box in the
// ordering loses the value p[i] of a fresh permutation.
func (g *run) phase1(order []int) int {
	b := g.b
	n, k := b.Size(), b.SubgridSize()

	g.em.emit(EventPhase1Start, b, 1)

	p := board.Permutation(g.rng, n, 1)
	removed := 0
	for i, box := range order {
		br, bc := (box/k)*k, (box%k)*k
	boxScan:
		for r := br; r < br+k; r++ {
			for c := bc; c < bc+k; c++ {
				pos := board.Position{Row: r, Col: c}
				v, _ := b.Get(pos)
				if v != p[i] {
					continue
				}
				_ = b.Set(pos, 0)
				removed++
				g.em.removed++
				g.em.emitCell(EventPhase1CellSelected, b, 1, pos, v)
				break boxScan
			}
		}
	}

	g.em.emit(EventPhase1Complete, b, 1)
	return removed
}

// hasAlternative reports whether v could legally occupy some other empty
// cell in p's row, column, or box. The probe empties p first and always
// restores it.
func hasAlternative(b *board.Board, p board.Position, v int) bool {
	_ = b.Set(p, 0)
	defer func() { _ = b.Set(p, v) }()

	n, k := b.Size(), b.SubgridSize()

	probe := func(q board.Position) bool {
		if q == p {
			return false
		}
		cur, _ := b.Get(q)
		return cur == 0 && board.IsSafe(b, q, v)
	}

	for i := 0; i < n; i++ {
		if probe(board.Position{Row: p.Row, Col: i}) {
			return true
		}
		if probe(board.Position{Row: i, Col: p.Col}) {
			return true
		}
	}
	br, bc := (p.Row/k)*k, (p.Col/k)*k
	for r := br; r < br+k; r++ {
		for c := bc; c < bc+k; c++ {
			if probe(board.Position{Row: r, Col: c}) {
				return true
			}
		}
	}
	return false
}

// phase2Round walks each box in order and removes the first filled cell
// whose value has no alternative home. At most one removal per box.
func (g *run) phase2Round(order []int) int {
	b := g.b
	k := b.SubgridSize()
	removed := 0

	for _, box := range order {
		br, bc := (box/k)*k, (box%k)*k
	boxScan:
		for r := br; r < br+k; r++ {
			for c := bc; c < bc+k; c++ {
				pos := board.Position{Row: r, Col: c}
				v, _ := b.Get(pos)
				if v == 0 || hasAlternative(b, pos, v) {
					continue
				}
				_ = b.Set(pos, 0)
				removed++
				g.em.removed++
				g.em.emitCell(EventPhase2CellSelected, b, 2, pos, v)
				break boxScan
			}
		}
	}

	return removed
}

// phase2 iterates rounds until one removes nothing.
func (g *run) phase2(order []int) int {
	g.em.emit(EventPhase2Start, g.b, 2)
	total := 0
	for {
		n := g.phase2Round(order)
		if n == 0 {
			break
		}
		total += n
	}
	g.em.emit(EventPhase2Complete, g.b, 2)
	return total
}

// removalCandidate scores one filled cell for phase 3 ordering.
type removalCandidate struct {
	pos          board.Position
	value        int
	alternatives int
	boxDensity   int
}

// scoreCandidates collects every filled cell with its alternatives count
// and the filled-cell density of its box.
func scoreCandidates(b *board.Board) []removalCandidate {
	n, k := b.Size(), b.SubgridSize()

	density := make([]int, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v, _ := b.Get(board.Position{Row: r, Col: c}); v != 0 {
				density[(r/k)*k+c/k]++
			}
		}
	}

	var out []removalCandidate
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			pos := board.Position{Row: r, Col: c}
			v, _ := b.Get(pos)
			if v == 0 {
				continue
			}
			out = append(out, removalCandidate{
				pos:        pos,
				value:      v,
				boxDensity: density[pos.BoxIndex(k)],
			})
		}
	}
	for i := range out {
		out[i].alternatives = countAlternatives(b, out[i].pos, out[i].value)
	}
	return out
}

// countAlternatives counts the empty cells in p's row, column, or box that
// could legally take v once p is emptied.
func countAlternatives(b *board.Board, p board.Position, v int) int {
	_ = b.Set(p, 0)
	defer func() { _ = b.Set(p, v) }()

	n, k := b.Size(), b.SubgridSize()
	seen := map[board.Position]bool{}

	probe := func(q board.Position) {
		if q == p || seen[q] {
			return
		}
		cur, _ := b.Get(q)
		if cur == 0 && board.IsSafe(b, q, v) {
			seen[q] = true
		}
	}

	for i := 0; i < n; i++ {
		probe(board.Position{Row: p.Row, Col: i})
		probe(board.Position{Row: i, Col: p.Col})
	}
	br, bc := (p.Row/k)*k, (p.Col/k)*k
	for r := br; r < br+k; r++ {
		for c := bc; c < bc+k; c++ {
			probe(board.Position{Row: r, Col: c})
		}
	}
	return len(seen)
}

// phase3 removes cells under a uniqueness guarantee until the clue count
// lands in the difficulty envelope. Returns the number of removals.
func (g *run) phase3(cfg DifficultyConfig, alreadyRemoved int) int {
	b := g.b
	n := b.Size()

	g.em.emit(EventPhase3Start, b, 3)
	defer g.em.emit(EventPhase3Complete, b, 3)

	mid := (cfg.MinEliminationPct + cfg.MaxEliminationPct) / 2
	target := int(math.Round(float64(n*n)*mid)) - alreadyRemoved
	if target <= 0 {
		return 0
	}

	candidates := scoreCandidates(b)
	if cfg.UseDensityScoring && cfg.PrioritizeHighDensity {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].boxDensity != candidates[j].boxDensity {
				return candidates[i].boxDensity > candidates[j].boxDensity
			}
			return candidates[i].alternatives > candidates[j].alternatives
		})
	} else {
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	fc := b.ForcedCells()
	removed := 0
	for _, cand := range candidates {
		if removed >= target {
			break
		}
		if fc != nil && fc.ShouldProtect(cand.pos, cfg.Difficulty) {
			continue
		}
		if v, _ := b.Get(cand.pos); v == 0 {
			// removed by an earlier decision's bookkeeping; nothing to do
			continue
		}

		_ = b.Set(cand.pos, 0)
		if board.CountSolutions(b, constants.SolutionCountLimit) == 1 {
			removed++
			g.em.removed++
			g.em.emitCell(EventPhase3CellRemoved, b, 3, cand.pos, cand.value)
		} else {
			_ = b.Set(cand.pos, cand.value)
			g.em.emitCell(EventPhase3CellKept, b, 3, cand.pos, cand.value)
		}
	}

	return removed
}
