package gen

// ============================================================================
// Generation Orchestrator
// ============================================================================
//
// Seed the diagonal boxes with independent permutations, complete with the
// AC3HB solver (retrying a bounded number of times), then run elimination
// Phases 1 -> 2 -> 3 under the difficulty envelope.
//
// ============================================================================

import (
	"errors"
	"fmt"
	"math/rand"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/board"
	"sudoku-engine/internal/sudoku/csp"
	"sudoku-engine/pkg/constants"
)

// ErrGenerationFailed reports that no completion attempt succeeded.
var ErrGenerationFailed = errors.New("gen: board completion failed")

// Config parameterizes one generation run.
type Config struct {
	Difficulty  DifficultyConfig
	Observer    Observer
	MaxAttempts int // completion retries; defaults to constants.MaxCompletionAttempts
	Weights     csp.Weights
}

// DefaultConfig returns a medium-difficulty configuration.
func DefaultConfig() Config {
	return Config{
		Difficulty:  ConfigFor(core.DifficultyMedium),
		MaxAttempts: constants.MaxCompletionAttempts,
		Weights:     csp.DefaultWeights(),
	}
}

// Result reports what a generation run produced.
type Result struct {
	Stats        csp.Stats
	CellsRemoved int
	Solution     *board.Board
}

// run bundles the mutable state threaded through the phases.
type run struct {
	b   *board.Board
	rng *rand.Rand
	em  *emitter
}

// Generate fills b with a medium puzzle using default settings.
func Generate(b *board.Board, rng *rand.Rand) (Result, error) {
	return GenerateEx(b, rng, DefaultConfig())
}

// GenerateEx fills the empty board b with a puzzle matching cfg. On success
// b holds the elided puzzle and carries the forced-cells registry; the
// complete solution is returned in the result.
func GenerateEx(b *board.Board, rng *rand.Rand, cfg Config) (Result, error) {
	var res Result

	if err := cfg.Difficulty.Validate(); err != nil {
		return res, err
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = constants.MaxCompletionAttempts
	}
	if cfg.Weights == (csp.Weights{}) {
		cfg.Weights = csp.DefaultWeights()
	}

	g := &run{b: b, rng: rng, em: &emitter{obs: cfg.Observer}}
	g.em.emit(EventGenerationStart, b, 0)

	var err error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		clearBoard(b)
		fillDiagonal(b, rng)

		err = csp.CompleteWithConfig(b, rng, cfg.Weights, &res.Stats)
		if err == nil {
			break
		}
	}
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	res.Solution = b.Clone()

	order := boxOrder(b.Size())
	removed := g.phase1(order)
	removed += g.phase2(order)
	removed += g.phase3(cfg.Difficulty, removed)
	res.CellsRemoved = removed

	b.UpdateStats()
	g.em.emit(EventGenerationComplete, b, 0)
	return res, nil
}

// clearBoard empties every cell, keeping the board's dimension.
func clearBoard(b *board.Board) {
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			_ = b.Set(board.Position{Row: r, Col: c}, 0)
		}
	}
}

// fillDiagonal seeds the k boxes on the main diagonal with shuffled
// permutations of 1..N. The boxes share no row or column, so the fills are
// mutually independent.
func fillDiagonal(b *board.Board, rng *rand.Rand) {
	n, k := b.Size(), b.SubgridSize()
	for d := 0; d < k; d++ {
		p := board.Permutation(rng, n, 1)
		i := 0
		for r := d * k; r < (d+1)*k; r++ {
			for c := d * k; c < (d+1)*k; c++ {
				_ = b.Set(board.Position{Row: r, Col: c}, p[i])
				i++
			}
		}
	}
}

// boxOrder returns the identity processing order over the N boxes.
func boxOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
