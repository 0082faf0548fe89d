package sudoku

// ============================================================================
// Public Engine Surface
// ============================================================================
//
// Thin, stable facade over the board model, the AC3HB completion engine,
// and the elimination pipeline. Callers outside internal/sudoku go through
// this package.
//
// ============================================================================

import (
	"math/rand"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/board"
	"sudoku-engine/internal/sudoku/csp"
	"sudoku-engine/internal/sudoku/gen"
)

// Type aliases keep the facade free of wrapper types.
type (
	Board       = board.Board
	Position    = board.Position
	ForcedCells = board.ForcedCells
	ForcedCell  = board.ForcedCell
	ForcedKind  = board.ForcedKind

	Stats      = csp.Stats
	Weights    = csp.Weights
	Config     = gen.Config
	Result     = gen.Result
	Event      = gen.Event
	EventType  = gen.EventType
	Observer   = gen.Observer
	Difficulty = core.Difficulty
)

// NewBoard creates an empty board for subgrid size k.
func NewBoard(k int) (*Board, error) { return board.New(k) }

// Generate produces a puzzle of the given difficulty on a fresh board.
func Generate(k int, d Difficulty, rng *rand.Rand) (*Board, Result, error) {
	b, err := board.New(k)
	if err != nil {
		return nil, Result{}, err
	}
	cfg := gen.DefaultConfig()
	cfg.Difficulty = gen.ConfigFor(d)
	res, err := gen.GenerateEx(b, rng, cfg)
	if err != nil {
		return nil, res, err
	}
	return b, res, nil
}

// GenerateWithConfig produces a puzzle on a fresh board under full control
// of the generation configuration.
func GenerateWithConfig(k int, cfg Config, rng *rand.Rand) (*Board, Result, error) {
	b, err := board.New(k)
	if err != nil {
		return nil, Result{}, err
	}
	res, err := gen.GenerateEx(b, rng, cfg)
	if err != nil {
		return nil, res, err
	}
	return b, res, nil
}

// DifficultyConfig returns the standard envelope for a difficulty.
func DifficultyConfig(d Difficulty) gen.DifficultyConfig { return gen.ConfigFor(d) }

// Complete fills a partial board in place via the AC3HB solver.
func Complete(b *Board, rng *rand.Rand) error { return csp.Complete(b, rng) }

// CompleteEx fills a partial board in place, reporting solver statistics.
func CompleteEx(b *Board, rng *rand.Rand, stats *Stats) error {
	return csp.CompleteEx(b, rng, stats)
}

// Validate reports whether the board violates no row/column/box constraint.
func Validate(b *Board) bool { return board.Validate(b) }

// CountSolutions enumerates completions of b, stopping at limit.
func CountSolutions(b *Board, limit int) int { return board.CountSolutions(b, limit) }

// Encode renders a board as its compact cell string.
func Encode(b *Board) string { return board.Encode(b) }

// Decode rebuilds a board of subgrid size k from its compact cell string.
func Decode(k int, s string) (*Board, error) { return board.Decode(k, s) }
