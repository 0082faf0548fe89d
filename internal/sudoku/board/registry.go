package board

// ============================================================================
// Forced-Cells Registry
// ============================================================================
//
// The completion engine records why each derived cell got its value. The
// elimination pipeline consults that provenance to decide which cells to
// protect for a target difficulty.
//
// Occupancy is tracked in a bitmap for O(1) negative lookups; records live
// in a dense array scanned only when the bitmap says the position is there.
//
// ============================================================================

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// ForcedKind classifies how a cell's value was derived.
type ForcedKind int

const (
	// ForcedNakedSingle marks a cell whose initial domain held one value.
	ForcedNakedSingle ForcedKind = iota
	// ForcedHiddenSingle marks the only cell in a unit that could hold a value.
	ForcedHiddenSingle
	// ForcedPropagated marks a singleton produced by arc-consistency pruning.
	ForcedPropagated
	// ForcedBacktracked marks a value settled only after earlier candidates failed.
	ForcedBacktracked
)

// String returns the kind's display name.
func (k ForcedKind) String() string {
	switch k {
	case ForcedNakedSingle:
		return "naked-single"
	case ForcedHiddenSingle:
		return "hidden-single"
	case ForcedPropagated:
		return "propagated"
	case ForcedBacktracked:
		return "backtracked"
	}
	return "unknown"
}

// kindBaseScore maps a kind to the base of its difficulty score.
var kindBaseScore = [...]int{
	ForcedNakedSingle:  1,
	ForcedHiddenSingle: 3,
	ForcedPropagated:   6,
	ForcedBacktracked:  9,
}

// ForcedCell is one provenance record.
type ForcedCell struct {
	Pos             Position
	Value           int
	Kind            ForcedKind
	GenerationStep  int
	DifficultyScore int // 1..10
}

// ForcedCells is a bounded registry of provenance records, at most one per
// board position. Registration is idempotent on position.
type ForcedCells struct {
	n       int
	bitmap  []uint64
	records []ForcedCell
}

// NewForcedCells creates an empty registry for an N x N board.
func NewForcedCells(n int) *ForcedCells {
	words := (n*n + 63) / 64
	return &ForcedCells{
		n:      n,
		bitmap: make([]uint64, words),
	}
}

// Count returns the number of registered positions.
func (fc *ForcedCells) Count() int { return len(fc.records) }

func (fc *ForcedCells) idx(p Position) int { return p.Row*fc.n + p.Col }

func (fc *ForcedCells) occupied(idx int) bool {
	return fc.bitmap[idx/64]&(1<<uint(idx%64)) != 0
}

// Register records (or updates) the provenance of p. Out-of-range inputs
// are rejected.
func (fc *ForcedCells) Register(p Position, value int, kind ForcedKind, step int) error {
	if p.Row < 0 || p.Row >= fc.n || p.Col < 0 || p.Col >= fc.n {
		return fmt.Errorf("%w: r=%d c=%d", ErrOutOfRange, p.Row, p.Col)
	}
	if value < 1 || value > fc.n {
		return fmt.Errorf("%w: v=%d", ErrOutOfRange, value)
	}
	if kind < ForcedNakedSingle || kind > ForcedBacktracked {
		return fmt.Errorf("%w: kind=%d", ErrOutOfRange, kind)
	}
	if step < 0 {
		return fmt.Errorf("%w: step=%d", ErrOutOfRange, step)
	}

	rec := ForcedCell{
		Pos:             p,
		Value:           value,
		Kind:            kind,
		GenerationStep:  step,
		DifficultyScore: difficultyScore(kind, step),
	}

	idx := fc.idx(p)
	if fc.occupied(idx) {
		for i := range fc.records {
			if fc.records[i].Pos == p {
				fc.records[i] = rec
				return nil
			}
		}
	}
	fc.bitmap[idx/64] |= 1 << uint(idx%64)
	fc.records = append(fc.records, rec)
	return nil
}

// difficultyScore derives the 1..10 score: a base per kind plus step/20
// capped at +3.
func difficultyScore(kind ForcedKind, step int) int {
	score := kindBaseScore[kind]
	bonus := step / 20
	if bonus > 3 {
		bonus = 3
	}
	score += bonus
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// IsRegistered reports whether p has a record.
func (fc *ForcedCells) IsRegistered(p Position) bool {
	if p.Row < 0 || p.Row >= fc.n || p.Col < 0 || p.Col >= fc.n {
		return false
	}
	return fc.occupied(fc.idx(p))
}

// Info returns the record for p, if any.
func (fc *ForcedCells) Info(p Position) (ForcedCell, bool) {
	if !fc.IsRegistered(p) {
		return ForcedCell{}, false
	}
	for i := range fc.records {
		if fc.records[i].Pos == p {
			return fc.records[i], true
		}
	}
	return ForcedCell{}, false
}

// Kind returns the kind recorded for p, if any.
func (fc *ForcedCells) Kind(p Position) (ForcedKind, bool) {
	rec, ok := fc.Info(p)
	if !ok {
		return 0, false
	}
	return rec.Kind, true
}

// Records returns a copy of the dense record array.
func (fc *ForcedCells) Records() []ForcedCell {
	out := make([]ForcedCell, len(fc.records))
	copy(out, fc.records)
	return out
}

// Clear forgets every record.
func (fc *ForcedCells) Clear() {
	for i := range fc.bitmap {
		fc.bitmap[i] = 0
	}
	fc.records = fc.records[:0]
}

// ShouldProtect reports whether the cell at p must survive elimination for
// the given target difficulty. Unregistered cells are never protected.
func (fc *ForcedCells) ShouldProtect(p Position, d core.Difficulty) bool {
	kind, ok := fc.Kind(p)
	if !ok {
		return false
	}
	switch d {
	case core.DifficultyEasy:
		return kind >= ForcedPropagated
	case core.DifficultyMedium:
		return kind >= ForcedHiddenSingle
	case core.DifficultyHard:
		return kind >= ForcedNakedSingle
	case core.DifficultyExpert:
		return kind != ForcedBacktracked
	}
	return false
}
