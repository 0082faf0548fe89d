package gen

// ============================================================================
// Difficulty Configuration
// ============================================================================

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"sudoku-engine/internal/core"
	"sudoku-engine/pkg/constants"
)

// DifficultyConfig carries the elimination envelope for one generation run.
type DifficultyConfig struct {
	Difficulty            core.Difficulty
	MinEliminationPct     float64
	MaxEliminationPct     float64
	UseDensityScoring     bool
	PrioritizeHighDensity bool
}

// ConfigFor returns the standard envelope for a difficulty. Unknown maps to
// the medium envelope.
func ConfigFor(d core.Difficulty) DifficultyConfig {
	switch d {
	case core.DifficultyEasy:
		return DifficultyConfig{
			Difficulty:            d,
			MinEliminationPct:     0.43,
			MaxEliminationPct:     0.56,
			UseDensityScoring:     true,
			PrioritizeHighDensity: true,
		}
	case core.DifficultyHard:
		return DifficultyConfig{
			Difficulty:            d,
			MinEliminationPct:     0.62,
			MaxEliminationPct:     0.65,
			UseDensityScoring:     true,
			PrioritizeHighDensity: false,
		}
	case core.DifficultyExpert:
		return DifficultyConfig{
			Difficulty:            d,
			MinEliminationPct:     0.67,
			MaxEliminationPct:     0.73,
			UseDensityScoring:     true,
			PrioritizeHighDensity: false,
		}
	}
	return DifficultyConfig{
		Difficulty:            core.DifficultyMedium,
		MinEliminationPct:     0.57,
		MaxEliminationPct:     0.60,
		UseDensityScoring:     true,
		PrioritizeHighDensity: true,
	}
}

// Validate rejects envelopes outside [0,1] or inverted. Unusual but legal
// envelopes only draw a warning.
func (c DifficultyConfig) Validate() error {
	if c.MinEliminationPct < 0 || c.MaxEliminationPct > 1 || c.MinEliminationPct > c.MaxEliminationPct {
		return fmt.Errorf("gen: invalid elimination range [%.2f, %.2f]", c.MinEliminationPct, c.MaxEliminationPct)
	}
	if c.MinEliminationPct < constants.MinReasonableElimination {
		log.Warn().Float64("min", c.MinEliminationPct).Msg("elimination minimum unusually low")
	}
	if c.MaxEliminationPct > constants.MaxReasonableElimination {
		log.Warn().Float64("max", c.MaxEliminationPct).Msg("elimination maximum unusually high")
	}
	return nil
}
