package gen

import (
	"math/rand"
	"testing"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/board"
)

func TestGenerateMedium9x9(t *testing.T) {
	b, err := board.New(3)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))

	res, err := Generate(b, rng)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !board.Validate(b) {
		t.Error("generated puzzle is invalid")
	}
	if n := board.CountSolutions(b, 2); n != 1 {
		t.Errorf("generated puzzle has %d solutions, want 1", n)
	}
	if b.Clues()+b.Empty() != 81 {
		t.Error("cached counters inconsistent")
	}
	if res.CellsRemoved != b.Empty() {
		t.Errorf("reported %d removals, board has %d empty cells", res.CellsRemoved, b.Empty())
	}
	if res.Solution == nil || !board.IsComplete(res.Solution) {
		t.Error("result carries no complete solution")
	}
	if b.ForcedCells() == nil {
		t.Error("generated board carries no forced-cells registry")
	}
}

func TestGenerate4x4AllDifficulties(t *testing.T) {
	for _, d := range []core.Difficulty{
		core.DifficultyEasy, core.DifficultyMedium, core.DifficultyHard, core.DifficultyExpert,
	} {
		t.Run(string(d), func(t *testing.T) {
			b, _ := board.New(2)
			cfg := DefaultConfig()
			cfg.Difficulty = ConfigFor(d)

			if _, err := GenerateEx(b, rand.New(rand.NewSource(7)), cfg); err != nil {
				t.Fatalf("GenerateEx(%s): %v", d, err)
			}
			if !board.Validate(b) {
				t.Error("invalid puzzle")
			}
			if n := board.CountSolutions(b, 2); n != 1 {
				t.Errorf("%d solutions, want 1", n)
			}
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, _ := board.New(3)
	b, _ := board.New(3)
	if _, err := Generate(a, rand.New(rand.NewSource(99))); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(b, rand.New(rand.NewSource(99))); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("same seed produced different puzzles")
	}
}

func TestGenerateEventsOrdered(t *testing.T) {
	var events []EventType
	var lastRemoved int

	cfg := DefaultConfig()
	cfg.Observer = func(e Event) {
		events = append(events, e.Type)
		if e.CellsRemoved < lastRemoved {
			t.Errorf("cells_removed went backwards: %d -> %d", lastRemoved, e.CellsRemoved)
		}
		lastRemoved = e.CellsRemoved
	}

	b, _ := board.New(3)
	if _, err := GenerateEx(b, rand.New(rand.NewSource(2)), cfg); err != nil {
		t.Fatal(err)
	}

	if len(events) == 0 {
		t.Fatal("observer saw no events")
	}
	if events[0] != EventGenerationStart {
		t.Errorf("first event %v, want generation-start", events[0])
	}
	if events[len(events)-1] != EventGenerationComplete {
		t.Errorf("last event %v, want generation-complete", events[len(events)-1])
	}

	// Phase markers appear in order.
	wantOrder := []EventType{
		EventPhase1Start, EventPhase1Complete,
		EventPhase2Start, EventPhase2Complete,
		EventPhase3Start, EventPhase3Complete,
	}
	i := 0
	for _, e := range events {
		if i < len(wantOrder) && e == wantOrder[i] {
			i++
		}
	}
	if i != len(wantOrder) {
		t.Errorf("phase markers out of order, matched %d of %d", i, len(wantOrder))
	}
}

func TestGenerateRejectsInvalidEnvelope(t *testing.T) {
	b, _ := board.New(3)
	cfg := DefaultConfig()
	cfg.Difficulty.MinEliminationPct = 0.9
	cfg.Difficulty.MaxEliminationPct = 0.5

	if _, err := GenerateEx(b, rand.New(rand.NewSource(1)), cfg); err == nil {
		t.Error("inverted envelope accepted")
	}
}

func TestDifficultyEnvelopes(t *testing.T) {
	cases := []struct {
		d        core.Difficulty
		min, max float64
		dense    bool
	}{
		{core.DifficultyEasy, 0.43, 0.56, true},
		{core.DifficultyMedium, 0.57, 0.60, true},
		{core.DifficultyHard, 0.62, 0.65, false},
		{core.DifficultyExpert, 0.67, 0.73, false},
	}
	for _, tc := range cases {
		cfg := ConfigFor(tc.d)
		if cfg.MinEliminationPct != tc.min || cfg.MaxEliminationPct != tc.max {
			t.Errorf("%s: envelope [%v,%v]", tc.d, cfg.MinEliminationPct, cfg.MaxEliminationPct)
		}
		if cfg.PrioritizeHighDensity != tc.dense {
			t.Errorf("%s: prioritize_high_density = %v", tc.d, cfg.PrioritizeHighDensity)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: standard envelope failed validation: %v", tc.d, err)
		}
	}

	// Unknown falls back to medium.
	if cfg := ConfigFor(core.DifficultyUnknown); cfg.Difficulty != core.DifficultyMedium {
		t.Errorf("unknown mapped to %s", cfg.Difficulty)
	}
}

func TestFillDiagonalIndependence(t *testing.T) {
	b, _ := board.New(3)
	fillDiagonal(b, rand.New(rand.NewSource(4)))

	if b.Clues() != 27 {
		t.Fatalf("diagonal fill placed %d clues, want 27", b.Clues())
	}
	if !board.Validate(b) {
		t.Error("diagonal fill produced conflicts")
	}
	// Each diagonal box holds a full permutation of 1..9.
	for d := 0; d < 3; d++ {
		seen := make(map[int]bool)
		for r := d * 3; r < d*3+3; r++ {
			for c := d * 3; c < d*3+3; c++ {
				v, _ := b.Get(board.Position{Row: r, Col: c})
				if v < 1 || v > 9 || seen[v] {
					t.Fatalf("box %d is not a permutation", d)
				}
				seen[v] = true
			}
		}
	}
}
