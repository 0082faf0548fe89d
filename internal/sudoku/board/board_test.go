package board

import (
	"math/rand"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, k := range []int{-1, 0, 1, 6, 10} {
		if _, err := New(k); err == nil {
			t.Errorf("New(%d): expected error", k)
		}
	}
	for _, k := range []int{2, 3, 4, 5} {
		b, err := New(k)
		if err != nil {
			t.Fatalf("New(%d): %v", k, err)
		}
		if b.Size() != k*k || b.SubgridSize() != k {
			t.Errorf("New(%d): size=%d subgrid=%d", k, b.Size(), b.SubgridSize())
		}
		if b.Clues() != 0 || b.Empty() != k*k*k*k {
			t.Errorf("New(%d): clues=%d empty=%d", k, b.Clues(), b.Empty())
		}
	}
}

func TestSetGetBounds(t *testing.T) {
	b, _ := New(3)

	if err := b.Set(Position{Row: 0, Col: 0}, 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := b.Get(Position{Row: 0, Col: 0})
	if err != nil || v != 5 {
		t.Fatalf("Get = %d, %v", v, err)
	}

	bad := []struct {
		p Position
		v int
	}{
		{Position{Row: -1, Col: 0}, 1},
		{Position{Row: 0, Col: 9}, 1},
		{Position{Row: 9, Col: 0}, 1},
		{Position{Row: 0, Col: 0}, -1},
		{Position{Row: 0, Col: 0}, 10},
	}
	for _, tc := range bad {
		if err := b.Set(tc.p, tc.v); err == nil {
			t.Errorf("Set(%v, %d): expected error", tc.p, tc.v)
		}
	}
	if _, err := b.Get(Position{Row: 9, Col: 9}); err == nil {
		t.Error("Get out of bounds: expected error")
	}
}

func TestCluesEmptyInvariant(t *testing.T) {
	b, _ := New(3)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		p := Position{Row: rng.Intn(9), Col: rng.Intn(9)}
		_ = b.Set(p, rng.Intn(10))
		if b.Clues()+b.Empty() != b.TotalCells() {
			t.Fatalf("step %d: clues %d + empty %d != %d", i, b.Clues(), b.Empty(), b.TotalCells())
		}
	}

	clues := b.Clues()
	b.UpdateStats()
	if b.Clues() != clues {
		t.Errorf("UpdateStats changed clue count: %d -> %d", clues, b.Clues())
	}
}

func TestCloneIsDeep(t *testing.T) {
	b, _ := New(2)
	_ = b.Set(Position{Row: 1, Col: 1}, 3)

	cp := b.Clone()
	if !b.Equal(cp) {
		t.Fatal("clone differs from original")
	}
	_ = cp.Set(Position{Row: 1, Col: 1}, 4)
	if v, _ := b.Get(Position{Row: 1, Col: 1}); v != 3 {
		t.Error("mutating clone leaked into original")
	}
}

func TestPermutationIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Permutation(rng, 9, 1)
	seen := make(map[int]bool)
	for _, v := range p {
		if v < 1 || v > 9 || seen[v] {
			t.Fatalf("not a permutation of 1..9: %v", p)
		}
		seen[v] = true
	}
}

func TestPermutationReproducible(t *testing.T) {
	a := Permutation(rand.New(rand.NewSource(42)), 16, 1)
	b := Permutation(rand.New(rand.NewSource(42)), 16, 1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed, different permutations: %v vs %v", a, b)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b, _ := New(3)
	_ = b.Set(Position{Row: 0, Col: 0}, 5)
	_ = b.Set(Position{Row: 8, Col: 8}, 9)

	s := Encode(b)
	if len(s) != 81 {
		t.Fatalf("encoded length %d", len(s))
	}
	got, err := Decode(3, s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !b.Equal(got) {
		t.Error("round trip lost cells")
	}

	// Large boards use the comma form.
	big, _ := New(4)
	_ = big.Set(Position{Row: 3, Col: 7}, 16)
	got2, err := Decode(4, Encode(big))
	if err != nil {
		t.Fatalf("Decode 16x16: %v", err)
	}
	if !big.Equal(got2) {
		t.Error("16x16 round trip lost cells")
	}
}
