package board

// ============================================================================
// Validator - Placement Legality and Bounded Solution Counting
// ============================================================================

// IsSafe reports whether v can sit at p without duplicating v in p's row,
// column, or box. The cell at p itself is treated as empty, so callers may
// probe a value already placed there.
func IsSafe(b *Board, p Position, v int) bool {
	n, k := b.n, b.k

	// Row and column
	for i := 0; i < n; i++ {
		if i != p.Col && b.at(p.Row, i) == v {
			return false
		}
		if i != p.Row && b.at(i, p.Col) == v {
			return false
		}
	}

	// Box
	br, bc := (p.Row/k)*k, (p.Col/k)*k
	for r := br; r < br+k; r++ {
		for c := bc; c < bc+k; c++ {
			if (r != p.Row || c != p.Col) && b.at(r, c) == v {
				return false
			}
		}
	}

	return true
}

// FirstEmpty returns the first empty cell in row-major order, or ok=false
// when the board is complete.
func FirstEmpty(b *Board) (Position, bool) {
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if b.at(r, c) == 0 {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// CountSolutions counts completions of the current partial board, stopping
// as soon as the count reaches limit. The board is restored to its input
// state before returning. A uniqueness check is CountSolutions(b, 2) == 1.
func CountSolutions(b *Board, limit int) int {
	if limit <= 0 {
		return 0
	}
	count := 0
	countSolutions(b, limit, &count)
	return count
}

func countSolutions(b *Board, limit int, count *int) {
	if *count >= limit {
		return
	}

	p, ok := FirstEmpty(b)
	if !ok {
		*count++
		return
	}

	idx := p.Row*b.n + p.Col
	for v := 1; v <= b.n; v++ {
		if !IsSafe(b, p, v) {
			continue
		}
		b.cells[idx] = v
		countSolutions(b, limit, count)
		b.cells[idx] = 0
		if *count >= limit {
			return
		}
	}
}

// Validate reports whether the board has no duplicate values in any row,
// column, or box. Empty cells are ignored.
func Validate(b *Board) bool {
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			v := b.at(r, c)
			if v != 0 && !IsSafe(b, Position{Row: r, Col: c}, v) {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether the board is full and valid.
func IsComplete(b *Board) bool {
	if _, ok := FirstEmpty(b); ok {
		return false
	}
	return Validate(b)
}
