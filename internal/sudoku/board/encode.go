package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders the board as a compact cell string: for N <= 9 one digit
// per cell ("0" = empty), for larger boards comma-separated values. Cells
// run row-major.
func Encode(b *Board) string {
	if b.n <= 9 {
		var sb strings.Builder
		sb.Grow(b.TotalCells())
		for _, v := range b.cells {
			sb.WriteByte('0' + byte(v))
		}
		return sb.String()
	}
	parts := make([]string, len(b.cells))
	for i, v := range b.cells {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Decode rebuilds a board of subgrid size k from Encode output.
func Decode(k int, s string) (*Board, error) {
	b, err := New(k)
	if err != nil {
		return nil, err
	}
	n := b.n

	var vals []int
	if n <= 9 && !strings.Contains(s, ",") {
		if len(s) != n*n {
			return nil, fmt.Errorf("board: encoded length %d, want %d", len(s), n*n)
		}
		vals = make([]int, n*n)
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("board: invalid character %q at %d", c, i)
			}
			vals[i] = int(c - '0')
		}
	} else {
		parts := strings.Split(s, ",")
		if len(parts) != n*n {
			return nil, fmt.Errorf("board: encoded cell count %d, want %d", len(parts), n*n)
		}
		vals = make([]int, n*n)
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("board: invalid cell %q at %d", p, i)
			}
			vals[i] = v
		}
	}

	for i, v := range vals {
		if v < 0 || v > n {
			return nil, fmt.Errorf("%w: v=%d at cell %d", ErrOutOfRange, v, i)
		}
		b.cells[i] = v
	}
	b.UpdateStats()
	return b, nil
}
