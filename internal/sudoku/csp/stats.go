package csp

// Stats accumulates counters for one solving invocation. Counters are
// additive; Reset is called at the start of each outer attempt.
type Stats struct {
	AC3Calls         int
	ValuesEliminated int
	CellsAssigned    int
	TotalBacktracks  int
	MaxDepth         int
	TimeMS           int64
}

// Reset zeroes every counter.
func (s *Stats) Reset() { *s = Stats{} }

// observeDepth raises MaxDepth if depth exceeds it.
func (s *Stats) observeDepth(depth int) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

// Map flattens the counters for transport payloads.
func (s *Stats) Map() map[string]int {
	return map[string]int{
		"ac3_calls":         s.AC3Calls,
		"values_eliminated": s.ValuesEliminated,
		"cells_assigned":    s.CellsAssigned,
		"total_backtracks":  s.TotalBacktracks,
		"max_depth":         s.MaxDepth,
		"time_ms":           int(s.TimeMS),
	}
}
