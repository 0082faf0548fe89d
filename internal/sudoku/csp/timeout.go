package csp

import (
	"time"

	"sudoku-engine/pkg/constants"
)

// timeout is the invocation-scoped budget record. Every solver operation
// calls tick(), which counts an op and re-reads the clock once per
// TimeoutCheckInterval ops. Once triggered it stays set until the next
// invocation builds a fresh record.
type timeout struct {
	start     time.Time
	budget    time.Duration
	triggered bool
	ops       int
}

func newTimeout(budget time.Duration) *timeout {
	return &timeout{start: time.Now(), budget: budget}
}

// tick counts one operation and samples the clock when due.
func (t *timeout) tick() {
	if t.triggered {
		return
	}
	t.ops++
	if t.ops%constants.TimeoutCheckInterval == 0 && time.Since(t.start) > t.budget {
		t.triggered = true
	}
}

// expired is a pure read; it never counts an op.
func (t *timeout) expired() bool { return t.triggered }

// elapsed returns wall time since the invocation started.
func (t *timeout) elapsed() time.Duration { return time.Since(t.start) }
