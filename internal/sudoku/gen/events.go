package gen

import "sudoku-engine/internal/sudoku/board"

// EventType identifies one step of generation progress.
type EventType int

const (
	EventGenerationStart EventType = iota
	EventGenerationComplete
	EventPhase1Start
	EventPhase1CellSelected
	EventPhase1Complete
	EventPhase2Start
	EventPhase2CellSelected
	EventPhase2Complete
	EventPhase3Start
	EventPhase3CellRemoved
	EventPhase3CellKept
	EventPhase3Complete
)

// String returns the event's display name.
func (t EventType) String() string {
	switch t {
	case EventGenerationStart:
		return "generation-start"
	case EventGenerationComplete:
		return "generation-complete"
	case EventPhase1Start:
		return "phase1-start"
	case EventPhase1CellSelected:
		return "phase1-cell-selected"
	case EventPhase1Complete:
		return "phase1-complete"
	case EventPhase2Start:
		return "phase2-start"
	case EventPhase2CellSelected:
		return "phase2-cell-selected"
	case EventPhase2Complete:
		return "phase2-complete"
	case EventPhase3Start:
		return "phase3-start"
	case EventPhase3CellRemoved:
		return "phase3-cell-removed"
	case EventPhase3CellKept:
		return "phase3-cell-kept"
	case EventPhase3Complete:
		return "phase3-complete"
	}
	return "unknown"
}

// Event is one progress notification. Events are informational only and
// never affect control flow. Observers must not mutate the board.
type Event struct {
	Type         EventType
	Board        *board.Board
	Phase        int // 0 for generation-level events, 1..3 for phases
	CellsRemoved int // running total across all phases
	Pos          *board.Position
	Value        int
}

// Observer receives events synchronously, in production order.
type Observer func(Event)

// emitter wraps the optional observer so call sites stay unconditional.
type emitter struct {
	obs     Observer
	removed int
}

func (e *emitter) emit(t EventType, b *board.Board, phase int) {
	if e.obs == nil {
		return
	}
	e.obs(Event{Type: t, Board: b, Phase: phase, CellsRemoved: e.removed})
}

func (e *emitter) emitCell(t EventType, b *board.Board, phase int, p board.Position, v int) {
	if e.obs == nil {
		return
	}
	pos := p
	e.obs(Event{Type: t, Board: b, Phase: phase, CellsRemoved: e.removed, Pos: &pos, Value: v})
}
