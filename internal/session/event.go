package session

import (
	"time"

	"github.com/google/uuid"

	"git.lost.host/meutraa/beatfall/internal/clock"
	"git.lost.host/meutraa/beatfall/internal/game"
)

type EventKind uint8

const (
	EventSpawn EventKind = iota
	EventHit
	EventMiss // fall-through miss
	EventMissPress
	EventComboBreak
	EventGameOver
)

// Event is one render-relevant occurrence within a tick. The core never
// draws; the presentation layer consumes these.
type Event struct {
	Kind     EventKind
	Lane     int
	NoteID   game.NoteID
	Tier     int
	Position float64
	Score    int
}

// Snapshot is the render-ready view of the session after a tick.
type Snapshot struct {
	Time      time.Duration
	Clock     clock.State
	Countdown time.Duration

	Score    int
	Combo    int
	MaxCombo int
	Health   int
	Spawned  int
	Accuracy float64
	Counts   []int

	Notes  []game.Note
	Events []Event
	Done   bool
}

// Summary is the final session record handed to persistence. An aborted
// session has no summary at all.
type Summary struct {
	ID       uuid.UUID
	Score    int
	MaxCombo int
	Accuracy float64
	Perfect  int
	Good     int
	Missed   int
}
