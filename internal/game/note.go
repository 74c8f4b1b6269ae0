package game

import (
	"time"
)

// NoteID is a stable identity handed out by the Track. Ids are never
// reused within a session, so a stale id simply fails to resolve.
type NoteID uint64

type Kind uint8

const (
	KindNormal Kind = iota
	KindHold
)

type Note struct {
	ID   NoteID
	Lane int
	Kind Kind

	Y    float64       // Current fall position, in track units
	Time time.Duration // The simulation time the note spawned at

	// This is state for hold notes only
	TimeEnd time.Duration // The time the note should be released
}
