package game

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidLane is a contract violation: spawn and judge callers choose
// lanes from the configured lane count, so this should never surface.
var ErrInvalidLane = errors.New("lane index out of range")

// Track owns every live note. Notes are stored in a slot map keyed by
// NoteID with a separate spawn-order index, so removal by identity is
// idempotent and per-lane scans see notes in FIFO order.
type Track struct {
	lanes     int
	spawnY    float64
	fallSpeed float64 // units per second

	nextID NoteID
	slots  map[NoteID]*Note
	order  []NoteID // spawn order, compacted lazily
}

func NewTrack(lanes int, spawnY, fallSpeed float64) *Track {
	return &Track{
		lanes:     lanes,
		spawnY:    spawnY,
		fallSpeed: fallSpeed,
		slots:     map[NoteID]*Note{},
	}
}

func (t *Track) Lanes() int {
	return t.lanes
}

func (t *Track) Len() int {
	return len(t.slots)
}

func (t *Track) Spawn(lane int, at time.Duration) (NoteID, error) {
	if lane < 0 || lane >= t.lanes {
		return 0, ErrInvalidLane
	}
	t.nextID++
	id := t.nextID
	t.slots[id] = &Note{
		ID:   id,
		Lane: lane,
		Kind: KindNormal,
		Y:    t.spawnY,
		Time: at,
	}
	t.order = append(t.order, id)
	return id, nil
}

// AdvanceAll moves every note down by the elapsed simulation time.
// Callers must not advance while the session is paused.
func (t *Track) AdvanceAll(dt time.Duration) {
	dy := t.fallSpeed * dt.Seconds()
	for _, n := range t.slots {
		n.Y += dy
	}
}

// NearestInLane returns the live note in lane closest to target.
// Ties break to the earliest-spawned note, which under uniform fall
// speed is also the first one scanned.
func (t *Track) NearestInLane(lane int, target float64) (NoteID, bool) {
	var best NoteID
	found := false
	distance := math.Inf(1)
	for _, id := range t.order {
		n, ok := t.slots[id]
		if !ok || n.Lane != lane {
			continue
		}
		d := math.Abs(n.Y - target)
		if d < distance {
			distance = d
			best = n.ID
			found = true
		}
	}
	return best, found
}

// Note returns a snapshot copy of the note, never the owned value.
func (t *Track) Note(id NoteID) (Note, bool) {
	n, ok := t.slots[id]
	if !ok {
		return Note{}, false
	}
	return *n, true
}

// Remove is a no-op for ids already removed, so a judge and a sweep
// racing over the same note within a tick cannot fault.
func (t *Track) Remove(id NoteID) {
	delete(t.slots, id)
	if len(t.order) > 16 && len(t.slots) < len(t.order)/2 {
		t.compact()
	}
}

func (t *Track) compact() {
	nd := t.order[:0]
	for _, id := range t.order {
		if _, ok := t.slots[id]; ok {
			nd = append(nd, id)
		}
	}
	t.order = nd
}

// Notes returns snapshot copies in spawn order, for rendering.
func (t *Track) Notes() []Note {
	notes := make([]Note, 0, len(t.slots))
	for _, id := range t.order {
		if n, ok := t.slots[id]; ok {
			notes = append(notes, *n)
		}
	}
	return notes
}
