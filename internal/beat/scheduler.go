package beat

import (
	"math/rand"
	"time"
)

// Directive asks the caller to spawn one note.
type Directive struct {
	Lane int
	At   time.Duration // The beat timestamp that produced the spawn
}

// Scheduler walks an ordered beat-timestamp sequence with a cursor that
// never rewinds, emitting one spawn directive per consumed beat.
type Scheduler struct {
	beats  []time.Duration
	cursor int
	lanes  int
	rng    *rand.Rand
}

func NewScheduler(beats []time.Duration, lanes int, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		beats: beats,
		lanes: lanes,
		rng:   rng,
	}
}

// Tick drains every beat due at now. A coarse tick after a time jump
// can make several beats due at once; each still gets its own
// directive, in timestamp order.
func (s *Scheduler) Tick(now time.Duration) []Directive {
	var due []Directive
	for s.cursor < len(s.beats) && s.beats[s.cursor] <= now {
		due = append(due, Directive{
			Lane: s.rng.Intn(s.lanes),
			At:   s.beats[s.cursor],
		})
		s.cursor++
	}
	return due
}

func (s *Scheduler) Exhausted() bool {
	return s.cursor >= len(s.beats)
}

func (s *Scheduler) Remaining() int {
	return len(s.beats) - s.cursor
}
