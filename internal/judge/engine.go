package judge

import (
	"math"
	"time"

	"git.lost.host/meutraa/beatfall/internal/game"
)

// Outcome describes one judged press for the presentation layer.
type Outcome struct {
	Tier     int // index into the tier table, last index = miss
	Lane     int
	NoteID   game.NoteID // zero on a mis-press
	Position float64
	Distance float64
	Score    int
	At       time.Duration
}

func (o Outcome) Hit() bool {
	return o.NoteID != 0
}

// Engine classifies lane presses against the nearest note in the lane.
// Tiers are ordered tightest window first; the final tier is the
// unbounded miss tier, exactly like the config judgement table.
type Engine struct {
	track *game.Track
	state *game.State
	tiers []game.Judgement
	line  float64
}

func NewEngine(track *game.Track, state *game.State, tiers []game.Judgement, line float64) *Engine {
	return &Engine{
		track: track,
		state: state,
		tiers: tiers,
		line:  line,
	}
}

// Classify returns the tier index for a distance from the line, or the
// miss tier when the distance falls outside the widest window.
func Classify(tiers []game.Judgement, d float64) int {
	for i := 0; i < len(tiers)-1; i++ {
		if d < tiers[i].Window {
			return i
		}
	}
	return len(tiers) - 1
}

// Judge resolves a lane press. A press with no candidate inside the hit
// window is a mis-press: it breaks the combo but costs no health, which
// is deliberate and distinct from a fall-through miss.
func (e *Engine) Judge(lane int, at time.Duration) (Outcome, error) {
	if lane < 0 || lane >= e.track.Lanes() {
		return Outcome{}, game.ErrInvalidLane
	}

	out := Outcome{
		Tier: len(e.tiers) - 1,
		Lane: lane,
		At:   at,
	}

	id, found := e.track.NearestInLane(lane, e.line)
	if !found {
		e.state.BreakCombo()
		return out, nil
	}

	note, _ := e.track.Note(id)
	d := math.Abs(note.Y - e.line)
	tier := Classify(e.tiers, d)
	if tier == len(e.tiers)-1 {
		// Candidate outside the hit window, still a mis-press
		e.state.BreakCombo()
		return out, nil
	}

	e.track.Remove(id)
	e.state.Hit(tier, e.tiers[tier].Score)

	out.Tier = tier
	out.NoteID = id
	out.Position = note.Y
	out.Distance = d
	out.Score = e.tiers[tier].Score
	return out, nil
}
