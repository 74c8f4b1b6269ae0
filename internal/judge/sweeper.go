package judge

import (
	"git.lost.host/meutraa/beatfall/internal/game"
)

// Miss is a note that fell past the judgement line plus the hit window
// without being judged.
type Miss struct {
	NoteID   game.NoteID
	Lane     int
	Position float64
}

// Sweeper removes fallen-through notes once per tick, after note
// advancement, so a swept note can never also be judged in the same
// tick at a pre-advance position.
type Sweeper struct {
	track   *game.Track
	state   *game.State
	line    float64
	window  float64
	penalty int
}

func NewSweeper(track *game.Track, state *game.State, line, window float64, penalty int) *Sweeper {
	return &Sweeper{
		track:   track,
		state:   state,
		line:    line,
		window:  window,
		penalty: penalty,
	}
}

func (s *Sweeper) Sweep() []Miss {
	var missed []Miss
	for _, n := range s.track.Notes() {
		if n.Y <= s.line+s.window {
			continue
		}
		s.track.Remove(n.ID)
		s.state.BreakCombo()
		s.state.Damage(s.penalty)
		s.state.Miss()
		missed = append(missed, Miss{
			NoteID:   n.ID,
			Lane:     n.Lane,
			Position: n.Y,
		})
	}
	return missed
}
