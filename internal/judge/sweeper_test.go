package judge

import (
	"testing"
	"time"

	"git.lost.host/meutraa/beatfall/internal/game"
)

func sweepFixture(penalty int) (*game.Track, *game.State, *Sweeper) {
	track := game.NewTrack(2, 0, 100)
	state := game.NewState(len(tiers))
	return track, state, NewSweeper(track, state, 100, 60, penalty)
}

func TestSweepFallThrough(t *testing.T) {
	track, state, s := sweepFixture(10)
	state.Hit(0, 300)
	state.Hit(0, 300)

	fallen, _ := track.Spawn(0, 0)
	track.AdvanceAll(2 * time.Second) // Y=200, past 100+60
	live, _ := track.Spawn(1, 2*time.Second)

	missed := s.Sweep()
	if len(missed) != 1 || missed[0].NoteID != fallen || missed[0].Lane != 0 {
		t.Log("missed", missed)
		t.Fail()
	}
	if state.Combo != 0 || state.Health != 90 || state.Counts[len(tiers)-1] != 1 {
		t.Log("state", state)
		t.Fail()
	}
	if _, ok := track.Note(live); !ok || track.Len() != 1 {
		t.Log("sweep touched a live note")
		t.Fail()
	}
}

func TestSweepInsideWindowKept(t *testing.T) {
	track, state, s := sweepFixture(10)
	track.Spawn(0, 0)
	track.AdvanceAll(1600 * time.Millisecond) // Y=160, exactly line+window

	if missed := s.Sweep(); len(missed) != 0 {
		t.Log("missed", missed)
		t.Fail()
	}
	if state.Health != game.MaxHealth {
		t.Fail()
	}
}

func TestSweepHealthClamp(t *testing.T) {
	track, state, s := sweepFixture(30)
	for i := 0; i < 5; i++ {
		track.Spawn(0, 0)
	}
	track.AdvanceAll(10 * time.Second)

	missed := s.Sweep()
	if len(missed) != 5 {
		t.Fatal("missed", len(missed))
	}
	// 5 * 30 damage clamps at 0, never below
	if state.Health != 0 {
		t.Log("health", state.Health)
		t.Fail()
	}
	if track.Len() != 0 {
		t.Fail()
	}
}
