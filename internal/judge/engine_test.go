package judge

import (
	"testing"
	"time"

	"git.lost.host/meutraa/beatfall/internal/game"
)

var tiers = []game.Judgement{
	{Window: 20, Score: 300, Name: "Perfect"},
	{Window: 60, Score: 100, Name: "Good"},
	{Window: -1, Score: 0, Name: "Miss"},
}

var classifyTests = map[float64]int{
	0:    0,
	10:   0,
	19.9: 0,
	20:   1,
	50:   1,
	60:   2,
	1000: 2,
}

func TestClassify(t *testing.T) {
	for d, expected := range classifyTests {
		if out := Classify(tiers, d); out != expected {
			t.Log("d       ", d)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func fixture() (*game.Track, *game.State, *Engine) {
	track := game.NewTrack(1, 0, 100)
	state := game.NewState(len(tiers))
	return track, state, NewEngine(track, state, tiers, 100)
}

func TestJudgePerfect(t *testing.T) {
	track, state, e := fixture()
	id, _ := track.Spawn(0, 0)
	track.AdvanceAll(900 * time.Millisecond) // Y=90, distance 10

	out, err := e.Judge(0, 900*time.Millisecond)
	if nil != err {
		t.Fatal(err)
	}
	if !out.Hit() || out.Tier != 0 || out.NoteID != id || out.Distance != 10 {
		t.Log("out", out)
		t.Fail()
	}
	if state.Score != 300 || state.Combo != 1 || state.MaxCombo != 1 {
		t.Log("state", state)
		t.Fail()
	}
	if track.Len() != 0 {
		t.Log("judged note not removed")
		t.Fail()
	}
}

func TestJudgeGood(t *testing.T) {
	track, state, e := fixture()
	track.Spawn(0, 0)
	track.AdvanceAll(1400 * time.Millisecond) // Y=140, distance 40

	out, err := e.Judge(0, 1400*time.Millisecond)
	if nil != err {
		t.Fatal(err)
	}
	if !out.Hit() || out.Tier != 1 || out.Score != 100 {
		t.Log("out", out)
		t.Fail()
	}
	if state.Score != 100 || state.Counts[1] != 1 {
		t.Log("state", state)
		t.Fail()
	}
}

// A press with the only candidate outside the hit window breaks the
// combo, costs no health, and leaves the note falling.
func TestJudgeMissPressOutOfWindow(t *testing.T) {
	track, state, e := fixture()
	track.Spawn(0, 0) // Y=0, distance 100
	state.Hit(0, 300)

	out, err := e.Judge(0, 0)
	if nil != err {
		t.Fatal(err)
	}
	if out.Hit() || out.Tier != len(tiers)-1 {
		t.Log("out", out)
		t.Fail()
	}
	if state.Combo != 0 || state.Health != game.MaxHealth {
		t.Log("combo", state.Combo, "health", state.Health)
		t.Fail()
	}
	if track.Len() != 1 {
		t.Log("mis-press removed the note")
		t.Fail()
	}
}

func TestJudgeMissPressEmptyLane(t *testing.T) {
	_, state, e := fixture()
	state.Hit(0, 300)

	out, err := e.Judge(0, 0)
	if nil != err {
		t.Fatal(err)
	}
	if out.Hit() || state.Combo != 0 || state.Health != game.MaxHealth {
		t.Log("out", out, "state", state)
		t.Fail()
	}
}

func TestJudgeInvalidLane(t *testing.T) {
	_, _, e := fixture()
	if _, err := e.Judge(1, 0); err != game.ErrInvalidLane {
		t.Log("err", err)
		t.Fail()
	}
}

// Two notes in the lane: the earlier spawned one is judged first.
func TestJudgeFIFO(t *testing.T) {
	track, _, e := fixture()
	first, _ := track.Spawn(0, 0)
	track.AdvanceAll(time.Second) // first Y=100
	second, _ := track.Spawn(0, time.Second)
	track.AdvanceAll(time.Second) // first Y=200, second Y=100

	// first is 100 past the line, second is on it; second wins on
	// distance, but once it is gone the next press finds nothing in
	// window, never the fallen-through first
	out, err := e.Judge(0, 2*time.Second)
	if nil != err {
		t.Fatal(err)
	}
	if out.NoteID != second {
		t.Log("expected", second, "got", out.NoteID)
		t.Fail()
	}

	out, err = e.Judge(0, 2*time.Second)
	if nil != err {
		t.Fatal(err)
	}
	if out.Hit() {
		t.Log("hit a note outside the window:", out.NoteID, first)
		t.Fail()
	}
}
