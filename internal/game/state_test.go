package game

import (
	"testing"
)

func TestHealthClamp(t *testing.T) {
	s := NewState(3)
	if s.Health != MaxHealth {
		t.Fatal("health", s.Health)
	}
	for i := 0; i < 50; i++ {
		s.Damage(10)
	}
	if s.Health != 0 {
		t.Log("health", s.Health)
		t.Fail()
	}
}

func TestComboAccounting(t *testing.T) {
	s := NewState(3)

	s.Hit(0, 300)
	s.Hit(1, 100)
	s.Hit(0, 300)
	if s.Combo != 3 || s.MaxCombo != 3 || s.Score != 700 {
		t.Log("combo", s.Combo, "max", s.MaxCombo, "score", s.Score)
		t.Fail()
	}

	s.BreakCombo()
	if s.Combo != 0 || s.MaxCombo != 3 {
		t.Log("combo", s.Combo, "max", s.MaxCombo)
		t.Fail()
	}

	s.Hit(0, 300)
	if s.Combo != 1 || s.MaxCombo != 3 {
		t.Log("max combo regressed:", s.MaxCombo)
		t.Fail()
	}
}

var accuracyTests = map[*State]float64{
	{Spawned: 10, Counts: []int{6, 2, 2}}: 80.0,
	{Spawned: 0, Counts: []int{0, 0, 0}}:  0.0,
	{Spawned: 4, Counts: []int{4, 0, 0}}:  100.0,
	{Spawned: 8, Counts: []int{0, 0, 8}}:  0.0,
}

func TestAccuracy(t *testing.T) {
	for state, expected := range accuracyTests {
		if out := state.Accuracy(); out != expected {
			t.Log("state   ", state)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}
