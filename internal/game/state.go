package game

const MaxHealth = 100

// State is the per-session score accounting. Counts is indexed by
// judgement tier, with the last index reserved for fall-through misses.
type State struct {
	Score    int
	Combo    int
	MaxCombo int
	Health   int
	Spawned  int
	Counts   []int
}

func NewState(tiers int) *State {
	return &State{
		Health: MaxHealth,
		Counts: make([]int, tiers),
	}
}

func (s *State) Hit(tier int, score int) {
	s.Score += score
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.Counts[tier]++
}

func (s *State) BreakCombo() {
	s.Combo = 0
}

// Damage lowers health, clamped at zero. Health never recovers.
func (s *State) Damage(amount int) {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
}

func (s *State) Miss() {
	s.Counts[len(s.Counts)-1]++
}

// Accuracy is the hit fraction over everything spawned, as a percentage.
func (s *State) Accuracy() float64 {
	if s.Spawned == 0 {
		return 0
	}
	hits := 0
	for _, c := range s.Counts[:len(s.Counts)-1] {
		hits += c
	}
	return float64(hits) / float64(s.Spawned) * 100
}
