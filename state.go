package montyhall

// State accumulates the results of a run.
// It is owned by a single run loop and is not safe for concurrent use.
type State struct {
	Config Config

	IterationsPerformed uint64
	StayWins            uint64
}

// NewState returns an empty State for a run of cfg.
func NewState(cfg Config) *State {
	return &State{Config: cfg}
}

// NeedsAnotherIteration returns whether fewer trials than configured have been played.
func (s *State) NeedsAnotherIteration() bool {
	return s.IterationsPerformed < s.Config.Iterations
}

// Record counts one completed trial.
func (s *State) Record(stayWin bool) {
	s.IterationsPerformed++
	if stayWin {
		s.StayWins++
	}
}

// SwitchWins is derived: every trial is won by exactly one of the two strategies.
func (s *State) SwitchWins() uint64 {
	return s.IterationsPerformed - s.StayWins
}
