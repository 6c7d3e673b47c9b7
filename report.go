package montyhall

import (
	"fmt"
	"io"
	"strconv"
)

// Reporter prints human readable results of a run.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter that writes to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Banner announces the start of a run.
func (r *Reporter) Banner(cfg Config) {
	fmt.Fprintf(r.w, "Begin %d iterations with strategy %v\n", cfg.Iterations, cfg.Strategy)
}

// Report prints the progress so far and the win rate of each configured strategy.
func (r *Reporter) Report(s *State) {
	fmt.Fprintf(r.w, "Tested %d of %d iterations\n", s.IterationsPerformed, s.Config.Iterations)
	if s.Config.Strategy.ReportsStay() {
		r.strategyStatus(Stay, s.StayWins, s.IterationsPerformed)
	}
	if s.Config.Strategy.ReportsSwitch() {
		r.strategyStatus(Switch, s.SwitchWins(), s.IterationsPerformed)
	}
}

func (r *Reporter) strategyStatus(strategy Strategy, wins, performed uint64) {
	rate := strconv.FormatFloat(WinRate(wins, performed), 'f', -1, 64)
	fmt.Fprintf(r.w, "\t%v wins %d times (win rate: %s%%)\n", strategy, wins, rate)
}

// Trial narrates a single game. s must already include t.
func (r *Reporter) Trial(s *State, t Trial) {
	goats := t.Stage.Goats()
	fmt.Fprintf(r.w, "Test %d of %d:\n"+
		"\tCar behind %v, Goats behind %v and %v\n"+
		"\tContestant Chooses %v\n"+
		"\tMonty Opens %v and reveals a goat\n",
		s.IterationsPerformed, s.Config.Iterations,
		t.Stage.Car(), goats[0], goats[1], t.Pick, t.Opened)
}

// WinRate returns wins as a percentage of performed trials, or 0 if none were performed.
func WinRate(wins, performed uint64) float64 {
	if performed == 0 {
		return 0
	}

	return 100 * float64(wins) / float64(performed)
}
