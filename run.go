package montyhall

import (
	"io"
	"math/rand"
	"time"

	"github.com/golang/glog"
)

// DefaultSnapshotInterval is how often progress is printed when trials are not narrated.
const DefaultSnapshotInterval = time.Second

type runParams struct {
	rng              *rand.Rand
	now              func() time.Time
	snapshotInterval time.Duration
}

// Option customizes a Run.
type Option func(*runParams)

// WithRand sets the source of randomness used to play trials.
func WithRand(rng *rand.Rand) Option {
	return func(p *runParams) { p.rng = rng }
}

// WithClock replaces time.Now when deciding whether to print a progress snapshot.
func WithClock(now func() time.Time) Option {
	return func(p *runParams) { p.now = now }
}

// WithSnapshotInterval sets the minimum time between progress snapshots.
func WithSnapshotInterval(d time.Duration) Option {
	return func(p *runParams) { p.snapshotInterval = d }
}

// Run plays cfg.Iterations trials, writing narration or periodic progress
// snapshots to w, and returns the final State. The final report is left to
// the caller.
func Run(cfg Config, w io.Writer, opts ...Option) *State {
	params := runParams{
		now:              time.Now,
		snapshotInterval: DefaultSnapshotInterval,
	}
	for _, opt := range opts {
		opt(&params)
	}
	if params.rng == nil {
		params.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := NewState(cfg)
	reporter := NewReporter(w)
	glog.Infof("Playing %d trials (strategy: %v, logging: %v)",
		cfg.Iterations, cfg.Strategy, cfg.Logging)

	start := time.Now()
	lastSnapshot := params.now()
	for state.NeedsAnotherIteration() {
		trial := PlayTrial(params.rng, cfg.Logging)
		state.Record(trial.StayWins())

		if cfg.Logging {
			reporter.Trial(state, trial)
		} else if now := params.now(); now.Sub(lastSnapshot) >= params.snapshotInterval {
			glog.V(1).Infof("Progress snapshot after %d trials", state.IterationsPerformed)
			reporter.Report(state)
			lastSnapshot = now
		}
	}

	elapsed := time.Since(start)
	tps := float64(state.IterationsPerformed) / elapsed.Seconds()
	glog.Infof("Finished %d trials (took %v, %.1f trials/sec)",
		state.IterationsPerformed, elapsed, tps)
	return state
}
