package montyhall

import (
	"bytes"
	"io"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step every time it is read.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func TestRun_IterationsPerformed(t *testing.T) {
	for _, n := range []uint64{1, 2, 10, 1000} {
		for _, strategy := range []Strategy{Stay, Switch, Both} {
			cfg := Config{Iterations: n, Strategy: strategy}
			state := Run(cfg, io.Discard, WithRand(rand.New(rand.NewSource(int64(n)))))
			if state.IterationsPerformed != n {
				t.Errorf("%+v: performed %d iterations", cfg, state.IterationsPerformed)
			}
			if state.StayWins > state.IterationsPerformed {
				t.Errorf("%+v: %d stay wins out of %d", cfg, state.StayWins, state.IterationsPerformed)
			}
			if state.StayWins+state.SwitchWins() != state.IterationsPerformed {
				t.Errorf("%+v: wins do not sum to iterations: %+v", cfg, state)
			}
		}
	}
}

func TestRun_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Iterations: 10, Strategy: Both, Logging: true}
	state := Run(cfg, &buf, WithRand(rand.New(rand.NewSource(42))))
	if state.IterationsPerformed != 10 {
		t.Fatalf("performed %d iterations, expected 10", state.IterationsPerformed)
	}

	out := buf.String()
	if n := strings.Count(out, "Monty Opens"); n != 10 {
		t.Errorf("got %d narrated trials, expected 10", n)
	}
	if !strings.HasPrefix(out, "Test 1 of 10:\n") || !strings.Contains(out, "Test 10 of 10:\n") {
		t.Errorf("unexpected narration: %q", out)
	}
	if strings.Contains(out, "Tested") {
		t.Errorf("progress snapshots should not be printed while narrating: %q", out)
	}
}

func TestRun_Snapshots(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0), step: 600 * time.Millisecond}
	cfg := Config{Iterations: 10, Strategy: Stay}
	Run(cfg, &buf, WithRand(rand.New(rand.NewSource(1))), WithClock(clock.Now))

	// The clock reads 1.2s after every second trial.
	if n := strings.Count(buf.String(), "Tested "); n != 5 {
		t.Errorf("got %d snapshots, expected 5: %q", n, buf.String())
	}
	if !strings.Contains(buf.String(), "Tested 2 of 10 iterations\n") {
		t.Errorf("missing snapshot after second trial: %q", buf.String())
	}
}

func TestRun_NoSnapshotsBeforeInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	cfg := Config{Iterations: 100, Strategy: Both}
	Run(cfg, &buf, WithRand(rand.New(rand.NewSource(1))), WithClock(clock.Now))
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRun_SnapshotInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	cfg := Config{Iterations: 100, Strategy: Both}
	Run(cfg, &buf, WithRand(rand.New(rand.NewSource(1))), WithClock(clock.Now),
		WithSnapshotInterval(10*time.Millisecond))
	if n := strings.Count(buf.String(), "Tested "); n != 10 {
		t.Errorf("got %d snapshots, expected 10", n)
	}
}

func TestRun_Convergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	cfg := Config{Iterations: 200000, Strategy: Both}
	state := Run(cfg, io.Discard, WithRand(rand.New(rand.NewSource(1234))))
	stayRate := WinRate(state.StayWins, state.IterationsPerformed)
	switchRate := WinRate(state.SwitchWins(), state.IterationsPerformed)
	if math.Abs(stayRate-100.0/3) > 1 {
		t.Errorf("stay win rate %v%%, expected about 33.3%%", stayRate)
	}
	if math.Abs(switchRate-200.0/3) > 1 {
		t.Errorf("switch win rate %v%%, expected about 66.7%%", switchRate)
	}
}

func TestState_Record(t *testing.T) {
	s := NewState(Config{Iterations: 3, Strategy: Both})
	s.Record(true)
	s.Record(false)
	if !s.NeedsAnotherIteration() {
		t.Error("should need a third iteration")
	}
	s.Record(false)
	if s.NeedsAnotherIteration() {
		t.Error("should be done after three iterations")
	}
	if s.StayWins != 1 || s.SwitchWins() != 2 {
		t.Errorf("got %d stay wins and %d switch wins, expected 1 and 2", s.StayWins, s.SwitchWins())
	}
}
