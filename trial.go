package montyhall

import (
	"math/rand"

	"github.com/timpalpant/montyhall/doors"
)

// Trial is the outcome of a single game.
type Trial struct {
	Stage doors.Stage
	// The door the contestant initially picked.
	Pick doors.Door
	// The goat door revealed by the host. Only set if HostPlayed.
	Opened     doors.Door
	HostPlayed bool
}

// PlayTrial plays one game with an independently placed car and contestant pick.
//
// Which door the host opens has no bearing on who wins, so the host only plays
// if withHost is set (i.e. when the game is going to be narrated).
func PlayTrial(rng *rand.Rand, withHost bool) Trial {
	car := doors.Random(rng)
	pick := doors.Random(rng)
	t := Trial{
		Stage: doors.NewStage(car),
		Pick:  pick,
	}

	if withHost {
		t.Opened = t.Stage.HostOpens(pick, rng)
		t.HostPlayed = true
	}

	return t
}

// StayWins returns whether keeping the initial pick wins the car.
// Switching wins exactly when staying does not.
func (t Trial) StayWins() bool {
	return t.Pick == t.Stage.Car()
}

// SwitchWins returns whether taking the other closed door wins the car.
func (t Trial) SwitchWins() bool {
	if t.HostPlayed {
		return doors.Remaining(t.Pick, t.Opened) == t.Stage.Car()
	}

	return !t.StayWins()
}
