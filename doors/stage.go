package doors

import (
	"math/rand"
)

// Stage records where the car was hidden for a single game.
// The two remaining doors hide goats.
type Stage struct {
	car Door
}

// NewStage sets up the stage with the car behind the given Door.
func NewStage(car Door) Stage {
	assertValid(car)
	return Stage{car: car}
}

// Car returns the door hiding the car.
func (s Stage) Car() Door {
	return s.car
}

// Goats returns the two doors hiding goats, in ascending order.
func (s Stage) Goats() [2]Door {
	var result [2]Door
	n := 0
	for _, d := range all {
		if d != s.car {
			result[n] = d
			n++
		}
	}

	return result
}

// HostOpens returns the goat door the host reveals after the contestant picks.
//
// The host never opens the picked door or the car. If the contestant picked
// the car, either goat may be revealed and one is chosen uniformly at random.
func (s Stage) HostOpens(pick Door, rng *rand.Rand) Door {
	assertValid(pick)
	goats := s.Goats()
	switch pick {
	case goats[0]:
		return goats[1]
	case goats[1]:
		return goats[0]
	}

	return goats[rng.Intn(len(goats))]
}

// Remaining returns the one door left closed after the host opens a goat door,
// i.e. the door a switching contestant ends up with.
func Remaining(pick, opened Door) Door {
	assertValid(pick)
	assertValid(opened)
	for _, d := range all {
		if d != pick && d != opened {
			return d
		}
	}

	panic("host opened the contestant's door")
}
