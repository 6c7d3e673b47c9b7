package doors

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Door identifies one of the three doors on stage.
// Doors are indexed from zero, but presented to the audience starting at one.
type Door uint8

const (
	Door1 Door = iota
	Door2
	Door3
)

// The number of doors on stage.
const NumDoors = 3

var all = [NumDoors]Door{Door1, Door2, Door3}

// All returns every Door in ascending order.
func All() [NumDoors]Door {
	return all
}

// Random draws a Door uniformly at random.
func Random(rng *rand.Rand) Door {
	return Door(rng.Intn(NumDoors))
}

func assertValid(d Door) {
	if d >= NumDoors {
		panic(fmt.Errorf("door %d is out of range", d))
	}
}

// Number returns the 1-based number painted on the Door.
func (d Door) Number() int {
	return int(d) + 1
}

// String implements Stringer.
func (d Door) String() string {
	return strconv.Itoa(d.Number())
}
