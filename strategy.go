package montyhall

import (
	"github.com/pkg/errors"
)

// Strategy selects which contestant policies are reported on.
type Strategy uint8

const (
	Stay Strategy = iota
	Switch
	Both
)

var strategyStr = [...]string{
	"STAY",
	"SWITCH",
	"BOTH",
}

// String implements Stringer.
func (s Strategy) String() string {
	return strategyStr[s]
}

// ParseStrategy maps a command line token onto a Strategy.
// Tokens are matched exactly, so "stay" is rejected.
func ParseStrategy(s string) (Strategy, error) {
	for i, name := range strategyStr {
		if s == name {
			return Strategy(i), nil
		}
	}

	return Stay, errors.Wrapf(ErrStrategy, "%q", s)
}

// ReportsStay returns whether results for staying should be printed.
func (s Strategy) ReportsStay() bool {
	return s == Stay || s == Both
}

// ReportsSwitch returns whether results for switching should be printed.
func (s Strategy) ReportsSwitch() bool {
	return s == Switch || s == Both
}
