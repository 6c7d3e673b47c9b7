package montyhall

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DebugLogToken enables per-trial narration when given as the third argument.
const DebugLogToken = "DEBUGLOG"

// Usage is printed after any configuration error.
const Usage = "montyhall [iterations] [strategy]\n" +
	"\t Iterations:\tNumber of tests to run (1 or more)\n" +
	"\t Strategy:\tChoose between STAY, SWITCH, or BOTH\n" +
	"\t Logging:\tOptional.  Enter DEBUGLOG to enable"

var (
	ErrArgCount       = errors.New("incomplete argument list")
	ErrIterations     = errors.New("iterations argument failed to parse")
	ErrZeroIterations = errors.New("zero is an invalid number of iterations")
	ErrStrategy       = errors.New("strategy failed to parse")
)

// Config holds everything needed to run a simulation.
// It is built once from the command line and never modified.
type Config struct {
	Iterations uint64
	Strategy   Strategy
	Logging    bool
}

// ParseArgs builds a Config from the program name followed by
// <iterations> <strategy> [DEBUGLOG].
//
// An unrecognized third argument is ignored and leaves logging disabled.
func ParseArgs(args []string) (Config, error) {
	if len(args) != 3 && len(args) != 4 {
		return Config{}, errors.Wrapf(ErrArgCount, "got %d arguments", len(args)-1)
	}

	iterations, err := parseIterations(args[1])
	if err != nil {
		return Config{}, err
	}

	strategy, err := ParseStrategy(args[2])
	if err != nil {
		return Config{}, err
	}

	return Config{
		Iterations: iterations,
		Strategy:   strategy,
		Logging:    len(args) == 4 && args[3] == DebugLogToken,
	}, nil
}

func parseIterations(s string) (uint64, error) {
	// ParseUint rejects signs. A single leading "+" is allowed, "-" is not.
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrIterations, "%q", s)
	}

	if n == 0 {
		return 0, ErrZeroIterations
	}

	return n, nil
}
