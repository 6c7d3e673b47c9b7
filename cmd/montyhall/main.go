// Estimate the win rate of staying or switching in the Monty Hall game.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/montyhall"
)

func main() {
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the current time)")
	if err := configureFlags(flag.CommandLine, os.Stdout); err != nil {
		panic(err)
	}
	flag.Parse()

	args := append([]string{os.Args[0]}, flag.Args()...)
	code := run(args, *seed, os.Stdout)
	glog.Flush()
	os.Exit(code)
}

// configureFlags sends flag errors and usage to w alongside the rest of the
// program's output, and defaults glog to stderr so that no log files are written.
func configureFlags(fs *flag.FlagSet, w io.Writer) error {
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "\nUSAGE: %s\n", montyhall.Usage)
	}

	if fs.Lookup("logtostderr") == nil {
		return nil
	}

	return fs.Set("logtostderr", "true")
}

func run(args []string, seed int64, w io.Writer) int {
	cfg, err := montyhall.ParseArgs(args)
	if err != nil {
		glog.Errorf("Invalid configuration: %v", err)
		fmt.Fprintf(w, "\nERROR: %v\n\nUSAGE: %s\n", err, montyhall.Usage)
		return 1
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	glog.V(1).Infof("Using random seed %d", seed)

	reporter := montyhall.NewReporter(w)
	reporter.Banner(cfg)
	state := montyhall.Run(cfg, w, montyhall.WithRand(rand.New(rand.NewSource(seed))))
	reporter.Report(state)
	return 0
}
