// Command disentangle loads a puzzle definition, searches for the shortest
// disassembly it can find and prints the move sequence.
//
// Usage:
//
//	disentangle [-config run.yaml] [-max-steps N] [-progress N] [-output text|json] [-v] puzzle.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/disentangle/config"
	"github.com/katalvlaran/disentangle/parser"
	"github.com/katalvlaran/disentangle/runner"
	"github.com/katalvlaran/disentangle/solver"
)

var (
	configPath = flag.String("config", "", "YAML run configuration")
	maxSteps   = flag.Int("max-steps", 0, "stop after this many steps (0 = exhaust the search)")
	progress   = flag.Int("progress", 0, "log progress every N steps (0 disables periodic reports)")
	output     = flag.String("output", "", "solution format: text or json")
	verbose    = flag.Bool("v", false, "trace every search step")
	dumpConfig = flag.Bool("dump-config", false, "print the effective configuration and exit")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("disentangle: ")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
		return
	}
	if cfg.Puzzle == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	solved, err := run(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if !solved {
		os.Exit(1)
	}
}

// loadConfig merges the optional YAML file with explicitly set flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		case "progress":
			cfg.ProgressEvery = *progress
		case "output":
			cfg.Output = *output
		case "v":
			cfg.Debug = *verbose
		}
	})
	if flag.NArg() > 0 {
		cfg.Puzzle = flag.Arg(0)
	}

	return cfg, cfg.Validate()
}

// run solves cfg.Puzzle and writes the result to stdout. It reports whether
// a solution was found; an interrupted or step-limited search still prints
// the best sequence known so far.
func run(ctx context.Context, cfg *config.Config) (bool, error) {
	initial, err := parser.ReadFile(cfg.Puzzle)
	if err != nil {
		return false, err
	}

	opts := []solver.Option{}
	if cfg.Debug {
		opts = append(opts, solver.WithLogger(log.New(os.Stderr, "solver: ", log.Lmicroseconds)))
	}
	s, err := solver.New(initial, opts...)
	if err != nil {
		return false, err
	}

	r := runner.New(s,
		runner.WithMaxSteps(cfg.MaxSteps),
		runner.WithProgressEvery(cfg.ProgressEvery),
		runner.WithOnProgress(func(p runner.Progress) {
			log.Printf("run %s: %d steps, %d states, stack %d, best %d",
				p.RunID, p.Steps, p.Visited, p.StackDepth, p.BestDepth)
		}),
	)
	if err = r.Start(ctx); err != nil {
		return false, err
	}
	err = r.Wait()
	switch {
	case err == nil:
	case errors.Is(err, runner.ErrStepLimit), errors.Is(err, context.Canceled):
		log.Printf("search stopped early: %v", err)
	default:
		return false, err
	}

	if !s.Solved() {
		fmt.Fprintf(os.Stderr, "no solution found after %d steps\n", s.Steps())
		return false, nil
	}

	return true, writeSolution(os.Stdout, cfg.Output, s.MoveSequence())
}
