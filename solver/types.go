package solver

import (
	"errors"
	"log"

	"github.com/katalvlaran/disentangle/puzzle"
)

// Sentinel errors for solver operations.
var (
	// ErrNilState is returned by New for a nil initial state.
	ErrNilState = errors.New("solver: initial state is nil")

	// ErrDepthInvariant indicates that a shortcut left a frame at a depth other
	// than its new predecessor's depth plus one.
	ErrDepthInvariant = errors.New("solver: shortcut depth invariant violated")
)

// Option configures a Solver.
type Option func(*Options)

// Options holds the Solver configuration.
type Options struct {
	// Generator enumerates legal moves; defaults to puzzle.NewGenerator().
	Generator *puzzle.Generator

	// Logger, if non-nil, receives a trace line for every search decision.
	Logger *log.Logger

	// Hooks run on the goroutine calling Step (or New, for the initial
	// frame) after the solver lock is released, so they may query the
	// Solver.

	// OnSolution, if non-nil, is called once when the first solution frame
	// reaches the top of the stack, with its depth.
	OnSolution func(depth int)

	// OnPush, if non-nil, is called after a new frame is pushed.
	OnPush func(depth int, st *puzzle.State)
}

// DefaultOptions returns Options with the standard generator and no
// logging or hooks.
func DefaultOptions() Options {
	return Options{
		Generator: puzzle.NewGenerator(),
	}
}

// WithGenerator sets the move generator. Nil keeps the default.
func WithGenerator(g *puzzle.Generator) Option {
	return func(o *Options) {
		if g != nil {
			o.Generator = g
		}
	}
}

// WithLogger enables the search trace.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSolution installs a hook for the first solution found.
func WithOnSolution(fn func(depth int)) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// WithOnPush installs a hook called for every pushed frame.
func WithOnPush(fn func(depth int, st *puzzle.State)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// Frame is a read-only view of one step of a move sequence.
type Frame struct {
	// State is the normalised state after Move.
	State *puzzle.State

	// Move reached State on the best known path; nil for the initial frame.
	Move *puzzle.Move

	// Depth is the number of moves from the initial state along the best
	// known path.
	Depth int
}

// Stats is a consistent snapshot of search progress.
type Stats struct {
	Steps      int           // Step calls that did work
	Visited    int           // distinct states in the memo table
	Frames     int           // frames allocated
	StackDepth int           // frames on the DFS stack
	Solved     bool          // a solution has been recorded
	Done       bool          // the stack is empty
	BestDepth  int           // moves in the best solution, -1 if unsolved
	Current    *puzzle.State // CurrentState at snapshot time
}
