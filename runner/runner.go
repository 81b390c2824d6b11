package runner

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/disentangle/solver"
)

// Sentinel errors for runner operations.
var (
	// ErrStepLimit is returned by Run when MaxSteps is reached first.
	ErrStepLimit = errors.New("runner: step limit reached")

	// ErrAlreadyStarted is returned by Start on a runner already started.
	ErrAlreadyStarted = errors.New("runner: already started")
)

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner configuration.
type Options struct {
	// MaxSteps bounds the number of steps per Run; 0 means no limit.
	MaxSteps int

	// ProgressEvery is the number of steps between OnProgress calls;
	// 0 reports only when Run returns.
	ProgressEvery int

	// OnProgress, if non-nil, receives snapshots from the running goroutine.
	OnProgress func(Progress)
}

// DefaultOptions returns Options without a step limit or progress hook.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxSteps limits the steps taken by one Run. Negative values are
// treated as 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = max(n, 0)
	}
}

// WithProgressEvery sets the reporting interval in steps.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		o.ProgressEvery = max(n, 0)
	}
}

// WithOnProgress installs the progress callback.
func WithOnProgress(fn func(Progress)) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// Progress is a snapshot of a run.
type Progress struct {
	RunID uuid.UUID
	solver.Stats
}

// Runner owns the driving loop for one solver.
type Runner struct {
	id     uuid.UUID
	solver *solver.Solver
	opts   Options

	mu     sync.Mutex
	group  *errgroup.Group
	cancel context.CancelFunc
}

// New returns a Runner for s with a fresh run ID.
func New(s *solver.Solver, opts ...Option) *Runner {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Runner{id: uuid.New(), solver: s, opts: o}
}

// ID returns the run identifier carried in every Progress.
func (r *Runner) ID() uuid.UUID { return r.id }

// Solver returns the driven solver.
func (r *Runner) Solver() *solver.Solver { return r.solver }

// Progress returns a snapshot of the solver state.
func (r *Runner) Progress() Progress {
	return Progress{RunID: r.id, Stats: r.solver.Stats()}
}

// Run steps the solver on the calling goroutine until it is Done, the step
// limit is hit, Step fails, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	defer r.report()

	for n := 0; !r.solver.Done(); n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if r.opts.MaxSteps > 0 && n >= r.opts.MaxSteps {
			return ErrStepLimit
		}
		if err := r.solver.Step(); err != nil {
			return err
		}
		if r.opts.ProgressEvery > 0 && (n+1)%r.opts.ProgressEvery == 0 {
			r.report()
		}
	}

	return nil
}

func (r *Runner) report() {
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(r.Progress())
	}
}

// Start launches Run on a background goroutine. Use Wait for the result and
// Stop to cancel.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.group != nil {
		return ErrAlreadyStarted
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.group, ctx = errgroup.WithContext(ctx)
	r.group.Go(func() error {
		return r.Run(ctx)
	})

	return nil
}

// Stop cancels a started run. It does not wait for it to return.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
}

// Wait blocks until a started run returns and reports its error. It
// returns nil if Start was never called.
func (r *Runner) Wait() error {
	r.mu.Lock()
	g, cancel := r.group, r.cancel
	r.mu.Unlock()

	if g == nil {
		return nil
	}
	err := g.Wait()
	cancel()

	return err
}
