// Package runner drives a solver.Solver from a background goroutine and
// publishes progress snapshots for a presentation layer to poll.
//
// Cancellation is cooperative: Run checks its context between steps and
// returns, leaving the solver resumable. A later Run continues where the
// previous one stopped.
//
// Errors:
//
//   - ErrStepLimit       MaxSteps steps were taken in this Run without finishing.
//   - ErrAlreadyStarted  Start was called twice.
//   - context errors     the context was cancelled between steps.
//   - solver errors      returned by Step, unchanged.
package runner
