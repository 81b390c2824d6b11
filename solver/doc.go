// Package solver searches for a disassembly sequence of a puzzle.State.
//
// The search is a depth-first walk over normalised puzzle states held on an
// explicit stack, so it can be advanced one Step at a time by an outside
// driver and polled between steps.
//
// Each Step:
//
//  1. records the top frame in the memo table (keyed by its normalised state)
//     and marks it as the solution if no pieces remain;
//  2. pops the frame when a known solution is already shorter than the
//     frame's depth;
//  3. otherwise takes the next untried move: an unseen ending state is
//     pushed as a new frame; a seen one is skipped, after re-parenting it on
//     the current frame when that gives it a shorter path; an exhausted
//     frame is popped.
//
// Frames live in an arena addressed by index. Every frame keeps the index of
// its best known predecessor and the indices of the frames that use it as
// theirs; a shortcut re-parents a frame and walks that child list with a
// FIFO work queue so every descendant's depth follows.
//
// Complexity:
//
//   - Time:   O(S·M) move evaluations for S reachable states and M moves per state.
//   - Memory: O(S) frames, all retained for path reconstruction.
//
// Concurrency: a single mutex guards Step and every accessor, so one
// goroutine may step while others poll CurrentState or MoveSequence.
// Hooks run with the mutex held and must not call back into the Solver.
//
// Errors:
//
//   - ErrNilState         New was given a nil state.
//   - ErrDepthInvariant   shortcut re-validation failed.
//   - puzzle.ErrOverlap and other puzzle errors surfaced by move generation.
//
// The first error is latched: later calls to Step return it unchanged.
package solver
