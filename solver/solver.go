package solver

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/disentangle/puzzle"
)

const noFrame = -1

// frame is one arena entry. bestPrev, bestMove and depth start as the DFS
// edge that first reached the state and are revised by shortcuts.
type frame struct {
	state   *puzzle.State
	pending []*puzzle.Move
	head    int // next untried index into pending

	bestPrev int
	bestMove *puzzle.Move
	depth    int
	children []int // frames whose bestPrev is this frame
}

// Solver runs a resumable depth-first disassembly search.
type Solver struct {
	mu   sync.Mutex
	opts Options

	frames   []*frame
	stack    []int
	memo     map[uint64][]int // state hash -> frame indices
	visited  int
	solution int
	steps    int
	err      error

	hooks []func() // queued under mu, run after it is released
}

// New prepares a search from the normalised initial state. The initial
// frame's legal moves are computed eagerly, so an invalid state fails here.
func New(initial *puzzle.State, opts ...Option) (*Solver, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Solver{
		opts:     o,
		memo:     make(map[uint64][]int),
		solution: noFrame,
	}
	if err := s.push(initial.Normalize(), nil, noFrame); err != nil {
		return nil, err
	}
	s.runHooks(s.takeHooks())

	return s, nil
}

// Step advances the search by one push or pop. It is a no-op once Done.
// A single call may skip several already visited candidates before it
// pushes or pops. Hooks fired by the step run after the solver is
// unlocked, so they may call back into it.
func (s *Solver) Step() error {
	s.mu.Lock()
	err := s.step()
	hooks := s.takeHooks()
	s.mu.Unlock()

	s.runHooks(hooks)

	return err
}

func (s *Solver) step() error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) == 0 {
		return nil
	}

	s.steps++
	s.logf("step %d", s.steps)

	idx := s.stack[len(s.stack)-1]
	top := s.frames[idx]
	if top.state.Empty() && s.solution == noFrame {
		s.solution = idx
		s.logf("solution found at depth %d", top.depth)
		if fn := s.opts.OnSolution; fn != nil {
			depth := top.depth
			s.hooks = append(s.hooks, func() { fn(depth) })
		}
	}
	s.remember(idx)

	if s.solution != noFrame && s.frames[s.solution].depth < top.depth {
		s.logf("backtracking: deeper than best solution (%d moves)", s.frames[s.solution].depth)
		s.pop()
		return nil
	}

	for {
		if top.head == len(top.pending) {
			s.logf("backtracking")
			s.pop()
			return nil
		}
		m := top.pending[top.head]
		top.pending[top.head] = nil
		top.head++

		end, err := m.EndingState()
		if err != nil {
			return s.fail(err)
		}
		next := end.Normalize()

		if seen, ok := s.lookup(next); ok {
			s.logf("already visited: %s", m)
			if err = s.shortcut(seen, idx, m); err != nil {
				return s.fail(err)
			}
			continue
		}

		s.logf("moving: %s", m)
		if err = s.push(next, m, idx); err != nil {
			return s.fail(err)
		}

		return nil
	}
}

// push appends a frame for st reached by move from frame prev.
func (s *Solver) push(st *puzzle.State, move *puzzle.Move, prev int) error {
	moves, err := s.opts.Generator.LegalMoves(st)
	if err != nil {
		return fmt.Errorf("solver: legal moves: %w", err)
	}

	idx := len(s.frames)
	fr := &frame{
		state:    st,
		pending:  moves,
		bestPrev: prev,
		bestMove: move,
	}
	if prev != noFrame {
		parent := s.frames[prev]
		fr.depth = parent.depth + 1
		parent.children = append(parent.children, idx)
	}
	s.frames = append(s.frames, fr)
	s.stack = append(s.stack, idx)

	if s.opts.Logger != nil {
		s.logf("possible moves:")
		for _, m := range moves {
			s.logf("\t%s", m)
		}
	}
	if fn := s.opts.OnPush; fn != nil {
		depth := fr.depth
		s.hooks = append(s.hooks, func() { fn(depth, st) })
	}

	return nil
}

func (s *Solver) takeHooks() []func() {
	hooks := s.hooks
	s.hooks = nil

	return hooks
}

func (s *Solver) runHooks(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}

func (s *Solver) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Solver) fail(err error) error {
	s.err = err

	return err
}

// remember stores frame idx under its state, replacing an equal entry.
func (s *Solver) remember(idx int) {
	st := s.frames[idx].state
	h := st.Hash()
	bucket := s.memo[h]
	for i, j := range bucket {
		if s.frames[j].state.Equal(st) {
			bucket[i] = idx
			return
		}
	}
	s.memo[h] = append(bucket, idx)
	s.visited++
}

func (s *Solver) lookup(st *puzzle.State) (int, bool) {
	for _, j := range s.memo[st.Hash()] {
		if s.frames[j].state.Equal(st) {
			return j, true
		}
	}

	return noFrame, false
}

// shortcut re-parents frame target on frame from when that shortens its
// path, then recomputes the depths of target and all its descendants.
func (s *Solver) shortcut(target, from int, m *puzzle.Move) error {
	tf, ff := s.frames[target], s.frames[from]
	if ff.depth+1 >= tf.depth {
		return nil
	}
	s.logf("found fewer steps: %d -> %d", tf.depth, ff.depth+1)

	if tf.bestPrev != noFrame {
		old := s.frames[tf.bestPrev]
		old.children = removeIndex(old.children, target)
	}
	tf.bestPrev = from
	tf.bestMove = m
	ff.children = append(ff.children, target)

	s.propagate(target)
	if tf.depth != ff.depth+1 {
		return fmt.Errorf("%w: frame %d has depth %d, predecessor %d has depth %d",
			ErrDepthInvariant, target, tf.depth, from, ff.depth)
	}

	return nil
}

// propagate recomputes depth for root and every frame below it in the
// best-predecessor tree, breadth first.
func (s *Solver) propagate(root int) {
	queue := []int{root}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		fr := s.frames[idx]
		if fr.bestPrev == noFrame {
			fr.depth = 0
		} else {
			fr.depth = s.frames[fr.bestPrev].depth + 1
		}
		queue = append(queue, fr.children...)
	}
}

func removeIndex(xs []int, v int) []int {
	for i, x := range xs {
		if x == v {
			return append(xs[:i], xs[i+1:]...)
		}
	}

	return xs
}

func (s *Solver) logf(format string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Printf(format, args...)
	}
}

// Done reports whether the search has exhausted every branch.
func (s *Solver) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.stack) == 0
}

// Solved reports whether a solution has been recorded. The search may keep
// running afterwards to look for a shorter one.
func (s *Solver) Solved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.solution != noFrame
}

// Steps returns the number of Step calls that did work.
func (s *Solver) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.steps
}

// Err returns the latched error, if any.
func (s *Solver) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// CurrentState returns the state on top of the stack; once Done it returns
// the solution's state, or nil if none was found.
func (s *Solver) CurrentState() *puzzle.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentState()
}

func (s *Solver) currentState() *puzzle.State {
	if len(s.stack) > 0 {
		return s.frames[s.stack[len(s.stack)-1]].state
	}
	if s.solution != noFrame {
		return s.frames[s.solution].state
	}

	return nil
}

// Solution returns the solution frame, if any.
func (s *Solver) Solution() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.solution == noFrame {
		return Frame{}, false
	}

	return s.view(s.solution), true
}

// MoveSequence returns the best known solution from the initial state to
// the empty state. Before a solution exists it returns the current DFS stack
// from bottom to top instead.
func (s *Solver) MoveSequence() []Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.solution == noFrame {
		out := make([]Frame, len(s.stack))
		for i, idx := range s.stack {
			out[i] = s.view(idx)
		}
		return out
	}

	var out []Frame
	for idx := s.solution; idx != noFrame; idx = s.frames[idx].bestPrev {
		out = append(out, s.view(idx))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Stats returns a consistent snapshot of the search.
func (s *Solver) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Steps:      s.steps,
		Visited:    s.visited,
		Frames:     len(s.frames),
		StackDepth: len(s.stack),
		Solved:     s.solution != noFrame,
		Done:       len(s.stack) == 0,
		BestDepth:  -1,
		Current:    s.currentState(),
	}
	if st.Solved {
		st.BestDepth = s.frames[s.solution].depth
	}

	return st
}

func (s *Solver) view(idx int) Frame {
	fr := s.frames[idx]

	return Frame{State: fr.state, Move: fr.bestMove, Depth: fr.depth}
}
