package puzzle

import (
	"fmt"

	"github.com/katalvlaran/disentangle/lattice"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// Generator detects removable pieces and enumerates legal moves.
// A Generator is read-only after construction and may be shared.
type Generator struct {
	exits      []ExitTest
	directions []lattice.Point
	groupLimit func(total int) int
}

// WithExitTests replaces the exit test table. A nil or empty table disables
// removal detection entirely.
func WithExitTests(tests []ExitTest) GeneratorOption {
	return func(g *Generator) {
		g.exits = tests
	}
}

// WithGroupLimit sets the maximum size of a moving group as a function of
// the number of pieces in the state. Nil restores the default.
func WithGroupLimit(fn func(total int) int) GeneratorOption {
	return func(g *Generator) {
		if fn == nil {
			fn = HalfGroupLimit
		}
		g.groupLimit = fn
	}
}

// WithDirections replaces the candidate translation directions, tried in
// the given order. Nil restores lattice.Translations.
func WithDirections(dirs []lattice.Point) GeneratorOption {
	return func(g *Generator) {
		if dirs == nil {
			dirs = lattice.Translations()
		}
		g.directions = dirs
	}
}

// HalfGroupLimit allows groups of up to half the pieces (rounded down).
func HalfGroupLimit(total int) int { return total / 2 }

// NewGenerator returns a Generator using StandardExitTests,
// lattice.Translations and HalfGroupLimit unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		exits:      StandardExitTests(),
		directions: lattice.Translations(),
		groupLimit: HalfGroupLimit,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ExitDirection returns the first direction, in exit-table order, along
// which piece can be walked one unit step at a time until it lies entirely
// beyond the bounding box of the other pieces without colliding. It returns
// lattice.Zero when no straight exit exists.
func (g *Generator) ExitDirection(s *State, piece *Piece) (lattice.Point, error) {
	pl, ok := s.Placement(piece)
	if !ok {
		return lattice.Zero, fmt.Errorf("%w: %q", ErrPieceNotPlaced, piece.name)
	}
	if err := s.Validate(); err != nil {
		return lattice.Zero, err
	}
	lo, hi := s.BoundsExcluding(pl.Piece)

	for _, test := range g.exits {
		pos, vector := pl, lattice.Zero
		for {
			if test.Clear(pos.Points(), lo, hi) {
				return test.Direction, nil
			}
			pos = pos.Moved(test.Direction)
			vector = vector.Add(test.Direction)
			legal, err := NewMove(s, vector, pl.Piece).Legal()
			if err != nil {
				return lattice.Zero, err
			}
			if !legal {
				break
			}
		}
	}

	return lattice.Zero, nil
}

// LegalMoves enumerates the legal moves out of s in discovery order.
//
// When at least one piece has an exit direction only removal moves are
// returned. Otherwise single-piece translations are tried first, pieces in
// placement order and directions in generator order. A blocked candidate is
// re-queued with its blockers joined to the moving group while the group
// size stays within the group limit.
// Moves reaching an ending state already produced are dropped.
func (g *Generator) LegalMoves(s *State) ([]*Move, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var queue []*Move
	for _, pl := range s.placements {
		exit, err := g.ExitDirection(s, pl.Piece)
		if err != nil {
			return nil, err
		}
		if !exit.IsZero() {
			queue = append(queue, NewRemoval(s, exit, pl.Piece))
		}
	}
	if len(queue) == 0 {
		queue = make([]*Move, 0, len(s.placements)*len(g.directions))
		for _, pl := range s.placements {
			for _, d := range g.directions {
				queue = append(queue, NewMove(s, d, pl.Piece))
			}
		}
	}

	limit := g.groupLimit(len(s.placements))
	var out []*Move
	for head := 0; head < len(queue); head++ {
		m := queue[head]
		blockers, err := m.BlockingPieces()
		if err != nil {
			return nil, err
		}
		if len(blockers) > 0 {
			group := append(m.Pieces(), blockers...)
			if len(group) <= limit {
				queue = append(queue, NewMove(s, m.dir, group...))
			}
			continue
		}

		dup, err := containsEquivalent(out, m)
		if err != nil {
			return nil, err
		}
		if !dup {
			out = append(out, m)
		}
	}

	return out, nil
}

// containsEquivalent reports whether moves already holds a move with the
// same ending state as m. All moves share one starting state.
func containsEquivalent(moves []*Move, m *Move) (bool, error) {
	end, err := m.EndingState()
	if err != nil {
		return false, err
	}
	for _, other := range moves {
		oe, err := other.EndingState()
		if err != nil {
			return false, err
		}
		if oe.Equal(end) {
			return true, nil
		}
	}

	return false, nil
}
