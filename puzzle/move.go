package puzzle

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/disentangle/lattice"
)

// Move is a proposed transition from a starting state: every moving piece is
// translated by the direction vector, or, for a removal, taken out of the
// puzzle. A removal's direction only records where the pieces left.
type Move struct {
	start   *State
	pieces  []*Piece
	moving  map[*Piece]struct{}
	dir     lattice.Point
	removal bool
	missing *Piece // first piece not found in start, if any

	endOnce sync.Once
	end     *State
	endErr  error
}

// NewMove returns a translation of pieces by dir from start. Pieces are
// resolved against start so that structurally equal pieces refer to the
// state's own instances; duplicates collapse into one.
func NewMove(start *State, dir lattice.Point, pieces ...*Piece) *Move {
	m := &Move{
		start:  start,
		pieces: make([]*Piece, 0, len(pieces)),
		moving: make(map[*Piece]struct{}, len(pieces)),
		dir:    dir,
	}
	for _, p := range pieces {
		if pl, ok := start.Placement(p); ok {
			p = pl.Piece
		} else if m.missing == nil {
			m.missing = p
		}
		if _, dup := m.moving[p]; dup {
			continue
		}
		m.moving[p] = struct{}{}
		m.pieces = append(m.pieces, p)
	}

	return m
}

// NewRemoval returns a move that takes pieces out of start through exit.
func NewRemoval(start *State, exit lattice.Point, pieces ...*Piece) *Move {
	m := NewMove(start, exit, pieces...)
	m.removal = true

	return m
}

// Start returns the starting state.
func (m *Move) Start() *State { return m.start }

// Pieces returns the moving pieces in the order given.
func (m *Move) Pieces() []*Piece {
	out := make([]*Piece, len(m.pieces))
	copy(out, m.pieces)

	return out
}

// Direction returns the translation vector, or the exit direction of a removal.
func (m *Move) Direction() lattice.Point { return m.dir }

// IsRemoval reports whether the move takes its pieces out of the puzzle.
func (m *Move) IsRemoval() bool { return m.removal }

// Moves reports whether piece is part of the moving group.
func (m *Move) Moves(piece *Piece) bool {
	_, ok := m.moving[piece]

	return ok
}

func (m *Move) checkPieces() error {
	if m.missing != nil {
		return fmt.Errorf("%w: %q", ErrPieceNotPlaced, m.missing.name)
	}

	return nil
}

// BlockingPieces returns the distinct non-moving pieces that occupy any
// destination point of the moving group, in discovery order. A removal
// has no blockers.
func (m *Move) BlockingPieces() ([]*Piece, error) {
	if err := m.checkPieces(); err != nil {
		return nil, err
	}
	if m.removal {
		return nil, nil
	}

	var blockers []*Piece
	for _, piece := range m.pieces {
		pl, _ := m.start.Placement(piece)
		for _, p := range pl.Piece.points {
			hit, ok, err := m.start.PieceAt(p.Add(pl.Offset).Add(m.dir))
			if err != nil {
				return nil, err
			}
			if !ok || m.Moves(hit.Piece) || containsPiece(blockers, hit.Piece) {
				continue
			}
			blockers = append(blockers, hit.Piece)
		}
	}

	return blockers, nil
}

// Legal reports whether no non-moving piece blocks the move.
func (m *Move) Legal() (bool, error) {
	blockers, err := m.BlockingPieces()
	if err != nil {
		return false, err
	}

	return len(blockers) == 0, nil
}

// EndingState returns the state after the move: moving pieces dropped for a
// removal, or shifted by the direction for a translation. Legality is not
// checked. The result is computed once.
func (m *Move) EndingState() (*State, error) {
	m.endOnce.Do(func() {
		if m.endErr = m.checkPieces(); m.endErr != nil {
			return
		}
		pls := make([]Placement, 0, len(m.start.placements))
		for _, pl := range m.start.placements {
			switch {
			case !m.Moves(pl.Piece):
				pls = append(pls, pl)
			case !m.removal:
				pls = append(pls, pl.Moved(m.dir))
			}
		}
		m.end = newState(pls)
	})

	return m.end, m.endErr
}

// Equal reports whether both moves lead from equal starting states to equal
// ending states.
func (m *Move) Equal(o *Move) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || !m.start.Equal(o.start) {
		return false
	}
	a, err := m.EndingState()
	if err != nil {
		return false
	}
	b, err := o.EndingState()
	if err != nil {
		return false
	}

	return a.Equal(b)
}

// String renders the move as "Remove A, B" or "A, B Right".
func (m *Move) String() string {
	names := make([]string, len(m.pieces))
	for i, p := range m.pieces {
		names[i] = p.name
	}
	if m.removal {
		return "Remove " + strings.Join(names, ", ")
	}

	return strings.Join(names, ", ") + " " + m.dir.String()
}
