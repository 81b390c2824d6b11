package puzzle

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/katalvlaran/disentangle/lattice"
)

// State is an immutable snapshot of a puzzle: an ordered list of placements,
// at most one per piece. Occupancy, bounds and hash are computed on first use
// and cached; they are safe to read from several goroutines.
//
// Equality is structural and ignores placement order.
type State struct {
	placements []Placement

	occOnce sync.Once
	occ     map[lattice.Point]int // point -> index into placements
	occErr  error

	boundsOnce sync.Once
	lo, hi     lattice.Point

	hashOnce sync.Once
	hash     uint64
}

// NewState validates and builds a state from placements. The slice is copied.
// It returns ErrNilPiece, ErrDuplicatePiece, or ErrOverlap (wrapped with the
// offending piece names) for an invalid configuration.
func NewState(placements ...Placement) (*State, error) {
	pls := make([]Placement, len(placements))
	copy(pls, placements)
	for i, pl := range pls {
		if pl.Piece == nil {
			return nil, fmt.Errorf("%w at placement %d", ErrNilPiece, i)
		}
		for _, prev := range pls[:i] {
			if prev.Piece.Equal(pl.Piece) {
				return nil, fmt.Errorf("%w: %q", ErrDuplicatePiece, pl.Piece.name)
			}
		}
	}

	s := newState(pls)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// newState wraps pls without validation; the caller hands over ownership.
func newState(pls []Placement) *State {
	return &State{placements: pls}
}

// Len returns the number of pieces still in the puzzle.
func (s *State) Len() int { return len(s.placements) }

// Empty reports whether every piece has been removed.
func (s *State) Empty() bool { return len(s.placements) == 0 }

// Placements returns a copy of the placements in state order.
func (s *State) Placements() []Placement {
	out := make([]Placement, len(s.placements))
	copy(out, s.placements)

	return out
}

// Placement returns the placement of piece. Lookup is by identity first and
// falls back to structural piece equality.
func (s *State) Placement(piece *Piece) (Placement, bool) {
	for _, pl := range s.placements {
		if pl.Piece == piece {
			return pl, true
		}
	}
	for _, pl := range s.placements {
		if pl.Piece.Equal(piece) {
			return pl, true
		}
	}

	return Placement{}, false
}

// Validate builds the occupancy table and reports ErrOverlap if two
// placements share a point. The result is cached.
func (s *State) Validate() error {
	s.occOnce.Do(s.buildOccupancy)

	return s.occErr
}

func (s *State) buildOccupancy() {
	n := 0
	for _, pl := range s.placements {
		n += len(pl.Piece.points)
	}
	occ := make(map[lattice.Point]int, n)
	for i, pl := range s.placements {
		for _, p := range pl.Piece.points {
			p = p.Add(pl.Offset)
			if j, taken := occ[p]; taken {
				s.occErr = fmt.Errorf("%w: piece %q overlaps with piece %q at (%d,%d,%d)",
					ErrOverlap, s.placements[j].Piece.name, pl.Piece.name, p.X, p.Y, p.Z)
				return
			}
			occ[p] = i
		}
	}
	s.occ = occ
}

// PieceAt returns the placement covering point, if any. The error is
// ErrOverlap when the state itself is invalid.
func (s *State) PieceAt(point lattice.Point) (Placement, bool, error) {
	if err := s.Validate(); err != nil {
		return Placement{}, false, err
	}
	i, ok := s.occ[point]
	if !ok {
		return Placement{}, false, nil
	}

	return s.placements[i], true, nil
}

// Bounds returns the componentwise min and max over all occupied points.
// For a state without points lo is (MaxInt,MaxInt,MaxInt) and hi is
// (MinInt,MinInt,MinInt), so every point lies beyond the box.
func (s *State) Bounds() (lo, hi lattice.Point) {
	s.boundsOnce.Do(func() {
		s.lo, s.hi = s.BoundsExcluding()
	})

	return s.lo, s.hi
}

// BoundsExcluding returns the bounds of every placement except those of the
// excluded pieces (matched by identity).
func (s *State) BoundsExcluding(exclude ...*Piece) (lo, hi lattice.Point) {
	lo = lattice.New(math.MaxInt, math.MaxInt, math.MaxInt)
	hi = lattice.New(math.MinInt, math.MinInt, math.MinInt)
	for _, pl := range s.placements {
		if containsPiece(exclude, pl.Piece) {
			continue
		}
		for _, p := range pl.Piece.points {
			p = p.Add(pl.Offset)
			lo = lattice.Min(lo, p)
			hi = lattice.Max(hi, p)
		}
	}

	return lo, hi
}

// Normalize translates every placement so that the first occupied point of
// the first piece (in state order) sits at the origin. It returns s itself
// when there is nothing to move.
func (s *State) Normalize() *State {
	var first lattice.Point
	found := false
	for _, pl := range s.placements {
		if len(pl.Piece.points) > 0 {
			first = pl.Piece.points[0].Add(pl.Offset)
			found = true
			break
		}
	}
	if !found || first.IsZero() {
		return s
	}

	v := first.Neg()
	pls := make([]Placement, len(s.placements))
	for i, pl := range s.placements {
		pls[i] = pl.Moved(v)
	}

	return newState(pls)
}

// Equal reports whether s and o hold the same set of pieces at the same
// offsets, regardless of order.
func (s *State) Equal(o *State) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || len(s.placements) != len(o.placements) || s.Hash() != o.Hash() {
		return false
	}
	for _, pl := range s.placements {
		other, ok := o.Placement(pl.Piece)
		if !ok || other.Offset != pl.Offset {
			return false
		}
	}

	return true
}

// Hash returns an order-independent hash: the xor of per-placement hashes.
func (s *State) Hash() uint64 {
	s.hashOnce.Do(func() {
		var h uint64
		for _, pl := range s.placements {
			h ^= pl.Hash()
		}
		s.hash = h
	})

	return s.hash
}

// String lists each piece with its offset, e.g. "A@(0,0,0) B@(1,0,0)".
func (s *State) String() string {
	if len(s.placements) == 0 {
		return "<empty>"
	}
	var b strings.Builder
	for i, pl := range s.placements {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s@(%d,%d,%d)", pl.Piece.name, pl.Offset.X, pl.Offset.Y, pl.Offset.Z)
	}

	return b.String()
}

func containsPiece(pieces []*Piece, p *Piece) bool {
	for _, q := range pieces {
		if q == p {
			return true
		}
	}

	return false
}
