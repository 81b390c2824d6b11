package puzzle

import (
	"hash/fnv"
	"math/bits"

	"github.com/katalvlaran/disentangle/lattice"
)

// Piece is a rigid named shape: a sequence of lattice points relative to the
// piece's local origin. A Piece is never mutated after NewPiece returns.
type Piece struct {
	name   string
	points []lattice.Point
	hash   uint64
}

// NewPiece builds a piece from name and points. The points slice is copied.
func NewPiece(name string, points []lattice.Point) *Piece {
	pts := make([]lattice.Point, len(points))
	copy(pts, points)

	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum64()
	for _, p := range pts {
		sum = bits.RotateLeft64(sum, 5) ^ p.Hash()
	}

	return &Piece{name: name, points: pts, hash: sum}
}

// Name returns the piece name.
func (p *Piece) Name() string { return p.name }

// Len returns the number of cells in the shape.
func (p *Piece) Len() int { return len(p.points) }

// Points returns a copy of the shape in local coordinates.
func (p *Piece) Points() []lattice.Point {
	out := make([]lattice.Point, len(p.points))
	copy(out, p.points)

	return out
}

// Hash returns the structural hash of the piece (name and ordered points).
func (p *Piece) Hash() uint64 { return p.hash }

// Equal reports whether p and o have the same name and the same ordered points.
func (p *Piece) Equal(o *Piece) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil || p.hash != o.hash || p.name != o.name || len(p.points) != len(o.points) {
		return false
	}
	for i := range p.points {
		if p.points[i] != o.points[i] {
			return false
		}
	}

	return true
}

// String returns the piece name.
func (p *Piece) String() string { return p.name }

// Placement binds a piece to an offset in the puzzle.
type Placement struct {
	Piece  *Piece
	Offset lattice.Point
}

// Place returns the placement of piece at offset.
func Place(piece *Piece, offset lattice.Point) Placement {
	return Placement{Piece: piece, Offset: offset}
}

// Points returns the lattice points currently covered by the placement.
// It is recomputed on every call.
func (pl Placement) Points() []lattice.Point {
	out := make([]lattice.Point, len(pl.Piece.points))
	for i, p := range pl.Piece.points {
		out[i] = p.Add(pl.Offset)
	}

	return out
}

// Moved returns the placement translated by v.
func (pl Placement) Moved(v lattice.Point) Placement {
	return Placement{Piece: pl.Piece, Offset: pl.Offset.Add(v)}
}

// Equal reports whether both placements hold equal pieces at the same offset.
func (pl Placement) Equal(o Placement) bool {
	return pl.Offset == o.Offset && pl.Piece.Equal(o.Piece)
}

// Hash combines the piece hash and the offset.
func (pl Placement) Hash() uint64 {
	return bits.RotateLeft64(pl.Piece.hash, 5) ^ pl.Offset.Hash()
}
