package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disentangle/lattice"
	"github.com/katalvlaran/disentangle/puzzle"
)

// pt is shorthand for lattice.New.
func pt(x, y, z int) lattice.Point { return lattice.New(x, y, z) }

// cube returns a single-cell piece at the local origin.
func cube(name string) *puzzle.Piece {
	return puzzle.NewPiece(name, []lattice.Point{pt(0, 0, 0)})
}

// mustState builds a valid state or fails the test.
func mustState(t testing.TB, pls ...puzzle.Placement) *puzzle.State {
	t.Helper()
	s, err := puzzle.NewState(pls...)
	require.NoError(t, err)

	return s
}

// lineOfFour places unit cubes A,B,C on the X axis at 0,1,2 and D far away.
func lineOfFour(t testing.TB) (*puzzle.State, []*puzzle.Piece) {
	a, b, c, d := cube("A"), cube("B"), cube("C"), cube("D")
	s := mustState(t,
		puzzle.Place(a, pt(0, 0, 0)),
		puzzle.Place(b, pt(1, 0, 0)),
		puzzle.Place(c, pt(2, 0, 0)),
		puzzle.Place(d, pt(5, 5, 5)),
	)

	return s, []*puzzle.Piece{a, b, c, d}
}

// shell returns the 26 cells of a hollow 3x3x3 cube centred on the origin.
func shell() []lattice.Point {
	var pts []lattice.Point
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				pts = append(pts, pt(x, y, z))
			}
		}
	}

	return pts
}

// slot builds a cube A at (1,0,0) held between two posts of B; A can only
// leave by sliding two steps up, B by sliding three steps down.
func slot(t testing.TB) (*puzzle.State, *puzzle.Piece, *puzzle.Piece) {
	a := cube("A")
	b := puzzle.NewPiece("B", []lattice.Point{
		pt(0, 0, 0), pt(2, 0, 0),
		pt(0, 1, 0), pt(2, 1, 0),
		pt(1, -1, 0),
		pt(1, 0, -1), pt(1, 0, 1),
	})
	s := mustState(t, puzzle.Place(a, pt(1, 0, 0)), puzzle.Place(b, pt(0, 0, 0)))

	return s, a, b
}
