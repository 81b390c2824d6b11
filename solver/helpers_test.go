package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disentangle/lattice"
	"github.com/katalvlaran/disentangle/puzzle"
	"github.com/katalvlaran/disentangle/solver"
)

func pt(x, y, z int) lattice.Point { return lattice.New(x, y, z) }

// pair is two unit cubes touching along X.
func pair(t testing.TB) *puzzle.State {
	a := puzzle.NewPiece("A", []lattice.Point{{}})
	b := puzzle.NewPiece("B", []lattice.Point{{}})
	s, err := puzzle.NewState(puzzle.Place(a, pt(0, 0, 0)), puzzle.Place(b, pt(1, 0, 0)))
	require.NoError(t, err)

	return s
}

// vault is a cube A locked in a 2x2x1 chamber of a closed box B. The only
// opening is the floor cell at (1,-1,0), so A must first move right to x=1
// before either piece can leave.
func vault(t testing.TB) *puzzle.State {
	var cells []lattice.Point
	for x := -1; x <= 2; x++ {
		for y := -1; y <= 2; y++ {
			for z := -1; z <= 1; z++ {
				chamber := z == 0 && (x == 0 || x == 1) && (y == 0 || y == 1)
				hole := x == 1 && y == -1 && z == 0
				if !chamber && !hole {
					cells = append(cells, pt(x, y, z))
				}
			}
		}
	}
	a := puzzle.NewPiece("A", []lattice.Point{{}})
	b := puzzle.NewPiece("B", cells)
	s, err := puzzle.NewState(puzzle.Place(a, pt(0, 0, 0)), puzzle.Place(b, pt(0, 0, 0)))
	require.NoError(t, err)

	return s
}

// runToDone steps until the search is exhausted, failing after limit steps.
func runToDone(t testing.TB, s *solver.Solver, limit int) {
	t.Helper()
	for i := 0; !s.Done(); i++ {
		require.Less(t, i, limit, "search did not finish")
		require.NoError(t, s.Step())
	}
}

// requireValidPath checks that consecutive frames are joined by one legal
// move and that the path starts at the normalised initial state.
func requireValidPath(t testing.TB, initial *puzzle.State, seq []solver.Frame) {
	t.Helper()
	require.NotEmpty(t, seq)
	require.True(t, seq[0].State.Equal(initial.Normalize()), "path starts at the initial state")
	require.Nil(t, seq[0].Move)
	require.Equal(t, 0, seq[0].Depth)

	for i := 1; i < len(seq); i++ {
		m := seq[i].Move
		require.NotNil(t, m)
		require.True(t, m.Start().Equal(seq[i-1].State), "move %d starts at previous frame", i)

		legal, err := m.Legal()
		require.NoError(t, err)
		require.True(t, legal, "move %d (%s) is legal", i, m)

		end, err := m.EndingState()
		require.NoError(t, err)
		require.True(t, end.Normalize().Equal(seq[i].State), "move %d reaches the next frame", i)
		require.Equal(t, seq[i-1].Depth+1, seq[i].Depth)
	}
}
