package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disentangle/lattice"
	"github.com/katalvlaran/disentangle/parser"
	"github.com/katalvlaran/disentangle/puzzle"
)

func shapes(t *testing.T, s *puzzle.State) map[string][]lattice.Point {
	t.Helper()
	out := map[string][]lattice.Point{}
	for _, pl := range s.Placements() {
		assert.Equal(t, lattice.Zero, pl.Offset, "loader places pieces at zero offset")
		out[pl.Piece.Name()] = pl.Piece.Points()
	}

	return out
}

func TestReadFile_Pair(t *testing.T) {
	s, err := parser.ReadFile("testdata/pair.txt")
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	want := map[string][]lattice.Point{
		"A": {{X: 0}},
		"B": {{X: 1}},
	}
	if diff := cmp.Diff(want, shapes(t, s)); diff != "" {
		t.Fatalf("shapes mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_Cross(t *testing.T) {
	s, err := parser.ReadFile("testdata/cross.txt")
	require.NoError(t, err)

	want := map[string][]lattice.Point{
		"X": {{X: -1}, {X: 0}, {X: 1}},
		"Y": {{Y: -1, Z: 1}, {Y: 0, Z: 1}, {Y: 1, Z: 1}},
		"Z": {{X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}},
	}
	if diff := cmp.Diff(want, shapes(t, s)); diff != "" {
		t.Fatalf("shapes mismatch (-want +got):\n%s", diff)
	}
	names := []string{}
	for _, pl := range s.Placements() {
		names = append(names, pl.Piece.Name())
	}
	assert.Equal(t, []string{"X", "Y", "Z"}, names, "block order is kept")
}

func TestReadFile_RowAndColumnDirections(t *testing.T) {
	s, err := parser.ReadFile("testdata/plate.txt")
	require.NoError(t, err)

	want := []lattice.Point{
		{X: 0, Y: 2}, {X: 0, Y: 1},
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
	}
	if diff := cmp.Diff(want, s.Placements()[0].Piece.Points()); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_CRLF(t *testing.T) {
	s, err := parser.ReadFile("testdata/crlf.txt")
	require.NoError(t, err)

	want := map[string][]lattice.Point{
		"A": {{X: 0}, {X: 1}},
		"B": {{Y: 1}, {X: 1, Y: 1}},
	}
	if diff := cmp.Diff(want, shapes(t, s)); diff != "" {
		t.Fatalf("shapes mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := parser.ReadFile("testdata/does-not-exist.txt")
	assert.Error(t, err)
}

func TestParse_TwiceIsEqual(t *testing.T) {
	s1, err := parser.ReadFile("testdata/cross.txt")
	require.NoError(t, err)
	s2, err := parser.ReadFile("testdata/cross.txt")
	require.NoError(t, err)

	assert.NotSame(t, s1.Placements()[0].Piece, s2.Placements()[0].Piece)
	assert.True(t, s1.Equal(s2))
	assert.Equal(t, s1.Hash(), s2.Hash())
}

func TestParse_CommentsDoNotSplitBlocks(t *testing.T) {
	src := "A\n# inline comment\n0,0,0\n1,0,0\n0,1,0\n# another\n11\n"
	s, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Placements()[0].Piece.Len())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", parser.ErrNoPieces},
		{"only comments", "# nothing\n# here\n\n", parser.ErrNoPieces},
		{"short header", "A\n0,0,0\n1,0,0\n", parser.ErrMissingField},
		{"bad origin", "A\n0,0\n1,0,0\n0,1,0\n1\n", lattice.ErrBadPoint},
		{"bad direction", "A\n0,0,0\nx,0,0\n0,1,0\n1\n", lattice.ErrBadPoint},
		{"no cells", "A\n0,0,0\n1,0,0\n0,1,0\n000\n", parser.ErrEmptyPiece},
		{"header only", "A\n0,0,0\n1,0,0\n0,1,0\n", parser.ErrEmptyPiece},
		{"overlap", "A\n0,0,0\n1,0,0\n0,1,0\n1\n\nB\n0,0,0\n1,0,0\n0,1,0\n1\n", puzzle.ErrOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseString(tc.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParsePiece(t *testing.T) {
	p, err := parser.ParsePiece("Bar\n0,0,0\n0,0,1\n1,0,0\n1101\n")
	require.NoError(t, err)
	assert.Equal(t, "Bar", p.Name())
	assert.Equal(t, []lattice.Point{{Z: 0}, {Z: 1}, {Z: 3}}, p.Points())
}
