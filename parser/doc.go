// Package parser reads puzzle definitions in the plain-text block format and
// produces the initial *puzzle.State with every piece at zero offset.
//
// Format:
//
//	# comment lines start with '#' and are dropped before grouping
//	Name              line 1: piece name
//	x,y,z             line 2: origin
//	x,y,z             line 3: row direction (one step per character)
//	x,y,z             line 4: column direction (one step per line)
//	0110              remaining lines: '1' marks an occupied cell at
//	1111              origin + char*rowDir + line*colDir
//
// Blocks are separated by blank lines; consecutive blank lines are ignored.
// Both "\n" and "\r\n" line endings are accepted.
//
// Errors:
//
//   - ErrNoPieces       the input holds no piece blocks.
//   - ErrMissingField   a block is shorter than its four header lines.
//   - ErrEmptyPiece     a block marks no cells.
//   - lattice.ErrBadPoint  a header point is malformed.
//   - puzzle.ErrOverlap, puzzle.ErrDuplicatePiece from building the state.
package parser
