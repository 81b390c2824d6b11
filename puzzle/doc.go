// Package puzzle models a disentanglement ("burr") puzzle on the integer
// lattice and generates the moves that connect one configuration to the next.
//
// What:
//
//   - Piece: an immutable named polycube shape in local coordinates. Pieces
//     are created once at load time and shared by pointer across every state
//     of a search.
//   - Placement: a piece bound to a translation offset.
//   - State: an immutable snapshot of placements with lazily cached
//     occupancy, bounds and an order-independent hash. Every transformation
//     (move, removal, Normalize) yields a new State.
//   - Move: a simultaneous unit-step translation, or a removal, of one or
//     more pieces from a starting state.
//   - Generator: exit detection and legal-move enumeration.
//
// Move enumeration policy (Generator.LegalMoves):
//
//  1. If any piece can slide straight out of the bounding box of the other
//     pieces, only removal moves are produced.
//  2. Otherwise every (piece, direction) pair is tried. A blocked candidate
//     is retried with its blockers added to the moving group, as long as the
//     group stays within the group limit (half the pieces by default).
//  3. The result keeps discovery order and drops moves whose ending state
//     duplicates an earlier one.
//
// Errors:
//
//   - ErrOverlap          two placements occupy the same lattice point.
//   - ErrDuplicatePiece   a state holds two placements of the same piece.
//   - ErrPieceNotPlaced   a move names a piece absent from its starting state.
//   - ErrNilPiece         a placement without a piece.
package puzzle
