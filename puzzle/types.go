package puzzle

import "errors"

// Sentinel errors for puzzle operations.
var (
	// ErrOverlap indicates an invalid state: two placements claim the same point.
	ErrOverlap = errors.New("puzzle: pieces overlap")

	// ErrDuplicatePiece indicates a state with more than one placement of a piece.
	ErrDuplicatePiece = errors.New("puzzle: piece placed more than once")

	// ErrPieceNotPlaced indicates a move referencing a piece that is not part
	// of its starting state.
	ErrPieceNotPlaced = errors.New("puzzle: piece not in state")

	// ErrNilPiece indicates a placement with a nil piece.
	ErrNilPiece = errors.New("puzzle: nil piece")
)
