// Package disentangle is a solver for 3D disentanglement ("burr") puzzles:
// interlocking pieces made of unit cubes that must be slid apart and
// removed one group at a time.
//
// What is in the box?
//
//	lattice/       integer 3D points, the six unit directions, parsing
//	puzzle/        pieces, placements, immutable states, moves, move generation
//	parser/        text puzzle definitions (one block per piece)
//	solver/        resumable depth-first search with memo and shortcut propagation
//	runner/        background driving loop with step limits and progress reports
//	config/        YAML run configuration
//	cmd/disentangle command line front end
//
// A search is driven one Step at a time, so a caller can poll progress,
// show the current state, or stop and resume at any point:
//
//	initial, _ := parser.ReadFile("puzzle.txt")
//	s, _ := solver.New(initial)
//	for !s.Done() {
//		if err := s.Step(); err != nil {
//			return err
//		}
//	}
//	for _, f := range s.MoveSequence()[1:] {
//		fmt.Println(f.Move)
//	}
//
// States are normalised before they are memoised, so two positions that
// differ only by a rigid translation of the whole assembly are the same
// search node.
//
//	go install github.com/katalvlaran/disentangle/cmd/disentangle@latest
package disentangle
