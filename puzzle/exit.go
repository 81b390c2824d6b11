package puzzle

import "github.com/katalvlaran/disentangle/lattice"

// ExitTest pairs a unit direction with the predicate deciding whether a set
// of points has left the box [lo, hi] on that side.
type ExitTest struct {
	Direction lattice.Point
	Clear     func(points []lattice.Point, lo, hi lattice.Point) bool
}

// StandardExitTests returns the six axis exit tests in the order
// +X, −X, +Y, −Y, +Z, −Z. Build the table once and share it.
func StandardExitTests() []ExitTest {
	return []ExitTest{
		{lattice.PosX, func(pts []lattice.Point, _, hi lattice.Point) bool {
			return all(pts, func(p lattice.Point) bool { return p.X > hi.X })
		}},
		{lattice.NegX, func(pts []lattice.Point, lo, _ lattice.Point) bool {
			return all(pts, func(p lattice.Point) bool { return p.X < lo.X })
		}},
		{lattice.PosY, func(pts []lattice.Point, _, hi lattice.Point) bool {
			return all(pts, func(p lattice.Point) bool { return p.Y > hi.Y })
		}},
		{lattice.NegY, func(pts []lattice.Point, lo, _ lattice.Point) bool {
			return all(pts, func(p lattice.Point) bool { return p.Y < lo.Y })
		}},
		{lattice.PosZ, func(pts []lattice.Point, _, hi lattice.Point) bool {
			return all(pts, func(p lattice.Point) bool { return p.Z > hi.Z })
		}},
		{lattice.NegZ, func(pts []lattice.Point, lo, _ lattice.Point) bool {
			return all(pts, func(p lattice.Point) bool { return p.Z < lo.Z })
		}},
	}
}

func all(pts []lattice.Point, pred func(lattice.Point) bool) bool {
	for _, p := range pts {
		if !pred(p) {
			return false
		}
	}

	return true
}
