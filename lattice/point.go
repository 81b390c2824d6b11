package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPoint indicates a point literal without three leading comma-separated integers.
var ErrBadPoint = errors.New("lattice: malformed point literal")

// Point is an integer lattice vector. The zero value is the origin.
type Point struct {
	X, Y, Z int
}

// Unit axis directions.
var (
	Zero = Point{}

	PosX = Point{X: 1}  // Right
	NegX = Point{X: -1} // Left
	PosY = Point{Y: 1}  // Up
	NegY = Point{Y: -1} // Down
	PosZ = Point{Z: 1}  // Back
	NegZ = Point{Z: -1} // Forward
)

// Directions returns the six unit directions in declaration order
// (+X, −X, +Y, −Y, +Z, −Z). The returned slice is a fresh copy.
func Directions() []Point {
	return []Point{PosX, NegX, PosY, NegY, PosZ, NegZ}
}

// Translations returns the six unit directions in the order candidate
// translations are tried: Up, Down, Left, Right, Forward, Back.
// The returned slice is a fresh copy.
func Translations() []Point {
	return []Point{PosY, NegY, NegX, PosX, NegZ, PosZ}
}

// New returns the point (x, y, z).
func New(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Neg returns −p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p == Zero
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Point) Point {
	return Point{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Point) Point {
	return Point{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}

// Hash returns a structural 64-bit hash of p. Equal points hash equally.
func (p Point) Hash() uint64 {
	const (
		kx = 0x9E3779B97F4A7C15
		ky = 0xC2B2AE3D27D4EB4F
		kz = 0x165667B19E3779F9
	)
	h := uint64(int64(p.X))*kx ^ uint64(int64(p.Y))*ky ^ uint64(int64(p.Z))*kz
	h ^= h >> 29

	return h
}

// String renders p as a movement description, e.g. "Right", "Left 2, Up"
// or "None" for the origin. +Y is Up and +Z is Back.
func (p Point) String() string {
	parts := make([]string, 0, 3)
	for _, c := range [...]struct {
		v        int
		pos, neg string
	}{
		{p.X, "Right", "Left"},
		{p.Y, "Up", "Down"},
		{p.Z, "Back", "Forward"},
	} {
		switch {
		case c.v == 0:
			continue
		case c.v == 1:
			parts = append(parts, c.pos)
		case c.v == -1:
			parts = append(parts, c.neg)
		case c.v > 0:
			parts = append(parts, c.pos+" "+strconv.Itoa(c.v))
		default:
			parts = append(parts, c.neg+" "+strconv.Itoa(-c.v))
		}
	}
	if len(parts) == 0 {
		return "None"
	}

	return strings.Join(parts, ", ")
}

// Parse reads a point literal "x,y,z". Whitespace around each field is
// ignored, as is anything after the third field.
func Parse(s string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) < 3 {
		return Zero, fmt.Errorf("%w: %q needs 3 fields, got %d", ErrBadPoint, s, len(fields))
	}
	var v [3]int
	for i, f := range fields[:3] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Zero, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
		}
		v[i] = n
	}

	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}
