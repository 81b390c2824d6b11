// Package lattice provides the integer 3D vector used to address cells of a
// cubic puzzle lattice.
//
// What:
//
//   - Point: immutable (X, Y, Z) value with structural equality, usable
//     directly as a map key.
//   - Arithmetic: Add, Mul (scalar), Neg, and componentwise Min / Max.
//   - Directions: the six unit axis vectors in the fixed order
//     +X, −X, +Y, −Y, +Z, −Z; Translations: the same six in search order
//     Up, Down, Left, Right, Forward, Back.
//   - Parse: reads the "x,y,z" literal used by puzzle definition files;
//     fields past the third are ignored.
//
// Errors:
//
//   - ErrBadPoint   a literal does not start with three integers.
package lattice
