package solver_test

import (
	"testing"

	"github.com/katalvlaran/disentangle/solver"
)

// BenchmarkSolve_Vault measures a full search of the two-piece vault,
// including move generation for every pushed frame.
func BenchmarkSolve_Vault(b *testing.B) {
	initial := vault(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := solver.New(initial)
		if err != nil {
			b.Fatal(err)
		}
		for !s.Done() {
			if err = s.Step(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
