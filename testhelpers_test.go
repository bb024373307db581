package algordft

import (
	"math"
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxFloat64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

// referenceBins returns the first n/2+1 DFT bins of x.
func referenceBins(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n/2+1)

	for k := range out {
		for j, v := range x {
			out[k] += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*float64(j*k)/float64(n)))
		}
	}

	return out
}
