package rdft2

import (
	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
)

// RegisterAll registers every RDFT2 solver for element type T.
// Cheap special cases come first so they win ties.
func RegisterAll[T fftypes.Float](plnr *planner.Planner) {
	plnr.Register(NopSolver[T]{})
	plnr.Register(Rank0Solver[T]{})
	plnr.Register(DirectSolver[T]{})
	RegisterVRankGEQ1[T](plnr)
}
