package rdft2

import (
	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

// NopSolver handles problems with nothing to compute: a zero extent in
// either tensor.
type NopSolver[T fftypes.Float] struct{}

// Name implements planner.Solver.
func (NopSolver[T]) Name() string { return "rdft2-nop" }

// MkPlan implements planner.Solver.
func (NopSolver[T]) MkPlan(prob planner.Problem, _ *planner.Planner) planner.Plan {
	p, ok := prob.(*Problem[T])
	if !ok || !p.Sz.Finite() || !p.VecSz.Finite() {
		return nil
	}

	if !tensor.HasZeroExtent(p.VecSz) && !tensor.HasZeroExtent(p.Sz) {
		return nil
	}

	return &nopPlan[T]{}
}

type nopPlan[T fftypes.Float] struct {
	planner.PlanBase
}

func (*nopPlan[T]) Apply(_, _, _ Buffer[T])  {}
func (*nopPlan[T]) Awake(planner.Wakefulness) {}
func (*nopPlan[T]) Destroy()                  {}
func (*nopPlan[T]) Print(pr *planner.Printer) { pr.Printf("(rdft2-nop)") }
