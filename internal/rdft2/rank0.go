package rdft2

import (
	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
)

// Rank0Solver handles rank-0 transforms, which only move data between the
// real array and the half-complex pair, with at most one vector loop.
type Rank0Solver[T fftypes.Float] struct{}

// Name implements planner.Solver.
func (Rank0Solver[T]) Name() string { return "rdft2-rank0" }

// MkPlan implements planner.Solver.
func (Rank0Solver[T]) MkPlan(prob planner.Problem, _ *planner.Planner) planner.Plan {
	p, ok := prob.(*Problem[T])
	if !ok || p.Sz.Rank != 0 || !p.VecSz.Finite() || p.VecSz.Rank > 1 {
		return nil
	}

	if !p.OutOfPlace() && !InplaceStrides(p, -1) {
		return nil
	}

	pln := &rank0Plan[T]{kind: p.Kind, vl: 1}
	if p.VecSz.Rank == 1 {
		d := p.VecSz.Dims[0]
		pln.vl, pln.ivs, pln.ovs = d.N, d.IS, d.OS
	}

	pln.SetOps(planner.Opcount{Other: float64(2 * pln.vl)})
	pln.SetCost(pln.Ops().Cost())

	return pln
}

type rank0Plan[T fftypes.Float] struct {
	planner.PlanBase

	kind fftypes.Kind
	vl   int
	ivs  int
	ovs  int
}

// Apply copies r into rio and clears iio for R2HC, or copies rio into r for
// HC2R.
func (p *rank0Plan[T]) Apply(r, rio, iio Buffer[T]) {
	if p.kind.IsR2HC() {
		for i := range p.vl {
			v := r.At(i * p.ivs)
			rio.Set(i*p.ovs, v)
			iio.Set(i*p.ovs, 0)
		}

		return
	}

	for i := range p.vl {
		r.Set(i*p.ovs, rio.At(i*p.ivs))
	}
}

func (p *rank0Plan[T]) Awake(planner.Wakefulness) {}

func (p *rank0Plan[T]) Destroy() {}

func (p *rank0Plan[T]) Print(pr *planner.Printer) {
	pr.Printf("(rdft2-rank0-%s-x%d)", p.kind, p.vl)
}
