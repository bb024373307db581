package rdft2

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

// Vector loop plans: they peel one dimension off the vector tensor, run it
// as an explicit loop and leave the rest of the problem to a child plan.
// Applied recursively they turn any vector rank into loops around a
// solver that only handles single transforms. Each solver instance picks
// its loop dimension by position (see tensor.PickDim), so registering
// several of them lets the planner compare loop orders.

// vrankGEQ1Buddies are the loop positions registered by RegisterVRankGEQ1:
// first usable dimension, then last usable dimension. The first entry is the
// canonical buddy kept under planner.NoVRankSplits.
var vrankGEQ1Buddies = []int{1, -1}

// VRankGEQ1Buddies returns a copy of the loop positions RegisterVRankGEQ1
// registers, canonical position first.
func VRankGEQ1Buddies() []int {
	return slices.Clone(vrankGEQ1Buddies)
}

// VRankGEQ1Solver builds vector loop plans for one loop position.
type VRankGEQ1Solver[T fftypes.Float] struct {
	vecloopDim int
	buddies    []int
}

// NewVRankGEQ1Solver returns a solver looping over the vecloopDim-th usable
// vector dimension. buddies lists every position registered for the family
// and must contain vecloopDim. The solver keeps its own copy of buddies.
func NewVRankGEQ1Solver[T fftypes.Float](vecloopDim int, buddies []int) *VRankGEQ1Solver[T] {
	return &VRankGEQ1Solver[T]{vecloopDim: vecloopDim, buddies: slices.Clone(buddies)}
}

// Name implements planner.Solver.
func (s *VRankGEQ1Solver[T]) Name() string {
	return fmt.Sprintf("rdft2-vrank>=1/%d", s.vecloopDim)
}

// VecloopDim returns the loop position this solver prefers.
func (s *VRankGEQ1Solver[T]) VecloopDim() int {
	return s.vecloopDim
}

func (s *VRankGEQ1Solver[T]) pickDim(vecsz tensor.Tensor, oop bool) tensor.DimChoice {
	return tensor.PickDim(s.vecloopDim, s.buddies, vecsz, oop)
}

// applicable0 checks that the problem has a vector dimension this solver can
// loop over without hazards.
func (s *VRankGEQ1Solver[T]) applicable0(prob planner.Problem) (*Problem[T], tensor.DimChoice) {
	// Sz must be finite as well: InplaceStrides and TensorMaxIndex index its
	// dims.
	p, ok := prob.(*Problem[T])
	if !ok || !p.Sz.Finite() || !p.VecSz.Finite() || p.VecSz.Rank == 0 {
		return nil, tensor.DimChoice{}
	}

	oop := p.OutOfPlace()

	choice := s.pickDim(p.VecSz, oop)
	if !choice.OK {
		return nil, choice
	}

	// Out-of-place iterations never share storage.
	if oop || InplaceStrides(p, choice.Index) {
		return p, choice
	}

	return nil, tensor.DimChoice{}
}

// applicable layers the session's policy on top of applicable0.
func (s *VRankGEQ1Solver[T]) applicable(prob planner.Problem, plnr *planner.Planner) (*Problem[T], tensor.DimChoice) {
	p, choice := s.applicable0(prob)
	if p == nil {
		return nil, choice
	}

	if plnr.NoVRankSplits() && s.vecloopDim != s.buddies[0] {
		return nil, tensor.DimChoice{}
	}

	if plnr.NoUgly() {
		d := p.VecSz.Dims[choice.Index]

		// Vector stride inside the footprint of a multi-dimensional
		// transform.
		if p.Sz.Rank > 1 &&
			tensor.IMin(tensor.IAbs(d.IS), tensor.IAbs(d.OS)) < TensorMaxIndex(p.Sz, p.Kind) {
			return nil, tensor.DimChoice{}
		}

		// Left to the rank-0 solver.
		if p.Sz.Rank == 0 && p.VecSz.Rank == 1 {
			return nil, tensor.DimChoice{}
		}

		if plnr.NonThreadedIcky() {
			return nil, tensor.DimChoice{}
		}
	}

	return p, choice
}

// MkPlan implements planner.Solver.
func (s *VRankGEQ1Solver[T]) MkPlan(prob planner.Problem, plnr *planner.Planner) planner.Plan {
	p, choice := s.applicable(prob, plnr)
	if p == nil {
		return nil
	}

	d := p.VecSz.Dims[choice.Index]
	if d.N > 0 {
		size, align := elemSize[T](), plnr.Alignment()
		if !tensor.StrideAligned(d.IS, size, align) || !tensor.StrideAligned(d.OS, size, align) {
			plnr.SetProblemFlags(planner.PossiblyUnaligned)
		}
	}

	sub := &Problem[T]{
		Sz:    tensor.Copy(p.Sz),
		VecSz: tensor.CopyExcept(p.VecSz, choice.Index),
		R:     p.R,
		RIO:   p.RIO,
		IIO:   p.IIO,
		Kind:  p.Kind,
	}

	cldPlan := plnr.MkPlan(sub)
	if cldPlan == nil {
		return nil
	}

	cld := asPlan[T](cldPlan)

	pln := &vrankGEQ1Plan[T]{
		cld:    cld,
		kind:   p.Kind,
		vl:     d.N,
		ivs:    d.IS,
		ovs:    d.OS,
		solver: s,
	}

	pln.SetOps(cld.Ops().Scale(float64(pln.vl)))
	pln.SetCost(float64(pln.vl) * cld.Cost())

	return pln
}

type vrankGEQ1Plan[T fftypes.Float] struct {
	planner.PlanBase

	cld  Plan[T]
	kind fftypes.Kind
	vl   int
	ivs  int
	ovs  int

	solver *VRankGEQ1Solver[T]
}

// Apply runs the child once per loop index. The input side advances by ivs
// and the output side by ovs, so the real buffer moves by ivs for R2HC and
// by ovs for HC2R.
func (p *vrankGEQ1Plan[T]) Apply(r, rio, iio Buffer[T]) {
	switch p.kind {
	case fftypes.R2HC:
		for i := range p.vl {
			p.cld.Apply(r.Add(i*p.ivs), rio.Add(i*p.ovs), iio.Add(i*p.ovs))
		}
	case fftypes.HC2R:
		for i := range p.vl {
			p.cld.Apply(r.Add(i*p.ovs), rio.Add(i*p.ivs), iio.Add(i*p.ivs))
		}
	}
}

func (p *vrankGEQ1Plan[T]) Awake(w planner.Wakefulness) {
	p.cld.Awake(w)
}

func (p *vrankGEQ1Plan[T]) Destroy() {
	if p.cld != nil {
		p.cld.Destroy()
		p.cld = nil
	}
}

func (p *vrankGEQ1Plan[T]) Print(pr *planner.Printer) {
	pr.Printf("(rdft2-vrank>=1-x%d/%d", p.vl, p.solver.vecloopDim)
	pr.Child(p.cld)
	pr.Printf(")")
}

// RegisterVRankGEQ1 registers one vector loop solver per entry of
// VRankGEQ1Buddies.
func RegisterVRankGEQ1[T fftypes.Float](plnr *planner.Planner) {
	for _, which := range vrankGEQ1Buddies {
		plnr.Register(NewVRankGEQ1Solver[T](which, vrankGEQ1Buddies))
	}
}
