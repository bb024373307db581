package algordft

import (
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/rdft2"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

// Plan is an executable batched real/half-complex transform bound to the
// arrays it was planned with.
//
// R2HC plans read the real array and write n/2+1 half-complex entries per
// transform into rio (real parts) and iio (imaginary parts). HC2R plans do
// the reverse and are unnormalised: HC2R after R2HC scales by the product of
// the transform sizes.
//
// A Plan must not be executed concurrently with itself.
type Plan[T Float] struct {
	pln       rdft2.Plan[T]
	prob      *rdft2.Problem[T]
	lens      [3]int
	unaligned bool
}

// PlanMany plans a transform of size sz repeated over the vector dimensions
// vecsz. Strides are in elements; for R2HC the input stride applies to r and
// the output stride to rio/iio, for HC2R the other way round. For the last
// transform dimension the half-complex side has n/2+1 entries.
//
// Passing the same array for r and rio (and r shifted by one for iio)
// requests an in-place transform.
//
// Returns ErrNilSlice, ErrInvalidLength, ErrInvalidStride or
// ErrLengthMismatch for bad arguments and ErrNoPlan when no strategy applies.
func PlanMany[T Float](pl *Planner, kind Kind, sz, vecsz []IODim, r, rio, iio []T) (*Plan[T], error) {
	if r == nil || rio == nil || iio == nil {
		return nil, ErrNilSlice
	}

	szT, vecT := tensor.New(sz...), tensor.New(vecsz...)

	realNeed, cplxNeed, err := requiredLengths(kind, szT, vecT)
	if err != nil {
		return nil, err
	}

	if len(r) < realNeed || len(rio) < cplxNeed || len(iio) < cplxNeed {
		return nil, ErrLengthMismatch
	}

	prob := rdft2.NewProblem(szT, vecT,
		rdft2.NewBuffer(r), rdft2.NewBuffer(rio), rdft2.NewBuffer(iio), kind)

	session := pl.session()
	rdft2.RegisterAll[T](session)

	pln := session.MkPlan(prob)
	if pln == nil {
		return nil, ErrNoPlan
	}

	rp, ok := pln.(rdft2.Plan[T])
	if !ok {
		pln.Destroy()
		return nil, ErrNoPlan
	}

	rp.Awake(planner.Awake)

	return &Plan[T]{
		pln:       rp,
		prob:      prob,
		lens:      [3]int{len(r), len(rio), len(iio)},
		unaligned: session.HasProblemFlag(planner.PossiblyUnaligned),
	}, nil
}

// PlanR2HC1D plans howmany contiguous size-n R2HC transforms: transform b
// reads r[b*n:(b+1)*n] and writes bins to rio/iio[b*(n/2+1):].
func PlanR2HC1D[T Float](pl *Planner, n, howmany int, r, rio, iio []T) (*Plan[T], error) {
	half := n/2 + 1

	return PlanMany(pl, R2HC,
		[]IODim{{N: n, IS: 1, OS: 1}},
		[]IODim{{N: howmany, IS: n, OS: half}},
		r, rio, iio)
}

// PlanHC2R1D plans the inverse of PlanR2HC1D for the same layout.
func PlanHC2R1D[T Float](pl *Planner, n, howmany int, r, rio, iio []T) (*Plan[T], error) {
	half := n/2 + 1

	return PlanMany(pl, HC2R,
		[]IODim{{N: n, IS: 1, OS: 1}},
		[]IODim{{N: howmany, IS: half, OS: n}},
		r, rio, iio)
}

// Execute runs the plan on the arrays it was planned with.
func (p *Plan[T]) Execute() error {
	if p.pln == nil {
		return ErrPlanDestroyed
	}

	p.prob.Solve(p.pln)

	return nil
}

// ExecuteOn runs the plan on other arrays of at least the planned lengths
// that alias each other the same way the planned arrays did.
func (p *Plan[T]) ExecuteOn(r, rio, iio []T) error {
	if p.pln == nil {
		return ErrPlanDestroyed
	}

	if r == nil || rio == nil || iio == nil {
		return ErrNilSlice
	}

	if len(r) < p.lens[0] || len(rio) < p.lens[1] || len(iio) < p.lens[2] {
		return ErrLengthMismatch
	}

	rb, riob, iiob := rdft2.NewBuffer(r), rdft2.NewBuffer(rio), rdft2.NewBuffer(iio)
	if rb.Same(riob) != p.prob.R.Same(p.prob.RIO) || rb.Same(iiob) != p.prob.R.Same(p.prob.IIO) {
		return ErrInPlaceMismatch
	}

	p.pln.Apply(rb, riob, iiob)

	return nil
}

// Destroy releases the plan. Further executions return ErrPlanDestroyed.
func (p *Plan[T]) Destroy() {
	if p.pln == nil {
		return
	}

	p.pln.Awake(planner.Sleepy)
	p.pln.Destroy()
	p.pln = nil
}

// String returns the nested plan description.
func (p *Plan[T]) String() string {
	if p.pln == nil {
		return "(destroyed)"
	}

	return planner.Label(p.pln)
}

// Kind returns the transform direction.
func (p *Plan[T]) Kind() Kind {
	return p.prob.Kind
}

// Ops returns the operation count of one execution.
func (p *Plan[T]) Ops() Opcount {
	if p.pln == nil {
		return Opcount{}
	}

	return p.pln.Ops()
}

// Cost returns the estimated or measured cost of one execution.
func (p *Plan[T]) Cost() float64 {
	if p.pln == nil {
		return 0
	}

	return p.pln.Cost()
}

// PossiblyUnaligned reports whether some loop stride in the plan breaks
// SIMD alignment on this CPU.
func (p *Plan[T]) PossiblyUnaligned() bool {
	return p.unaligned
}

// BufferLengths returns the minimum lengths of the real array and of each
// half-complex array for a transform planned with sz and vecsz.
func BufferLengths(kind Kind, sz, vecsz []IODim) (realLen, cplxLen int, err error) {
	return requiredLengths(kind, tensor.New(sz...), tensor.New(vecsz...))
}

// span is one dimension as seen from a single array.
type span struct {
	n      int
	stride int
}

// requiredLengths returns how many elements the real array and each
// half-complex array need, validating extents and strides.
func requiredLengths(kind Kind, sz, vecsz tensor.Tensor) (realNeed, cplxNeed int, err error) {
	var realSpans, cplxSpans []span

	for _, d := range vecsz.Dims {
		rs, cs := rdft2.Strides(kind, d)
		realSpans = append(realSpans, span{d.N, rs})
		cplxSpans = append(cplxSpans, span{d.N, cs})
	}

	for i, d := range sz.Dims {
		rs, cs := rdft2.Strides(kind, d)
		nc := d.N

		if i == sz.Rank-1 {
			nc = d.N/2 + 1
		}

		realSpans = append(realSpans, span{d.N, rs})
		cplxSpans = append(cplxSpans, span{nc, cs})
	}

	empty := false

	for _, s := range append(realSpans, cplxSpans...) {
		if s.n < 0 {
			return 0, 0, ErrInvalidLength
		}

		if s.stride < 0 {
			return 0, 0, ErrInvalidStride
		}

		empty = empty || s.n == 0
	}

	if empty {
		return 0, 0, nil
	}

	realNeed, err = maxIndex(realSpans)
	if err != nil {
		return 0, 0, err
	}

	cplxNeed, err = maxIndex(cplxSpans)
	if err != nil {
		return 0, 0, err
	}

	return realNeed + 1, cplxNeed + 1, nil
}

// maxIndex returns the largest flattened index the spans reach, or
// ErrInvalidStride if it overflows int.
func maxIndex(spans []span) (int, error) {
	maxInt := int(^uint(0) >> 1)
	total := 0

	for _, s := range spans {
		last := s.n - 1
		if s.stride != 0 && last > (maxInt-1)/s.stride {
			return 0, ErrInvalidStride
		}

		step := last * s.stride
		if total > maxInt-1-step {
			return 0, ErrInvalidStride
		}

		total += step
	}

	return total, nil
}
