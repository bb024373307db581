package rdft2

import (
	"math"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
)

// DirectSolver computes a single rank-1 transform by the defining sum.
// It is the leaf under vector loop plans; its O(n^2) cost keeps it honest
// in the ranking but it is not meant to compete with real codelets.
type DirectSolver[T fftypes.Float] struct{}

// Name implements planner.Solver.
func (DirectSolver[T]) Name() string { return "rdft2-direct" }

// MkPlan implements planner.Solver. In-place problems are accepted because
// the plan copies its input to scratch before writing.
func (DirectSolver[T]) MkPlan(prob planner.Problem, _ *planner.Planner) planner.Plan {
	p, ok := prob.(*Problem[T])
	if !ok || p.Sz.Rank != 1 || p.VecSz.Rank != 0 || p.Sz.Dims[0].N < 1 {
		return nil
	}

	d := p.Sz.Dims[0]
	rs, cs := Strides(p.Kind, d)

	pln := &directPlan[T]{kind: p.Kind, n: d.N, rs: rs, cs: cs}

	// Every output bin takes n multiply-adds for each of its two parts.
	work := float64(2 * d.N * (d.N/2 + 1))
	pln.SetOps(planner.Opcount{Add: work, Mul: work})
	pln.SetCost(pln.Ops().Cost())

	return pln
}

type directPlan[T fftypes.Float] struct {
	planner.PlanBase

	kind fftypes.Kind
	n    int
	rs   int
	cs   int

	// Allocated while awake.
	cos     []float64
	sin     []float64
	scratch []float64
}

func (p *directPlan[T]) Awake(w planner.Wakefulness) {
	if w == planner.Sleepy {
		p.cos, p.sin, p.scratch = nil, nil, nil
		return
	}

	if p.cos != nil {
		return
	}

	p.cos = make([]float64, p.n)
	p.sin = make([]float64, p.n)

	for m := range p.n {
		angle := 2 * math.Pi * float64(m) / float64(p.n)
		p.cos[m] = math.Cos(angle)
		p.sin[m] = math.Sin(angle)
	}

	p.scratch = make([]float64, 2*(p.n/2+1))
}

func (p *directPlan[T]) Destroy() {
	p.Awake(planner.Sleepy)
}

func (p *directPlan[T]) Print(pr *planner.Printer) {
	pr.Printf("(rdft2-direct-%s-%d)", p.kind, p.n)
}

// Apply requires the plan to be awake.
func (p *directPlan[T]) Apply(r, rio, iio Buffer[T]) {
	if p.kind.IsR2HC() {
		p.r2hc(r, rio, iio)
	} else {
		p.hc2r(r, rio, iio)
	}
}

// r2hc computes X[k] = sum_j x[j] exp(-2 pi i jk/n) for k = 0..n/2.
func (p *directPlan[T]) r2hc(r, rio, iio Buffer[T]) {
	n := p.n
	x := p.scratch[:0]

	for j := range n {
		x = append(x, float64(r.At(j*p.rs)))
	}

	for k := 0; k <= n/2; k++ {
		var re, im float64

		for j := range n {
			m := (j * k) % n
			re += x[j] * p.cos[m]
			im -= x[j] * p.sin[m]
		}

		rio.Set(k*p.cs, T(re))
		iio.Set(k*p.cs, T(im))
	}
}

// hc2r computes the unnormalised inverse x[j] = sum_k X[k] exp(2 pi i jk/n)
// over the Hermitian extension of X. The imaginary parts of X[0] and, for
// even n, X[n/2] are ignored.
func (p *directPlan[T]) hc2r(r, rio, iio Buffer[T]) {
	n := p.n
	half := n/2 + 1
	re := p.scratch[:half]
	im := p.scratch[half : 2*half]

	for k := range half {
		re[k] = float64(rio.At(k * p.cs))
		im[k] = float64(iio.At(k * p.cs))
	}

	for j := range n {
		sum := re[0]

		for k := 1; 2*k < n; k++ {
			m := (j * k) % n
			sum += 2 * (re[k]*p.cos[m] - im[k]*p.sin[m])
		}

		if n%2 == 0 {
			if j%2 == 0 {
				sum += re[n/2]
			} else {
				sum -= re[n/2]
			}
		}

		r.Set(j*p.rs, T(sum))
	}
}
