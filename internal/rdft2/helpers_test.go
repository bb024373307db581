package rdft2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rdft/internal/cpu"
	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

// applyCall records the buffer positions one spy Apply saw.
type applyCall struct {
	R, RIO, IIO int
}

// spyPlan stands in for a codelet under vector loops.
type spyPlan struct {
	planner.PlanBase

	calls     []applyCall
	wake      []planner.Wakefulness
	destroyed int
	onDestroy func()
}

func (s *spyPlan) Apply(r, rio, iio Buffer[float64]) {
	s.calls = append(s.calls, applyCall{R: r.Offset(), RIO: rio.Offset(), IIO: iio.Offset()})
}

func (s *spyPlan) Awake(w planner.Wakefulness) { s.wake = append(s.wake, w) }

func (s *spyPlan) Destroy() {
	s.destroyed++
	if s.onDestroy != nil {
		s.onDestroy()
	}
}

func (s *spyPlan) Print(pr *planner.Printer) { pr.Printf("(spy)") }

// spySolver solves any problem with an empty vector tensor.
type spySolver struct {
	built []*spyPlan
}

var spyOps = planner.Opcount{Add: 3, Mul: 1}

const spyCost = 7.0

func (*spySolver) Name() string { return "spy" }

func (s *spySolver) MkPlan(prob planner.Problem, _ *planner.Planner) planner.Plan {
	p, ok := prob.(*Problem[float64])
	if !ok || p.VecSz.Rank != 0 {
		return nil
	}

	pln := &spyPlan{}
	pln.SetOps(spyOps)
	pln.SetCost(spyCost)
	s.built = append(s.built, pln)

	return pln
}

// newSpyPlanner returns a planner holding the spy leaf and both vector loop
// buddies.
func newSpyPlanner(opts planner.Options) (*planner.Planner, *spySolver) {
	if opts.Features == nil {
		opts.Features = &cpu.Features{ForceGeneric: true}
	}

	plnr := planner.New(opts)
	spy := &spySolver{}
	plnr.Register(spy)
	RegisterVRankGEQ1[float64](plnr)

	return plnr, spy
}

// vrankSolvers returns the first- and last-dimension buddies.
func vrankSolvers() (*VRankGEQ1Solver[float64], *VRankGEQ1Solver[float64]) {
	return NewVRankGEQ1Solver[float64](1, VRankGEQ1Buddies()),
		NewVRankGEQ1Solver[float64](-1, VRankGEQ1Buddies())
}

// oopProblem builds an out-of-place problem on fresh, distinct arrays.
func oopProblem(kind fftypes.Kind, sz, vecsz tensor.Tensor) *Problem[float64] {
	return NewProblem(sz, vecsz,
		NewBuffer(make([]float64, 1)),
		NewBuffer(make([]float64, 1)),
		NewBuffer(make([]float64, 1)),
		kind)
}

// inplaceProblem builds a problem whose real array doubles as the
// interleaved half-complex pair: rio = r, iio = r+1.
func inplaceProblem(kind fftypes.Kind, sz, vecsz tensor.Tensor) *Problem[float64] {
	data := make([]float64, 2)

	return NewProblem(sz, vecsz, NewBuffer(data), NewBuffer(data), BufferAt(data, 1), kind)
}

func assertApproxSlice(t *testing.T, got, want []float64, tol float64, what string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: len %d, want %d", what, len(got), len(want))
	}

	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s[%d] = %v, want %v (diff=%v)", what, i, got[i], want[i], math.Abs(got[i]-want[i]))
		}
	}
}
