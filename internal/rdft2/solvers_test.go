package rdft2

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

func TestBatched_OutOfPlaceRank2Vector(t *testing.T) {
	t.Parallel()

	const (
		n    = 6
		half = n/2 + 1
		rows = 2
		cols = 3
	)

	rng := rand.New(rand.NewPCG(5, 6))
	r := randomReals(rng, rows*cols*n)
	rio := make([]float64, rows*cols*half)
	iio := make([]float64, rows*cols*half)

	p := NewProblem(
		tensor.New(tensor.IODim{N: n, IS: 1, OS: 1}),
		tensor.New(tensor.IODim{N: rows, IS: cols * n, OS: cols * half}, tensor.IODim{N: cols, IS: n, OS: half}),
		NewBuffer(r), NewBuffer(rio), NewBuffer(iio), fftypes.R2HC)

	pln := newLeafPlanner().MkPlan(p)
	if pln == nil {
		t.Fatal("MkPlan returned nil")
	}

	if !strings.HasPrefix(planner.Label(pln), "(rdft2-vrank>=1-x") {
		t.Errorf("expected a vector loop at the top, got %q", planner.Label(pln))
	}

	pln.Awake(planner.Awake)
	p.Solve(pln)

	for b := range rows * cols {
		wantRe, wantIm := referenceR2HC(r[b*n : (b+1)*n])
		assertApproxSlice(t, rio[b*half:(b+1)*half], wantRe, 1e-9, "rio")
		assertApproxSlice(t, iio[b*half:(b+1)*half], wantIm, 1e-9, "iio")
	}
}

func TestBatched_InPlaceInterleaved(t *testing.T) {
	t.Parallel()

	const (
		n       = 6
		half    = n/2 + 1
		howmany = 3
		row     = 2 * half
	)

	rng := rand.New(rand.NewPCG(7, 8))
	data := make([]float64, howmany*row)
	orig := make([][]float64, howmany)

	for b := range howmany {
		orig[b] = randomReals(rng, n)
		copy(data[b*row:], orig[b])
	}

	p := NewProblem(
		tensor.New(tensor.IODim{N: n, IS: 1, OS: 2}),
		tensor.New(tensor.IODim{N: howmany, IS: row, OS: row}),
		NewBuffer(data), NewBuffer(data), BufferAt(data, 1), fftypes.R2HC)

	if p.OutOfPlace() {
		t.Fatal("problem should be in-place")
	}

	pln := newLeafPlanner().MkPlan(p)
	if pln == nil {
		t.Fatal("MkPlan returned nil for a safe in-place layout")
	}

	pln.Awake(planner.Awake)
	p.Solve(pln)

	for b := range howmany {
		wantRe, wantIm := referenceR2HC(orig[b])
		for k := range half {
			gotRe, gotIm := data[b*row+2*k], data[b*row+2*k+1]
			if d := gotRe - wantRe[k]; d > 1e-9 || d < -1e-9 {
				t.Errorf("batch %d bin %d re = %v, want %v", b, k, gotRe, wantRe[k])
			}

			if d := gotIm - wantIm[k]; d > 1e-9 || d < -1e-9 {
				t.Errorf("batch %d bin %d im = %v, want %v", b, k, gotIm, wantIm[k])
			}
		}
	}
}

func TestBatched_UnsafeInPlaceHasNoPlan(t *testing.T) {
	t.Parallel()

	data := make([]float64, 32)

	// Vector stride 4 is shorter than one transform's 8-element footprint.
	p := NewProblem(
		tensor.New(tensor.IODim{N: 6, IS: 1, OS: 2}),
		tensor.New(tensor.IODim{N: 3, IS: 4, OS: 4}),
		NewBuffer(data), NewBuffer(data), BufferAt(data, 1), fftypes.R2HC)

	if pln := newLeafPlanner().MkPlan(p); pln != nil {
		t.Fatalf("MkPlan = %q, want no plan", planner.Label(pln))
	}
}

func TestRank0_CopiesAcrossVector(t *testing.T) {
	t.Parallel()

	r := []float64{1, 2, 3, 4, 5}
	out := make([]float64, 10)
	for i := range out {
		out[i] = -7
	}

	p := NewProblem(tensor.New(), tensor.New(tensor.IODim{N: 5, IS: 1, OS: 2}),
		NewBuffer(r), NewBuffer(out), BufferAt(out, 1), fftypes.R2HC)

	plnr := planner.New(planner.Options{Flags: planner.NoUgly})
	RegisterAll[float64](plnr)

	pln := plnr.MkPlan(p)
	if got := planner.Label(pln); got != "(rdft2-rank0-r2hc-x5)" {
		t.Fatalf("label = %q, want the rank-0 plan", got)
	}

	p.Solve(pln)

	for i, v := range r {
		if out[2*i] != v || out[2*i+1] != 0 {
			t.Errorf("element %d = (%v, %v), want (%v, 0)", i, out[2*i], out[2*i+1], v)
		}
	}

	back := make([]float64, 5)
	inv := NewProblem(tensor.New(), tensor.New(tensor.IODim{N: 5, IS: 2, OS: 1}),
		NewBuffer(back), NewBuffer(out), BufferAt(out, 1), fftypes.HC2R)
	inv.Solve(plnr.MkPlan(inv))

	for i, v := range r {
		if back[i] != v {
			t.Errorf("hc2r element %d = %v, want %v", i, back[i], v)
		}
	}
}

func TestNop_ZeroExtent(t *testing.T) {
	t.Parallel()

	p := oopProblem(fftypes.R2HC, tensor.New(tensor.IODim{N: 8, IS: 1, OS: 1}),
		tensor.New(tensor.IODim{N: 0, IS: 8, OS: 5}))

	pln := newLeafPlanner().MkPlan(p)
	if got := planner.Label(pln); got != "(rdft2-nop)" {
		t.Fatalf("label = %q, want (rdft2-nop)", got)
	}

	if pln.Cost() != 0 || !pln.Ops().IsZero() {
		t.Errorf("nop cost = %v, ops = %+v", pln.Cost(), pln.Ops())
	}
}

func TestRegisterAll_Order(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 5)
	for _, s := range newLeafPlanner().Solvers() {
		names = append(names, s.Name())
	}

	want := "rdft2-nop rdft2-rank0 rdft2-direct rdft2-vrank>=1/1 rdft2-vrank>=1/-1"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("solvers = %q, want %q", got, want)
	}
}
