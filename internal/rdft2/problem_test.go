package rdft2

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

func TestBuffer_Same(t *testing.T) {
	t.Parallel()

	data := make([]float64, 8)

	a := NewBuffer(data)
	if !a.Same(NewBuffer(data)) {
		t.Error("buffers on the same array and offset differ")
	}

	if a.Same(a.Add(1)) {
		t.Error("buffers at different offsets are Same")
	}

	if !a.Add(2).Same(NewBuffer(data[2:])) {
		t.Error("data[2:] and data+2 should be the same position")
	}

	if a.Same(NewBuffer(make([]float64, 8))) {
		t.Error("distinct arrays are Same")
	}

	var nilBuf Buffer[float64]
	if nilBuf.Same(a) || !nilBuf.Same(Buffer[float64]{}) {
		t.Error("nil buffer identity is wrong")
	}
}

func TestProblem_OutOfPlace(t *testing.T) {
	t.Parallel()

	sz := tensor.New(tensor.IODim{N: 4, IS: 1, OS: 2})

	if !oopProblem(fftypes.R2HC, sz, tensor.New()).OutOfPlace() {
		t.Error("distinct buffers reported in-place")
	}

	if inplaceProblem(fftypes.R2HC, sz, tensor.New()).OutOfPlace() {
		t.Error("rio == r reported out-of-place")
	}

	data := make([]float64, 4)
	p := NewProblem(sz, tensor.New(), NewBuffer(data), NewBuffer(make([]float64, 4)), NewBuffer(data), fftypes.HC2R)

	if p.OutOfPlace() {
		t.Error("iio == r reported out-of-place")
	}
}

func TestProblem_Signature(t *testing.T) {
	t.Parallel()

	sz := tensor.New(tensor.IODim{N: 8, IS: 1, OS: 1})
	vec := tensor.New(tensor.IODim{N: 4, IS: 10, OS: 5})

	got := oopProblem(fftypes.R2HC, sz, vec).Signature()
	if got != "f64/r2hc/sz[8:1:1]/vec[4:10:5]/oop" {
		t.Errorf("Signature() = %q", got)
	}

	f32 := NewProblem(sz, vec, NewBuffer(make([]float32, 1)), NewBuffer(make([]float32, 1)),
		NewBuffer(make([]float32, 1)), fftypes.HC2R)
	if !strings.HasPrefix(f32.Signature(), "f32/hc2r/") {
		t.Errorf("float32 Signature() = %q", f32.Signature())
	}

	if !strings.HasSuffix(inplaceProblem(fftypes.R2HC, sz, vec).Signature(), "/inplace") {
		t.Error("in-place problem signature lacks the in-place marker")
	}
}

func TestProblem_Zero(t *testing.T) {
	t.Parallel()

	r := []float64{1, 2}
	rio := []float64{3}
	iio := []float64{4}

	p := NewProblem(tensor.New(), tensor.New(), NewBuffer(r), NewBuffer(rio), NewBuffer(iio), fftypes.R2HC)
	p.Zero()

	if r[0] != 0 || r[1] != 0 || rio[0] != 0 || iio[0] != 0 {
		t.Errorf("Zero left data behind: r=%v rio=%v iio=%v", r, rio, iio)
	}
}

func TestStrides(t *testing.T) {
	t.Parallel()

	d := tensor.IODim{N: 8, IS: 3, OS: 5}

	if rs, cs := Strides(fftypes.R2HC, d); rs != 3 || cs != 5 {
		t.Errorf("R2HC strides = (%d, %d), want (3, 5)", rs, cs)
	}

	if rs, cs := Strides(fftypes.HC2R, d); rs != 5 || cs != 3 {
		t.Errorf("HC2R strides = (%d, %d), want (5, 3)", rs, cs)
	}
}

func TestTensorMaxIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		sz   tensor.Tensor
		kind fftypes.Kind
		want int
	}{
		{"rank0", tensor.New(), fftypes.R2HC, 0},
		{"rank1 real side wins", tensor.New(tensor.IODim{N: 8, IS: 1, OS: 1}), fftypes.R2HC, 7},
		{"rank1 complex side wins", tensor.New(tensor.IODim{N: 8, IS: 1, OS: 2}), fftypes.R2HC, 8},
		{"rank1 hc2r swaps roles", tensor.New(tensor.IODim{N: 8, IS: 2, OS: 1}), fftypes.HC2R, 8},
		{"rank2", tensor.New(tensor.IODim{N: 4, IS: 8, OS: -8}, tensor.IODim{N: 8, IS: 1, OS: 1}), fftypes.R2HC, 31},
	}

	for _, tc := range cases {
		if got := TensorMaxIndex(tc.sz, tc.kind); got != tc.want {
			t.Errorf("%s: TensorMaxIndex = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestInplaceStrides(t *testing.T) {
	t.Parallel()

	// n=4 real at stride 1, 3 complex at stride 2: one transform spans 6.
	sz := tensor.New(tensor.IODim{N: 4, IS: 1, OS: 2})

	cases := []struct {
		vec  tensor.IODim
		want bool
	}{
		{tensor.IODim{N: 3, IS: 6, OS: 6}, true},
		{tensor.IODim{N: 3, IS: -6, OS: -6}, true},
		{tensor.IODim{N: 3, IS: 8, OS: 8}, true},
		{tensor.IODim{N: 3, IS: 4, OS: 4}, false},
		{tensor.IODim{N: 3, IS: 6, OS: 8}, false},
	}

	for _, tc := range cases {
		p := inplaceProblem(fftypes.R2HC, sz, tensor.New(tc.vec))
		if got := InplaceStrides(p, 0); got != tc.want {
			t.Errorf("InplaceStrides(vec=%v) = %v, want %v", tc.vec, got, tc.want)
		}
	}

	rank0 := inplaceProblem(fftypes.R2HC, tensor.New(), tensor.New(tensor.IODim{N: 3, IS: 2, OS: 2}))
	if !InplaceStrides(rank0, 0) {
		t.Error("rank-0 transform with equal vector strides rejected")
	}

	mixed := inplaceProblem(fftypes.R2HC, sz,
		tensor.New(tensor.IODim{N: 3, IS: 6, OS: 6}, tensor.IODim{N: 2, IS: 2, OS: 2}))
	if InplaceStrides(mixed, -1) {
		t.Error("all-dimension check accepted an unsafe dimension")
	}

	if !InplaceStrides(mixed, 0) {
		t.Error("single-dimension check rejected the safe dimension")
	}

	badLeading := inplaceProblem(fftypes.R2HC,
		tensor.New(tensor.IODim{N: 2, IS: 8, OS: 6}, tensor.IODim{N: 4, IS: 1, OS: 2}),
		tensor.New(tensor.IODim{N: 3, IS: 64, OS: 64}))
	if InplaceStrides(badLeading, 0) {
		t.Error("leading transform dimension with unequal strides accepted")
	}
}
