// Package rdft2 plans real-to-half-complex (R2HC) and half-complex-to-real
// (HC2R) transforms over batches described by a vector tensor.
//
// The real array is addressed through one buffer (R); the half-complex
// array through a pair of buffers holding real parts (RIO) and imaginary
// parts (IIO). For a transform dimension of size n the half-complex side
// has n/2+1 entries.
package rdft2

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

// Problem is an RDFT2 transform: a transform-size tensor, a vector tensor
// of independent repetitions, the three buffers and the direction.
// Problems are never mutated after construction.
type Problem[T fftypes.Float] struct {
	Sz    tensor.Tensor
	VecSz tensor.Tensor
	R     Buffer[T]
	RIO   Buffer[T]
	IIO   Buffer[T]
	Kind  fftypes.Kind
}

// NewProblem builds a problem. The tensors are copied.
func NewProblem[T fftypes.Float](sz, vecsz tensor.Tensor, r, rio, iio Buffer[T], kind fftypes.Kind) *Problem[T] {
	return &Problem[T]{
		Sz:    tensor.Copy(sz),
		VecSz: tensor.Copy(vecsz),
		R:     r,
		RIO:   rio,
		IIO:   iio,
		Kind:  kind,
	}
}

// OutOfPlace reports whether the real buffer differs from both
// half-complex buffers.
func (p *Problem[T]) OutOfPlace() bool {
	return !p.R.Same(p.RIO) && !p.R.Same(p.IIO)
}

// Signature implements planner.Problem.
func (p *Problem[T]) Signature() string {
	place := "oop"
	if !p.OutOfPlace() {
		place = "inplace"
	}

	return fmt.Sprintf("%s/%s/sz%s/vec%s/%s", precisionName[T](), p.Kind, p.Sz, p.VecSz, place)
}

// Zero clears the backing arrays of all three buffers.
func (p *Problem[T]) Zero() {
	clear(p.R.data)
	clear(p.RIO.data)
	clear(p.IIO.data)
}

// Solve implements planner.Problem.
func (p *Problem[T]) Solve(pln planner.Plan) {
	asPlan[T](pln).Apply(p.R, p.RIO, p.IIO)
}

func precisionName[T fftypes.Float]() string {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return "f32"
	}

	return "f64"
}

func elemSize[T fftypes.Float]() uintptr {
	var zero T

	return unsafe.Sizeof(zero)
}

// Strides returns the stride of the real array (rs) and of the
// half-complex pair (cs) along d for the given direction.
func Strides(kind fftypes.Kind, d tensor.IODim) (rs, cs int) {
	if kind.IsR2HC() {
		return d.IS, d.OS
	}

	return d.OS, d.IS
}

// InplaceStrides reports whether looping over vector dimension vdim of an
// in-place problem is free of read/write hazards: every iteration must read
// its input before any later iteration's output lands on it.
//
// A negative vdim checks every vector dimension. The test is conservative:
// it only accepts the common layout where each vector step clears the
// larger of the real and the half-complex footprint of one transform.
func InplaceStrides[T fftypes.Float](p *Problem[T], vdim int) bool {
	for i := 0; i+1 < p.Sz.Rank; i++ {
		if p.Sz.Dims[i].IS != p.Sz.Dims[i].OS {
			return false
		}
	}

	if !p.VecSz.Finite() || p.VecSz.Rank == 0 {
		return true
	}

	if vdim < 0 {
		for d := range p.VecSz.Rank {
			if !InplaceStrides(p, d) {
				return false
			}
		}

		return true
	}

	v := p.VecSz.Dims[vdim]
	if p.Sz.Rank == 0 {
		return v.IS == v.OS
	}

	last := p.Sz.Dims[p.Sz.Rank-1]
	n := tensor.Size(p.Sz)
	nc := (n / last.N) * (last.N/2 + 1)
	rs, cs := Strides(p.Kind, last)

	return v.IS == v.OS &&
		tensor.IAbs(v.OS) >= tensor.IMax(nc*tensor.IAbs(cs), n*tensor.IAbs(rs))
}

// TensorMaxIndex returns the largest flattened offset a transform of size
// sz touches on either side. The last dimension is asymmetric: n real
// elements against n/2+1 half-complex ones.
func TensorMaxIndex(sz tensor.Tensor, kind fftypes.Kind) int {
	n := 0

	i := 0
	for ; i+1 < sz.Rank; i++ {
		d := sz.Dims[i]
		n += (d.N - 1) * tensor.IMax(tensor.IAbs(d.IS), tensor.IAbs(d.OS))
	}

	if i < sz.Rank {
		d := sz.Dims[i]
		rs, cs := Strides(kind, d)
		n += tensor.IMax((d.N-1)*tensor.IAbs(rs), (d.N/2)*tensor.IAbs(cs))
	}

	return n
}
