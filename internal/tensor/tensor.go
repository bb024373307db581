// Package tensor describes strided multi-dimensional index spaces.
//
// A Tensor is an ordered list of IODim values. Transform problems carry two
// tensors: the transform size and the vector (batch) size wrapped around it.
package tensor

import (
	"fmt"
	"math"
	"strings"
)

// RankInfinite marks a tensor that cannot be represented, for example
// because its flattened index overflows. Solvers treat it as unsolvable.
const RankInfinite = math.MaxInt

// IODim is one dimension of a tensor: an extent and the input/output strides
// (in elements) between consecutive indices.
type IODim struct {
	N  int
	IS int
	OS int
}

// String formats the dimension as n:is:os.
func (d IODim) String() string {
	return fmt.Sprintf("%d:%d:%d", d.N, d.IS, d.OS)
}

// Tensor is an ordered sequence of dimensions.
type Tensor struct {
	Rank int
	Dims []IODim
}

// New returns a tensor with the given dimensions.
func New(dims ...IODim) Tensor {
	return Tensor{Rank: len(dims), Dims: append([]IODim(nil), dims...)}
}

// Infinite returns a tensor of infinite rank.
func Infinite() Tensor {
	return Tensor{Rank: RankInfinite}
}

// Finite reports whether the rank is finite.
func (t Tensor) Finite() bool {
	return FiniteRank(t.Rank)
}

// FiniteRank reports whether rnk is a finite rank.
func FiniteRank(rnk int) bool {
	return rnk < RankInfinite
}

// String formats the tensor as a bracketed list of n:is:os triples.
func (t Tensor) String() string {
	if !t.Finite() {
		return "[inf]"
	}

	parts := make([]string, len(t.Dims))
	for i, d := range t.Dims {
		parts[i] = d.String()
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Copy returns a deep copy of t.
func Copy(t Tensor) Tensor {
	if !t.Finite() {
		return Infinite()
	}

	return New(t.Dims...)
}

// CopyExcept returns a deep copy of t with dimension except removed.
func CopyExcept(t Tensor, except int) Tensor {
	if !t.Finite() {
		return Infinite()
	}

	dims := make([]IODim, 0, len(t.Dims)-1)
	dims = append(dims, t.Dims[:except]...)
	dims = append(dims, t.Dims[except+1:]...)

	return Tensor{Rank: len(dims), Dims: dims}
}

// Size returns the product of all extents. A rank-0 tensor has size 1.
func Size(t Tensor) int {
	n := 1
	for _, d := range t.Dims {
		n *= d.N
	}

	return n
}

// HasZeroExtent reports whether any dimension has extent zero.
func HasZeroExtent(t Tensor) bool {
	for _, d := range t.Dims {
		if d.N == 0 {
			return true
		}
	}

	return false
}

// InplaceStrides reports whether every dimension has equal input and output
// strides.
func InplaceStrides(t Tensor) bool {
	for _, d := range t.Dims {
		if d.IS != d.OS {
			return false
		}
	}

	return true
}

// IAbs returns |a|.
func IAbs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}

// IMin returns the smaller of a and b.
func IMin(a, b int) int {
	return min(a, b)
}

// IMax returns the larger of a and b.
func IMax(a, b int) int {
	return max(a, b)
}
