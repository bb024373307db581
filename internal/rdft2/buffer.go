package rdft2

import (
	"unsafe"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
)

// Buffer is a position inside a backing array: the analogue of a pointer
// that plans advance by strides. Offsets may be negative relative to the
// position as long as every element actually touched is inside data.
type Buffer[T fftypes.Float] struct {
	data []T
	off  int
}

// NewBuffer returns a buffer positioned at data[0].
func NewBuffer[T fftypes.Float](data []T) Buffer[T] {
	return Buffer[T]{data: data}
}

// BufferAt returns a buffer positioned at data[off].
func BufferAt[T fftypes.Float](data []T, off int) Buffer[T] {
	return Buffer[T]{data: data, off: off}
}

// Add returns the buffer advanced by k elements.
func (b Buffer[T]) Add(k int) Buffer[T] {
	return Buffer[T]{data: b.data, off: b.off + k}
}

// At returns the element i positions past the buffer position.
func (b Buffer[T]) At(i int) T {
	return b.data[b.off+i]
}

// Set stores v i positions past the buffer position.
func (b Buffer[T]) Set(i int, v T) {
	b.data[b.off+i] = v
}

// Offset returns the position within the backing array.
func (b Buffer[T]) Offset() int {
	return b.off
}

// Data returns the backing array.
func (b Buffer[T]) Data() []T {
	return b.data
}

// IsNil reports whether the buffer has no backing array.
func (b Buffer[T]) IsNil() bool {
	return b.data == nil
}

// addr is the address of the buffer position, which may lie outside the
// backing array. It is only ever compared, never dereferenced.
func (b Buffer[T]) addr() uintptr {
	var zero T

	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data))) + uintptr(b.off)*unsafe.Sizeof(zero)
}

// Same reports whether both buffers point at the same element, even when
// they were created from different slices of one array.
func (b Buffer[T]) Same(o Buffer[T]) bool {
	if b.IsNil() || o.IsNil() {
		return b.IsNil() && o.IsNil() && b.off == o.off
	}

	return b.addr() == o.addr()
}
