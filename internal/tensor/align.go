package tensor

// StrideAligned reports whether a stride of elements of elemSize bytes keeps
// every element on an alignment-byte boundary (given an aligned base).
// An alignment of 1 or less accepts every stride.
func StrideAligned(stride int, elemSize uintptr, alignment int) bool {
	if alignment <= 1 {
		return true
	}

	return (stride*int(elemSize))%alignment == 0
}
