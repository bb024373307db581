package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopy_IsDeep(t *testing.T) {
	t.Parallel()

	orig := New(IODim{N: 4, IS: 1, OS: 1}, IODim{N: 3, IS: 4, OS: 8})
	cp := Copy(orig)

	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("Copy mismatch (-want +got):\n%s", diff)
	}

	cp.Dims[0].N = 99
	if orig.Dims[0].N != 4 {
		t.Fatalf("Copy shares storage with original: orig.Dims[0].N = %d", orig.Dims[0].N)
	}
}

func TestCopyExcept(t *testing.T) {
	t.Parallel()

	orig := New(IODim{N: 2, IS: 1, OS: 1}, IODim{N: 3, IS: 2, OS: 2}, IODim{N: 5, IS: 6, OS: 6})

	got := CopyExcept(orig, 1)
	want := New(IODim{N: 2, IS: 1, OS: 1}, IODim{N: 5, IS: 6, OS: 6})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CopyExcept(1) mismatch (-want +got):\n%s", diff)
	}

	if orig.Rank != 3 {
		t.Fatalf("CopyExcept mutated the original rank: %d", orig.Rank)
	}

	last := CopyExcept(New(IODim{N: 7, IS: 1, OS: 1}), 0)
	if last.Rank != 0 || len(last.Dims) != 0 {
		t.Fatalf("CopyExcept of rank-1 tensor = %v, want rank 0", last)
	}
}

func TestInfinite(t *testing.T) {
	t.Parallel()

	inf := Infinite()
	if inf.Finite() {
		t.Fatal("Infinite().Finite() = true")
	}

	if Copy(inf).Finite() {
		t.Fatal("Copy of an infinite tensor became finite")
	}

	if got := inf.String(); got != "[inf]" {
		t.Errorf("String() = %q, want [inf]", got)
	}
}

func TestSize(t *testing.T) {
	t.Parallel()

	if got := Size(New()); got != 1 {
		t.Errorf("Size(rank 0) = %d, want 1", got)
	}

	if got := Size(New(IODim{N: 4}, IODim{N: 6})); got != 24 {
		t.Errorf("Size = %d, want 24", got)
	}

	if !HasZeroExtent(New(IODim{N: 4}, IODim{N: 0})) {
		t.Error("HasZeroExtent missed a zero extent")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	got := New(IODim{N: 4, IS: 10, OS: 5}, IODim{N: 2, IS: -1, OS: 1}).String()
	if got != "[4:10:5,2:-1:1]" {
		t.Errorf("String() = %q", got)
	}
}

func TestStrideAligned(t *testing.T) {
	t.Parallel()

	cases := []struct {
		stride    int
		elemSize  uintptr
		alignment int
		want      bool
	}{
		{stride: 3, elemSize: 8, alignment: 1, want: true},
		{stride: 2, elemSize: 8, alignment: 16, want: true},
		{stride: 3, elemSize: 8, alignment: 16, want: false},
		{stride: -4, elemSize: 4, alignment: 16, want: true},
		{stride: 4, elemSize: 8, alignment: 32, want: true},
		{stride: 2, elemSize: 8, alignment: 32, want: false},
	}

	for _, tc := range cases {
		if got := StrideAligned(tc.stride, tc.elemSize, tc.alignment); got != tc.want {
			t.Errorf("StrideAligned(%d, %d, %d) = %v, want %v",
				tc.stride, tc.elemSize, tc.alignment, got, tc.want)
		}
	}
}
