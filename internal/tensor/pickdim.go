package tensor

// DimChoice is the result of a dimension pick. Index is only meaningful when
// OK is true.
type DimChoice struct {
	Index int
	OK    bool
}

func found(i int) DimChoice {
	return DimChoice{Index: i, OK: true}
}

// reallyPickDim selects a dimension by position among the eligible ones.
// which > 0 counts from the front (1 is the first eligible), which < 0 from
// the back, and 0 picks the middle dimension. In-place problems may only
// loop over dimensions with equal input and output strides.
func reallyPickDim(which int, sz Tensor, oop bool) DimChoice {
	eligible := func(d IODim) bool {
		return oop || d.IS == d.OS
	}

	count := 0

	switch {
	case which > 0:
		for i, d := range sz.Dims {
			if eligible(d) {
				count++
				if count == which {
					return found(i)
				}
			}
		}
	case which < 0:
		for i := len(sz.Dims) - 1; i >= 0; i-- {
			if eligible(sz.Dims[i]) {
				count++
				if count == -which {
					return found(i)
				}
			}
		}
	default:
		i := (len(sz.Dims) - 1) / 2
		if i >= 0 && eligible(sz.Dims[i]) {
			return found(i)
		}
	}

	return DimChoice{}
}

// PickDim chooses the dimension a loop solver parameterised by which should
// iterate over. buddies lists every which value registered for the same
// solver family, in registration order.
//
// If an earlier buddy would pick the same dimension, the pick fails: the
// earliest buddy owns that loop ordering, so the planner never compares two
// identical plans.
func PickDim(which int, buddies []int, sz Tensor, oop bool) DimChoice {
	if !sz.Finite() {
		return DimChoice{}
	}

	choice := reallyPickDim(which, sz, oop)
	if !choice.OK {
		return choice
	}

	for _, b := range buddies {
		if b == which {
			break
		}

		if other := reallyPickDim(b, sz, oop); other.OK && other.Index == choice.Index {
			return DimChoice{}
		}
	}

	return choice
}
