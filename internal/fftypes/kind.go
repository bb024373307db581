package fftypes

// Float is a type constraint for the real element types a plan can operate on.
type Float interface {
	~float32 | ~float64
}

// Kind distinguishes the two directions of a real/half-complex transform.
type Kind uint8

const (
	// R2HC transforms a real array into a half-complex (rio, iio) pair.
	R2HC Kind = iota
	// HC2R transforms a half-complex pair back into a real array.
	HC2R
)

// String returns the short name used in plan labels and wisdom signatures.
func (k Kind) String() string {
	switch k {
	case R2HC:
		return "r2hc"
	case HC2R:
		return "hc2r"
	default:
		return "unknown"
	}
}

// IsR2HC reports whether k reads a real array and writes half-complex output.
func (k Kind) IsR2HC() bool {
	return k == R2HC
}
