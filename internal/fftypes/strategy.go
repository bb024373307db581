package fftypes

// PlannerMode controls how the planner ranks competing plans.
type PlannerMode uint32

const (
	// PlannerEstimate ranks plans by their operation-count estimate.
	PlannerEstimate PlannerMode = iota
	// PlannerMeasure times every candidate plan and keeps the fastest.
	PlannerMeasure
)

// String returns a human-readable name for the planner mode.
func (m PlannerMode) String() string {
	switch m {
	case PlannerEstimate:
		return "estimate"
	case PlannerMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

// SIMDLevel describes the widest vector unit available to the process.
// It determines which strides count as aligned.
type SIMDLevel uint8

const (
	SIMDNone   SIMDLevel = iota // Pure Go implementation
	SIMDSSE2                    // Requires SSE2 (x86_64 baseline)
	SIMDSSE3                    // Requires SSE3
	SIMDAVX2                    // Requires AVX2
	SIMDAVX512                  // Requires AVX-512
	SIMDNEON                    // Requires ARM NEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDSSE3:
		return "sse3"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// AlignmentBytes returns the byte alignment vector loads need at this level.
// SIMDNone returns 1: every stride is aligned when nothing is vectorised.
func (s SIMDLevel) AlignmentBytes() int {
	switch s {
	case SIMDSSE2, SIMDSSE3, SIMDNEON:
		return 16
	case SIMDAVX2:
		return 32
	case SIMDAVX512:
		return 64
	default:
		return 1
	}
}
