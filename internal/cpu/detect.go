package cpu

import (
	"runtime"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to stride alignment.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE3:      cpu.X86.HasSSE3,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// SIMDLevel returns the widest vector level the features allow.
func (f Features) SIMDLevel() fftypes.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return fftypes.SIMDNone
	case f.HasAVX512:
		return fftypes.SIMDAVX512
	case f.HasAVX2:
		return fftypes.SIMDAVX2
	case f.HasSSE3:
		return fftypes.SIMDSSE3
	case f.HasSSE2:
		return fftypes.SIMDSSE2
	case f.HasNEON:
		return fftypes.SIMDNEON
	default:
		return fftypes.SIMDNone
	}
}

// AlignmentBytes returns the byte alignment a stride must satisfy for
// vectorised kernels on this CPU.
func (f Features) AlignmentBytes() int {
	return f.SIMDLevel().AlignmentBytes()
}
