package algordft

import (
	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
	"github.com/cwbudde/algo-rdft/internal/tensor"
)

// Float is a type constraint for the real element types plans operate on.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Kind selects the transform direction.
type Kind = fftypes.Kind

// Transform directions.
const (
	R2HC = fftypes.R2HC
	HC2R = fftypes.HC2R
)

// PlannerMode controls how competing plans are ranked.
type PlannerMode = fftypes.PlannerMode

// Planner modes.
const (
	PlannerEstimate = fftypes.PlannerEstimate
	PlannerMeasure  = fftypes.PlannerMeasure
)

// IODim describes one dimension: extent N, input stride IS and output
// stride OS, in elements.
type IODim = tensor.IODim

// Opcount is the arithmetic one plan execution performs.
type Opcount = planner.Opcount
