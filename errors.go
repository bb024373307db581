package algordft

import (
	"errors"

	"github.com/cwbudde/algo-rdft/internal/planner"
)

// Sentinel errors returned by planning and execution.
var (
	// ErrInvalidLength is returned when a dimension has a negative extent.
	ErrInvalidLength = errors.New("algordft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a planning or
	// execute method.
	ErrNilSlice = errors.New("algordft: nil slice")

	// ErrLengthMismatch is returned when a slice is too short for the
	// extents and strides it is planned with.
	ErrLengthMismatch = errors.New("algordft: slice length mismatch")

	// ErrInvalidStride is returned when a stride is negative or the
	// flattened index it implies overflows int.
	ErrInvalidStride = errors.New("algordft: invalid stride")

	// ErrNoPlan is returned when no registered strategy can solve the
	// problem under the planner's policy.
	ErrNoPlan = errors.New("algordft: no plan for problem")

	// ErrInPlaceMismatch is returned by ExecuteOn when the new buffers do not
	// alias each other the way the planned buffers did.
	ErrInPlaceMismatch = errors.New("algordft: in-place layout differs from planned layout")

	// ErrPlanDestroyed is returned when a destroyed plan is executed.
	ErrPlanDestroyed = errors.New("algordft: plan destroyed")

	// ErrMalformedWisdom is returned when wisdom data cannot be parsed.
	ErrMalformedWisdom = planner.ErrMalformedWisdom
)
