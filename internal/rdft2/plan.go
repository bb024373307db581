package rdft2

import (
	"fmt"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
	"github.com/cwbudde/algo-rdft/internal/planner"
)

// Plan is an executable RDFT2 plan.
type Plan[T fftypes.Float] interface {
	planner.Plan
	// Apply runs the transform with the given buffer positions.
	// R2HC plans read r and write rio/iio; HC2R plans do the reverse.
	Apply(r, rio, iio Buffer[T])
}

func asPlan[T fftypes.Float](pln planner.Plan) Plan[T] {
	p, ok := pln.(Plan[T])
	if !ok {
		panic(fmt.Sprintf("rdft2: %T is not an rdft2 plan of this precision", pln))
	}

	return p
}
