package cli

import (
	"math/rand"
	"runtime"
	"strings"
	"time"

	algordft "github.com/cwbudde/algo-rdft"
)

// planReport summarises one planned transform.
type planReport struct {
	label     string
	ops       algordft.Opcount
	cost      float64
	unaligned bool
	nsPerOp   float64
}

// buffers allocates arrays for sz/vecsz. In-place requests share one array
// with the imaginary parts one element after the real parts.
func buffers[T algordft.Float](kind algordft.Kind, sz, vecsz []algordft.IODim, inplace bool) (r, rio, iio []T, err error) {
	realLen, cplxLen, err := algordft.BufferLengths(kind, sz, vecsz)
	if err != nil {
		return nil, nil, nil, err
	}

	if inplace {
		data := make([]T, max(realLen, cplxLen+1))
		return data, data, data[1:], nil
	}

	return make([]T, realLen), make([]T, cplxLen), make([]T, cplxLen), nil
}

func fillRandom[T algordft.Float](rnd *rand.Rand, xs ...[]T) {
	for _, x := range xs {
		for i := range x {
			x[i] = T(rnd.Float64()*2 - 1)
		}
	}
}

// runPlan plans one transform, then executes it warmup+iters times on random
// input. iters == 0 only plans.
func runPlan[T algordft.Float](pl *algordft.Planner, rnd *rand.Rand, kind algordft.Kind,
	sz, vecsz []algordft.IODim, inplace bool, iters, warmup int,
) (planReport, error) {
	r, rio, iio, err := buffers[T](kind, sz, vecsz, inplace)
	if err != nil {
		return planReport{}, err
	}

	plan, err := algordft.PlanMany(pl, kind, sz, vecsz, r, rio, iio)
	if err != nil {
		return planReport{}, err
	}
	defer plan.Destroy()

	rep := planReport{
		label:     plan.String(),
		ops:       plan.Ops(),
		cost:      plan.Cost(),
		unaligned: plan.PossiblyUnaligned(),
	}

	if iters <= 0 {
		return rep, nil
	}

	if kind == algordft.R2HC {
		fillRandom(rnd, r)
	} else {
		fillRandom(rnd, rio, iio)
	}

	for range warmup {
		if err := plan.Execute(); err != nil {
			return planReport{}, err
		}
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		if err := plan.Execute(); err != nil {
			return planReport{}, err
		}
	}

	rep.nsPerOp = float64(time.Since(start).Nanoseconds()) / float64(iters)

	return rep, nil
}

// oneLine flattens a nested plan label.
func oneLine(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
