package algordft

import (
	"log/slog"

	"github.com/cwbudde/algo-rdft/internal/cpu"
	"github.com/cwbudde/algo-rdft/internal/planner"
)

// PlanOptions configures a Planner.
type PlanOptions struct {
	// Planner selects estimate (default) or measure ranking.
	// Measuring overwrites the arrays passed to the plan constructors.
	Planner PlannerMode

	// Compat restricts vector loops to the canonical loop order, for
	// reproducible plan shapes.
	Compat bool

	// NoUgly rejects plans known to lose against a better-shaped
	// alternative.
	NoUgly bool

	// PreferThreaded makes non-threaded loops step aside when Threads > 1.
	PreferThreaded bool

	// Threads is the number of threads plans may use. Values < 1 mean 1.
	Threads int

	// ForceGeneric plans as if the CPU had no SIMD units, which makes every
	// stride count as aligned.
	ForceGeneric bool

	// MeasureRuns is the number of timed runs per candidate when measuring.
	MeasureRuns int

	// Wisdom remembers winning strategies. Nil uses DefaultWisdom.
	Wisdom *Wisdom

	// Logger receives debug records about plan selection. Nil discards them.
	Logger *slog.Logger
}

// Planner creates plans. It holds configuration only; every plan is built in
// its own planning session, so a Planner may be shared between goroutines.
type Planner struct {
	opts PlanOptions
}

// NewPlanner returns a planner with normalised options.
func NewPlanner(opts PlanOptions) *Planner {
	if opts.Threads < 1 {
		opts.Threads = 1
	}

	if opts.MeasureRuns < 1 {
		opts.MeasureRuns = planner.DefaultMeasureRuns
	}

	if opts.Wisdom == nil {
		opts.Wisdom = DefaultWisdom
	}

	return &Planner{opts: opts}
}

// Options returns the normalised options.
func (pl *Planner) Options() PlanOptions {
	return pl.opts
}

func (pl *Planner) flags() planner.Flags {
	var f planner.Flags

	if pl.opts.Compat {
		f |= planner.NoVRankSplits
	}

	if pl.opts.NoUgly {
		f |= planner.NoUgly
	}

	if pl.opts.PreferThreaded {
		f |= planner.NonThreadedIcky
	}

	return f
}

// session starts a planning session with the planner's policy.
func (pl *Planner) session() *planner.Planner {
	opts := planner.Options{
		Mode:        pl.opts.Planner,
		Flags:       pl.flags(),
		Threads:     pl.opts.Threads,
		Wisdom:      pl.opts.Wisdom,
		Logger:      pl.opts.Logger,
		MeasureRuns: pl.opts.MeasureRuns,
	}

	if pl.opts.ForceGeneric {
		opts.Features = &cpu.Features{ForceGeneric: true}
	}

	return planner.New(opts)
}
