package planner

import (
	"log/slog"
	"math"

	"github.com/cwbudde/algo-rdft/internal/cpu"
	"github.com/cwbudde/algo-rdft/internal/fftypes"
)

// Flags are planning policies read by solvers.
type Flags uint32

const (
	// NoVRankSplits reproduces the legacy single-loop-order behaviour: only
	// the canonical buddy of a loop solver family is applicable.
	NoVRankSplits Flags = 1 << iota
	// NoUgly rejects plans that are known to lose against a better-shaped
	// alternative.
	NoUgly
	// NonThreadedIcky prefers threaded plans. It only takes effect when the
	// session has more than one thread.
	NonThreadedIcky
)

// ProblemFlags are hints solvers record about the problems they planned.
// They only ever get set during a session.
type ProblemFlags uint32

const (
	// PossiblyUnaligned records that some loop stride breaks SIMD alignment.
	PossiblyUnaligned ProblemFlags = 1 << iota
)

// DefaultMeasureRuns is the number of timed executions per candidate when
// measuring.
const DefaultMeasureRuns = 5

// Options configures a planning session.
type Options struct {
	Mode    fftypes.PlannerMode
	Flags   Flags
	Threads int
	// Features overrides CPU detection. Nil detects the running CPU.
	Features *cpu.Features
	// Wisdom remembers winning solvers. Nil disables wisdom.
	Wisdom *Wisdom
	// Logger receives debug records about the search. Nil discards them.
	Logger      *slog.Logger
	MeasureRuns int
}

// Planner is a planning session: a solver registry plus the policy flags
// and hints shared by every solver during one session. A Planner is not safe
// for concurrent use.
type Planner struct {
	mode         fftypes.PlannerMode
	flags        Flags
	threads      int
	features     cpu.Features
	problemFlags ProblemFlags
	solvers      []Solver
	wisdom       *Wisdom
	logger       *slog.Logger
	measureRuns  int
}

// New creates an empty planning session.
func New(opts Options) *Planner {
	p := &Planner{
		mode:        opts.Mode,
		flags:       opts.Flags,
		threads:     opts.Threads,
		wisdom:      opts.Wisdom,
		logger:      opts.Logger,
		measureRuns: opts.MeasureRuns,
	}

	if opts.Features != nil {
		p.features = *opts.Features
	} else {
		p.features = cpu.DetectFeatures()
	}

	if p.threads < 1 {
		p.threads = 1
	}

	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	if p.measureRuns < 1 {
		p.measureRuns = DefaultMeasureRuns
	}

	return p
}

// Register adds a solver to the registry. Registration order is the search
// order; ties in cost go to the earlier solver.
func (p *Planner) Register(s Solver) {
	p.solvers = append(p.solvers, s)
}

// Solvers returns the registered solvers in registration order.
func (p *Planner) Solvers() []Solver {
	return append([]Solver(nil), p.solvers...)
}

// Mode returns the ranking mode.
func (p *Planner) Mode() fftypes.PlannerMode { return p.mode }

// Flags returns the session policy flags.
func (p *Planner) Flags() Flags { return p.flags }

// Threads returns the number of threads the session may use.
func (p *Planner) Threads() int { return p.threads }

// Features returns the CPU features plans are built for.
func (p *Planner) Features() cpu.Features { return p.features }

// Alignment returns the byte alignment a stride needs to stay SIMD-aligned.
func (p *Planner) Alignment() int { return p.features.AlignmentBytes() }

// Wisdom returns the session's wisdom store, or nil.
func (p *Planner) Wisdom() *Wisdom { return p.wisdom }

// Logger returns the session logger.
func (p *Planner) Logger() *slog.Logger { return p.logger }

// NoVRankSplits reports whether legacy loop ordering is enforced.
func (p *Planner) NoVRankSplits() bool { return p.flags&NoVRankSplits != 0 }

// NoUgly reports whether ugly plans are rejected.
func (p *Planner) NoUgly() bool { return p.flags&NoUgly != 0 }

// NonThreadedIcky reports whether non-threaded plans should step aside for a
// threaded alternative.
func (p *Planner) NonThreadedIcky() bool {
	return p.flags&NonThreadedIcky != 0 && p.threads > 1
}

// SetProblemFlags ORs f into the session's problem hints.
func (p *Planner) SetProblemFlags(f ProblemFlags) { p.problemFlags |= f }

// ProblemFlags returns the hints recorded so far.
func (p *Planner) ProblemFlags() ProblemFlags { return p.problemFlags }

// HasProblemFlag reports whether f has been recorded.
func (p *Planner) HasProblemFlag(f ProblemFlags) bool { return p.problemFlags&f == f }

// WisdomKey returns the key prob's winner is stored under in this session.
func (p *Planner) WisdomKey(prob Problem) WisdomKey {
	return WisdomKey{
		Signature: prob.Signature(),
		Flags:     p.flags,
		Mode:      p.mode,
		SIMD:      p.features.SIMDLevel(),
	}
}

// MkPlan returns the best plan any registered solver can build for prob, or
// nil if none applies. Losing candidates are destroyed.
//
// In PlannerMeasure mode the problem's buffers are overwritten.
func (p *Planner) MkPlan(prob Problem) Plan {
	key := p.WisdomKey(prob)

	if pln, ok := p.mkPlanFromWisdom(prob, key); ok {
		return pln
	}

	var (
		best     Plan
		bestName string
	)

	for _, s := range p.solvers {
		pln := s.MkPlan(prob, p)
		if pln == nil {
			continue
		}

		p.evaluate(prob, pln)
		p.logger.Debug("candidate plan",
			slog.String("problem", key.Signature),
			slog.String("solver", s.Name()),
			slog.Float64("cost", pln.Cost()))

		if best == nil || pln.Cost() < best.Cost() {
			if best != nil {
				best.Destroy()
			}

			best, bestName = pln, s.Name()
		} else {
			pln.Destroy()
		}
	}

	if best == nil {
		p.logger.Debug("no plan", slog.String("problem", key.Signature))
		return nil
	}

	p.logger.Debug("selected plan",
		slog.String("problem", key.Signature),
		slog.String("solver", bestName),
		slog.Float64("cost", best.Cost()))

	if p.wisdom != nil {
		p.wisdom.Store(WisdomEntry{Key: key, Solver: bestName, Cost: best.Cost()})
	}

	return best
}

func (p *Planner) mkPlanFromWisdom(prob Problem, key WisdomKey) (Plan, bool) {
	if p.wisdom == nil {
		return nil, false
	}

	entry, ok := p.wisdom.Lookup(key)
	if !ok {
		return nil, false
	}

	for _, s := range p.solvers {
		if s.Name() != entry.Solver {
			continue
		}

		if pln := s.MkPlan(prob, p); pln != nil {
			p.evaluate(prob, pln)
			p.logger.Debug("plan from wisdom",
				slog.String("problem", key.Signature),
				slog.String("solver", entry.Solver))

			return pln, true
		}
	}

	p.logger.Debug("stale wisdom entry",
		slog.String("problem", key.Signature),
		slog.String("solver", entry.Solver))

	return nil, false
}

// evaluate leaves the solver's estimate in place, or replaces it with the
// best of measureRuns timed executions.
func (p *Planner) evaluate(prob Problem, pln Plan) {
	if p.mode != fftypes.PlannerMeasure {
		return
	}

	pln.Awake(Awake)
	prob.Zero()

	best := int64(math.MaxInt64)

	for range p.measureRuns {
		start := cpu.ReadCycleCounter()
		prob.Solve(pln)

		if elapsed := cpu.CyclesSince(start); elapsed < best {
			best = elapsed
		}
	}

	pln.Awake(Sleepy)
	pln.SetCost(float64(cpu.CyclesToNanoseconds(best)))
}
