package planner

// Problem is a transform problem the planner can be asked to solve.
// Implementations are immutable once handed to the planner.
type Problem interface {
	// Signature identifies the problem's shape (sizes, strides, kind,
	// precision, aliasing) for wisdom lookups. Buffer addresses are not
	// part of it.
	Signature() string
	// Zero clears the buffers the problem writes, before timing runs.
	Zero()
	// Solve executes pln on the problem's own buffers.
	// pln must have been built for this problem.
	Solve(pln Plan)
}

// Solver is one candidate strategy. Solvers are created once per planning
// session, registered, and never mutated afterwards.
type Solver interface {
	// Name identifies the solver in logs and wisdom. Buddies of one family
	// have distinct names.
	Name() string
	// MkPlan returns a plan for prob, or nil if the strategy does not apply.
	// A nil result is a normal outcome, not an error.
	MkPlan(prob Problem, plnr *Planner) Plan
}
