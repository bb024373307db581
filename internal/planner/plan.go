// Package planner holds the plan/solver object model shared by every
// strategy family, and the planning session that searches them.
//
// A Solver inspects a Problem and either declines (returns nil) or builds a
// Plan. The Planner asks every registered solver, ranks the resulting plans
// by estimated or measured cost and keeps the cheapest. Solvers may call
// back into the Planner to plan reduced subproblems, so plans form trees
// whose inner nodes exclusively own their children.
package planner

// Wakefulness is the state passed to Plan.Awake.
type Wakefulness uint8

const (
	// Sleepy releases any transient resources (trig tables, scratch).
	Sleepy Wakefulness = iota
	// Awake prepares the plan for execution.
	Awake
)

// String returns the wakefulness name.
func (w Wakefulness) String() string {
	if w == Awake {
		return "awake"
	}

	return "sleepy"
}

// Plan is the capability set every executable strategy implements.
// Family-specific apply methods live on extended interfaces (see rdft2.Plan).
type Plan interface {
	// Awake allocates (Awake) or releases (Sleepy) transient resources,
	// recursively for owned children.
	Awake(w Wakefulness)
	// Destroy releases the plan and every plan it owns, children first.
	// The plan must not be used afterwards.
	Destroy()
	// Print writes the plan's diagnostic label, nesting children.
	Print(p *Printer)
	// Ops returns the operation count of one execution.
	Ops() Opcount
	// Cost returns the estimated or measured cost of one execution.
	Cost() float64
	// SetCost overrides the cost, used when the planner measures plans.
	SetCost(cost float64)
}

// PlanBase carries the bookkeeping common to all plans. Embed it by value.
type PlanBase struct {
	ops   Opcount
	pcost float64
}

// Ops returns the operation count.
func (b *PlanBase) Ops() Opcount { return b.ops }

// Cost returns the plan cost.
func (b *PlanBase) Cost() float64 { return b.pcost }

// SetCost sets the plan cost.
func (b *PlanBase) SetCost(cost float64) { b.pcost = cost }

// SetOps sets the operation count.
func (b *PlanBase) SetOps(ops Opcount) { b.ops = ops }

// Opcount counts the arithmetic of one plan execution.
type Opcount struct {
	Add   float64
	Mul   float64
	FMA   float64
	Other float64
}

// Madd2 returns b + m*a.
func Madd2(m float64, a, b Opcount) Opcount {
	return Opcount{
		Add:   b.Add + m*a.Add,
		Mul:   b.Mul + m*a.Mul,
		FMA:   b.FMA + m*a.FMA,
		Other: b.Other + m*a.Other,
	}
}

// Scale returns m*o.
func (o Opcount) Scale(m float64) Opcount {
	return Madd2(m, o, Opcount{})
}

// Cost is the estimate used when plans are not measured.
// A fused multiply-add counts as two operations.
func (o Opcount) Cost() float64 {
	return o.Add + o.Mul + 2*o.FMA + o.Other
}

// IsZero reports whether no operations are counted.
func (o Opcount) IsZero() bool {
	return o == Opcount{}
}
