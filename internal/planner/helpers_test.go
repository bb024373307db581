package planner

// fakeProblem counts the planner's calls into it.
type fakeProblem struct {
	sig    string
	zeroed int
	solved int
}

func (p *fakeProblem) Signature() string { return p.sig }
func (p *fakeProblem) Zero()             { p.zeroed++ }
func (p *fakeProblem) Solve(Plan)        { p.solved++ }

// fakePlan is a leaf plan with a fixed cost.
type fakePlan struct {
	PlanBase
	name      string
	destroyed bool
	wake      []Wakefulness
}

func (f *fakePlan) Awake(w Wakefulness) { f.wake = append(f.wake, w) }
func (f *fakePlan) Destroy()            { f.destroyed = true }
func (f *fakePlan) Print(p *Printer)    { p.Printf("(%s)", f.name) }

// fakeSolver returns a fakePlan of the given cost, or nothing when cost < 0.
type fakeSolver struct {
	name  string
	cost  float64
	built []*fakePlan
}

func (s *fakeSolver) Name() string { return s.name }

func (s *fakeSolver) MkPlan(Problem, *Planner) Plan {
	if s.cost < 0 {
		return nil
	}

	pln := &fakePlan{name: s.name}
	pln.SetCost(s.cost)
	s.built = append(s.built, pln)

	return pln
}
