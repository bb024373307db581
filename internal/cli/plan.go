package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"

	algordft "github.com/cwbudde/algo-rdft"
	"github.com/spf13/cobra"
)

type planFlags struct {
	n              int
	howmany        int
	vec            []string
	kind           string
	precision      string
	inplace        bool
	measure        bool
	compat         bool
	noUgly         bool
	preferThreaded bool
	generic        bool
	threads        int
	iters          int
	seed           int64
	wisdomFile     string
}

func newPlanCmd() *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a batched transform and print the chosen plan",
		Long: `Plan a batch of size-n real <-> half-complex transforms and print the plan
tree, its operation counts, its cost and whether strides may be unaligned.

Batches are given either with --howmany (contiguous transforms) or with one
or more --vec n:is:os dimensions.`,
		Example: `  rdft2plan plan --n 16 --howmany 8
  rdft2plan plan --n 10 --vec 4:10:6 --vec 5:40:24 --kind r2hc
  rdft2plan plan --n 32 --howmany 4 --inplace --measure --wisdom rdft.wisdom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanCmd(cmd, &f)
		},
	}

	cmd.Flags().IntVar(&f.n, "n", 0, "Transform size")
	cmd.Flags().IntVar(&f.howmany, "howmany", 1, "Number of contiguous transforms (ignored with --vec)")
	cmd.Flags().StringArrayVar(&f.vec, "vec", nil, "Vector dimension n:is:os (repeatable)")
	cmd.Flags().StringVar(&f.kind, "kind", "r2hc", "Transform kind: r2hc or hc2r")
	cmd.Flags().StringVar(&f.precision, "precision", "f64", "Element type: f32 or f64")
	cmd.Flags().BoolVar(&f.inplace, "inplace", false, "Transform in place")
	cmd.Flags().BoolVar(&f.measure, "measure", false, "Rank candidates by timing them")
	cmd.Flags().BoolVar(&f.compat, "compat", false, "Only loop over the canonical vector dimension")
	cmd.Flags().BoolVar(&f.noUgly, "no-ugly", false, "Reject plans known to lose to better-shaped ones")
	cmd.Flags().BoolVar(&f.preferThreaded, "prefer-threaded", false, "Let non-threaded loops step aside when --threads > 1")
	cmd.Flags().BoolVar(&f.generic, "generic", false, "Plan as if the CPU had no SIMD units")
	cmd.Flags().IntVar(&f.threads, "threads", 1, "Threads plans may use")
	cmd.Flags().IntVar(&f.iters, "iters", 0, "Time this many executions after planning")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "RNG seed for timing input")
	cmd.Flags().StringVar(&f.wisdomFile, "wisdom", "", "Wisdom file to read before and write after planning")
	_ = cmd.MarkFlagRequired("n")

	return cmd
}

func runPlanCmd(cmd *cobra.Command, f *planFlags) error {
	if f.n <= 0 {
		return fmt.Errorf("--n must be positive, got %d", f.n)
	}

	if err := validatePrecision(f.precision); err != nil {
		return err
	}

	kind, err := parseKind(f.kind)
	if err != nil {
		return err
	}

	dim, realDist, cplxDist := layout(kind, f.n, f.inplace)
	sz := []algordft.IODim{dim}

	vecsz, err := parseDims(f.vec)
	if err != nil {
		return err
	}

	if len(vecsz) == 0 {
		if f.howmany <= 0 {
			return fmt.Errorf("--howmany must be positive, got %d", f.howmany)
		}

		vecsz = []algordft.IODim{batchDim(kind, f.howmany, realDist, cplxDist)}
	}

	wisdom := algordft.NewWisdom()
	if err := loadWisdom(f.wisdomFile, wisdom); err != nil {
		return err
	}

	opts := algordft.PlanOptions{
		Compat:         f.compat,
		NoUgly:         f.noUgly,
		PreferThreaded: f.preferThreaded,
		Threads:        f.threads,
		ForceGeneric:   f.generic,
		Wisdom:         wisdom,
		Logger:         newLogger(cmd.ErrOrStderr()),
	}
	if f.measure {
		opts.Planner = algordft.PlannerMeasure
	}

	pl := algordft.NewPlanner(opts)
	rnd := rand.New(rand.NewSource(f.seed))

	var rep planReport
	if f.precision == "f32" {
		rep, err = runPlan[float32](pl, rnd, kind, sz, vecsz, f.inplace, f.iters, 1)
	} else {
		rep, err = runPlan[float64](pl, rnd, kind, sz, vecsz, f.inplace, f.iters, 1)
	}

	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	out := cmd.OutOrStdout()

	printSection(out, "Plan")
	printBlock(out, rep.label)
	printLabelValue(out, "kind", kind.String())
	printLabelValue(out, "precision", f.precision)
	printLabelValue(out, "sz", formatDims(sz))
	printLabelValue(out, "vecsz", formatDims(vecsz))
	printLabelValue(out, "policy", policyString(pl.Options()))
	printLabelValue(out, "ops", formatOps(rep.ops.Add, rep.ops.Mul, rep.ops.FMA, rep.ops.Other))
	printLabelValue(out, "cost", fmt.Sprintf("%g", rep.cost))

	if rep.nsPerOp > 0 {
		printLabelValue(out, "ns/op", fmt.Sprintf("%.1f", rep.nsPerOp))
	}

	if rep.unaligned {
		printWarning(out, "strides may leave SIMD alignment")
	}

	if f.wisdomFile != "" {
		if err := algordft.ExportWisdomTo(f.wisdomFile, wisdom); err != nil {
			return err
		}

		printSuccess(out, fmt.Sprintf("wisdom written to %s (%d entries)", f.wisdomFile, wisdom.Len()))
	}

	return nil
}

// loadWisdom imports filename into wisdom; a missing file is not an error.
func loadWisdom(filename string, wisdom *algordft.Wisdom) error {
	if filename == "" {
		return nil
	}

	err := algordft.ImportWisdomTo(filename, wisdom)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func formatDims(dims []algordft.IODim) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = d.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func policyString(opts algordft.PlanOptions) string {
	parts := []string{opts.Planner.String()}

	if opts.Compat {
		parts = append(parts, "compat")
	}

	if opts.NoUgly {
		parts = append(parts, "no-ugly")
	}

	if opts.PreferThreaded {
		parts = append(parts, "prefer-threaded")
	}

	if opts.ForceGeneric {
		parts = append(parts, "generic")
	}

	return fmt.Sprintf("%s threads=%d", strings.Join(parts, " "), opts.Threads)
}
