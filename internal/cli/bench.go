package cli

import (
	"fmt"
	"math/rand"

	algordft "github.com/cwbudde/algo-rdft"
	"github.com/spf13/cobra"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundtrip = "roundtrip"
)

type benchFlags struct {
	sizes      string
	howmany    int
	iters      int
	warmup     int
	mode       string
	precision  string
	measure    bool
	seed       int64
	wisdomFile string
}

type benchResult struct {
	size    int
	mode    string
	label   string
	nsPerOp float64
}

func newBenchCmd() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time contiguous batched transforms over a range of sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchCmd(cmd, &f)
		},
	}

	cmd.Flags().StringVar(&f.sizes, "sizes", "16,64,256,1024", "Comma-separated transform sizes")
	cmd.Flags().IntVar(&f.howmany, "howmany", 8, "Transforms per batch")
	cmd.Flags().IntVar(&f.iters, "iters", 50, "Benchmark iterations")
	cmd.Flags().IntVar(&f.warmup, "warmup", 5, "Warmup iterations")
	cmd.Flags().StringVar(&f.mode, "mode", modeForward, "Benchmark mode: forward, inverse, roundtrip, all")
	cmd.Flags().StringVar(&f.precision, "precision", "f64", "Element type: f32 or f64")
	cmd.Flags().BoolVar(&f.measure, "measure", false, "Plan in measure mode")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "RNG seed")
	cmd.Flags().StringVar(&f.wisdomFile, "wisdom", "", "Export wisdom gathered while planning to file")

	return cmd
}

func runBenchCmd(cmd *cobra.Command, f *benchFlags) error {
	sizes, err := parseSizes(f.sizes)
	if err != nil {
		return err
	}

	if len(sizes) == 0 {
		return fmt.Errorf("no sizes specified")
	}

	if f.howmany <= 0 || f.iters <= 0 || f.warmup < 0 {
		return fmt.Errorf("--howmany and --iters must be positive, --warmup non-negative")
	}

	if err := validatePrecision(f.precision); err != nil {
		return err
	}

	modes, err := resolveModes(f.mode)
	if err != nil {
		return err
	}

	wisdom := algordft.NewWisdom()
	opts := algordft.PlanOptions{Wisdom: wisdom, Logger: newLogger(cmd.ErrOrStderr())}

	if f.measure {
		opts.Planner = algordft.PlannerMeasure
	}

	pl := algordft.NewPlanner(opts)
	rnd := rand.New(rand.NewSource(f.seed))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "howmany=%d iters=%d warmup=%d precision=%s\n", f.howmany, f.iters, f.warmup, f.precision)
	fmt.Fprintf(out, "%8s  %10s  %12s  %s\n", "size", "mode", "ns/op", "plan")

	for _, n := range sizes {
		for _, mode := range modes {
			res, err := benchmarkSize(pl, rnd, f, n, mode)
			if err != nil {
				return fmt.Errorf("size %d %s: %w", n, mode, err)
			}

			fmt.Fprintf(out, "%8d  %10s  %12.1f  %s\n", res.size, res.mode, res.nsPerOp, res.label)
		}
	}

	if f.wisdomFile != "" {
		if err := algordft.ExportWisdomTo(f.wisdomFile, wisdom); err != nil {
			return fmt.Errorf("error exporting wisdom: %w", err)
		}

		printSuccess(out, fmt.Sprintf("wisdom exported to %s", f.wisdomFile))
	}

	return nil
}

func benchmarkSize(pl *algordft.Planner, rnd *rand.Rand, f *benchFlags, n int, mode string) (benchResult, error) {
	res := benchResult{size: n, mode: mode}

	kinds := []algordft.Kind{algordft.R2HC}

	switch mode {
	case modeInverse:
		kinds = []algordft.Kind{algordft.HC2R}
	case modeRoundtrip:
		kinds = []algordft.Kind{algordft.R2HC, algordft.HC2R}
	}

	labels := make([]string, 0, len(kinds))

	for _, kind := range kinds {
		dim, realDist, cplxDist := layout(kind, n, false)
		sz := []algordft.IODim{dim}
		vecsz := []algordft.IODim{batchDim(kind, f.howmany, realDist, cplxDist)}

		var (
			rep planReport
			err error
		)

		if f.precision == "f32" {
			rep, err = runPlan[float32](pl, rnd, kind, sz, vecsz, false, f.iters, f.warmup)
		} else {
			rep, err = runPlan[float64](pl, rnd, kind, sz, vecsz, false, f.iters, f.warmup)
		}

		if err != nil {
			return benchResult{}, err
		}

		res.nsPerOp += rep.nsPerOp
		labels = append(labels, oneLine(rep.label))
	}

	res.label = labels[0]
	if len(labels) > 1 {
		res.label += " + " + labels[1]
	}

	return res, nil
}

func resolveModes(mode string) ([]string, error) {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundtrip}, nil
	case modeForward, modeInverse, modeRoundtrip:
		return []string{mode}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
