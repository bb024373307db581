package cli

import (
	"fmt"
	"time"

	algordft "github.com/cwbudde/algo-rdft"
	"github.com/spf13/cobra"
)

func newWisdomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wisdom",
		Short: "Inspect and merge wisdom files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <file>",
		Short: "List the entries of a wisdom file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWisdomShow(cmd, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "merge <out> <in>...",
		Short: "Merge wisdom files; later files win on conflicting entries",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWisdomMerge(cmd, args[0], args[1:])
		},
	})

	return cmd
}

func runWisdomShow(cmd *cobra.Command, filename string) error {
	wisdom := algordft.NewWisdom()
	if err := algordft.ImportWisdomTo(filename, wisdom); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSection(out, fmt.Sprintf("%s (%d entries)", filename, wisdom.Len()))

	for _, e := range wisdom.Entries() {
		printLabelValue(out, e.Key.Signature, fmt.Sprintf("%s cost=%g flags=%d mode=%s simd=%s at %s",
			e.Solver, e.Cost, e.Key.Flags, e.Key.Mode, e.Key.SIMD, e.Timestamp.Format(time.RFC3339)))
	}

	return nil
}

func runWisdomMerge(cmd *cobra.Command, outFile string, inFiles []string) error {
	wisdom := algordft.NewWisdom()

	for _, in := range inFiles {
		if err := algordft.ImportWisdomTo(in, wisdom); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}

	if err := algordft.ExportWisdomTo(outFile, wisdom); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("merged %d files into %s (%d entries)", len(inFiles), outFile, wisdom.Len()))

	return nil
}
