// Package cli implements the rdft2plan command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Global flags
var verbose bool

// rootCmd is the root command for rdft2plan.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rdft2plan",
		Version: "dev",
		Short:   "Plan and time batched real/half-complex transforms",
		Long: `rdft2plan builds plans for batched real <-> half-complex transforms,
prints the chosen plan tree with its operation counts and cost, times plan
execution and manages wisdom files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log planner decisions to stderr")

	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newWisdomCmd())

	return cmd
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger returns a debug logger on w when --verbose is set, nil otherwise.
func newLogger(w io.Writer) *slog.Logger {
	if !verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
