package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/build"
	"github.com/v0xg/k90macro/internal/diag"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <script...>",
		Short: "Compile scripts into .xml macro descriptors",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBuild,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	sink := diag.New(os.Stderr)

	logVerbose("Building %d scripts (%d jobs)", len(args), cfg.Jobs)
	results, err := build.All(cmd.Context(), args, build.Options{
		OutputDir: cfg.OutputDir,
		Jobs:      cfg.Jobs,
		Sink:      sink,
	})
	if err != nil {
		return err
	}
	return report(results, sink)
}

// report prints per-file outcomes in input order and turns failures, or
// warnings in strict mode, into an error.
func report(results []build.Result, sink *diag.Sink) error {
	failed := 0
	for _, res := range results {
		switch {
		case res.Skipped:
			fmt.Printf("skipping argument %s, already has .xml extension\n", res.Input)
		case res.Err != nil:
			fmt.Fprintf(os.Stderr, "error in %s: %v\n", res.Input, res.Err)
			failed++
		default:
			logVerbose("  %s → %s (%d events, %d bytes, %dms)",
				res.Input, res.Output, len(res.Macro.Events), res.Macro.Size(), res.Macro.Duration())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(results))
	}
	if cfg.Strict && sink.Count() > 0 {
		return fmt.Errorf("%d warnings reported (strict mode)", sink.Count())
	}
	return nil
}
