package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/build"
	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/watch"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir|script...>",
		Short: "Rebuild scripts whenever they change",
		Long: `watch rebuilds a script's descriptor every time the script is saved. A
directory covers every script directly inside it. Stop with Ctrl+C.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := watch.New(args, watch.Options{
		Ignore: func(path string) bool {
			return strings.EqualFold(filepath.Ext(path), build.OutputExt)
		},
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		},
	})
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Printf("→ Watching %s (Ctrl+C to stop)\n", strings.Join(args, ", "))

	ctx := cmd.Context()
	err = w.Run(ctx, func(paths []string) {
		sink := diag.New(os.Stderr)
		results, err := build.All(ctx, paths, build.Options{
			OutputDir: cfg.OutputDir,
			Jobs:      cfg.Jobs,
			Sink:      sink,
		})
		if err != nil {
			return
		}
		if err := report(results, sink); err != nil {
			fmt.Fprintf(os.Stderr, "⚠ %v\n", err)
			return
		}
		for _, res := range results {
			if res.Err == nil {
				fmt.Printf("✓ %s → %s\n", res.Input, res.Output)
			}
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
