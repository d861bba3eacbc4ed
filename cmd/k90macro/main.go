package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/config"
)

var (
	configPath string
	outputDir  string
	jobs       int
	strict     bool
	verbose    bool

	cfg config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "k90macro [script...]",
		Short: "Compile keyboard macro scripts into K90 macro descriptors",
		Long: `k90macro compiles plain-text macro scripts into the XML macro descriptors
the keyboard profile software imports. Each script is written next to its input
with an .xml extension.

Example:
  k90macro copy.txt paste.txt
  k90macro generate "select all and copy" -o copy.txt
  k90macro preview copy.txt --url https://example.com`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runBuild(cmd, args)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	flags.StringVarP(&outputDir, "output-dir", "d", "", "Write descriptors to this directory instead of next to each script")
	flags.IntVarP(&jobs, "jobs", "j", 0, "Scripts compiled in parallel (default: number of CPUs)")
	flags.BoolVar(&strict, "strict", false, "Exit non-zero when any warning is reported")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	rootCmd.AddCommand(
		newBuildCmd(),
		newInspectCmd(),
		newGenerateCmd(),
		newPreviewCmd(),
		newWatchCmd(),
		newKeysCmd(),
	)
	return rootCmd
}

// loadConfig layers command-line flags over the config file and environment.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		c.OutputDir = outputDir
	}
	if flags.Changed("jobs") {
		c.Jobs = jobs
	}
	if flags.Changed("strict") {
		c.Strict = strict
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	verbose = cfg.Verbose
	return nil
}

func logVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}
