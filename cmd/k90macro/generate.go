package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/ai"
	"github.com/v0xg/k90macro/internal/build"
	"github.com/v0xg/k90macro/internal/diag"
)

var (
	genOutput   string
	genProvider string
	genModel    string
	genRounds   int
	genBuild    bool
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Draft a macro script from a description using AI",
		Long: `generate asks an AI provider to write a macro script for your description.
Compiler warnings are sent back to the model for revision before the script
is saved.

Example:
  k90macro generate "hold ctrl, press c, release ctrl, wait, then paste" -o copy.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&genOutput, "output", "o", "macro.txt", "Output script filename")
	cmd.Flags().StringVar(&genProvider, "provider", "", "AI provider: claude, openai (default: from config or claude)")
	cmd.Flags().StringVar(&genModel, "model", "", "Specific model override")
	cmd.Flags().IntVar(&genRounds, "rounds", ai.DefaultRounds, "Revisions to request while the script has warnings")
	cmd.Flags().BoolVar(&genBuild, "build", false, "Also compile the script into its .xml descriptor")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt := args[0]

	provider := cfg.AI.Provider
	if genProvider != "" {
		provider = genProvider
	}
	model := cfg.AI.Model
	if genModel != "" {
		model = genModel
	}

	logVerbose("  Prompt: %s", prompt)
	logVerbose("  Provider: %s", provider)

	fmt.Printf("→ Generating script via %s... ", provider)
	p, err := ai.NewProvider(provider, model)
	if err != nil {
		fmt.Println("failed")
		return fmt.Errorf("AI provider init failed: %w", err)
	}
	draft, err := ai.Generate(cmd.Context(), p, prompt, genRounds)
	if err != nil {
		fmt.Println("failed")
		return fmt.Errorf("script generation failed: %w", err)
	}
	fmt.Printf("done (%d events, %d revisions)\n", len(draft.Macro.Events), draft.Rounds)

	if verbose {
		fmt.Print(draft.Script)
	}
	if !draft.Clean() {
		fmt.Fprintln(os.Stderr, draft.Diagnostics)
		fmt.Printf("⚠ Script still has %d warnings\n", draft.Warnings)
	}

	if err := os.WriteFile(genOutput, []byte(draft.Script), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", genOutput, err)
	}
	fmt.Printf("✓ Saved to %s\n", genOutput)

	if genBuild {
		sink := diag.New(os.Stderr)
		res := build.File(genOutput, build.Options{OutputDir: cfg.OutputDir, Sink: sink})
		if err := report([]build.Result{res}, sink); err != nil {
			return err
		}
		if res.Err == nil {
			fmt.Printf("✓ Built %s\n", res.Output)
		}
	}

	if cfg.Strict && !draft.Clean() {
		return fmt.Errorf("%d warnings reported (strict mode)", draft.Warnings)
	}
	return nil
}
