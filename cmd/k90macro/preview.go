package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/gifgen"
	"github.com/v0xg/k90macro/internal/player"
	"github.com/v0xg/k90macro/internal/script"
)

var (
	previewURL     string
	previewWidth   int
	previewHeight  int
	previewShow    bool
	previewGIF     string
	previewProfile string
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <script>",
		Short: "Replay a script as key events in a browser page",
		Long: `preview compiles a script and types it into a web page with the macro's
own timings, so you can check what it does before loading it on the keyboard.

Example:
  k90macro preview copy.txt --url https://example.com --gif copy.gif`,
		Args: cobra.ExactArgs(1),
		RunE: runPreview,
	}

	cmd.Flags().StringVar(&previewURL, "url", "", "Page to type into (default: from config or about:blank)")
	cmd.Flags().IntVar(&previewWidth, "width", 0, "Viewport width (default: from config)")
	cmd.Flags().IntVar(&previewHeight, "height", 0, "Viewport height (default: from config)")
	cmd.Flags().BoolVar(&previewShow, "show", false, "Show the browser window instead of running headless")
	cmd.Flags().StringVar(&previewGIF, "gif", "", "Record the playback to this GIF file")
	cmd.Flags().StringVar(&previewProfile, "profile", "", "Chrome/Chromium profile directory for authenticated sessions (close browser first)")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	opts := player.BrowserOptions{
		URL:        cfg.Preview.URL,
		Headless:   cfg.Preview.Headless && !previewShow,
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		ProfileDir: previewProfile,
	}
	if previewURL != "" {
		opts.URL = previewURL
	}
	if previewWidth > 0 {
		opts.Width = previewWidth
	}
	if previewHeight > 0 {
		opts.Height = previewHeight
	}

	sink := diag.New(os.Stderr)
	m, err := script.CompileFile(args[0], sink.WithPrefix(args[0]+": "))
	if err != nil {
		return err
	}
	logVerbose("Compiled %s: %d events, %dms", args[0], len(m.Events), m.Duration())

	fmt.Printf("→ Opening %s... ", opts.URL)
	session, err := player.Launch(opts)
	if err != nil {
		fmt.Println("failed")
		return err
	}
	defer session.Close()
	fmt.Println("done")

	playOpts := player.Options{Sink: sink, Verbose: verbose}
	var rec *player.Recorder
	if previewGIF != "" {
		rec = &player.Recorder{Capture: session.Capture}
		if err := rec.Start(); err != nil {
			return fmt.Errorf("capturing first frame: %w", err)
		}
		playOpts.AfterStep = rec.Step
	}

	fmt.Printf("→ Playing %s (%dms)... ", m.Name, m.Duration())
	if verbose {
		fmt.Println()
	}
	if err := player.Play(cmd.Context(), session.Keyboard(), m.Events, playOpts); err != nil {
		fmt.Println("failed")
		return fmt.Errorf("playback failed: %w", err)
	}
	fmt.Println("done")

	if rec != nil {
		frames := rec.Frames()
		fmt.Printf("→ Generating GIF (%d frames)... ", len(frames))
		fileSize, err := gifgen.Generate(frames, previewGIF, gifgen.Options{MaxWidth: cfg.Preview.ScreenshotWidth})
		if err != nil {
			fmt.Println("failed")
			return fmt.Errorf("GIF generation failed: %w", err)
		}
		fmt.Println("done")
		fmt.Printf("✓ Saved to %s (%.1f MB)\n", previewGIF, float64(fileSize)/(1024*1024))
	}

	if cfg.Strict && sink.Count() > 0 {
		return fmt.Errorf("%d warnings reported (strict mode)", sink.Count())
	}
	return nil
}
