// Package build turns script files into descriptor files next to them.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/v0xg/k90macro/internal/descriptor"
	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/macro"
	"github.com/v0xg/k90macro/internal/script"
)

// OutputExt is the extension of generated descriptors.
const OutputExt = ".xml"

// ErrAlreadyXML is reported for inputs that already carry OutputExt.
var ErrAlreadyXML = errors.New("already has .xml extension")

// Options configures a build.
type Options struct {
	OutputDir string // empty writes next to the input
	Jobs      int
	Sink      *diag.Sink
}

// Result describes the build of one input.
type Result struct {
	Input    string
	Output   string
	Macro    *macro.Macro
	Warnings int
	Skipped  bool
	Err      error
}

// OutputPath returns where the descriptor for input is written.
func OutputPath(input, outputDir string) (string, error) {
	out := strings.TrimSuffix(input, filepath.Ext(input)) + OutputExt
	if strings.EqualFold(out, input) {
		return "", ErrAlreadyXML
	}
	if outputDir != "" {
		out = filepath.Join(outputDir, filepath.Base(out))
	}
	return out, nil
}

// File compiles one script and writes its descriptor.
func File(input string, opts Options) Result {
	res := Result{Input: input}

	out, err := OutputPath(input, opts.OutputDir)
	if err != nil {
		res.Skipped = true
		res.Err = err
		return res
	}
	res.Output = out

	sink := opts.Sink
	if sink == nil {
		sink = diag.Discard()
	}
	sink = sink.WithPrefix(input + ": ")

	m, err := script.CompileFile(input, sink)
	if err != nil {
		res.Err = err
		return res
	}
	res.Macro = m

	d := descriptor.FromMacro(m, sink)
	res.Warnings = sink.Local()
	if err := writeDescriptor(out, d); err != nil {
		res.Err = err
		return res
	}

	return res
}

func writeDescriptor(path string, d descriptor.Descriptor) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := d.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// All builds every input with at most opts.Jobs files in flight. Results
// are returned in input order. Per-file failures are recorded in the results
// and do not stop the other builds.
func All(ctx context.Context, inputs []string, opts Options) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = File(input, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
