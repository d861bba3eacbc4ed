package ai

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/macro"
	"github.com/v0xg/k90macro/internal/script"
)

// DefaultRounds is the number of revisions Draft asks for before giving up
// on a clean compile.
const DefaultRounds = 2

// Draft holds a generated script and what compiling it produced.
type Draft struct {
	Script      string
	Macro       *macro.Macro
	Diagnostics string
	Warnings    int
	Rounds      int
}

// Clean reports whether the last attempt compiled without warnings.
func (d *Draft) Clean() bool {
	return d.Warnings == 0
}

// Generate asks the provider for a script and feeds compiler diagnostics back
// until it compiles cleanly or maxRounds revisions have been spent. The last
// attempt is returned even when it still carries warnings.
func Generate(ctx context.Context, p Provider, prompt string, maxRounds int) (*Draft, error) {
	text, err := p.GenerateScript(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}

	d := compileDraft(text)
	for d.Rounds < maxRounds && !d.Clean() {
		if err := ctx.Err(); err != nil {
			return d, err
		}
		text, err := p.ReviseScript(ctx, prompt, d.Script, d.Diagnostics)
		if err != nil {
			return d, fmt.Errorf("revise script (round %d): %w", d.Rounds+1, err)
		}
		rounds := d.Rounds + 1
		d = compileDraft(text)
		d.Rounds = rounds
	}
	return d, nil
}

func compileDraft(text string) *Draft {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	m := script.CompileString(text, sink)
	// Overflow is only reported when the payload is built.
	m.Payload(sink)
	return &Draft{
		Script:      text,
		Macro:       m,
		Diagnostics: strings.TrimRight(buf.String(), "\n"),
		Warnings:    sink.Count(),
	}
}
