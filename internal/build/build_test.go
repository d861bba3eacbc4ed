package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/v0xg/k90macro/internal/descriptor"
	"github.com/v0xg/k90macro/internal/diag"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input   string
		dir     string
		want    string
		wantErr error
	}{
		{"macro.txt", "", "macro.xml", nil},
		{"dir/macro.k90", "", "dir/macro.xml", nil},
		{"noext", "", "noext.xml", nil},
		{"dir/macro.txt", "out", "out/macro.xml", nil},
		{"macro.xml", "", "", ErrAlreadyXML},
		{"MACRO.XML", "", "", ErrAlreadyXML},
	}

	for _, tt := range tests {
		got, err := OutputPath(tt.input, tt.dir)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("OutputPath(%q, %q) error = %v, want %v", tt.input, tt.dir, err, tt.wantErr)
			continue
		}
		if got != filepath.FromSlash(tt.want) {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.dir, got, tt.want)
		}
	}
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	in := writeScript(t, dir, "copy.txt", "name Copy\nkeydown ctrl\nc\nkeyup ctrl\nBogus\n")

	var buf bytes.Buffer
	res := File(in, Options{Sink: diag.New(&buf)})
	if res.Err != nil {
		t.Fatalf("File() error = %v", res.Err)
	}
	if res.Output != filepath.Join(dir, "copy.xml") {
		t.Errorf("Output = %q", res.Output)
	}
	if res.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", res.Warnings)
	}
	if want := in + ": warning: could not parse key name 'Bogus', ignoring\n"; buf.String() != want {
		t.Errorf("diagnostics = %q, want %q", buf.String(), want)
	}

	f, err := os.Open(res.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d, err := descriptor.Read(f)
	if err != nil {
		t.Fatalf("descriptor.Read() error = %v", err)
	}
	if name, _ := d.Get(descriptor.FieldMacroName); name != "Copy" {
		t.Errorf("MacroName = %q, want Copy", name)
	}
	payload, _ := d.Get(descriptor.FieldMacroInfo)
	if !strings.HasPrefix(payload, "110001ff000f430001ff000f430000ff000f110000000000") {
		t.Errorf("MacroInfo = %.60s...", payload)
	}
}

func TestFileOutputDir(t *testing.T) {
	dir := t.TempDir()
	in := writeScript(t, dir, "a.txt", "a\n")
	outDir := filepath.Join(dir, "nested", "out")

	res := File(in, Options{OutputDir: outDir})
	if res.Err != nil {
		t.Fatalf("File() error = %v", res.Err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "a.xml")); err != nil {
		t.Errorf("descriptor not written to output dir: %v", err)
	}
}

func TestFileSkipsAndFailures(t *testing.T) {
	dir := t.TempDir()

	res := File(filepath.Join(dir, "done.xml"), Options{})
	if !res.Skipped || !errors.Is(res.Err, ErrAlreadyXML) {
		t.Errorf("xml input: %+v", res)
	}

	res = File(filepath.Join(dir, "missing.txt"), Options{})
	if res.Skipped || res.Err == nil {
		t.Errorf("missing input: %+v", res)
	}
}

func TestAll(t *testing.T) {
	dir := t.TempDir()
	var inputs []string
	for _, name := range []string{"one.txt", "two.txt", "three.txt", "four.txt"} {
		inputs = append(inputs, writeScript(t, dir, name, "name "+name+"\npress Bogus\nenter\n"))
	}
	inputs = append(inputs, filepath.Join(dir, "skip.xml"))

	sink := diag.Discard()
	results, err := All(context.Background(), inputs, Options{Jobs: 2, Sink: sink})
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(inputs))
	}

	for i, res := range results[:4] {
		if res.Input != inputs[i] {
			t.Errorf("results[%d].Input = %q, want %q", i, res.Input, inputs[i])
		}
		if res.Err != nil || res.Warnings != 1 {
			t.Errorf("results[%d] = %+v", i, res)
		}
		if res.Macro == nil || res.Macro.Name != filepath.Base(inputs[i]) {
			t.Errorf("results[%d].Macro = %+v", i, res.Macro)
		}
	}
	if !results[4].Skipped {
		t.Errorf("xml input was not skipped: %+v", results[4])
	}
	if sink.Count() != 4 {
		t.Errorf("sink.Count() = %d, want 4", sink.Count())
	}
}

func TestAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := All(ctx, []string{"a.txt"}, Options{Jobs: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("All() error = %v, want context.Canceled", err)
	}
}
