package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	return cmd.Execute()
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "k90macro.toml")
	if err := os.WriteFile(path, []byte("jobs = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "copy.txt")
	if err := os.WriteFile(in, []byte("name Copy\ndown ctrl\nc\nup ctrl\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, in); err != nil {
		t.Fatalf("k90macro %s: %v", in, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "copy.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<MacroName>Copy</MacroName>") {
		t.Errorf("descriptor:\n%s", data)
	}
	if cfg.Jobs != 2 {
		t.Errorf("cfg.Jobs = %d, want 2 from config file", cfg.Jobs)
	}
}

func TestBuildCommandFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(in, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	if err := execute(t, "build", "-j", "1", "-d", out, in); err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.Jobs != 1 || cfg.OutputDir != out {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(out, "a.xml")); err != nil {
		t.Error(err)
	}
}

func TestBuildCommandFailures(t *testing.T) {
	dir := t.TempDir()
	warn := filepath.Join(dir, "warn.txt")
	if err := os.WriteFile(warn, []byte("Bogus\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "build", warn); err != nil {
		t.Errorf("warnings without --strict: %v", err)
	}
	if err := execute(t, "build", "--strict", warn); err == nil {
		t.Error("warnings with --strict should fail")
	}
	if err := execute(t, "build", filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("missing script should fail")
	}
	if err := execute(t, "build", filepath.Join(dir, "done.xml")); err != nil {
		t.Errorf("skipped .xml input should not fail: %v", err)
	}
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "copy.txt")
	if err := os.WriteFile(in, []byte("name Copy\npress a 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, in); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "inspect", filepath.Join(dir, "copy.xml")); err != nil {
		t.Errorf("inspect: %v", err)
	}
	if err := execute(t, "inspect", in); err == nil {
		t.Error("inspect of a script should fail")
	}
}
