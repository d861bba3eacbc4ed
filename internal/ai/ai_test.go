package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExtractScript(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  error
	}{
		{"plain", "name X\na\n", "name X\na\n", nil},
		{"surrounding whitespace", "\n\n  name X\na  \n", "name X\na\n", nil},
		{"fenced", "```\nname X\na\n```", "name X\na\n", nil},
		{"fenced with language", "Here you go:\n```text\nname X\nenter\n```\nEnjoy.", "name X\nenter\n", nil},
		{"unclosed fence", "```\nname X\n", "name X\n", nil},
		{"empty", "   \n", "", ErrEmptyResponse},
		{"empty fence", "```\n```", "", ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractScript(tt.response)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("extractScript() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("extractScript() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractScriptUnterminatedFence(t *testing.T) {
	if _, err := extractScript("```text"); err == nil {
		t.Error("expected error for fence without body")
	}
}

func TestBuildPrompts(t *testing.T) {
	if got := buildUserPrompt("copy and paste"); got != "User request: copy and paste" {
		t.Errorf("buildUserPrompt() = %q", got)
	}

	got := buildRevisePrompt("copy", "name X\nBogus\n", "warning: could not parse key name 'Bogus', ignoring")
	for _, want := range []string{"Original user request: copy", "name X\nBogus", "could not parse key name 'Bogus'"} {
		if !strings.Contains(got, want) {
			t.Errorf("revise prompt missing %q:\n%s", want, got)
		}
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider("gemini", ""); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProviderMissingKey(t *testing.T) {
	t.Setenv("K90MACRO_ANTHROPIC_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("K90MACRO_OPENAI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	for _, name := range []string{"claude", "openai"} {
		if _, err := NewProvider(name, ""); err == nil {
			t.Errorf("NewProvider(%q) succeeded without an API key", name)
		}
	}
}

type fakeProvider struct {
	drafts  []string
	calls   int
	revised []string
	err     error
}

func (f *fakeProvider) next() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	s := f.drafts[f.calls]
	f.calls++
	return s, nil
}

func (f *fakeProvider) GenerateScript(ctx context.Context, prompt string) (string, error) {
	return f.next()
}

func (f *fakeProvider) ReviseScript(ctx context.Context, prompt, previous, diagnostics string) (string, error) {
	f.revised = append(f.revised, diagnostics)
	return f.next()
}

func TestGenerateClean(t *testing.T) {
	p := &fakeProvider{drafts: []string{"name Copy\ndown ctrl\nc\nup ctrl\n"}}

	d, err := Generate(context.Background(), p, "copy", DefaultRounds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !d.Clean() || d.Rounds != 0 || p.calls != 1 {
		t.Errorf("draft = %+v, calls = %d", d, p.calls)
	}
	if d.Macro.Name != "Copy" || len(d.Macro.Events) != 5 {
		t.Errorf("macro = %+v", d.Macro)
	}
}

func TestGenerateRevises(t *testing.T) {
	p := &fakeProvider{drafts: []string{
		"name Copy\ndown controll\nc\n",
		"name Copy\ndown ctrl\nc\nup ctrl\n",
	}}

	d, err := Generate(context.Background(), p, "copy", DefaultRounds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !d.Clean() || d.Rounds != 1 {
		t.Errorf("draft = %+v", d)
	}
	if len(p.revised) != 1 || p.revised[0] != "warning: could not parse key name 'controll', ignoring" {
		t.Errorf("diagnostics fed back = %q", p.revised)
	}
}

func TestGenerateGivesUp(t *testing.T) {
	p := &fakeProvider{drafts: []string{"Bogus\n", "Bogus\n", "Bogus\n"}}

	d, err := Generate(context.Background(), p, "x", DefaultRounds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if d.Clean() || d.Rounds != DefaultRounds || d.Warnings != 1 {
		t.Errorf("draft = %+v", d)
	}
	if p.calls != DefaultRounds+1 {
		t.Errorf("calls = %d, want %d", p.calls, DefaultRounds+1)
	}
}

func TestGenerateProviderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Generate(context.Background(), &fakeProvider{err: boom}, "x", DefaultRounds)
	if !errors.Is(err, boom) {
		t.Errorf("Generate() error = %v, want %v", err, boom)
	}
}
