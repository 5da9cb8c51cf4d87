package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(contextWithEnv(context.Background()), append([]string{appName}, args...))
	return out.String(), err
}

func writeSource(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestDecorations_PrintsOneLinePerDecoration(t *testing.T) {
	path := writeSource(t, "> quote\n\nafter\n")

	got, err := runApp(t, "decorations", "--cursor", "14", path)
	if err != nil {
		t.Fatalf("decorations: %v", err)
	}
	if want := "replace 0 7 \"> quote\"\n"; got != want {
		t.Fatalf("decorations: got %q, want %q", got, want)
	}

	got, err = runApp(t, "decorations", "--cursor", "3", path)
	if err != nil {
		t.Fatalf("decorations: %v", err)
	}
	if got != "" {
		t.Fatalf("cursor in blockquote: got %q, want no decorations", got)
	}
}

func TestRender_PrintsHTML(t *testing.T) {
	path := writeSource(t, "> hi")
	got, err := runApp(t, "render", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<blockquote><p>hi</p></blockquote>\n"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_UsesConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "livemark.yaml")
	if err := os.WriteFile(cfgPath, []byte("tags:\n  callout:\n    render: aside\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	path := writeSource(t, "{% callout %}\nHi\n{% /callout %}")

	got, err := runApp(t, "--config", cfgPath, "render", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "<aside><p>Hi</p></aside>") {
		t.Fatalf("render with config: got %q", got)
	}
}

func TestDumpConfig(t *testing.T) {
	got, err := runApp(t, "dumpconfig")
	if err != nil {
		t.Fatalf("dumpconfig: %v", err)
	}
	if !strings.Contains(got, "check: true") {
		t.Fatalf("dumpconfig: got %q", got)
	}
}

func TestCommands_RequireOneSource(t *testing.T) {
	if _, err := runApp(t, "render"); err == nil {
		t.Fatalf("render without FILE: want error")
	}
	if _, err := runApp(t, "decorations", filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatalf("missing FILE: want error")
	}
}
