// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/athola/simple-resume/internal/cli"
)

func TestPaletteResolve(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	t.Run("RegistryPalette", func(t *testing.T) {
		outBuf.Reset()
		errBuf.Reset()

		rootCmd.SetArgs([]string{"palette", "resolve", "--name", "ocean"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		out := outBuf.String()
		if !strings.Contains(out, "scheme: ocean") {
			t.Errorf("output missing scheme name:\n%s", out)
		}
		if !strings.Contains(out, "#003049") {
			t.Errorf("output missing theme swatch #003049:\n%s", out)
		}
		if !strings.Contains(out, "sidebar_text") || !strings.Contains(out, "#FFFFFF") {
			t.Errorf("output missing derived sidebar text:\n%s", out)
		}
	})

	t.Run("PaletteFile", func(t *testing.T) {
		outBuf.Reset()
		errBuf.Reset()

		path := filepath.Join(t.TempDir(), "palette.yaml")
		content := "palette:\n  theme_color: \"#4060A0\"\n  sidebar_color: \"#D0D8E8\"\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		rootCmd.SetArgs([]string{"palette", "resolve", "--file", path})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		out := outBuf.String()
		if !strings.Contains(out, "#4060A0") || !strings.Contains(out, "#D0D8E8") {
			t.Errorf("output missing direct block colours:\n%s", out)
		}
		if !strings.Contains(out, "#000000") {
			t.Errorf("output missing derived sidebar text #000000:\n%s", out)
		}
	})

	t.Run("StrictUnknownPalette", func(t *testing.T) {
		outBuf.Reset()
		errBuf.Reset()

		rootCmd.SetArgs([]string{"palette", "resolve", "--file", "", "--name", "no-such-palette", "--strict"})
		err := rootCmd.Execute()
		if err == nil {
			t.Fatal("Execute() succeeded, want a lookup error in strict mode")
		}
		if !strings.Contains(err.Error(), "unknown palette") {
			t.Errorf("Execute() error = %v, want unknown palette", err)
		}
	})
}

func TestPaletteGenerateDeterministic(t *testing.T) {
	run := func() string {
		var outBuf bytes.Buffer
		rootCmd := cli.NewRootCmd()
		rootCmd.SetOut(&outBuf)
		rootCmd.SetErr(&outBuf)
		rootCmd.SetArgs([]string{"palette", "generate", "--size", "4", "--seed", "9"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		return outBuf.String()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("generate output differs between runs:\n%s\nvs\n%s", first, second)
	}

	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 4 {
		t.Fatalf("generate output has %d lines, want 4:\n%s", len(lines), first)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") || len(line) != 7 {
			t.Errorf("line %q is not a hex swatch", line)
		}
	}
}

func TestPaletteList(t *testing.T) {
	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&outBuf)
	rootCmd.SetArgs([]string{"palette", "list"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := outBuf.String()
	for _, want := range []string{"NAME", "ocean", "paper", "#0395DE"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&outBuf)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(outBuf.String(), "simple-resume version") {
		t.Errorf("version output = %q, want the version banner", outBuf.String())
	}
}
