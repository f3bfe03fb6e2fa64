package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oskctl/oskctl/internal/keyboard"
)

// execute runs the command tree against an empty PATH and a missing config
// file, capturing combined output. Commands that would touch real keyboard
// programs are not run through this helper.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	confPath := filepath.Join(t.TempDir(), "keyboard.conf")
	rootCmd.SetArgs(append([]string{"--config", confPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestUnknownCommandPrintsUsage(t *testing.T) {
	out, err := execute(t, "frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("usage not printed, got:\n%s", out)
	}
}

func TestCheckPrintsFWithoutKeyboard(t *testing.T) {
	out, err := execute(t, "check")
	if err != nil {
		t.Fatalf("check must never fail, got %v", err)
	}
	if out != "f\n" {
		t.Errorf("check output = %q, want \"f\\n\"", out)
	}
}

func TestHideWithoutKeyboardIsSilent(t *testing.T) {
	out, err := execute(t, "hide")
	if err != nil {
		t.Fatalf("hide with nothing installed must succeed, got %v", err)
	}
	if out != "" {
		t.Errorf("hide printed %q, want nothing", out)
	}
}

func TestStatusWithoutKeyboard(t *testing.T) {
	out, err := execute(t, "status")
	if !errors.Is(err, keyboard.ErrNoKeyboard) {
		t.Fatalf("status = %v, want ErrNoKeyboard", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "No keyboard application found" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "wvkbd") || !strings.Contains(lines[1], "squeekboard") {
		t.Errorf("install suggestions missing from %q", lines[1])
	}
}

// brokenConf writes a config file with an invalid HEIGHT and returns its path.
func brokenConf(t *testing.T) string {
	t.Helper()
	confPath := filepath.Join(t.TempDir(), "keyboard.conf")
	if err := os.WriteFile(confPath, []byte("HEIGHT=banana\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return confPath
}

func TestConfigLoadFailureSurfaces(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	rootCmd.SetArgs([]string{"--config", brokenConf(t), "show"})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "HEIGHT") {
		t.Errorf("show with broken config = %v, want HEIGHT load error", err)
	}
}

func TestCheckToleratesBrokenConfig(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	rootCmd.SetArgs([]string{"--config", brokenConf(t), "check"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("check must never fail, even on a broken config: %v", err)
	}
	if got := buf.String(); got != "f\n" {
		t.Errorf("check output = %q, want \"f\\n\"", got)
	}
}
