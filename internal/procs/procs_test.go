package procs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

// ownName returns the process name of the test binary as the process table
// sees it (the executable base name, as /proc reports it).
func ownName(t *testing.T) string {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	name := filepath.Base(exe)
	// The kernel truncates the recorded name; gopsutil recovers the full
	// name from the command line, so only very long names need trimming.
	if len(name) > 15 {
		t.Skipf("test binary name %q too long for a stable comparison", name)
	}
	return name
}

func TestRunning_MatchesSelf(t *testing.T) {
	table := NewTable(zap.NewNop().Sugar())

	running, err := table.Running(context.Background(), ownName(t))
	if err != nil {
		t.Fatalf("Running: %v", err)
	}
	if !running {
		t.Error("expected the test process itself to be found")
	}
}

func TestRunning_ExactNameOnly(t *testing.T) {
	table := NewTable(zap.NewNop().Sugar())

	name := ownName(t)
	prefix := name[:len(name)-1]
	running, err := table.Running(context.Background(), prefix)
	if err != nil {
		t.Fatalf("Running: %v", err)
	}
	if running {
		t.Errorf("prefix %q must not match process %q", prefix, name)
	}
}

func TestRunning_NoMatch(t *testing.T) {
	table := NewTable(zap.NewNop().Sugar())

	running, err := table.Running(context.Background(), "oskctl-no-such-process")
	if err != nil {
		t.Fatalf("Running: %v", err)
	}
	if running {
		t.Error("expected no match for a made-up name")
	}
}

func TestRunning_IgnoresZombies(t *testing.T) {
	// Short enough that /proc reports the name untruncated.
	const name = "oskzombie-fake"
	binDir := t.TempDir()
	path := filepath.Join(binDir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("creating fake binary: %v", err)
	}

	// Start the child and deliberately do not reap it, so after exiting it
	// lingers as a zombie that still carries the fake name.
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		t.Fatalf("starting fake binary: %v", err)
	}
	t.Cleanup(func() { _ = cmd.Wait() })

	table := NewTable(zap.NewNop().Sugar())
	deadline := time.Now().Add(5 * time.Second)
	for {
		running, err := table.Running(context.Background(), name)
		if err != nil {
			t.Fatalf("Running: %v", err)
		}
		if !running {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("exited child still reported running; zombies must not count")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestTerminateAll_NoMatchIsNoop(t *testing.T) {
	table := NewTable(zap.NewNop().Sugar())

	if err := table.TerminateAll(context.Background(), "oskctl-no-such-process"); err != nil {
		t.Errorf("TerminateAll on no matches: %v", err)
	}
}
