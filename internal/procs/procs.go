package procs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
)

// Table queries and signals OS processes by exact name.
type Table struct {
	log *zap.SugaredLogger
}

func NewTable(log *zap.SugaredLogger) *Table {
	return &Table{log: log}
}

// Running reports whether any process named exactly name exists.
func (t *Table) Running(ctx context.Context, name string) (bool, error) {
	matches, err := t.findByName(ctx, name)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// TerminateAll sends SIGTERM to every process named exactly name. It does
// not wait for the processes to exit or verify that they did.
func (t *Table) TerminateAll(ctx context.Context, name string) error {
	matches, err := t.findByName(ctx, name)
	if err != nil {
		return err
	}
	var errs []error
	for _, p := range matches {
		t.log.Debugw("terminating process", "name", name, "pid", p.Pid)
		if err := p.TerminateWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("terminating pid %d: %w", p.Pid, err))
		}
	}
	return errors.Join(errs...)
}

func (t *Table) findByName(ctx context.Context, name string) ([]*process.Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	var matches []*process.Process
	for _, p := range procs {
		// Processes can exit mid-scan; skip the ones we can no longer read.
		pname, err := p.NameWithContext(ctx)
		if err != nil || pname != name {
			continue
		}
		// An unreaped child keeps its name until the parent collects it.
		// A zombie is not a running keyboard and cannot be signaled.
		status, err := p.StatusWithContext(ctx)
		if err != nil || slices.Contains(status, process.Zombie) {
			continue
		}
		matches = append(matches, p)
	}
	return matches, nil
}
