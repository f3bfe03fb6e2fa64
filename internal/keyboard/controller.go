package keyboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/oskctl/oskctl/internal/config"
	"github.com/oskctl/oskctl/internal/notify"
)

// ErrNoKeyboard is returned when no supported keyboard program is installed.
var ErrNoKeyboard = errors.New("no keyboard application found")

// transientTimeout is how long show/hide notifications stay on screen.
const transientTimeout = 2 * time.Second

// notifySummary is the fixed summary line on every notification.
const notifySummary = "Keyboard"

// ProcessTable answers exact-name queries against the OS process table and
// delivers termination signals. Exact means byte-for-byte: "onboard" must
// not match "onboard-settings" or any other process sharing a prefix.
type ProcessTable interface {
	Running(ctx context.Context, name string) (bool, error)
	TerminateAll(ctx context.Context, name string) error
}

// Notifier delivers a desktop notification. Implementations are best-effort;
// a failed delivery must not surface to the caller.
type Notifier interface {
	Send(ctx context.Context, n notify.Notification)
}

// Controller detects the installed on-screen keyboard program and starts,
// stops, and inspects it.
type Controller struct {
	table    ProcessTable
	notifier Notifier
	log      *zap.SugaredLogger

	lookPath func(file string) (string, error)
	spawn    func(path string, args []string) error
}

// New returns a Controller using the OS PATH for detection and detached
// os/exec children for launching.
func New(table ProcessTable, notifier Notifier, log *zap.SugaredLogger) *Controller {
	return &Controller{
		table:    table,
		notifier: notifier,
		log:      log,
		lookPath: exec.LookPath,
		spawn:    spawnDetached,
	}
}

// spawnDetached launches path with args as a background child and releases
// it so its lifetime is independent of ours. The caller never waits.
func spawnDetached(path string, args []string) error {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Detect probes PATH for each supported keyboard program in priority order
// and returns the first hit, or None when nothing resolves.
func (c *Controller) Detect() Kind {
	for _, kind := range detectOrder {
		path, err := c.lookPath(kind.ProbeName())
		if err != nil {
			continue
		}
		c.log.Debugw("keyboard detected", "kind", kind.String(), "path", path)
		return kind
	}
	c.log.Debugw("no keyboard program on PATH")
	return None
}

// IsRunning reports whether a process exactly matching the kind's name
// exists. Always false for None.
func (c *Controller) IsRunning(ctx context.Context, kind Kind) (bool, error) {
	if kind == None {
		return false, nil
	}
	running, err := c.table.Running(ctx, kind.MatchName())
	if err != nil {
		return false, fmt.Errorf("querying process table for %s: %w", kind.MatchName(), err)
	}
	return running, nil
}

// Start launches the kind's program detached with its configured arguments.
// For None it raises the critical notification and returns ErrNoKeyboard.
func (c *Controller) Start(ctx context.Context, kind Kind, cfg config.Config) error {
	if kind == None {
		c.notifyMissing(ctx)
		return ErrNoKeyboard
	}
	path, err := c.lookPath(kind.Binary())
	if err != nil {
		return fmt.Errorf("resolving %s: %w", kind.Binary(), err)
	}
	var args []string
	if build := programs[kind].args; build != nil {
		args = build(cfg)
	}
	c.log.Debugw("starting keyboard", "kind", kind.String(), "path", path, "args", args)
	if err := c.spawn(path, args); err != nil {
		return fmt.Errorf("starting %s: %w", kind.Binary(), err)
	}
	return nil
}

// Stop signals every process matching the kind's name. Best-effort: it does
// not wait for or verify termination. No-op for None.
func (c *Controller) Stop(ctx context.Context, kind Kind) error {
	if kind == None {
		return nil
	}
	c.log.Debugw("stopping keyboard", "kind", kind.String())
	if err := c.table.TerminateAll(ctx, kind.MatchName()); err != nil {
		return fmt.Errorf("terminating %s: %w", kind.MatchName(), err)
	}
	return nil
}

// Toggle starts the keyboard if it is stopped and stops it if it is running.
func (c *Controller) Toggle(ctx context.Context, cfg config.Config) error {
	kind := c.Detect()
	if kind == None {
		c.notifyMissing(ctx)
		return ErrNoKeyboard
	}
	running, err := c.IsRunning(ctx, kind)
	if err != nil {
		return err
	}
	if running {
		if err := c.Stop(ctx, kind); err != nil {
			return err
		}
		c.notifyTransient(ctx, "Keyboard hidden")
		return nil
	}
	if err := c.Start(ctx, kind, cfg); err != nil {
		return err
	}
	c.notifyTransient(ctx, "Keyboard shown")
	return nil
}

// Show starts the keyboard if it is not already running. Idempotent: when
// the keyboard is already up the call is a no-op and emits no notification.
func (c *Controller) Show(ctx context.Context, cfg config.Config) error {
	kind := c.Detect()
	if kind == None {
		c.notifyMissing(ctx)
		return ErrNoKeyboard
	}
	running, err := c.IsRunning(ctx, kind)
	if err != nil {
		return err
	}
	if running {
		return nil
	}
	if err := c.Start(ctx, kind, cfg); err != nil {
		return err
	}
	c.notifyTransient(ctx, "Keyboard shown")
	return nil
}

// Hide stops the keyboard if it is running. When nothing is installed or
// nothing is running it silently succeeds, with no notification.
func (c *Controller) Hide(ctx context.Context) error {
	kind := c.Detect()
	if kind == None {
		return nil
	}
	running, err := c.IsRunning(ctx, kind)
	if err != nil {
		return err
	}
	if !running {
		return nil
	}
	if err := c.Stop(ctx, kind); err != nil {
		return err
	}
	c.notifyTransient(ctx, "Keyboard hidden")
	return nil
}

// Check reports whether a keyboard is installed and currently running. It
// never fails: errors degrade to false so the polling caller always gets an
// answer.
func (c *Controller) Check(ctx context.Context) bool {
	kind := c.Detect()
	if kind == None {
		return false
	}
	running, err := c.IsRunning(ctx, kind)
	if err != nil {
		c.log.Debugw("running check failed", "kind", kind.String(), "error", err)
		return false
	}
	return running
}

// Status describes a detection outcome. Kind is None when no keyboard
// program is installed.
type Status struct {
	Kind    Kind
	Running bool
}

// Status reports the detected kind and whether it is running.
func (c *Controller) Status(ctx context.Context) (Status, error) {
	kind := c.Detect()
	if kind == None {
		return Status{Kind: None}, nil
	}
	running, err := c.IsRunning(ctx, kind)
	if err != nil {
		return Status{}, err
	}
	return Status{Kind: kind, Running: running}, nil
}

func (c *Controller) notifyMissing(ctx context.Context) {
	c.notifier.Send(ctx, notify.Notification{
		Summary: notifySummary,
		Body:    "No keyboard application found",
		Urgency: notify.UrgencyCritical,
	})
}

func (c *Controller) notifyTransient(ctx context.Context, body string) {
	c.notifier.Send(ctx, notify.Notification{
		Summary: notifySummary,
		Body:    body,
		Timeout: transientTimeout,
	})
}
