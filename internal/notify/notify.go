package notify

import (
	"context"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/oskctl/oskctl/internal/branding"
)

// Urgency maps to the freedesktop notification urgency levels understood by
// notify-send.
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyCritical
)

func (u Urgency) String() string {
	if u == UrgencyCritical {
		return "critical"
	}
	return "normal"
}

// Notification is one desktop notification. A zero Timeout leaves expiry to
// the notification server.
type Notification struct {
	Summary string
	Body    string
	Urgency Urgency
	Timeout time.Duration
}

// Sender delivers notifications by shelling out to notify-send.
type Sender struct {
	log *zap.SugaredLogger
}

func NewSender(log *zap.SugaredLogger) *Sender {
	return &Sender{log: log}
}

// Send delivers the notification, fire-and-forget. Errors are swallowed.
func (s *Sender) Send(ctx context.Context, n Notification) {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		s.log.Debugw("notify-send not installed, dropping notification", "body", n.Body)
		return
	}
	if err := exec.CommandContext(ctx, path, sendArgs(n)...).Run(); err != nil {
		s.log.Debugw("notification delivery failed", "body", n.Body, "error", err)
	}
}

// sendArgs builds the notify-send argument list for n.
func sendArgs(n Notification) []string {
	args := []string{"-a", branding.CLIName(), "-u", n.Urgency.String()}
	if n.Timeout > 0 {
		args = append(args, "-t", strconv.FormatInt(n.Timeout.Milliseconds(), 10))
	}
	return append(args, n.Summary, n.Body)
}
