// Package notify delivers desktop notifications through notify-send.
// Delivery is best-effort: a missing binary or a failed send is logged at
// debug level and otherwise ignored, so the command's primary effect is
// never aborted by the notification path.
package notify
