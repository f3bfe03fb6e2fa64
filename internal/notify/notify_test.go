package notify

import (
	"reflect"
	"testing"
	"time"
)

func TestUrgencyString(t *testing.T) {
	if got := UrgencyNormal.String(); got != "normal" {
		t.Errorf("UrgencyNormal.String() = %q, want normal", got)
	}
	if got := UrgencyCritical.String(); got != "critical" {
		t.Errorf("UrgencyCritical.String() = %q, want critical", got)
	}
}

func TestSendArgs(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		want []string
	}{
		{
			name: "transient normal",
			n: Notification{
				Summary: "Keyboard",
				Body:    "Keyboard shown",
				Timeout: 2 * time.Second,
			},
			want: []string{"-a", "oskctl", "-u", "normal", "-t", "2000", "Keyboard", "Keyboard shown"},
		},
		{
			name: "critical without expiry",
			n: Notification{
				Summary: "Keyboard",
				Body:    "No keyboard application found",
				Urgency: UrgencyCritical,
			},
			want: []string{"-a", "oskctl", "-u", "critical", "Keyboard", "No keyboard application found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sendArgs(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sendArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
