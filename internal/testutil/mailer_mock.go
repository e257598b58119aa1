package testutil

import (
	"context"
	"regexp"
	"sync"
	"testing"
)

var codePattern = regexp.MustCompile(`\d{4,10}`)

// SentMail captures one delivered message.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// RecordingMailer is a mock mailer.Mailer that records every message instead
// of delivering it. Tests extract the verification code from the last body.
type RecordingMailer struct {
	mu   sync.Mutex
	Sent []SentMail
	// Err is returned from Send when set, simulating delivery failure
	Err error
}

// Send records the message.
func (m *RecordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// LastCode extracts the numeric verification code from the most recent message.
func (m *RecordingMailer) LastCode(t *testing.T) string {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Sent) == 0 {
		t.Fatal("No mail was sent")
	}

	code := codePattern.FindString(m.Sent[len(m.Sent)-1].Body)
	if code == "" {
		t.Fatalf("No verification code found in mail body: %q", m.Sent[len(m.Sent)-1].Body)
	}
	return code
}

// SentCount returns how many messages were recorded.
func (m *RecordingMailer) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
