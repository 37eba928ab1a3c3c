package tui

import (
	"sync"

	"github.com/jask/orderdeck/internal/core"
)

// Toast is a transient user-facing message.
type Toast struct {
	Message  string
	Severity string
}

// pendingAlert is a blocking alert waiting for the user. confirm is nil for
// purely informational alerts.
type pendingAlert struct {
	opts    core.AlertOptions
	confirm func(bool)
}

// NoticeSink implements core.Notifier. Workflow batches run in tea.Cmd
// goroutines and append concurrently; the update loop drains on its own
// goroutine, so the sink is the one place in the TUI that needs a lock.
type NoticeSink struct {
	mu     sync.Mutex
	toasts []Toast
	alerts []pendingAlert
}

func NewNoticeSink() *NoticeSink { return &NoticeSink{} }

func (s *NoticeSink) Toast(message, severity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = append(s.toasts, Toast{Message: message, Severity: severity})
}

func (s *NoticeSink) Alert(opts core.AlertOptions, confirm func(bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, pendingAlert{opts: opts, confirm: confirm})
}

// Drain hands over everything accumulated so far.
func (s *NoticeSink) Drain() ([]Toast, []pendingAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	toasts, alerts := s.toasts, s.alerts
	s.toasts, s.alerts = nil, nil
	return toasts, alerts
}
