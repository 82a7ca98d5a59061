package api

import (
	"context"
	"time"

	"github.com/nerrad567/friendship-lights/internal/auth"
)

// ActionEvent describes one dispatched action and its outcome.
// It never carries the bearer token, only the role.
type ActionEvent struct {
	RequestID  string      `json:"request_id"`
	Role       auth.Role   `json:"role"`
	Action     auth.Action `json:"action"`
	Target     string      `json:"target,omitempty"`
	Color      string      `json:"color,omitempty"`
	OK         bool        `json:"ok"`
	Error      string      `json:"error,omitempty"`
	DurationMS int64       `json:"duration_ms"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Outcome returns "ok" or "error".
func (e ActionEvent) Outcome() string {
	if e.OK {
		return "ok"
	}
	return "error"
}

// ActionObserver is notified after each dispatched action.
// Implementations must not block for long; the request goroutine waits.
type ActionObserver interface {
	ObserveAction(ctx context.Context, event ActionEvent)
}

// ObserverFunc adapts a function to ActionObserver.
type ObserverFunc func(ctx context.Context, event ActionEvent)

// ObserveAction calls f.
func (f ObserverFunc) ObserveAction(ctx context.Context, event ActionEvent) {
	f(ctx, event)
}

// notify delivers event to every observer. A panicking observer is logged
// and skipped.
func (s *Server) notify(ctx context.Context, event ActionEvent) {
	for _, o := range s.observers {
		func() {
			defer func() {
				if err := recover(); err != nil {
					s.logger.Error("action observer panicked", "error", err, "request_id", event.RequestID)
				}
			}()
			o.ObserveAction(ctx, event)
		}()
	}
}
