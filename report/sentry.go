package report

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryOptions configures NewSentry.
type SentryOptions struct {
	DSN         string
	Environment string
	// Transport overrides the HTTP transport, mainly for tests.
	Transport sentry.Transport
}

// Sentry sends errors to a Sentry project. It owns a hub created once at
// startup; each report runs in its own scope.
type Sentry struct {
	hub *sentry.Hub
}

func NewSentry(opts SentryOptions) (*Sentry, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Environment: opts.Environment,
		Transport:   opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry client: %w", err)
	}
	return &Sentry{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

func (s *Sentry) Report(_ context.Context, err error, req Request) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.AddEventProcessor(func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			event.Request = &sentry.Request{
				Method:      req.Method,
				URL:         req.URL,
				QueryString: req.QueryString,
				Headers:     req.Headers,
				Env:         req.Env,
			}
			return event
		})
		scope.SetTag("method", req.Method)
		s.hub.CaptureException(err)
	})
}

// Flush waits for queued events to be sent.
func (s *Sentry) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}
