package report

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "http://api.example.com:8080/fighter/461?pretty=1", nil)
	r.RemoteAddr = "203.0.113.7:51234"
	r.Header.Set("User-Agent", "curl/8.0")
	r.Header.Add("Accept", "text/html")
	r.Header.Add("Accept", "application/json")

	req := NewRequest(r)
	require.Equal(t, "GET", req.Method)
	require.Equal(t, "http://api.example.com:8080/fighter/461", req.URL)
	require.Equal(t, "pretty=1", req.QueryString)
	require.Equal(t, "curl/8.0", req.Headers["User-Agent"])
	require.Equal(t, "text/html,application/json", req.Headers["Accept"])
	require.Equal(t, map[string]string{
		"REMOTE_ADDR": "203.0.113.7",
		"SERVER_NAME": "api.example.com",
		"SERVER_PORT": "8080",
	}, req.Env)
}

func TestNewRequestDefaultPorts(t *testing.T) {
	r := httptest.NewRequest("GET", "https://api.example.com/event/1", nil)
	r.TLS = &tls.ConnectionState{}

	req := NewRequest(r)
	require.Equal(t, "https://api.example.com/event/1", req.URL)
	require.Equal(t, "api.example.com", req.Env["SERVER_NAME"])
	require.Equal(t, "443", req.Env["SERVER_PORT"])
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	l := NewLog(zap.New(core))

	l.Report(context.Background(), errors.New("boom"), Request{Method: "GET", URL: "http://x/event/1"})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "request failed", entries[0].Message)
	require.Equal(t, "boom", entries[0].ContextMap()["error"])
	require.Equal(t, "http://x/event/1", entries[0].ContextMap()["url"])
}

type captureTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *captureTransport) Configure(sentry.ClientOptions) {}

func (c *captureTransport) Flush(time.Duration) bool { return true }

func (c *captureTransport) SendEvent(event *sentry.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func TestSentryReporter(t *testing.T) {
	transport := &captureTransport{}
	s, err := NewSentry(SentryOptions{
		DSN:         "https://public@sentry.example.com/1",
		Environment: "test",
		Transport:   transport,
	})
	require.NoError(t, err)

	s.Report(context.Background(), errors.New("parse failure"), Request{
		Method:      "GET",
		URL:         "http://x/event/9",
		QueryString: "a=b",
		Headers:     map[string]string{"Accept": "application/json"},
		Env:         map[string]string{"SERVER_PORT": "80"},
	})
	require.True(t, s.Flush(time.Second))

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	require.Equal(t, "test", event.Environment)
	require.NotEmpty(t, event.Exception)
	require.Equal(t, "parse failure", event.Exception[len(event.Exception)-1].Value)
	require.Equal(t, &sentry.Request{
		Method:      "GET",
		URL:         "http://x/event/9",
		QueryString: "a=b",
		Headers:     map[string]string{"Accept": "application/json"},
		Env:         map[string]string{"SERVER_PORT": "80"},
	}, event.Request)
	require.Equal(t, "GET", event.Tags["method"])
}
