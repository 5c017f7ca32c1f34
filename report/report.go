// Package report forwards unexpected request failures to an error tracker.
package report

import (
	"context"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Request is the metadata attached to a reported error.
type Request struct {
	Method      string
	URL         string
	QueryString string
	Headers     map[string]string
	Env         map[string]string
}

// Reporter records an error that escaped a request.
type Reporter interface {
	Report(ctx context.Context, err error, req Request)
}

// NewRequest captures the reportable parts of r. The URL excludes the query string.
func NewRequest(r *http.Request) Request {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[k] = strings.Join(v, ",")
	}

	host, port, err := net.SplitHostPort(r.Host)
	if err != nil {
		host = r.Host
		port = "80"
		if r.TLS != nil {
			port = "443"
		}
	}
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	return Request{
		Method:      r.Method,
		URL:         scheme + "://" + r.Host + r.URL.Path,
		QueryString: r.URL.RawQuery,
		Headers:     headers,
		Env: map[string]string{
			"REMOTE_ADDR": remote,
			"SERVER_NAME": host,
			"SERVER_PORT": port,
		},
	}
}

// Log reports errors to the logger only.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Report(_ context.Context, err error, req Request) {
	l.logger.Error("request failed",
		zap.Error(err),
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.String("query_string", req.QueryString),
		zap.Any("env", req.Env),
	)
}
